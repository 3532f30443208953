package webenv

import "github.com/rs/zerolog"

const secretMask = "********"

// Summary holds the values reported once at server startup.
type Summary struct {
	APIBaseURL      string
	APIKey          string
	RefreshInterval string
	DebugMode       string
}

// Summarize builds a [Summary] of cfg with the API key masked.
func Summarize(cfg Configuration) Summary {
	return Summary{
		APIBaseURL:      cfg.Get(KeyAPIBaseURL),
		APIKey:          MaskSecret(cfg.Get(KeyAPIKey)),
		RefreshInterval: cfg.Get(KeyRefreshInterval) + "ms",
		DebugMode:       cfg.Get(KeyDebugMode),
	}
}

// MaskSecret hides everything but the last four characters of s.
func MaskSecret(s string) string {
	r := []rune(s)
	if len(r) > 4 {
		r = r[len(r)-4:]
	}
	return secretMask + string(r)
}

// MarshalZerologObject lets a [Summary] be logged with zerolog's Object.
func (s Summary) MarshalZerologObject(e *zerolog.Event) {
	e.Str(KeyAPIBaseURL, s.APIBaseURL).
		Str(KeyAPIKey, s.APIKey).
		Str(KeyRefreshInterval, s.RefreshInterval).
		Str(KeyDebugMode, s.DebugMode)
}
