package webenv

import (
	"bytes"
	"fmt"
)

// ContentType is the media type of the rendered script.
const ContentType = "application/javascript"

// Render returns the config.js payload that assigns the known keys of cfg to
// window.ENV. Values are emitted inside single quotes without escaping.
func Render(cfg Configuration) []byte {
	var buf bytes.Buffer

	buf.WriteString("// Auto-generated configuration from " + DefaultFileName + "\n")
	buf.WriteString("// Regenerated on every request to /config.js\n")
	buf.WriteString("\n")
	buf.WriteString("window.ENV = {\n")
	for i, key := range KnownKeys {
		sep := ","
		if i == len(KnownKeys)-1 {
			sep = ""
		}
		fmt.Fprintf(&buf, "    %s: '%s'%s\n", key, cfg.Get(key), sep)
	}
	buf.WriteString("};\n")

	return buf.Bytes()
}
