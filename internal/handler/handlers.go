package handler

import (
	"github.com/MKhiriev/webapp-dev-server/internal/config"
	"github.com/MKhiriev/webapp-dev-server/internal/handler/http"
	"github.com/MKhiriev/webapp-dev-server/internal/logger"
	"github.com/MKhiriev/webapp-dev-server/internal/webenv"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers for cfg. config.js is rendered
// from cfg.EnvFile through loader; all other paths come from cfg.RootDir.
func NewHandlers(loader webenv.Loader, cfg config.Static, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.RootDir == "" {
		return nil, errNoStaticRoot
	}
	if loader == nil {
		return nil, errNoLoader
	}

	return &Handlers{
		HTTP: http.NewHandler(loader, cfg.RootDir, logger),
	}, nil
}
