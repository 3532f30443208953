package http

import (
	"net/http"

	"github.com/MKhiriev/webapp-dev-server/internal/logger"
	"github.com/MKhiriev/webapp-dev-server/internal/webenv"
)

type Handler struct {
	loader webenv.Loader
	static http.Handler

	logger *logger.Logger
}

func NewHandler(loader webenv.Loader, staticRoot string, logger *logger.Logger) *Handler {
	logger.Info().Str("static_root", staticRoot).Msg("http handler created")
	return &Handler{
		loader: loader,
		static: newStaticHandler(staticRoot),
		logger: logger,
	}
}
