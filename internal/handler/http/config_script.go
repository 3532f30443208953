package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/webapp-dev-server/internal/logger"
	"github.com/MKhiriev/webapp-dev-server/internal/webenv"
)

// getConfigScript renders the webapp environment file into config.js.
// The file is loaded on every request so edits are picked up immediately.
func (h *Handler) getConfigScript(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD, OPTIONS")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	log := logger.FromRequest(r)

	cfg, err := h.loader.Load(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("error loading webapp environment")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	payload := webenv.Render(cfg)

	w.Header().Set("Content-Type", webenv.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
	w.WriteHeader(http.StatusOK)

	if r.Method == http.MethodHead {
		return
	}

	if _, err := w.Write(payload); err != nil {
		log.Error().Err(err).Msg("error writing config script")
	}
}
