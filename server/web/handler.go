package web

import (
	"net/http"

	"github.com/adrianliechti/mysearch/config"
	"github.com/adrianliechti/mysearch/pkg/page"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	*config.Config
}

func New(cfg *config.Config) (*Handler, error) {
	h := &Handler{
		Config: cfg,
	}

	return h, nil
}

func (h *Handler) Attach(r chi.Router) {
	r.Get("/", h.handleSearch)
	r.Head("/", h.handleSearch)

	r.Get("/static/*", h.handleStatic)
	r.Head("/static/*", h.handleStatic)

	r.NotFound(h.handleNotFound)
	r.MethodNotAllowed(h.handleNotFound)
}

func (h *Handler) handleNotFound(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, http.StatusNotFound, page.NotFound())
}

func writeHTML(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)

	w.Write(body)
}
