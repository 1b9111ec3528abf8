package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// StaticHandler serves the front-end index page. The front end itself is an
// opaque consumer of the JSON API; this service only hands out the asset.
type StaticHandler struct {
	BaseHandler
	dir string
}

// NewStaticHandler creates a new static handler serving from dir
func NewStaticHandler(dir string, logger *zap.Logger) *StaticHandler {
	return &StaticHandler{
		BaseHandler: BaseHandler{logger: logger},
		dir:         dir,
	}
}

// RegisterRoutes registers the static asset routes
func (h *StaticHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Index)
	r.Get("/index.html", h.Index)
}

// Index handles GET / and GET /index.html
func (h *StaticHandler) Index(w http.ResponseWriter, r *http.Request) {
	body, err := os.ReadFile(filepath.Join(h.dir, "index.html"))
	if err != nil {
		h.respondError(w, http.StatusNotFound, "not found")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
