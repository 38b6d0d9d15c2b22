package site

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/softsell/site/backend/internal/model/site"
	"github.com/softsell/site/backend/pkg/utils"
)

// Handler serves the static page copy.
type Handler struct {
	content site.Content
}

// New creates a site content handler.
func New(content site.Content) *Handler {
	return &Handler{content: content}
}

// RegisterRoutes registers content routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/content", h.handleContent)
}

func (h *Handler) handleContent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, max-age=300")
	utils.RespondJSON(w, http.StatusOK, h.content)
}
