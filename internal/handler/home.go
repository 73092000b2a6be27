package handler

import (
	"log/slog"
	"net/http"

	"github.com/msomdec/medical-image-vault/internal/service"
	"github.com/msomdec/medical-image-vault/internal/view"
)

// HomeHandler renders the landing page.
type HomeHandler struct {
	images *service.ImageService
}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler(images *service.ImageService) *HomeHandler {
	return &HomeHandler{images: images}
}

// HandleHome renders the home page with the number of stored images.
// GET /
func (h *HomeHandler) HandleHome(w http.ResponseWriter, r *http.Request) {
	// "GET /" matches every path the mux does not know.
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	count, err := h.images.Count(r.Context())
	if err != nil {
		slog.Error("count images", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	view.HomePage(count).Render(r.Context(), w)
}
