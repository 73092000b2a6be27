package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/msomdec/medical-image-vault/internal/domain"
	"github.com/msomdec/medical-image-vault/internal/service"
)

// APIHandler exposes the vault as JSON for scripts and tooling.
type APIHandler struct {
	images *service.ImageService
}

// NewAPIHandler creates a new APIHandler.
func NewAPIHandler(images *service.ImageService) *APIHandler {
	return &APIHandler{images: images}
}

// HandleListImages searches images. All parameters are optional.
// GET /api/images?case=...&description=...&tag=...&tag=...
// Response: {"images": [...], "count": n}
func (h *APIHandler) HandleListImages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	records, err := h.images.Search(r.Context(), service.SearchQuery{
		Case:        q.Get("case"),
		Description: q.Get("description"),
		Tags:        q["tag"],
	})
	if err != nil {
		slog.Error("search images", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"images": toImageDTOs(records),
		"count":  len(records),
	})
}

// HandleCount returns the number of stored images.
// GET /api/images/count
func (h *APIHandler) HandleCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.images.Count(r.Context())
	if err != nil {
		slog.Error("count images", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

// HandleDelete deletes one image. Deleting an unknown ID is not an error.
// DELETE /api/images/{id}
// Response: {"deleted": true|false}
func (h *APIHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid image ID.")
		return
	}

	deleted, err := h.images.Delete(r.Context(), id)
	if err != nil {
		slog.Error("delete image", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred. Please try again.")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}

// HandleTags returns the controlled tag vocabulary.
// GET /api/tags
func HandleTags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, TagsDTO{
		Imaging: domain.ImagingTags(),
		Other:   domain.OtherTags(),
		All:     domain.AllTags(),
	})
}
