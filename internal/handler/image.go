package handler

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/msomdec/medical-image-vault/internal/domain"
	"github.com/msomdec/medical-image-vault/internal/service"
)

// ImageHandler serves stored image bytes.
type ImageHandler struct {
	images *service.ImageService
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(images *service.ImageService) *ImageHandler {
	return &ImageHandler{images: images}
}

// HandleServe serves a stored file with a Content-Type derived from its
// extension, or sniffed for the generic .img extension.
// GET /files/{filename}
func (h *ImageHandler) HandleServe(w http.ResponseWriter, r *http.Request) {
	filename := r.PathValue("filename")

	data, err := h.images.ReadBytes(r.Context(), filename)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		slog.Error("serve image", "filename", filename, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var contentType string
	if ext := filepath.Ext(filename); ext != service.FallbackExtension {
		contentType = mime.TypeByExtension(ext)
	}
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	// Stored names are random and never rewritten.
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "private, max-age=86400, immutable")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Write(data)
}
