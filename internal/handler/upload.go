package handler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/msomdec/medical-image-vault/internal/domain"
	"github.com/msomdec/medical-image-vault/internal/service"
	"github.com/msomdec/medical-image-vault/internal/view"
)

// multipart parts above this size spill to temp files.
const maxUploadMemory = 32 << 20

// UploadHandler serves the upload form and stores submitted images.
type UploadHandler struct {
	images   *service.ImageService
	maxBytes int64
}

// NewUploadHandler creates a new UploadHandler. Request bodies larger than
// maxBytes are rejected.
func NewUploadHandler(images *service.ImageService, maxBytes int64) *UploadHandler {
	return &UploadHandler{images: images, maxBytes: maxBytes}
}

// HandleUploadPage renders an empty upload form.
// GET /upload
func (h *UploadHandler) HandleUploadPage(w http.ResponseWriter, r *http.Request) {
	view.UploadPage(view.UploadForm{}).Render(r.Context(), w)
}

// HandleUpload validates the multipart form and saves the image.
// POST /upload
func (h *UploadHandler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(min(h.maxBytes, maxUploadMemory)); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.renderError(w, r, view.UploadForm{}, http.StatusRequestEntityTooLarge, "The file is too large.")
			return
		}
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	form := view.UploadForm{
		MedicalCase: r.FormValue("medical_case"),
		Description: r.FormValue("description"),
		Tags:        knownTags(r.MultipartForm.Value["tags"]),
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			h.renderError(w, r, form, http.StatusUnprocessableEntity, "Choose an image to upload.")
			return
		}
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if msg := validateUpload(form); msg != "" {
		h.renderError(w, r, form, http.StatusUnprocessableEntity, msg)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		slog.Error("read upload", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	id, err := h.images.Save(r.Context(), service.Upload{
		Data:         data,
		ContentType:  header.Header.Get("Content-Type"),
		OriginalName: header.Filename,
		MedicalCase:  form.MedicalCase,
		Description:  form.Description,
		Tags:         form.Tags,
	})
	if err != nil {
		slog.Error("save upload", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	slog.Info("image uploaded", "id", id, "original_name", header.Filename, "bytes", len(data))

	view.UploadPage(view.UploadForm{SavedID: id}).Render(r.Context(), w)
}

func (h *UploadHandler) renderError(w http.ResponseWriter, r *http.Request, form view.UploadForm, status int, msg string) {
	form.Error = msg
	w.WriteHeader(status)
	view.UploadPage(form).Render(r.Context(), w)
}

// validateUpload returns a user-facing message for the first missing field.
func validateUpload(form view.UploadForm) string {
	switch {
	case strings.TrimSpace(form.MedicalCase) == "":
		return "Medical case is required."
	case strings.TrimSpace(form.Description) == "":
		return "Description is required."
	}
	return ""
}

// knownTags drops values outside the controlled vocabulary.
func knownTags(values []string) []string {
	var tags []string
	for _, v := range values {
		if domain.IsKnownTag(v) {
			tags = append(tags, v)
		}
	}
	return tags
}
