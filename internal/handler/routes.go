package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/msomdec/medical-image-vault/internal/domain"
	"github.com/msomdec/medical-image-vault/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, images *service.ImageService, storage domain.Ensurer, maxUploadBytes int64) {
	home := NewHomeHandler(images)
	upload := NewUploadHandler(images, maxUploadBytes)
	search := NewSearchHandler(images)
	files := NewImageHandler(images)
	api := NewAPIHandler(images)
	health := NewHealthHandler(storage)

	mux.HandleFunc("GET /healthz", health.HandleHealthz)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /", home.HandleHome)
	mux.HandleFunc("GET /upload", upload.HandleUploadPage)
	mux.HandleFunc("POST /upload", upload.HandleUpload)
	mux.HandleFunc("GET /search", search.HandleSearchPage)
	mux.HandleFunc("GET /search/results", search.HandleResults)
	mux.HandleFunc("POST /images/{id}/delete", search.HandleDelete)
	mux.HandleFunc("GET /files/{filename}", files.HandleServe)

	mux.HandleFunc("GET /api/images", api.HandleListImages)
	mux.HandleFunc("GET /api/images/count", api.HandleCount)
	mux.HandleFunc("DELETE /api/images/{id}", api.HandleDelete)
	mux.HandleFunc("GET /api/tags", HandleTags)
}
