package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	datastar "github.com/starfederation/datastar-go/datastar"

	"github.com/msomdec/medical-image-vault/internal/service"
	"github.com/msomdec/medical-image-vault/internal/view"
)

// SearchHandler serves the search page and its live result updates.
type SearchHandler struct {
	images *service.ImageService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(images *service.ImageService) *SearchHandler {
	return &SearchHandler{images: images}
}

// HandleSearchPage renders the search page. Filters may be given as query
// parameters: case, description and repeated tag.
// GET /search
func (h *SearchHandler) HandleSearchPage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := view.SearchFilters{
		Case:        q.Get("case"),
		Description: q.Get("description"),
		Tags:        knownTags(q["tag"]),
	}

	records, err := h.images.Search(r.Context(), toSearchQuery(filters))
	if err != nil {
		slog.Error("search images", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	view.SearchPage(filters, records).Render(r.Context(), w)
}

// HandleResults re-renders the results section for the current filter
// signals via SSE.
// GET /search/results
func (h *SearchHandler) HandleResults(w http.ResponseWriter, r *http.Request) {
	var filters view.SearchFilters
	if err := datastar.ReadSignals(r, &filters); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	records, err := h.images.Search(r.Context(), toSearchQuery(filters))
	if err != nil {
		slog.Error("search images", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.SearchResults(records, ""))
}

// HandleDelete deletes an image and re-renders the results section with the
// filters the page currently shows.
// POST /images/{id}/delete
func (h *SearchHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	// Missing signals only mean the results come back unfiltered.
	var filters view.SearchFilters
	if err := datastar.ReadSignals(r, &filters); err != nil {
		slog.Debug("read search signals", "error", err)
	}

	deleted, err := h.images.Delete(r.Context(), id)
	if err != nil {
		slog.Error("delete image", "id", id, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	notice := "Already deleted."
	if deleted {
		notice = "Deleted."
		slog.Info("image deleted", "id", id)
	}

	records, err := h.images.Search(r.Context(), toSearchQuery(filters))
	if err != nil {
		slog.Error("search images after delete", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	sse := datastar.NewSSE(w, r)
	sse.PatchElementTempl(view.SearchResults(records, notice))
}

func toSearchQuery(f view.SearchFilters) service.SearchQuery {
	return service.SearchQuery{
		Case:        f.Case,
		Description: f.Description,
		Tags:        f.Tags,
	}
}
