package view

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/msomdec/medical-image-vault/internal/domain"
)

// SearchFilters are the filter values shown in the search sidebar. The JSON
// names double as the page's Datastar signals.
type SearchFilters struct {
	Case        string   `json:"caseQuery"`
	Description string   `json:"descriptionQuery"`
	Tags        []string `json:"tags"`
}

const (
	refreshResults     = `@get('/search/results')`
	uploadedTimeLayout = "2006-01-02 15:04:05 MST"
)

// SearchPage renders the filter sidebar and the results for filters.
func SearchPage(filters SearchFilters, records []domain.ImageRecord) templ.Component {
	if filters.Tags == nil {
		filters.Tags = []string{}
	}
	return Page("Search", component(func(h *htmlWriter) {
		h.raw(`<h1>Search</h1>`)
		h.raw(`<div class="layout" data-signals="` + signalsAttr(filters) + `">`)

		h.raw(`<aside><form method="get" action="/search"><h2>Filters</h2>`)

		h.raw(`<label for="case">Case contains</label>`)
		h.raw(`<input type="text" id="case" name="case" data-bind:case-query data-on:input__debounce.300ms="` + refreshResults + `" value="`)
		h.text(filters.Case)
		h.raw(`">`)

		h.raw(`<label for="description">Description contains</label>`)
		h.raw(`<input type="text" id="description" name="description" data-bind:description-query data-on:input__debounce.300ms="` + refreshResults + `" value="`)
		h.text(filters.Description)
		h.raw(`">`)

		h.raw(`<h3>Tags</h3>`)
		extra := ` data-bind:tags data-on:change="` + refreshResults + `"`
		tagFieldset(h, "Imaging", "tag", domain.ImagingTags(), filters.Tags, extra)
		tagFieldset(h, "Other", "tag", domain.OtherTags(), filters.Tags, extra)

		h.raw(`<noscript><button type="submit">Apply</button></noscript>`)
		h.raw(`</form></aside>`)

		h.render(SearchResults(records, ""))
		h.raw(`</div>`)
	}))
}

// SearchResults renders the #results section: count, optional notice and
// the result cards.
func SearchResults(records []domain.ImageRecord, notice string) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<section id="results">`)
		h.raw(`<p class="muted" id="result-count">Results: ` + strconv.Itoa(len(records)) + `</p>`)

		if notice != "" {
			h.raw(`<p class="notice" id="results-notice">`)
			h.text(notice)
			h.raw(`</p>`)
		}

		if len(records) == 0 {
			h.raw(`<p class="notice">No matching uploads found.</p></section>`)
			return
		}

		h.raw(`<div class="grid">`)
		for _, rec := range records {
			h.render(imageCard(rec))
		}
		h.raw(`</div></section>`)
	})
}

func imageCard(rec domain.ImageRecord) templ.Component {
	return component(func(h *htmlWriter) {
		id := strconv.FormatInt(rec.ID, 10)
		caption := "ID " + id + " · " + rec.OriginalName

		h.raw(`<article class="card" id="image-` + id + `">`)
		h.raw(`<img loading="lazy" src="/files/`)
		h.text(rec.Filename)
		h.raw(`" alt="`)
		h.text(caption)
		h.raw(`"><p class="caption">`)
		h.text(caption)
		h.raw(`</p>`)

		tags := "—"
		if len(rec.Tags) > 0 {
			tags = strings.Join(rec.Tags, ", ")
		}

		h.raw(`<details><summary>Details</summary>`)
		h.raw(`<p><strong>Case:</strong> `)
		h.text(rec.MedicalCase)
		h.raw(`</p><p><strong>Tags:</strong> `)
		h.text(tags)
		h.raw(`</p><p><strong>Uploaded (UTC):</strong> `)
		h.text(rec.UploadedAt.UTC().Format(uploadedTimeLayout))
		h.raw(`</p><p><strong>Description:</strong></p><p>`)
		h.text(rec.Description)
		h.raw(`</p>`)
		h.raw(`<button type="button" data-on:click="@post('/images/` + id + `/delete')">Delete</button>`)
		h.raw(`</details></article>`)
	})
}
