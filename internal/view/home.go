package view

import (
	"strconv"

	"github.com/a-h/templ"
)

// HomePage shows the vault status and links to the other pages.
func HomePage(count int) templ.Component {
	return Page("Home", component(func(h *htmlWriter) {
		h.raw(`<h1>Medical Image Vault</h1>`)
		h.raw(`<p>Upload medical images with metadata and search them later.</p>`)
		h.raw(`<h2>Quick links</h2><ul>`)
		h.raw(`<li><a href="/upload">Go to Upload</a></li>`)
		h.raw(`<li><a href="/search">Go to Search</a></li></ul>`)
		h.raw(`<h2>Status</h2><p class="muted">Uploaded images</p>`)
		h.raw(`<p class="metric" id="image-count">` + strconv.Itoa(count) + `</p>`)
	}))
}
