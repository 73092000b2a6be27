package view

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/msomdec/medical-image-vault/internal/domain"
)

// UploadForm is the state of the upload form between requests.
type UploadForm struct {
	MedicalCase string
	Description string
	Tags        []string
	Error       string
	SavedID     int64 // Non-zero after a successful save
}

type uploadSignals struct {
	HasFile     bool   `json:"hasFile"`
	MedicalCase string `json:"medicalCase"`
	Description string `json:"description"`
}

// The button stays disabled until a file is chosen and both text fields
// contain more than whitespace.
const uploadReady = `!$hasFile || !$medicalCase.trim() || !$description.trim()`

const previewOnChange = `$hasFile = el.files.length > 0; ` +
	`if ($hasFile) document.getElementById('preview').src = URL.createObjectURL(el.files[0])`

// UploadPage renders the upload form, plus a success or error banner.
func UploadPage(form UploadForm) templ.Component {
	return Page("Upload", component(func(h *htmlWriter) {
		h.raw(`<h1>Upload</h1>`)

		if form.SavedID != 0 {
			h.raw(`<p class="notice" id="upload-success">Saved upload (ID: ` + strconv.FormatInt(form.SavedID, 10) + `). `)
			h.raw(`<a href="/search">Go to Search</a></p>`)
		}
		if form.Error != "" {
			h.raw(`<p class="error" id="upload-error">`)
			h.text(form.Error)
			h.raw(`</p>`)
		}

		h.raw(`<form method="post" action="/upload" enctype="multipart/form-data" data-signals="`)
		h.raw(signalsAttr(uploadSignals{MedicalCase: form.MedicalCase, Description: form.Description}))
		h.raw(`">`)

		h.raw(`<label for="image">Upload an image</label>`)
		h.raw(`<input type="file" id="image" name="image" accept=".png,.jpg,.jpeg,.webp,image/png,image/jpeg,image/webp" required `)
		h.raw(`data-on:change="` + templ.EscapeString(previewOnChange) + `">`)

		h.raw(`<label for="medical_case">Medical case</label>`)
		h.raw(`<input type="text" id="medical_case" name="medical_case" data-bind:medical-case value="`)
		h.text(form.MedicalCase)
		h.raw(`">`)

		h.raw(`<label for="description">Description</label>`)
		h.raw(`<textarea id="description" name="description" rows="6" data-bind:description>`)
		h.text(form.Description)
		h.raw(`</textarea>`)

		h.raw(`<h2>Tags</h2>`)
		tagFieldset(h, "Imaging", "tags", domain.ImagingTags(), form.Tags, "")
		tagFieldset(h, "Other", "tags", domain.OtherTags(), form.Tags, "")

		h.raw(`<div data-show="$hasFile" style="display: none"><h2>Preview</h2>`)
		h.raw(`<img id="preview" class="preview" alt="Selected image preview"></div>`)

		h.raw(`<button type="submit" id="save" data-attr:disabled="` + templ.EscapeString(uploadReady) + `">Save</button>`)
		h.raw(`</form>`)
	}))
}

// tagFieldset renders one vocabulary as checkboxes named name. extra is
// appended verbatim to every input's attributes.
func tagFieldset(h *htmlWriter, legend, name string, tags, selected []string, extra string) {
	h.raw(`<fieldset><legend>`)
	h.text(legend)
	h.raw(`</legend>`)
	for _, tag := range tags {
		h.raw(`<label><input type="checkbox" name="`)
		h.text(name)
		h.raw(`" value="`)
		h.text(tag)
		h.raw(`"` + checked(selected, tag) + extra + `> `)
		h.text(tag)
		h.raw(`</label>`)
	}
	h.raw(`</fieldset>`)
}
