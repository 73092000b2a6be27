package view

import "github.com/a-h/templ"

const datastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

const styles = `
body { font-family: system-ui, sans-serif; margin: 0; color: #1f2933; background: #f7f9fb; }
nav { display: flex; gap: 1rem; padding: .75rem 1.5rem; background: #0b4f6c; }
nav a { color: #fff; text-decoration: none; font-weight: 600; }
main { padding: 1.5rem; max-width: 72rem; margin: 0 auto; }
.layout { display: grid; grid-template-columns: 16rem 1fr; gap: 1.5rem; }
.grid { display: grid; grid-template-columns: repeat(3, 1fr); gap: 1rem; }
.card { background: #fff; border-radius: .5rem; padding: .75rem; box-shadow: 0 1px 3px rgba(0,0,0,.12); }
.card img, .preview { width: 100%; border-radius: .25rem; }
.caption, .muted { color: #616e7c; font-size: .9rem; }
.metric { font-size: 2.5rem; font-weight: 700; }
.notice { padding: .5rem .75rem; border-radius: .25rem; background: #e3f8ff; }
.error { padding: .5rem .75rem; border-radius: .25rem; background: #ffe3e3; }
label { display: block; margin-top: .75rem; font-weight: 600; }
fieldset { border: none; padding: 0; margin-top: .75rem; }
fieldset label { display: inline-block; font-weight: 400; margin-right: .75rem; }
input[type=text], textarea { width: 100%; box-sizing: border-box; padding: .4rem; }
button { margin-top: 1rem; padding: .5rem 1rem; }
`

// Page wraps body in the shared document shell and navigation.
func Page(title string, body templ.Component) templ.Component {
	return component(func(h *htmlWriter) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(` · Medical Image Vault</title>`)
		h.rawf(`<script type="module" src="%s"></script>`, datastarScript)
		h.raw(`<style>` + styles + `</style></head><body>`)
		h.raw(`<nav><a href="/">Medical Image Vault</a><a href="/upload">Upload</a><a href="/search">Search</a></nav>`)
		h.raw(`<main>`)
		h.render(body)
		h.raw(`</main></body></html>`)
	})
}
