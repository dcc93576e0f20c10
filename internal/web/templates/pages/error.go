package pages

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/mcoot/mtarp-portal/internal/web/templates/components"
	"github.com/mcoot/mtarp-portal/internal/web/templates/layout"
)

// Error renders a standalone error document
func Error(status int, message string) templ.Component {
	return components.Func(func(h *components.Writer) {
		h.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`)
		h.Text("Error | " + layout.SiteName)
		h.Raw(`</title></head><body><main class="error-page"><h1>`)
		h.Text(strconv.Itoa(status) + " " + http.StatusText(status))
		h.Raw(`</h1><p class="error-message">`)
		h.Text(message)
		h.Raw(`</p><p><a href="/">Return to home</a></p></main></body></html>`)
	})
}
