// Package components holds the small presentational building blocks shared by
// every page: cards, inputs, buttons, progress bars, badges and tab strips.
package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Writer writes HTML and remembers the first error it hits, so components can
// emit markup without checking every write
type Writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

// NewWriter wraps w for rendering within ctx
func NewWriter(ctx context.Context, w io.Writer) *Writer {
	return &Writer{ctx: ctx, w: w}
}

// Raw writes trusted markup as-is
func (h *Writer) Raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// Text writes escaped text
func (h *Writer) Text(s string) {
	h.Raw(templ.EscapeString(s))
}

// Attr writes ` name="value"` with the value escaped
func (h *Writer) Attr(name, value string) {
	h.Raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// Component renders a child component. A nil component renders nothing.
func (h *Writer) Component(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// Err returns the first error encountered
func (h *Writer) Err() error {
	return h.err
}

// Func adapts a function writing through a Writer into a templ.Component
func Func(fn func(h *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewWriter(ctx, w)
		fn(h)
		return h.Err()
	})
}
