package components

import (
	"strconv"

	"github.com/a-h/templ"
)

// Card renders a titled panel. description may be empty.
func Card(title, description string, body templ.Component) templ.Component {
	return Func(func(h *Writer) {
		h.Raw(`<section class="card">`)
		if title != "" {
			h.Raw(`<header class="card-header"><h3 class="card-title">`)
			h.Text(title)
			h.Raw(`</h3>`)
			if description != "" {
				h.Raw(`<p class="card-description">`)
				h.Text(description)
				h.Raw(`</p>`)
			}
			h.Raw(`</header>`)
		}
		h.Raw(`<div class="card-content">`)
		h.Component(body)
		h.Raw(`</div></section>`)
	})
}

// InputProps describes a labeled form input
type InputProps struct {
	ID          string
	Name        string
	Label       string
	Type        string
	Value       string
	Placeholder string
	Disabled    bool
}

// LabeledInput renders a label and its input
func LabeledInput(p InputProps) templ.Component {
	return Func(func(h *Writer) {
		h.Raw(`<div class="field"><label`)
		h.Attr("for", p.ID)
		h.Raw(`>`)
		h.Text(p.Label)
		h.Raw(`</label><input`)
		h.Attr("id", p.ID)
		h.Attr("name", p.Name)
		h.Attr("type", p.Type)
		if p.Value != "" {
			h.Attr("value", p.Value)
		}
		if p.Placeholder != "" {
			h.Attr("placeholder", p.Placeholder)
		}
		if p.Disabled {
			h.Raw(` disabled`)
		}
		h.Raw(`></div>`)
	})
}

// SubmitButton renders a submit button. While loading it is disabled and
// shows loadingLabel instead of label.
func SubmitButton(label, loadingLabel string, loading bool) templ.Component {
	return Func(func(h *Writer) {
		h.Raw(`<button type="submit" class="button button-primary"`)
		if loading {
			h.Raw(` disabled aria-busy="true">`)
			h.Text(loadingLabel)
		} else {
			h.Raw(`>`)
			h.Text(label)
		}
		h.Raw(`</button>`)
	})
}

// PostButton renders a one-button form posting to action
func PostButton(action, label, class string) templ.Component {
	return Func(func(h *Writer) {
		h.Raw(`<form method="post" class="inline-form"`)
		h.Attr("action", action)
		h.Raw(`><button type="submit"`)
		h.Attr("class", class)
		h.Raw(`>`)
		h.Text(label)
		h.Raw(`</button></form>`)
	})
}

// ProgressBar renders a horizontal bar filled to percent (0-100)
func ProgressBar(percent int) templ.Component {
	return Func(func(h *Writer) {
		p := strconv.Itoa(percent)
		h.Raw(`<div class="progress" role="progressbar" aria-valuemin="0" aria-valuemax="100"`)
		h.Attr("aria-valuenow", p)
		h.Raw(`><div class="progress-fill"`)
		h.Attr("style", "width: "+p+"%")
		h.Raw(`></div></div>`)
	})
}

// Badge renders a short highlighted label
func Badge(text, variant string) templ.Component {
	return Func(func(h *Writer) {
		h.Raw(`<span`)
		h.Attr("class", "badge badge-"+variant)
		h.Raw(`>`)
		h.Text(text)
		h.Raw(`</span>`)
	})
}

// TabLink is one entry of a Tabs strip
type TabLink struct {
	Target string
	Label  string
	Active bool
}

// Tabs renders an in-page tab strip of anchor links
func Tabs(links []TabLink) templ.Component {
	return Func(func(h *Writer) {
		h.Raw(`<nav class="tabs">`)
		for _, l := range links {
			class := "tab"
			if l.Active {
				class += " tab-active"
			}
			h.Raw(`<a`)
			h.Attr("href", l.Target)
			h.Attr("class", class)
			h.Raw(`>`)
			h.Text(l.Label)
			h.Raw(`</a>`)
		}
		h.Raw(`</nav>`)
	})
}

// StatTile renders a big number with a caption
func StatTile(title, value, caption, variant string) templ.Component {
	return Func(func(h *Writer) {
		h.Raw(`<div`)
		h.Attr("class", "stat-tile stat-"+variant)
		h.Raw(`><h4 class="stat-title">`)
		h.Text(title)
		h.Raw(`</h4><p class="stat-value">`)
		h.Text(value)
		h.Raw(`</p>`)
		if caption != "" {
			h.Raw(`<p class="stat-caption">`)
			h.Text(caption)
			h.Raw(`</p>`)
		}
		h.Raw(`</div>`)
	})
}
