package layout

import (
	"github.com/a-h/templ"

	"github.com/mcoot/mtarp-portal/internal/model"
	"github.com/mcoot/mtarp-portal/internal/viewmodel"
	"github.com/mcoot/mtarp-portal/internal/web/templates/components"
)

// SiteName is shown in the header and the document title
const SiteName = "MTA RP Server"

// PageData is the data every full page needs
type PageData struct {
	Title string
	Page  viewmodel.Page
	Flash *model.Notification
}

// Base renders the document shell around content: header with navigation,
// notification toast, main area and footer
func Base(data PageData, content templ.Component) templ.Component {
	return components.Func(func(h *components.Writer) {
		h.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		if data.Page.Loading {
			h.Raw(`<meta http-equiv="refresh" content="2">`)
		}
		h.Raw(`<title>`)
		if data.Title != "" {
			h.Text(data.Title + " | ")
		}
		h.Text(SiteName)
		h.Raw(`</title><style>`)
		h.Raw(stylesheet)
		h.Raw(`</style></head><body>`)

		header(h, data.Page)
		h.Component(Toast(data.Flash))

		h.Raw(`<main class="container">`)
		h.Component(content)
		h.Raw(`</main>`)

		h.Raw(`<footer class="footer"><p>`)
		h.Text("© " + SiteName + ". Role-play without limits.")
		h.Raw(`</p></footer></body></html>`)
	})
}

func header(h *components.Writer, page viewmodel.Page) {
	h.Raw(`<header class="site-header"><div class="container header-row"><h1 class="logo">`)
	h.Text(SiteName)
	h.Raw(`</h1><nav class="site-nav">`)
	for _, item := range page.Nav {
		class := "nav-item"
		if item.Active {
			class += " nav-active"
		}
		h.Component(components.PostButton("/tab/"+string(item.Tab), item.Label, class))
	}
	if page.LoggedIn {
		h.Component(components.PostButton("/auth/logout", "Log out", "nav-item nav-logout"))
	}
	h.Raw(`</nav></div></header>`)
}

// Toast renders the one-shot notification, if any
func Toast(n *model.Notification) templ.Component {
	if n == nil {
		return templ.NopComponent
	}
	return components.Func(func(h *components.Writer) {
		h.Raw(`<div role="status"`)
		h.Attr("class", "toast toast-"+string(n.Kind))
		h.Raw(`>`)
		if n.Title != "" {
			h.Raw(`<strong class="toast-title">`)
			h.Text(n.Title)
			h.Raw(`</strong> `)
		}
		h.Raw(`<span class="toast-message">`)
		h.Text(n.Message)
		h.Raw(`</span></div>`)
	})
}

const stylesheet = `
body{margin:0;background:#0d0f14;color:#e5e7eb;font-family:system-ui,sans-serif}
.container{max-width:1100px;margin:0 auto;padding:0 1rem}
.site-header{border-bottom:1px solid #1f3b2a;background:#141821}
.header-row{display:flex;justify-content:space-between;align-items:center;padding:1rem}
.logo{color:#39ff14;margin:0;font-size:1.5rem}
.site-nav{display:flex;gap:.5rem}
.inline-form{display:inline}
.nav-item{background:none;border:0;color:#d1d5db;padding:.5rem 1rem;border-radius:4px;cursor:pointer}
.nav-active{background:#39ff14;color:#000}
.card{background:#141821;border:1px solid #1f3b2a;border-radius:8px;margin:1rem 0}
.card-header{padding:1rem 1rem 0}.card-content{padding:1rem}
.card-title{color:#39ff14;margin:0}.card-description{color:#9ca3af}
.field{margin-bottom:.75rem}.field label{display:block;margin-bottom:.25rem}
.field input{width:100%;padding:.5rem;background:#0d0f14;color:#fff;border:1px solid #374151;border-radius:4px}
.button{padding:.5rem 1rem;border:0;border-radius:4px;cursor:pointer}
.button-primary{background:#39ff14;color:#000}.button[disabled]{opacity:.5;cursor:wait}
.progress{height:8px;background:#1f2937;border-radius:4px}.progress-fill{height:100%;background:#39ff14;border-radius:4px}
.badge{padding:.1rem .5rem;border-radius:4px;font-size:.8rem}.badge-success{background:#39ff14;color:#000}
.tabs{display:flex;gap:.5rem;margin:1rem 0}.tab{padding:.5rem 1rem;color:#d1d5db}.tab-active{background:#39ff14;color:#000}
.grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(220px,1fr));gap:1rem}
.stat-value{font-size:1.75rem;font-weight:bold;margin:.25rem 0}.stat-caption{color:#9ca3af;font-size:.85rem}
.toast{margin:1rem auto;max-width:1100px;padding:.75rem 1rem;border-radius:6px}
.toast-success{background:#14532d}.toast-error{background:#7f1d1d}.toast-info{background:#1e3a8a}
.achievement{display:flex;gap:1rem;align-items:center}.achievement-locked{opacity:.6}
.footer{border-top:1px solid #1f3b2a;text-align:center;color:#6b7280;padding:2rem 0;margin-top:2rem}
`
