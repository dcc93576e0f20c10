package pages

import (
	"github.com/a-h/templ"

	"github.com/mcoot/mtarp-portal/internal/viewmodel"
	"github.com/mcoot/mtarp-portal/internal/web/templates/components"
)

// Stats renders the server statistics panel
func Stats(stats viewmodel.ServerStatsView) templ.Component {
	body := components.Func(func(h *components.Writer) {
		h.Raw(`<div class="grid" id="server-stats">`)
		h.Component(components.StatTile("Players online", stats.OnlinePlayers, "", "green"))
		h.Component(components.StatTile("Total players", stats.TotalPlayers, "", "pink"))
		h.Component(components.StatTile("Uptime", stats.Uptime, "", "blue"))
		h.Raw(`</div>`)
	})
	return components.Card("Server statistics", "General information about the server and player activity", body)
}
