package pages

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/mcoot/mtarp-portal/internal/viewmodel"
	"github.com/mcoot/mtarp-portal/internal/web/templates/components"
)

// Profile renders the player card with the stats and achievements sections.
// It renders nothing without a profile.
func Profile(page viewmodel.Page) templ.Component {
	if page.Profile == nil {
		return templ.NopComponent
	}
	p := *page.Profile

	return components.Func(func(h *components.Writer) {
		h.Raw(`<div class="profile-layout" id="profile">`)
		h.Component(components.Card("Player profile", "", profileCard(p)))

		h.Component(components.Tabs([]components.TabLink{
			{Target: "#player-stats", Label: "Statistics", Active: true},
			{Target: "#achievements", Label: "Achievements"},
		}))

		h.Raw(`<section id="player-stats" class="grid">`)
		h.Component(components.StatTile("Jobs", strconv.Itoa(p.JobsCompleted), "tasks completed", "blue"))
		h.Component(components.StatTile("Races", strconv.Itoa(p.RacesParticipated), "races entered", "pink"))
		h.Component(components.StatTile("Crimes", strconv.Itoa(p.CrimesCommitted), "laws broken", "red"))
		h.Component(components.StatTile("Playtime", p.PlaytimeDisplay, "total time", "green"))
		h.Raw(`</section>`)

		h.Raw(`<section id="achievements">`)
		if len(page.Achievements) == 0 {
			h.Raw(`<p class="empty">No achievements yet.</p>`)
		}
		for _, a := range page.Achievements {
			h.Component(achievement(a))
		}
		h.Raw(`</section></div>`)
	})
}

func profileCard(p viewmodel.ProfileView) templ.Component {
	return components.Func(func(h *components.Writer) {
		h.Raw(`<div class="profile-head"><h3 class="character-name">`)
		h.Text(p.CharacterName)
		h.Raw(`</h3><p class="username">`)
		h.Text("@" + p.Username)
		h.Raw(`</p><p class="level">`)
		h.Text("Level " + strconv.Itoa(p.Level))
		h.Raw(`</p></div>`)

		h.Raw(`<div class="experience"><span>Experience</span> <span class="experience-value">`)
		h.Text(strconv.Itoa(p.Experience) + "%")
		h.Raw(`</span>`)
		h.Component(components.ProgressBar(p.Experience))
		h.Raw(`</div>`)

		h.Raw(`<p class="money"><span>Money:</span> <strong class="money-value">`)
		h.Text(p.MoneyDisplay)
		h.Raw(`</strong></p><p class="playtime"><span>Playtime:</span> <span class="playtime-value">`)
		h.Text(p.PlaytimeDisplay)
		h.Raw(`</span></p>`)
	})
}

func achievement(a viewmodel.AchievementView) templ.Component {
	return components.Func(func(h *components.Writer) {
		class := "card achievement"
		if !a.Completed {
			class += " achievement-locked"
		}
		h.Raw(`<div`)
		h.Attr("class", class)
		h.Attr("data-icon", a.Icon)
		h.Raw(`><div class="achievement-body"><h4 class="achievement-name">`)
		h.Text(a.Name)
		h.Raw(`</h4><p class="achievement-description">`)
		h.Text(a.Description)
		h.Raw(`</p>`)
		if !a.Completed {
			h.Component(components.ProgressBar(a.ProgressPercent))
		}
		if a.RewardDisplay != "" {
			h.Raw(`<p class="achievement-reward">`)
			h.Text("Reward: " + a.RewardDisplay)
			h.Raw(`</p>`)
		}
		h.Raw(`</div>`)
		if a.Completed {
			h.Component(components.Badge("Unlocked", "success"))
		}
		h.Raw(`</div>`)
	})
}
