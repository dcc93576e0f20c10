// Package viewmodel turns a stored view state into fully populated render
// data. Templates and JSON consumers only ever see these types, so every
// optional value from the auth endpoint has already been defaulted here.
package viewmodel

import "github.com/mcoot/mtarp-portal/internal/model"

// NavItem is one entry of the header navigation
type NavItem struct {
	Tab    model.Tab `json:"tab"`
	Label  string    `json:"label"`
	Active bool      `json:"active"`
}

// LoginFormView is the login form as rendered. The password is never echoed back.
type LoginFormView struct {
	Username string `json:"username"`
}

// RegisterFormView is the registration form as rendered
type RegisterFormView struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Page carries everything the page template needs
type Page struct {
	ActiveTab    model.Tab         `json:"active_tab"`
	Nav          []NavItem         `json:"nav"`
	LoggedIn     bool              `json:"logged_in"`
	Loading      bool              `json:"loading"`
	Login        LoginFormView     `json:"login"`
	Register     RegisterFormView  `json:"register"`
	Profile      *ProfileView      `json:"profile,omitempty"` // nil unless logged in
	Achievements []AchievementView `json:"achievements"`
	ServerStats  ServerStatsView   `json:"server_stats"`
}

var tabLabels = map[model.Tab]string{
	model.TabHome:     "Home",
	model.TabRegister: "Register",
	model.TabProfile:  "Profile",
	model.TabStats:    "Statistics",
}

// TabLabel returns the display label for a tab
func TabLabel(tab model.Tab) string {
	if label, ok := tabLabels[tab]; ok {
		return label
	}
	return string(tab)
}

// NewPage builds the render data for a view state
func NewPage(state model.ViewState, stats ServerStats) Page {
	loggedIn := state.LoggedIn()

	page := Page{
		ActiveTab:    EffectiveTab(state),
		LoggedIn:     loggedIn,
		Loading:      state.Loading,
		Login:        LoginFormView{Username: state.Login.Username},
		Register:     RegisterFormView{Username: state.Register.Username, Email: state.Register.Email},
		Achievements: []AchievementView{},
		ServerStats:  NewServerStats(stats),
	}
	page.Nav = navItems(page.ActiveTab, loggedIn)

	if loggedIn {
		profile := NewProfileView(state.Session)
		page.Profile = &profile
		page.Achievements = NewAchievementViews(state.Session.Achievements)
	}

	return page
}

// EffectiveTab is the tab that actually renders. The profile tab without a
// Session falls back to home.
func EffectiveTab(state model.ViewState) model.Tab {
	if !state.Tab.Valid() {
		return model.TabHome
	}
	if state.Tab == model.TabProfile && !state.LoggedIn() {
		return model.TabHome
	}
	return state.Tab
}

func navItems(active model.Tab, loggedIn bool) []NavItem {
	items := make([]NavItem, 0, len(model.AllTabs()))
	for _, tab := range model.AllTabs() {
		if tab == model.TabProfile && !loggedIn {
			continue
		}
		items = append(items, NavItem{Tab: tab, Label: TabLabel(tab), Active: tab == active})
	}
	return items
}
