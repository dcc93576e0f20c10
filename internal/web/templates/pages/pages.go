// Package pages renders the content of each top-level tab
package pages

import (
	"github.com/a-h/templ"

	"github.com/mcoot/mtarp-portal/internal/model"
	"github.com/mcoot/mtarp-portal/internal/viewmodel"
	"github.com/mcoot/mtarp-portal/internal/web/templates/components"
	"github.com/mcoot/mtarp-portal/internal/web/templates/layout"
)

// Page renders the full document for the page's active tab
func Page(page viewmodel.Page, flash *model.Notification) templ.Component {
	data := layout.PageData{
		Title: viewmodel.TabLabel(page.ActiveTab),
		Page:  page,
		Flash: flash,
	}
	return layout.Base(data, Content(page))
}

// Content selects the tab body. Page data already has the profile gate applied.
func Content(page viewmodel.Page) templ.Component {
	switch page.ActiveTab {
	case model.TabRegister:
		return Register(page)
	case model.TabProfile:
		return Profile(page)
	case model.TabStats:
		return Stats(page.ServerStats)
	default:
		return Home(page)
	}
}

// Home renders the landing tab: hero, feature cards and the login form when
// logged out
func Home(page viewmodel.Page) templ.Component {
	return components.Func(func(h *components.Writer) {
		h.Raw(`<section class="hero" id="home"><h2>Welcome to MTA RP</h2><p>`)
		h.Text("Dive into a role-play world where every decision matters. Write your own story in a virtual city without limits.")
		h.Raw(`</p>`)
		h.Component(components.PostButton("/tab/register", "Start playing", "button button-primary"))
		h.Raw(`</section>`)

		h.Raw(`<section class="grid features">`)
		for _, f := range features {
			h.Component(components.Card(f.title, "", templ.Raw("<p>"+templ.EscapeString(f.text)+"</p>")))
		}
		h.Raw(`</section>`)

		if page.LoggedIn {
			h.Component(components.Card("Signed in", "", components.Func(func(h *components.Writer) {
				h.Raw(`<p>`)
				h.Text("You are signed in as " + page.Profile.Username + ".")
				h.Raw(`</p>`)
				h.Component(components.PostButton("/tab/profile", "Open profile", "button button-primary"))
			})))
			return
		}

		h.Component(components.Card("Log in", "Enter the game with your account", loginForm(page)))
	})
}

type feature struct {
	title string
	text  string
}

var features = []feature{
	{"Active community", "Thousands of players building stories together every day."},
	{"Huge world", "A detailed city with dozens of jobs, races and hideouts."},
	{"Achievements", "Earn rewards and climb the ranks as your character grows."},
}

func loginForm(page viewmodel.Page) templ.Component {
	return components.Func(func(h *components.Writer) {
		h.Raw(`<form method="post" action="/auth/login" id="login-form">`)
		h.Component(components.LabeledInput(components.InputProps{
			ID: "login-username", Name: "username", Label: "Username", Type: "text",
			Value: page.Login.Username, Placeholder: "Your username", Disabled: page.Loading,
		}))
		h.Component(components.LabeledInput(components.InputProps{
			ID: "login-password", Name: "password", Label: "Password", Type: "password",
			Placeholder: "Your password", Disabled: page.Loading,
		}))
		h.Component(components.SubmitButton("Log in", "Logging in...", page.Loading))
		h.Raw(`</form>`)
	})
}

// Register renders the account creation form
func Register(page viewmodel.Page) templ.Component {
	form := components.Func(func(h *components.Writer) {
		h.Raw(`<form method="post" action="/auth/register" id="register-form">`)
		h.Component(components.LabeledInput(components.InputProps{
			ID: "register-username", Name: "username", Label: "Username", Type: "text",
			Value: page.Register.Username, Placeholder: "Choose a username", Disabled: page.Loading,
		}))
		h.Component(components.LabeledInput(components.InputProps{
			ID: "register-email", Name: "email", Label: "Email", Type: "email",
			Value: page.Register.Email, Placeholder: "you@example.com", Disabled: page.Loading,
		}))
		h.Component(components.LabeledInput(components.InputProps{
			ID: "register-password", Name: "password", Label: "Password", Type: "password",
			Placeholder: "At least 6 characters", Disabled: page.Loading,
		}))
		h.Component(components.SubmitButton("Create account", "Creating account...", page.Loading))
		h.Raw(`</form>`)
	})
	return components.Card("Registration", "Create an account to start playing", form)
}
