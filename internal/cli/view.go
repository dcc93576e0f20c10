package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/mtarp-portal/internal/model"
	"github.com/mcoot/mtarp-portal/internal/viewmodel"
)

var errNotLoggedIn = errors.New("not logged in, run `mtarp login` first")

// notificationError marks a command that ended with an error notification
type notificationError struct {
	notification *model.Notification
}

func (e *notificationError) Error() string {
	return fmt.Sprintf("%s: %s", e.notification.Title, e.notification.Message)
}

// Result is what every command prints in json mode
type Result struct {
	Notification *model.Notification `json:"notification,omitempty"`
	Page         viewmodel.Page      `json:"page"`
}

// pageView prints the part of the page a command is about in text mode
type pageView func(o *Output, page viewmodel.Page)

func showNothing(*Output, viewmodel.Page) {}

func showProfile(o *Output, page viewmodel.Page) {
	if page.Profile != nil {
		o.printProfile(*page.Profile)
	}
}

func showAchievements(o *Output, page viewmodel.Page) {
	o.printAchievements(page.Achievements)
}

func showStats(o *Output, page viewmodel.Page) {
	o.printServerStats(page.ServerStats)
}

func showNav(o *Output, page viewmodel.Page) {
	o.printNav(page.Nav)
}

// finish saves the state, prints the outcome and reports an error
// notification as a failed command
func finish(cmd *cobra.Command, state model.ViewState, view pageView) error {
	notification := state.TakeNotification()
	if err := cfg.SaveState(state); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	page := viewmodel.NewPage(state, viewmodel.DefaultServerStats())
	out := NewOutput(cfg.Output, cmd.OutOrStdout())
	if out.IsJSON() {
		out.Print(Result{Notification: notification, Page: page})
	} else {
		if notification != nil {
			out.printNotification(*notification)
		}
		view(out, page)
	}

	if notification != nil && notification.Kind == model.NotificationError {
		return &notificationError{notification: notification}
	}
	return nil
}

func newProfileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show your character profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showTab(cmd, model.TabProfile, showProfile)
		},
	}
}

func newAchievementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "Show your achievements and progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showTab(cmd, model.TabProfile, showAchievements)
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show server statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showTab(cmd, model.TabStats, showStats)
		},
	}
}

func newTabCmd() *cobra.Command {
	names := make([]string, 0, len(model.AllTabs()))
	for _, tab := range model.AllTabs() {
		names = append(names, string(tab))
	}

	return &cobra.Command{
		Use:       "tab <" + strings.Join(names, "|") + ">",
		Short:     "Switch the active tab",
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, err := model.ParseTab(args[0])
			if err != nil {
				return err
			}
			return showTab(cmd, tab, showNav)
		},
	}
}

// showTab selects tab and prints its view. The profile tab needs a session.
func showTab(cmd *cobra.Command, tab model.Tab, view pageView) error {
	state, err := cfg.LoadState()
	if err != nil {
		return err
	}

	if tab == model.TabProfile && !state.LoggedIn() {
		return errNotLoggedIn
	}

	state = controller.SelectTab(state, tab)
	return finish(cmd, state, view)
}
