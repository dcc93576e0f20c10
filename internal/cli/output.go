package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mcoot/mtarp-portal/internal/model"
	"github.com/mcoot/mtarp-portal/internal/viewmodel"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// IsJSON reports whether output is machine-readable
func (o *Output) IsJSON() bool {
	return o.format == "json"
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.IsJSON() {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.IsJSON() {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintf(o.w, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case model.Notification:
		o.printNotification(v)
	case viewmodel.ProfileView:
		o.printProfile(v)
	case []viewmodel.AchievementView:
		o.printAchievements(v)
	case viewmodel.ServerStatsView:
		o.printServerStats(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

func (o *Output) printNotification(n model.Notification) {
	fmt.Fprintf(o.w, "%s: %s\n", n.Title, n.Message)
}

func (o *Output) printProfile(p viewmodel.ProfileView) {
	fmt.Fprintf(o.w, "Character: %s\n", p.CharacterName)
	fmt.Fprintf(o.w, "Account: %s <%s>\n", p.Username, p.Email)
	fmt.Fprintf(o.w, "Level: %d (%d%% to next)\n", p.Level, p.Experience)
	fmt.Fprintf(o.w, "Money: %s\n", p.MoneyDisplay)
	fmt.Fprintf(o.w, "Playtime: %s\n", p.PlaytimeDisplay)
	fmt.Fprintf(o.w, "Jobs completed: %d\n", p.JobsCompleted)
	fmt.Fprintf(o.w, "Races: %d\n", p.RacesParticipated)
	fmt.Fprintf(o.w, "Crimes: %d\n", p.CrimesCommitted)
}

func (o *Output) printAchievements(achievements []viewmodel.AchievementView) {
	if len(achievements) == 0 {
		fmt.Fprintln(o.w, "No achievements yet.")
		return
	}
	fmt.Fprintf(o.w, "Achievements (%d):\n", len(achievements))
	for _, a := range achievements {
		mark := " "
		if a.Completed {
			mark = "x"
		}
		fmt.Fprintf(o.w, "  [%s] %s - %s (%d%%)", mark, a.Name, a.Description, a.ProgressPercent)
		if a.RewardDisplay != "" {
			fmt.Fprintf(o.w, " reward %s", a.RewardDisplay)
		}
		fmt.Fprintln(o.w)
	}
}

func (o *Output) printServerStats(s viewmodel.ServerStatsView) {
	fmt.Fprintf(o.w, "Online players: %s\n", s.OnlinePlayers)
	fmt.Fprintf(o.w, "Total players: %s\n", s.TotalPlayers)
	fmt.Fprintf(o.w, "Uptime: %s\n", s.Uptime)
}

func (o *Output) printNav(nav []viewmodel.NavItem) {
	for _, item := range nav {
		marker := "  "
		if item.Active {
			marker = "> "
		}
		fmt.Fprintf(o.w, "%s%s\n", marker, item.Label)
	}
}
