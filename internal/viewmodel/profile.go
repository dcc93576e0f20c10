package viewmodel

import (
	"fmt"

	"github.com/mcoot/mtarp-portal/internal/model"
)

// ProfileView is the player's profile with every field defaulted
type ProfileView struct {
	Username          string `json:"username"`
	Email             string `json:"email"`
	CharacterName     string `json:"character_name"`
	Level             int    `json:"level"`
	Experience        int    `json:"experience"` // 0-100
	Money             int64  `json:"money"`
	MoneyDisplay      string `json:"money_display"`
	PlaytimeHours     int    `json:"playtime_hours"`
	PlaytimeDisplay   string `json:"playtime_display"`
	JobsCompleted     int    `json:"jobs_completed"`
	RacesParticipated int    `json:"races_participated"`
	CrimesCommitted   int    `json:"crimes_committed"`
}

// AchievementView is one achievement as rendered
type AchievementView struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Completed       bool   `json:"completed"`
	Progress        int    `json:"progress"`
	ProgressPercent int    `json:"progress_percent"`
	RewardDisplay   string `json:"reward_display,omitempty"`
	Icon            string `json:"icon"`
}

// NewProfileView defaults the Session's profile for display. A missing
// profile renders as all zeros.
func NewProfileView(session *model.Session) ProfileView {
	var p model.Profile
	if session.Profile != nil {
		p = *session.Profile
	}

	view := ProfileView{
		Username:          session.User.Username,
		Email:             session.User.Email,
		CharacterName:     characterName(p.CharacterName, session.User.Username),
		Level:             deref(p.Level),
		Experience:        clamp(deref(p.Experience), 0, 100),
		Money:             deref(p.Money),
		PlaytimeHours:     deref(p.PlaytimeHours),
		JobsCompleted:     deref(p.JobsCompleted),
		RacesParticipated: deref(p.RacesParticipated),
		CrimesCommitted:   deref(p.CrimesCommitted),
	}
	view.MoneyDisplay = FormatMoney(view.Money)
	view.PlaytimeDisplay = FormatPlaytime(view.PlaytimeHours)
	return view
}

// NewAchievementViews converts achievements in order
func NewAchievementViews(achievements []model.Achievement) []AchievementView {
	views := make([]AchievementView, 0, len(achievements))
	for _, a := range achievements {
		view := AchievementView{
			Name:            a.Name,
			Description:     a.Description,
			Completed:       a.Completed,
			Progress:        a.Progress,
			ProgressPercent: progressPercent(a),
			Icon:            "lock",
		}
		if a.Completed {
			view.Icon = "trophy"
		}
		if a.RewardMoney != nil && *a.RewardMoney > 0 {
			view.RewardDisplay = FormatMoney(*a.RewardMoney)
		}
		views = append(views, view)
	}
	return views
}

func progressPercent(a model.Achievement) int {
	if a.RequiredValue != nil && *a.RequiredValue > 0 {
		if a.Completed {
			return 100
		}
		required := *a.RequiredValue
		return clamp(a.Progress*100/required, 0, 100)
	}
	if a.Completed {
		return 100
	}
	return 0
}

func characterName(name *string, username string) string {
	if name != nil && *name != "" {
		return *name
	}
	if username == "" {
		return ""
	}
	return fmt.Sprintf("%s_Character", username)
}

func deref[T int | int64](v *T) T {
	if v == nil {
		return 0
	}
	return *v
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
