package testutil

import "github.com/mcoot/mtarp-portal/internal/model"

// Ptr returns a pointer to v
func Ptr[T any](v T) *T {
	return &v
}

// SampleProfile returns a fully populated profile
func SampleProfile() *model.Profile {
	return &model.Profile{
		CharacterName:     Ptr("Phoenix_Walker"),
		Level:             Ptr(45),
		Experience:        Ptr(75),
		Money:             Ptr(int64(2450000)),
		PlaytimeHours:     Ptr(156),
		JobsCompleted:     Ptr(234),
		RacesParticipated: Ptr(45),
		CrimesCommitted:   Ptr(12),
	}
}

// SampleAchievements returns one completed and one pending achievement
func SampleAchievements() []model.Achievement {
	return []model.Achievement{
		{ID: 1, Name: "First Paycheck", Description: "Earn your first $1000", Completed: true, Progress: 1000, RequiredValue: Ptr(1000)},
		{ID: 4, Name: "City Legend", Description: "Reach level 50", Completed: false, Progress: 45, RequiredValue: Ptr(50)},
	}
}

// SampleSession returns a logged-in session for user "phoenix"
func SampleSession() *model.Session {
	return &model.Session{
		User:         model.User{ID: 7, Username: "phoenix", Email: "phoenix@example.com"},
		Profile:      SampleProfile(),
		Achievements: SampleAchievements(),
	}
}
