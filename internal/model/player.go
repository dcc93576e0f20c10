package model

// Profile is the in-game character record returned on login.
// Every field is optional; the backend may omit any of them.
type Profile struct {
	CharacterName     *string `json:"character_name,omitempty"`
	Level             *int    `json:"level,omitempty"`
	Experience        *int    `json:"experience,omitempty"` // percent towards next level, 0-100
	Money             *int64  `json:"money,omitempty"`
	PlaytimeHours     *int    `json:"playtime_hours,omitempty"`
	JobsCompleted     *int    `json:"jobs_completed,omitempty"`
	RacesParticipated *int    `json:"races_participated,omitempty"`
	CrimesCommitted   *int    `json:"crimes_committed,omitempty"`
}

// Achievement is one entry of the player's achievement list
type Achievement struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Completed     bool    `json:"completed"`
	Progress      int     `json:"progress"`
	RequiredValue *int    `json:"required_value,omitempty"`
	RewardMoney   *int64  `json:"reward_money,omitempty"`
	CompletedAt   *string `json:"completed_at,omitempty"`
}
