package viewmodel

import "fmt"

// ServerStats are the static figures shown on the statistics tab
type ServerStats struct {
	OnlinePlayers int
	TotalPlayers  int
	UptimePercent float64
}

// DefaultServerStats returns the figures shown when none are configured
func DefaultServerStats() ServerStats {
	return ServerStats{
		OnlinePlayers: 532,
		TotalPlayers:  1247,
		UptimePercent: 99.7,
	}
}

// ServerStatsView is the formatted statistics panel
type ServerStatsView struct {
	OnlinePlayers string `json:"online_players"`
	TotalPlayers  string `json:"total_players"`
	Uptime        string `json:"uptime"`
}

// NewServerStats formats stats for display
func NewServerStats(stats ServerStats) ServerStatsView {
	return ServerStatsView{
		OnlinePlayers: FormatCount(stats.OnlinePlayers),
		TotalPlayers:  FormatCount(stats.TotalPlayers),
		Uptime:        fmt.Sprintf("%.1f%%", stats.UptimePercent),
	}
}
