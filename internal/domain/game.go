package domain

import "time"

// Game is a scheduled match between two teams. Immutable once scheduled;
// schedule changes are handled upstream.
type Game struct {
	ID         string    `json:"id"`
	HomeTeamID string    `json:"home_team_id"`
	AwayTeamID string    `json:"away_team_id"`
	Date       time.Time `json:"date"`
	Time       string    `json:"time"`
}

// IsUpcoming reports whether the game is strictly more than one day
// ahead of the reference time.
func (g *Game) IsUpcoming(asOf time.Time) bool {
	return g.Date.After(asOf.AddDate(0, 0, 1))
}
