package domain

// League is a top-level grouping of teams (e.g. NFL, MLB).
// Reference data owned by upstream systems.
type League struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Team belongs to exactly one league
type Team struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	LeagueID string `json:"league_id"`
}
