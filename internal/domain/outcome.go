package domain

import "time"

// Section reconciliation outcomes
const (
	// SectionUpdated means the stored price was rewritten to the rounded quote
	SectionUpdated = "updated"
	// SectionUnchanged means stored price already matched the rounded quote
	SectionUnchanged = "unchanged"
	// SectionFailed means data was missing or the write did not take effect
	SectionFailed = "failed"
)

// Game and team statuses
const (
	GameSucceeded = "succeeded"
	GameFailed    = "failed"

	TeamSucceeded = "succeeded"
	TeamFailed    = "failed"
	// TeamNoGames means the team had nothing to reconcile this run;
	// vacuous success, distinct from "games, all succeeded"
	TeamNoGames = "no_games"
)

// SectionOutcome is the result of reconciling one section
type SectionOutcome struct {
	SectionID string `json:"section_id"`
	Status    string `json:"status"`
}

// GameOutcome is the result of one game reconciliation attempt.
// Sections holds per-section outcomes up to and including the first failure.
type GameOutcome struct {
	GameID   string           `json:"game_id"`
	Status   string           `json:"status"`
	Sections []SectionOutcome `json:"sections,omitempty"`
}

// Succeeded reports whether every section was updated or unchanged
func (g *GameOutcome) Succeeded() bool {
	return g.Status == GameSucceeded
}

// TeamResult is the outcome of one team's reconciliation pass.
// Games holds one entry per game attempted, chronological.
type TeamResult struct {
	TeamID string        `json:"team_id"`
	Status string        `json:"status"`
	Games  []GameOutcome `json:"games,omitempty"`
}

// RunResult is the aggregate outcome of one league run.
// Attempts maps team id to game outcomes, one entry per team with at
// least one reconciliation attempt; Statuses covers every team in the
// league, including teams with no upcoming games.
type RunResult struct {
	RunID    string                   `json:"run_id"`
	League   string                   `json:"league"`
	AsOf     time.Time                `json:"as_of"`
	Attempts map[string][]GameOutcome `json:"attempts"`
	Statuses map[string]string        `json:"statuses"`
}

// CountSections tallies section outcomes across the whole run
func (r *RunResult) CountSections() (updated, unchanged, failed int) {
	for _, games := range r.Attempts {
		for _, g := range games {
			for _, s := range g.Sections {
				switch s.Status {
				case SectionUpdated:
					updated++
				case SectionUnchanged:
					unchanged++
				case SectionFailed:
					failed++
				}
			}
		}
	}
	return updated, unchanged, failed
}

// GamesAttempted counts game reconciliation attempts across the run
func (r *RunResult) GamesAttempted() int {
	n := 0
	for _, games := range r.Attempts {
		n += len(games)
	}
	return n
}
