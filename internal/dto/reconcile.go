package dto

import (
	"sort"
	"time"

	"github.com/stadiumdeals/margin-finder/internal/domain"
)

// SectionOutcomeResponse represents one section's reconciliation result
type SectionOutcomeResponse struct {
	SectionID string `json:"section_id"`
	Status    string `json:"status"`
}

// GameOutcomeResponse represents one game's reconciliation result
type GameOutcomeResponse struct {
	GameID   string                   `json:"game_id"`
	Status   string                   `json:"status"`
	Sections []SectionOutcomeResponse `json:"sections,omitempty"`
}

// TeamReportResponse represents one team's reconciliation result
type TeamReportResponse struct {
	TeamID string                `json:"team_id"`
	Status string                `json:"status"`
	Games  []GameOutcomeResponse `json:"games,omitempty"`
}

// ReconcileRunResponse represents the outcome of a full league run
type ReconcileRunResponse struct {
	RunID             string               `json:"run_id"`
	League            string               `json:"league"`
	AsOf              time.Time            `json:"as_of"`
	Teams             []TeamReportResponse `json:"teams"`
	GamesAttempted    int                  `json:"games_attempted"`
	SectionsUpdated   int                  `json:"sections_updated"`
	SectionsUnchanged int                  `json:"sections_unchanged"`
	SectionsFailed    int                  `json:"sections_failed"`
}

// LeaguesResponse represents the list of known leagues
type LeaguesResponse struct {
	Leagues []string `json:"leagues"`
}

// ToGameOutcomeResponse converts a domain GameOutcome to its response form
func ToGameOutcomeResponse(g domain.GameOutcome) GameOutcomeResponse {
	resp := GameOutcomeResponse{
		GameID: g.GameID,
		Status: g.Status,
	}
	for _, s := range g.Sections {
		resp.Sections = append(resp.Sections, SectionOutcomeResponse{
			SectionID: s.SectionID,
			Status:    s.Status,
		})
	}
	return resp
}

// ToReconcileRunResponse converts a domain RunResult to its response
// form. Teams appear sorted by team id so the payload is stable.
func ToReconcileRunResponse(result *domain.RunResult) *ReconcileRunResponse {
	updated, unchanged, failed := result.CountSections()
	resp := &ReconcileRunResponse{
		RunID:             result.RunID,
		League:            result.League,
		AsOf:              result.AsOf,
		Teams:             make([]TeamReportResponse, 0, len(result.Statuses)),
		GamesAttempted:    result.GamesAttempted(),
		SectionsUpdated:   updated,
		SectionsUnchanged: unchanged,
		SectionsFailed:    failed,
	}

	for _, teamID := range sortedTeamIDs(result.Statuses) {
		team := TeamReportResponse{
			TeamID: teamID,
			Status: result.Statuses[teamID],
		}
		for _, g := range result.Attempts[teamID] {
			team.Games = append(team.Games, ToGameOutcomeResponse(g))
		}
		resp.Teams = append(resp.Teams, team)
	}
	return resp
}

func sortedTeamIDs(statuses map[string]string) []string {
	ids := make([]string, 0, len(statuses))
	for id := range statuses {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
