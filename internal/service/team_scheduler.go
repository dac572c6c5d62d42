package service

import (
	"context"
	"time"

	"github.com/stadiumdeals/margin-finder/internal/domain"
	"github.com/stadiumdeals/margin-finder/internal/repository"
	"go.uber.org/zap"
)

// teamScheduler implements the TeamScheduler interface
type teamScheduler struct {
	games   repository.GameRepository
	updater GameUpdater
	diag    Diagnostics

	// updateWindow bounds how far ahead of asOf games are considered.
	// Zero means unbounded.
	updateWindow time.Duration
}

// NewTeamScheduler creates a new TeamScheduler
func NewTeamScheduler(games repository.GameRepository, updater GameUpdater, diag Diagnostics, updateWindow time.Duration) TeamScheduler {
	return &teamScheduler{
		games:        games,
		updater:      updater,
		diag:         diag,
		updateWindow: updateWindow,
	}
}

// UpdateTeamSections walks the team's upcoming home games chronologically
// and stops at the first failed game, keeping the outcomes gathered so
// far. A team with nothing scheduled in the window is no_games, which is
// a vacuous success rather than a failure.
func (s *teamScheduler) UpdateTeamSections(ctx context.Context, teamID string, asOf time.Time) domain.TeamResult {
	games, err := s.games.GetUpcomingHomeGames(ctx, teamID, asOf)
	if err != nil {
		s.diag.Warn("could not load upcoming games for team",
			zap.String("team_id", teamID),
			zap.Error(err),
		)
		return domain.TeamResult{TeamID: teamID, Status: domain.TeamFailed}
	}

	if s.updateWindow > 0 {
		horizon := asOf.Add(s.updateWindow)
		bounded := games[:0]
		for _, game := range games {
			if game.Date.Before(horizon) {
				bounded = append(bounded, game)
			}
		}
		games = bounded
	}

	if len(games) == 0 {
		return domain.TeamResult{TeamID: teamID, Status: domain.TeamNoGames}
	}

	result := domain.TeamResult{
		TeamID: teamID,
		Status: domain.TeamSucceeded,
		Games:  make([]domain.GameOutcome, 0, len(games)),
	}
	for _, game := range games {
		outcome := s.updater.UpdateGame(ctx, game.ID)
		result.Games = append(result.Games, outcome)
		if !outcome.Succeeded() {
			result.Status = domain.TeamFailed
			break
		}
	}
	return result
}
