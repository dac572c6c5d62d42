package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stadiumdeals/margin-finder/internal/domain"
	"github.com/stadiumdeals/margin-finder/internal/repository"
	"go.uber.org/zap"
)

// leagueRunner implements the LeagueRunner interface
type leagueRunner struct {
	catalog   repository.CatalogRepository
	scheduler TeamScheduler
	diag      Diagnostics

	// now is swapped out in tests to pin the reference time
	now func() time.Time
}

// NewLeagueRunner creates a new LeagueRunner
func NewLeagueRunner(catalog repository.CatalogRepository, scheduler TeamScheduler, diag Diagnostics) LeagueRunner {
	return &leagueRunner{
		catalog:   catalog,
		scheduler: scheduler,
		diag:      diag,
		now:       time.Now,
	}
}

// ReconcileLeague runs one full pass over the league. The reference time
// is captured once so every team sees the same upcoming-game window.
// Teams are processed independently; one team failing never blocks the
// rest. Returns domain.ErrNoTeams when the league resolves to no teams.
func (r *leagueRunner) ReconcileLeague(ctx context.Context, league string) (*domain.RunResult, error) {
	runID := uuid.New().String()
	asOf := r.now()

	teams, err := r.catalog.GetTeamsByLeague(ctx, league)
	if err != nil || len(teams) == 0 {
		fields := []zap.Field{
			zap.String("league", league),
			zap.String("run_id", runID),
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		r.diag.Warn("could not find teams for league", fields...)
		return nil, domain.ErrNoTeams
	}

	result := &domain.RunResult{
		RunID:    runID,
		League:   league,
		AsOf:     asOf,
		Attempts: make(map[string][]domain.GameOutcome),
		Statuses: make(map[string]string, len(teams)),
	}
	for _, team := range teams {
		teamResult := r.scheduler.UpdateTeamSections(ctx, team.ID, asOf)
		result.Statuses[team.ID] = teamResult.Status
		if len(teamResult.Games) > 0 {
			result.Attempts[team.ID] = teamResult.Games
		}
	}
	return result, nil
}

// ListLeagues returns the names of all known leagues
func (r *leagueRunner) ListLeagues(ctx context.Context) ([]string, error) {
	names, err := r.catalog.ListLeagueNames(ctx)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, domain.ErrNoLeagues
	}
	return names, nil
}
