package service

import (
	"context"
	"time"

	"github.com/stadiumdeals/margin-finder/internal/domain"
	"go.uber.org/zap"
)

// Diagnostics records non-fatal per-entity warnings so operators can see
// exactly which section, game or league failed without stopping the run.
// *logger.Logger satisfies it directly.
type Diagnostics interface {
	Warn(msg string, fields ...zap.Field)
}

// SectionReconciler compares one section's stored minimum price against
// its marketplace quote and writes the rounded quote when they diverge
type SectionReconciler interface {
	// Reconcile re-fetches both sides and returns the section outcome
	Reconcile(ctx context.Context, section *domain.Section) domain.SectionOutcome
}

// GameUpdater reconciles every section of one game
type GameUpdater interface {
	// UpdateGame drives the reconciler over the game's sections in listed
	// order, stopping at the first section failure
	UpdateGame(ctx context.Context, gameID string) domain.GameOutcome
}

// TeamScheduler reconciles a team's upcoming home games
type TeamScheduler interface {
	// UpdateTeamSections drives the updater over home games upcoming as
	// of the given reference time, chronological order, stopping at the
	// first game failure. asOf is fixed once per run so the window stays
	// consistent across the whole pass.
	UpdateTeamSections(ctx context.Context, teamID string, asOf time.Time) domain.TeamResult
}

// LeagueRunner reconciles every team in a league
type LeagueRunner interface {
	// ReconcileLeague runs the full pass; teams are processed
	// independently, one team's failure never blocks the next
	ReconcileLeague(ctx context.Context, league string) (*domain.RunResult, error)
	// ListLeagues returns the names of all known leagues
	ListLeagues(ctx context.Context) ([]string, error)
}
