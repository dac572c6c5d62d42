package service

import (
	"context"

	"github.com/stadiumdeals/margin-finder/internal/domain"
	"github.com/stadiumdeals/margin-finder/internal/repository"
	"go.uber.org/zap"
)

// gameUpdater implements the GameUpdater interface
type gameUpdater struct {
	sections   repository.SectionRepository
	reconciler SectionReconciler
	diag       Diagnostics
}

// NewGameUpdater creates a new GameUpdater
func NewGameUpdater(sections repository.SectionRepository, reconciler SectionReconciler, diag Diagnostics) GameUpdater {
	return &gameUpdater{
		sections:   sections,
		reconciler: reconciler,
		diag:       diag,
	}
}

// UpdateGame reconciles every section of the game in listed order. The
// first section failure fails the game immediately; outcomes gathered up
// to that point are kept. A game with no sections at all fails too,
// since a priceable game always carries at least one section row.
func (u *gameUpdater) UpdateGame(ctx context.Context, gameID string) domain.GameOutcome {
	sections, err := u.sections.GetByGameID(ctx, gameID)
	if err != nil || len(sections) == 0 {
		fields := []zap.Field{zap.String("game_id", gameID)}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		u.diag.Warn("could not find section data for game", fields...)
		return domain.GameOutcome{GameID: gameID, Status: domain.GameFailed}
	}

	outcome := domain.GameOutcome{
		GameID:   gameID,
		Status:   domain.GameSucceeded,
		Sections: make([]domain.SectionOutcome, 0, len(sections)),
	}
	for _, section := range sections {
		result := u.reconciler.Reconcile(ctx, section)
		outcome.Sections = append(outcome.Sections, result)
		if result.Status == domain.SectionFailed {
			outcome.Status = domain.GameFailed
			break
		}
	}
	return outcome
}
