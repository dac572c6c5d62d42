package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stadiumdeals/margin-finder/internal/domain"
)

func newGameUpdaterFixture() (*MockSectionRepository, *MockQuoteRepository, *MockDiagnostics, GameUpdater) {
	sectionRepo := NewMockSectionRepository()
	quoteRepo := NewMockQuoteRepository()
	diag := NewMockDiagnostics()
	reconciler := NewSectionReconciler(sectionRepo, quoteRepo, diag)
	updater := NewGameUpdater(sectionRepo, reconciler, diag)
	return sectionRepo, quoteRepo, diag, updater
}

func TestGameUpdater_AllSectionsSucceed(t *testing.T) {
	sectionRepo, quoteRepo, diag, updater := newGameUpdaterFixture()

	sectionRepo.AddSection(&domain.Section{ID: "sec-1", GameID: "game-1", EventID: "event-1"}, 40)
	sectionRepo.AddSection(&domain.Section{ID: "sec-2", GameID: "game-1", EventID: "event-2"}, 50)
	quoteRepo.AddQuote("event-1", 35.20, 55.00)
	quoteRepo.AddQuote("event-2", 49.60, 70.00)

	outcome := updater.UpdateGame(context.Background(), "game-1")

	if outcome.Status != domain.GameSucceeded {
		t.Fatalf("expected game succeeded, got %s", outcome.Status)
	}
	if len(outcome.Sections) != 2 {
		t.Fatalf("expected 2 section outcomes, got %d", len(outcome.Sections))
	}
	if outcome.Sections[0].Status != domain.SectionUpdated {
		t.Errorf("expected sec-1 updated, got %s", outcome.Sections[0].Status)
	}
	if outcome.Sections[1].Status != domain.SectionUnchanged {
		t.Errorf("expected sec-2 unchanged, got %s", outcome.Sections[1].Status)
	}
	if diag.Count() != 0 {
		t.Errorf("expected no diagnostics, got %d", diag.Count())
	}
}

func TestGameUpdater_StopsAtFirstSectionFailure(t *testing.T) {
	sectionRepo, quoteRepo, diag, updater := newGameUpdaterFixture()

	sectionRepo.AddSection(&domain.Section{ID: "sec-1", GameID: "game-1", EventID: "event-1"}, 40)
	sectionRepo.AddSection(&domain.Section{ID: "sec-2", GameID: "game-1", EventID: "event-2"}, 50)
	sectionRepo.AddSection(&domain.Section{ID: "sec-3", GameID: "game-1", EventID: "event-3"}, 60)
	quoteRepo.AddQuote("event-1", 35.20, 55.00)
	// event-2 has no quote, so sec-2 fails
	quoteRepo.AddQuote("event-3", 61.40, 80.00)

	outcome := updater.UpdateGame(context.Background(), "game-1")

	if outcome.Status != domain.GameFailed {
		t.Fatalf("expected game failed, got %s", outcome.Status)
	}
	if len(outcome.Sections) != 2 {
		t.Fatalf("expected outcomes up to the failure only, got %d", len(outcome.Sections))
	}
	if outcome.Sections[0].Status != domain.SectionUpdated {
		t.Errorf("expected sec-1 updated, got %s", outcome.Sections[0].Status)
	}
	if outcome.Sections[1].Status != domain.SectionFailed {
		t.Errorf("expected sec-2 failed, got %s", outcome.Sections[1].Status)
	}
	// sec-3 was never attempted
	for _, w := range sectionRepo.Writes {
		if w.SectionID == "sec-3" {
			t.Error("sec-3 should not have been written after the failure")
		}
	}
	if diag.Count() != 1 {
		t.Errorf("expected exactly one diagnostic, got %d", diag.Count())
	}
}

func TestGameUpdater_NoSectionsFailsWithOneDiagnostic(t *testing.T) {
	_, _, diag, updater := newGameUpdaterFixture()

	outcome := updater.UpdateGame(context.Background(), "game-empty")

	if outcome.Status != domain.GameFailed {
		t.Errorf("expected game failed, got %s", outcome.Status)
	}
	if len(outcome.Sections) != 0 {
		t.Errorf("expected no section outcomes, got %d", len(outcome.Sections))
	}
	if diag.Count() != 1 {
		t.Errorf("expected exactly one diagnostic, got %d", diag.Count())
	}
}

func TestGameUpdater_SectionListError(t *testing.T) {
	sectionRepo, _, diag, updater := newGameUpdaterFixture()
	sectionRepo.listErr = errors.New("connection refused")

	outcome := updater.UpdateGame(context.Background(), "game-1")

	if outcome.Status != domain.GameFailed {
		t.Errorf("expected game failed, got %s", outcome.Status)
	}
	if diag.Count() != 1 {
		t.Errorf("expected exactly one diagnostic, got %d", diag.Count())
	}
}
