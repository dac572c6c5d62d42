package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stadiumdeals/margin-finder/internal/domain"
)

func TestSectionReconciler_Reconcile(t *testing.T) {
	tests := []struct {
		name        string
		storedPrice int
		quotePrice  float64
		noQuote     bool
		noPrice     bool
		failWrite   bool
		wantStatus  string
		wantWrites  int
		wantWritten int
		wantDiags   int
	}{
		{
			name:        "stored price already matches rounded quote",
			storedPrice: 50,
			quotePrice:  49.60,
			wantStatus:  domain.SectionUnchanged,
			wantWrites:  0,
			wantDiags:   0,
		},
		{
			name:        "rounded quote differs so the rounded value is written",
			storedPrice: 40,
			quotePrice:  35.20,
			wantStatus:  domain.SectionUpdated,
			wantWrites:  1,
			wantWritten: 35,
			wantDiags:   0,
		},
		{
			name:        "half values round away from zero",
			storedPrice: 49,
			quotePrice:  49.50,
			wantStatus:  domain.SectionUpdated,
			wantWrites:  1,
			wantWritten: 50,
			wantDiags:   0,
		},
		{
			name:        "exact match stays untouched",
			storedPrice: 75,
			quotePrice:  75.00,
			wantStatus:  domain.SectionUnchanged,
			wantWrites:  0,
			wantDiags:   0,
		},
		{
			name:        "missing marketplace quote fails without writing",
			storedPrice: 40,
			noQuote:     true,
			wantStatus:  domain.SectionFailed,
			wantWrites:  0,
			wantDiags:   1,
		},
		{
			name:       "missing stored price fails without writing",
			quotePrice: 35.20,
			noPrice:    true,
			wantStatus: domain.SectionFailed,
			wantWrites: 0,
			wantDiags:  1,
		},
		{
			name:        "write failure reports failed",
			storedPrice: 40,
			quotePrice:  35.20,
			failWrite:   true,
			wantStatus:  domain.SectionFailed,
			wantWrites:  0,
			wantDiags:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sectionRepo := NewMockSectionRepository()
			quoteRepo := NewMockQuoteRepository()
			diag := NewMockDiagnostics()

			section := &domain.Section{ID: "sec-1", GameID: "game-1", EventID: "event-1"}
			if !tt.noPrice {
				sectionRepo.AddSection(section, tt.storedPrice)
			}
			if !tt.noQuote {
				quoteRepo.AddQuote("event-1", tt.quotePrice, tt.quotePrice+20)
			}
			if tt.failWrite {
				sectionRepo.failUpdate["sec-1"] = errors.New("connection reset")
			}

			svc := NewSectionReconciler(sectionRepo, quoteRepo, diag)
			outcome := svc.Reconcile(context.Background(), section)

			if outcome.Status != tt.wantStatus {
				t.Errorf("expected status %s, got %s", tt.wantStatus, outcome.Status)
			}
			if outcome.SectionID != "sec-1" {
				t.Errorf("expected section id sec-1, got %s", outcome.SectionID)
			}
			if len(sectionRepo.Writes) != tt.wantWrites {
				t.Errorf("expected %d writes, got %d", tt.wantWrites, len(sectionRepo.Writes))
			}
			if tt.wantWrites > 0 && sectionRepo.Writes[0].MinPrice != tt.wantWritten {
				t.Errorf("expected written price %d, got %d", tt.wantWritten, sectionRepo.Writes[0].MinPrice)
			}
			if diag.Count() != tt.wantDiags {
				t.Errorf("expected %d diagnostics, got %d", tt.wantDiags, diag.Count())
			}
		})
	}
}

func TestSectionReconciler_SecondPassIsUnchanged(t *testing.T) {
	sectionRepo := NewMockSectionRepository()
	quoteRepo := NewMockQuoteRepository()
	diag := NewMockDiagnostics()

	section := &domain.Section{ID: "sec-1", GameID: "game-1", EventID: "event-1"}
	sectionRepo.AddSection(section, 40)
	quoteRepo.AddQuote("event-1", 35.20, 55.00)

	svc := NewSectionReconciler(sectionRepo, quoteRepo, diag)

	first := svc.Reconcile(context.Background(), section)
	if first.Status != domain.SectionUpdated {
		t.Fatalf("expected first pass updated, got %s", first.Status)
	}

	second := svc.Reconcile(context.Background(), section)
	if second.Status != domain.SectionUnchanged {
		t.Errorf("expected second pass unchanged, got %s", second.Status)
	}
	if len(sectionRepo.Writes) != 1 {
		t.Errorf("expected exactly one write across both passes, got %d", len(sectionRepo.Writes))
	}
	if diag.Count() != 0 {
		t.Errorf("expected no diagnostics, got %d", diag.Count())
	}
}

func TestSectionReconciler_QuoteRepoError(t *testing.T) {
	sectionRepo := NewMockSectionRepository()
	quoteRepo := NewMockQuoteRepository()
	quoteRepo.err = errors.New("marketplace unavailable")
	diag := NewMockDiagnostics()

	section := &domain.Section{ID: "sec-1", GameID: "game-1", EventID: "event-1"}
	sectionRepo.AddSection(section, 40)

	svc := NewSectionReconciler(sectionRepo, quoteRepo, diag)
	outcome := svc.Reconcile(context.Background(), section)

	if outcome.Status != domain.SectionFailed {
		t.Errorf("expected failed, got %s", outcome.Status)
	}
	if diag.Count() != 1 {
		t.Errorf("expected one diagnostic, got %d", diag.Count())
	}
	if len(sectionRepo.Writes) != 0 {
		t.Errorf("expected no writes, got %d", len(sectionRepo.Writes))
	}
}
