package service

import (
	"context"
	"math"

	"github.com/stadiumdeals/margin-finder/internal/domain"
	"github.com/stadiumdeals/margin-finder/internal/repository"
	"go.uber.org/zap"
)

// sectionReconciler implements the SectionReconciler interface
type sectionReconciler struct {
	sections repository.SectionRepository
	quotes   repository.QuoteRepository
	diag     Diagnostics
}

// NewSectionReconciler creates a new SectionReconciler
func NewSectionReconciler(sections repository.SectionRepository, quotes repository.QuoteRepository, diag Diagnostics) SectionReconciler {
	return &sectionReconciler{
		sections: sections,
		quotes:   quotes,
		diag:     diag,
	}
}

// Reconcile compares the stored minimum price against the rounded
// marketplace quote and updates the store when they diverge. Both sides
// are fetched fresh on every call; nothing is cached across invocations.
func (r *sectionReconciler) Reconcile(ctx context.Context, section *domain.Section) domain.SectionOutcome {
	quote, qErr := r.quotes.GetByEventID(ctx, section.EventID)
	price, pErr := r.sections.GetPrice(ctx, section.ID)

	if qErr != nil || pErr != nil || quote == nil || price == nil {
		fields := []zap.Field{
			zap.String("section_id", section.ID),
			zap.String("event_id", section.EventID),
		}
		if quote != nil {
			fields = append(fields,
				zap.Float64("min_ticket_price", quote.MinTicketPrice),
				zap.Float64("avg_ticket_price", quote.AvgTicketPrice),
			)
		}
		if qErr != nil {
			fields = append(fields, zap.Error(qErr))
		} else if pErr != nil {
			fields = append(fields, zap.Error(pErr))
		}
		r.diag.Warn("could not find section or marketplace data for section", fields...)
		return domain.SectionOutcome{SectionID: section.ID, Status: domain.SectionFailed}
	}

	// Quotes carry cents, the store keeps whole dollars.
	// Round half away from zero (math.Round).
	rounded := int(math.Round(quote.MinTicketPrice))

	if price.MinPrice == rounded {
		return domain.SectionOutcome{SectionID: section.ID, Status: domain.SectionUnchanged}
	}

	if err := r.sections.UpdateMinPrice(ctx, section.ID, rounded); err != nil {
		r.diag.Warn("could not update section price",
			zap.String("section_id", section.ID),
			zap.Error(err),
		)
		return domain.SectionOutcome{SectionID: section.ID, Status: domain.SectionFailed}
	}

	return domain.SectionOutcome{SectionID: section.ID, Status: domain.SectionUpdated}
}
