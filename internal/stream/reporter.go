package stream

import (
	"context"
	"time"

	"github.com/stadiumdeals/margin-finder/internal/domain"
	"go.uber.org/zap"
)

// Publisher abstracts the Kafka producer so the reporter can be tested
// without a broker. *kafka.Producer satisfies it.
type Publisher interface {
	ProduceJSON(ctx context.Context, topic, key string, data interface{}, headers map[string]string) error
}

// RunReport is the event emitted after each league reconciliation run
type RunReport struct {
	RunID             string            `json:"run_id"`
	League            string            `json:"league"`
	AsOf              time.Time         `json:"as_of"`
	TeamStatuses      map[string]string `json:"team_statuses"`
	GamesAttempted    int               `json:"games_attempted"`
	SectionsUpdated   int               `json:"sections_updated"`
	SectionsUnchanged int               `json:"sections_unchanged"`
	SectionsFailed    int               `json:"sections_failed"`
	CompletedAt       time.Time         `json:"completed_at"`
}

// RunReporter publishes run summaries to Kafka after each pass.
// Publishing is best effort; a broker outage never fails the run.
type RunReporter struct {
	publisher Publisher
	topic     string
	logger    *zap.Logger

	// now is swapped out in tests
	now func() time.Time
}

// NewRunReporter creates a RunReporter. A nil publisher disables
// reporting, so callers can wire it unconditionally.
func NewRunReporter(publisher Publisher, topic string, logger *zap.Logger) *RunReporter {
	return &RunReporter{
		publisher: publisher,
		topic:     topic,
		logger:    logger,
		now:       time.Now,
	}
}

// Report publishes the summary of one run, keyed by league so consumers
// see each league's runs in order
func (r *RunReporter) Report(ctx context.Context, result *domain.RunResult) {
	if r.publisher == nil || result == nil {
		return
	}

	updated, unchanged, failed := result.CountSections()
	report := RunReport{
		RunID:             result.RunID,
		League:            result.League,
		AsOf:              result.AsOf,
		TeamStatuses:      result.Statuses,
		GamesAttempted:    result.GamesAttempted(),
		SectionsUpdated:   updated,
		SectionsUnchanged: unchanged,
		SectionsFailed:    failed,
		CompletedAt:       r.now(),
	}

	headers := map[string]string{"run_id": result.RunID}
	if err := r.publisher.ProduceJSON(ctx, r.topic, result.League, report, headers); err != nil {
		r.logger.Warn("failed to publish run report",
			zap.String("run_id", result.RunID),
			zap.String("league", result.League),
			zap.Error(err),
		)
	}
}
