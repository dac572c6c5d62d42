package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stadiumdeals/margin-finder/internal/domain"
)

// PostgresQuoteRepository implements QuoteRepository using PostgreSQL.
// The marketplace_quotes table is owned by the ingestion pipeline; this
// repository only ever reads the latest row for an event.
type PostgresQuoteRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresQuoteRepository creates a new PostgresQuoteRepository
func NewPostgresQuoteRepository(pool *pgxpool.Pool) *PostgresQuoteRepository {
	return &PostgresQuoteRepository{pool: pool}
}

// GetByEventID returns the latest quote for an event, or nil when absent
func (r *PostgresQuoteRepository) GetByEventID(ctx context.Context, eventID string) (*domain.MarketplaceQuote, error) {
	query := `
		SELECT event_id, min_ticket_price, avg_ticket_price
		FROM marketplace_quotes
		WHERE event_id = $1
	`
	quote := &domain.MarketplaceQuote{}
	err := r.pool.QueryRow(ctx, query, eventID).Scan(&quote.EventID, &quote.MinTicketPrice, &quote.AvgTicketPrice)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return quote, nil
}
