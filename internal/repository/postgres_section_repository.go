package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stadiumdeals/margin-finder/internal/domain"
)

// PostgresSectionRepository implements SectionRepository using PostgreSQL
type PostgresSectionRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresSectionRepository creates a new PostgresSectionRepository
func NewPostgresSectionRepository(pool *pgxpool.Pool) *PostgresSectionRepository {
	return &PostgresSectionRepository{pool: pool}
}

// GetByGameID returns the sections of a game with their marketplace event ids
func (r *PostgresSectionRepository) GetByGameID(ctx context.Context, gameID string) ([]*domain.Section, error) {
	query := `
		SELECT id, game_id, event_id
		FROM section_prices
		WHERE game_id = $1
		ORDER BY id ASC
	`
	rows, err := r.pool.Query(ctx, query, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*domain.Section
	for rows.Next() {
		section := &domain.Section{}
		if err := rows.Scan(&section.ID, &section.GameID, &section.EventID); err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}
	return sections, rows.Err()
}

// GetPrice returns the stored price for a section, or nil when absent
func (r *PostgresSectionRepository) GetPrice(ctx context.Context, sectionID string) (*domain.SectionPrice, error) {
	query := `
		SELECT min_price, COALESCE(image_url, '') AS image_url
		FROM section_prices
		WHERE id = $1
	`
	price := &domain.SectionPrice{}
	err := r.pool.QueryRow(ctx, query, sectionID).Scan(&price.MinPrice, &price.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return price, nil
}

// UpdateMinPrice writes a new minimum price for a section
func (r *PostgresSectionRepository) UpdateMinPrice(ctx context.Context, sectionID string, minPrice int) error {
	query := `UPDATE section_prices SET min_price = $2 WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, sectionID, minPrice)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrSectionNotFound
	}
	return nil
}
