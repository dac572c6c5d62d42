package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stadiumdeals/margin-finder/internal/domain"
)

// PostgresGameRepository implements GameRepository using PostgreSQL
type PostgresGameRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresGameRepository creates a new PostgresGameRepository
func NewPostgresGameRepository(pool *pgxpool.Pool) *PostgresGameRepository {
	return &PostgresGameRepository{pool: pool}
}

// GetUpcomingHomeGames returns a team's home games strictly more than one
// day ahead of asOf, restricted to games that actually have listing data
// (the listing feed is what makes a game priceable), date ascending.
func (r *PostgresGameRepository) GetUpcomingHomeGames(ctx context.Context, teamID string, asOf time.Time) ([]*domain.Game, error) {
	query := `
		SELECT DISTINCT games.id, games.home_team_id, games.away_team_id, games.date, games.time
		FROM games
		JOIN listing_prices ON listing_prices.game_id = games.id
		WHERE games.home_team_id = $1
		  AND games.date > $2
		ORDER BY games.date ASC
	`
	cutoff := asOf.AddDate(0, 0, 1)

	rows, err := r.pool.Query(ctx, query, teamID, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []*domain.Game
	for rows.Next() {
		game := &domain.Game{}
		if err := rows.Scan(&game.ID, &game.HomeTeamID, &game.AwayTeamID, &game.Date, &game.Time); err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	return games, rows.Err()
}
