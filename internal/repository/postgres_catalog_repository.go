package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stadiumdeals/margin-finder/internal/domain"
)

// PostgresCatalogRepository implements CatalogRepository using PostgreSQL
type PostgresCatalogRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCatalogRepository creates a new PostgresCatalogRepository
func NewPostgresCatalogRepository(pool *pgxpool.Pool) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{pool: pool}
}

// ListLeagueNames returns the names of all known leagues
func (r *PostgresCatalogRepository) ListLeagueNames(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT name FROM leagues ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// GetTeamsByLeague returns the teams of a league ordered by team name.
// The league matches by exact name or description pattern, so callers can
// pass either "NFL" or "National Football League".
func (r *PostgresCatalogRepository) GetTeamsByLeague(ctx context.Context, league string) ([]*domain.Team, error) {
	query := `
		SELECT teams.id, teams.name, teams.league_id
		FROM teams
		JOIN leagues ON leagues.id = teams.league_id
		WHERE leagues.name = $1 OR leagues.description ILIKE $1
		ORDER BY teams.name ASC
	`
	rows, err := r.pool.Query(ctx, query, league)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []*domain.Team
	for rows.Next() {
		team := &domain.Team{}
		if err := rows.Scan(&team.ID, &team.Name, &team.LeagueID); err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}
	return teams, rows.Err()
}
