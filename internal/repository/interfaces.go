package repository

import (
	"context"
	"time"

	"github.com/stadiumdeals/margin-finder/internal/domain"
)

// CatalogRepository defines read access to league and team reference data
type CatalogRepository interface {
	// ListLeagueNames returns the names of all known leagues
	ListLeagueNames(ctx context.Context) ([]string, error)
	// GetTeamsByLeague returns the teams of the league matching the given
	// name (or description pattern), ordered by team name ascending
	GetTeamsByLeague(ctx context.Context, league string) ([]*domain.Team, error)
}

// GameRepository defines read access to the game schedule
type GameRepository interface {
	// GetUpcomingHomeGames returns home games strictly more than one day
	// ahead of asOf that have listing data, ordered by date ascending.
	// Any further window bound is the caller's concern.
	GetUpcomingHomeGames(ctx context.Context, teamID string, asOf time.Time) ([]*domain.Game, error)
}

// SectionRepository defines access to canonical section prices
type SectionRepository interface {
	// GetByGameID returns the sections of a game with their marketplace event ids
	GetByGameID(ctx context.Context, gameID string) ([]*domain.Section, error)
	// GetPrice returns the stored price for a section, or nil when absent
	GetPrice(ctx context.Context, sectionID string) (*domain.SectionPrice, error)
	// UpdateMinPrice writes a new minimum price for a section.
	// Returns domain.ErrSectionNotFound when no row was updated.
	UpdateMinPrice(ctx context.Context, sectionID string, minPrice int) error
}

// QuoteRepository defines read access to the marketplace quote feed
type QuoteRepository interface {
	// GetByEventID returns the latest quote for an event, or nil when absent
	GetByEventID(ctx context.Context, eventID string) (*domain.MarketplaceQuote, error)
}
