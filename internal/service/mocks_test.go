package service

import (
	"context"
	"sync"
	"time"

	"github.com/stadiumdeals/margin-finder/internal/domain"
	"go.uber.org/zap"
)

// MockCatalogRepository is a mock implementation of repository.CatalogRepository
type MockCatalogRepository struct {
	leagues []string
	teams   map[string][]*domain.Team
	listErr error
	getErr  error
}

func NewMockCatalogRepository() *MockCatalogRepository {
	return &MockCatalogRepository{
		teams: make(map[string][]*domain.Team),
	}
}

func (m *MockCatalogRepository) ListLeagueNames(ctx context.Context) ([]string, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.leagues, nil
}

func (m *MockCatalogRepository) GetTeamsByLeague(ctx context.Context, league string) ([]*domain.Team, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.teams[league], nil
}

func (m *MockCatalogRepository) AddTeam(league string, team *domain.Team) {
	m.teams[league] = append(m.teams[league], team)
}

// MockGameRepository is a mock implementation of repository.GameRepository.
// It applies the same one-day cutoff as the real repository so window
// behaviour can be exercised against wall-clock style fixtures.
type MockGameRepository struct {
	games map[string][]*domain.Game
	err   error
}

func NewMockGameRepository() *MockGameRepository {
	return &MockGameRepository{
		games: make(map[string][]*domain.Game),
	}
}

func (m *MockGameRepository) GetUpcomingHomeGames(ctx context.Context, teamID string, asOf time.Time) ([]*domain.Game, error) {
	if m.err != nil {
		return nil, m.err
	}
	var games []*domain.Game
	for _, g := range m.games[teamID] {
		if g.IsUpcoming(asOf) {
			games = append(games, g)
		}
	}
	return games, nil
}

func (m *MockGameRepository) AddGame(teamID string, game *domain.Game) {
	m.games[teamID] = append(m.games[teamID], game)
}

// MockSectionRepository is a mock implementation of repository.SectionRepository
type MockSectionRepository struct {
	byGame     map[string][]*domain.Section
	prices     map[string]*domain.SectionPrice
	failUpdate map[string]error
	listErr    error

	// Writes records every successful UpdateMinPrice call in order
	Writes []PriceWrite
}

type PriceWrite struct {
	SectionID string
	MinPrice  int
}

func NewMockSectionRepository() *MockSectionRepository {
	return &MockSectionRepository{
		byGame:     make(map[string][]*domain.Section),
		prices:     make(map[string]*domain.SectionPrice),
		failUpdate: make(map[string]error),
	}
}

func (m *MockSectionRepository) GetByGameID(ctx context.Context, gameID string) ([]*domain.Section, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.byGame[gameID], nil
}

func (m *MockSectionRepository) GetPrice(ctx context.Context, sectionID string) (*domain.SectionPrice, error) {
	price, ok := m.prices[sectionID]
	if !ok {
		return nil, nil
	}
	return price, nil
}

func (m *MockSectionRepository) UpdateMinPrice(ctx context.Context, sectionID string, minPrice int) error {
	if err, ok := m.failUpdate[sectionID]; ok {
		return err
	}
	price, ok := m.prices[sectionID]
	if !ok {
		return domain.ErrSectionNotFound
	}
	price.MinPrice = minPrice
	m.Writes = append(m.Writes, PriceWrite{SectionID: sectionID, MinPrice: minPrice})
	return nil
}

// AddSection registers a section under its game with a stored price
func (m *MockSectionRepository) AddSection(section *domain.Section, minPrice int) {
	m.byGame[section.GameID] = append(m.byGame[section.GameID], section)
	m.prices[section.ID] = &domain.SectionPrice{MinPrice: minPrice}
}

// MockQuoteRepository is a mock implementation of repository.QuoteRepository
type MockQuoteRepository struct {
	quotes map[string]*domain.MarketplaceQuote
	err    error
}

func NewMockQuoteRepository() *MockQuoteRepository {
	return &MockQuoteRepository{
		quotes: make(map[string]*domain.MarketplaceQuote),
	}
}

func (m *MockQuoteRepository) GetByEventID(ctx context.Context, eventID string) (*domain.MarketplaceQuote, error) {
	if m.err != nil {
		return nil, m.err
	}
	quote, ok := m.quotes[eventID]
	if !ok {
		return nil, nil
	}
	return quote, nil
}

func (m *MockQuoteRepository) AddQuote(eventID string, minPrice, avgPrice float64) {
	m.quotes[eventID] = &domain.MarketplaceQuote{
		EventID:        eventID,
		MinTicketPrice: minPrice,
		AvgTicketPrice: avgPrice,
	}
}

// MockDiagnostics records warnings so tests can count and inspect them
type MockDiagnostics struct {
	mu   sync.Mutex
	msgs []string
}

func NewMockDiagnostics() *MockDiagnostics {
	return &MockDiagnostics{}
}

func (m *MockDiagnostics) Warn(msg string, fields ...zap.Field) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.msgs = append(m.msgs, msg)
}

func (m *MockDiagnostics) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.msgs)
}

func (m *MockDiagnostics) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.msgs...)
}
