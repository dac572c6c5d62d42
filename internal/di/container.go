package di

import (
	"time"

	"github.com/stadiumdeals/margin-finder/internal/handler"
	"github.com/stadiumdeals/margin-finder/internal/repository"
	"github.com/stadiumdeals/margin-finder/internal/service"
	"github.com/stadiumdeals/margin-finder/internal/stream"
	"github.com/stadiumdeals/margin-finder/pkg/database"
	"github.com/stadiumdeals/margin-finder/pkg/kafka"
	"github.com/stadiumdeals/margin-finder/pkg/logger"
	"github.com/stadiumdeals/margin-finder/pkg/redis"
)

// Container holds all dependencies for the margin finder service
type Container struct {
	// Infrastructure
	DB       *database.PostgresDB
	Redis    *redis.Client
	Producer *kafka.Producer

	// Repositories
	CatalogRepo repository.CatalogRepository
	GameRepo    repository.GameRepository
	SectionRepo repository.SectionRepository
	QuoteRepo   repository.QuoteRepository

	// Services
	SectionReconciler service.SectionReconciler
	GameUpdater       service.GameUpdater
	TeamScheduler     service.TeamScheduler
	LeagueRunner      service.LeagueRunner

	// Streaming
	RunReporter *stream.RunReporter

	// Handlers
	HealthHandler    *handler.HealthHandler
	ReconcileHandler *handler.ReconcileHandler
}

// ContainerConfig contains configuration for building the container.
// Redis and Producer are optional.
type ContainerConfig struct {
	ServiceName  string
	DB           *database.PostgresDB
	Redis        *redis.Client
	Producer     *kafka.Producer
	UpdateWindow time.Duration
	ReportTopic  string
	Logger       *logger.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:       cfg.DB,
		Redis:    cfg.Redis,
		Producer: cfg.Producer,
	}

	// Initialize repositories
	c.CatalogRepo = repository.NewPostgresCatalogRepository(c.DB.Pool())
	c.GameRepo = repository.NewPostgresGameRepository(c.DB.Pool())
	c.SectionRepo = repository.NewPostgresSectionRepository(c.DB.Pool())
	c.QuoteRepo = repository.NewPostgresQuoteRepository(c.DB.Pool())

	// Initialize services; diagnostics go through the shared logger
	var diag service.Diagnostics = cfg.Logger
	c.SectionReconciler = service.NewSectionReconciler(c.SectionRepo, c.QuoteRepo, diag)
	c.GameUpdater = service.NewGameUpdater(c.SectionRepo, c.SectionReconciler, diag)
	c.TeamScheduler = service.NewTeamScheduler(c.GameRepo, c.GameUpdater, diag, cfg.UpdateWindow)
	c.LeagueRunner = service.NewLeagueRunner(c.CatalogRepo, c.TeamScheduler, diag)

	// Run reporting is disabled when no producer is configured
	if c.Producer != nil {
		c.RunReporter = stream.NewRunReporter(c.Producer, cfg.ReportTopic, cfg.Logger.Logger)
	}

	// Initialize handlers
	checks := map[string]handler.HealthChecker{"postgres": c.DB}
	if c.Redis != nil {
		checks["redis"] = c.Redis
	}
	c.HealthHandler = handler.NewHealthHandler(cfg.ServiceName, checks)
	c.ReconcileHandler = handler.NewReconcileHandler(c.LeagueRunner, c.RunReporter)

	return c
}
