package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stadiumdeals/margin-finder/internal/domain"
	"github.com/stadiumdeals/margin-finder/internal/dto"
	"github.com/stadiumdeals/margin-finder/internal/service"
	"github.com/stadiumdeals/margin-finder/internal/stream"
	"github.com/stadiumdeals/margin-finder/pkg/response"
	"github.com/stadiumdeals/margin-finder/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ReconcileHandler handles reconciliation HTTP requests
type ReconcileHandler struct {
	runner   service.LeagueRunner
	reporter *stream.RunReporter
}

// NewReconcileHandler creates a new ReconcileHandler. reporter may be
// nil when run reporting is disabled.
func NewReconcileHandler(runner service.LeagueRunner, reporter *stream.RunReporter) *ReconcileHandler {
	return &ReconcileHandler{
		runner:   runner,
		reporter: reporter,
	}
}

// Reconcile handles POST /api/v1/reconcile/:league - runs a full
// reconciliation pass over the league's teams
func (h *ReconcileHandler) Reconcile(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.reconcile.Reconcile")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	league := c.Param("league")
	span.SetAttributes(attribute.String("league", league))

	if league == "" {
		span.RecordError(errors.New("league is required"))
		span.SetStatus(codes.Error, "League is required")
		c.JSON(http.StatusBadRequest, response.BadRequest("League is required"))
		return
	}

	result, err := h.runner.ReconcileLeague(ctx, league)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, domain.ErrNoTeams) {
			span.SetStatus(codes.Error, "No teams found for league")
			c.JSON(http.StatusNotFound, response.NotFound("No teams found for league"))
			return
		}
		span.SetStatus(codes.Error, "Failed to reconcile league")
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to reconcile league"))
		return
	}

	if h.reporter != nil {
		h.reporter.Report(ctx, result)
	}

	span.SetAttributes(attribute.String("run_id", result.RunID))
	span.SetStatus(codes.Ok, "")
	c.JSON(http.StatusOK, response.OK(dto.ToReconcileRunResponse(result)))
}

// ListLeagues handles GET /api/v1/leagues - lists known leagues
func (h *ReconcileHandler) ListLeagues(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.reconcile.ListLeagues")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	leagues, err := h.runner.ListLeagues(ctx)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, domain.ErrNoLeagues) {
			span.SetStatus(codes.Error, "No leagues found")
			c.JSON(http.StatusNotFound, response.NotFound("No leagues found"))
			return
		}
		span.SetStatus(codes.Error, "Failed to list leagues")
		c.JSON(http.StatusInternalServerError, response.InternalError("Failed to list leagues"))
		return
	}

	span.SetStatus(codes.Ok, "")
	c.JSON(http.StatusOK, response.OK(dto.LeaguesResponse{Leagues: leagues}))
}
