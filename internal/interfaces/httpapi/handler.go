package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
	"github.com/riskibarqy/football-manager/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	leagueService         *usecase.LeagueService
	teamService           *usecase.TeamService
	fixtureService        *usecase.FixtureService
	leagueStandingService *usecase.LeagueStandingService
	scheduleService       *usecase.ScheduleService
	matchService          *usecase.MatchService
	logger                *logging.Logger
	validator             *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	teamService *usecase.TeamService,
	fixtureService *usecase.FixtureService,
	leagueStandingService *usecase.LeagueStandingService,
	scheduleService *usecase.ScheduleService,
	matchService *usecase.MatchService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:         leagueService,
		teamService:           teamService,
		fixtureService:        fixtureService,
		leagueStandingService: leagueStandingService,
		scheduleService:       scheduleService,
		matchService:          matchService,
		logger:                logger,
		validator:             validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeOptionalJSON decodes the request body into dst. An empty body leaves dst untouched.
func decodeOptionalJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return nil
	}
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		return fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err)
	}
	if len(raw) == 0 {
		return nil
	}
	if err := sonic.ConfigStd.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
