package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/football-manager/internal/usecase"
)

func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GenerateSchedule")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))

	var req generateScheduleRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	startAt, err := time.Parse(time.RFC3339, req.StartAt)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: start_at must be RFC3339", usecase.ErrInvalidInput))
		return
	}
	var interval time.Duration
	if raw := strings.TrimSpace(req.Interval); raw != "" {
		interval, err = time.ParseDuration(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: interval must be a duration like 72h", usecase.ErrInvalidInput))
			return
		}
	}

	fixtures, err := h.scheduleService.Generate(ctx, usecase.GenerateScheduleInput{
		LeagueID: leagueID,
		StartAt:  startAt,
		Interval: interval,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "generate schedule failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fixtureDTO, 0, len(fixtures))
	for _, f := range fixtures {
		items = append(items, fixtureToDTO(f))
	}

	writeSuccess(ctx, w, http.StatusCreated, items)
}

func (h *Handler) SimulateFixture(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SimulateFixture")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	fixtureID := strings.TrimSpace(r.PathValue("fixtureID"))

	var req simulateFixtureRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.SimulateFixture(ctx, usecase.SimulateFixtureInput{
		LeagueID:  leagueID,
		FixtureID: fixtureID,
		Language:  req.Language,
		Seed:      req.Seed,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "simulate fixture failed", "league_id", leagueID, "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDetailDTO(ctx, item))
}

func (h *Handler) SimulateGameweek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SimulateGameweek")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	gameweek, err := strconv.Atoi(strings.TrimSpace(r.PathValue("gameweek")))
	if err != nil || gameweek <= 0 {
		writeError(ctx, w, fmt.Errorf("%w: gameweek must be positive integer", usecase.ErrInvalidInput))
		return
	}

	var req simulateGameweekRequest
	if err := decodeOptionalJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	fixtures, err := h.matchService.SimulateGameweek(ctx, usecase.SimulateGameweekInput{
		LeagueID:   leagueID,
		Gameweek:   gameweek,
		Language:   req.Language,
		Seed:       req.Seed,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "simulate gameweek failed", "league_id", leagueID, "gameweek", gameweek, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fixtureDTO, 0, len(fixtures))
	for _, f := range fixtures {
		items = append(items, fixtureToDTO(f))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) PredictFixtureByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PredictFixtureByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	fixtureID := strings.TrimSpace(r.PathValue("fixtureID"))
	query := r.URL.Query()

	runs := 0
	if raw := strings.TrimSpace(query.Get("runs")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: runs must be positive integer", usecase.ErrInvalidInput))
			return
		}
		runs = v
	}

	var seed *uint64
	if raw := strings.TrimSpace(query.Get("seed")); raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: seed must be unsigned integer", usecase.ErrInvalidInput))
			return
		}
		seed = &v
	}

	prediction, err := h.matchService.PredictFixture(ctx, usecase.PredictFixtureInput{
		LeagueID:  leagueID,
		FixtureID: fixtureID,
		Runs:      runs,
		Seed:      seed,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "predict fixture failed", "league_id", leagueID, "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionToDTO(prediction))
}

func formatScore(home, away int) string {
	return strconv.Itoa(home) + "-" + strconv.Itoa(away)
}
