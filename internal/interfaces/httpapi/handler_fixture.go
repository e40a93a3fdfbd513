package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-manager/internal/usecase"
)

func (h *Handler) ListFixturesByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixturesByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	gameweek := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("gameweek")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: gameweek must be positive integer", usecase.ErrInvalidInput))
			return
		}
		gameweek = v
	}

	fixtures, err := h.fixtureService.ListByLeague(ctx, leagueID, gameweek)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "league_id", leagueID, "gameweek", gameweek, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fixtureDTO, 0, len(fixtures))
	for _, f := range fixtures {
		items = append(items, fixtureToDTO(f))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetFixtureDetailsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtureDetailsByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	fixtureID := strings.TrimSpace(r.PathValue("fixtureID"))

	item, err := h.fixtureService.GetByID(ctx, leagueID, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "get fixture failed", "league_id", leagueID, "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, fixtureToDetailDTO(ctx, item))
}

func (h *Handler) ListFixtureEventsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixtureEventsByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	fixtureID := strings.TrimSpace(r.PathValue("fixtureID"))

	item, err := h.fixtureService.GetByID(ctx, leagueID, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixture events failed", "league_id", leagueID, "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	importantOnly := strings.EqualFold(strings.TrimSpace(r.URL.Query().Get("important")), "true")
	items := make([]fixtureEventDTO, 0, len(item.Result.Events))
	for _, e := range item.Result.Events {
		if importantOnly && !e.Important {
			continue
		}
		items = append(items, fixtureEventToDTO(e))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}
