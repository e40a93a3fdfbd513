package usecase

import (
	"context"
	"errors"
	"math"
	"reflect"
	"sync"
	"testing"

	"github.com/riskibarqy/football-manager/internal/domain/fixture"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/infrastructure/repository/memory"
	playermock "github.com/riskibarqy/football-manager/internal/mocks/domain/player"
	"github.com/stretchr/testify/mock"
)

func firstFixture(t *testing.T, w *testWorld, gameweek int) fixture.Fixture {
	t.Helper()

	items, err := w.fixtures.ListByGameweek(context.Background(), memory.LeagueIDSuperLig, gameweek)
	if err != nil || len(items) == 0 {
		t.Fatalf("expected fixtures in gameweek %d: %v", gameweek, err)
	}
	return items[0]
}

func TestMatchService_SimulateFixture_PersistsAndPublishes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	w := newTestWorld(t)
	target := firstFixture(t, w, 1)

	played, err := w.match.SimulateFixture(ctx, SimulateFixtureInput{
		LeagueID:  memory.LeagueIDSuperLig,
		FixtureID: target.ID,
		Seed:      seedPtr(99),
	})
	if err != nil {
		t.Fatalf("simulate fixture: %v", err)
	}

	if !played.Played || played.Status != fixture.StatusFinished {
		t.Fatalf("expected finished fixture, got %+v", played)
	}
	if played.Result.Seed != 99 {
		t.Fatalf("expected seed to be recorded, got %d", played.Result.Seed)
	}
	if played.FinishedAt == nil {
		t.Fatalf("expected finished at timestamp")
	}
	if len(played.Result.HomeLineup) != 11 || len(played.Result.AwayLineup) != 11 {
		t.Fatalf("expected full lineups, got %d and %d", len(played.Result.HomeLineup), len(played.Result.AwayLineup))
	}

	stored, ok, _ := w.fixtures.GetByID(ctx, memory.LeagueIDSuperLig, target.ID)
	if !ok || !stored.Played || stored.HomeScore != played.HomeScore || stored.AwayScore != played.AwayScore {
		t.Fatalf("expected stored result, got %+v", stored)
	}

	if len(w.publisher.items) != 1 || w.publisher.items[0].ID != target.ID {
		t.Fatalf("expected one published fixture, got %d", len(w.publisher.items))
	}

	_, err = w.match.SimulateFixture(ctx, SimulateFixtureInput{LeagueID: memory.LeagueIDSuperLig, FixtureID: target.ID})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict when replaying a played fixture, got %v", err)
	}
}

func TestMatchService_SimulateFixture_SameSeedSameMatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	first, second := newTestWorld(t), newTestWorld(t)
	target := firstFixture(t, first, 2)

	a, err := first.match.SimulateFixture(ctx, SimulateFixtureInput{LeagueID: memory.LeagueIDSuperLig, FixtureID: target.ID, Seed: seedPtr(7)})
	if err != nil {
		t.Fatalf("simulate first: %v", err)
	}
	b, err := second.match.SimulateFixture(ctx, SimulateFixtureInput{LeagueID: memory.LeagueIDSuperLig, FixtureID: target.ID, Seed: seedPtr(7)})
	if err != nil {
		t.Fatalf("simulate second: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Fatalf("expected identical replays for the same seed")
	}
}

func TestMatchService_SimulateFixture_ServesSuspension(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	w := newTestWorld(t)
	target := firstFixture(t, w, 1)

	squad, _ := w.players.ListByTeam(ctx, memory.LeagueIDSuperLig, target.HomeTeamID)
	banned := squad[2].ID
	if err := w.players.UpdateAvailability(ctx, memory.LeagueIDSuperLig, []player.Availability{{PlayerID: banned, SuspensionGames: 2}}); err != nil {
		t.Fatalf("suspend player: %v", err)
	}

	played, err := w.match.SimulateFixture(ctx, SimulateFixtureInput{LeagueID: memory.LeagueIDSuperLig, FixtureID: target.ID, Seed: seedPtr(3)})
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	for _, id := range played.Result.HomeLineup {
		if id == banned {
			t.Fatalf("suspended player %s was selected", banned)
		}
	}

	got, _ := w.players.GetByIDs(ctx, memory.LeagueIDSuperLig, []string{banned})
	if len(got) != 1 || got[0].SuspensionGames != 1 {
		t.Fatalf("expected suspension to drop to 1, got %+v", got)
	}
}

func TestMatchService_SimulateFixture_PublishFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	w := newTestWorld(t)
	w.publisher.err = errors.New("redis down")
	target := firstFixture(t, w, 1)

	if _, err := w.match.SimulateFixture(context.Background(), SimulateFixtureInput{
		LeagueID:  memory.LeagueIDSuperLig,
		FixtureID: target.ID,
	}); err != nil {
		t.Fatalf("expected publish failure to be logged only, got %v", err)
	}
}

func TestMatchService_SimulateFixture_NotFound(t *testing.T) {
	t.Parallel()

	w := newTestWorld(t)
	_, err := w.match.SimulateFixture(context.Background(), SimulateFixtureInput{LeagueID: memory.LeagueIDSuperLig, FixtureID: "nope"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchService_SimulateGameweek_PlaysRoundInOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	w := newTestWorld(t)
	round, _ := w.fixtures.ListByGameweek(ctx, memory.LeagueIDSuperLig, 1)

	played, err := w.match.SimulateGameweek(ctx, SimulateGameweekInput{
		LeagueID: memory.LeagueIDSuperLig,
		Gameweek: 1,
		Seed:     seedPtr(1000),
	})
	if err != nil {
		t.Fatalf("simulate gameweek: %v", err)
	}
	if len(played) != len(round) {
		t.Fatalf("expected %d fixtures, got %d", len(round), len(played))
	}
	for i := range played {
		if played[i].ID != round[i].ID {
			t.Fatalf("result %d out of order: got=%s want=%s", i, played[i].ID, round[i].ID)
		}
		if played[i].Result.Seed != 1000+uint64(i) {
			t.Fatalf("fixture %d seed: got=%d want=%d", i, played[i].Result.Seed, 1000+uint64(i))
		}
	}

	again, err := w.match.SimulateGameweek(ctx, SimulateGameweekInput{LeagueID: memory.LeagueIDSuperLig, Gameweek: 1})
	if err != nil {
		t.Fatalf("replay gameweek: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("expected nothing left to play, got %d", len(again))
	}

	if _, err := w.match.SimulateGameweek(ctx, SimulateGameweekInput{LeagueID: memory.LeagueIDSuperLig, Gameweek: 99}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for empty gameweek, got %v", err)
	}
}

func TestMatchService_PredictFixture(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	w := newTestWorld(t)
	target := firstFixture(t, w, 1)

	got, err := w.match.PredictFixture(ctx, PredictFixtureInput{
		LeagueID:  memory.LeagueIDSuperLig,
		FixtureID: target.ID,
		Runs:      120,
		Seed:      seedPtr(5),
	})
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if got.Runs != 120 || got.Seed != 5 {
		t.Fatalf("unexpected prediction header: %+v", got)
	}
	if sum := got.HomeWin + got.Draw + got.AwayWin; math.Abs(sum-1) > 1e-9 {
		t.Fatalf("probabilities must sum to 1, got %f", sum)
	}
	if got.MostLikelyScore.Count < 1 {
		t.Fatalf("expected a most likely score, got %+v", got.MostLikelyScore)
	}

	again, _ := w.match.PredictFixture(ctx, PredictFixtureInput{
		LeagueID:   memory.LeagueIDSuperLig,
		FixtureID:  target.ID,
		Runs:       120,
		MaxWorkers: 1,
		Seed:       seedPtr(5),
	})
	if again != got {
		t.Fatalf("expected worker count not to change the prediction: %+v vs %+v", again, got)
	}

	stored, _, _ := w.fixtures.GetByID(ctx, memory.LeagueIDSuperLig, target.ID)
	if stored.Played {
		t.Fatalf("prediction must not persist a result")
	}
	if len(w.publisher.items) != 0 {
		t.Fatalf("prediction must not publish")
	}

	for _, runs := range []int{-1, maxPredictionRuns + 1} {
		if _, err := w.match.PredictFixture(ctx, PredictFixtureInput{LeagueID: memory.LeagueIDSuperLig, FixtureID: target.ID, Runs: runs}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("runs=%d: expected ErrInvalidInput, got %v", runs, err)
		}
	}
}

func TestAvailabilityUpdates(t *testing.T) {
	t.Parallel()

	played := fixture.Fixture{Result: fixture.Result{Cards: []fixture.Card{
		{PlayerID: "red", Kind: fixture.CardRed},
		{PlayerID: "yellow", Kind: fixture.CardYellow},
	}}}
	squad := []player.Player{
		{ID: "red"},
		{ID: "yellow"},
		{ID: "banned", SuspensionGames: 1, Injured: true},
		{ID: "fit"},
	}

	got := availabilityUpdates(played, squad)
	want := []player.Availability{
		{PlayerID: "red", SuspensionGames: 1},
		{PlayerID: "banned", SuspensionGames: 0, Injured: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected updates:\n got=%+v\nwant=%+v", got, want)
	}
}

func TestSummarizePrediction(t *testing.T) {
	t.Parallel()

	got := summarizePrediction([][2]int{{1, 0}, {2, 2}, {1, 0}, {0, 3}, {2, 2}})
	if got.HomeWin != 0.4 || got.Draw != 0.4 || got.AwayWin != 0.2 {
		t.Fatalf("unexpected outcome split: %+v", got)
	}
	if got.AverageHomeGoals != 1.2 || got.AverageAwayGoals != 1.4 {
		t.Fatalf("unexpected averages: %+v", got)
	}
	if got.MostLikelyScore != (ScoreLine{Home: 1, Away: 0, Count: 2}) {
		t.Fatalf("expected the earliest of tied score lines, got %+v", got.MostLikelyScore)
	}
}

func TestWorkerCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		requested, configured, tasks, want int
	}{
		{0, 4, 10, 4},
		{2, 4, 10, 2},
		{8, 4, 3, 3},
		{0, 0, 5, 1},
		{0, 4, 0, 1},
	}
	for _, tt := range tests {
		if got := workerCount(tt.requested, tt.configured, tt.tasks); got != tt.want {
			t.Fatalf("workerCount(%d,%d,%d): got=%d want=%d", tt.requested, tt.configured, tt.tasks, got, tt.want)
		}
	}
}

func TestMatchService_SimulateFixture_ConcurrentCallsPlayOnce(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	w := newTestWorld(t)
	target := firstFixture(t, w, 1)

	squad, _ := w.players.ListByTeam(ctx, memory.LeagueIDSuperLig, target.HomeTeamID)
	banned := squad[3].ID
	if err := w.players.UpdateAvailability(ctx, memory.LeagueIDSuperLig, []player.Availability{{PlayerID: banned, SuspensionGames: 2}}); err != nil {
		t.Fatalf("suspend player: %v", err)
	}

	const callers = 4
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = w.match.SimulateFixture(ctx, SimulateFixtureInput{
				LeagueID:  memory.LeagueIDSuperLig,
				FixtureID: target.ID,
				Seed:      seedPtr(uint64(i + 1)),
			})
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case !errors.Is(err, ErrConflict):
			t.Fatalf("expected ErrConflict for losing callers, got %v", err)
		}
	}
	if succeeded != 1 {
		t.Fatalf("expected exactly one successful simulation, got %d", succeeded)
	}
	if len(w.publisher.items) != 1 {
		t.Fatalf("expected one published fixture, got %d", len(w.publisher.items))
	}

	got, _ := w.players.GetByIDs(ctx, memory.LeagueIDSuperLig, []string{banned})
	if len(got) != 1 || got[0].SuspensionGames != 1 {
		t.Fatalf("expected suspension served once, got %+v", got)
	}
}

func TestMatchService_SimulateFixture_AvailabilityFailureKeepsFixtureOpen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	failing := playermock.NewRepository(t)
	failing.
		On("UpdateAvailability", mock.Anything, memory.LeagueIDSuperLig, mock.Anything).
		Return(errors.New("connection reset")).
		Once()

	w := newTestWorldWith(t, memory.NewPlayerRepository(memory.SeedPlayers()), failing)
	target := firstFixture(t, w, 1)

	_, err := w.match.SimulateFixture(ctx, SimulateFixtureInput{
		LeagueID:  memory.LeagueIDSuperLig,
		FixtureID: target.ID,
		Seed:      seedPtr(9),
	})
	if err == nil || errors.Is(err, ErrConflict) {
		t.Fatalf("expected storage error, got %v", err)
	}

	stored, ok, err := w.fixtures.GetByID(ctx, memory.LeagueIDSuperLig, target.ID)
	if err != nil || !ok {
		t.Fatalf("get fixture: ok=%t err=%v", ok, err)
	}
	if stored.Played || !stored.Simulatable() {
		t.Fatalf("expected fixture to stay unplayed, got %+v", stored)
	}
	if len(w.publisher.items) != 0 {
		t.Fatalf("expected nothing published, got %d", len(w.publisher.items))
	}
}
