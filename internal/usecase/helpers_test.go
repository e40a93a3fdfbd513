package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/fixture"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
)

var testKickoff = time.Date(2026, 8, 7, 19, 0, 0, 0, time.UTC)

type sequenceIDs struct {
	mu   sync.Mutex
	next int
}

func (s *sequenceIDs) NewID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return fmt.Sprintf("fx-%03d", s.next), nil
}

type recordingPublisher struct {
	mu    sync.Mutex
	items []fixture.Fixture
	err   error
}

func (p *recordingPublisher) PublishFixtureCompleted(_ context.Context, item fixture.Fixture) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.items = append(p.items, item)
	return p.err
}

type testWorld struct {
	leagues   *memory.LeagueRepository
	teams     *memory.TeamRepository
	players   *memory.PlayerRepository
	fixtures  *memory.FixtureRepository
	publisher *recordingPublisher
	schedule  *ScheduleService
	match     *MatchService
}

// newTestWorld seeds the in-memory store and schedules the Süper Lig season.
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()

	players := memory.NewPlayerRepository(memory.SeedPlayers())
	return newTestWorldWith(t, players, players)
}

// newTestWorldWith lets a test route availability writes made while saving
// results through availability instead of the squad store.
func newTestWorldWith(t *testing.T, players *memory.PlayerRepository, availability player.Repository) *testWorld {
	t.Helper()

	w := &testWorld{
		leagues:   memory.NewLeagueRepository(memory.SeedLeagues()),
		teams:     memory.NewTeamRepository(memory.SeedTeams()),
		players:   players,
		fixtures:  memory.NewFixtureRepository(nil, availability),
		publisher: &recordingPublisher{},
	}
	logger := logging.NewNop()
	w.schedule = NewScheduleService(w.leagues, w.teams, w.fixtures, &sequenceIDs{}, logger)
	w.match = NewMatchService(w.leagues, w.teams, w.players, w.fixtures, nil, w.publisher, MatchServiceConfig{
		DefaultLanguage: "en",
		MaxWorkers:      4,
		PredictionRuns:  200,
	}, logger)
	w.match.now = func() time.Time { return testKickoff.Add(2 * time.Hour) }

	if _, err := w.schedule.Generate(context.Background(), GenerateScheduleInput{
		LeagueID: memory.LeagueIDSuperLig,
		StartAt:  testKickoff,
	}); err != nil {
		t.Fatalf("generate schedule: %v", err)
	}
	return w
}

func seedPtr(v uint64) *uint64 {
	return &v
}
