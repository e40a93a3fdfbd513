package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/fixture"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	basecache "github.com/riskibarqy/football-manager/internal/platform/cache"
)

type countingFixtureRepo struct {
	fixture.Repository
	items []fixture.Fixture
	lists int
	saved int
}

func (r *countingFixtureRepo) ListByLeague(_ context.Context, _ string) ([]fixture.Fixture, error) {
	r.lists++
	return append([]fixture.Fixture(nil), r.items...), nil
}

func (r *countingFixtureRepo) SaveResult(_ context.Context, item fixture.Fixture, _ []player.Availability) error {
	r.saved++
	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = item
		}
	}
	return nil
}

func TestFixtureRepository_SaveResultInvalidatesLeague(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := &countingFixtureRepo{items: []fixture.Fixture{{ID: "f1", LeagueID: "l1"}}}
	repo := NewFixtureRepository(next, basecache.NewStore(time.Minute))

	for range 3 {
		if _, err := repo.ListByLeague(ctx, "l1"); err != nil {
			t.Fatalf("list: %v", err)
		}
	}
	if next.lists != 1 {
		t.Fatalf("expected one upstream load, got %d", next.lists)
	}

	if err := repo.SaveResult(ctx, fixture.Fixture{ID: "f1", LeagueID: "l1", Played: true}, nil); err != nil {
		t.Fatalf("save: %v", err)
	}

	items, err := repo.ListByLeague(ctx, "l1")
	if err != nil {
		t.Fatalf("list after save: %v", err)
	}
	if next.lists != 2 {
		t.Fatalf("expected reload after save, got %d loads", next.lists)
	}
	if len(items) != 1 || !items[0].Played {
		t.Fatalf("expected fresh fixture, got %+v", items)
	}
}

type countingPlayerRepo struct {
	player.Repository
	teamLoads int
}

func (r *countingPlayerRepo) ListByTeam(_ context.Context, _, teamID string) ([]player.Player, error) {
	r.teamLoads++
	return []player.Player{{ID: "p1", TeamID: teamID}}, nil
}

func (r *countingPlayerRepo) UpdateAvailability(context.Context, string, []player.Availability) error {
	return nil
}

func TestPlayerRepository_AvailabilityInvalidatesSquads(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := &countingPlayerRepo{}
	repo := NewPlayerRepository(next, basecache.NewStore(time.Minute))

	first, _ := repo.ListByTeam(ctx, "l1", "t1")
	first[0].Name = "mutated"

	second, _ := repo.ListByTeam(ctx, "l1", "t1")
	if second[0].Name != "" {
		t.Fatalf("cached slice leaked caller mutation")
	}
	if next.teamLoads != 1 {
		t.Fatalf("expected cached squad, got %d loads", next.teamLoads)
	}

	if err := repo.UpdateAvailability(ctx, "l1", []player.Availability{{PlayerID: "p1", SuspensionGames: 1}}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := repo.ListByTeam(ctx, "l1", "t1"); err != nil {
		t.Fatalf("list: %v", err)
	}
	if next.teamLoads != 2 {
		t.Fatalf("expected reload after availability update, got %d loads", next.teamLoads)
	}
}

func TestFixtureRepository_SaveResultInvalidatesSquads(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := basecache.NewStore(time.Minute)
	nextPlayers := &countingPlayerRepo{}
	players := NewPlayerRepository(nextPlayers, store)
	fixtures := NewFixtureRepository(&countingFixtureRepo{items: []fixture.Fixture{{ID: "f1", LeagueID: "l1"}}}, store)

	if _, err := players.ListByTeam(ctx, "l1", "t1"); err != nil {
		t.Fatalf("list: %v", err)
	}
	if err := fixtures.SaveResult(ctx, fixture.Fixture{ID: "f1", LeagueID: "l1", Played: true}, []player.Availability{{PlayerID: "p1", SuspensionGames: 1}}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := players.ListByTeam(ctx, "l1", "t1"); err != nil {
		t.Fatalf("list after save: %v", err)
	}
	if nextPlayers.teamLoads != 2 {
		t.Fatalf("expected squad reload after result save, got %d loads", nextPlayers.teamLoads)
	}
}
