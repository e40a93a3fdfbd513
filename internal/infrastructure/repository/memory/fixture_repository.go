package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/football-manager/internal/domain/fixture"
	"github.com/riskibarqy/football-manager/internal/domain/player"
)

// FixtureRepository keeps fixtures per league. Results are saved together with
// the squad availability they change, through players.
type FixtureRepository struct {
	mu               sync.RWMutex
	fixturesByLeague map[string][]fixture.Fixture
	players          player.Repository
}

func NewFixtureRepository(fixtures []fixture.Fixture, players player.Repository) *FixtureRepository {
	byLeague := make(map[string][]fixture.Fixture)
	for _, item := range fixtures {
		byLeague[item.LeagueID] = append(byLeague[item.LeagueID], item)
	}
	for leagueID := range byLeague {
		sortFixtures(byLeague[leagueID])
	}
	return &FixtureRepository{fixturesByLeague: byLeague, players: players}
}

func (r *FixtureRepository) ListByLeague(_ context.Context, leagueID string) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]fixture.Fixture(nil), r.fixturesByLeague[leagueID]...), nil
}

func (r *FixtureRepository) ListByGameweek(_ context.Context, leagueID string, gameweek int) ([]fixture.Fixture, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fixture.Fixture, 0, 16)
	for _, item := range r.fixturesByLeague[leagueID] {
		if item.Gameweek == gameweek {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *FixtureRepository) GetByID(_ context.Context, leagueID, fixtureID string) (fixture.Fixture, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.fixturesByLeague[leagueID] {
		if item.ID == fixtureID {
			return item, true, nil
		}
	}
	return fixture.Fixture{}, false, nil
}

func (r *FixtureRepository) ReplaceByLeague(_ context.Context, leagueID string, fixtures []fixture.Fixture) error {
	items := append([]fixture.Fixture(nil), fixtures...)
	sortFixtures(items)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.fixturesByLeague[leagueID] = items
	return nil
}

// SaveResult holds the fixture lock across the availability write, so a
// fixture is stored only after its squads were updated.
func (r *FixtureRepository) SaveResult(ctx context.Context, item fixture.Fixture, availability []player.Availability) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.fixturesByLeague[item.LeagueID]
	for i := range items {
		if items[i].ID != item.ID {
			continue
		}
		if items[i].Played {
			return fmt.Errorf("%w: league=%s fixture=%s", fixture.ErrAlreadyPlayed, item.LeagueID, item.ID)
		}
		if r.players != nil {
			if err := r.players.UpdateAvailability(ctx, item.LeagueID, availability); err != nil {
				return fmt.Errorf("update player availability: %w", err)
			}
		}
		items[i] = item
		return nil
	}
	return fmt.Errorf("fixture %s not found in league %s", item.ID, item.LeagueID)
}

func sortFixtures(items []fixture.Fixture) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Gameweek != items[j].Gameweek {
			return items[i].Gameweek < items[j].Gameweek
		}
		return items[i].KickoffAt.Before(items[j].KickoffAt)
	})
}
