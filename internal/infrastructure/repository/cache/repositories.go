package cache

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-manager/internal/domain/fixture"
	"github.com/riskibarqy/football-manager/internal/domain/league"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	basecache "github.com/riskibarqy/football-manager/internal/platform/cache"
)

type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	v, err := r.cache.GetOrLoad(ctx, "league:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]league.League(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]league.League)
	return append([]league.League(nil), items...), nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	key := "league:id:" + leagueID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return cachedLeagueByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return league.League{}, false, err
	}

	cached, _ := v.(cachedLeagueByID)
	return cached.value, cached.exists, nil
}

type cachedLeagueByID struct {
	value  league.League
	exists bool
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	key := "team:list:" + leagueID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByLeague(ctx, leagueID)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, leagueID, teamID string) (team.Team, bool, error) {
	key := "team:id:" + leagueID + ":" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, leagueID, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

// PlayerRepository caches squad reads. Availability writes drop every player
// entry of the league since suspensions change eligibility for the next match.
type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) ListByLeague(ctx context.Context, leagueID string) ([]player.Player, error) {
	key := playerKeyPrefix(leagueID) + "list"
	return r.loadList(ctx, key, func(ctx context.Context) ([]player.Player, error) {
		return r.next.ListByLeague(ctx, leagueID)
	})
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, leagueID, teamID string) ([]player.Player, error) {
	key := playerKeyPrefix(leagueID) + "team:" + teamID
	return r.loadList(ctx, key, func(ctx context.Context) ([]player.Player, error) {
		return r.next.ListByTeam(ctx, leagueID, teamID)
	})
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, leagueID string, playerIDs []string) ([]player.Player, error) {
	ids := append([]string(nil), playerIDs...)
	sort.Strings(ids)
	key := playerKeyPrefix(leagueID) + "ids:" + strings.Join(ids, ",")
	return r.loadList(ctx, key, func(ctx context.Context) ([]player.Player, error) {
		return r.next.GetByIDs(ctx, leagueID, playerIDs)
	})
}

func (r *PlayerRepository) UpdateAvailability(ctx context.Context, leagueID string, items []player.Availability) error {
	if err := r.next.UpdateAvailability(ctx, leagueID, items); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, playerKeyPrefix(leagueID))
	return nil
}

func (r *PlayerRepository) loadList(ctx context.Context, key string, load func(context.Context) ([]player.Player, error)) ([]player.Player, error) {
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]player.Player(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]player.Player)
	return append([]player.Player(nil), items...), nil
}

func playerKeyPrefix(leagueID string) string {
	return "player:" + leagueID + ":"
}

type FixtureRepository struct {
	next  fixture.Repository
	cache *basecache.Store
}

func NewFixtureRepository(next fixture.Repository, cache *basecache.Store) *FixtureRepository {
	return &FixtureRepository{next: next, cache: cache}
}

func (r *FixtureRepository) ListByLeague(ctx context.Context, leagueID string) ([]fixture.Fixture, error) {
	key := fixtureKeyPrefix(leagueID) + "list"
	return r.loadList(ctx, key, func(ctx context.Context) ([]fixture.Fixture, error) {
		return r.next.ListByLeague(ctx, leagueID)
	})
}

func (r *FixtureRepository) ListByGameweek(ctx context.Context, leagueID string, gameweek int) ([]fixture.Fixture, error) {
	key := fixtureKeyPrefix(leagueID) + "gw:" + strconv.Itoa(gameweek)
	return r.loadList(ctx, key, func(ctx context.Context) ([]fixture.Fixture, error) {
		return r.next.ListByGameweek(ctx, leagueID, gameweek)
	})
}

func (r *FixtureRepository) GetByID(ctx context.Context, leagueID, fixtureID string) (fixture.Fixture, bool, error) {
	key := fixtureKeyPrefix(leagueID) + "id:" + fixtureID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, leagueID, fixtureID)
		if err != nil {
			return nil, err
		}
		return cachedFixtureByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return fixture.Fixture{}, false, err
	}

	cached, _ := v.(cachedFixtureByID)
	return cached.value, cached.exists, nil
}

func (r *FixtureRepository) ReplaceByLeague(ctx context.Context, leagueID string, fixtures []fixture.Fixture) error {
	if err := r.next.ReplaceByLeague(ctx, leagueID, fixtures); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, fixtureKeyPrefix(leagueID))
	return nil
}

// SaveResult also drops the league's player entries, since the same write
// changes squad availability.
func (r *FixtureRepository) SaveResult(ctx context.Context, item fixture.Fixture, availability []player.Availability) error {
	if err := r.next.SaveResult(ctx, item, availability); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, fixtureKeyPrefix(item.LeagueID), playerKeyPrefix(item.LeagueID))
	return nil
}

func (r *FixtureRepository) loadList(ctx context.Context, key string, load func(context.Context) ([]fixture.Fixture, error)) ([]fixture.Fixture, error) {
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]fixture.Fixture(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]fixture.Fixture)
	return append([]fixture.Fixture(nil), items...), nil
}

type cachedFixtureByID struct {
	value  fixture.Fixture
	exists bool
}

func fixtureKeyPrefix(leagueID string) string {
	return "fixture:" + leagueID + ":"
}
