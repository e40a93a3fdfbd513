package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/football-manager/internal/domain/fixture"
	"github.com/riskibarqy/football-manager/internal/domain/league"
	"github.com/riskibarqy/football-manager/internal/domain/matchsim"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

const (
	defaultPredictionRuns = 500
	maxPredictionRuns     = 2000
	defaultMatchWorkers   = 4
	redCardBanGames       = 1
)

// Simulator plays one fixture. *matchsim.Engine satisfies it.
type Simulator interface {
	Simulate(fx fixture.Fixture, home, away team.Snapshot, lang string, rng matchsim.Source) fixture.Fixture
}

// FixtureEventPublisher announces fixtures that have just been played.
type FixtureEventPublisher interface {
	PublishFixtureCompleted(ctx context.Context, item fixture.Fixture) error
}

type MatchServiceConfig struct {
	DefaultLanguage string
	MaxWorkers      int
	PredictionRuns  int
}

type SimulateFixtureInput struct {
	LeagueID  string
	FixtureID string
	Language  string
	Seed      *uint64
}

type SimulateGameweekInput struct {
	LeagueID   string
	Gameweek   int
	Language   string
	Seed       *uint64
	MaxWorkers int
}

type PredictFixtureInput struct {
	LeagueID   string
	FixtureID  string
	Runs       int
	MaxWorkers int
	Seed       *uint64
}

type ScoreLine struct {
	Home  int
	Away  int
	Count int
}

type Prediction struct {
	FixtureID        string
	Runs             int
	Seed             uint64
	HomeWin          float64
	Draw             float64
	AwayWin          float64
	AverageHomeGoals float64
	AverageAwayGoals float64
	MostLikelyScore  ScoreLine
}

type MatchService struct {
	leagueRepo  league.Repository
	teamRepo    team.Repository
	playerRepo  player.Repository
	fixtureRepo fixture.Repository
	engine      Simulator
	publisher   FixtureEventPublisher
	cfg         MatchServiceConfig
	logger      *logging.Logger

	now     func() time.Time
	newSeed func() uint64
}

func NewMatchService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	playerRepo player.Repository,
	fixtureRepo fixture.Repository,
	engine Simulator,
	publisher FixtureEventPublisher,
	cfg MatchServiceConfig,
	logger *logging.Logger,
) *MatchService {
	if logger == nil {
		logger = logging.Default()
	}
	if engine == nil {
		engine = matchsim.NewEngine(matchsim.WithLogger(logger))
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = defaultMatchWorkers
	}
	if cfg.PredictionRuns <= 0 || cfg.PredictionRuns > maxPredictionRuns {
		cfg.PredictionRuns = defaultPredictionRuns
	}
	return &MatchService{
		leagueRepo:  leagueRepo,
		teamRepo:    teamRepo,
		playerRepo:  playerRepo,
		fixtureRepo: fixtureRepo,
		engine:      engine,
		publisher:   publisher,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
		newSeed:     rand.Uint64,
	}
}

func (s *MatchService) SimulateFixture(ctx context.Context, input SimulateFixtureInput) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.SimulateFixture")
	defer span.End()

	lg, err := requireLeague(ctx, s.leagueRepo, input.LeagueID)
	if err != nil {
		return fixture.Fixture{}, err
	}

	item, err := loadFixture(ctx, s.fixtureRepo, lg.ID, input.FixtureID)
	if err != nil {
		return fixture.Fixture{}, err
	}
	if !item.Simulatable() {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture=%s status=%s played=%t", ErrConflict, item.ID, item.Status, item.Played)
	}

	return s.play(ctx, item, s.language(input.Language), s.seedOrRandom(input.Seed))
}

// SimulateGameweek plays every open fixture of the round in parallel. Fixture
// i of the round uses seed base+i, so a given base seed replays the round.
func (s *MatchService) SimulateGameweek(ctx context.Context, input SimulateGameweekInput) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.SimulateGameweek")
	defer span.End()

	lg, err := requireLeague(ctx, s.leagueRepo, input.LeagueID)
	if err != nil {
		return nil, err
	}
	if input.Gameweek <= 0 {
		return nil, fmt.Errorf("%w: gameweek must be positive", ErrInvalidInput)
	}

	items, err := s.fixtureRepo.ListByGameweek(ctx, lg.ID, input.Gameweek)
	if err != nil {
		return nil, fmt.Errorf("list fixtures by gameweek: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: gameweek=%d", ErrNotFound, input.Gameweek)
	}

	open := make([]fixture.Fixture, 0, len(items))
	for _, item := range items {
		if item.Simulatable() {
			open = append(open, item)
		}
	}
	if len(open) == 0 {
		return []fixture.Fixture{}, nil
	}

	type playedFixture struct {
		index int
		item  fixture.Fixture
	}

	lang := s.language(input.Language)
	base := s.seedOrRandom(input.Seed)
	p := pool.NewWithResults[playedFixture]().
		WithContext(ctx).
		WithMaxGoroutines(workerCount(input.MaxWorkers, s.cfg.MaxWorkers, len(open)))
	for i, item := range open {
		seed := base + uint64(i)
		p.Go(func(ctx context.Context) (playedFixture, error) {
			played, err := s.play(ctx, item, lang, seed)
			if err != nil {
				return playedFixture{}, fmt.Errorf("fixture %s: %w", item.ID, err)
			}
			return playedFixture{index: i, item: played}, nil
		})
	}

	results, err := p.Wait()
	if err != nil {
		s.logger.ErrorContext(ctx, "simulate gameweek failed",
			"league_id", lg.ID,
			"gameweek", input.Gameweek,
			"error", err,
		)
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool { return results[i].index < results[j].index })
	out := make([]fixture.Fixture, 0, len(results))
	for _, r := range results {
		out = append(out, r.item)
	}
	return out, nil
}

// PredictFixture runs the engine repeatedly against the current squads
// without persisting anything.
func (s *MatchService) PredictFixture(ctx context.Context, input PredictFixtureInput) (Prediction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.PredictFixture")
	defer span.End()

	runs := input.Runs
	if runs == 0 {
		runs = s.cfg.PredictionRuns
	}
	if runs < 1 || runs > maxPredictionRuns {
		return Prediction{}, fmt.Errorf("%w: runs must be between 1 and %d", ErrInvalidInput, maxPredictionRuns)
	}

	lg, err := requireLeague(ctx, s.leagueRepo, input.LeagueID)
	if err != nil {
		return Prediction{}, err
	}
	item, err := loadFixture(ctx, s.fixtureRepo, lg.ID, input.FixtureID)
	if err != nil {
		return Prediction{}, err
	}

	home, away, err := s.snapshots(ctx, item)
	if err != nil {
		return Prediction{}, err
	}

	workers, err := ants.NewPool(workerCount(input.MaxWorkers, s.cfg.MaxWorkers, runs))
	if err != nil {
		return Prediction{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer workers.Release()

	base := s.seedOrRandom(input.Seed)
	scores := make([][2]int, runs)
	lang := s.cfg.DefaultLanguage

	var wg sync.WaitGroup
	for i := range runs {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return Prediction{}, err
		}
		wg.Add(1)
		if err := workers.Submit(func() {
			defer wg.Done()
			played := s.engine.Simulate(item, home, away, lang, matchsim.NewSource(base+uint64(i)))
			scores[i] = [2]int{played.HomeScore, played.AwayScore}
		}); err != nil {
			wg.Done()
			wg.Wait()
			return Prediction{}, fmt.Errorf("submit simulation to worker pool: %w", err)
		}
	}
	wg.Wait()

	prediction := summarizePrediction(scores)
	prediction.FixtureID = item.ID
	prediction.Seed = base
	return prediction, nil
}

func (s *MatchService) play(ctx context.Context, item fixture.Fixture, lang string, seed uint64) (fixture.Fixture, error) {
	home, away, err := s.snapshots(ctx, item)
	if err != nil {
		return fixture.Fixture{}, err
	}

	item.Result.Seed = seed
	played := s.engine.Simulate(item, home, away, lang, matchsim.NewSource(seed))
	finishedAt := s.now().UTC()
	played.FinishedAt = &finishedAt

	updates := availabilityUpdates(played, home.Players, away.Players)
	if err := s.fixtureRepo.SaveResult(ctx, played, updates); err != nil {
		if errors.Is(err, fixture.ErrAlreadyPlayed) {
			return fixture.Fixture{}, fmt.Errorf("%w: fixture=%s was played concurrently", ErrConflict, played.ID)
		}
		s.logger.ErrorContext(ctx, "save fixture result failed",
			"league_id", played.LeagueID,
			"fixture_id", played.ID,
			"error", err,
		)
		return fixture.Fixture{}, fmt.Errorf("save fixture result: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishFixtureCompleted(ctx, played); err != nil {
			s.logger.WarnContext(ctx, "publish completed fixture failed",
				"league_id", played.LeagueID,
				"fixture_id", played.ID,
				"error", err,
			)
		}
	}

	s.logger.InfoContext(ctx, "fixture simulated",
		"league_id", played.LeagueID,
		"fixture_id", played.ID,
		"home_score", played.HomeScore,
		"away_score", played.AwayScore,
		"seed", seed,
	)
	return played, nil
}

func (s *MatchService) snapshots(ctx context.Context, item fixture.Fixture) (team.Snapshot, team.Snapshot, error) {
	home, err := s.snapshot(ctx, item.LeagueID, item.HomeTeamID, item.HomeTeam)
	if err != nil {
		return team.Snapshot{}, team.Snapshot{}, err
	}
	away, err := s.snapshot(ctx, item.LeagueID, item.AwayTeamID, item.AwayTeam)
	if err != nil {
		return team.Snapshot{}, team.Snapshot{}, err
	}
	return home, away, nil
}

// snapshot falls back to a bare club built from the fixture when the team row is gone.
func (s *MatchService) snapshot(ctx context.Context, leagueID, teamID, teamName string) (team.Snapshot, error) {
	item, exists, err := s.teamRepo.GetByID(ctx, leagueID, teamID)
	if err != nil {
		return team.Snapshot{}, fmt.Errorf("get team %s: %w", teamID, err)
	}
	if !exists {
		item = team.Team{ID: teamID, LeagueID: leagueID, Name: teamName, Formation: team.DefaultFormation}
	}

	players, err := s.playerRepo.ListByTeam(ctx, leagueID, teamID)
	if err != nil {
		return team.Snapshot{}, fmt.Errorf("list squad of team %s: %w", teamID, err)
	}

	return team.Snapshot{Team: item, Players: players}, nil
}

func (s *MatchService) language(lang string) string {
	if v := strings.TrimSpace(lang); v != "" {
		return v
	}
	return s.cfg.DefaultLanguage
}

func (s *MatchService) seedOrRandom(seed *uint64) uint64 {
	if seed != nil {
		return *seed
	}
	return s.newSeed()
}

// availabilityUpdates serves one game of every running suspension and bans
// players sent off in this match for the next one.
func availabilityUpdates(played fixture.Fixture, squads ...[]player.Player) []player.Availability {
	sentOff := make(map[string]bool)
	for _, c := range played.Result.Cards {
		if c.Kind == fixture.CardRed {
			sentOff[c.PlayerID] = true
		}
	}

	out := make([]player.Availability, 0)
	for _, squad := range squads {
		for _, p := range squad {
			next := p.SuspensionGames
			switch {
			case sentOff[p.ID]:
				next = max(next, redCardBanGames)
			case next > 0:
				next--
			default:
				continue
			}
			out = append(out, player.Availability{
				PlayerID:        p.ID,
				SuspensionGames: next,
				Injured:         p.Injured,
				Ill:             p.Ill,
			})
		}
	}
	return out
}

func summarizePrediction(scores [][2]int) Prediction {
	out := Prediction{Runs: len(scores)}
	if len(scores) == 0 {
		return out
	}

	type tally struct {
		count int
		first int
	}
	lines := make(map[[2]int]*tally)
	homeWins, draws, awayWins := 0, 0, 0
	homeGoals, awayGoals := 0, 0
	for i, sc := range scores {
		homeGoals += sc[0]
		awayGoals += sc[1]
		switch {
		case sc[0] > sc[1]:
			homeWins++
		case sc[0] < sc[1]:
			awayWins++
		default:
			draws++
		}
		if t, ok := lines[sc]; ok {
			t.count++
		} else {
			lines[sc] = &tally{count: 1, first: i}
		}
	}

	var best [2]int
	var bestTally *tally
	for sc, t := range lines {
		if bestTally == nil || t.count > bestTally.count || (t.count == bestTally.count && t.first < bestTally.first) {
			best, bestTally = sc, t
		}
	}

	n := float64(len(scores))
	out.HomeWin = float64(homeWins) / n
	out.Draw = float64(draws) / n
	out.AwayWin = float64(awayWins) / n
	out.AverageHomeGoals = float64(homeGoals) / n
	out.AverageAwayGoals = float64(awayGoals) / n
	out.MostLikelyScore = ScoreLine{Home: best[0], Away: best[1], Count: bestTally.count}
	return out
}

func workerCount(requested, configured, tasks int) int {
	n := requested
	if n <= 0 {
		n = configured
	}
	if n <= 0 {
		n = 1
	}
	if n > tasks {
		n = tasks
	}
	return max(n, 1)
}
