package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/football-manager/internal/config"
	"github.com/riskibarqy/football-manager/internal/domain/fixture"
	"github.com/riskibarqy/football-manager/internal/domain/league"
	"github.com/riskibarqy/football-manager/internal/domain/matchsim"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/infrastructure/publisher"
	cacherepo "github.com/riskibarqy/football-manager/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/football-manager/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-manager/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/football-manager/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/football-manager/internal/platform/cache"
	idgen "github.com/riskibarqy/football-manager/internal/platform/id"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
	"github.com/riskibarqy/football-manager/internal/platform/resilience"
	"github.com/riskibarqy/football-manager/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.uber.org/zap"
)

type repositories struct {
	leagues  league.Repository
	teams    team.Repository
	players  player.Repository
	fixtures fixture.Repository
}

// NewHTTPServer builds the API server and returns a cleanup that releases
// the database and Redis connections it opened.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	var closers []func() error
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				logger.Warn("release resource failed", "error", err)
			}
		}
	}

	repos, closeRepos, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	closers = append(closers, closeRepos)

	if cfg.CacheEnabled {
		logger.Debug("repository cache enabled", "ttl", cfg.CacheTTL)
		store := basecache.NewStore(cfg.CacheTTL)
		repos = repositories{
			leagues:  cacherepo.NewLeagueRepository(repos.leagues, store),
			teams:    cacherepo.NewTeamRepository(repos.teams, store),
			players:  cacherepo.NewPlayerRepository(repos.players, store),
			fixtures: cacherepo.NewFixtureRepository(repos.fixtures, store),
		}
	}

	eventPublisher, closePublisher := newFixtureEventPublisher(ctx, cfg, logger)
	closers = append(closers, closePublisher)

	engine := matchsim.NewEngine(matchsim.WithLogger(logger.Named("matchsim")))

	leagueSvc := usecase.NewLeagueService(repos.leagues)
	teamSvc := usecase.NewTeamService(repos.leagues, repos.teams, repos.players)
	fixtureSvc := usecase.NewFixtureService(repos.leagues, repos.fixtures)
	standingSvc := usecase.NewLeagueStandingService(repos.leagues, repos.teams, repos.fixtures)
	scheduleSvc := usecase.NewScheduleService(repos.leagues, repos.teams, repos.fixtures, idgen.NewUUIDGenerator(), logger)
	matchSvc := usecase.NewMatchService(
		repos.leagues,
		repos.teams,
		repos.players,
		repos.fixtures,
		engine,
		eventPublisher,
		usecase.MatchServiceConfig{
			DefaultLanguage: cfg.SimDefaultLanguage,
			MaxWorkers:      cfg.SimMaxWorkers,
			PredictionRuns:  cfg.SimPredictionRuns,
		},
		logger,
	)

	if err := bootstrapSeasons(ctx, cfg, repos, scheduleSvc, logger); err != nil {
		cleanup()
		return nil, nil, err
	}

	handler := httpapi.NewHandler(leagueSvc, teamSvc, fixtureSvc, standingSvc, scheduleSvc, matchSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.AdminToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorLog:     zap.NewStdLog(logger.Named("http").Zap()),
	}

	return server, cleanup, nil
}

func newRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	if cfg.StorageDriver != config.StoragePostgres {
		logger.Info("using in-memory storage")
		players := memory.NewPlayerRepository(memory.SeedPlayers())
		return repositories{
			leagues:  memory.NewLeagueRepository(memory.SeedLeagues()),
			teams:    memory.NewTeamRepository(memory.SeedTeams()),
			players:  players,
			fixtures: memory.NewFixtureRepository(nil, players),
		}, func() error { return nil }, nil
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return repositories{}, nil, err
	}
	if cfg.DBAutoSeed {
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			_ = db.Close()
			return repositories{}, nil, fmt.Errorf("seed database: %w", err)
		}
	}
	logger.Info("using postgres storage", "db_name", dbNameFromURL(cfg.DBURL))

	return repositories{
		leagues:  postgres.NewLeagueRepository(db),
		teams:    postgres.NewTeamRepository(db),
		players:  postgres.NewPlayerRepository(db),
		fixtures: postgres.NewFixtureRepository(db),
	}, db.Close, nil
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

func newFixtureEventPublisher(ctx context.Context, cfg config.Config, logger *logging.Logger) (usecase.FixtureEventPublisher, func() error) {
	if cfg.RedisAddr == "" {
		logger.Info("fixture stream disabled", "reason", "REDIS_ADDR empty")
		return publisher.NoopPublisher{}, func() error { return nil }
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping failed, publishing will be retried per fixture", "addr", cfg.RedisAddr, "error", err)
	}

	breaker := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
		Name:             "redis-fixture-stream",
		Enabled:          cfg.RedisCircuitEnabled,
		FailureThreshold: cfg.RedisCircuitFailureCount,
		OpenTimeout:      cfg.RedisCircuitOpenTimeout,
		HalfOpenMaxReq:   cfg.RedisCircuitHalfOpenMaxReq,
	})
	logger.Info("fixture stream enabled", "addr", cfg.RedisAddr, "prefix", cfg.RedisStreamPrefix)

	return publisher.NewStreamPublisher(client, publisher.StreamConfig{
		Prefix:  cfg.RedisStreamPrefix,
		MaxLen:  cfg.RedisStreamMaxLen,
		Timeout: cfg.RedisTimeout,
	}, breaker, logger), client.Close
}

// bootstrapSeasons schedules every league that has no fixtures yet.
func bootstrapSeasons(ctx context.Context, cfg config.Config, repos repositories, scheduleSvc *usecase.ScheduleService, logger *logging.Logger) error {
	leagues, err := repos.leagues.List(ctx)
	if err != nil {
		return fmt.Errorf("list leagues: %w", err)
	}

	for _, lg := range leagues {
		existing, err := repos.fixtures.ListByLeague(ctx, lg.ID)
		if err != nil {
			return fmt.Errorf("list fixtures for league %s: %w", lg.ID, err)
		}
		if len(existing) > 0 {
			continue
		}

		_, err = scheduleSvc.Generate(ctx, usecase.GenerateScheduleInput{
			LeagueID: lg.ID,
			StartAt:  cfg.SeasonStartAt,
			Interval: cfg.SeasonInterval,
		})
		if errors.Is(err, usecase.ErrInvalidInput) {
			logger.Warn("league season not scheduled", "league_id", lg.ID, "error", err)
			continue
		}
		if err != nil {
			return fmt.Errorf("schedule league %s: %w", lg.ID, err)
		}
	}

	return nil
}
