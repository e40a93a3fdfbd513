package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/fixture"
	"github.com/riskibarqy/football-manager/internal/domain/league"
	"github.com/riskibarqy/football-manager/internal/domain/schedule"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/platform/id"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
)

type GenerateScheduleInput struct {
	LeagueID string
	StartAt  time.Time
	Interval time.Duration
}

type ScheduleService struct {
	leagueRepo  league.Repository
	teamRepo    team.Repository
	fixtureRepo fixture.Repository
	ids         id.Generator
	logger      *logging.Logger
}

func NewScheduleService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	fixtureRepo fixture.Repository,
	ids id.Generator,
	logger *logging.Logger,
) *ScheduleService {
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ScheduleService{
		leagueRepo:  leagueRepo,
		teamRepo:    teamRepo,
		fixtureRepo: fixtureRepo,
		ids:         ids,
		logger:      logger,
	}
}

// Generate builds a double round-robin for every club of the league and
// replaces whatever schedule the league had, played results included.
func (s *ScheduleService) Generate(ctx context.Context, input GenerateScheduleInput) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScheduleService.Generate")
	defer span.End()

	lg, err := requireLeague(ctx, s.leagueRepo, input.LeagueID)
	if err != nil {
		return nil, err
	}
	if input.StartAt.IsZero() {
		return nil, fmt.Errorf("%w: start time is required", ErrInvalidInput)
	}
	if input.Interval < 0 {
		return nil, fmt.Errorf("%w: interval must not be negative", ErrInvalidInput)
	}

	teams, err := s.teamRepo.ListByLeague(ctx, lg.ID)
	if err != nil {
		return nil, fmt.Errorf("list teams by league: %w", err)
	}

	fixtures, err := schedule.DoubleRoundRobin(lg.ID, teams, schedule.Options{
		StartAt:  input.StartAt.UTC(),
		Interval: input.Interval,
	}, s.ids)
	if err != nil {
		if errors.Is(err, schedule.ErrNotEnoughTeams) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("build schedule: %w", err)
	}

	if err := s.fixtureRepo.ReplaceByLeague(ctx, lg.ID, fixtures); err != nil {
		s.logger.ErrorContext(ctx, "replace league schedule failed", "league_id", lg.ID, "error", err)
		return nil, fmt.Errorf("replace fixtures: %w", err)
	}

	s.logger.InfoContext(ctx, "league schedule generated",
		"league_id", lg.ID,
		"teams", len(teams),
		"fixtures", len(fixtures),
	)
	return fixtures, nil
}
