package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-manager/internal/domain/fixture"
	"github.com/riskibarqy/football-manager/internal/domain/league"
)

type FixtureService struct {
	leagueRepo  league.Repository
	fixtureRepo fixture.Repository
}

func NewFixtureService(leagueRepo league.Repository, fixtureRepo fixture.Repository) *FixtureService {
	return &FixtureService{
		leagueRepo:  leagueRepo,
		fixtureRepo: fixtureRepo,
	}
}

// ListByLeague returns the league's fixtures. A positive gameweek narrows the result to that round.
func (s *FixtureService) ListByLeague(ctx context.Context, leagueID string, gameweek int) ([]fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.ListByLeague")
	defer span.End()

	lg, err := requireLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return nil, err
	}
	if gameweek < 0 {
		return nil, fmt.Errorf("%w: gameweek must be positive", ErrInvalidInput)
	}

	if gameweek > 0 {
		fixtures, err := s.fixtureRepo.ListByGameweek(ctx, lg.ID, gameweek)
		if err != nil {
			return nil, fmt.Errorf("list fixtures by gameweek: %w", err)
		}
		return fixtures, nil
	}

	fixtures, err := s.fixtureRepo.ListByLeague(ctx, lg.ID)
	if err != nil {
		return nil, fmt.Errorf("list fixtures by league: %w", err)
	}

	return fixtures, nil
}

func (s *FixtureService) GetByID(ctx context.Context, leagueID, fixtureID string) (fixture.Fixture, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.GetByID")
	defer span.End()

	lg, err := requireLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return fixture.Fixture{}, err
	}

	return loadFixture(ctx, s.fixtureRepo, lg.ID, fixtureID)
}

func loadFixture(ctx context.Context, repo fixture.Repository, leagueID, fixtureID string) (fixture.Fixture, error) {
	fixtureID = strings.TrimSpace(fixtureID)
	if fixtureID == "" {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture id is required", ErrInvalidInput)
	}

	item, exists, err := repo.GetByID(ctx, leagueID, fixtureID)
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("get fixture: %w", err)
	}
	if !exists {
		return fixture.Fixture{}, fmt.Errorf("%w: fixture=%s", ErrNotFound, fixtureID)
	}

	return item, nil
}
