package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/football-manager/internal/domain/fixture"
	"github.com/riskibarqy/football-manager/internal/domain/league"
	"github.com/riskibarqy/football-manager/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-manager/internal/domain/team"
)

// LeagueStandingService builds the table on read from the league's played fixtures.
type LeagueStandingService struct {
	leagueRepo  league.Repository
	teamRepo    team.Repository
	fixtureRepo fixture.Repository
}

func NewLeagueStandingService(leagueRepo league.Repository, teamRepo team.Repository, fixtureRepo fixture.Repository) *LeagueStandingService {
	return &LeagueStandingService{
		leagueRepo:  leagueRepo,
		teamRepo:    teamRepo,
		fixtureRepo: fixtureRepo,
	}
}

func (s *LeagueStandingService) ListByLeague(ctx context.Context, leagueID string) ([]leaguestanding.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueStandingService.ListByLeague")
	defer span.End()

	lg, err := requireLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListByLeague(ctx, lg.ID)
	if err != nil {
		return nil, fmt.Errorf("list teams by league: %w", err)
	}

	fixtures, err := s.fixtureRepo.ListByLeague(ctx, lg.ID)
	if err != nil {
		return nil, fmt.Errorf("list fixtures by league: %w", err)
	}

	return leaguestanding.Compute(lg.ID, teams, fixtures), nil
}
