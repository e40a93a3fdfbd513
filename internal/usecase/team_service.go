package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-manager/internal/domain/league"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
)

type TeamService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	playerRepo player.Repository
}

func NewTeamService(leagueRepo league.Repository, teamRepo team.Repository, playerRepo player.Repository) *TeamService {
	return &TeamService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
	}
}

func (s *TeamService) ListByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListByLeague")
	defer span.End()

	lg, err := requireLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return nil, err
	}

	teams, err := s.teamRepo.ListByLeague(ctx, lg.ID)
	if err != nil {
		return nil, fmt.Errorf("list teams by league: %w", err)
	}

	return teams, nil
}

// GetSquad returns the club together with its full roster, eligible or not.
func (s *TeamService) GetSquad(ctx context.Context, leagueID, teamID string) (team.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetSquad")
	defer span.End()

	lg, err := requireLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return team.Snapshot{}, err
	}

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Snapshot{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, lg.ID, teamID)
	if err != nil {
		return team.Snapshot{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Snapshot{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	players, err := s.playerRepo.ListByTeam(ctx, lg.ID, teamID)
	if err != nil {
		return team.Snapshot{}, fmt.Errorf("list squad players: %w", err)
	}

	return team.Snapshot{Team: item, Players: players}, nil
}
