package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/football-manager/internal/domain/fixture"
	"github.com/riskibarqy/football-manager/internal/domain/league"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	fixturemock "github.com/riskibarqy/football-manager/internal/mocks/domain/fixture"
	leaguemock "github.com/riskibarqy/football-manager/internal/mocks/domain/league"
	playermock "github.com/riskibarqy/football-manager/internal/mocks/domain/player"
	teammock "github.com/riskibarqy/football-manager/internal/mocks/domain/team"
	"github.com/stretchr/testify/mock"
)

func TestTeamService_ListByLeague_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)

	service := NewTeamService(leagueRepo, teamRepo, playerRepo)
	leagueID := "tr-super-lig-2026"
	expectedTeams := []team.Team{
		{ID: "tr-gs", LeagueID: leagueID, Name: "Galatasaray", Short: "GS"},
		{ID: "tr-fb", LeagueID: leagueID, Name: "Fenerbahçe", Short: "FB"},
	}

	leagueRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), leagueID).
		Return(league.League{ID: leagueID}, true, nil).
		Once()
	teamRepo.
		On("ListByLeague", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), leagueID).
		Return(expectedTeams, nil).
		Once()

	got, err := service.ListByLeague(ctx, "  "+leagueID+" ")
	if err != nil {
		t.Fatalf("list teams by league: %v", err)
	}
	if len(got) != len(expectedTeams) || got[0].ID != expectedTeams[0].ID {
		t.Fatalf("unexpected teams: %+v", got)
	}
}

func TestTeamService_GetSquad_UsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	service := NewTeamService(leagueRepo, teamRepo, playerRepo)

	leagueRepo.On("GetByID", mock.Anything, "l1").Return(league.League{ID: "l1"}, true, nil).Twice()
	teamRepo.On("GetByID", mock.Anything, "l1", "t1").Return(team.Team{ID: "t1", LeagueID: "l1", Name: "Club"}, true, nil).Once()
	teamRepo.On("GetByID", mock.Anything, "l1", "ghost").Return(team.Team{}, false, nil).Once()
	playerRepo.On("ListByTeam", mock.Anything, "l1", "t1").Return([]player.Player{{ID: "p1", TeamID: "t1"}}, nil).Once()

	squad, err := service.GetSquad(ctx, "l1", "t1")
	if err != nil {
		t.Fatalf("get squad: %v", err)
	}
	if squad.Team.ID != "t1" || len(squad.Players) != 1 {
		t.Fatalf("unexpected squad: %+v", squad)
	}

	if _, err := service.GetSquad(ctx, "l1", "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing team, got %v", err)
	}
}

func TestLeagueService_ListLeagues_PropagatesErrorUsingMockery(t *testing.T) {
	t.Parallel()

	leagueRepo := leaguemock.NewRepository(t)
	leagueRepo.On("List", mock.Anything).Return(nil, errors.New("db down")).Once()

	_, err := NewLeagueService(leagueRepo).ListLeagues(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestFixtureService_ListByLeague_GameweekFilterUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	fixtureRepo := fixturemock.NewRepository(t)
	service := NewFixtureService(leagueRepo, fixtureRepo)

	leagueRepo.On("GetByID", mock.Anything, "l1").Return(league.League{ID: "l1"}, true, nil).Twice()
	fixtureRepo.On("ListByGameweek", mock.Anything, "l1", 3).Return([]fixture.Fixture{{ID: "f3", Gameweek: 3}}, nil).Once()
	fixtureRepo.On("ListByLeague", mock.Anything, "l1").Return([]fixture.Fixture{{ID: "f1"}, {ID: "f3"}}, nil).Once()

	week, err := service.ListByLeague(ctx, "l1", 3)
	if err != nil || len(week) != 1 {
		t.Fatalf("unexpected gameweek listing: %+v err=%v", week, err)
	}

	all, err := service.ListByLeague(ctx, "l1", 0)
	if err != nil || len(all) != 2 {
		t.Fatalf("unexpected league listing: %+v err=%v", all, err)
	}
}

func TestFixtureService_GetByID_ValidatesInputUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	fixtureRepo := fixturemock.NewRepository(t)
	service := NewFixtureService(leagueRepo, fixtureRepo)

	if _, err := service.GetByID(ctx, "", "f1"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank league, got %v", err)
	}

	leagueRepo.On("GetByID", mock.Anything, "l1").Return(league.League{ID: "l1"}, true, nil).Twice()
	fixtureRepo.On("GetByID", mock.Anything, "l1", "missing").Return(fixture.Fixture{}, false, nil).Once()

	if _, err := service.GetByID(ctx, "l1", " "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank fixture, got %v", err)
	}
	if _, err := service.GetByID(ctx, "l1", "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
