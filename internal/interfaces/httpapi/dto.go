package httpapi

import (
	"context"
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/fixture"
	"github.com/riskibarqy/football-manager/internal/domain/league"
	"github.com/riskibarqy/football-manager/internal/domain/leaguestanding"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/usecase"
)

type generateScheduleRequest struct {
	StartAt  string `json:"start_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Interval string `json:"interval" validate:"omitempty"`
}

type simulateFixtureRequest struct {
	Language string  `json:"language" validate:"omitempty,bcp47_language_tag"`
	Seed     *uint64 `json:"seed"`
}

type simulateGameweekRequest struct {
	Language   string  `json:"language" validate:"omitempty,bcp47_language_tag"`
	Seed       *uint64 `json:"seed"`
	MaxWorkers int     `json:"max_workers" validate:"omitempty,min=1,max=32"`
}

type leaguePublicDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
	Season      string `json:"season"`
	IsDefault   bool   `json:"isDefault"`
}

type teamDTO struct {
	ID             string `json:"id"`
	LeagueID       string `json:"leagueId"`
	Name           string `json:"name"`
	Short          string `json:"short"`
	Formation      string `json:"formation"`
	BaselineRating int    `json:"baselineRating"`
}

type playerAttributesDTO struct {
	Pace      int `json:"pace"`
	Shooting  int `json:"shooting"`
	Passing   int `json:"passing"`
	Dribbling int `json:"dribbling"`
	Defending int `json:"defending"`
	Physical  int `json:"physical"`
}

type playerDTO struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Position        string              `json:"position"`
	Category        string              `json:"category"`
	Rating          int                 `json:"rating"`
	Attributes      playerAttributesDTO `json:"attributes"`
	SuspensionGames int                 `json:"suspensionGames"`
	IsInjured       bool                `json:"isInjured"`
	IsIll           bool                `json:"isIll"`
	IsEligible      bool                `json:"isEligible"`
}

type squadDTO struct {
	Team    teamDTO     `json:"team"`
	Players []playerDTO `json:"players"`
}

type fixtureDTO struct {
	ID            string  `json:"id"`
	LeagueID      string  `json:"leagueId"`
	Gameweek      int     `json:"gameweek"`
	HomeTeamID    string  `json:"homeTeamId"`
	AwayTeamID    string  `json:"awayTeamId"`
	HomeTeam      string  `json:"homeTeam"`
	AwayTeam      string  `json:"awayTeam"`
	Kickoff       string  `json:"kickoffAt"`
	Venue         string  `json:"venue"`
	Status        string  `json:"status"`
	Played        bool    `json:"played"`
	HomeScore     *int    `json:"homeScore,omitempty"`
	AwayScore     *int    `json:"awayScore,omitempty"`
	WinnerTeamID  string  `json:"winnerTeamId,omitempty"`
	FinishedAt    string  `json:"finishedAt,omitempty"`
	Referee       string  `json:"referee,omitempty"`
	Seed          *uint64 `json:"seed,omitempty"`
	ManOfTheMatch string  `json:"manOfTheMatch,omitempty"`
}

type fixtureDetailDTO struct {
	fixtureDTO
	HomeLineup   []string         `json:"homeLineup"`
	AwayLineup   []string         `json:"awayLineup"`
	Scorers      []scorerDTO      `json:"scorers"`
	Cards        []cardDTO        `json:"cards"`
	Performances []performanceDTO `json:"performances"`
}

type scorerDTO struct {
	PlayerID   string `json:"playerId"`
	Name       string `json:"name"`
	Minute     int    `json:"minute"`
	TeamID     string `json:"teamId"`
	AssistID   string `json:"assistId,omitempty"`
	AssistName string `json:"assistName,omitempty"`
}

type cardDTO struct {
	PlayerID string `json:"playerId"`
	TeamID   string `json:"teamId"`
	Kind     string `json:"kind"`
	Minute   int    `json:"minute"`
}

type performanceDTO struct {
	PlayerID      string  `json:"playerId"`
	PlayerName    string  `json:"playerName"`
	TeamID        string  `json:"teamId"`
	Category      string  `json:"category"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	Shots         int     `json:"shots"`
	ShotsOnTarget int     `json:"shotsOnTarget"`
	Passes        int     `json:"passes"`
	PassAccuracy  int     `json:"passAccuracy"`
	Tackles       int     `json:"tackles"`
	Interceptions int     `json:"interceptions"`
	Saves         int     `json:"saves"`
	YellowCards   int     `json:"yellowCards"`
	RedCards      int     `json:"redCards"`
	MinutesPlayed int     `json:"minutesPlayed"`
	ManOfTheMatch bool    `json:"manOfTheMatch"`
	Rating        float64 `json:"rating"`
}

type fixtureEventDTO struct {
	Minute      int    `json:"minute"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Important   bool   `json:"important"`
	TeamID      string `json:"teamId"`
	TeamName    string `json:"teamName"`
	ChainID     int    `json:"chainId,omitempty"`
}

type predictionDTO struct {
	FixtureID        string  `json:"fixtureId"`
	Runs             int     `json:"runs"`
	Seed             uint64  `json:"seed"`
	HomeWin          float64 `json:"homeWin"`
	Draw             float64 `json:"draw"`
	AwayWin          float64 `json:"awayWin"`
	AverageHomeGoals float64 `json:"averageHomeGoals"`
	AverageAwayGoals float64 `json:"averageAwayGoals"`
	MostLikelyScore  string  `json:"mostLikelyScore"`
	MostLikelyCount  int     `json:"mostLikelyCount"`
}

type leagueStandingDTO struct {
	Position       int    `json:"position"`
	TeamID         string `json:"teamId"`
	TeamName       string `json:"teamName"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Draw           int    `json:"draw"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
	Form           string `json:"form"`
}

func leagueToPublicDTO(ctx context.Context, l league.League) leaguePublicDTO {
	_, span := startSpan(ctx, "httpapi.leagueToPublicDTO")
	defer span.End()

	return leaguePublicDTO{
		ID:          l.ID,
		Name:        l.Name,
		CountryCode: l.CountryCode,
		Season:      l.Season,
		IsDefault:   l.IsDefault,
	}
}

func teamToDTO(t team.Team) teamDTO {
	return teamDTO{
		ID:             t.ID,
		LeagueID:       t.LeagueID,
		Name:           t.Name,
		Short:          t.Short,
		Formation:      t.Formation,
		BaselineRating: t.BaselineRating,
	}
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:       p.ID,
		Name:     p.Name,
		Position: string(p.Position),
		Category: string(p.Position.Category()),
		Rating:   p.Rating,
		Attributes: playerAttributesDTO{
			Pace:      p.Attributes.Pace,
			Shooting:  p.Attributes.Shooting,
			Passing:   p.Attributes.Passing,
			Dribbling: p.Attributes.Dribbling,
			Defending: p.Attributes.Defending,
			Physical:  p.Attributes.Physical,
		},
		SuspensionGames: p.SuspensionGames,
		IsInjured:       p.Injured,
		IsIll:           p.Ill,
		IsEligible:      p.Eligible(),
	}
}

func fixtureToDTO(v fixture.Fixture) fixtureDTO {
	out := fixtureDTO{
		ID:         v.ID,
		LeagueID:   v.LeagueID,
		Gameweek:   v.Gameweek,
		HomeTeamID: v.HomeTeamID,
		AwayTeamID: v.AwayTeamID,
		HomeTeam:   v.HomeTeam,
		AwayTeam:   v.AwayTeam,
		Kickoff:    v.KickoffAt.UTC().Format(time.RFC3339),
		Venue:      v.Venue,
		Status:     v.Status,
		Played:     v.Played,
	}
	if !v.Played {
		return out
	}

	homeScore, awayScore, seed := v.HomeScore, v.AwayScore, v.Result.Seed
	out.HomeScore = &homeScore
	out.AwayScore = &awayScore
	out.Seed = &seed
	out.WinnerTeamID = v.WinnerTeamID
	out.Referee = v.Result.Referee
	if v.FinishedAt != nil {
		out.FinishedAt = v.FinishedAt.UTC().Format(time.RFC3339)
	}
	if v.Result.ManOfTheMatch != nil {
		out.ManOfTheMatch = v.Result.ManOfTheMatch.PlayerID
	}
	return out
}

func fixtureToDetailDTO(ctx context.Context, v fixture.Fixture) fixtureDetailDTO {
	_, span := startSpan(ctx, "httpapi.fixtureToDetailDTO")
	defer span.End()

	out := fixtureDetailDTO{
		fixtureDTO:   fixtureToDTO(v),
		HomeLineup:   append([]string{}, v.Result.HomeLineup...),
		AwayLineup:   append([]string{}, v.Result.AwayLineup...),
		Scorers:      make([]scorerDTO, 0, len(v.Result.Scorers)),
		Cards:        make([]cardDTO, 0, len(v.Result.Cards)),
		Performances: make([]performanceDTO, 0, len(v.Result.Performances)),
	}
	for _, s := range v.Result.Scorers {
		out.Scorers = append(out.Scorers, scorerDTO(s))
	}
	for _, c := range v.Result.Cards {
		out.Cards = append(out.Cards, cardDTO{PlayerID: c.PlayerID, TeamID: c.TeamID, Kind: string(c.Kind), Minute: c.Minute})
	}
	for _, p := range v.Result.Performances {
		out.Performances = append(out.Performances, performanceDTO{
			PlayerID:      p.PlayerID,
			PlayerName:    p.PlayerName,
			TeamID:        p.TeamID,
			Category:      string(p.Category),
			Goals:         p.Goals,
			Assists:       p.Assists,
			Shots:         p.Shots,
			ShotsOnTarget: p.ShotsOnTarget,
			Passes:        p.Passes,
			PassAccuracy:  p.PassAccuracy,
			Tackles:       p.Tackles,
			Interceptions: p.Interceptions,
			Saves:         p.Saves,
			YellowCards:   p.YellowCards,
			RedCards:      p.RedCards,
			MinutesPlayed: p.MinutesPlayed,
			ManOfTheMatch: p.ManOfTheMatch,
			Rating:        p.Rating,
		})
	}
	return out
}

func fixtureEventToDTO(e fixture.Event) fixtureEventDTO {
	return fixtureEventDTO{
		Minute:      e.Minute,
		Type:        string(e.Kind),
		Description: e.Description,
		Important:   e.Important,
		TeamID:      e.TeamID,
		TeamName:    e.TeamName,
		ChainID:     e.ChainID,
	}
}

func predictionToDTO(p usecase.Prediction) predictionDTO {
	return predictionDTO{
		FixtureID:        p.FixtureID,
		Runs:             p.Runs,
		Seed:             p.Seed,
		HomeWin:          p.HomeWin,
		Draw:             p.Draw,
		AwayWin:          p.AwayWin,
		AverageHomeGoals: p.AverageHomeGoals,
		AverageAwayGoals: p.AverageAwayGoals,
		MostLikelyScore:  formatScore(p.MostLikelyScore.Home, p.MostLikelyScore.Away),
		MostLikelyCount:  p.MostLikelyScore.Count,
	}
}

func leagueStandingToDTO(s leaguestanding.Standing) leagueStandingDTO {
	return leagueStandingDTO{
		Position:       s.Position,
		TeamID:         s.TeamID,
		TeamName:       s.TeamName,
		Played:         s.Played,
		Won:            s.Won,
		Draw:           s.Draw,
		Lost:           s.Lost,
		GoalsFor:       s.GoalsFor,
		GoalsAgainst:   s.GoalsAgainst,
		GoalDifference: s.GoalDifference,
		Points:         s.Points,
		Form:           s.Form,
	}
}
