package memory

import (
	"fmt"

	"github.com/riskibarqy/football-manager/internal/domain/league"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
)

const (
	LeagueIDSuperLig      = "tr-super-lig-2026"
	LeagueIDPremierLeague = "eng-premier-league-2026"
)

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:          LeagueIDSuperLig,
			Name:        "Süper Lig",
			CountryCode: "TR",
			Season:      "2026/2027",
			IsDefault:   true,
		},
		{
			ID:          LeagueIDPremierLeague,
			Name:        "Premier League",
			CountryCode: "GB",
			Season:      "2026/2027",
			IsDefault:   false,
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "tr-gs", LeagueID: LeagueIDSuperLig, Name: "Galatasaray", Short: "GS", Formation: "4-2-3-1", BaselineRating: 74},
		{ID: "tr-fb", LeagueID: LeagueIDSuperLig, Name: "Fenerbahçe", Short: "FB", Formation: "4-3-3", BaselineRating: 73},
		{ID: "tr-bjk", LeagueID: LeagueIDSuperLig, Name: "Beşiktaş", Short: "BJK", Formation: "4-4-2", BaselineRating: 71},
		{ID: "tr-ts", LeagueID: LeagueIDSuperLig, Name: "Trabzonspor", Short: "TS", Formation: "4-3-3", BaselineRating: 69},
		{ID: "tr-bsk", LeagueID: LeagueIDSuperLig, Name: "Başakşehir", Short: "BSK", Formation: "3-5-2", BaselineRating: 66},
		{ID: "tr-kon", LeagueID: LeagueIDSuperLig, Name: "Konyaspor", Short: "KON", Formation: "5-3-2", BaselineRating: 63},
		{ID: "eng-ars", LeagueID: LeagueIDPremierLeague, Name: "Arsenal", Short: "ARS", Formation: "4-3-3", BaselineRating: 80},
		{ID: "eng-liv", LeagueID: LeagueIDPremierLeague, Name: "Liverpool", Short: "LIV", Formation: "4-3-3", BaselineRating: 80},
		{ID: "eng-mci", LeagueID: LeagueIDPremierLeague, Name: "Manchester City", Short: "MCI", Formation: "4-2-3-1", BaselineRating: 81},
		{ID: "eng-che", LeagueID: LeagueIDPremierLeague, Name: "Chelsea", Short: "CHE", Formation: "4-2-3-1", BaselineRating: 77},
		{ID: "eng-new", LeagueID: LeagueIDPremierLeague, Name: "Newcastle United", Short: "NEW", Formation: "4-3-3", BaselineRating: 75},
		{ID: "eng-bre", LeagueID: LeagueIDPremierLeague, Name: "Brentford", Short: "BRE", Formation: "3-5-2", BaselineRating: 70},
	}
}

// squadTemplate is the positional shape every seeded squad follows.
var squadTemplate = []player.Position{
	player.PositionGoalkeeper, player.PositionGoalkeeper,
	player.PositionCenterBack, player.PositionCenterBack, player.PositionCenterBack,
	player.PositionLeftBack, player.PositionRightBack, player.PositionWingBack, player.PositionCenterBack,
	player.PositionDefensiveMid, player.PositionCentralMid, player.PositionCentralMid,
	player.PositionAttackingMid, player.PositionLeftMid, player.PositionRightMid, player.PositionCentralMid,
	player.PositionLeftWing, player.PositionRightWing, player.PositionStriker,
	player.PositionCenterForward, player.PositionStriker, player.PositionLeftWing,
}

var (
	seedFirstNames = []string{
		"Arda", "Kerem", "Emre", "Mert", "Cengiz", "Hakan", "Burak", "Ozan",
		"James", "Harry", "Declan", "Jack", "Mason", "Bukayo", "Reece", "Jordan",
		"Luca", "Mateo", "Rafael", "Kai", "Noah", "Elias", "Milan", "Tomas",
	}
	seedLastNames = []string{
		"Yilmaz", "Demir", "Kaya", "Aydin", "Ozturk", "Celik", "Sahin", "Arslan",
		"Walker", "Stones", "Rice", "Grealish", "Mount", "Saka", "James", "Pickford",
		"Silva", "Costa", "Moreno", "Havertz", "Berg", "Novak", "Horvat", "Lindqvist",
	}
)

// SeedPlayers generates a 22-man squad per seeded team. Output is deterministic.
func SeedPlayers() []player.Player {
	teams := SeedTeams()
	out := make([]player.Player, 0, len(teams)*len(squadTemplate))
	for ti, t := range teams {
		for pi, position := range squadTemplate {
			out = append(out, seedPlayer(t, ti, pi, position))
		}
	}
	return out
}

func seedPlayer(t team.Team, teamIndex, slot int, position player.Position) player.Player {
	// First-choice slots sit near the club baseline, reserves a few points below.
	rating := t.BaselineRating + 4 - (slot*7+teamIndex*3)%9
	if slot == 1 || slot >= 16 && slot%2 == 1 {
		rating -= 4
	}
	rating = max(45, min(95, rating))

	name := fmt.Sprintf("%s %s",
		seedFirstNames[(teamIndex*5+slot*7)%len(seedFirstNames)],
		seedLastNames[(teamIndex*11+slot*3)%len(seedLastNames)],
	)

	return player.Player{
		ID:         fmt.Sprintf("%s-p%02d", t.ID, slot+1),
		LeagueID:   t.LeagueID,
		TeamID:     t.ID,
		Name:       name,
		Position:   position,
		Rating:     rating,
		Attributes: seedAttributes(position.Category(), rating, slot),
	}
}

func seedAttributes(category player.Category, rating, slot int) player.Attributes {
	spread := func(offset int) int {
		return max(20, min(99, rating+offset+(slot*13)%7-3))
	}

	switch category {
	case player.CategoryGoalkeeper:
		return player.Attributes{Pace: spread(-25), Shooting: spread(-40), Passing: spread(-15), Dribbling: spread(-30), Defending: spread(-20), Physical: spread(-5)}
	case player.CategoryDefender:
		return player.Attributes{Pace: spread(-5), Shooting: spread(-25), Passing: spread(-8), Dribbling: spread(-12), Defending: spread(6), Physical: spread(4)}
	case player.CategoryForward:
		return player.Attributes{Pace: spread(5), Shooting: spread(6), Passing: spread(-6), Dribbling: spread(4), Defending: spread(-30), Physical: spread(-2)}
	default:
		return player.Attributes{Pace: spread(-2), Shooting: spread(-6), Passing: spread(6), Dribbling: spread(3), Defending: spread(-8), Physical: spread(-3)}
	}
}
