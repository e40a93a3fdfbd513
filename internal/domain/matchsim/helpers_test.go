package matchsim

import (
	"fmt"

	"github.com/riskibarqy/football-manager/internal/domain/fixture"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
)

func uniformAttributes(v int) player.Attributes {
	return player.Attributes{Pace: v, Shooting: v, Passing: v, Dribbling: v, Defending: v, Physical: v}
}

func newTestPlayer(teamID string, n int, position player.Position, rating int) player.Player {
	return player.Player{
		ID:         fmt.Sprintf("%s-p%02d", teamID, n),
		TeamID:     teamID,
		Name:       fmt.Sprintf("%s Player %02d", teamID, n),
		Position:   position,
		Rating:     rating,
		Attributes: uniformAttributes(rating),
	}
}

// fullSquad returns 2 GK, 7 DEF, 7 MID and 5 FWD with ratings descending from top.
func fullSquad(teamID string, top int) team.Snapshot {
	positions := []player.Position{
		player.PositionGoalkeeper, player.PositionGoalkeeper,
		player.PositionCenterBack, player.PositionCenterBack, player.PositionLeftBack, player.PositionRightBack,
		player.PositionCenterBack, player.PositionWingBack, player.PositionLeftBack,
		player.PositionCentralMid, player.PositionDefensiveMid, player.PositionAttackingMid, player.PositionLeftMid,
		player.PositionRightMid, player.PositionCentralMid, player.PositionCentralMid,
		player.PositionStriker, player.PositionLeftWing, player.PositionRightWing, player.PositionCenterForward,
		player.PositionStriker,
	}
	players := make([]player.Player, 0, len(positions))
	for i, pos := range positions {
		p := newTestPlayer(teamID, i, pos, top-i%6)
		p.Attributes.Shooting = 60 + (i*7)%35
		p.Attributes.Pace = 62 + (i*11)%33
		players = append(players, p)
	}
	return team.Snapshot{
		Team: team.Team{
			ID:             teamID,
			Name:           "Team " + teamID,
			Formation:      "4-3-3",
			BaselineRating: top - 5,
		},
		Players: players,
	}
}

// uniformOutfield is twenty outfield players rated v in a 4-3-3.
func uniformOutfield(teamID string, v int) team.Snapshot {
	positions := []player.Position{player.PositionCenterBack, player.PositionCentralMid, player.PositionStriker, player.PositionLeftBack}
	players := make([]player.Player, 0, 20)
	for i := 0; i < 20; i++ {
		players = append(players, newTestPlayer(teamID, i, positions[i%len(positions)], v))
	}
	return team.Snapshot{
		Team:    team.Team{ID: teamID, Name: "Team " + teamID, Formation: "4-3-3", BaselineRating: v},
		Players: players,
	}
}

func testFixture(home, away team.Snapshot) fixture.Fixture {
	return fixture.Fixture{
		ID:         "fx-" + home.Team.ID + "-" + away.Team.ID,
		LeagueID:   "league",
		Gameweek:   1,
		HomeTeamID: home.Team.ID,
		AwayTeamID: away.Team.ID,
		Status:     fixture.StatusScheduled,
	}
}

func countCategories(xi []LineupEntry) map[player.Category]int {
	out := make(map[player.Category]int)
	for _, entry := range xi {
		out[entry.Category]++
	}
	return out
}
