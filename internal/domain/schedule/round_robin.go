package schedule

import (
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/fixture"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/platform/id"
)

const DefaultInterval = 7 * 24 * time.Hour

var ErrNotEnoughTeams = errors.New("at least two teams are required")

// Options controls kickoff placement of a generated season.
type Options struct {
	StartAt  time.Time
	Interval time.Duration
}

// Pairing is one home/away match-up inside a round.
type Pairing struct {
	Home team.Team
	Away team.Team
}

// Rounds returns single round-robin pairings using the circle method. The first
// team stays fixed while the rest rotate; with an odd count one team sits out
// each round. Home advantage alternates by round for the fixed team.
func Rounds(teams []team.Team) [][]Pairing {
	n := len(teams)
	if n < 2 {
		return nil
	}

	slots := make([]*team.Team, 0, n+1)
	for i := range teams {
		slots = append(slots, &teams[i])
	}
	if n%2 != 0 {
		slots = append(slots, nil)
	}
	n = len(slots)

	rounds := make([][]Pairing, 0, n-1)
	for r := 0; r < n-1; r++ {
		round := make([]Pairing, 0, n/2)
		for j := 0; j < n/2; j++ {
			a, b := slots[j], slots[n-1-j]
			if a == nil || b == nil {
				continue
			}
			if (j == 0 && r%2 == 1) || (j > 0 && j%2 == 1) {
				a, b = b, a
			}
			round = append(round, Pairing{Home: *a, Away: *b})
		}
		rounds = append(rounds, round)

		last := slots[n-1]
		copy(slots[2:], slots[1:n-1])
		slots[1] = last
	}

	return rounds
}

// DoubleRoundRobin builds a full season: the first half from Rounds, the second
// half repeating it with venues swapped. Gameweek g kicks off at
// StartAt + (g-1)*Interval.
func DoubleRoundRobin(leagueID string, teams []team.Team, opts Options, ids id.Generator) ([]fixture.Fixture, error) {
	if len(teams) < 2 {
		return nil, ErrNotEnoughTeams
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}

	firstHalf := Rounds(teams)
	total := len(firstHalf) * 2
	out := make([]fixture.Fixture, 0, total*len(firstHalf[0]))

	for g := 0; g < total; g++ {
		round := firstHalf[g%len(firstHalf)]
		kickoff := opts.StartAt.Add(time.Duration(g) * opts.Interval)
		for _, p := range round {
			home, away := p.Home, p.Away
			if g >= len(firstHalf) {
				home, away = away, home
			}

			fixtureID, err := ids.NewID()
			if err != nil {
				return nil, fmt.Errorf("generate fixture id: %w", err)
			}
			out = append(out, fixture.Fixture{
				ID:         fixtureID,
				LeagueID:   leagueID,
				Gameweek:   g + 1,
				HomeTeamID: home.ID,
				AwayTeamID: away.ID,
				HomeTeam:   home.Name,
				AwayTeam:   away.Name,
				KickoffAt:  kickoff,
				Venue:      home.Name + " Stadium",
				Status:     fixture.StatusScheduled,
			})
		}
	}

	return out, nil
}
