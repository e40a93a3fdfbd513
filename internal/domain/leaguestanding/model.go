package leaguestanding

import (
	"sort"
	"strings"

	"github.com/riskibarqy/football-manager/internal/domain/fixture"
	"github.com/riskibarqy/football-manager/internal/domain/team"
)

const formLength = 5

// Standing represents a league table row for one team.
type Standing struct {
	LeagueID       string
	TeamID         string
	TeamName       string
	Position       int
	Played         int
	Won            int
	Draw           int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Form           string
}

// Compute builds the table for leagueID from the played fixtures. Every team is
// listed, including teams that have not played yet.
func Compute(leagueID string, teams []team.Team, fixtures []fixture.Fixture) []Standing {
	rows := make(map[string]*Standing, len(teams))
	order := make([]string, 0, len(teams))
	for _, t := range teams {
		if _, ok := rows[t.ID]; ok {
			continue
		}
		rows[t.ID] = &Standing{LeagueID: leagueID, TeamID: t.ID, TeamName: t.Name}
		order = append(order, t.ID)
	}

	played := make([]fixture.Fixture, 0, len(fixtures))
	for _, f := range fixtures {
		if f.Played || fixture.IsFinishedStatus(f.Status) {
			played = append(played, f)
		}
	}
	sort.SliceStable(played, func(i, j int) bool {
		if played[i].Gameweek != played[j].Gameweek {
			return played[i].Gameweek < played[j].Gameweek
		}
		return played[i].KickoffAt.Before(played[j].KickoffAt)
	})

	for _, f := range played {
		home, okHome := rows[f.HomeTeamID]
		away, okAway := rows[f.AwayTeamID]
		if !okHome || !okAway {
			continue
		}
		home.apply(f.HomeScore, f.AwayScore)
		away.apply(f.AwayScore, f.HomeScore)
	}

	out := make([]Standing, 0, len(order))
	for _, id := range order {
		out = append(out, *rows[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return strings.ToLower(a.TeamName) < strings.ToLower(b.TeamName)
	})
	for i := range out {
		out[i].Position = i + 1
	}

	return out
}

func (s *Standing) apply(scored, conceded int) {
	s.Played++
	s.GoalsFor += scored
	s.GoalsAgainst += conceded
	s.GoalDifference = s.GoalsFor - s.GoalsAgainst

	var mark byte
	switch {
	case scored > conceded:
		s.Won++
		s.Points += 3
		mark = 'W'
	case scored == conceded:
		s.Draw++
		s.Points++
		mark = 'D'
	default:
		s.Lost++
		mark = 'L'
	}

	form := s.Form + string(mark)
	if len(form) > formLength {
		form = form[len(form)-formLength:]
	}
	s.Form = form
}
