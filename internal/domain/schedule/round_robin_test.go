package schedule

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/team"
)

type sequenceIDs struct {
	next int
	err  error
}

func (s *sequenceIDs) NewID() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.next++
	return fmt.Sprintf("fx-%03d", s.next), nil
}

func makeTeams(n int) []team.Team {
	out := make([]team.Team, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, team.Team{ID: fmt.Sprintf("t%d", i), Name: fmt.Sprintf("Team %d", i)})
	}
	return out
}

func TestDoubleRoundRobin_EveryPairMeetsTwiceWithSwappedVenues(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 4, 5, 6, 20} {
		n := n
		t.Run(fmt.Sprintf("teams_%d", n), func(t *testing.T) {
			t.Parallel()

			teams := makeTeams(n)
			start := time.Date(2026, 8, 15, 15, 0, 0, 0, time.UTC)
			items, err := DoubleRoundRobin("league", teams, Options{StartAt: start, Interval: 24 * time.Hour}, &sequenceIDs{})
			if err != nil {
				t.Fatalf("generate: %v", err)
			}

			if want := n * (n - 1); len(items) != want {
				t.Fatalf("expected %d fixtures, got %d", want, len(items))
			}

			homeAway := make(map[string]int)
			perWeek := make(map[int]map[string]bool)
			for _, f := range items {
				if f.HomeTeamID == f.AwayTeamID {
					t.Fatalf("team plays itself: %+v", f)
				}
				homeAway[f.HomeTeamID+">"+f.AwayTeamID]++

				week := perWeek[f.Gameweek]
				if week == nil {
					week = make(map[string]bool)
					perWeek[f.Gameweek] = week
				}
				if week[f.HomeTeamID] || week[f.AwayTeamID] {
					t.Fatalf("team scheduled twice in gameweek %d", f.Gameweek)
				}
				week[f.HomeTeamID], week[f.AwayTeamID] = true, true

				wantKickoff := start.Add(time.Duration(f.Gameweek-1) * 24 * time.Hour)
				if !f.KickoffAt.Equal(wantKickoff) {
					t.Fatalf("gameweek %d kickoff %s, want %s", f.Gameweek, f.KickoffAt, wantKickoff)
				}
			}

			for i := range teams {
				for j := range teams {
					if i == j {
						continue
					}
					key := teams[i].ID + ">" + teams[j].ID
					if homeAway[key] != 1 {
						t.Fatalf("expected %s exactly once, got %d", key, homeAway[key])
					}
				}
			}

			wantWeeks := 2 * (n - 1)
			if n%2 != 0 {
				wantWeeks = 2 * n
			}
			if len(perWeek) != wantWeeks {
				t.Fatalf("expected %d gameweeks, got %d", wantWeeks, len(perWeek))
			}
		})
	}
}

func TestDoubleRoundRobin_Errors(t *testing.T) {
	t.Parallel()

	if _, err := DoubleRoundRobin("league", makeTeams(1), Options{}, &sequenceIDs{}); !errors.Is(err, ErrNotEnoughTeams) {
		t.Fatalf("expected ErrNotEnoughTeams, got %v", err)
	}

	idErr := errors.New("entropy exhausted")
	if _, err := DoubleRoundRobin("league", makeTeams(4), Options{}, &sequenceIDs{err: idErr}); !errors.Is(err, idErr) {
		t.Fatalf("expected id error to be wrapped, got %v", err)
	}
}

func TestDoubleRoundRobin_DefaultInterval(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	items, err := DoubleRoundRobin("league", makeTeams(2), Options{StartAt: start}, &sequenceIDs{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got := items[1].KickoffAt.Sub(items[0].KickoffAt); got != DefaultInterval {
		t.Fatalf("expected default interval, got %s", got)
	}
}
