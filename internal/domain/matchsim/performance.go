package matchsim

import (
	"math"

	"github.com/riskibarqy/football-manager/internal/domain/fixture"
	"github.com/riskibarqy/football-manager/internal/domain/player"
)

const (
	minMatchRating = 4.0
	maxMatchRating = 10.0
)

// playerLine gathers what the timeline credited to one starter.
type playerLine struct {
	shotTally
	goals   int
	assists int
	yellows int
	reds    int
}

func (m *match) playerLines() map[string]*playerLine {
	lines := make(map[string]*playerLine)
	line := func(id string) *playerLine {
		l, ok := lines[id]
		if !ok {
			l = &playerLine{}
			lines[id] = l
		}
		return l
	}

	for id, t := range m.tallies {
		line(id).shotTally = *t
	}
	for _, s := range m.scorers {
		if s.PlayerID != "" {
			line(s.PlayerID).goals++
		}
		if s.AssistID != "" {
			line(s.AssistID).assists++
		}
	}
	for _, c := range m.cards {
		if c.Kind == fixture.CardRed {
			line(c.PlayerID).reds++
		} else {
			line(c.PlayerID).yellows++
		}
	}
	return lines
}

// performances returns one line per starter, home XI first, in lineup order.
func (m *match) performances(homeScore, awayScore int) []fixture.Performance {
	lines := m.playerLines()
	out := make([]fixture.Performance, 0, len(m.sides[homeSide].xi)+len(m.sides[awaySide].xi))

	for _, sd := range []side{homeSide, awaySide} {
		s := m.sides[sd]
		scored, conceded := homeScore, awayScore
		if sd == awaySide {
			scored, conceded = awayScore, homeScore
		}
		for _, entry := range s.xi {
			line := lines[entry.Player.ID]
			if line == nil {
				line = &playerLine{}
			}
			out = append(out, m.synthesize(entry, s.teamID, *line, scored, conceded))
		}
	}
	return out
}

func (m *match) synthesize(entry LineupEntry, teamID string, line playerLine, scored, conceded int) fixture.Performance {
	base := float64(entry.Player.Rating-50) / 50
	u := m.rng.Float64

	var shots, onTargetRatio, passes, accuracy, tackles, interceptions, saves float64
	switch entry.Category {
	case player.CategoryForward:
		shots = 2 + 3*base + 2*u()
		onTargetRatio = 0.35 + 0.2*base
		passes = 18 + 10*base + 8*u()
		accuracy = 68 + 12*base + 8*u()
		tackles = 2 * u()
		interceptions = 1.5 * u()
	case player.CategoryDefender:
		shots = u() + 0.5*math.Max(0, base)
		onTargetRatio = 0.25
		passes = 35 + 15*base + 10*u()
		accuracy = 75 + 10*base + 8*u()
		tackles = 3 + 2*base + 2*u()
		interceptions = 2 + 2*base + 2*u()
	case player.CategoryGoalkeeper:
		passes = 20 + 8*base + 8*u()
		accuracy = 60 + 15*base + 10*u()
		saves = 1 + 2*base + 3*u()
	default:
		shots = 1 + 2*base + 1.5*u()
		onTargetRatio = 0.30 + 0.15*base
		passes = 45 + 20*base + 15*u()
		accuracy = 78 + 10*base + 6*u()
		tackles = 2 + 2*base + 2*u()
		interceptions = 1 + 1.5*base + 2*u()
	}

	baseShots := roundNonNeg(shots)
	baseOnTarget := min(roundNonNeg(float64(baseShots)*onTargetRatio), baseShots)

	perf := fixture.Performance{
		PlayerID:      entry.Player.ID,
		PlayerName:    entry.Player.Name,
		TeamID:        teamID,
		Category:      entry.Category,
		Goals:         line.goals,
		Assists:       line.assists,
		Shots:         baseShots + line.shots,
		ShotsOnTarget: baseOnTarget + line.onTarget,
		Passes:        roundNonNeg(passes),
		PassAccuracy:  min(roundNonNeg(accuracy), 100),
		Tackles:       roundNonNeg(tackles),
		Interceptions: roundNonNeg(interceptions),
		Saves:         roundNonNeg(saves) + line.saves,
		YellowCards:   line.yellows,
		RedCards:      line.reds,
		MinutesPlayed: matchMinutes,
	}
	perf.ShotsOnTarget = max(perf.ShotsOnTarget, perf.Goals)
	perf.Shots = max(perf.Shots, perf.ShotsOnTarget)

	rating := 6.0 + 1.5*base + 0.8*float64(perf.Goals) + 0.5*float64(perf.Assists)
	switch {
	case scored > conceded:
		rating += 0.3
	case scored == conceded:
		rating += 0.1
	default:
		rating -= 0.1
	}
	rating += categoryBonus(perf, conceded)
	if perf.RedCards > 0 {
		rating -= 1.5
	} else {
		rating -= 0.2 * float64(perf.YellowCards)
	}
	rating += u()*0.4 - 0.2
	perf.Rating = math.Round(clamp(rating, minMatchRating, maxMatchRating)*10) / 10

	if perf.RedCards > 0 {
		perf.MinutesPlayed = 30 + m.rng.IntN(60)
	}
	return perf
}

func categoryBonus(perf fixture.Performance, conceded int) float64 {
	bonus := 0.0
	switch perf.Category {
	case player.CategoryForward:
		if perf.Shots > 0 && float64(perf.ShotsOnTarget)/float64(perf.Shots) >= 0.5 {
			bonus += 0.3
		}
	case player.CategoryMidfielder:
		if perf.Passes >= 60 {
			bonus += 0.2
		}
		if perf.PassAccuracy >= 88 {
			bonus += 0.2
		}
	case player.CategoryDefender:
		if perf.Tackles+perf.Interceptions >= 7 {
			bonus += 0.3
		}
	case player.CategoryGoalkeeper:
		if conceded == 0 {
			bonus += 0.7
		} else {
			bonus -= 0.15 * float64(conceded)
		}
		switch {
		case perf.Saves >= 5:
			bonus += 0.4
		case perf.Saves >= 3:
			bonus += 0.2
		}
	}
	return bonus
}

func roundNonNeg(v float64) int {
	if v <= 0 {
		return 0
	}
	return int(math.Round(v))
}
