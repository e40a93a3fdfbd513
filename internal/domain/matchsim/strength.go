package matchsim

import "github.com/riskibarqy/football-manager/internal/domain/player"

const missingStarterPenalty = 3.0

// Strength is the mean effective rating per line plus an overall figure.
type Strength struct {
	Attack   float64
	Defense  float64
	Midfield float64
	Overall  float64
}

// PositionPenalty is the rating cost of fielding a nominal position in another line.
func PositionPenalty(position player.Position, fielded player.Category) int {
	nominal := position.Category()
	if nominal == fielded {
		return 0
	}

	switch {
	case nominal == player.CategoryGoalkeeper:
		return 50
	case nominal == player.CategoryForward && fielded == player.CategoryDefender:
		return 35
	case nominal == player.CategoryDefender && fielded == player.CategoryForward:
		return 30
	case nominal == player.CategoryForward && fielded == player.CategoryMidfielder:
		return 20
	case nominal == player.CategoryMidfielder && fielded == player.CategoryForward:
		return 15
	case nominal == player.CategoryMidfielder && fielded == player.CategoryDefender:
		return 18
	case nominal == player.CategoryDefender && fielded == player.CategoryMidfielder:
		return 15
	default:
		return 25
	}
}

func EffectiveRating(entry LineupEntry) int {
	rating := entry.Player.Rating - PositionPenalty(entry.Player.Position, entry.Category)
	if rating < 1 {
		return 1
	}
	return rating
}

// ComputeStrength averages effective ratings per line. Goalkeepers count toward
// defense. Empty lines report the baseline and are left out of Overall; with no
// starters at all Overall is the baseline.
func ComputeStrength(xi []LineupEntry, baseline float64) Strength {
	var sums [3]float64
	var counts [3]int
	const (
		attack = iota
		defense
		midfield
	)

	for _, entry := range xi {
		rating := float64(EffectiveRating(entry))
		switch entry.Category {
		case player.CategoryForward:
			sums[attack] += rating
			counts[attack]++
		case player.CategoryDefender, player.CategoryGoalkeeper:
			sums[defense] += rating
			counts[defense]++
		default:
			sums[midfield] += rating
			counts[midfield]++
		}
	}

	means := [3]float64{baseline, baseline, baseline}
	overall, populated := 0.0, 0
	for i := range sums {
		if counts[i] == 0 {
			continue
		}
		means[i] = sums[i] / float64(counts[i])
		overall += means[i]
		populated++
	}
	if populated == 0 {
		overall = baseline
	} else {
		overall /= float64(populated)
	}

	return Strength{
		Attack:   means[attack],
		Defense:  means[defense],
		Midfield: means[midfield],
		Overall:  overall,
	}
}

// MissingPlayerPenalty is subtracted from overall strength for every starter a
// side is short of eleven.
func MissingPlayerPenalty(active int) float64 {
	missing := startersPerSide - active
	if missing <= 0 {
		return 0
	}
	return missingStarterPenalty * float64(missing)
}

// HomeDominance is the probability that the home side acts on a given event.
func HomeDominance(home, away float64) float64 {
	return clamp(0.55+0.04*(home-away), 0.1, 0.9)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
