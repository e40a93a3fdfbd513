package matchsim

import (
	"github.com/riskibarqy/football-manager/internal/domain/fixture"
	"github.com/riskibarqy/football-manager/internal/domain/player"
)

const motmEpsilon = 1e-9

// MOTMScore weighs a starter's match for the man-of-the-match award.
func MOTMScore(perf fixture.Performance, onWinningSide, cleanSheet bool) float64 {
	score := 2*perf.Rating + 25*float64(perf.Goals) + 12*float64(perf.Assists)
	if onWinningSide {
		score += 5
	}
	if cleanSheet && perf.Category == player.CategoryGoalkeeper {
		score += 10
	}
	return score
}

// selectManOfTheMatch returns the index of the best-scoring performance, or -1
// when there are none. Ties go to the higher base rating, then to the earlier
// lineup position.
func selectManOfTheMatch(perfs []fixture.Performance, baseRatings []int, winnerTeamID string, conceded map[string]int) int {
	best := -1
	bestScore := 0.0
	for i, perf := range perfs {
		winning := winnerTeamID != "" && perf.TeamID == winnerTeamID
		score := MOTMScore(perf, winning, conceded[perf.TeamID] == 0)

		switch {
		case best < 0, score > bestScore+motmEpsilon:
			best, bestScore = i, score
		case score > bestScore-motmEpsilon && baseRatings[i] > baseRatings[best]:
			best, bestScore = i, score
		}
	}
	return best
}
