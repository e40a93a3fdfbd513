package matchsim

import (
	"sort"

	"github.com/riskibarqy/football-manager/internal/domain/player"
	"github.com/riskibarqy/football-manager/internal/domain/team"
)

const startersPerSide = 11

// LineupEntry is a starter and the line they are fielded in, which may differ
// from their nominal position.
type LineupEntry struct {
	Player   player.Player
	Category player.Category
}

var categoryRank = map[player.Category]int{
	player.CategoryGoalkeeper: 0,
	player.CategoryDefender:   1,
	player.CategoryMidfielder: 2,
	player.CategoryForward:    3,
}

// SelectStartingXI picks up to eleven eligible starters. The best goalkeeper
// goes in goal, then the best nominal defenders, midfielders and forwards up to
// the formation counts; leftover slots are backfilled by rating into whichever
// line is still short. Entries come back ordered GK, DEF, MID, FWD.
func SelectStartingXI(snapshot team.Snapshot) []LineupEntry {
	formation := ParseFormation(snapshot.Team.Formation)

	pool := make([]player.Player, 0, len(snapshot.Players))
	for _, p := range snapshot.Players {
		if p.Eligible() {
			pool = append(pool, p)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Rating > pool[j].Rating
	})

	need := map[player.Category]int{
		player.CategoryGoalkeeper: 1,
		player.CategoryDefender:   formation.Defenders,
		player.CategoryMidfielder: formation.Midfielders,
		player.CategoryForward:    formation.Forwards,
	}
	filled := make(map[player.Category]int, len(need))
	used := make([]bool, len(pool))
	xi := make([]LineupEntry, 0, startersPerSide)

	take := func(i int, category player.Category) {
		used[i] = true
		filled[category]++
		xi = append(xi, LineupEntry{Player: pool[i], Category: category})
	}

	for i, p := range pool {
		if p.Position.Category() == player.CategoryGoalkeeper {
			take(i, player.CategoryGoalkeeper)
			break
		}
	}

	for i, p := range pool {
		if len(xi) == startersPerSide {
			break
		}
		category := p.Position.Category()
		if used[i] || category == player.CategoryGoalkeeper || filled[category] >= need[category] {
			continue
		}
		take(i, category)
	}

	for i := range pool {
		if len(xi) == startersPerSide {
			break
		}
		if used[i] {
			continue
		}
		take(i, backfillCategory(need, filled))
	}

	sort.SliceStable(xi, func(i, j int) bool {
		return categoryRank[xi[i].Category] < categoryRank[xi[j].Category]
	})
	return xi
}

func backfillCategory(need, filled map[player.Category]int) player.Category {
	if filled[player.CategoryGoalkeeper] == 0 {
		return player.CategoryGoalkeeper
	}

	best := player.CategoryMidfielder
	bestShort := 0
	for _, category := range []player.Category{player.CategoryMidfielder, player.CategoryDefender, player.CategoryForward} {
		if short := need[category] - filled[category]; short > bestShort {
			best, bestShort = category, short
		}
	}
	return best
}
