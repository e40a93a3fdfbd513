package matchsim

import (
	"math"
	"testing"

	"github.com/riskibarqy/football-manager/internal/domain/player"
)

func TestPositionPenalty(t *testing.T) {
	t.Parallel()

	cases := []struct {
		position player.Position
		fielded  player.Category
		want     int
	}{
		{player.PositionLeftBack, player.CategoryDefender, 0},
		{player.PositionAttackingMid, player.CategoryMidfielder, 0},
		{player.PositionGoalkeeper, player.CategoryGoalkeeper, 0},
		{player.PositionGoalkeeper, player.CategoryForward, 50},
		{player.PositionGoalkeeper, player.CategoryDefender, 50},
		{player.PositionStriker, player.CategoryDefender, 35},
		{player.PositionCenterBack, player.CategoryForward, 30},
		{player.PositionLeftWing, player.CategoryMidfielder, 20},
		{player.PositionCentralMid, player.CategoryForward, 15},
		{player.PositionDefensiveMid, player.CategoryDefender, 18},
		{player.PositionRightBack, player.CategoryMidfielder, 15},
		{player.PositionCenterBack, player.CategoryGoalkeeper, 25},
		{player.PositionStriker, player.CategoryGoalkeeper, 25},
	}

	for _, tc := range cases {
		if got := PositionPenalty(tc.position, tc.fielded); got != tc.want {
			t.Fatalf("PositionPenalty(%s, %s) = %d, want %d", tc.position, tc.fielded, got, tc.want)
		}
	}
}

func TestEffectiveRating_GoalkeeperOutfieldIsAlwaysLower(t *testing.T) {
	t.Parallel()

	for rating := 1; rating <= 99; rating++ {
		keeper := player.Player{ID: "gk", Position: player.PositionGoalkeeper, Rating: rating}
		inGoal := EffectiveRating(LineupEntry{Player: keeper, Category: player.CategoryGoalkeeper})
		if inGoal != rating {
			t.Fatalf("rating %d: expected no penalty in goal, got %d", rating, inGoal)
		}
		for _, line := range []player.Category{player.CategoryDefender, player.CategoryMidfielder, player.CategoryForward} {
			out := EffectiveRating(LineupEntry{Player: keeper, Category: line})
			if out < 1 {
				t.Fatalf("effective rating must be floored at 1, got %d", out)
			}
			if rating > 1 && out >= inGoal {
				t.Fatalf("rating %d in %s: expected %d < %d", rating, line, out, inGoal)
			}
		}
	}
}

func TestComputeStrength(t *testing.T) {
	t.Parallel()

	xi := []LineupEntry{
		{Player: player.Player{Position: player.PositionGoalkeeper, Rating: 80}, Category: player.CategoryGoalkeeper},
		{Player: player.Player{Position: player.PositionCenterBack, Rating: 70}, Category: player.CategoryDefender},
		{Player: player.Player{Position: player.PositionCentralMid, Rating: 75}, Category: player.CategoryMidfielder},
		{Player: player.Player{Position: player.PositionCentralMid, Rating: 65}, Category: player.CategoryMidfielder},
		{Player: player.Player{Position: player.PositionCenterBack, Rating: 90}, Category: player.CategoryForward},
	}

	got := ComputeStrength(xi, 50)
	if got.Defense != 75 {
		t.Fatalf("expected defense 75, got %v", got.Defense)
	}
	if got.Midfield != 70 {
		t.Fatalf("expected midfield 70, got %v", got.Midfield)
	}
	if got.Attack != 60 {
		t.Fatalf("expected attack 60 after the out-of-position penalty, got %v", got.Attack)
	}
	if math.Abs(got.Overall-(75+70+60)/3.0) > 1e-9 {
		t.Fatalf("unexpected overall %v", got.Overall)
	}

	empty := ComputeStrength(nil, 64)
	if empty.Overall != 64 || empty.Attack != 64 || empty.Defense != 64 || empty.Midfield != 64 {
		t.Fatalf("expected baseline everywhere for an empty XI, got %+v", empty)
	}

	onlyKeeper := ComputeStrength(xi[:1], 40)
	if onlyKeeper.Overall != 80 {
		t.Fatalf("expected overall from the only populated line, got %v", onlyKeeper.Overall)
	}
}

func TestMissingPlayerPenaltyAndDominance(t *testing.T) {
	t.Parallel()

	if got := MissingPlayerPenalty(11); got != 0 {
		t.Fatalf("expected no penalty for a full side, got %v", got)
	}
	if got := MissingPlayerPenalty(9); got != 6 {
		t.Fatalf("expected 6 for two missing, got %v", got)
	}
	if got := MissingPlayerPenalty(12); got != 0 {
		t.Fatalf("penalty must not go negative, got %v", got)
	}

	if got := HomeDominance(70, 70); math.Abs(got-0.55) > 1e-9 {
		t.Fatalf("expected 0.55 for equal sides, got %v", got)
	}
	if got := HomeDominance(99, 1); got != 0.9 {
		t.Fatalf("expected upper clamp, got %v", got)
	}
	if got := HomeDominance(1, 99); got != 0.1 {
		t.Fatalf("expected lower clamp, got %v", got)
	}
}

func TestDominanceDropsAfterTwoRedCards(t *testing.T) {
	t.Parallel()

	home := newSquad("home", "Home", SelectStartingXI(uniformOutfield("home", 70)), 70)
	away := newSquad("away", "Away", SelectStartingXI(uniformOutfield("away", 70)), 70)

	before := HomeDominance(home.liveStrength(), away.liveStrength())
	for _, entry := range home.xi[len(home.xi)-2:] {
		delete(home.active, entry.Player.ID)
	}
	after := HomeDominance(home.liveStrength(), away.liveStrength())

	if home.activeCount() != 9 {
		t.Fatalf("expected 9 active players, got %d", home.activeCount())
	}
	if after >= before {
		t.Fatalf("expected dominance to drop after two dismissals: before=%v after=%v", before, after)
	}
}
