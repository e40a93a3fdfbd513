package player

import "testing"

func TestPosition_Category(t *testing.T) {
	t.Parallel()

	tests := []struct {
		position Position
		want     Category
	}{
		{PositionGoalkeeper, CategoryGoalkeeper},
		{PositionLeftBack, CategoryDefender},
		{PositionWingBack, CategoryDefender},
		{PositionAttackingMid, CategoryMidfielder},
		{PositionRightMid, CategoryMidfielder},
		{PositionCenterForward, CategoryForward},
		{PositionLeftWing, CategoryForward},
		{Position("UNK"), CategoryMidfielder},
	}

	for _, tt := range tests {
		if got := tt.position.Category(); got != tt.want {
			t.Fatalf("category of %s: got=%s want=%s", tt.position, got, tt.want)
		}
	}
}

func TestPlayer_Eligible(t *testing.T) {
	t.Parallel()

	base := Player{ID: "p1", TeamID: "t1", Name: "A", Position: PositionStriker, Rating: 70}
	if !base.Eligible() {
		t.Fatalf("expected fit player to be eligible")
	}

	suspended := base
	suspended.SuspensionGames = 1
	injured := base
	injured.Injured = true
	ill := base
	ill.Ill = true

	for _, p := range []Player{suspended, injured, ill} {
		if p.Eligible() {
			t.Fatalf("expected player to be ineligible: %+v", p)
		}
	}
}

func TestPlayer_Validate(t *testing.T) {
	t.Parallel()

	valid := Player{ID: "p1", TeamID: "t1", Name: "A", Position: PositionStriker, Rating: 70}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid player, got %v", err)
	}

	invalid := valid
	invalid.Rating = 120
	if err := invalid.Validate(); err == nil {
		t.Fatalf("expected rating validation error")
	}

	invalid = valid
	invalid.Position = Position("XX")
	if err := invalid.Validate(); err == nil {
		t.Fatalf("expected position validation error")
	}
}
