package matchsim

import (
	"testing"

	"github.com/riskibarqy/football-manager/internal/domain/fixture"
)

func TestKindForRoll_FirstBandWins(t *testing.T) {
	t.Parallel()

	cases := []struct {
		roll float64
		want fixture.EventKind
	}{
		{0, fixture.EventGoal},
		{0.0649, fixture.EventGoal},
		{0.065, fixture.EventSave},
		{0.30, fixture.EventMiss},
		{0.45, fixture.EventCard},
		{0.585, fixture.EventFoul},
		{0.61, fixture.EventCard},
		{0.62, fixture.EventCorner},
		{0.649, fixture.EventCorner},
		{0.65, fixture.EventVAR},
		{0.72, fixture.EventPost},
		{0.75, fixture.EventSubstitution},
		{0.80, fixture.EventFoul},
		{0.9999, fixture.EventFoul},
	}

	for _, tc := range cases {
		if got := KindForRoll(tc.roll); got != tc.want {
			t.Fatalf("KindForRoll(%v) = %s, want %s", tc.roll, got, tc.want)
		}
	}
}

func TestEventBands_EveryKindHasResolver(t *testing.T) {
	t.Parallel()

	for _, b := range EventBands {
		if _, ok := resolvers[b.Kind]; !ok {
			t.Fatalf("no resolver wired for %s", b.Kind)
		}
		if b.Lo >= b.Hi {
			t.Fatalf("empty band for %s: [%v, %v)", b.Kind, b.Lo, b.Hi)
		}
	}
}
