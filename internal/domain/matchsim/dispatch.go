package matchsim

import "github.com/riskibarqy/football-manager/internal/domain/fixture"

// Band maps a half-open roll interval [Lo, Hi) to an event kind.
type Band struct {
	Lo   float64
	Hi   float64
	Kind fixture.EventKind
}

// EventBands is evaluated in order and the first band containing the roll
// wins. Some bands overlap; the order decides, so CORNER only fires on
// [0.62, 0.65).
var EventBands = []Band{
	{Lo: 0, Hi: 0.065, Kind: fixture.EventGoal},
	{Lo: 0.065, Hi: 0.25, Kind: fixture.EventSave},
	{Lo: 0.25, Hi: 0.45, Kind: fixture.EventMiss},
	{Lo: 0.45, Hi: 0.58, Kind: fixture.EventCard},
	{Lo: 0.58, Hi: 0.60, Kind: fixture.EventFoul},
	{Lo: 0.60, Hi: 0.62, Kind: fixture.EventCard},
	{Lo: 0.58, Hi: 0.65, Kind: fixture.EventCorner},
	{Lo: 0.65, Hi: 0.70, Kind: fixture.EventVAR},
	{Lo: 0.70, Hi: 0.74, Kind: fixture.EventPost},
	{Lo: 0.74, Hi: 0.80, Kind: fixture.EventSubstitution},
	{Lo: 0.80, Hi: 1.0, Kind: fixture.EventFoul},
}

// KindForRoll returns the event kind for a uniform roll in [0, 1).
func KindForRoll(roll float64) fixture.EventKind {
	for _, b := range EventBands {
		if roll >= b.Lo && roll < b.Hi {
			return b.Kind
		}
	}
	return fixture.EventFoul
}

type resolver func(m *match, minute int, acting side)

// resolvers wires each independently rolled kind to its routine. PENALTY is
// only reachable through a VAR chain.
var resolvers = map[fixture.EventKind]resolver{
	fixture.EventGoal:         (*match).resolveGoal,
	fixture.EventSave:         (*match).resolveSave,
	fixture.EventMiss:         (*match).resolveMiss,
	fixture.EventCard:         (*match).resolveCard,
	fixture.EventCorner:       (*match).resolveCorner,
	fixture.EventFoul:         (*match).resolveFoul,
	fixture.EventPost:         (*match).resolvePost,
	fixture.EventSubstitution: (*match).resolveSubstitution,
	fixture.EventVAR:          (*match).resolveVAR,
}
