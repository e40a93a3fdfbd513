package matchsim

import (
	"github.com/riskibarqy/football-manager/internal/domain/fixture"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	"golang.org/x/text/language"
)

const (
	matchMinutes  = 90
	minIterations = 30
	iterationSpan = 10
	unknownPlayer = "Unknown Player"
)

type side int

const (
	homeSide side = iota
	awaySide
)

func (s side) opponent() side {
	if s == homeSide {
		return awaySide
	}
	return homeSide
}

// squad is the live state of one side during a match.
type squad struct {
	teamID   string
	teamName string
	xi       []LineupEntry
	strength Strength
	active   map[string]bool
	goals    int
}

func newSquad(teamID, teamName string, xi []LineupEntry, baseline float64) *squad {
	active := make(map[string]bool, len(xi))
	for _, entry := range xi {
		active[entry.Player.ID] = true
	}
	return &squad{
		teamID:   teamID,
		teamName: teamName,
		xi:       xi,
		strength: ComputeStrength(xi, baseline),
		active:   active,
	}
}

// activeEntries lists starters still on the pitch, in lineup order.
func (s *squad) activeEntries() []LineupEntry {
	out := make([]LineupEntry, 0, len(s.xi))
	for _, entry := range s.xi {
		if s.active[entry.Player.ID] {
			out = append(out, entry)
		}
	}
	return out
}

func (s *squad) activeCount() int {
	return len(s.active)
}

// liveStrength is the overall strength after the missing-starter penalty.
func (s *squad) liveStrength() float64 {
	return s.strength.Overall - MissingPlayerPenalty(s.activeCount())
}

func (s *squad) keeper() (LineupEntry, bool) {
	for _, entry := range s.activeEntries() {
		if entry.Category == player.CategoryGoalkeeper {
			return entry, true
		}
	}
	return LineupEntry{}, false
}

type followUp int

const (
	followCornerOutcome followUp = iota
	followVARDecision
	followPenaltyKick
)

// pendingEvent is a chained follow-up waiting for its minute.
type pendingEvent struct {
	minute  int
	chainID int
	kind    followUp
	acting  side
}

type shotTally struct {
	shots    int
	onTarget int
	saves    int
}

// match holds the accumulators of a single simulation. Nothing in it outlives
// the Simulate call.
type match struct {
	rng      Source
	narrator Narrator
	lang     language.Tag
	sides    [2]*squad

	yellows  map[string]int
	tallies  map[string]*shotTally
	blocked  map[int]bool
	occupied map[int]bool
	pending  []pendingEvent
	chains   int

	events  []fixture.Event
	scorers []fixture.Scorer
	cards   []fixture.Card
}

func newMatch(rng Source, narrator Narrator, lang language.Tag, home, away *squad) *match {
	return &match{
		rng:      rng,
		narrator: narrator,
		lang:     lang,
		sides:    [2]*squad{home, away},
		yellows:  make(map[string]int),
		tallies:  make(map[string]*shotTally),
		blocked:  make(map[int]bool),
		occupied: make(map[int]bool),
	}
}

// run plays 30 to 39 iterations over a shuffled minute order. A blocked minute
// still consumes its iteration. Card counts and the active player sets follow
// processing order, not match chronology: a booking resolved earlier can make
// a card at an earlier minute a second yellow, and a player sent off in one
// iteration may already hold events at later minutes.
func (m *match) run() {
	iterations := minIterations + m.rng.IntN(iterationSpan)
	minutes := m.rng.Perm(matchMinutes)

	for i := 0; i < iterations && i < len(minutes); i++ {
		minute := minutes[i] + 1
		if m.blocked[minute] {
			continue
		}

		dominance := HomeDominance(m.sides[homeSide].liveStrength(), m.sides[awaySide].liveStrength())
		acting := awaySide
		if chance(m.rng, dominance) {
			acting = homeSide
		}

		kind := KindForRoll(m.rng.Float64())
		m.occupied[minute] = true
		resolvers[kind](m, minute, acting)
		m.drainPending()
	}
}

func (m *match) drainPending() {
	for len(m.pending) > 0 {
		next := m.pending[0]
		m.pending = m.pending[1:]

		switch next.kind {
		case followCornerOutcome:
			m.resolveCornerOutcome(next)
		case followVARDecision:
			m.resolveVARDecision(next)
		case followPenaltyKick:
			m.resolvePenaltyKick(next)
		}
	}
}

func (m *match) nextChain() int {
	m.chains++
	return m.chains
}

// schedule queues a follow-up one or two minutes after from, capped at full
// time. A two-minute window shrinks to one when the minute in between already
// holds an independent event; minutes strictly inside the window are blocked.
func (m *match) schedule(from, chainID int, kind followUp, acting side) {
	delay := 1 + m.rng.IntN(2)
	if delay == 2 && m.occupied[from+1] {
		delay = 1
	}

	at := from + delay
	if at > matchMinutes {
		at = matchMinutes
	}
	for minute := from + 1; minute < at; minute++ {
		m.blocked[minute] = true
	}

	m.pending = append(m.pending, pendingEvent{
		minute:  at,
		chainID: chainID,
		kind:    kind,
		acting:  acting,
	})
}

func (m *match) emit(minute int, kind fixture.EventKind, important bool, acting side, chainID int, key string, params Params) {
	s := m.sides[acting]
	if params == nil {
		params = Params{}
	}
	params["team"] = s.teamName

	m.events = append(m.events, fixture.Event{
		Minute:      minute,
		Kind:        kind,
		Description: m.narrator.Narrate(m.lang, key, params),
		Important:   important,
		TeamID:      s.teamID,
		TeamName:    s.teamName,
		ChainID:     chainID,
	})
}

func (m *match) tally(playerID string) *shotTally {
	if playerID == "" {
		return &shotTally{}
	}
	t, ok := m.tallies[playerID]
	if !ok {
		t = &shotTally{}
		m.tallies[playerID] = t
	}
	return t
}
