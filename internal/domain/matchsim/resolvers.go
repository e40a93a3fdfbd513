package matchsim

import (
	"math"

	"github.com/riskibarqy/football-manager/internal/domain/fixture"
	"github.com/riskibarqy/football-manager/internal/domain/player"
)

const (
	assistChance         = 0.70
	slowFinisherPace     = 70
	slowFinisherDenial   = 0.15
	directRedChance      = 0.15
	cornerHeaderChance   = 0.15
	cornerBicycleChance  = 0.10
	varPenaltyChance     = 0.25
	varOffsideChance     = 0.20
	varFoulChance        = 0.20
	penaltyConvertChance = 0.75
)

// actor is the id and display name credited in events and records.
type actor struct {
	id   string
	name string
}

var nobody = actor{name: unknownPlayer}

func actorOf(entry LineupEntry) actor {
	return actor{id: entry.Player.ID, name: entry.Player.Name}
}

func pickWeighted(rng Source, entries []LineupEntry, weight func(LineupEntry) float64) (LineupEntry, bool) {
	if len(entries) == 0 {
		return LineupEntry{}, false
	}
	weights := make([]float64, len(entries))
	for i, entry := range entries {
		weights[i] = weight(entry)
	}
	return entries[weightedIndex(rng, weights)], true
}

func pickUniform(rng Source, entries []LineupEntry) (LineupEntry, bool) {
	if len(entries) == 0 {
		return LineupEntry{}, false
	}
	return entries[rng.IntN(len(entries))], true
}

// scorerWeight favours clinical, quick finishers: shooting is cubed, then
// boosted by shooting and pace tiers.
func scorerWeight(entry LineupEntry) float64 {
	attrs := entry.Player.Attributes
	shooting := float64(attrs.Shooting)
	weight := float64(entry.Player.Rating) / 100 * math.Pow(shooting/100, 3)

	switch {
	case attrs.Shooting >= 90:
		weight *= 2.0
	case attrs.Shooting >= 85:
		weight *= 1.7
	case attrs.Shooting >= 80:
		weight *= 1.4
	case attrs.Shooting >= 75:
		weight *= 1.2
	}
	if entry.Category == player.CategoryForward && attrs.Shooting >= 85 {
		weight *= 1.5
	}
	switch {
	case attrs.Pace >= 90:
		weight *= 1.5
	case attrs.Pace >= 85:
		weight *= 1.3
	case attrs.Pace >= 80:
		weight *= 1.15
	}
	return weight
}

func assistWeight(entry LineupEntry) float64 {
	attrs := entry.Player.Attributes
	passing := float64(attrs.Passing) / 100
	flair := math.Max(0, float64(attrs.Dribbling-70)) / 100
	return passing * passing * (1 + flair)
}

func shootingSquared(entry LineupEntry) float64 {
	s := float64(entry.Player.Attributes.Shooting)
	return s * s
}

func physicalWeight(entry LineupEntry) float64 {
	return float64(entry.Player.Attributes.Physical)
}

func dribblingWeight(entry LineupEntry) float64 {
	return float64(entry.Player.Attributes.Dribbling)
}

func passingWeight(entry LineupEntry) float64 {
	return float64(entry.Player.Attributes.Passing)
}

// pickAssist draws a provider and drops the result when it is the scorer.
func (m *match) pickAssist(candidates []LineupEntry, scorer actor, weight func(LineupEntry) float64) actor {
	provider, ok := pickWeighted(m.rng, candidates, weight)
	if !ok || provider.Player.ID == scorer.id {
		return actor{}
	}
	return actorOf(provider)
}

func (m *match) recordGoal(minute int, acting side, chainID int, scorer, assist actor, key string) {
	s := m.sides[acting]
	t := m.tally(scorer.id)
	t.shots++
	t.onTarget++

	m.scorers = append(m.scorers, fixture.Scorer{
		PlayerID:   scorer.id,
		Name:       scorer.name,
		Minute:     minute,
		TeamID:     s.teamID,
		AssistID:   assist.id,
		AssistName: assist.name,
	})
	s.goals++

	if key == "" {
		key = KeyGoal
		if assist.name != "" {
			key = KeyGoalAssisted
		}
	}
	m.emit(minute, fixture.EventGoal, true, acting, chainID, key, Params{
		"player": scorer.name,
		"assist": assist.name,
	})
}

// recordSave credits the shot to the shooter and the save to the defending
// keeper. Without a keeper on the pitch the text drops the keeper.
func (m *match) recordSave(minute int, acting side, chainID int, shooter actor, key string) {
	t := m.tally(shooter.id)
	t.shots++
	t.onTarget++

	params := Params{"player": shooter.name}
	if keeper, ok := m.sides[acting.opponent()].keeper(); ok {
		m.tally(keeper.Player.ID).saves++
		params["keeper"] = keeper.Player.Name
	} else {
		key = KeySaveNoKeeper
	}
	m.emit(minute, fixture.EventSave, false, acting, chainID, key, params)
}

func (m *match) resolveGoal(minute int, acting side) {
	candidates := m.sides[acting].activeEntries()
	shooter, ok := pickWeighted(m.rng, candidates, scorerWeight)
	if !ok {
		m.recordGoal(minute, acting, 0, nobody, actor{}, "")
		return
	}

	if shooter.Player.Attributes.Pace < slowFinisherPace && chance(m.rng, slowFinisherDenial) {
		m.recordSave(minute, acting, 0, actorOf(shooter), KeyGoalDenied)
		return
	}

	scorer := actorOf(shooter)
	assist := actor{}
	if chance(m.rng, assistChance) {
		assist = m.pickAssist(candidates, scorer, assistWeight)
	}
	m.recordGoal(minute, acting, 0, scorer, assist, "")
}

func (m *match) resolveSave(minute int, acting side) {
	active := m.sides[acting].activeEntries()
	attackers := make([]LineupEntry, 0, len(active))
	outfield := make([]LineupEntry, 0, len(active))
	for _, entry := range active {
		switch entry.Category {
		case player.CategoryForward, player.CategoryMidfielder:
			attackers = append(attackers, entry)
			outfield = append(outfield, entry)
		case player.CategoryDefender:
			outfield = append(outfield, entry)
		}
	}

	shooter := nobody
	for _, pool := range [][]LineupEntry{attackers, outfield, active} {
		if entry, ok := pickUniform(m.rng, pool); ok {
			shooter = actorOf(entry)
			break
		}
	}
	m.recordSave(minute, acting, 0, shooter, KeySave)
}

func (m *match) resolveMiss(minute int, acting side) {
	shooter := nobody
	if entry, ok := pickWeighted(m.rng, m.sides[acting].activeEntries(), shootingSquared); ok {
		shooter = actorOf(entry)
	}
	m.tally(shooter.id).shots++
	m.emit(minute, fixture.EventMiss, false, acting, 0, KeyMiss, Params{"player": shooter.name})
}

// resolveCard books a random active player. A second booking or a direct red
// sends them off, which removes them from the active set.
func (m *match) resolveCard(minute int, acting side) {
	s := m.sides[acting]
	entry, ok := pickUniform(m.rng, s.activeEntries())
	if !ok {
		return
	}
	booked := actorOf(entry)

	secondYellow := m.yellows[booked.id] >= 1
	if secondYellow || chance(m.rng, directRedChance) {
		delete(m.yellows, booked.id)
		delete(s.active, booked.id)
		m.cards = append(m.cards, fixture.Card{PlayerID: booked.id, TeamID: s.teamID, Kind: fixture.CardRed, Minute: minute})

		key := KeyCardRed
		if secondYellow {
			key = KeyCardSecondYellow
		}
		m.emit(minute, fixture.EventCard, true, acting, 0, key, Params{"player": booked.name})
		return
	}

	m.yellows[booked.id]++
	m.cards = append(m.cards, fixture.Card{PlayerID: booked.id, TeamID: s.teamID, Kind: fixture.CardYellow, Minute: minute})
	m.emit(minute, fixture.EventCard, false, acting, 0, KeyCardYellow, Params{"player": booked.name})
}

func (m *match) resolveCorner(minute int, acting side) {
	chainID := m.nextChain()
	m.emit(minute, fixture.EventCorner, false, acting, chainID, KeyCorner, nil)
	m.schedule(minute, chainID, followCornerOutcome, acting)
}

func (m *match) resolveCornerOutcome(p pendingEvent) {
	candidates := m.sides[p.acting].activeEntries()
	roll := m.rng.Float64()

	var (
		key    string
		weight func(LineupEntry) float64
	)
	switch {
	case roll < cornerHeaderChance:
		key, weight = KeyCornerHeader, physicalWeight
	case roll < cornerHeaderChance+cornerBicycleChance:
		key, weight = KeyCornerBicycle, dribblingWeight
	default:
		m.emit(p.minute, fixture.EventCorner, false, p.acting, p.chainID, KeyCornerCleared, nil)
		return
	}

	scorer := nobody
	if entry, ok := pickWeighted(m.rng, candidates, weight); ok {
		scorer = actorOf(entry)
	}
	assist := m.pickAssist(candidates, scorer, passingWeight)
	m.recordGoal(p.minute, p.acting, p.chainID, scorer, assist, key)
}

func (m *match) resolveVAR(minute int, acting side) {
	chainID := m.nextChain()
	m.emit(minute, fixture.EventVAR, true, acting, chainID, KeyVARCheck, nil)
	m.schedule(minute, chainID, followVARDecision, acting)
}

func (m *match) resolveVARDecision(p pendingEvent) {
	roll := m.rng.Float64()
	switch {
	case roll < varPenaltyChance:
		m.emit(p.minute, fixture.EventPenalty, true, p.acting, p.chainID, KeyVARPenalty, nil)
		m.schedule(p.minute, p.chainID, followPenaltyKick, p.acting)
	case roll < varPenaltyChance+varOffsideChance:
		m.emit(p.minute, fixture.EventVAR, true, p.acting, p.chainID, KeyVAROffside, nil)
	case roll < varPenaltyChance+varOffsideChance+varFoulChance:
		m.emit(p.minute, fixture.EventVAR, true, p.acting, p.chainID, KeyVARFoul, nil)
	default:
		m.emit(p.minute, fixture.EventVAR, false, p.acting, p.chainID, KeyVARClear, nil)
	}
}

// resolvePenaltyKick gives the kick to the best active finisher.
func (m *match) resolvePenaltyKick(p pendingEvent) {
	taker := nobody
	best := -1
	for _, entry := range m.sides[p.acting].activeEntries() {
		if entry.Player.Attributes.Shooting > best {
			best = entry.Player.Attributes.Shooting
			taker = actorOf(entry)
		}
	}

	if chance(m.rng, penaltyConvertChance) {
		m.recordGoal(p.minute, p.acting, p.chainID, taker, actor{}, KeyPenaltyScored)
		return
	}
	m.recordSave(p.minute, p.acting, p.chainID, taker, KeyPenaltySaved)
}

func (m *match) resolveFoul(minute int, acting side) {
	offender := nobody
	if entry, ok := pickUniform(m.rng, m.sides[acting].activeEntries()); ok {
		offender = actorOf(entry)
	}
	m.emit(minute, fixture.EventFoul, false, acting, 0, KeyFoul, Params{"player": offender.name})
}

func (m *match) resolvePost(minute int, acting side) {
	shooter := nobody
	if entry, ok := pickWeighted(m.rng, m.sides[acting].activeEntries(), shootingSquared); ok {
		shooter = actorOf(entry)
	}
	m.tally(shooter.id).shots++
	m.emit(minute, fixture.EventPost, false, acting, 0, KeyPost, Params{"player": shooter.name})
}

func (m *match) resolveSubstitution(minute int, acting side) {
	m.emit(minute, fixture.EventSubstitution, false, acting, 0, KeySubstitution, nil)
}
