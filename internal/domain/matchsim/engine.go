package matchsim

import (
	"sort"

	"github.com/riskibarqy/football-manager/internal/domain/fixture"
	"github.com/riskibarqy/football-manager/internal/domain/team"
	"github.com/riskibarqy/football-manager/internal/platform/logging"
)

var defaultReferees = []string{
	"Michael Oliver",
	"Anthony Taylor",
	"Cüneyt Çakır",
	"Szymon Marciniak",
	"Daniele Orsato",
	"Felix Brych",
	"Stéphanie Frappart",
	"Halil Umut Meler",
}

// Engine plays fixtures. It keeps no state between calls and is safe for
// concurrent use as long as each call gets its own Source.
type Engine struct {
	narrator Narrator
	referees []string
	logger   *logging.Logger
}

type Option func(*Engine)

func WithNarrator(narrator Narrator) Option {
	return func(e *Engine) {
		if narrator != nil {
			e.narrator = narrator
		}
	}
}

func WithReferees(names []string) Option {
	return func(e *Engine) {
		if len(names) > 0 {
			e.referees = append([]string(nil), names...)
		}
	}
}

func WithLogger(logger *logging.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		narrator: NewCatalogNarrator(),
		referees: defaultReferees,
		logger:   logging.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Simulate plays fx between the two snapshots and returns the finished
// fixture. Degenerate rosters yield short or empty lineups rather than errors.
// The final score is counted from the scorer list.
func (e *Engine) Simulate(fx fixture.Fixture, home, away team.Snapshot, lang string, rng Source) fixture.Fixture {
	homeSquad := newSquad(
		firstNonEmpty(fx.HomeTeamID, home.Team.ID),
		firstNonEmpty(home.Team.Name, fx.HomeTeam),
		SelectStartingXI(home),
		float64(home.Team.BaselineRating),
	)
	awaySquad := newSquad(
		firstNonEmpty(fx.AwayTeamID, away.Team.ID),
		firstNonEmpty(away.Team.Name, fx.AwayTeam),
		SelectStartingXI(away),
		float64(away.Team.BaselineRating),
	)

	referee := e.referees[rng.IntN(len(e.referees))]

	m := newMatch(rng, e.narrator, ParseLanguage(lang), homeSquad, awaySquad)
	m.run()

	sort.SliceStable(m.events, func(i, j int) bool {
		return m.events[i].Minute < m.events[j].Minute
	})
	sort.SliceStable(m.scorers, func(i, j int) bool {
		return m.scorers[i].Minute < m.scorers[j].Minute
	})

	tally := fixture.Result{Scorers: m.scorers}
	homeScore := tally.CountScorers(homeSquad.teamID)
	awayScore := tally.CountScorers(awaySquad.teamID)
	if homeScore != homeSquad.goals || awayScore != awaySquad.goals {
		e.logger.Warn("goal tally drifted from scorer records, using scorer records",
			"fixture_id", fx.ID,
			"live_home", homeSquad.goals,
			"live_away", awaySquad.goals,
			"scorers_home", homeScore,
			"scorers_away", awayScore,
		)
	}

	winnerTeamID := ""
	switch {
	case homeScore > awayScore:
		winnerTeamID = homeSquad.teamID
	case awayScore > homeScore:
		winnerTeamID = awaySquad.teamID
	}

	perfs := m.performances(homeScore, awayScore)
	baseRatings := make([]int, 0, len(perfs))
	for _, s := range []*squad{homeSquad, awaySquad} {
		for _, entry := range s.xi {
			baseRatings = append(baseRatings, entry.Player.Rating)
		}
	}
	conceded := map[string]int{
		homeSquad.teamID: awayScore,
		awaySquad.teamID: homeScore,
	}

	var award *fixture.Award
	if idx := selectManOfTheMatch(perfs, baseRatings, winnerTeamID, conceded); idx >= 0 {
		perfs[idx].ManOfTheMatch = true
		award = &fixture.Award{TeamID: perfs[idx].TeamID, PlayerID: perfs[idx].PlayerID}
	}

	fx.HomeTeamID = homeSquad.teamID
	fx.AwayTeamID = awaySquad.teamID
	fx.HomeTeam = homeSquad.teamName
	fx.AwayTeam = awaySquad.teamName
	fx.Played = true
	fx.Status = fixture.StatusFinished
	fx.HomeScore = homeScore
	fx.AwayScore = awayScore
	fx.WinnerTeamID = winnerTeamID
	fx.Result = fixture.Result{
		Events:        m.events,
		Scorers:       m.scorers,
		Cards:         m.cards,
		HomeLineup:    lineupIDs(homeSquad.xi),
		AwayLineup:    lineupIDs(awaySquad.xi),
		ManOfTheMatch: award,
		Referee:       referee,
		Performances:  perfs,
		Seed:          fx.Result.Seed,
	}
	return fx
}

func lineupIDs(xi []LineupEntry) []string {
	out := make([]string, 0, len(xi))
	for _, entry := range xi {
		out = append(out, entry.Player.ID)
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
