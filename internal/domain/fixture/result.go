package fixture

import "github.com/riskibarqy/football-manager/internal/domain/player"

type EventKind string

const (
	EventGoal         EventKind = "GOAL"
	EventSave         EventKind = "SAVE"
	EventMiss         EventKind = "MISS"
	EventCard         EventKind = "CARD"
	EventCorner       EventKind = "CORNER"
	EventFoul         EventKind = "FOUL"
	EventPost         EventKind = "POST"
	EventSubstitution EventKind = "SUBSTITUTION"
	EventVAR          EventKind = "VAR"
	EventPenalty      EventKind = "PENALTY"
)

type CardKind string

const (
	CardYellow CardKind = "YELLOW"
	CardRed    CardKind = "RED"
)

// Event is one narrated match moment. ChainID is shared by a corner or VAR
// trigger and all of its follow-ups; independent events carry 0.
type Event struct {
	Minute      int
	Kind        EventKind
	Description string
	Important   bool
	TeamID      string
	TeamName    string
	ChainID     int
}

type Card struct {
	PlayerID string
	TeamID   string
	Kind     CardKind
	Minute   int
}

type Scorer struct {
	PlayerID   string
	Name       string
	Minute     int
	TeamID     string
	AssistID   string
	AssistName string
}

// Performance is the per-player match statistic line of one starter.
type Performance struct {
	PlayerID      string
	PlayerName    string
	TeamID        string
	Category      player.Category
	Goals         int
	Assists       int
	Shots         int
	ShotsOnTarget int
	Passes        int
	PassAccuracy  int
	Tackles       int
	Interceptions int
	Saves         int
	YellowCards   int
	RedCards      int
	MinutesPlayed int
	ManOfTheMatch bool
	Rating        float64
}

type Award struct {
	TeamID   string
	PlayerID string
}

// Result is everything the match engine produced for a played fixture.
type Result struct {
	Events        []Event
	Scorers       []Scorer
	Cards         []Card
	HomeLineup    []string
	AwayLineup    []string
	ManOfTheMatch *Award
	Referee       string
	Performances  []Performance
	Seed          uint64
}

// CountScorers returns the number of scorer records credited to teamID.
func (r Result) CountScorers(teamID string) int {
	count := 0
	for _, s := range r.Scorers {
		if s.TeamID == teamID {
			count++
		}
	}
	return count
}
