package fixture

import (
	"strings"
	"time"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusFinished  = "FINISHED"
	StatusCancelled = "CANCELLED"
	StatusPostponed = "POSTPONED"
)

// Fixture represents one scheduled match and, once played, its full result.
type Fixture struct {
	ID           string
	LeagueID     string
	Gameweek     int
	HomeTeamID   string
	AwayTeamID   string
	HomeTeam     string
	AwayTeam     string
	KickoffAt    time.Time
	Venue        string
	Status       string
	Played       bool
	HomeScore    int
	AwayScore    int
	WinnerTeamID string
	FinishedAt   *time.Time
	Result       Result
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsFinishedStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFinished, "FT":
		return true
	default:
		return false
	}
}

func IsCancelledLikeStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusCancelled, StatusPostponed:
		return true
	default:
		return false
	}
}

// Simulatable reports whether the engine may still play this fixture.
func (f Fixture) Simulatable() bool {
	return !f.Played && !IsFinishedStatus(f.Status) && !IsCancelledLikeStatus(f.Status)
}

// GoalsFor returns the goals scored by teamID in this fixture.
func (f Fixture) GoalsFor(teamID string) int {
	switch teamID {
	case f.HomeTeamID:
		return f.HomeScore
	case f.AwayTeamID:
		return f.AwayScore
	default:
		return 0
	}
}
