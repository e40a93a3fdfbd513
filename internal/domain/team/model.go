package team

import (
	"fmt"

	"github.com/riskibarqy/football-manager/internal/domain/player"
)

const DefaultFormation = "4-3-3"

// Team is a club inside a league.
type Team struct {
	ID             string
	LeagueID       string
	Name           string
	Short          string
	Formation      string
	BaselineRating int
}

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.LeagueID == "" {
		return fmt.Errorf("team league id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}

// Snapshot is a read-only roster view handed to the match engine.
type Snapshot struct {
	Team    Team
	Players []player.Player
}
