package player

import "fmt"

// Position is the nominal playing position of a squad member.
type Position string

const (
	PositionGoalkeeper Position = "GK"

	PositionCenterBack Position = "CB"
	PositionLeftBack   Position = "LB"
	PositionRightBack  Position = "RB"
	PositionWingBack   Position = "WB"

	PositionDefensiveMid Position = "CDM"
	PositionCentralMid   Position = "CM"
	PositionAttackingMid Position = "CAM"
	PositionLeftMid      Position = "LM"
	PositionRightMid     Position = "RM"

	PositionLeftWing      Position = "LW"
	PositionRightWing     Position = "RW"
	PositionStriker       Position = "ST"
	PositionCenterForward Position = "CF"
)

// Category is the line a player is fielded in.
type Category string

const (
	CategoryGoalkeeper Category = "GK"
	CategoryDefender   Category = "DEF"
	CategoryMidfielder Category = "MID"
	CategoryForward    Category = "FWD"
)

var positionCategories = map[Position]Category{
	PositionGoalkeeper:    CategoryGoalkeeper,
	PositionCenterBack:    CategoryDefender,
	PositionLeftBack:      CategoryDefender,
	PositionRightBack:     CategoryDefender,
	PositionWingBack:      CategoryDefender,
	PositionDefensiveMid:  CategoryMidfielder,
	PositionCentralMid:    CategoryMidfielder,
	PositionAttackingMid:  CategoryMidfielder,
	PositionLeftMid:       CategoryMidfielder,
	PositionRightMid:      CategoryMidfielder,
	PositionLeftWing:      CategoryForward,
	PositionRightWing:     CategoryForward,
	PositionStriker:       CategoryForward,
	PositionCenterForward: CategoryForward,
}

// Category maps a position to its line. Unknown positions are treated as midfielders.
func (p Position) Category() Category {
	if c, ok := positionCategories[p]; ok {
		return c
	}
	return CategoryMidfielder
}

func (p Position) Valid() bool {
	_, ok := positionCategories[p]
	return ok
}

// Attributes are the six technical ratings used by the match engine.
type Attributes struct {
	Pace      int
	Shooting  int
	Passing   int
	Dribbling int
	Defending int
	Physical  int
}

// Player is a squad member of a club.
type Player struct {
	ID              string
	LeagueID        string
	TeamID          string
	Name            string
	Position        Position
	Rating          int
	Attributes      Attributes
	SuspensionGames int
	Injured         bool
	Ill             bool
}

// Eligible reports whether the player can be selected for the next match.
func (p Player) Eligible() bool {
	return p.SuspensionGames <= 0 && !p.Injured && !p.Ill
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.TeamID == "" {
		return fmt.Errorf("player team id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if !p.Position.Valid() {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.Rating < 1 || p.Rating > 99 {
		return fmt.Errorf("player rating must be between 1 and 99, got %d", p.Rating)
	}

	return nil
}

// Availability is the post-match status change of one player.
type Availability struct {
	PlayerID        string
	SuspensionGames int
	Injured         bool
	Ill             bool
}
