package fixture

import (
	"context"
	"errors"

	"github.com/riskibarqy/football-manager/internal/domain/player"
)

// ErrAlreadyPlayed is returned by SaveResult when the stored fixture already has a result.
var ErrAlreadyPlayed = errors.New("fixture already played")

// Repository exposes fixture persistence operations.
type Repository interface {
	ListByLeague(ctx context.Context, leagueID string) ([]Fixture, error)
	ListByGameweek(ctx context.Context, leagueID string, gameweek int) ([]Fixture, error)
	GetByID(ctx context.Context, leagueID, fixtureID string) (Fixture, bool, error)
	ReplaceByLeague(ctx context.Context, leagueID string, fixtures []Fixture) error
	// SaveResult stores a played fixture and the availability changes it
	// causes as one unit. Nothing is written when the fixture is already played.
	SaveResult(ctx context.Context, item Fixture, availability []player.Availability) error
}
