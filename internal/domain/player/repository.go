package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	ListByLeague(ctx context.Context, leagueID string) ([]Player, error)
	ListByTeam(ctx context.Context, leagueID, teamID string) ([]Player, error)
	GetByIDs(ctx context.Context, leagueID string, playerIDs []string) ([]Player, error)
	UpdateAvailability(ctx context.Context, leagueID string, items []Availability) error
}
