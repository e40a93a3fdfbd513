package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-manager/internal/domain/player"
)

// PlayerRepository keeps squads in insertion order per league.
type PlayerRepository struct {
	mu              sync.RWMutex
	playersByLeague map[string][]player.Player
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	byLeague := make(map[string][]player.Player)
	for _, p := range players {
		byLeague[p.LeagueID] = append(byLeague[p.LeagueID], p)
	}
	return &PlayerRepository{playersByLeague: byLeague}
}

func (r *PlayerRepository) ListByLeague(_ context.Context, leagueID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]player.Player(nil), r.playersByLeague[leagueID]...), nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, leagueID, teamID string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, 24)
	for _, p := range r.playersByLeague[leagueID] {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *PlayerRepository) GetByIDs(_ context.Context, leagueID string, playerIDs []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]struct{}, len(playerIDs))
	for _, id := range playerIDs {
		wanted[id] = struct{}{}
	}

	out := make([]player.Player, 0, len(playerIDs))
	for _, p := range r.playersByLeague[leagueID] {
		if _, ok := wanted[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// UpdateAvailability applies post-match status changes. Unknown ids are ignored.
func (r *PlayerRepository) UpdateAvailability(_ context.Context, leagueID string, updates []player.Availability) error {
	if len(updates) == 0 {
		return nil
	}

	byID := make(map[string]player.Availability, len(updates))
	for _, u := range updates {
		byID[u.PlayerID] = u
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	players := r.playersByLeague[leagueID]
	for i := range players {
		u, ok := byID[players[i].ID]
		if !ok {
			continue
		}
		players[i].SuspensionGames = u.SuspensionGames
		players[i].Injured = u.Injured
		players[i].Ill = u.Ill
	}
	return nil
}
