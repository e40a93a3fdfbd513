package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/football-manager/internal/domain/team"
)

type TeamRepository struct {
	mu            sync.RWMutex
	teamsByLeague map[string][]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	byLeague := make(map[string][]team.Team)
	for _, t := range teams {
		byLeague[t.LeagueID] = append(byLeague[t.LeagueID], t)
	}
	return &TeamRepository{teamsByLeague: byLeague}
}

func (r *TeamRepository) ListByLeague(_ context.Context, leagueID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]team.Team(nil), r.teamsByLeague[leagueID]...), nil
}

func (r *TeamRepository) GetByID(_ context.Context, leagueID, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, t := range r.teamsByLeague[leagueID] {
		if t.ID == teamID {
			return t, true, nil
		}
	}
	return team.Team{}, false, nil
}
