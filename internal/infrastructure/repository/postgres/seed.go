package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-manager/internal/infrastructure/repository/memory"
	qb "github.com/riskibarqy/football-manager/internal/platform/querybuilder"
)

// BootstrapSeed loads the generated leagues, clubs and squads into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM leagues WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count leagues for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	leagues := make([]leagueInsertModel, 0, 2)
	for _, l := range memory.SeedLeagues() {
		leagues = append(leagues, leagueInsertModel{
			PublicID:    l.ID,
			Name:        l.Name,
			CountryCode: l.CountryCode,
			Season:      l.Season,
			IsDefault:   l.IsDefault,
		})
	}

	teams := make([]teamInsertModel, 0, 16)
	for _, t := range memory.SeedTeams() {
		teams = append(teams, teamInsertModel{
			PublicID:       t.ID,
			LeagueID:       t.LeagueID,
			Name:           t.Name,
			Short:          t.Short,
			Formation:      t.Formation,
			BaselineRating: t.BaselineRating,
		})
	}

	players := make([]playerInsertModel, 0, 300)
	for _, p := range memory.SeedPlayers() {
		players = append(players, playerInsertModel{
			PublicID:  p.ID,
			LeagueID:  p.LeagueID,
			TeamID:    p.TeamID,
			Name:      p.Name,
			Position:  string(p.Position),
			Rating:    p.Rating,
			Pace:      p.Attributes.Pace,
			Shooting:  p.Attributes.Shooting,
			Passing:   p.Attributes.Passing,
			Dribbling: p.Attributes.Dribbling,
			Defending: p.Attributes.Defending,
			Physical:  p.Attributes.Physical,
		})
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	steps := []struct {
		table string
		build func() (string, []any, error)
	}{
		{"leagues", func() (string, []any, error) { return qb.InsertModels("leagues", leagues, "ON CONFLICT DO NOTHING") }},
		{"teams", func() (string, []any, error) { return qb.InsertModels("teams", teams, "ON CONFLICT DO NOTHING") }},
		{"players", func() (string, []any, error) { return qb.InsertModels("players", players, "ON CONFLICT DO NOTHING") }},
	}
	for _, step := range steps {
		query, args, err := step.build()
		if err != nil {
			return fmt.Errorf("build seed %s query: %w", step.table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("seed %s: %w", step.table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}
	return nil
}
