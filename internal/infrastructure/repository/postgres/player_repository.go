package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	qb "github.com/riskibarqy/football-manager/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) ListByLeague(ctx context.Context, leagueID string) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("team_public_id", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by league query: %w", err)
	}

	return r.selectPlayers(ctx, "select players by league", query, args)
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, leagueID, teamID string) ([]player.Player, error) {
	query, args, err := qb.Select("*").From("players").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by team query: %w", err)
	}

	return r.selectPlayers(ctx, "select players by team", query, args)
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, leagueID string, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}

	ids := make([]any, 0, len(playerIDs))
	for _, id := range playerIDs {
		ids = append(ids, id)
	}

	query, args, err := qb.Select("*").From("players").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.In("public_id", ids),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by ids query: %w", err)
	}

	return r.selectPlayers(ctx, "select players by ids", query, args)
}

func (r *PlayerRepository) UpdateAvailability(ctx context.Context, leagueID string, items []player.Availability) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx update player availability: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := updateAvailability(ctx, tx, leagueID, items); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update player availability tx: %w", err)
	}
	return nil
}

// updateAvailability writes availability rows inside the caller's transaction.
func updateAvailability(ctx context.Context, tx *sqlx.Tx, leagueID string, items []player.Availability) error {
	for _, item := range items {
		query, args, err := qb.Update("players").
			Set("suspension_games", item.SuspensionGames).
			Set("injured", item.Injured).
			Set("ill", item.Ill).
			SetExpr("updated_at", "NOW()").
			Where(
				qb.Eq("league_public_id", leagueID),
				qb.Eq("public_id", item.PlayerID),
				qb.IsNull("deleted_at"),
			).
			ToSQL()
		if err != nil {
			return fmt.Errorf("build update player availability query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("update player availability player=%s: %w", item.PlayerID, err)
		}
	}
	return nil
}

func (r *PlayerRepository) selectPlayers(ctx context.Context, op, query string, args []any) ([]player.Player, error) {
	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out, nil
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:       row.PublicID,
		LeagueID: row.LeagueID,
		TeamID:   row.TeamID,
		Name:     row.Name,
		Position: player.Position(row.Position),
		Rating:   row.Rating,
		Attributes: player.Attributes{
			Pace:      row.Pace,
			Shooting:  row.Shooting,
			Passing:   row.Passing,
			Dribbling: row.Dribbling,
			Defending: row.Defending,
			Physical:  row.Physical,
		},
		SuspensionGames: row.SuspensionGames,
		Injured:         row.Injured,
		Ill:             row.Ill,
	}
}
