package postgres

import (
	"context"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/football-manager/internal/domain/fixture"
	"github.com/riskibarqy/football-manager/internal/domain/player"
	qb "github.com/riskibarqy/football-manager/internal/platform/querybuilder"
)

var errFixtureNotFound = crerr.New("fixture not found")

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) ListByLeague(ctx context.Context, leagueID string) ([]fixture.Fixture, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("gameweek", "kickoff_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures by league query: %w", err)
	}

	return r.selectFixtures(ctx, "select fixtures by league", query, args)
}

func (r *FixtureRepository) ListByGameweek(ctx context.Context, leagueID string, gameweek int) ([]fixture.Fixture, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("gameweek", gameweek),
			qb.IsNull("deleted_at"),
		).
		OrderBy("kickoff_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fixtures by gameweek query: %w", err)
	}

	return r.selectFixtures(ctx, "select fixtures by gameweek", query, args)
}

func (r *FixtureRepository) GetByID(ctx context.Context, leagueID, fixtureID string) (fixture.Fixture, bool, error) {
	query, args, err := qb.Select("*").From("fixtures").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.Eq("public_id", fixtureID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fixture.Fixture{}, false, fmt.Errorf("build get fixture by id query: %w", err)
	}

	var row fixtureTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Fixture{}, false, nil
		}
		return fixture.Fixture{}, false, fmt.Errorf("get fixture by id: %w", err)
	}

	item, err := fixtureFromRow(row)
	if err != nil {
		return fixture.Fixture{}, false, err
	}
	return item, true, nil
}

// ReplaceByLeague soft-deletes the current schedule and inserts the new one in a single transaction.
func (r *FixtureRepository) ReplaceByLeague(ctx context.Context, leagueID string, fixtures []fixture.Fixture) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace fixtures: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.Update("fixtures").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build clear fixtures query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("clear fixtures: %w", err)
	}

	if len(fixtures) > 0 {
		models := make([]fixtureInsertModel, 0, len(fixtures))
		for _, item := range fixtures {
			models = append(models, fixtureInsertModel{
				PublicID:   item.ID,
				LeagueID:   leagueID,
				Gameweek:   item.Gameweek,
				HomeTeamID: item.HomeTeamID,
				AwayTeamID: item.AwayTeamID,
				HomeTeam:   item.HomeTeam,
				AwayTeam:   item.AwayTeam,
				KickoffAt:  item.KickoffAt,
				Venue:      item.Venue,
				Status:     fixture.NormalizeStatus(item.Status),
			})
		}

		query, args, err := qb.InsertModels("fixtures", models, "")
		if err != nil {
			return fmt.Errorf("build insert fixtures query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert fixtures league=%s: %w", leagueID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace fixtures tx: %w", err)
	}
	return nil
}

// SaveResult updates the fixture only while it is unplayed and writes the
// availability changes in the same transaction.
func (r *FixtureRepository) SaveResult(ctx context.Context, item fixture.Fixture, availability []player.Availability) error {
	query, args, err := saveResultQuery(item)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx save fixture result: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("save fixture result: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read fixture result rows affected: %w", err)
	}
	if affected == 0 {
		return r.unsavedResultError(ctx, tx, item)
	}

	if err := updateAvailability(ctx, tx, item.LeagueID, availability); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save fixture result tx: %w", err)
	}
	return nil
}

func saveResultQuery(item fixture.Fixture) (string, []any, error) {
	result, err := encodeResult(item)
	if err != nil {
		return "", nil, err
	}

	query, args, err := qb.Update("fixtures").
		Set("status", fixture.NormalizeStatus(item.Status)).
		Set("played", item.Played).
		Set("home_score", item.HomeScore).
		Set("away_score", item.AwayScore).
		Set("winner_team_public_id", nullString(item.WinnerTeamID)).
		Set("finished_at", timePtrToNullTime(item.FinishedAt)).
		Set("result", result).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("league_public_id", item.LeagueID),
			qb.Eq("public_id", item.ID),
			qb.Eq("played", false),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return "", nil, fmt.Errorf("build save fixture result query: %w", err)
	}
	return query, args, nil
}

// unsavedResultError tells a missing fixture apart from one that was played first.
func (r *FixtureRepository) unsavedResultError(ctx context.Context, tx *sqlx.Tx, item fixture.Fixture) error {
	query, args, err := qb.Select("played").From("fixtures").
		Where(
			qb.Eq("league_public_id", item.LeagueID),
			qb.Eq("public_id", item.ID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build check fixture played query: %w", err)
	}

	var played bool
	if err := tx.GetContext(ctx, &played, query, args...); err != nil {
		if isNotFound(err) {
			return crerr.Wrapf(errFixtureNotFound, "league=%s fixture=%s", item.LeagueID, item.ID)
		}
		return fmt.Errorf("check fixture played: %w", err)
	}
	return crerr.Wrapf(fixture.ErrAlreadyPlayed, "league=%s fixture=%s", item.LeagueID, item.ID)
}

func (r *FixtureRepository) selectFixtures(ctx context.Context, op, query string, args []any) ([]fixture.Fixture, error) {
	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		item, err := fixtureFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func fixtureFromRow(row fixtureTableModel) (fixture.Fixture, error) {
	result, err := decodeResult(row.Result)
	if err != nil {
		return fixture.Fixture{}, crerr.Wrapf(err, "fixture %s", row.PublicID)
	}

	return fixture.Fixture{
		ID:           row.PublicID,
		LeagueID:     row.LeagueID,
		Gameweek:     row.Gameweek,
		HomeTeamID:   row.HomeTeamID,
		AwayTeamID:   row.AwayTeamID,
		HomeTeam:     row.HomeTeam,
		AwayTeam:     row.AwayTeam,
		KickoffAt:    row.KickoffAt,
		Venue:        row.Venue,
		Status:       fixture.NormalizeStatus(row.Status),
		Played:       row.Played,
		HomeScore:    row.HomeScore,
		AwayScore:    row.AwayScore,
		WinnerTeamID: row.WinnerTeamID.String,
		FinishedAt:   nullTimeToTimePtr(row.FinishedAt),
		Result:       result,
	}, nil
}
