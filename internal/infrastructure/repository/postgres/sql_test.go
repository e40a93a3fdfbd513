package postgres

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/football-manager/internal/domain/fixture"
)

func TestEncodeResult_UnplayedIsNull(t *testing.T) {
	t.Parallel()

	got, err := encodeResult(fixture.Fixture{ID: "f1"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got.Valid {
		t.Fatalf("expected NULL result for unplayed fixture, got %q", got.String)
	}
}

func TestFixtureFromRow_DecodesStoredResult(t *testing.T) {
	t.Parallel()

	finished := time.Date(2026, 9, 1, 20, 0, 0, 0, time.UTC)
	played := fixture.Fixture{
		ID:     "f1",
		Played: true,
		Result: fixture.Result{
			Scorers: []fixture.Scorer{{PlayerID: "p9", Name: "Striker", Minute: 41, TeamID: "home"}},
			Referee: "Referee",
			Seed:    42,
		},
	}
	encoded, err := encodeResult(played)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	item, err := fixtureFromRow(fixtureTableModel{
		PublicID:     "f1",
		LeagueID:     "l1",
		Status:       "finished",
		Played:       true,
		HomeScore:    1,
		WinnerTeamID: sql.NullString{String: "home", Valid: true},
		FinishedAt:   sql.NullTime{Time: finished, Valid: true},
		Result:       encoded,
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if item.Status != fixture.StatusFinished {
		t.Fatalf("expected normalized status, got %q", item.Status)
	}
	if item.FinishedAt == nil || !item.FinishedAt.Equal(finished) {
		t.Fatalf("unexpected finished at: %v", item.FinishedAt)
	}
	if item.Result.Seed != 42 || len(item.Result.Scorers) != 1 || item.Result.Scorers[0].Minute != 41 {
		t.Fatalf("unexpected decoded result: %+v", item.Result)
	}
}

func TestFixtureFromRow_RejectsCorruptResult(t *testing.T) {
	t.Parallel()

	_, err := fixtureFromRow(fixtureTableModel{
		PublicID: "f1",
		Result:   sql.NullString{String: "{not json", Valid: true},
	})
	if err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestNullString(t *testing.T) {
	t.Parallel()

	if nullString("").Valid {
		t.Fatalf("expected empty string to map to NULL")
	}
	if v := nullString("x"); !v.Valid || v.String != "x" {
		t.Fatalf("unexpected value: %+v", v)
	}
}

func TestSaveResultQuery_OnlyUpdatesUnplayedFixture(t *testing.T) {
	t.Parallel()

	query, args, err := saveResultQuery(fixture.Fixture{
		ID:        "f1",
		LeagueID:  "l1",
		Status:    fixture.StatusFinished,
		Played:    true,
		HomeScore: 2,
	})
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	wantWhere := " WHERE league_public_id = $8 AND public_id = $9 AND played = $10 AND deleted_at IS NULL"
	if !strings.HasSuffix(query, wantWhere) {
		t.Fatalf("unexpected where clause:\nwant suffix: %s\ngot: %s", wantWhere, query)
	}
	if len(args) != 10 || args[7] != "l1" || args[8] != "f1" || args[9] != false {
		t.Fatalf("unexpected args: %+v", args)
	}
}
