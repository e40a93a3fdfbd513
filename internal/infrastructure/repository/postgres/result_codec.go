package postgres

import (
	"database/sql"
	"strings"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/football-manager/internal/domain/fixture"
)

// encodeResult stores an unplayed fixture's empty result as NULL.
func encodeResult(item fixture.Fixture) (sql.NullString, error) {
	if !item.Played {
		return sql.NullString{}, nil
	}
	encoded, err := sonic.Marshal(item.Result)
	if err != nil {
		return sql.NullString{}, crerr.Wrapf(err, "encode result of fixture %s", item.ID)
	}
	return sql.NullString{String: string(encoded), Valid: true}, nil
}

func decodeResult(raw sql.NullString) (fixture.Result, error) {
	if !raw.Valid || strings.TrimSpace(raw.String) == "" {
		return fixture.Result{}, nil
	}
	var out fixture.Result
	if err := sonic.Unmarshal([]byte(raw.String), &out); err != nil {
		return fixture.Result{}, crerr.Wrap(err, "decode fixture result")
	}
	return out, nil
}
