package postgres

import (
	"database/sql"
	"time"
)

type fixtureTableModel struct {
	ID           int64          `db:"id"`
	PublicID     string         `db:"public_id"`
	LeagueID     string         `db:"league_public_id"`
	Gameweek     int            `db:"gameweek"`
	HomeTeamID   string         `db:"home_team_public_id"`
	AwayTeamID   string         `db:"away_team_public_id"`
	HomeTeam     string         `db:"home_team"`
	AwayTeam     string         `db:"away_team"`
	KickoffAt    time.Time      `db:"kickoff_at"`
	Venue        string         `db:"venue"`
	Status       string         `db:"status"`
	Played       bool           `db:"played"`
	HomeScore    int            `db:"home_score"`
	AwayScore    int            `db:"away_score"`
	WinnerTeamID sql.NullString `db:"winner_team_public_id"`
	FinishedAt   sql.NullTime   `db:"finished_at"`
	Result       sql.NullString `db:"result"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
	DeletedAt    *time.Time     `db:"deleted_at"`
}

type fixtureInsertModel struct {
	PublicID   string    `db:"public_id"`
	LeagueID   string    `db:"league_public_id"`
	Gameweek   int       `db:"gameweek"`
	HomeTeamID string    `db:"home_team_public_id"`
	AwayTeamID string    `db:"away_team_public_id"`
	HomeTeam   string    `db:"home_team"`
	AwayTeam   string    `db:"away_team"`
	KickoffAt  time.Time `db:"kickoff_at"`
	Venue      string    `db:"venue"`
	Status     string    `db:"status"`
}
