package postgres

import "time"

type playerTableModel struct {
	ID              int64      `db:"id"`
	PublicID        string     `db:"public_id"`
	LeagueID        string     `db:"league_public_id"`
	TeamID          string     `db:"team_public_id"`
	Name            string     `db:"name"`
	Position        string     `db:"position"`
	Rating          int        `db:"rating"`
	Pace            int        `db:"pace"`
	Shooting        int        `db:"shooting"`
	Passing         int        `db:"passing"`
	Dribbling       int        `db:"dribbling"`
	Defending       int        `db:"defending"`
	Physical        int        `db:"physical"`
	SuspensionGames int        `db:"suspension_games"`
	Injured         bool       `db:"injured"`
	Ill             bool       `db:"ill"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
	DeletedAt       *time.Time `db:"deleted_at"`
}

type playerInsertModel struct {
	PublicID  string `db:"public_id"`
	LeagueID  string `db:"league_public_id"`
	TeamID    string `db:"team_public_id"`
	Name      string `db:"name"`
	Position  string `db:"position"`
	Rating    int    `db:"rating"`
	Pace      int    `db:"pace"`
	Shooting  int    `db:"shooting"`
	Passing   int    `db:"passing"`
	Dribbling int    `db:"dribbling"`
	Defending int    `db:"defending"`
	Physical  int    `db:"physical"`
}
