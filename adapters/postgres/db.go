package postgres

import (
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"lotogen/internal/config"
	"lotogen/internal/errors"
)

// Connect opens and verifies a PostgreSQL connection pool.
func Connect(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// EnsureSchema creates the tables the engine persists into. Safe to
// run on every startup.
func EnsureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS draws (
	contest     INTEGER PRIMARY KEY,
	drawn_at    TIMESTAMPTZ NOT NULL,
	numerals    INTEGER[] NOT NULL
);

CREATE TABLE IF NOT EXISTS games (
	id              TEXT PRIMARY KEY,
	session_id      TEXT NOT NULL,
	target_contest  INTEGER NOT NULL,
	numerals        INTEGER[] NOT NULL,
	strategy        TEXT NOT NULL,
	score           DOUBLE PRECISION NOT NULL,
	status          TEXT NOT NULL,
	hits            INTEGER NOT NULL DEFAULT 0,
	prize           DOUBLE PRECISION NOT NULL DEFAULT 0,
	created_at      TIMESTAMPTZ NOT NULL,
	settled_at      TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS idx_games_target ON games (target_contest, status);
CREATE INDEX IF NOT EXISTS idx_games_session ON games (session_id);

CREATE TABLE IF NOT EXISTS weights (
	id          INTEGER PRIMARY KEY DEFAULT 1 CHECK (id = 1),
	vector      JSONB NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS learner_state (
	id          INTEGER PRIMARY KEY DEFAULT 1 CHECK (id = 1),
	state       JSONB NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS anomalies (
	id           TEXT PRIMARY KEY,
	category     TEXT NOT NULL,
	contest      INTEGER,
	numerals     INTEGER[] NOT NULL,
	metadata     JSONB,
	probability  DOUBLE PRECISION NOT NULL,
	impact       DOUBLE PRECISION NOT NULL,
	precursor    BOOLEAN NOT NULL DEFAULT FALSE,
	detected_at  TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_anomalies_category ON anomalies (category, detected_at);
`
	if _, err := db.Exec(schema); err != nil {
		return errors.Wrap(err, "failed to ensure schema")
	}
	return nil
}
