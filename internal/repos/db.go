package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed the country list if DB is empty (idempotent; safe to run every start)
	if err := seedCountries(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Users
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));

-- Sessions
CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  email TEXT NULL,                   -- NULL means anonymous
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_email ON sessions(email);

-- Catches
CREATE TABLE IF NOT EXISTS catches(
  id TEXT PRIMARY KEY,
  date TEXT NOT NULL,
  country TEXT NOT NULL,
  city TEXT NOT NULL,
  created_by TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_catches_created_by ON catches(created_by);

-- Countries (reference data for the home page and catch forms)
CREATE TABLE IF NOT EXISTS countries(
  code TEXT PRIMARY KEY,
  name TEXT NOT NULL
);
`
	_, err := db.Exec(schema)
	return err
}

func seedCountries(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM countries`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting country reference data")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO countries(code,name) VALUES
	  ('DE','Germany'),
	  ('ES','Spain'),
	  ('FR','France'),
	  ('IE','Ireland'),
	  ('NL','Netherlands'),
	  ('PL','Poland'),
	  ('UK','United Kingdom'),
	  ('US','United States')`)

	return tx.Commit()
}
