package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// Store is the SQLite-backed ProfileSink. Connections are opened per
// operation; the schema is migrated on every open so older data
// directories keep working.
type Store struct {
	Dir string
}

func (s Store) dbPath() string {
	return filepath.Join(s.Dir, "twinforge.sqlite")
}

func (s Store) open(ctx context.Context) (*sql.DB, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.dbPath())
	if err != nil {
		return nil, err
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS profiles (
  id           TEXT PRIMARY KEY,
  created_at   TEXT NOT NULL,
  accepted_at  TEXT,
  accepted     INTEGER NOT NULL DEFAULT 0,
  name         TEXT NOT NULL DEFAULT '',
  email        TEXT NOT NULL DEFAULT '',
  country      TEXT NOT NULL DEFAULT '',
  directness   INTEGER NOT NULL DEFAULT 0,
  warmth       INTEGER NOT NULL DEFAULT 0,
  challenge    INTEGER NOT NULL DEFAULT 0,
  closeness    INTEGER NOT NULL DEFAULT 0,
  answers_json TEXT NOT NULL DEFAULT '{}'
)`)
	return err
}

// Begin inserts a new profile row carrying the contact payload and
// returns its id.
func (s Store) Begin(ctx context.Context, c Contact) (string, error) {
	db, err := s.open(ctx)
	if err != nil {
		return "", err
	}
	defer db.Close()

	id := uuid.NewString()
	_, err = db.ExecContext(ctx,
		`INSERT INTO profiles(id, created_at, name, email, country) VALUES(?, ?, ?, ?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339), c.Name, c.Email, c.Country)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Complete records the accepted tone profile and answers on an existing
// row.
func (s Store) Complete(ctx context.Context, id string, res Result) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	blob, err := marshalAnswers(res.Answers)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	r, err := tx.ExecContext(ctx, `
UPDATE profiles
SET accepted = 1, accepted_at = ?, directness = ?, warmth = ?, challenge = ?, closeness = ?, answers_json = ?
WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339),
		res.Tone.Directness, res.Tone.Warmth, res.Tone.Challenge,
		res.Closeness, blob, id)
	if err != nil {
		return err
	}
	n, err := r.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("profile %s not found", id)
	}
	return tx.Commit()
}

// List returns every stored profile, newest first.
func (s Store) List(ctx context.Context) ([]Profile, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `
SELECT id, created_at, COALESCE(accepted_at, ''), accepted, name, email, country,
       directness, warmth, challenge, closeness, answers_json
FROM profiles ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// ErrNotFound is returned by Get for an unknown profile id.
var ErrNotFound = errors.New("profile not found")

// Get returns one profile by id.
func (s Store) Get(ctx context.Context, id string) (Profile, error) {
	db, err := s.open(ctx)
	if err != nil {
		return Profile{}, err
	}
	defer db.Close()

	row := db.QueryRowContext(ctx, `
SELECT id, created_at, COALESCE(accepted_at, ''), accepted, name, email, country,
       directness, warmth, challenge, closeness, answers_json
FROM profiles WHERE id = ?`, id)
	p, err := scanProfile(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, ErrNotFound
	}
	return p, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(r rowScanner) (Profile, error) {
	var p Profile
	var created, accepted, blob string
	var acceptedFlag int
	err := r.Scan(&p.ID, &created, &accepted, &acceptedFlag,
		&p.Contact.Name, &p.Contact.Email, &p.Contact.Country,
		&p.Tone.Directness, &p.Tone.Warmth, &p.Tone.Challenge,
		&p.Closeness, &blob)
	if err != nil {
		return Profile{}, err
	}
	p.Accepted = acceptedFlag != 0
	if t, err := time.Parse(time.RFC3339, created); err == nil {
		p.CreatedAt = t
	}
	if accepted != "" {
		if t, err := time.Parse(time.RFC3339, accepted); err == nil {
			p.AcceptedAt = t
		}
	}
	p.Answers, err = unmarshalAnswers(blob)
	if err != nil {
		return Profile{}, err
	}
	return p, nil
}
