// Package store persists the Pinyin to chord table in SQLite so chord
// lookups do not need to rerun the conversion.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/f3rmion/pmpy/internal/phonetic"
	"github.com/f3rmion/pmpy/internal/romanize"
	"github.com/samber/lo"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a syllable has no stored chord.
var ErrNotFound = errors.New("chord not found")

const schema = `
CREATE TABLE IF NOT EXISTS chords (
	pinyin TEXT PRIMARY KEY,
	pm     TEXT NOT NULL,
	token  TEXT NOT NULL,
	keys   TEXT NOT NULL,
	back   TEXT NOT NULL,
	exact  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS chords_token ON chords(token);
`

// Chord is one row of the chord table.
type Chord struct {
	Pinyin string         `json:"pinyin"`
	PM     string         `json:"pm"`    // Separator-joined PM spelling
	Token  string         `json:"token"` // Chord linearized in key order
	Keys   []phonetic.Key `json:"keys"`
	Back   string         `json:"back"`  // Token converted back to Pinyin
	Exact  bool           `json:"exact"` // Back equals Pinyin
}

// Build converts one syllable into a chord row. A PM spelling that does not
// resolve to keys is an error.
func Build(py string) (Chord, error) {
	pm := romanize.PinyinToPM(py)
	keys, err := phonetic.Resolve(pm)
	if err != nil {
		return Chord{}, fmt.Errorf("building chord for %q: %w", py, err)
	}
	token := phonetic.Token(keys)
	back := romanize.PMToPinyin(token)
	return Chord{
		Pinyin: py,
		PM:     pm,
		Token:  token,
		Keys:   keys,
		Back:   back,
		Exact:  back == py,
	}, nil
}

// Store is a chord table backed by SQLite.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Put inserts or replaces chords in one transaction.
func (s *Store) Put(ctx context.Context, chords ...Chord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO chords (pinyin, pm, token, keys, back, exact) VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range chords {
		if _, err := stmt.ExecContext(ctx, c.Pinyin, c.PM, c.Token, joinKeys(c.Keys), c.Back, c.Exact); err != nil {
			return fmt.Errorf("inserting %q: %w", c.Pinyin, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

// Get returns the chord of a Pinyin syllable.
func (s *Store) Get(ctx context.Context, py string) (Chord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT pinyin, pm, token, keys, back, exact FROM chords WHERE pinyin = ?`, py)
	c, err := scanChord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Chord{}, fmt.Errorf("%q: %w", py, ErrNotFound)
	}
	return c, err
}

// ByToken returns every syllable whose chord linearizes to token, ordered
// by Pinyin.
func (s *Store) ByToken(ctx context.Context, token string) ([]Chord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT pinyin, pm, token, keys, back, exact FROM chords WHERE token = ? ORDER BY pinyin`, token)
	if err != nil {
		return nil, fmt.Errorf("querying token %q: %w", token, err)
	}
	defer rows.Close()

	var out []Chord
	for rows.Next() {
		c, err := scanChord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	return out, nil
}

// Count returns the number of stored chords.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chords`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting chords: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanChord(row scanner) (Chord, error) {
	var (
		c    Chord
		keys string
	)
	if err := row.Scan(&c.Pinyin, &c.PM, &c.Token, &keys, &c.Back, &c.Exact); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Chord{}, err
		}
		return Chord{}, fmt.Errorf("scanning chord: %w", err)
	}
	c.Keys = splitKeys(keys)
	return c, nil
}

func joinKeys(keys []phonetic.Key) string {
	return strings.Join(lo.Map(keys, func(k phonetic.Key, _ int) string { return string(k) }), " ")
}

func splitKeys(s string) []phonetic.Key {
	return lo.Map(strings.Fields(s), func(f string, _ int) phonetic.Key { return phonetic.Key(f) })
}
