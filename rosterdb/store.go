// Package rosterdb persists cleaned championship roster rows and replays
// them as builder records.
//
// The store is a single SQLite table of (season, team, player) rows, written
// once by ImportCSV (or Insert) and read back in insertion order by Records,
// so the graph a caller builds from the replayed records is deterministic.
// Season/team normalization happens upstream; this package stores what it is
// given.
//
// Errors:
//
//	ErrBadHeader - the CSV header is not Season,Team,Player.
package rosterdb

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/champlab/champnet/builder"
)

// ErrBadHeader is returned when an imported CSV does not start with the
// expected Season,Team,Player header row.
var ErrBadHeader = errors.New("rosterdb: unexpected CSV header")

// schema contains the DDL executed on every open. IF NOT EXISTS makes it
// safe to run against an existing database.
const schema = `
CREATE TABLE IF NOT EXISTS rosters (
    id     INTEGER PRIMARY KEY AUTOINCREMENT,
    season TEXT NOT NULL,
    team   TEXT NOT NULL,
    player TEXT NOT NULL,
    UNIQUE(season, team, player)
);`

// groupSep joins season and team into the opaque group key handed to the
// builder. "|" cannot occur in either column of cleaned input.
const groupSep = "|"

// Row is one stored roster membership.
type Row struct {
	Season string
	Team   string
	Player string
}

// Store provides access to a roster database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the SQLite database at path and ensures
// the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("rosterdb: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("rosterdb: ensure schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Insert stores one roster row. Rows already present (same season, team,
// player) are ignored; the first write fixes the replay position.
func (s *Store) Insert(ctx context.Context, r Row) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO rosters (season, team, player) VALUES (?, ?, ?)",
		r.Season, r.Team, r.Player)
	if err != nil {
		return fmt.Errorf("rosterdb: insert: %w", err)
	}

	return nil
}

// ImportCSV ingests a cleaned roster CSV (header Season,Team,Player) into
// the store and reports how many new rows were added. Duplicate rows, in the
// file or against existing data, are skipped silently.
func (s *Store) ImportCSV(ctx context.Context, path string) (int, error) {
	rows, err := ReadCSV(path)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("rosterdb: begin import: %w", err)
	}
	defer tx.Rollback()

	added := 0
	for _, r := range rows {
		res, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO rosters (season, team, player) VALUES (?, ?, ?)",
			r.Season, r.Team, r.Player)
		if err != nil {
			return 0, fmt.Errorf("rosterdb: import %s/%s/%s: %w", r.Season, r.Team, r.Player, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("rosterdb: import: %w", err)
		}
		added += int(n)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("rosterdb: commit import: %w", err)
	}

	return added, nil
}

// Records replays all stored rows, in insertion order, as builder records
// with GroupID = season + "|" + team.
func (s *Store) Records(ctx context.Context) ([]builder.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT season, team, player FROM rosters ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("rosterdb: query records: %w", err)
	}
	defer rows.Close()

	var out []builder.Record
	for rows.Next() {
		var r Row
		if err := rows.Scan(&r.Season, &r.Team, &r.Player); err != nil {
			return nil, fmt.Errorf("rosterdb: scan record: %w", err)
		}
		out = append(out, builder.Record{
			GroupID: r.Season + groupSep + r.Team,
			Member:  r.Player,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rosterdb: iterate records: %w", err)
	}

	return out, nil
}

// Count returns the number of stored roster rows.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM rosters").Scan(&n); err != nil {
		return 0, fmt.Errorf("rosterdb: count: %w", err)
	}

	return n, nil
}

// ReadCSV parses a cleaned roster CSV into rows without touching any store.
// The first record must be the Season,Team,Player header (case-insensitive);
// every following record must carry exactly three fields.
func ReadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rosterdb: open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 3

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("rosterdb: read csv header: %w", err)
	}
	if !headerMatches(header) {
		return nil, fmt.Errorf("rosterdb: header %v: %w", header, ErrBadHeader)
	}

	var out []Row
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("rosterdb: read csv: %w", err)
		}
		out = append(out, Row{
			Season: strings.TrimSpace(rec[0]),
			Team:   strings.TrimSpace(rec[1]),
			Player: strings.TrimSpace(rec[2]),
		})
	}

	return out, nil
}

// RecordsFromRows converts parsed CSV rows straight into builder records,
// for callers that query a one-off file without a backing store.
func RecordsFromRows(rows []Row) []builder.Record {
	out := make([]builder.Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, builder.Record{
			GroupID: r.Season + groupSep + r.Team,
			Member:  r.Player,
		})
	}

	return out
}

func headerMatches(header []string) bool {
	if len(header) != 3 {
		return false
	}
	want := []string{"season", "team", "player"}
	for i, h := range header {
		if !strings.EqualFold(strings.TrimSpace(h), want[i]) {
			return false
		}
	}

	return true
}
