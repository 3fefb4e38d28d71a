// Package history records finished runs in a local SQLite database so the end
// screen can show a personal best.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
create table if not exists runs
  (
	  id integer not null primary key,
	  song text not null,
	  part text not null,
	  local_score integer not null,
	  server_score integer,
	  hits integer not null,
	  misses integer not null,
	  submitted integer not null,
	  created_at integer not null
  );
create index if not exists runs_song_part on runs(song, part);
`

// Entry is one finished run.
type Entry struct {
	Song        string
	Part        string
	LocalScore  int
	ServerScore *int // nil when the service did not confirm a score
	Hits        int
	Misses      int
	CreatedAt   time.Time
}

// Score is the score the player saw: the server's when confirmed.
func (e Entry) Score() int {
	if e.ServerScore != nil {
		return *e.ServerScore
	}
	return e.LocalScore
}

type DB struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path. Use ":memory:" for a
// throwaway database.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open history %s: %w", path, err)
	}
	// One connection keeps :memory: databases shared and writes serialized.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &DB{db: db}, nil
}

func (h *DB) Close() error {
	return h.db.Close()
}

// Record stores a finished run.
func (h *DB) Record(ctx context.Context, e Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	var server sql.NullInt64
	if e.ServerScore != nil {
		server = sql.NullInt64{Int64: int64(*e.ServerScore), Valid: true}
	}
	_, err := h.db.ExecContext(ctx,
		"insert into runs(song, part, local_score, server_score, hits, misses, submitted, created_at) values(?, ?, ?, ?, ?, ?, ?, ?)",
		e.Song, e.Part, e.LocalScore, server, e.Hits, e.Misses, server.Valid, e.CreatedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	return nil
}

// Best returns the highest-scoring run for a song part, by the score the
// player saw. ok is false when the part has never been played.
func (h *DB) Best(ctx context.Context, song, part string) (best Entry, ok bool, err error) {
	row := h.db.QueryRowContext(ctx, `
		select local_score, server_score, hits, misses, created_at
		from runs
		where song = ? and part = ?
		order by coalesce(server_score, local_score) desc, created_at asc
		limit 1`, song, part)

	e, err := scanEntry(row, song, part)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("best run: %w", err)
	}
	return e, true, nil
}

// Recent returns up to limit runs of a song part, newest first.
func (h *DB) Recent(ctx context.Context, song, part string, limit int) ([]Entry, error) {
	rows, err := h.db.QueryContext(ctx, `
		select local_score, server_score, hits, misses, created_at
		from runs
		where song = ? and part = ?
		order by created_at desc, id desc
		limit ?`, song, part, limit)
	if err != nil {
		return nil, fmt.Errorf("recent runs: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		e, err := scanEntry(rows, song, part)
		if err != nil {
			return nil, fmt.Errorf("recent runs: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner, song, part string) (Entry, error) {
	var (
		e       = Entry{Song: song, Part: part}
		server  sql.NullInt64
		created int64
	)
	if err := s.Scan(&e.LocalScore, &server, &e.Hits, &e.Misses, &created); err != nil {
		return Entry{}, err
	}
	if server.Valid {
		v := int(server.Int64)
		e.ServerScore = &v
	}
	e.CreatedAt = time.UnixMilli(created)
	return e, nil
}
