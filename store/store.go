// SPDX-License-Identifier: MIT

// Package store persists puzzle sessions in SQLite.
//
// A session is a puzzle.Snapshot (pieces with their attitudes, the recorded
// move history and the scrambled flag) plus the name of the preset it was
// generated from. Pieces and moves are stored as JSON columns; permutations
// encode as plain index arrays. Session IDs are random UUIDs.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/hypercell/perm"
	"github.com/katalvlaran/hypercell/piece"
	"github.com/katalvlaran/hypercell/puzzle"
	"github.com/katalvlaran/hypercell/twist"
)

// ErrSessionNotFound is returned when no session has the requested ID.
var ErrSessionNotFound = errors.New("store: session not found")

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id   TEXT PRIMARY KEY,
	preset       TEXT NOT NULL,
	degree       INTEGER NOT NULL,
	scrambled    INTEGER NOT NULL,
	pieces_json  TEXT NOT NULL,
	history_json TEXT NOT NULL,
	created_at   TEXT NOT NULL,
	updated_at   TEXT NOT NULL
);
`

// Record is one stored session.
type Record struct {
	SessionID string
	Preset    string
	Snapshot  puzzle.Snapshot
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary describes a session without decoding its pieces.
type Summary struct {
	SessionID string
	Preset    string
	Scrambled bool
	Moves     int
	UpdatedAt time.Time
}

// pieceRow is the JSON shape of one piece.
type pieceRow struct {
	Signature []int            `json:"sig"`
	Attitude  perm.Permutation `json:"att"`
}

// Store manages sessions in SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the database at path and runs migrations.
// ":memory:" gives a private in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	// one connection keeps ":memory:" databases shared across calls
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: migrate: %w", err)
	}

	return &Store{db: db, now: func() time.Time { return time.Now().UTC() }}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create stores snap as a new session and returns its record.
func (s *Store) Create(ctx context.Context, preset string, snap puzzle.Snapshot) (Record, error) {
	piecesJSON, historyJSON, err := encodeSnapshot(snap)
	if err != nil {
		return Record{}, err
	}
	now := s.now()
	rec := Record{
		SessionID: uuid.New().String(),
		Preset:    preset,
		Snapshot:  snap,
		CreatedAt: now,
		UpdatedAt: now,
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (session_id, preset, degree, scrambled, pieces_json, history_json, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.SessionID, preset, snap.Degree, boolToInt(snap.Scrambled), piecesJSON, historyJSON,
		now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Record{}, fmt.Errorf("store: insert session: %w", err)
	}

	return rec, nil
}

// Update overwrites the snapshot of an existing session.
func (s *Store) Update(ctx context.Context, id string, snap puzzle.Snapshot) error {
	piecesJSON, historyJSON, err := encodeSnapshot(snap)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET degree = ?, scrambled = ?, pieces_json = ?, history_json = ?, updated_at = ?
		 WHERE session_id = ?`,
		snap.Degree, boolToInt(snap.Scrambled), piecesJSON, historyJSON, s.now().Format(time.RFC3339Nano), id,
	)
	if err != nil {
		return fmt.Errorf("store: update session %s: %w", id, err)
	}

	return requireOneRow(res, id)
}

// Load reads a session back.
func (s *Store) Load(ctx context.Context, id string) (Record, error) {
	var (
		rec         Record
		scrambled   int
		piecesJSON  string
		historyJSON string
		createdStr  string
		updatedStr  string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT session_id, preset, degree, scrambled, pieces_json, history_json, created_at, updated_at
		 FROM sessions WHERE session_id = ?`, id,
	).Scan(&rec.SessionID, &rec.Preset, &rec.Snapshot.Degree, &scrambled, &piecesJSON, &historyJSON, &createdStr, &updatedStr)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	if err != nil {
		return Record{}, fmt.Errorf("store: get session %s: %w", id, err)
	}
	rec.Snapshot.Scrambled = scrambled != 0
	if rec.Snapshot.Pieces, err = decodePieces(piecesJSON); err != nil {
		return Record{}, fmt.Errorf("store: session %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(historyJSON), &rec.Snapshot.History); err != nil {
		return Record{}, fmt.Errorf("store: session %s: decode history: %w", id, err)
	}
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	rec.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedStr)

	return rec, nil
}

// List returns up to limit sessions, most recently updated first.
func (s *Store) List(ctx context.Context, limit int) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, preset, scrambled, history_json, updated_at
		 FROM sessions ORDER BY updated_at DESC, session_id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: list sessions: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var (
			sum         Summary
			scrambled   int
			historyJSON string
			updatedStr  string
		)
		if err := rows.Scan(&sum.SessionID, &sum.Preset, &scrambled, &historyJSON, &updatedStr); err != nil {
			return nil, fmt.Errorf("store: scan session: %w", err)
		}
		var moves []json.RawMessage
		if err := json.Unmarshal([]byte(historyJSON), &moves); err != nil {
			return nil, fmt.Errorf("store: session %s: decode history: %w", sum.SessionID, err)
		}
		sum.Scrambled = scrambled != 0
		sum.Moves = len(moves)
		sum.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedStr)
		out = append(out, sum)
	}

	return out, rows.Err()
}

// Delete removes a session.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE session_id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete session %s: %w", id, err)
	}

	return requireOneRow(res, id)
}

// #region helpers

func encodeSnapshot(snap puzzle.Snapshot) (string, string, error) {
	rows := make([]pieceRow, len(snap.Pieces))
	for i, p := range snap.Pieces {
		sig := p.Signature()
		row := pieceRow{Signature: make([]int, len(sig)), Attitude: p.Attitude()}
		for j, v := range sig {
			row.Signature[j] = int(v)
		}
		rows[i] = row
	}
	pj, err := json.Marshal(rows)
	if err != nil {
		return "", "", fmt.Errorf("store: encode pieces: %w", err)
	}
	history := snap.History
	if history == nil {
		history = []twist.Twist{}
	}
	hj, err := json.Marshal(history)
	if err != nil {
		return "", "", fmt.Errorf("store: encode history: %w", err)
	}

	return string(pj), string(hj), nil
}

func decodePieces(data string) ([]piece.Piece, error) {
	var rows []pieceRow
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, fmt.Errorf("decode pieces: %w", err)
	}
	out := make([]piece.Piece, len(rows))
	for i, r := range rows {
		sig := make([]uint8, len(r.Signature))
		for j, v := range r.Signature {
			if v < 0 || v > 255 {
				return nil, fmt.Errorf("piece %d: signature value %d out of range", i, v)
			}
			sig[j] = uint8(v)
		}
		p, err := piece.FromParts(sig, r.Attitude)
		if err != nil {
			return nil, fmt.Errorf("piece %d: %w", i, err)
		}
		out[i] = p
	}

	return out, nil
}

func requireOneRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}

	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}

// #endregion helpers
