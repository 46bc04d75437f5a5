// Package storage provides SQLite-based persistence for round history and
// the autosaved round in progress.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RoundEntry represents one completed round.
type RoundEntry struct {
	ID        int64
	Strokes   []int // per-hole stroke counts
	Total     int
	Par       int
	CreatedAt time.Time
}

// ToPar returns the round's score relative to par.
func (r RoundEntry) ToPar() int {
	return r.Total - r.Par
}

// Autosave is the round in progress, persisted after every stroke.
type Autosave struct {
	HoleIndex int
	Strokes   []int
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			strokes TEXT NOT NULL,
			total INTEGER NOT NULL,
			par INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_total ON rounds(total);
		CREATE INDEX IF NOT EXISTS idx_rounds_created ON rounds(created_at DESC);

		CREATE TABLE IF NOT EXISTS autosave (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			hole_index INTEGER NOT NULL,
			strokes TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// encodeStrokes packs per-hole counts into the stored text form.
func encodeStrokes(strokes []int) string {
	parts := make([]string, len(strokes))
	for i, n := range strokes {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

// decodeStrokes unpacks the stored text form.
func decodeStrokes(text string) ([]int, error) {
	if text == "" {
		return nil, nil
	}
	parts := strings.Split(text, ",")
	strokes := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("storage: bad strokes field %q: %w", text, err)
		}
		strokes[i] = n
	}
	return strokes, nil
}

// SaveRound records a completed round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(strokes []int, par int) (int64, error) {
	total := 0
	for _, n := range strokes {
		total += n
	}
	result, err := s.db.Exec(
		"INSERT INTO rounds (strokes, total, par) VALUES (?, ?, ?)",
		encodeStrokes(strokes), total, par,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// scanRound reads one round row.
func scanRound(scan func(dest ...any) error) (RoundEntry, error) {
	var e RoundEntry
	var strokesText string
	var createdAt any
	if err := scan(&e.ID, &strokesText, &e.Total, &e.Par, &createdAt); err != nil {
		return e, err
	}

	strokes, err := decodeStrokes(strokesText)
	if err != nil {
		return e, err
	}
	e.Strokes = strokes

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}
	return e, nil
}

// RecentRounds retrieves the most recently played rounds.
func (s *Store) RecentRounds(limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, strokes, total, par, created_at
		 FROM rounds
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		e, err := scanRound(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestRound returns the lowest-total round, or nil if none exist.
func (s *Store) BestRound() (*RoundEntry, error) {
	row := s.db.QueryRow(
		`SELECT id, strokes, total, par, created_at
		 FROM rounds
		 ORDER BY total ASC, created_at ASC
		 LIMIT 1`,
	)
	e, err := scanRound(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best round: %w", err)
	}
	return &e, nil
}

// RoundStats contains aggregated statistics over all recorded rounds.
type RoundStats struct {
	RoundsCount int
	BestTotal   int
	AvgTotal    float64
	LastPlayed  time.Time
}

// GetRoundStats retrieves aggregated round statistics.
func (s *Store) GetRoundStats() (*RoundStats, error) {
	stats := &RoundStats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(total), 0), COALESCE(AVG(total), 0)
		 FROM rounds`,
	).Scan(&stats.RoundsCount, &stats.BestTotal, &stats.AvgTotal)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get round stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM rounds ORDER BY created_at DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		switch v := lastPlayed.(type) {
		case time.Time:
			stats.LastPlayed = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				stats.LastPlayed = parsed
			}
		}
	}

	return stats, nil
}

// SaveAutosave persists the round in progress, replacing any previous save.
func (s *Store) SaveAutosave(holeIndex int, strokes []int) error {
	_, err := s.db.Exec(
		`INSERT INTO autosave (id, hole_index, strokes, updated_at)
		 VALUES (1, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET
		   hole_index = excluded.hole_index,
		   strokes = excluded.strokes,
		   updated_at = excluded.updated_at`,
		holeIndex, encodeStrokes(strokes),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save autosave: %w", err)
	}
	return nil
}

// LoadAutosave retrieves the round in progress, or nil if there is none.
func (s *Store) LoadAutosave() (*Autosave, error) {
	var save Autosave
	var strokesText string
	var updatedAt any

	err := s.db.QueryRow(
		`SELECT hole_index, strokes, updated_at FROM autosave WHERE id = 1`,
	).Scan(&save.HoleIndex, &strokesText, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query autosave: %w", err)
	}

	strokes, err := decodeStrokes(strokesText)
	if err != nil {
		return nil, err
	}
	save.Strokes = strokes

	switch v := updatedAt.(type) {
	case time.Time:
		save.UpdatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			save.UpdatedAt = parsed
		}
	}

	return &save, nil
}

// ClearAutosave deletes the round in progress, if any.
func (s *Store) ClearAutosave() error {
	if _, err := s.db.Exec("DELETE FROM autosave WHERE id = 1"); err != nil {
		return fmt.Errorf("storage: cannot clear autosave: %w", err)
	}
	return nil
}
