// Package history records resolved videos in a SQLite database so they can
// be listed and resolved again later.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"screenwave/internal/config"
	"screenwave/internal/media"
)

const schema = `
CREATE TABLE IF NOT EXISTS history (
	url         TEXT PRIMARY KEY,
	video_id    TEXT NOT NULL,
	title       TEXT NOT NULL,
	upload_date TEXT NOT NULL DEFAULT '',
	formats     INTEGER NOT NULL DEFAULT 0,
	resolved_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_history_resolved_at ON history(resolved_at DESC);
`

// Store is a history database.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// OpenDefault opens the store at config.HistoryPath.
func OpenDefault() (*Store, error) {
	path, err := config.HistoryPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Open creates or opens the database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating history table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Entry builds a history entry for a resolved video.
func Entry(res *media.VideoResult, at time.Time) media.HistoryEntry {
	return media.HistoryEntry{
		URL:        res.WebpageURL,
		ID:         res.ID,
		Title:      res.Title,
		UploadDate: res.UploadDate.OrEmpty(),
		Formats:    len(res.Formats),
		ResolvedAt: at,
	}
}

// Record inserts an entry, replacing any previous entry for the same URL.
func (s *Store) Record(e media.HistoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO history (url, video_id, title, upload_date, formats, resolved_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.URL, e.ID, e.Title, e.UploadDate, e.Formats, e.ResolvedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("recording %s: %w", e.URL, err)
	}
	return nil
}

// List returns all entries, most recently resolved first.
func (s *Store) List() ([]media.HistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT url, video_id, title, upload_date, formats, resolved_at
		FROM history ORDER BY resolved_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []media.HistoryEntry
	for rows.Next() {
		var (
			e  media.HistoryEntry
			ts int64
		)
		if err := rows.Scan(&e.URL, &e.ID, &e.Title, &e.UploadDate, &e.Formats, &ts); err != nil {
			return nil, fmt.Errorf("reading history: %w", err)
		}
		e.ResolvedAt = time.Unix(0, ts)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Remove deletes the entry for url.
func (s *Store) Remove(url string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM history WHERE url = ?`, url); err != nil {
		return fmt.Errorf("removing %s: %w", url, err)
	}
	return nil
}

// Clear deletes every entry.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM history`); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}

// FormatForDisplay creates one display line per entry for the picker.
func FormatForDisplay(entries []media.HistoryEntry) []string {
	var items []string
	for _, e := range entries {
		display := e.Title
		if e.UploadDate != "" {
			display += " (" + e.UploadDate + ")"
		}
		display += fmt.Sprintf(" [%d formats]", e.Formats)
		items = append(items, display)
	}
	return items
}
