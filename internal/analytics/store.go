// Package analytics records privacy-conscious visit and link-click
// counts for the portfolio and serves them to the site owner.
package analytics

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// sqliteTime is the layout timestamps are stored in. It sorts
// lexicographically, so range queries can compare strings.
const sqliteTime = "2006-01-02 15:04:05"

// Visit is one tracked page view. The address is stored only as a salted
// hash.
type Visit struct {
	ID        int64     `json:"id"`
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

// LinkStat counts clicks on one project's outbound link.
type LinkStat struct {
	Slug        string    `json:"slug"`
	Clicks      int64     `json:"clicks"`
	LastClicked time.Time `json:"last_clicked"`
}

type Stats struct {
	TotalVisits    int64      `json:"total_visits"`
	UniqueVisitors int64      `json:"unique_visitors"`
	VisitsToday    int64      `json:"visits_today"`
	VisitsThisWeek int64      `json:"visits_this_week"`
	TotalClicks    int64      `json:"total_clicks"`
	TopLinks       []LinkStat `json:"top_links"`
	RecentVisits   []Visit    `json:"recent_visits"`
}

// Store is the SQLite-backed analytics database.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS visits (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,
	user_agent TEXT NOT NULL DEFAULT '',
	path TEXT NOT NULL DEFAULT '',
	visited_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_visits_visited_at ON visits(visited_at);

CREATE TABLE IF NOT EXISTS link_clicks (
	slug TEXT PRIMARY KEY,
	clicks INTEGER NOT NULL DEFAULT 0,
	last_clicked TEXT NOT NULL
);
`

// Open creates or opens the database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return newStore(db)
}

// OpenMemory creates an in-memory database, for tests.
func OpenMemory() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	return newStore(db)
}

func newStore(db *sql.DB) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) timestamp() string {
	return s.now().UTC().Format(sqliteTime)
}

// RecordVisit stores one page view.
func (s *Store) RecordVisit(ctx context.Context, hashedIP, userAgent, path string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visits (hashed_ip, user_agent, path, visited_at)
		VALUES (?, ?, ?, ?)
	`, hashedIP, userAgent, path, s.timestamp())
	if err != nil {
		return fmt.Errorf("recording visit: %w", err)
	}
	return nil
}

// RecordClick increments the click count for a project link.
func (s *Store) RecordClick(ctx context.Context, slug string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO link_clicks (slug, clicks, last_clicked) VALUES (?, 1, ?)
		ON CONFLICT(slug) DO UPDATE SET
			clicks = clicks + 1,
			last_clicked = excluded.last_clicked
	`, slug, s.timestamp())
	if err != nil {
		return fmt.Errorf("recording click on %s: %w", slug, err)
	}
	return nil
}

// Cleanup deletes visits older than the retention window and returns
// how many were removed.
func (s *Store) Cleanup(ctx context.Context, months int) (int64, error) {
	cutoff := s.now().AddDate(0, -months, 0).UTC().Format(sqliteTime)
	res, err := s.db.ExecContext(ctx, `DELETE FROM visits WHERE visited_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleaning up visits: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// Stats summarises visits and link clicks.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).Format(sqliteTime)
	weekAgo := now.AddDate(0, 0, -7).Format(sqliteTime)

	counts := []struct {
		dest  *int64
		query string
		args  []any
	}{
		{&stats.TotalVisits, `SELECT COUNT(*) FROM visits`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visits`, nil},
		{&stats.VisitsToday, `SELECT COUNT(*) FROM visits WHERE visited_at >= ?`, []any{today}},
		{&stats.VisitsThisWeek, `SELECT COUNT(*) FROM visits WHERE visited_at >= ?`, []any{weekAgo}},
		{&stats.TotalClicks, `SELECT COALESCE(SUM(clicks), 0) FROM link_clicks`, nil},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("querying stats: %w", err)
		}
	}

	links, err := s.TopLinks(ctx, 10)
	if err != nil {
		return nil, err
	}
	stats.TopLinks = links

	visits, err := s.RecentVisits(ctx, 50)
	if err != nil {
		return nil, err
	}
	stats.RecentVisits = visits

	return stats, nil
}

// TopLinks returns the most clicked project links.
func (s *Store) TopLinks(ctx context.Context, limit int) ([]LinkStat, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT slug, clicks, last_clicked
		FROM link_clicks
		ORDER BY clicks DESC, last_clicked DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying link clicks: %w", err)
	}
	defer rows.Close()

	var out []LinkStat
	for rows.Next() {
		var l LinkStat
		var last string
		if err := rows.Scan(&l.Slug, &l.Clicks, &last); err != nil {
			return nil, fmt.Errorf("scanning link clicks: %w", err)
		}
		l.LastClicked, _ = time.Parse(sqliteTime, last)
		out = append(out, l)
	}
	return out, rows.Err()
}

// RecentVisits returns the newest visits first.
func (s *Store) RecentVisits(ctx context.Context, limit int) ([]Visit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, hashed_ip, user_agent, path, visited_at
		FROM visits
		ORDER BY visited_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying visits: %w", err)
	}
	defer rows.Close()

	var out []Visit
	for rows.Next() {
		var v Visit
		var at string
		if err := rows.Scan(&v.ID, &v.HashedIP, &v.UserAgent, &v.Path, &at); err != nil {
			return nil, fmt.Errorf("scanning visits: %w", err)
		}
		v.Timestamp, _ = time.Parse(sqliteTime, at)
		out = append(out, v)
	}
	return out, rows.Err()
}
