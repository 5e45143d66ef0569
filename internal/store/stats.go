package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Saivya1/Portfolio/internal/contact"
)

// RecordContactAttempt stores the outcome of a contact submission. The
// message itself is never stored.
func (s *Store) RecordContactAttempt(ctx context.Context, outcome contact.Outcome) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_attempts (outcome, created_at) VALUES (?, ?)`,
		string(outcome), s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record contact attempt: %w", err)
	}
	return nil
}

// PathStat is the number of views of a path.
type PathStat struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

// Stats is the admin dashboard summary.
type Stats struct {
	TotalVisitors    int64                     `json:"total_visitors"`
	UniqueVisitors   int64                     `json:"unique_visitors"`
	VisitorsToday    int64                     `json:"visitors_today"`
	VisitorsThisWeek int64                     `json:"visitors_this_week"`
	TopPaths         []PathStat                `json:"top_paths"`
	ContactAttempts  map[contact.Outcome]int64 `json:"contact_attempts"`
	RecentVisitors   []Visitor                 `json:"recent_visitors"`
}

// Stats gathers the dashboard summary.
func (s *Store) Stats(ctx context.Context) (*Stats, error) {
	now := s.now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).UnixMilli()
	weekAgo := now.Add(-7 * 24 * time.Hour).UnixMilli()

	stats := &Stats{ContactAttempts: map[contact.Outcome]int64{}}

	counts := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{&stats.TotalVisitors, `SELECT COUNT(*) FROM visitors`, nil},
		{&stats.UniqueVisitors, `SELECT COUNT(DISTINCT hashed_ip) FROM visitors`, nil},
		{&stats.VisitorsToday, `SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{startOfDay}},
		{&stats.VisitorsThisWeek, `SELECT COUNT(*) FROM visitors WHERE visited_at >= ?`, []any{weekAgo}},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dst); err != nil {
			return nil, fmt.Errorf("stats: %w", err)
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS views
		FROM visitors
		GROUP BY path
		ORDER BY views DESC, path ASC
		LIMIT 10`)
	if err != nil {
		return nil, fmt.Errorf("top paths: %w", err)
	}
	stats.TopPaths, err = collect(rows, func(r *sql.Rows) (PathStat, error) {
		var p PathStat
		return p, r.Scan(&p.Path, &p.Views)
	})
	if err != nil {
		return nil, fmt.Errorf("top paths: %w", err)
	}

	rows, err = s.db.QueryContext(ctx, `SELECT outcome, COUNT(*) FROM contact_attempts GROUP BY outcome`)
	if err != nil {
		return nil, fmt.Errorf("contact attempts: %w", err)
	}
	type outcomeCount struct {
		outcome string
		n       int64
	}
	outcomes, err := collect(rows, func(r *sql.Rows) (outcomeCount, error) {
		var c outcomeCount
		return c, r.Scan(&c.outcome, &c.n)
	})
	if err != nil {
		return nil, fmt.Errorf("contact attempts: %w", err)
	}
	for _, c := range outcomes {
		stats.ContactAttempts[contact.Outcome(c.outcome)] = c.n
	}

	stats.RecentVisitors, err = s.RecentVisitors(ctx, 50)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
