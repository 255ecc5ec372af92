package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/slivka2007/golfing-grouper/internal/teetime"
)

const schema = `
CREATE TABLE IF NOT EXISTS tee_times (
	id BIGSERIAL PRIMARY KEY,
	platform_id INTEGER NOT NULL,
	course_name TEXT NOT NULL,
	date_time TIMESTAMP NOT NULL,
	holes INTEGER NOT NULL CHECK (holes IN (9, 18)),
	capacity INTEGER NOT NULL CHECK (capacity >= 1),
	total_cost NUMERIC(10,2) NOT NULL,
	booking_url TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE UNIQUE INDEX IF NOT EXISTS tee_times_dedup_key
	ON tee_times (platform_id, course_name, date_time, booking_url);`

// Postgres is the production Store. The tee_times_dedup_key unique index is
// what makes concurrent ingestion of the same listing safe. date_time is a
// plain TIMESTAMP holding the listing's wall-clock time: searches window by
// the calendar date the course shows, not the UTC day the instant falls in.
type Postgres struct {
	db *sql.DB
}

// OpenPostgres connects, waits for the database to answer, and ensures the
// schema exists.
func OpenPostgres(dsn string) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}

	if err := pingWithRetry(db, 10, time.Second); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensuring tee_times schema: %w", err)
	}

	return &Postgres{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Postgres) Close() error { return s.db.Close() }

func pingWithRetry(db *sql.DB, attempts int, delay time.Duration) error {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		lastErr = db.Ping()
		if lastErr == nil {
			return nil
		}
		time.Sleep(delay)
	}
	return lastErr
}

func (s *Postgres) Exists(ctx context.Context, t *teetime.TeeTime) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `
		SELECT 1 FROM tee_times
		WHERE platform_id = $1 AND course_name = $2 AND date_time = $3 AND booking_url = $4`,
		t.PlatformID, t.CourseName, t.DateTime.UTC(), t.BookingURL,
	).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking listing existence: %w", err)
	}
	return true, nil
}

func (s *Postgres) Insert(ctx context.Context, t *teetime.TeeTime) (bool, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO tee_times (platform_id, course_name, date_time, holes, capacity, total_cost, booking_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (platform_id, course_name, date_time, booking_url) DO NOTHING
		RETURNING id`,
		t.PlatformID, t.CourseName, t.DateTime.UTC(), t.Holes, t.Capacity, t.TotalCost, t.BookingURL,
	).Scan(&t.ID)
	if errors.Is(err, sql.ErrNoRows) {
		// Lost the race or already stored: the existing record wins.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("inserting listing: %w", err)
	}
	return true, nil
}

func (s *Postgres) Get(ctx context.Context, id int) (teetime.TeeTime, error) {
	var t teetime.TeeTime
	err := s.db.QueryRowContext(ctx, `
		SELECT id, platform_id, course_name, date_time, holes, capacity, total_cost, booking_url
		FROM tee_times WHERE id = $1`, id,
	).Scan(&t.ID, &t.PlatformID, &t.CourseName, &t.DateTime, &t.Holes, &t.Capacity, &t.TotalCost, &t.BookingURL)
	if errors.Is(err, sql.ErrNoRows) {
		return teetime.TeeTime{}, fmt.Errorf("listing %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return teetime.TeeTime{}, fmt.Errorf("loading listing %d: %w", id, err)
	}
	return t, nil
}

func (s *Postgres) Search(ctx context.Context, params teetime.SearchParams) ([]teetime.TeeTime, error) {
	day, err := time.Parse("2006-01-02", params.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid search date %q: %w", params.Date, err)
	}

	// date_time is wall-clock, so the window covers the listing's own
	// calendar day regardless of the zone it was scraped in.
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, platform_id, course_name, date_time, holes, capacity, total_cost, booking_url
		FROM tee_times
		WHERE date_time >= $1::timestamp AND date_time < $2::timestamp
		ORDER BY date_time`,
		day.Format("2006-01-02"), day.AddDate(0, 0, 1).Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("searching listings: %w", err)
	}
	defer rows.Close()

	var results []teetime.TeeTime
	for rows.Next() {
		var t teetime.TeeTime
		if err := rows.Scan(&t.ID, &t.PlatformID, &t.CourseName, &t.DateTime,
			&t.Holes, &t.Capacity, &t.TotalCost, &t.BookingURL); err != nil {
			return nil, fmt.Errorf("scanning listing row: %w", err)
		}
		if t.Matches(params) {
			results = append(results, t)
		}
	}
	return results, rows.Err()
}
