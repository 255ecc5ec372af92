package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/slivka2007/golfing-grouper/internal/teetime"
)

func listingAt(hour int, url string) teetime.TeeTime {
	return teetime.TeeTime{
		PlatformID: 1,
		CourseName: "Pebble Creek",
		DateTime:   time.Date(2023, time.June, 1, hour, 30, 0, 0, time.UTC),
		Holes:      18,
		Capacity:   4,
		TotalCost:  120.00,
		BookingURL: url,
	}
}

func TestSnapshotInsertAndExists(t *testing.T) {
	ctx := context.Background()
	s, err := NewSnapshot("")
	if err != nil {
		t.Fatalf("NewSnapshot() error = %v", err)
	}

	l := listingAt(7, "https://x/1")

	exists, err := s.Exists(ctx, &l)
	if err != nil || exists {
		t.Fatalf("Exists() = %v, %v; want false, nil", exists, err)
	}

	inserted, err := s.Insert(ctx, &l)
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if !inserted {
		t.Fatal("Insert() = false, want true for new listing")
	}
	if l.ID == 0 {
		t.Error("Insert() did not assign an ID")
	}

	exists, err = s.Exists(ctx, &l)
	if err != nil || !exists {
		t.Errorf("Exists() after insert = %v, %v; want true, nil", exists, err)
	}

	// Same dedup key, different non-identity fields: existing record wins.
	dup := l
	dup.ID = 0
	dup.TotalCost = 999.99
	inserted, err = s.Insert(ctx, &dup)
	if err != nil {
		t.Fatalf("Insert() duplicate error = %v", err)
	}
	if inserted {
		t.Error("Insert() = true for duplicate key, want false")
	}

	stored, err := s.Get(ctx, l.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if stored.TotalCost != 120.00 {
		t.Errorf("stored TotalCost = %v, duplicate insert must not update", stored.TotalCost)
	}
}

func TestSnapshotGetNotFound(t *testing.T) {
	s, _ := NewSnapshot("")
	if _, err := s.Get(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestSnapshotSearch(t *testing.T) {
	ctx := context.Background()
	s, _ := NewSnapshot("")

	nine := listingAt(7, "https://x/1")
	nine.Holes = 9
	nine.TotalCost = 80.00
	eighteen := listingAt(8, "https://x/2")
	otherDay := listingAt(9, "https://x/3")
	otherDay.DateTime = otherDay.DateTime.AddDate(0, 0, 1)

	for _, l := range []*teetime.TeeTime{&nine, &eighteen, &otherDay} {
		if _, err := s.Insert(ctx, l); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	results, err := s.Search(ctx, teetime.SearchParams{Location: "90210", Date: "2023-06-01"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Search() returned %d listings, want 2 (other day excluded)", len(results))
	}
	if !results[0].DateTime.Before(results[1].DateTime) {
		t.Error("Search() results not ordered by start time")
	}

	results, err = s.Search(ctx, teetime.SearchParams{Location: "90210", Date: "2023-06-01", MinHoles: 18})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 || results[0].Holes != 18 {
		t.Errorf("Search() with MinHoles=18 = %+v, want only the 18-hole listing", results)
	}

	if _, err := s.Search(ctx, teetime.SearchParams{Location: "90210", Date: "June first"}); err == nil {
		t.Error("Search() expected error for bad date")
	}
}

func TestSnapshotSearchUsesListingLocalDate(t *testing.T) {
	ctx := context.Background()
	s, _ := NewSnapshot("")

	// 6 PM at a Pacific course is already June 2 in UTC; searching June 1
	// must still find it.
	pacific := time.FixedZone("PDT", -7*60*60)
	evening := listingAt(7, "https://x/evening")
	evening.DateTime = time.Date(2023, time.June, 1, 18, 0, 0, 0, pacific)

	// Half past midnight local on June 2 is still June 1 in UTC; it belongs
	// to June 2.
	nightOwl := listingAt(7, "https://x/night")
	nightOwl.DateTime = time.Date(2023, time.June, 2, 0, 30, 0, 0, pacific)

	for _, l := range []*teetime.TeeTime{&evening, &nightOwl} {
		if _, err := s.Insert(ctx, l); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	results, err := s.Search(ctx, teetime.SearchParams{Location: "90210", Date: "2023-06-01"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 || results[0].BookingURL != "https://x/evening" {
		t.Fatalf("Search(2023-06-01) = %+v, want only the evening listing", results)
	}

	results, err = s.Search(ctx, teetime.SearchParams{Location: "90210", Date: "2023-06-02"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 || results[0].BookingURL != "https://x/night" {
		t.Fatalf("Search(2023-06-02) = %+v, want only the after-midnight listing", results)
	}
}

func TestSnapshotPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewSnapshot(dir)
	if err != nil {
		t.Fatalf("NewSnapshot() error = %v", err)
	}
	l := listingAt(7, "https://x/1")
	if _, err := s.Insert(ctx, &l); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	reopened, err := NewSnapshot(dir)
	if err != nil {
		t.Fatalf("NewSnapshot() reopen error = %v", err)
	}

	exists, err := reopened.Exists(ctx, &l)
	if err != nil || !exists {
		t.Errorf("Exists() after reopen = %v, %v; want true, nil", exists, err)
	}

	// IDs keep advancing after reload, so reinserting can't reuse one.
	fresh := listingAt(9, "https://x/2")
	if _, err := reopened.Insert(ctx, &fresh); err != nil {
		t.Fatalf("Insert() after reopen error = %v", err)
	}
	if fresh.ID != 2 {
		t.Errorf("ID after reopen = %d, want 2", fresh.ID)
	}
}

func TestSnapshotUniqueKeys(t *testing.T) {
	// Every persisted listing must have a distinct dedup 4-tuple.
	ctx := context.Background()
	s, _ := NewSnapshot("")

	batch := []teetime.TeeTime{
		listingAt(7, "https://x/1"),
		listingAt(7, "https://x/1"), // dup
		listingAt(7, "https://x/2"),
		listingAt(8, "https://x/1"),
	}
	for i := range batch {
		if _, err := s.Insert(ctx, &batch[i]); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	results, err := s.Search(ctx, teetime.SearchParams{Location: "90210", Date: "2023-06-01"})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	seen := make(map[string]bool)
	for _, l := range results {
		key := l.Key()
		if seen[key] {
			t.Errorf("duplicate dedup key stored: %s", key)
		}
		seen[key] = true
	}
	if len(results) != 3 {
		t.Errorf("stored %d listings, want 3", len(results))
	}
}
