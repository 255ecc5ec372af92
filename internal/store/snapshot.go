package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/slivka2007/golfing-grouper/internal/teetime"
)

// Snapshot is a Store backed by a JSON file, for development and the CLI
// when no database is around. An empty data directory keeps everything in
// memory, which is what the tests use.
type Snapshot struct {
	mu     sync.Mutex
	path   string
	nextID int
	byKey  map[string]teetime.TeeTime
}

type snapshotFile struct {
	UpdatedAt string                     `json:"updated_at"`
	NextID    int                        `json:"next_id"`
	Listings  map[string]teetime.TeeTime `json:"listings"`
}

// NewSnapshot opens the snapshot store at dataDir/listings.json, creating
// the directory as needed. An empty dataDir means memory-only.
func NewSnapshot(dataDir string) (*Snapshot, error) {
	s := &Snapshot{nextID: 1, byKey: make(map[string]teetime.TeeTime)}

	if dataDir == "" {
		return s, nil
	}

	// Expand ~ to home directory
	if strings.HasPrefix(dataDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, dataDir[2:])
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	s.path = filepath.Join(dataDir, "listings.json")

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing snapshot: %w", err)
	}
	if file.Listings != nil {
		s.byKey = file.Listings
	}
	if file.NextID > 0 {
		s.nextID = file.NextID
	}
	return s, nil
}

// save writes the snapshot to disk. Caller holds the lock.
func (s *Snapshot) save() error {
	if s.path == "" {
		return nil
	}

	file := snapshotFile{
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		NextID:    s.nextID,
		Listings:  s.byKey,
	}
	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	return nil
}

func (s *Snapshot) Exists(_ context.Context, t *teetime.TeeTime) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.byKey[t.Key()]
	return ok, nil
}

func (s *Snapshot) Insert(_ context.Context, t *teetime.TeeTime) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := t.Key()
	if _, ok := s.byKey[key]; ok {
		return false, nil
	}

	t.ID = s.nextID
	s.nextID++
	s.byKey[key] = *t

	if err := s.save(); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Snapshot) Get(_ context.Context, id int) (teetime.TeeTime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.byKey {
		if t.ID == id {
			return t, nil
		}
	}
	return teetime.TeeTime{}, fmt.Errorf("listing %d: %w", id, ErrNotFound)
}

func (s *Snapshot) Search(_ context.Context, params teetime.SearchParams) ([]teetime.TeeTime, error) {
	if _, err := time.Parse("2006-01-02", params.Date); err != nil {
		return nil, fmt.Errorf("invalid search date %q: %w", params.Date, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var results []teetime.TeeTime
	for _, t := range s.byKey {
		// A listing belongs to the calendar day on its own wall clock, so an
		// evening slot at a western course stays on the searched date instead
		// of spilling into the next UTC day.
		if t.DateTime.Format("2006-01-02") != params.Date {
			continue
		}
		if t.Matches(params) {
			results = append(results, t)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].DateTime.Before(results[j].DateTime) })
	return results, nil
}
