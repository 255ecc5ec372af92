package platform

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/slivka2007/golfing-grouper/internal/crypto"
)

// FileRegistry is a Registry backed by a JSON seed file. API keys in the file
// may be encrypted at rest; pass the matching encryptor to decrypt on load.
type FileRegistry struct {
	byID map[int]Platform
}

// NewFileRegistry loads a registry seed file. A nil encryptor reads keys
// as plaintext.
func NewFileRegistry(path string, enc *crypto.Encryptor) (*FileRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry seed: %w", err)
	}

	var platforms []Platform
	if err := json.Unmarshal(data, &platforms); err != nil {
		return nil, fmt.Errorf("parsing registry seed: %w", err)
	}

	byID := make(map[int]Platform, len(platforms))
	for _, p := range platforms {
		if p.ID == 0 {
			return nil, fmt.Errorf("registry seed entry %q has no id", p.Name)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("registry seed has duplicate id %d", p.ID)
		}
		key, err := enc.Decrypt(p.APIKey)
		if err != nil {
			return nil, fmt.Errorf("decrypting API key for platform %d: %w", p.ID, err)
		}
		p.APIKey = key
		byID[p.ID] = p
	}

	return &FileRegistry{byID: byID}, nil
}

// Lookup returns the platform with the given ID, or ErrNotFound.
func (r *FileRegistry) Lookup(id int) (Platform, error) {
	p, ok := r.byID[id]
	if !ok {
		return Platform{}, fmt.Errorf("platform %d: %w", id, ErrNotFound)
	}
	return p, nil
}

// All returns every registered platform ordered by ID.
func (r *FileRegistry) All() ([]Platform, error) {
	platforms := make([]Platform, 0, len(r.byID))
	for _, p := range r.byID {
		platforms = append(platforms, p)
	}
	sort.Slice(platforms, func(i, j int) bool { return platforms[i].ID < platforms[j].ID })
	return platforms, nil
}

// StaticRegistry is an in-memory Registry, used by tests and embedded setups.
type StaticRegistry map[int]Platform

func (r StaticRegistry) Lookup(id int) (Platform, error) {
	p, ok := r[id]
	if !ok {
		return Platform{}, fmt.Errorf("platform %d: %w", id, ErrNotFound)
	}
	return p, nil
}

func (r StaticRegistry) All() ([]Platform, error) {
	platforms := make([]Platform, 0, len(r))
	for _, p := range r {
		platforms = append(platforms, p)
	}
	sort.Slice(platforms, func(i, j int) bool { return platforms[i].ID < platforms[j].ID })
	return platforms, nil
}
