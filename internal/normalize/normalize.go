// Package normalize maps raw platform payloads into canonical tee-time
// listings. Field names, units, and price composition differ per platform, so
// each platform family gets its own Normalizer selected by platform name from
// a registry; adding a platform means one new Normalizer and one Register
// call, not a wider conditional.
package normalize

import (
	"github.com/slivka2007/golfing-grouper/internal/logger"
	"github.com/slivka2007/golfing-grouper/internal/platform"
	"github.com/slivka2007/golfing-grouper/internal/teetime"
)

// Normalizer converts one platform family's raw search payload into canonical
// listings. Implementations are pure: a malformed individual record is
// skipped (and logged), never fatal to the batch.
type Normalizer interface {
	Name() string
	Normalize(raw []byte, p platform.Platform) ([]teetime.TeeTime, error)
}

// Registry selects a Normalizer by platform name.
type Registry struct {
	byName map[string]Normalizer
}

// NewRegistry creates a registry with the given normalizers registered.
func NewRegistry(normalizers ...Normalizer) *Registry {
	r := &Registry{byName: make(map[string]Normalizer, len(normalizers))}
	for _, n := range normalizers {
		r.Register(n)
	}
	return r
}

// Default returns a registry with every built-in platform normalizer.
func Default() *Registry {
	return NewRegistry(GolfNowAPI{}, TeeOffAPI{})
}

// Register adds a normalizer, replacing any previous one with the same name.
func (r *Registry) Register(n Normalizer) {
	r.byName[n.Name()] = n
}

// Normalize runs the platform's normalizer over the raw payload. An
// unregistered platform yields zero listings and a warning; the absence of a
// normalizer must never abort a wider search.
func (r *Registry) Normalize(raw []byte, p platform.Platform) ([]teetime.TeeTime, error) {
	n, ok := r.byName[p.Name]
	if !ok {
		logger.Warn("no normalizer registered for platform", logger.Fields{
			"platform_id":   p.ID,
			"platform_name": p.Name,
		})
		return nil, nil
	}
	return n.Normalize(raw, p)
}
