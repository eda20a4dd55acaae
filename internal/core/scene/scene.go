// Package scene keeps a registry of named shapes and answers collision
// queries across them.
package scene

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/flatgeom/flatgeom/internal/core/observability/log"
	"github.com/flatgeom/flatgeom/pkg/geometry"
)

// Entry is one shape registered in a scene.
type Entry struct {
	ID    string
	Name  string
	Shape geometry.Shape
}

// Pair is an unordered pair of entries found colliding.
type Pair struct {
	A Entry
	B Entry
}

// Scene is a concurrency-safe shape registry. Entries keep their insertion
// order, which makes snapshots and fingerprints deterministic.
type Scene struct {
	mu      sync.RWMutex
	entries map[string]Entry
	order   []string

	logger log.Log
}

// New returns an empty scene.
func New(logger log.Log) *Scene {
	return &Scene{
		entries: make(map[string]Entry),
		logger:  logger,
	}
}

// Add registers a shape under a fresh id and returns the entry.
func (s *Scene) Add(name string, shape geometry.Shape) Entry {
	entry := Entry{
		ID:    uuid.NewString(),
		Name:  name,
		Shape: shape,
	}

	s.mu.Lock()
	s.entries[entry.ID] = entry
	s.order = append(s.order, entry.ID)
	s.mu.Unlock()

	s.logger.Debug("scene entry added",
		log.String("id", entry.ID),
		log.String("name", name),
		log.String("kind", shape.Kind().String()),
	)
	return entry
}

// Remove drops the entry with the given id. It reports whether anything
// was removed.
func (s *Scene) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[id]; !ok {
		return false
	}
	delete(s.entries, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the entry with the given id.
func (s *Scene) Get(id string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	return e, ok
}

// Len returns the number of registered entries.
func (s *Scene) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Snapshot returns the entries in insertion order.
func (s *Scene) Snapshot() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entries[id])
	}
	return out
}

// QueryShape returns every entry colliding with the probe shape.
func (s *Scene) QueryShape(probe geometry.Shape) ([]Entry, error) {
	var hits []Entry
	for _, e := range s.Snapshot() {
		hit, err := geometry.Collides(probe, e.Shape)
		if err != nil {
			return nil, fmt.Errorf("query against %q: %w", e.Name, err)
		}
		if hit {
			hits = append(hits, e)
		}
	}
	return hits, nil
}

// QueryPoint returns every entry containing the point.
func (s *Scene) QueryPoint(p geometry.Vector) ([]Entry, error) {
	return s.QueryShape(p)
}

// CollidingPairs returns every colliding pair of entries. The pairwise
// sweep fans out one goroutine per anchor entry and stops early when ctx
// is cancelled.
func (s *Scene) CollidingPairs(ctx context.Context) ([]Pair, error) {
	entries := s.Snapshot()
	results := make([][]Pair, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	for i := range entries {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var local []Pair
			for j := i + 1; j < len(entries); j++ {
				hit, err := geometry.Collides(entries[i].Shape, entries[j].Shape)
				if err != nil {
					return fmt.Errorf("pair %q/%q: %w", entries[i].Name, entries[j].Name, err)
				}
				if hit {
					local = append(local, Pair{A: entries[i], B: entries[j]})
				}
			}
			results[i] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var pairs []Pair
	for _, local := range results {
		pairs = append(pairs, local...)
	}
	return pairs, nil
}
