// pkg/memcache/catalog.go
package mem

import (
	"context"
	"sync"
	"time"

	"match2b/internal/matching"
)

// CatalogCache holds a snapshot of the full solution catalog.
//
// Readers take Generation before loading the catalog and pass it to Set.
// Invalidate bumps the generation, so a load that raced an invalidation is
// dropped instead of cached.
type CatalogCache interface {
	// Get returns the cached catalog, or false when missing or expired.
	Get(ctx context.Context) ([]matching.Solution, bool)
	Generation(ctx context.Context) uint64
	// Set stores catalog only if no Invalidate happened since gen was read.
	Set(ctx context.Context, gen uint64, catalog []matching.Solution) bool
	Invalidate(ctx context.Context)
}

type entry struct {
	catalog   []matching.Solution
	expiresAt time.Time
}

type MemoryCatalog struct {
	mu  sync.RWMutex
	ttl time.Duration
	now func() time.Time
	gen uint64
	e   *entry
}

func NewMemoryCatalog(ttl time.Duration) *MemoryCatalog {
	return &MemoryCatalog{ttl: ttl, now: time.Now}
}

func (s *MemoryCatalog) Get(_ context.Context) ([]matching.Solution, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.e == nil || s.now().After(s.e.expiresAt) {
		return nil, false
	}
	return clone(s.e.catalog), true
}

func (s *MemoryCatalog) Generation(_ context.Context) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gen
}

func (s *MemoryCatalog) Set(_ context.Context, gen uint64, catalog []matching.Solution) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return false
	}
	s.e = &entry{
		catalog:   clone(catalog),
		expiresAt: s.now().Add(s.ttl),
	}
	return true
}

func (s *MemoryCatalog) Invalidate(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.e = nil
}

// clone copies the slice header array so callers can re-sort freely.
func clone(in []matching.Solution) []matching.Solution {
	out := make([]matching.Solution, len(in))
	copy(out, in)
	return out
}

// NoopCatalog never caches.
type NoopCatalog struct{}

func (NoopCatalog) Get(context.Context) ([]matching.Solution, bool)       { return nil, false }
func (NoopCatalog) Generation(context.Context) uint64                     { return 0 }
func (NoopCatalog) Set(context.Context, uint64, []matching.Solution) bool { return false }
func (NoopCatalog) Invalidate(context.Context)                            {}
