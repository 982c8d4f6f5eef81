// Package memory implements the process-wide, append-only filing store.
// Filings live only for the process lifetime; there is no persistence.
package memory

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"gstmitra/internal/domain"
	"gstmitra/internal/port"
)

// FilingStore is an in-memory, append-only filing store safe for
// concurrent use. Filings are keyed by a monotonically increasing id
// derived from a nanosecond clock.
type FilingStore struct {
	mu      sync.RWMutex
	filings map[int64]*domain.Filing
	lastID  int64
	now     func() time.Time
}

// NewFilingStore creates an empty FilingStore.
func NewFilingStore() *FilingStore {
	return &FilingStore{
		filings: make(map[int64]*domain.Filing),
		now:     time.Now,
	}
}

// NewFilingStoreWithClock creates a FilingStore with a fixed clock (for testing).
func NewFilingStoreWithClock(now func() time.Time) *FilingStore {
	return &FilingStore{
		filings: make(map[int64]*domain.Filing),
		now:     now,
	}
}

var _ port.FilingStore = (*FilingStore)(nil)

// Append stores a completed filing, assigning its id and creation time.
// Ids come from the nanosecond clock with a last-id guard so concurrent
// appends never collide or lose entries.
func (s *FilingStore) Append(_ context.Context, filing *domain.Filing) (*domain.Filing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixNano()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	stored := copyFiling(filing)
	stored.ID = id
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = s.now()
	}
	s.filings[id] = stored

	return copyFiling(stored), nil
}

// GetByID returns the filing with the given id, or domain.ErrFilingNotFound.
func (s *FilingStore) GetByID(_ context.Context, id int64) (*domain.Filing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filing, ok := s.filings[id]
	if !ok {
		return nil, domain.ErrFilingNotFound
	}
	return copyFiling(filing), nil
}

// List returns all filings, newest first.
func (s *FilingStore) List(_ context.Context) ([]domain.Filing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filings := make([]domain.Filing, 0, len(s.filings))
	for _, f := range s.filings {
		filings = append(filings, *copyFiling(f))
	}
	sort.Slice(filings, func(a, b int) bool {
		return filings[a].ID > filings[b].ID
	})
	return filings, nil
}

// copyFiling clones a filing so callers and the store never share mutable
// state: the record and document slices, plan slices, and breakdown maps
// are all copied, not aliased.
func copyFiling(f *domain.Filing) *domain.Filing {
	out := *f
	out.Records = slices.Clone(f.Records)
	out.Documents = slices.Clone(f.Documents)
	out.Plan.ApplicableReturns = slices.Clone(f.Plan.ApplicableReturns)
	out.Plan.SpecialSchemes = slices.Clone(f.Plan.SpecialSchemes)
	out.Plan.RiskAreas = slices.Clone(f.Plan.RiskAreas)
	out.Calc.SalesByState = maps.Clone(f.Calc.SalesByState)
	out.Calc.SalesByTaxSlab = maps.Clone(f.Calc.SalesByTaxSlab)
	return &out
}
