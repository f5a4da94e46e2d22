package store

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/eventure/eventure_api/internal/model"
)

const maxQueryLen = 200

// Searcher runs catalog searches on behalf of a single client session.
// A newer search supersedes any still-running older one: late results for a
// stale query are discarded by comparing a monotonic request counter, so
// rapid re-searching never delivers out-of-date result sets.
type Searcher struct {
	catalog *Catalog
	seq     atomic.Uint64
}

func NewSearcher(catalog *Catalog) *Searcher {
	return &Searcher{catalog: catalog}
}

// Search returns the matching events and whether the result is still
// current. Stale results come back with ok=false and must be dropped.
func (s *Searcher) Search(ctx context.Context, query string) ([]model.Event, bool, error) {
	if strings.TrimSpace(query) == "" {
		return nil, false, &ValidationError{Field: "q", Reason: "must not be empty"}
	}
	if len(query) > maxQueryLen {
		return nil, false, &ValidationError{Field: "q", Reason: "must be 200 characters or less"}
	}

	seq := s.seq.Add(1)
	events, err := s.catalog.Search(ctx, query)
	if err != nil {
		return nil, false, err
	}
	if s.seq.Load() != seq {
		return nil, false, nil
	}
	return events, true, nil
}
