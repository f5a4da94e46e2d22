package store

import (
	"context"
	"strings"

	"github.com/eventure/eventure_api/internal/model"
	"github.com/pkg/errors"
)

// Catalog is the read-mostly universe of events. It is seeded once at
// construction and never mutated afterwards; every accessor returns copies
// so callers cannot corrupt the backing records.
type Catalog struct {
	events []model.Event
	byID   map[string]int
}

func NewCatalog(events []model.Event) *Catalog {
	c := &Catalog{
		events: make([]model.Event, len(events)),
		byID:   make(map[string]int, len(events)),
	}
	copy(c.events, events)
	for i, e := range c.events {
		c.byID[e.ID] = i
	}
	return c
}

// GetAll returns the full catalog in insertion order.
func (c *Catalog) GetAll(ctx context.Context) ([]model.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.copyAll(), nil
}

func (c *Catalog) GetByID(ctx context.Context, id string) (model.Event, error) {
	if err := ctx.Err(); err != nil {
		return model.Event{}, err
	}
	i, ok := c.byID[id]
	if !ok {
		return model.Event{}, errors.Wrapf(ErrNotFound, "event %q", id)
	}
	return copyEvent(c.events[i]), nil
}

// GetByIDs returns the subsequence of catalog events whose id appears in
// ids, in catalog order, not the caller-supplied order. Unknown ids are
// skipped.
func (c *Catalog) GetByIDs(ctx context.Context, ids []string) ([]model.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	var out []model.Event
	for _, e := range c.events {
		if _, ok := wanted[e.ID]; ok {
			out = append(out, copyEvent(e))
		}
	}
	return out, nil
}

// Search matches the cleaned, lowercased query as a substring of the
// event's name, description, any category tag, or location. Results keep
// catalog order; there is no relevance ranking.
func (c *Catalog) Search(ctx context.Context, query string) ([]model.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	var out []model.Event
	for _, e := range c.events {
		if eventMatches(e, q) {
			out = append(out, copyEvent(e))
		}
	}
	return out, nil
}

func eventMatches(e model.Event, q string) bool {
	if strings.Contains(strings.ToLower(e.Name), q) ||
		strings.Contains(strings.ToLower(e.Description), q) ||
		strings.Contains(strings.ToLower(e.Location), q) {
		return true
	}
	for _, cat := range e.Category {
		if strings.Contains(strings.ToLower(cat), q) {
			return true
		}
	}
	return false
}

// Filter applies the criteria conjunctively. An event passes the category
// criterion when any of its tags is in the requested set. Price bounds are
// inclusive. Empty criteria return the untouched catalog.
func (c *Catalog) Filter(ctx context.Context, filters model.EventFilters) ([]model.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []model.Event
	for _, e := range c.events {
		if len(filters.Category) > 0 && !hasAnyCategory(e, filters.Category) {
			continue
		}
		if pr := filters.PriceRange; pr != nil && (e.Price < pr[0] || e.Price > pr[1]) {
			continue
		}
		if filters.Location != "" &&
			!strings.Contains(strings.ToLower(e.Location), strings.ToLower(filters.Location)) {
			continue
		}
		out = append(out, copyEvent(e))
	}
	return out, nil
}

func hasAnyCategory(e model.Event, wanted []string) bool {
	for _, cat := range e.Category {
		for _, w := range wanted {
			if cat == w {
				return true
			}
		}
	}
	return false
}

func (c *Catalog) copyAll() []model.Event {
	out := make([]model.Event, len(c.events))
	for i, e := range c.events {
		out[i] = copyEvent(e)
	}
	return out
}

func copyEvent(e model.Event) model.Event {
	e.Category = append([]string(nil), e.Category...)
	e.FriendsAttending = append([]model.Friend(nil), e.FriendsAttending...)
	return e
}
