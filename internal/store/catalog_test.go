package store

import (
	"context"
	"testing"

	"github.com/eventure/eventure_api/internal/model"
	"github.com/pkg/errors"
)

func testCatalog() *Catalog {
	return NewCatalog([]model.Event{
		{ID: "1", Name: "Jazz Night", Description: "Smooth jazz downtown", Location: "Oakland, CA",
			Price: 0, Category: []string{"Music", "Jazz"}},
		{ID: "2", Name: "Art Walk", Description: "Street art tour", Location: "Oakland, CA",
			Price: 35, Category: []string{"Art", "Culture"}},
		{ID: "3", Name: "Food Festival", Description: "Food trucks by the lake", Location: "Berkeley, CA",
			Price: 15, Category: []string{"Food", "Festival"}},
	})
}

func TestCatalogGetByID(t *testing.T) {
	c := testCatalog()
	ctx := context.Background()

	event, err := c.GetByID(ctx, "2")
	if err != nil {
		t.Fatalf("GetByID returned error %v", err)
	}
	if event.Name != "Art Walk" {
		t.Errorf("GetByID(2).Name = %q; want %q", event.Name, "Art Walk")
	}

	_, err = c.GetByID(ctx, "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID(missing) = %v; want ErrNotFound", err)
	}
}

func TestCatalogGetByIDReturnsCopy(t *testing.T) {
	c := testCatalog()
	ctx := context.Background()

	event, _ := c.GetByID(ctx, "1")
	event.Category[0] = "Mutated"

	again, _ := c.GetByID(ctx, "1")
	if again.Category[0] != "Music" {
		t.Errorf("catalog record was mutated through a returned alias")
	}
}

func TestCatalogGetByIDsKeepsCatalogOrder(t *testing.T) {
	c := testCatalog()

	events, err := c.GetByIDs(context.Background(), []string{"3", "1", "nope"})
	if err != nil {
		t.Fatalf("GetByIDs returned error %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("GetByIDs returned %d events; want 2", len(events))
	}
	if events[0].ID != "1" || events[1].ID != "3" {
		t.Errorf("GetByIDs order = [%s %s]; want catalog order [1 3]", events[0].ID, events[1].ID)
	}
}

func TestCatalogSearch(t *testing.T) {
	c := testCatalog()
	ctx := context.Background()

	testCases := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"name match", "jazz night", []string{"1"}},
		{"case insensitive", "JAZZ", []string{"1"}},
		{"category match", "festival", []string{"3"}},
		{"location match", "oakland", []string{"1", "2"}},
		{"description match", "street art", []string{"2"}},
		{"no match", "opera", nil},
		{"whitespace trimmed", "  art walk  ", []string{"2"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			events, err := c.Search(ctx, tc.query)
			if err != nil {
				t.Fatalf("Search(%q) returned error %v", tc.query, err)
			}
			if len(events) != len(tc.wantIDs) {
				t.Fatalf("Search(%q) returned %d events; want %d", tc.query, len(events), len(tc.wantIDs))
			}
			for i, id := range tc.wantIDs {
				if events[i].ID != id {
					t.Errorf("Search(%q)[%d].ID = %s; want %s", tc.query, i, events[i].ID, id)
				}
			}
		})
	}
}

func TestCatalogFilter(t *testing.T) {
	c := testCatalog()
	ctx := context.Background()

	testCases := []struct {
		name    string
		filters model.EventFilters
		wantIDs []string
	}{
		{"empty criteria returns everything", model.EventFilters{}, []string{"1", "2", "3"}},
		{"free events only", model.EventFilters{PriceRange: &[2]float64{0, 0}}, []string{"1"}},
		{"price range inclusive", model.EventFilters{PriceRange: &[2]float64{15, 35}}, []string{"2", "3"}},
		{"category any-match", model.EventFilters{Category: []string{"Jazz"}}, []string{"1"}},
		{"location substring", model.EventFilters{Location: "berkeley"}, []string{"3"}},
		{"conjunctive", model.EventFilters{Category: []string{"Food", "Art"}, PriceRange: &[2]float64{20, 40}}, []string{"2"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			events, err := c.Filter(ctx, tc.filters)
			if err != nil {
				t.Fatalf("Filter returned error %v", err)
			}
			if len(events) != len(tc.wantIDs) {
				t.Fatalf("Filter returned %d events; want %d", len(events), len(tc.wantIDs))
			}
			for i, id := range tc.wantIDs {
				if events[i].ID != id {
					t.Errorf("Filter[%d].ID = %s; want %s", i, events[i].ID, id)
				}
			}
		})
	}
}
