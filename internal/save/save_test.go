package save

import (
	"context"
	"testing"

	"github.com/eventure/eventure_api/internal/model"
	"github.com/eventure/eventure_api/internal/store"
	"github.com/pkg/errors"
)

func testController(t *testing.T) (*Controller, *store.Collections) {
	t.Helper()
	catalog := store.NewCatalog([]model.Event{
		{ID: "e1", Name: "Jazz Night"},
		{ID: "e2", Name: "Art Walk"},
	})
	collections := store.NewCollections()
	collections.SeedDefault("1")
	return NewController(collections, catalog, DefaultTimeout), collections
}

func TestQuickSave(t *testing.T) {
	c, _ := testController(t)
	ctx := context.Background()

	action, collection, err := c.QuickSave(ctx, "e1")
	if err != nil {
		t.Fatalf("QuickSave returned error %v", err)
	}
	if action.State != StateSucceeded {
		t.Errorf("action State = %q; want %q", action.State, StateSucceeded)
	}
	if action.Kind != KindQuickSave {
		t.Errorf("action Kind = %q; want %q", action.Kind, KindQuickSave)
	}
	if collection.ID != "1" {
		t.Errorf("target collection = %q; want the default %q", collection.ID, "1")
	}
	if len(collection.EventIDs) != 1 || collection.EventIDs[0] != "e1" {
		t.Errorf("EventIDs = %v; want [e1]", collection.EventIDs)
	}

	saved, err := c.IsEventSaved(ctx, "e1")
	if err != nil {
		t.Fatalf("IsEventSaved returned error %v", err)
	}
	if !saved {
		t.Error("IsEventSaved = false after a successful quick save")
	}
}

func TestQuickSaveIdempotent(t *testing.T) {
	c, _ := testController(t)
	ctx := context.Background()

	if _, _, err := c.QuickSave(ctx, "e1"); err != nil {
		t.Fatalf("QuickSave returned error %v", err)
	}
	action, collection, err := c.QuickSave(ctx, "e1")
	if err != nil {
		t.Fatalf("repeated QuickSave returned error %v", err)
	}
	if action.State != StateSucceeded {
		t.Errorf("repeated save action State = %q; want %q", action.State, StateSucceeded)
	}
	if len(collection.EventIDs) != 1 {
		t.Errorf("EventIDs after repeated save = %v; want one entry", collection.EventIDs)
	}
}

func TestQuickSaveNoDefaultCollection(t *testing.T) {
	catalog := store.NewCatalog([]model.Event{{ID: "e1", Name: "Jazz Night"}})
	c := NewController(store.NewCollections(), catalog, DefaultTimeout)

	action, _, err := c.QuickSave(context.Background(), "e1")
	if !errors.Is(err, store.ErrNoDefaultCollection) {
		t.Fatalf("QuickSave with no collections = %v; want ErrNoDefaultCollection", err)
	}
	if action.State != StateFailed {
		t.Errorf("action State = %q; want %q", action.State, StateFailed)
	}
}

func TestQuickSaveUnknownEvent(t *testing.T) {
	c, collections := testController(t)
	ctx := context.Background()

	action, _, err := c.QuickSave(ctx, "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("QuickSave of unknown event = %v; want ErrNotFound", err)
	}
	if action.State != StateFailed {
		t.Errorf("action State = %q; want %q", action.State, StateFailed)
	}

	// The failed save must not have touched the collection.
	def, _ := collections.Default(ctx)
	if len(def.EventIDs) != 0 {
		t.Errorf("default collection EventIDs = %v; want empty", def.EventIDs)
	}
}

func TestSaveToCollection(t *testing.T) {
	c, collections := testController(t)
	ctx := context.Background()

	extra, err := collections.Create(ctx, "1", model.CreateCollectionInput{Name: "Date Nights"})
	if err != nil {
		t.Fatalf("Create returned error %v", err)
	}

	action, collection, err := c.SaveToCollection(ctx, "e1", extra.ID)
	if err != nil {
		t.Fatalf("SaveToCollection returned error %v", err)
	}
	if action.State != StateSucceeded || action.CollectionID != extra.ID {
		t.Errorf("action = %+v; want succeeded against %q", action, extra.ID)
	}
	if len(collection.EventIDs) != 1 || collection.EventIDs[0] != "e1" {
		t.Errorf("EventIDs = %v; want [e1]", collection.EventIDs)
	}

	// The default collection stays untouched by a targeted save.
	def, _ := collections.Default(ctx)
	if len(def.EventIDs) != 0 {
		t.Errorf("default collection EventIDs = %v; want empty", def.EventIDs)
	}

	_, _, err = c.SaveToCollection(ctx, "e1", "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("SaveToCollection to missing collection = %v; want ErrNotFound", err)
	}
}

func TestSaveToNewCollection(t *testing.T) {
	c, collections := testController(t)
	ctx := context.Background()

	action, collection, err := c.SaveToNewCollection(ctx, "1", "e1", model.CreateCollectionInput{Name: "Weekend"})
	if err != nil {
		t.Fatalf("SaveToNewCollection returned error %v", err)
	}
	if action.State != StateSucceeded {
		t.Errorf("action State = %q; want %q", action.State, StateSucceeded)
	}
	if collection.Name != "Weekend" {
		t.Errorf("collection Name = %q; want %q", collection.Name, "Weekend")
	}
	if len(collection.EventIDs) != 1 || collection.EventIDs[0] != "e1" {
		t.Errorf("EventIDs = %v; want [e1]", collection.EventIDs)
	}

	all, _ := collections.GetAll(ctx)
	if len(all) != 2 {
		t.Errorf("store has %d collections; want default plus the new one", len(all))
	}
}

func TestSaveToNewCollectionCreateStageFailure(t *testing.T) {
	c, collections := testController(t)
	ctx := context.Background()

	action, _, err := c.SaveToNewCollection(ctx, "1", "e1", model.CreateCollectionInput{Name: ""})
	if !store.IsValidation(err) {
		t.Fatalf("SaveToNewCollection with empty name = %v; want validation error", err)
	}
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		t.Error("create-stage failure was wrapped as a StageError; want the direct error")
	}
	if action.State != StateFailed {
		t.Errorf("action State = %q; want %q", action.State, StateFailed)
	}

	// Nothing may be created when the create stage rejects the input.
	all, _ := collections.GetAll(ctx)
	if len(all) != 1 {
		t.Errorf("store has %d collections after rejected create; want 1", len(all))
	}
}

func TestUnsave(t *testing.T) {
	c, _ := testController(t)
	ctx := context.Background()

	if _, _, err := c.QuickSave(ctx, "e1"); err != nil {
		t.Fatalf("QuickSave returned error %v", err)
	}

	collection, err := c.Unsave(ctx, "e1", "1")
	if err != nil {
		t.Fatalf("Unsave returned error %v", err)
	}
	if len(collection.EventIDs) != 0 {
		t.Errorf("EventIDs after unsave = %v; want empty", collection.EventIDs)
	}

	saved, _ := c.IsEventSaved(ctx, "e1")
	if saved {
		t.Error("IsEventSaved = true after unsave")
	}

	// Unsaving again is a no-op.
	if _, err := c.Unsave(ctx, "e1", "1"); err != nil {
		t.Errorf("repeated Unsave returned error %v", err)
	}
}

func TestDerivedQueriesAgree(t *testing.T) {
	c, collections := testController(t)
	ctx := context.Background()

	check := func(eventID string) {
		t.Helper()
		saved, err := c.IsEventSaved(ctx, eventID)
		if err != nil {
			t.Fatalf("IsEventSaved returned error %v", err)
		}
		containing, err := c.CollectionsContaining(ctx, eventID)
		if err != nil {
			t.Fatalf("CollectionsContaining returned error %v", err)
		}
		if saved != (len(containing) > 0) {
			t.Errorf("IsEventSaved(%q) = %v but %d collections contain it", eventID, saved, len(containing))
		}
	}

	check("e1")
	c.QuickSave(ctx, "e1")
	check("e1")
	extra, _ := collections.Create(ctx, "1", model.CreateCollectionInput{Name: "More"})
	c.SaveToCollection(ctx, "e1", extra.ID)
	check("e1")
	c.Unsave(ctx, "e1", "1")
	check("e1")
	c.Unsave(ctx, "e1", extra.ID)
	check("e1")
}

func TestSaveLabel(t *testing.T) {
	c, collections := testController(t)
	ctx := context.Background()

	label, err := c.SaveLabel(ctx, "e1")
	if err != nil {
		t.Fatalf("SaveLabel returned error %v", err)
	}
	if label != "All Saves" {
		t.Errorf("label with no saves = %q; want %q", label, "All Saves")
	}

	extra, _ := collections.Create(ctx, "1", model.CreateCollectionInput{Name: "Date Nights"})
	c.SaveToCollection(ctx, "e1", extra.ID)
	label, _ = c.SaveLabel(ctx, "e1")
	if label != "Date Nights" {
		t.Errorf("label with one collection = %q; want the collection name", label)
	}

	c.QuickSave(ctx, "e1")
	label, _ = c.SaveLabel(ctx, "e1")
	if label != "2 Collections" {
		t.Errorf("label with two collections = %q; want %q", label, "2 Collections")
	}
}

func TestActionLookup(t *testing.T) {
	c, _ := testController(t)
	ctx := context.Background()

	action, _, err := c.QuickSave(ctx, "e1")
	if err != nil {
		t.Fatalf("QuickSave returned error %v", err)
	}

	got, err := c.Action(action.ID)
	if err != nil {
		t.Fatalf("Action returned error %v", err)
	}
	if got.State != StateSucceeded {
		t.Errorf("polled action State = %q; want %q", got.State, StateSucceeded)
	}
	if got.ResolvedAt.IsZero() {
		t.Error("polled action has no resolution time")
	}

	if _, err := c.Action("missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Action(missing) = %v; want ErrNotFound", err)
	}
}
