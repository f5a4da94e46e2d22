// Package save mediates between a user's save intent on an event card and
// the collection store. Every save runs as its own action instance with an
// explicit pending/succeeded/failed lifecycle, and the store stays the
// single source of truth: nothing user-visible is flipped before the store
// operation resolves.
package save

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/eventure/eventure_api/internal/model"
	"github.com/eventure/eventure_api/internal/store"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Action states. Each action starts idle, moves to pending when dispatched
// and resolves to exactly one of succeeded or failed within the controller
// timeout. A new user intent is a new action instance.
const (
	StateIdle      = "idle"
	StatePending   = "pending"
	StateSucceeded = "succeeded"
	StateFailed    = "failed"
)

// Action kinds.
const (
	KindQuickSave        = "quick-save"
	KindSaveToCollection = "save-to-collection"
	KindSaveToNew        = "save-to-new-collection"
)

// Stages of a composed save, used to tell a create-stage failure apart from
// an add-stage one.
const (
	StageCreate   = "create"
	StageAddEvent = "add-event"
)

// Action is one save attempt's state machine instance.
type Action struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind"`
	EventID      string    `json:"event_id"`
	CollectionID string    `json:"collection_id,omitempty"`
	State        string    `json:"state"`
	Error        string    `json:"error,omitempty"`
	StartedAt    time.Time `json:"started_at"`
	ResolvedAt   time.Time `json:"resolved_at,omitempty"`
}

// StageError reports which stage of a composed save failed. When the create
// stage already succeeded the new collection's id is carried so the caller
// can clean up or retry only the add.
type StageError struct {
	Stage        string
	CollectionID string
	Err          error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("save %s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// Controller ties save intents to the collection store.
type Controller struct {
	collections *store.Collections
	catalog     *store.Catalog
	timeout     time.Duration

	mu      sync.Mutex
	actions map[string]*Action
}

// DefaultTimeout bounds a pending save so it always resolves.
const DefaultTimeout = 10 * time.Second

func NewController(collections *store.Collections, catalog *store.Catalog, timeout time.Duration) *Controller {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Controller{
		collections: collections,
		catalog:     catalog,
		timeout:     timeout,
		actions:     make(map[string]*Action),
	}
}

// QuickSave saves the event into the default collection. It fails with
// store.ErrNoDefaultCollection when no collection exists yet; callers
// prompt for collection creation in that case.
func (c *Controller) QuickSave(ctx context.Context, eventID string) (Action, model.Collection, error) {
	action := c.begin(KindQuickSave, eventID, "")
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target, err := c.collections.Default(ctx)
	if err != nil {
		return c.resolve(action, "", err), model.Collection{}, err
	}
	return c.addEvent(ctx, action, target.ID, eventID)
}

// SaveToCollection saves the event into an explicitly chosen collection.
func (c *Controller) SaveToCollection(ctx context.Context, eventID, collectionID string) (Action, model.Collection, error) {
	action := c.begin(KindSaveToCollection, eventID, collectionID)
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	return c.addEvent(ctx, action, collectionID, eventID)
}

// SaveToNewCollection creates a collection and saves the event into it. A
// validation failure at the create stage surfaces directly and the save
// never proceeds. A failure at the add stage leaves the freshly created,
// empty collection behind and is reported as a StageError carrying its id.
func (c *Controller) SaveToNewCollection(ctx context.Context, ownerID, eventID string, input model.CreateCollectionInput) (Action, model.Collection, error) {
	action := c.begin(KindSaveToNew, eventID, "")
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	created, err := c.collections.Create(ctx, ownerID, input)
	if err != nil {
		return c.resolve(action, "", err), model.Collection{}, err
	}

	updated, err := c.collections.AddEvent(ctx, created.ID, eventID)
	if err != nil {
		stageErr := &StageError{Stage: StageAddEvent, CollectionID: created.ID, Err: err}
		return c.resolve(action, created.ID, stageErr), created, stageErr
	}
	return c.resolve(action, created.ID, nil), updated, nil
}

// Unsave removes the event from one collection.
func (c *Controller) Unsave(ctx context.Context, eventID, collectionID string) (model.Collection, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.collections.RemoveEvent(ctx, collectionID, eventID)
}

func (c *Controller) addEvent(ctx context.Context, action Action, collectionID, eventID string) (Action, model.Collection, error) {
	if _, err := c.catalog.GetByID(ctx, eventID); err != nil {
		return c.resolve(action, collectionID, err), model.Collection{}, err
	}
	updated, err := c.collections.AddEvent(ctx, collectionID, eventID)
	if err != nil {
		return c.resolve(action, collectionID, err), model.Collection{}, err
	}
	return c.resolve(action, collectionID, nil), updated, nil
}

// Action returns a finished or in-flight action by id.
func (c *Controller) Action(id string) (Action, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	a, ok := c.actions[id]
	if !ok {
		return Action{}, errors.Wrapf(store.ErrNotFound, "save action %q", id)
	}
	return *a, nil
}

// IsEventSaved reports whether any collection contains the event. It is
// recomputed from current store state on every call, never cached.
func (c *Controller) IsEventSaved(ctx context.Context, eventID string) (bool, error) {
	containing, err := c.CollectionsContaining(ctx, eventID)
	if err != nil {
		return false, err
	}
	return len(containing) > 0, nil
}

// CollectionsContaining returns the collections holding the event, in store
// order.
func (c *Controller) CollectionsContaining(ctx context.Context, eventID string) ([]model.Collection, error) {
	all, err := c.collections.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.Collection
	for _, col := range all {
		for _, id := range col.EventIDs {
			if id == eventID {
				out = append(out, col)
				break
			}
		}
	}
	return out, nil
}

// SaveLabel derives the save-button label: "All Saves" when the event is
// unsaved, the collection name when it lives in exactly one, and a count
// otherwise.
func (c *Controller) SaveLabel(ctx context.Context, eventID string) (string, error) {
	containing, err := c.CollectionsContaining(ctx, eventID)
	if err != nil {
		return "", err
	}
	switch len(containing) {
	case 0:
		return "All Saves", nil
	case 1:
		return containing[0].Name, nil
	default:
		return fmt.Sprintf("%d Collections", len(containing)), nil
	}
}

func (c *Controller) begin(kind, eventID, collectionID string) Action {
	a := &Action{
		ID:           uuid.NewString(),
		Kind:         kind,
		EventID:      eventID,
		CollectionID: collectionID,
		State:        StatePending,
		StartedAt:    time.Now(),
	}
	c.mu.Lock()
	c.actions[a.ID] = a
	c.mu.Unlock()
	return *a
}

// resolve moves the action to its terminal state. The stored copy is
// updated so pollers see the same resolution the caller got.
func (c *Controller) resolve(action Action, collectionID string, err error) Action {
	c.mu.Lock()
	defer c.mu.Unlock()
	a := c.actions[action.ID]
	if collectionID != "" {
		a.CollectionID = collectionID
	}
	a.ResolvedAt = time.Now()
	if err != nil {
		a.State = StateFailed
		a.Error = err.Error()
	} else {
		a.State = StateSucceeded
	}
	return *a
}
