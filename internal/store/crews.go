package store

import (
	"context"
	"sync"
	"time"

	"github.com/eventure/eventure_api/internal/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// CrewStatus derives a crew's status from its size alone. Event-passed is
// asserted separately from the event date and never derived here.
func CrewStatus(currentSize, maxSize int) string {
	switch {
	case currentSize >= maxSize:
		return model.CrewStatusFull
	case currentSize >= maxSize-1:
		return model.CrewStatusAlmostFull
	default:
		return model.CrewStatusOpen
	}
}

// MaxSizeFor maps a target-size bucket onto its concrete capacity.
func MaxSizeFor(targetSize string) int {
	switch targetSize {
	case model.TargetSizeSmall:
		return 4
	case model.TargetSizeMedium:
		return 6
	default:
		return 8
	}
}

type crewRecord struct {
	crew        model.Crew
	eventPassed bool
}

// Crews owns the crews formed around events. Joins, leaves and status
// recomputation happen as one atomic step under the store lock.
type Crews struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*crewRecord
	now   func() time.Time
}

func NewCrews() *Crews {
	return &Crews{
		byID: make(map[string]*crewRecord),
		now:  time.Now,
	}
}

// Create forms a new crew around an event with the creator as its only
// member. The event fields are denormalized onto the crew for display.
func (s *Crews) Create(ctx context.Context, input model.CreateCrewInput, event model.Event, creator model.CrewMember) (model.Crew, error) {
	if err := ctx.Err(); err != nil {
		return model.Crew{}, err
	}
	maxSize := MaxSizeFor(input.TargetSize)

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	creator.JoinedAt = now
	eventDate, _ := time.Parse("2006-01-02", event.Date)
	crew := model.Crew{
		ID:               "crew_" + uuid.NewString(),
		EventID:          event.ID,
		EventName:        event.Name,
		EventImage:       event.Image,
		EventDate:        eventDate,
		EventLocation:    event.Location,
		CreatedBy:        creator,
		Members:          []model.CrewMember{},
		TargetSize:       input.TargetSize,
		CurrentSize:      1,
		MaxSize:          maxSize,
		AgePreference:    input.AgePreference,
		GenderPreference: input.GenderPreference,
		Status:           CrewStatus(1, maxSize),
		ChatID:           "chat_" + uuid.NewString(),
		CreatedAt:        now,
		Description:      input.Description,
	}
	s.order = append(s.order, crew.ID)
	s.byID[crew.ID] = &crewRecord{crew: crew}
	return snapshotCrew(s.byID[crew.ID]), nil
}

func (s *Crews) GetAll(ctx context.Context) ([]model.Crew, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Crew, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, snapshotCrew(s.byID[id]))
	}
	return out, nil
}

func (s *Crews) GetByID(ctx context.Context, id string) (model.Crew, error) {
	if err := ctx.Err(); err != nil {
		return model.Crew{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.byID[id]
	if !ok {
		return model.Crew{}, errors.Wrapf(ErrNotFound, "crew %q", id)
	}
	return snapshotCrew(rec), nil
}

// Join appends the member, bumps the size and recomputes the status as one
// atomic step. Joining a crew at capacity fails with ErrCrewFull and leaves
// the crew unchanged; a user already in the crew is a successful no-op.
func (s *Crews) Join(ctx context.Context, crewID string, member model.CrewMember) (model.Crew, error) {
	if err := ctx.Err(); err != nil {
		return model.Crew{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.byID[crewID]
	if !ok {
		return model.Crew{}, errors.Wrapf(ErrNotFound, "crew %q", crewID)
	}
	if crewHasMember(&rec.crew, member.UserID) {
		return snapshotCrew(rec), nil
	}
	if rec.crew.CurrentSize >= rec.crew.MaxSize {
		return model.Crew{}, errors.Wrapf(ErrCrewFull, "crew %q", crewID)
	}
	member.JoinedAt = s.now()
	rec.crew.Members = append(rec.crew.Members, member)
	rec.crew.CurrentSize = 1 + len(rec.crew.Members)
	rec.crew.Status = CrewStatus(rec.crew.CurrentSize, rec.crew.MaxSize)
	return snapshotCrew(rec), nil
}

// Leave removes the member and recomputes size and status. The creator
// cannot leave their own crew. Leaving a crew the user is not in is a
// successful no-op.
func (s *Crews) Leave(ctx context.Context, crewID, userID string) (model.Crew, error) {
	if err := ctx.Err(); err != nil {
		return model.Crew{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.byID[crewID]
	if !ok {
		return model.Crew{}, errors.Wrapf(ErrNotFound, "crew %q", crewID)
	}
	if rec.crew.CreatedBy.UserID == userID {
		return model.Crew{}, &ValidationError{Field: "user_id", Reason: "crew creator cannot leave"}
	}
	for i, m := range rec.crew.Members {
		if m.UserID == userID {
			rec.crew.Members = append(rec.crew.Members[:i], rec.crew.Members[i+1:]...)
			break
		}
	}
	rec.crew.CurrentSize = 1 + len(rec.crew.Members)
	rec.crew.Status = CrewStatus(rec.crew.CurrentSize, rec.crew.MaxSize)
	return snapshotCrew(rec), nil
}

// MarkEventPassed asserts the event-passed state for every crew whose event
// date is before now. Passed crews report event-passed regardless of size.
func (s *Crews) MarkEventPassed(ctx context.Context, now time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.byID {
		if !rec.crew.EventDate.IsZero() && rec.crew.EventDate.Before(now) {
			rec.eventPassed = true
		}
	}
	return nil
}

// GetByEvent returns the crews formed around one event, in creation order.
func (s *Crews) GetByEvent(ctx context.Context, eventID string) ([]model.Crew, error) {
	return s.Filter(ctx, model.CrewFilters{EventID: eventID})
}

// GetUserCrews returns the crews the user created or joined.
func (s *Crews) GetUserCrews(ctx context.Context, userID string) ([]model.Crew, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Crew
	for _, id := range s.order {
		rec := s.byID[id]
		if rec.crew.CreatedBy.UserID == userID || crewHasMember(&rec.crew, userID) {
			out = append(out, snapshotCrew(rec))
		}
	}
	return out, nil
}

// Filter narrows the crew listing conjunctively; empty criteria pass.
func (s *Crews) Filter(ctx context.Context, filters model.CrewFilters) ([]model.Crew, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Crew
	for _, id := range s.order {
		rec := s.byID[id]
		crew := snapshotCrew(rec)
		if filters.EventID != "" && crew.EventID != filters.EventID {
			continue
		}
		if len(filters.Status) > 0 && !containsString(filters.Status, crew.Status) {
			continue
		}
		if len(filters.TargetSize) > 0 && !containsString(filters.TargetSize, crew.TargetSize) {
			continue
		}
		if filters.DateFrom != nil && crew.EventDate.Before(*filters.DateFrom) {
			continue
		}
		if filters.DateTo != nil && crew.EventDate.After(*filters.DateTo) {
			continue
		}
		out = append(out, crew)
	}
	return out, nil
}

func crewHasMember(c *model.Crew, userID string) bool {
	if c.CreatedBy.UserID == userID {
		return true
	}
	for _, m := range c.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

func snapshotCrew(rec *crewRecord) model.Crew {
	out := rec.crew
	out.Members = append([]model.CrewMember{}, rec.crew.Members...)
	if rec.eventPassed {
		out.Status = model.CrewStatusEventPassed
	}
	return out
}
