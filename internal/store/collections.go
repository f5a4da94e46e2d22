package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/eventure/eventure_api/internal/model"
	"github.com/google/uuid"
	"github.com/lucsky/cuid"
	"github.com/pkg/errors"
)

const (
	maxCollectionNameLen = 50
	maxDescriptionLen    = 250
)

// Collections owns the authoritative set of user collections for a session.
// Every mutation runs under the store lock so readers never observe a
// collection mid-mutation, and every accessor returns snapshots rather than
// aliases into the backing records.
type Collections struct {
	mu       sync.RWMutex
	order    []string
	byID     map[string]*model.Collection
	comments map[string][]model.CollectionComment
	now      func() time.Time
}

func NewCollections() *Collections {
	return &Collections{
		byID:     make(map[string]*model.Collection),
		comments: make(map[string][]model.CollectionComment),
		now:      time.Now,
	}
}

// SeedDefault installs the distinguished "All Saves" collection that acts as
// the quick-save target. It is a no-op when the store already has entries.
func (s *Collections) SeedDefault(ownerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.order) > 0 {
		return
	}
	now := s.now()
	c := &model.Collection{
		ID:          "1",
		Name:        "All Saves",
		Description: "All your saved events",
		OwnerID:     ownerID,
		EventIDs:    []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.order = append(s.order, c.ID)
	s.byID[c.ID] = c
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if len(name) > maxCollectionNameLen {
		return &ValidationError{Field: "name", Reason: "must be 50 characters or less"}
	}
	return nil
}

func validateDescription(desc string) error {
	if len(desc) > maxDescriptionLen {
		return &ValidationError{Field: "description", Reason: "must be 250 characters or less"}
	}
	return nil
}

// Create adds a new collection with empty membership and zero counters.
// Visibility defaults to private unless the input says otherwise.
func (s *Collections) Create(ctx context.Context, ownerID string, input model.CreateCollectionInput) (model.Collection, error) {
	if err := ctx.Err(); err != nil {
		return model.Collection{}, err
	}
	if err := validateName(input.Name); err != nil {
		return model.Collection{}, err
	}
	if err := validateDescription(input.Description); err != nil {
		return model.Collection{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	c := &model.Collection{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		OwnerID:     ownerID,
		EventIDs:    []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.IsPublic != nil {
		c.IsPublic = *input.IsPublic
	}
	if input.IsCollaborative != nil {
		c.IsCollaborative = *input.IsCollaborative
	}
	s.order = append(s.order, c.ID)
	s.byID[c.ID] = c
	return s.snapshot(c), nil
}

// GetAll returns every collection in creation order.
func (s *Collections) GetAll(ctx context.Context) ([]model.Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Collection, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.snapshot(s.byID[id]))
	}
	return out, nil
}

func (s *Collections) GetByID(ctx context.Context, id string) (model.Collection, error) {
	if err := ctx.Err(); err != nil {
		return model.Collection{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byID[id]
	if !ok {
		return model.Collection{}, errors.Wrapf(ErrNotFound, "collection %q", id)
	}
	return s.snapshot(c), nil
}

// Default returns the quick-save target: by convention the first collection.
func (s *Collections) Default(ctx context.Context) (model.Collection, error) {
	if err := ctx.Err(); err != nil {
		return model.Collection{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.order) == 0 {
		return model.Collection{}, ErrNoDefaultCollection
	}
	return s.snapshot(s.byID[s.order[0]]), nil
}

// Update merges the provided fields and bumps the modification timestamp.
// A name update is held to the same constraints as Create.
func (s *Collections) Update(ctx context.Context, id string, input model.UpdateCollectionInput) (model.Collection, error) {
	if err := ctx.Err(); err != nil {
		return model.Collection{}, err
	}
	if input.Name != nil {
		if err := validateName(*input.Name); err != nil {
			return model.Collection{}, err
		}
	}
	if input.Description != nil {
		if err := validateDescription(*input.Description); err != nil {
			return model.Collection{}, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[id]
	if !ok {
		return model.Collection{}, errors.Wrapf(ErrNotFound, "collection %q", id)
	}
	if input.Name != nil {
		c.Name = *input.Name
	}
	if input.Description != nil {
		c.Description = *input.Description
	}
	if input.CoverImage != nil {
		c.CoverImage = *input.CoverImage
	}
	if input.IsPublic != nil {
		c.IsPublic = *input.IsPublic
	}
	if input.IsCollaborative != nil {
		c.IsCollaborative = *input.IsCollaborative
	}
	c.UpdatedAt = s.now()
	return s.snapshot(c), nil
}

func (s *Collections) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return errors.Wrapf(ErrNotFound, "collection %q", id)
	}
	delete(s.byID, id)
	delete(s.comments, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// AddEvent inserts eventID into the collection's membership set. Adding an
// event that is already present is a successful no-op and does not bump the
// modification timestamp.
func (s *Collections) AddEvent(ctx context.Context, collectionID, eventID string) (model.Collection, error) {
	if err := ctx.Err(); err != nil {
		return model.Collection{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[collectionID]
	if !ok {
		return model.Collection{}, errors.Wrapf(ErrNotFound, "collection %q", collectionID)
	}
	if !containsString(c.EventIDs, eventID) {
		c.EventIDs = append(c.EventIDs, eventID)
		c.UpdatedAt = s.now()
	}
	return s.snapshot(c), nil
}

// RemoveEvent drops eventID from the membership set. Removing an absent
// event is a successful no-op.
func (s *Collections) RemoveEvent(ctx context.Context, collectionID, eventID string) (model.Collection, error) {
	if err := ctx.Err(); err != nil {
		return model.Collection{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[collectionID]
	if !ok {
		return model.Collection{}, errors.Wrapf(ErrNotFound, "collection %q", collectionID)
	}
	if i := indexOfString(c.EventIDs, eventID); i >= 0 {
		c.EventIDs = append(c.EventIDs[:i], c.EventIDs[i+1:]...)
		c.UpdatedAt = s.now()
	}
	return s.snapshot(c), nil
}

// Like records userID in the liker set. The like count is derived from the
// set, so liking twice from the same user cannot double-count.
func (s *Collections) Like(ctx context.Context, collectionID, userID string) (model.Collection, error) {
	if err := ctx.Err(); err != nil {
		return model.Collection{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[collectionID]
	if !ok {
		return model.Collection{}, errors.Wrapf(ErrNotFound, "collection %q", collectionID)
	}
	if !containsString(c.LikerIDs, userID) {
		c.LikerIDs = append(c.LikerIDs, userID)
		c.UpdatedAt = s.now()
	}
	return s.snapshot(c), nil
}

func (s *Collections) Unlike(ctx context.Context, collectionID, userID string) (model.Collection, error) {
	if err := ctx.Err(); err != nil {
		return model.Collection{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[collectionID]
	if !ok {
		return model.Collection{}, errors.Wrapf(ErrNotFound, "collection %q", collectionID)
	}
	if i := indexOfString(c.LikerIDs, userID); i >= 0 {
		c.LikerIDs = append(c.LikerIDs[:i], c.LikerIDs[i+1:]...)
		c.UpdatedAt = s.now()
	}
	return s.snapshot(c), nil
}

func (s *Collections) AddCollaborator(ctx context.Context, collectionID, userID string) (model.Collection, error) {
	if err := ctx.Err(); err != nil {
		return model.Collection{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[collectionID]
	if !ok {
		return model.Collection{}, errors.Wrapf(ErrNotFound, "collection %q", collectionID)
	}
	if !containsString(c.CollaboratorIDs, userID) {
		c.CollaboratorIDs = append(c.CollaboratorIDs, userID)
		c.UpdatedAt = s.now()
	}
	return s.snapshot(c), nil
}

func (s *Collections) RemoveCollaborator(ctx context.Context, collectionID, userID string) (model.Collection, error) {
	if err := ctx.Err(); err != nil {
		return model.Collection{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[collectionID]
	if !ok {
		return model.Collection{}, errors.Wrapf(ErrNotFound, "collection %q", collectionID)
	}
	if i := indexOfString(c.CollaboratorIDs, userID); i >= 0 {
		c.CollaboratorIDs = append(c.CollaboratorIDs[:i], c.CollaboratorIDs[i+1:]...)
		c.UpdatedAt = s.now()
	}
	return s.snapshot(c), nil
}

// AddComment appends a comment; repeated identical comments are distinct
// entries, each with its own id.
func (s *Collections) AddComment(ctx context.Context, collectionID, userID, content string) (model.CollectionComment, error) {
	if err := ctx.Err(); err != nil {
		return model.CollectionComment{}, err
	}
	if strings.TrimSpace(content) == "" {
		return model.CollectionComment{}, &ValidationError{Field: "content", Reason: "must not be empty"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[collectionID]
	if !ok {
		return model.CollectionComment{}, errors.Wrapf(ErrNotFound, "collection %q", collectionID)
	}
	comment := model.CollectionComment{
		ID:           uuid.NewString(),
		CollectionID: collectionID,
		UserID:       userID,
		Content:      content,
		CreatedAt:    s.now(),
	}
	s.comments[collectionID] = append(s.comments[collectionID], comment)
	c.UpdatedAt = comment.CreatedAt
	return comment, nil
}

func (s *Collections) Comments(ctx context.Context, collectionID string) ([]model.CollectionComment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.byID[collectionID]; !ok {
		return nil, errors.Wrapf(ErrNotFound, "collection %q", collectionID)
	}
	return append([]model.CollectionComment(nil), s.comments[collectionID]...), nil
}

// Share assigns a share token on first call and returns the same token on
// every call after that.
func (s *Collections) Share(ctx context.Context, collectionID string) (model.Collection, error) {
	if err := ctx.Err(); err != nil {
		return model.Collection{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[collectionID]
	if !ok {
		return model.Collection{}, errors.Wrapf(ErrNotFound, "collection %q", collectionID)
	}
	if c.ShareLink == "" {
		c.ShareLink = "https://eventure.app/c/" + cuid.Slug()
		c.UpdatedAt = s.now()
	}
	return s.snapshot(c), nil
}

// RecordView bumps the display-level view counter.
func (s *Collections) RecordView(ctx context.Context, collectionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.byID[collectionID]
	if !ok {
		return errors.Wrapf(ErrNotFound, "collection %q", collectionID)
	}
	c.ViewCount++
	return nil
}

// snapshot copies the record and derives the display counters from their
// backing sets. Callers must hold the store lock.
func (s *Collections) snapshot(c *model.Collection) model.Collection {
	out := *c
	out.EventIDs = append([]string{}, c.EventIDs...)
	out.CollaboratorIDs = append([]string(nil), c.CollaboratorIDs...)
	out.FollowerIDs = append([]string(nil), c.FollowerIDs...)
	out.LikerIDs = append([]string(nil), c.LikerIDs...)
	out.LikeCount = len(c.LikerIDs)
	out.CommentCount = len(s.comments[c.ID])
	return out
}

func containsString(list []string, s string) bool {
	return indexOfString(list, s) >= 0
}

func indexOfString(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return -1
}
