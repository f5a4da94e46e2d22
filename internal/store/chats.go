package store

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/eventure/eventure_api/internal/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const chatTitleLimit = 50

// Canned refinement replies; content is cosmetic, only the transcript
// discipline matters.
var assistantReplies = []string{
	`I found some great events related to %q. Here are the top matches!`,
	"These events look perfect for what you're looking for. Would you like me to refine the search?",
	"I've curated a selection of events that match your interests. Let me know if you'd like different options.",
	`Based on your search for %q, here are some highly-rated events you might enjoy.`,
}

// Chats owns the search-refinement sessions. Transcripts are append-only
// and mutated with the same lock discipline as the collection store.
type Chats struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]*model.Chat
	now   func() time.Time
	pick  func(n int) int
}

func NewChats() *Chats {
	return &Chats{
		byID: make(map[string]*model.Chat),
		now:  time.Now,
		pick: rand.Intn,
	}
}

// GetAll returns chats newest-first.
func (s *Chats) GetAll(ctx context.Context) ([]model.Chat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Chat, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, snapshotChat(s.byID[id]))
	}
	return out, nil
}

func (s *Chats) GetByID(ctx context.Context, id string) (model.Chat, error) {
	if err := ctx.Err(); err != nil {
		return model.Chat{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byID[id]
	if !ok {
		return model.Chat{}, errors.Wrapf(ErrNotFound, "chat %q", id)
	}
	return snapshotChat(c), nil
}

// Create starts an empty chat session.
func (s *Chats) Create(ctx context.Context, title string) (model.Chat, error) {
	if err := ctx.Err(); err != nil {
		return model.Chat{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.newChatLocked(title)
	return snapshotChat(c), nil
}

// SendMessage appends the user's message and a canned assistant reply as one
// atomic step. With no chat id a new session is started, titled from the
// message content.
func (s *Chats) SendMessage(ctx context.Context, input model.ChatInput) (model.Chat, model.Message, error) {
	if err := ctx.Err(); err != nil {
		return model.Chat{}, model.Message{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var c *model.Chat
	if input.ChatID != "" {
		var ok bool
		c, ok = s.byID[input.ChatID]
		if !ok {
			return model.Chat{}, model.Message{}, errors.Wrapf(ErrNotFound, "chat %q", input.ChatID)
		}
	} else {
		title := input.Content
		if runes := []rune(title); len(runes) > chatTitleLimit {
			title = string(runes[:chatTitleLimit])
		}
		c = s.newChatLocked(title)
	}

	now := s.now()
	userMsg := model.Message{
		ID:        uuid.NewString(),
		Role:      model.RoleUser,
		Content:   input.Content,
		Timestamp: now,
	}
	reply := model.Message{
		ID:        uuid.NewString(),
		Role:      model.RoleAssistant,
		Content:   s.assistantReply(input.Content),
		Timestamp: now,
	}
	c.Messages = append(c.Messages, userMsg, reply)
	c.UpdatedAt = now
	return snapshotChat(c), reply, nil
}

func (s *Chats) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[id]; !ok {
		return errors.Wrapf(ErrNotFound, "chat %q", id)
	}
	delete(s.byID, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// newChatLocked creates a chat and prepends it so listings are newest-first.
// Callers must hold the store lock.
func (s *Chats) newChatLocked(title string) *model.Chat {
	now := s.now()
	c := &model.Chat{
		ID:        uuid.NewString(),
		Title:     title,
		Date:      now.Format("2006-01-02"),
		Messages:  []model.Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.order = append([]string{c.ID}, s.order...)
	s.byID[c.ID] = c
	return c
}

func (s *Chats) assistantReply(query string) string {
	reply := assistantReplies[s.pick(len(assistantReplies))]
	if strings.Contains(reply, "%q") {
		return fmt.Sprintf(reply, query)
	}
	return reply
}

func snapshotChat(c *model.Chat) model.Chat {
	out := *c
	out.Messages = append([]model.Message{}, c.Messages...)
	return out
}
