package model

import "time"

// Crew target-size buckets and their concrete capacities.
const (
	TargetSizeSmall  = "3-4"
	TargetSizeMedium = "5-6"
	TargetSizeLarge  = "7+"
)

// Crew statuses. EventPassed is asserted externally from the event date;
// the other three are derived from currentSize vs maxSize.
const (
	CrewStatusOpen        = "open"
	CrewStatusAlmostFull  = "almost-full"
	CrewStatusFull        = "full"
	CrewStatusEventPassed = "event-passed"
)

// CrewMember is a participant in a crew.
type CrewMember struct {
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Age       int       `json:"age,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	JoinedAt  time.Time `json:"joined_at"`
}

// Crew is a social group formed around attending one event together.
// CurrentSize always equals 1 (the creator) + len(Members), and Status is a
// pure function of CurrentSize vs MaxSize unless the event has passed.
type Crew struct {
	ID                string       `json:"id"`
	EventID           string       `json:"event_id"`
	EventName         string       `json:"event_name"`
	EventImage        string       `json:"event_image,omitempty"`
	EventDate         time.Time    `json:"event_date"`
	EventLocation     string       `json:"event_location,omitempty"`
	CreatedBy         CrewMember   `json:"created_by"`
	Members           []CrewMember `json:"members"`
	TargetSize        string       `json:"target_size"`
	CurrentSize       int          `json:"current_size"`
	MaxSize           int          `json:"max_size"`
	AgePreference     string       `json:"age_preference,omitempty"`
	GenderPreference  string       `json:"gender_preference,omitempty"`
	Status            string       `json:"status"`
	ChatID            string       `json:"chat_id"`
	HasUnreadMessages bool         `json:"has_unread_messages"`
	CreatedAt         time.Time    `json:"created_at"`
	Description       string       `json:"description,omitempty"`
}

type CreateCrewInput struct {
	EventID          string `json:"event_id" validate:"required"`
	TargetSize       string `json:"target_size" validate:"required,targetsize"`
	AgePreference    string `json:"age_preference" validate:"omitempty,oneof=similar any"`
	GenderPreference string `json:"gender_preference" validate:"omitempty,oneof=same any"`
	Description      string `json:"description" validate:"max=250"`
}

// JoinCrewRequest carries the joining member's display fields; the user id
// comes from the request context.
type JoinCrewRequest struct {
	UserName  string `json:"user_name" validate:"required"`
	AvatarURL string `json:"avatar_url"`
	Age       int    `json:"age" validate:"omitempty,gte=0"`
	Bio       string `json:"bio" validate:"max=250"`
}

// CrewFilters narrows crew listings. Empty criteria are not applied.
type CrewFilters struct {
	EventID    string
	Status     []string
	TargetSize []string
	DateFrom   *time.Time
	DateTo     *time.Time
}
