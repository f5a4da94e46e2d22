package model

import "time"

// Collection is a named set of saved events owned by a user. EventIDs is
// logically a set; the store guarantees no duplicate ids accumulate.
// LikeCount, FollowerIDs and CollaboratorIDs are derived from identity sets
// so repeated actions by the same actor stay idempotent.
type Collection struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	CoverImage      string    `json:"cover_image,omitempty"`
	IsPublic        bool      `json:"is_public"`
	IsCollaborative bool      `json:"is_collaborative"`
	EventIDs        []string  `json:"event_ids"`
	OwnerID         string    `json:"owner_id"`
	OwnerName       string    `json:"owner_name,omitempty"`
	OwnerAvatar     string    `json:"owner_avatar,omitempty"`
	CollaboratorIDs []string  `json:"collaborator_ids"`
	FollowerIDs     []string  `json:"follower_ids"`
	LikerIDs        []string  `json:"liker_ids"`
	LikeCount       int       `json:"like_count"`
	CommentCount    int       `json:"comment_count"`
	ViewCount       int       `json:"view_count"`
	ShareLink       string    `json:"share_link,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// CuratedCollection is an editorially seeded board. It is read-only and has
// no owner; it is a distinct variant from a user Collection.
type CuratedCollection struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Tag         string   `json:"tag"`
	Image       string   `json:"image"`
	Description string   `json:"description,omitempty"`
	EventIDs    []string `json:"event_ids"`
}

// Board card variants.
const (
	BoardKindCurated = "curated"
	BoardKindUser    = "user"
)

// BoardCard is the tagged union rendered on the boards page. Exactly one of
// Curated or Collection is set, matching Kind.
type BoardCard struct {
	Kind       string             `json:"kind"`
	Curated    *CuratedCollection `json:"curated,omitempty"`
	Collection *Collection        `json:"collection,omitempty"`
}

// CollectionComment is a comment left on a public collection.
type CollectionComment struct {
	ID           string    `json:"id"`
	CollectionID string    `json:"collection_id"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name,omitempty"`
	UserAvatar   string    `json:"user_avatar,omitempty"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
}

type CreateCollectionInput struct {
	Name            string `json:"name" validate:"required,collectionname"`
	Description     string `json:"description" validate:"max=250"`
	IsPublic        *bool  `json:"is_public,omitempty"`
	IsCollaborative *bool  `json:"is_collaborative,omitempty"`
}

// UpdateCollectionInput carries a partial update. Nil fields are left
// untouched by the store.
type UpdateCollectionInput struct {
	Name            *string `json:"name,omitempty"`
	Description     *string `json:"description,omitempty"`
	CoverImage      *string `json:"cover_image,omitempty"`
	IsPublic        *bool   `json:"is_public,omitempty"`
	IsCollaborative *bool   `json:"is_collaborative,omitempty"`
}
