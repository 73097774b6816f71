package entity

import (
	"time"

	"github.com/google/uuid"
)

// Like is one row of the (event, user) like set. Existence means "liked";
// there is no counter to drift.
type Like struct {
	EventID   uuid.UUID `db:"event_id" json:"event_id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Comment is an append-only entry in an event's thread. Comments are never
// mutated once persisted.
type Comment struct {
	ID         uuid.UUID `db:"id" json:"id"`
	EventID    uuid.UUID `db:"event_id" json:"event_id"`
	AuthorID   uuid.UUID `db:"author_id" json:"author_id"`
	AuthorName string    `db:"author_name" json:"author_name"`
	Avatar     *string   `db:"avatar" json:"avatar,omitempty"`
	Body       string    `db:"body" json:"body"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
