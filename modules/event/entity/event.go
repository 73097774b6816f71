package entity

import (
	"time"

	coreEntity "community-events-api/core/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// EventStatus is the moderation state of an event. Pending is the initial
// state; approved and rejected are terminal.
type EventStatus string

const (
	EventStatusPending  EventStatus = "pending"
	EventStatusApproved EventStatus = "approved"
	EventStatusRejected EventStatus = "rejected"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusPending, EventStatusApproved, EventStatusRejected:
		return true
	}
	return false
}

// Event is a community event submitted by an organizer.
type Event struct {
	coreEntity.BaseEntity
	OrganizerID      uuid.UUID      `db:"organizer_id" json:"organizer_id"`
	Title            string         `db:"title" json:"title"`
	Slug             string         `db:"slug" json:"slug"`
	ShortDescription string         `db:"short_description" json:"short_description"`
	LongDescription  *string        `db:"long_description" json:"long_description,omitempty"`
	Requirements     pq.StringArray `db:"requirements" json:"requirements"`
	ItemsToBring     pq.StringArray `db:"items_to_bring" json:"items_to_bring"`
	Location         string         `db:"location" json:"location"`
	ImageURL         *string        `db:"image_url" json:"image_url,omitempty"`
	Capacity         *int           `db:"capacity" json:"capacity,omitempty"`
	Status           EventStatus    `db:"status" json:"status"`
	StartDate        time.Time      `db:"start_date" json:"start_date"`
	EndDate          *time.Time     `db:"end_date" json:"end_date,omitempty"`
}

type PaginatedEventEntity = coreEntity.Pagination[Event]
