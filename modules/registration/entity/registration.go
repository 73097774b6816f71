package entity

import (
	"time"

	coreEntity "community-events-api/core/entity"

	"github.com/google/uuid"
)

// Registration is a volunteer's enrollment for an event. The store enforces
// at most one row per (event_id, volunteer_id).
type Registration struct {
	ID          uuid.UUID `db:"id" json:"id"`
	EventID     uuid.UUID `db:"event_id" json:"event_id"`
	VolunteerID uuid.UUID `db:"volunteer_id" json:"volunteer_id"`
	Sex         string    `db:"sex" json:"sex"`
	Skills      string    `db:"skills" json:"skills"`
	Age         int       `db:"age" json:"age"`
	SubmittedAt time.Time `db:"submitted_at" json:"submitted_at"`
}

type PaginatedRegistrationEntity = coreEntity.Pagination[Registration]
