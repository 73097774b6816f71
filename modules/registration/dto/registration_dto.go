package dto

import (
	"time"

	"community-events-api/modules/registration/entity"
)

// ===================== Request DTOs =====================

// RegisterRequest is the volunteer's application payload
type RegisterRequest struct {
	Sex    string `json:"sex" validate:"required"`
	Skills string `json:"skills" validate:"required"`
	Age    int    `json:"age" validate:"required,gte=16"`
}

// ===================== Response DTOs =====================

// RegistrationResponse for a single registration
type RegistrationResponse struct {
	ID          string    `json:"id"`
	EventID     string    `json:"event_id"`
	VolunteerID string    `json:"volunteer_id"`
	Sex         string    `json:"sex"`
	Skills      string    `json:"skills"`
	Age         int       `json:"age"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// RegisterResult distinguishes a fresh registration from an idempotent
// repeat without making the repeat an error.
type RegisterResult struct {
	Registration      *RegistrationResponse `json:"registration"`
	AlreadyRegistered bool                  `json:"already_registered"`
}

// RegistrationStatusResponse for the isRegistered lookup
type RegistrationStatusResponse struct {
	EventID    string `json:"event_id"`
	Registered bool   `json:"registered"`
}

// PaginatedRegistrationResponse for the event roster
type PaginatedRegistrationResponse struct {
	Items      []RegistrationResponse `json:"items"`
	TotalItems int                    `json:"total_items"`
	PageNumber int                    `json:"page_number"`
	PageSize   int                    `json:"page_size"`
}

// ===================== Mapper Functions =====================

func ToRegistrationResponse(r *entity.Registration) *RegistrationResponse {
	return &RegistrationResponse{
		ID:          r.ID.String(),
		EventID:     r.EventID.String(),
		VolunteerID: r.VolunteerID.String(),
		Sex:         r.Sex,
		Skills:      r.Skills,
		Age:         r.Age,
		SubmittedAt: r.SubmittedAt,
	}
}
