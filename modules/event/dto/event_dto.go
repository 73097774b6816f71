package dto

import (
	"time"

	"community-events-api/modules/event/entity"
	"community-events-api/modules/event/timing"
)

// ===================== Request DTOs =====================

// CreateEventRequest for submitting a new event
type CreateEventRequest struct {
	Title            string     `json:"title" validate:"required,max=255"`
	ShortDescription string     `json:"short_description" validate:"required,max=500"`
	LongDescription  string     `json:"long_description"`
	Requirements     []string   `json:"requirements"`
	ItemsToBring     []string   `json:"items_to_bring"`
	Location         string     `json:"location" validate:"required,max=255"`
	ImageURL         string     `json:"image_url"`
	Capacity         *int       `json:"capacity" validate:"omitempty,min=0"`
	StartDate        time.Time  `json:"start_date" validate:"required"`
	EndDate          *time.Time `json:"end_date"`
}

// UpdateEventRequest for organizer edits while the event is still pending
type UpdateEventRequest struct {
	Title            string     `json:"title" validate:"omitempty,max=255"`
	ShortDescription string     `json:"short_description" validate:"omitempty,max=500"`
	LongDescription  string     `json:"long_description"`
	Requirements     []string   `json:"requirements"`
	ItemsToBring     []string   `json:"items_to_bring"`
	Location         string     `json:"location" validate:"omitempty,max=255"`
	ImageURL         string     `json:"image_url"`
	Capacity         *int       `json:"capacity" validate:"omitempty,min=0"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
}

// ===================== Response DTOs =====================

// EventResponse for event listings; timing is recomputed on every read
type EventResponse struct {
	ID               string        `json:"id"`
	OrganizerID      string        `json:"organizer_id"`
	Title            string        `json:"title"`
	Slug             string        `json:"slug"`
	ShortDescription string        `json:"short_description"`
	LongDescription  string        `json:"long_description,omitempty"`
	Requirements     []string      `json:"requirements"`
	ItemsToBring     []string      `json:"items_to_bring"`
	Location         string        `json:"location"`
	ImageURL         string        `json:"image_url,omitempty"`
	Capacity         *int          `json:"capacity,omitempty"`
	Status           string        `json:"status"`
	StartDate        time.Time     `json:"start_date"`
	EndDate          *time.Time    `json:"end_date,omitempty"`
	Timing           timing.Timing `json:"timing"`
	CreatedAt        time.Time     `json:"created_at"`
}

// EventDetailResponse adds the engagement and registration aggregates
type EventDetailResponse struct {
	EventResponse
	LikeCount         int               `json:"like_count"`
	RegistrationCount int               `json:"registration_count"`
	Comments          []CommentResponse `json:"comments"`
}

// CommentResponse mirrors the engagement comment shape for the detail view
type CommentResponse struct {
	ID         string    `json:"id"`
	EventID    string    `json:"event_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Avatar     string    `json:"avatar,omitempty"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

// PaginatedEventResponse for paginated event lists
type PaginatedEventResponse struct {
	Items      []EventResponse `json:"items"`
	TotalItems int             `json:"total_items"`
	PageNumber int             `json:"page_number"`
	PageSize   int             `json:"page_size"`
}

// ===================== Mapper Functions =====================

// ToEventResponse maps entity to DTO, annotating live timing for now.
func ToEventResponse(e *entity.Event, now time.Time) *EventResponse {
	resp := &EventResponse{
		ID:               e.ID.String(),
		OrganizerID:      e.OrganizerID.String(),
		Title:            e.Title,
		Slug:             e.Slug,
		ShortDescription: e.ShortDescription,
		Requirements:     []string(e.Requirements),
		ItemsToBring:     []string(e.ItemsToBring),
		Location:         e.Location,
		Capacity:         e.Capacity,
		Status:           string(e.Status),
		StartDate:        e.StartDate,
		EndDate:          e.EndDate,
		Timing:           timing.ComputeTiming(e.StartDate, e.EndDate, now),
		CreatedAt:        e.CreatedAt,
	}

	if e.LongDescription != nil {
		resp.LongDescription = *e.LongDescription
	}
	if e.ImageURL != nil {
		resp.ImageURL = *e.ImageURL
	}
	if resp.Requirements == nil {
		resp.Requirements = []string{}
	}
	if resp.ItemsToBring == nil {
		resp.ItemsToBring = []string{}
	}

	return resp
}
