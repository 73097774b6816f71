package repository

import (
	"context"
	"database/sql"

	"community-events-api/core/database"
	"community-events-api/core/logger"
	"community-events-api/core/params"
	"community-events-api/modules/event/entity"

	"github.com/google/uuid"
)

// EventRepository is the durable event store. Status transitions go through
// UpdateStatus, which is a single atomic compare-and-set.
type EventRepository struct {
	DB database.IDatabase
}

// NewEventRepository creates a new repository instance
func NewEventRepository(db database.IDatabase) *EventRepository {
	return &EventRepository{DB: db}
}

// EventRepositoryInterface defines the store contract
type EventRepositoryInterface interface {
	CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error)
	GetEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*entity.Event, error)
	ListEventsByStatus(ctx context.Context, status *entity.EventStatus, p params.QueryParams) (*entity.PaginatedEventEntity, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EventStatus) (*entity.Event, error)
	UpdateDetails(ctx context.Context, event *entity.Event) (bool, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) (bool, error)
	CountRegistrations(ctx context.Context, eventID uuid.UUID) (int, error)
}

const eventColumns = `
	id, organizer_id, title, slug, short_description, long_description,
	requirements, items_to_bring, location, image_url, capacity, status,
	start_date, end_date, created_at, updated_at`

func (r *EventRepository) CreateEvent(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (organizer_id, title, slug, short_description, long_description,
		                    requirements, items_to_bring, location, image_url, capacity,
		                    status, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + eventColumns

	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.OrganizerID, event.Title, event.Slug, event.ShortDescription, event.LongDescription,
		event.Requirements, event.ItemsToBring, event.Location, event.ImageURL, event.Capacity,
		entity.EventStatusPending, event.StartDate, event.EndDate)
	if err != nil {
		logger.Error("EventRepository:CreateEvent", err)
		return nil, err
	}

	return &created, nil
}

func (r *EventRepository) GetEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetEventByID", err)
		return nil, err
	}

	return &event, nil
}

func (r *EventRepository) GetEventBySlug(ctx context.Context, slug string) (*entity.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = $1`

	var event entity.Event
	err := r.DB.GetContext(ctx, &event, query, slug)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:GetEventBySlug", err)
		return nil, err
	}

	return &event, nil
}

func (r *EventRepository) ListEventsByStatus(ctx context.Context, status *entity.EventStatus, p params.QueryParams) (*entity.PaginatedEventEntity, error) {
	baseQuery := `FROM events`
	args := []any{}
	if status != nil {
		baseQuery += ` WHERE status = $1`
		args = append(args, *status)
	}

	var totalItems int
	if err := r.DB.GetContext(ctx, &totalItems, `SELECT COUNT(*) `+baseQuery, args...); err != nil {
		logger.Error("EventRepository:ListEventsByStatus:Count", err)
		return nil, err
	}

	query := `SELECT ` + eventColumns + ` ` + baseQuery + `
		ORDER BY start_date ASC, created_at DESC`
	if status != nil {
		query += ` LIMIT $2 OFFSET $3`
	} else {
		query += ` LIMIT $1 OFFSET $2`
	}
	args = append(args, p.PageSize, p.Offset())

	var events []entity.Event
	if err := r.DB.SelectContext(ctx, &events, query, args...); err != nil {
		logger.Error("EventRepository:ListEventsByStatus:Select", err)
		return nil, err
	}

	return &entity.PaginatedEventEntity{
		Items:      events,
		TotalItems: totalItems,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}, nil
}

// UpdateStatus performs the moderation compare-and-set: the transition only
// succeeds while the current status is pending. Returns (nil, nil) when the
// event is missing or has already left pending; callers re-read to tell the
// two apart.
func (r *EventRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.EventStatus) (*entity.Event, error) {
	query := `
		UPDATE events
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status = $3
		RETURNING ` + eventColumns

	var updated entity.Event
	err := r.DB.GetContext(ctx, &updated, query, id, status, entity.EventStatusPending)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("EventRepository:UpdateStatus", err)
		return nil, err
	}

	return &updated, nil
}

// UpdateDetails applies organizer edits. Only pending events are editable, so
// the condition rides along in the statement; false means no row matched.
func (r *EventRepository) UpdateDetails(ctx context.Context, event *entity.Event) (bool, error) {
	query := `
		UPDATE events
		SET title = $2, slug = $3, short_description = $4, long_description = $5,
		    requirements = $6, items_to_bring = $7, location = $8, image_url = $9,
		    capacity = $10, start_date = $11, end_date = $12, updated_at = NOW()
		WHERE id = $1 AND status = $13
		RETURNING id`

	var id uuid.UUID
	err := r.DB.GetContext(ctx, &id, query,
		event.ID, event.Title, event.Slug, event.ShortDescription, event.LongDescription,
		event.Requirements, event.ItemsToBring, event.Location, event.ImageURL,
		event.Capacity, event.StartDate, event.EndDate, entity.EventStatusPending)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		logger.Error("EventRepository:UpdateDetails", err)
		return false, err
	}

	return true, nil
}

// DeleteEvent removes the event row; registrations, likes and comments go
// with it through the ON DELETE CASCADE foreign keys.
func (r *EventRepository) DeleteEvent(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `DELETE FROM events WHERE id = $1 RETURNING id`

	var deleted uuid.UUID
	err := r.DB.GetContext(ctx, &deleted, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		logger.Error("EventRepository:DeleteEvent", err)
		return false, err
	}

	return true, nil
}

func (r *EventRepository) CountRegistrations(ctx context.Context, eventID uuid.UUID) (int, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM registrations WHERE event_id = $1`, eventID)
	if err != nil {
		logger.Error("EventRepository:CountRegistrations", err)
		return 0, err
	}
	return count, nil
}
