package service

import (
	"context"
	"strings"
	"time"

	"community-events-api/core/constants"
	"community-events-api/core/errors"
	"community-events-api/core/params"
	"community-events-api/core/taskqueue"
	"community-events-api/core/utils"
	"community-events-api/modules/engagement/entity"
	"community-events-api/modules/event/dto"
	eventEntity "community-events-api/modules/event/entity"
	"community-events-api/modules/event/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// EngagementReader is the slice of the engagement store the detail view reads.
type EngagementReader interface {
	CountLikes(ctx context.Context, eventID uuid.UUID) (int, error)
	ListComments(ctx context.Context, eventID uuid.UUID) ([]entity.Comment, error)
}

// EventService handles event lifecycle business logic
type EventService struct {
	repo       repository.EventRepositoryInterface
	engagement EngagementReader
	tasks      taskqueue.Enqueuer
	now        func() time.Time
}

// EventServiceInterface defines the service contract
type EventServiceInterface interface {
	CreateEvent(ctx context.Context, organizerID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError)
	ListEvents(ctx context.Context, status *eventEntity.EventStatus, p params.QueryParams) (*dto.PaginatedEventResponse, *errors.AppError)
	GetEventDetail(ctx context.Context, eventID uuid.UUID) (*dto.EventDetailResponse, *errors.AppError)
	GetEventBySlug(ctx context.Context, slug string) (*dto.EventDetailResponse, *errors.AppError)
	UpdateEvent(ctx context.Context, eventID uuid.UUID, actor *utils.TokenClaims, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError)
	DeleteEvent(ctx context.Context, eventID uuid.UUID, actor *utils.TokenClaims) *errors.AppError
}

// NewEventService creates a new event service
func NewEventService(repo repository.EventRepositoryInterface, engagement EngagementReader, tasks taskqueue.Enqueuer) EventServiceInterface {
	return &EventService{
		repo:       repo,
		engagement: engagement,
		tasks:      tasks,
		now:        time.Now,
	}
}

// CreateEvent persists a new event in the pending state. Moderation decides
// everything after that.
func (s *EventService) CreateEvent(ctx context.Context, organizerID uuid.UUID, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	if req.EndDate != nil && !req.EndDate.After(req.StartDate) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "end_date: must be after start_date", nil)
	}

	event := &eventEntity.Event{
		OrganizerID:      organizerID,
		Title:            strings.TrimSpace(req.Title),
		Slug:             slug.Make(req.Title) + "-" + strings.ToLower(utils.GenerateID()),
		ShortDescription: req.ShortDescription,
		Requirements:     req.Requirements,
		ItemsToBring:     req.ItemsToBring,
		Location:         req.Location,
		Capacity:         req.Capacity,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
	}
	if req.LongDescription != "" {
		event.LongDescription = &req.LongDescription
	}
	if req.ImageURL != "" {
		event.ImageURL = &req.ImageURL
	}

	created, err := s.repo.CreateEvent(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to create event", err)
	}

	return dto.ToEventResponse(created, s.now()), nil
}

// ListEvents returns a page of events, each annotated with live timing.
func (s *EventService) ListEvents(ctx context.Context, status *eventEntity.EventStatus, p params.QueryParams) (*dto.PaginatedEventResponse, *errors.AppError) {
	page, err := s.repo.ListEventsByStatus(ctx, status, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list events", err)
	}

	now := s.now()
	items := make([]dto.EventResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *dto.ToEventResponse(&page.Items[i], now))
	}

	return &dto.PaginatedEventResponse{
		Items:      items,
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}, nil
}

// GetEventDetail assembles the full detail view: event, timing, like count,
// registration count and the comment thread. All aggregates are recomputed
// reads, never stored counters.
func (s *EventService) GetEventDetail(ctx context.Context, eventID uuid.UUID) (*dto.EventDetailResponse, *errors.AppError) {
	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	likeCount, err := s.engagement.CountLikes(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to count likes", err)
	}

	registrationCount, err := s.repo.CountRegistrations(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to count registrations", err)
	}

	comments, err := s.engagement.ListComments(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list comments", err)
	}

	detail := &dto.EventDetailResponse{
		EventResponse:     *dto.ToEventResponse(event, s.now()),
		LikeCount:         likeCount,
		RegistrationCount: registrationCount,
		Comments:          make([]dto.CommentResponse, 0, len(comments)),
	}
	for i := range comments {
		c := &comments[i]
		resp := dto.CommentResponse{
			ID:         c.ID.String(),
			EventID:    c.EventID.String(),
			AuthorID:   c.AuthorID.String(),
			AuthorName: c.AuthorName,
			Body:       c.Body,
			CreatedAt:  c.CreatedAt,
		}
		if c.Avatar != nil {
			resp.Avatar = *c.Avatar
		}
		detail.Comments = append(detail.Comments, resp)
	}

	return detail, nil
}

// GetEventBySlug resolves the shareable slug to the same detail view.
func (s *EventService) GetEventBySlug(ctx context.Context, slugValue string) (*dto.EventDetailResponse, *errors.AppError) {
	event, err := s.repo.GetEventBySlug(ctx, slugValue)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	return s.GetEventDetail(ctx, event.ID)
}

// UpdateEvent applies organizer edits while the event is still pending.
func (s *EventService) UpdateEvent(ctx context.Context, eventID uuid.UUID, actor *utils.TokenClaims, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	if event.OrganizerID != actor.UserID && actor.Role != constants.RoleAdmin {
		return nil, errors.NewAppError(errors.ErrForbidden, "Only the organizer may edit this event", nil)
	}
	if event.Status != eventEntity.EventStatusPending {
		return nil, errors.NewAppError(errors.ErrConflict, "Only pending events can be edited", nil)
	}

	if req.Title != "" {
		event.Title = strings.TrimSpace(req.Title)
		event.Slug = slug.Make(req.Title) + "-" + strings.ToLower(utils.GenerateID())
	}
	if req.ShortDescription != "" {
		event.ShortDescription = req.ShortDescription
	}
	if req.LongDescription != "" {
		event.LongDescription = &req.LongDescription
	}
	if req.Requirements != nil {
		event.Requirements = req.Requirements
	}
	if req.ItemsToBring != nil {
		event.ItemsToBring = req.ItemsToBring
	}
	if req.Location != "" {
		event.Location = req.Location
	}
	if req.ImageURL != "" {
		event.ImageURL = &req.ImageURL
	}
	if req.Capacity != nil {
		event.Capacity = req.Capacity
	}
	if req.StartDate != nil {
		event.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = req.EndDate
	}
	if event.EndDate != nil && !event.EndDate.After(event.StartDate) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "end_date: must be after start_date", nil)
	}

	applied, err := s.repo.UpdateDetails(ctx, event)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to update event", err)
	}
	if !applied {
		// The event left pending between the read and the write.
		return nil, errors.NewAppError(errors.ErrConflict, "Only pending events can be edited", nil)
	}

	return s.getEventResponse(ctx, eventID)
}

// DeleteEvent removes an event and, through the store's cascade, its
// registrations, likes and comments.
func (s *EventService) DeleteEvent(ctx context.Context, eventID uuid.UUID, actor *utils.TokenClaims) *errors.AppError {
	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "Failed to get event", err)
	}
	if event == nil {
		return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	if event.OrganizerID != actor.UserID && actor.Role != constants.RoleAdmin {
		return errors.NewAppError(errors.ErrForbidden, "Only the organizer or an admin may delete this event", nil)
	}

	deleted, err := s.repo.DeleteEvent(ctx, eventID)
	if err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "Failed to delete event", err)
	}
	if !deleted {
		return errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	if s.tasks != nil {
		_ = s.tasks.EnqueueEventDeleted(ctx, eventID)
	}

	return nil
}

func (s *EventService) getEventResponse(ctx context.Context, eventID uuid.UUID) (*dto.EventResponse, *errors.AppError) {
	event, err := s.repo.GetEventByID(ctx, eventID)
	if err != nil || event == nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to reload event", err)
	}
	return dto.ToEventResponse(event, s.now()), nil
}
