package service

import (
	"context"
	"time"

	"community-events-api/core/constants"
	"community-events-api/core/errors"
	"community-events-api/core/logger"
	"community-events-api/core/params"
	"community-events-api/core/taskqueue"
	"community-events-api/core/utils"
	"community-events-api/modules/event/dto"
	"community-events-api/modules/event/entity"
	"community-events-api/modules/event/repository"

	"github.com/google/uuid"
)

// ModerationService decides the one-shot pending to approved/rejected
// transition. Losing a moderation race is not an error: the caller gets the
// event's actual status back as a successful no-op.
type ModerationService struct {
	events repository.EventRepositoryInterface
	tasks  taskqueue.Enqueuer
	now    func() time.Time
}

// ModerationServiceInterface defines the service contract
type ModerationServiceInterface interface {
	Approve(ctx context.Context, eventID uuid.UUID, actor *utils.TokenClaims) (*dto.EventResponse, *errors.AppError)
	Reject(ctx context.Context, eventID uuid.UUID, actor *utils.TokenClaims) (*dto.EventResponse, *errors.AppError)
	ListPending(ctx context.Context, p params.QueryParams) (*dto.PaginatedEventResponse, *errors.AppError)
}

// NewModerationService creates a new moderation service
func NewModerationService(events repository.EventRepositoryInterface, tasks taskqueue.Enqueuer) ModerationServiceInterface {
	return &ModerationService{events: events, tasks: tasks, now: time.Now}
}

func (s *ModerationService) Approve(ctx context.Context, eventID uuid.UUID, actor *utils.TokenClaims) (*dto.EventResponse, *errors.AppError) {
	return s.decide(ctx, eventID, actor, entity.EventStatusApproved)
}

func (s *ModerationService) Reject(ctx context.Context, eventID uuid.UUID, actor *utils.TokenClaims) (*dto.EventResponse, *errors.AppError) {
	return s.decide(ctx, eventID, actor, entity.EventStatusRejected)
}

// ListPending is the moderation queue.
func (s *ModerationService) ListPending(ctx context.Context, p params.QueryParams) (*dto.PaginatedEventResponse, *errors.AppError) {
	status := entity.EventStatusPending
	page, err := s.events.ListEventsByStatus(ctx, &status, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list pending events", err)
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

func (s *ModerationService) decide(ctx context.Context, eventID uuid.UUID, actor *utils.TokenClaims, decision entity.EventStatus) (*dto.EventResponse, *errors.AppError) {
	if actor == nil || actor.Role != constants.RoleAdmin {
		return nil, errors.NewAppError(errors.ErrForbidden, "Moderation requires the admin role", nil)
	}

	updated, err := s.events.UpdateStatus(ctx, eventID, decision)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to update event status", err)
	}

	if updated == nil {
		// The compare-and-set did not apply: either the event is gone or
		// another moderator already decided. Re-read to tell the two apart.
		current, err := s.events.GetEventByID(ctx, eventID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get event", err)
		}
		if current == nil {
			return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
		}

		logger.Info("ModerationService:decide:NoOp",
			"event_id", eventID.String(),
			"requested", string(decision),
			"actual", string(current.Status),
		)
		return dto.ToEventResponse(current, s.now()), nil
	}

	if s.tasks != nil {
		_ = s.tasks.EnqueueEventStatusChanged(ctx, updated.ID, updated.OrganizerID, string(updated.Status))
	}

	return dto.ToEventResponse(updated, s.now()), nil
}
