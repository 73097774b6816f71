package service

import (
	"context"

	"community-events-api/core/constants"
	"community-events-api/core/errors"
	"community-events-api/modules/engagement/dto"
	"community-events-api/modules/engagement/entity"
	"community-events-api/modules/engagement/repository"
	eventEntity "community-events-api/modules/event/entity"

	"github.com/google/uuid"
)

// EventSource is the slice of the event store this service reads.
type EventSource interface {
	GetEventByID(ctx context.Context, id uuid.UUID) (*eventEntity.Event, error)
}

// EngagementService handles likes and comments
type EngagementService struct {
	repo   repository.EngagementRepositoryInterface
	events EventSource
}

// EngagementServiceInterface defines the service contract
type EngagementServiceInterface interface {
	ToggleLike(ctx context.Context, eventID uuid.UUID, userID uuid.UUID, desired bool) (*dto.LikeStatusResponse, *errors.AppError)
	GetLikeStatus(ctx context.Context, eventID uuid.UUID, userID uuid.UUID) (*dto.LikeStatusResponse, *errors.AppError)
	PostComment(ctx context.Context, eventID uuid.UUID, authorID uuid.UUID, req *dto.PostCommentRequest) (*dto.CommentResponse, *errors.AppError)
	ListComments(ctx context.Context, eventID uuid.UUID) ([]dto.CommentResponse, *errors.AppError)
}

// NewEngagementService creates a new engagement service
func NewEngagementService(repo repository.EngagementRepositoryInterface, events EventSource) EngagementServiceInterface {
	return &EngagementService{repo: repo, events: events}
}

// ToggleLike drives the like set to the desired state. Repeating the same
// request is a no-op; the returned count is always recomputed from the set.
func (s *EngagementService) ToggleLike(ctx context.Context, eventID uuid.UUID, userID uuid.UUID, desired bool) (*dto.LikeStatusResponse, *errors.AppError) {
	event, appErr := s.approvedEvent(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	var err error
	if desired {
		err = s.repo.AddLike(ctx, event.ID, userID)
	} else {
		err = s.repo.RemoveLike(ctx, event.ID, userID)
	}
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "Failed to update like", err)
	}

	count, err := s.repo.CountLikes(ctx, event.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to count likes", err)
	}

	return &dto.LikeStatusResponse{
		EventID:   event.ID.String(),
		Liked:     desired,
		LikeCount: count,
	}, nil
}

func (s *EngagementService) GetLikeStatus(ctx context.Context, eventID uuid.UUID, userID uuid.UUID) (*dto.LikeStatusResponse, *errors.AppError) {
	event, err := s.events.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	liked, err := s.repo.HasLiked(ctx, eventID, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get like status", err)
	}
	count, err := s.repo.CountLikes(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to count likes", err)
	}

	return &dto.LikeStatusResponse{EventID: eventID.String(), Liked: liked, LikeCount: count}, nil
}

// PostComment appends to the thread. Comments are immutable once persisted;
// createdAt is assigned by the store.
func (s *EngagementService) PostComment(ctx context.Context, eventID uuid.UUID, authorID uuid.UUID, req *dto.PostCommentRequest) (*dto.CommentResponse, *errors.AppError) {
	if appErr := validateCommentBody(req.Body); appErr != nil {
		return nil, appErr
	}

	event, appErr := s.approvedEvent(ctx, eventID)
	if appErr != nil {
		return nil, appErr
	}

	comment := &entity.Comment{
		EventID:    event.ID,
		AuthorID:   authorID,
		AuthorName: req.AuthorName,
		Body:       req.Body,
	}
	if req.Avatar != "" {
		comment.Avatar = &req.Avatar
	}

	created, err := s.repo.CreateComment(ctx, comment)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to post comment", err)
	}

	return dto.ToCommentResponse(created), nil
}

func (s *EngagementService) ListComments(ctx context.Context, eventID uuid.UUID) ([]dto.CommentResponse, *errors.AppError) {
	event, err := s.events.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	comments, err := s.repo.ListComments(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list comments", err)
	}

	return dto.ToCommentResponses(comments), nil
}

func (s *EngagementService) approvedEvent(ctx context.Context, eventID uuid.UUID) (*eventEntity.Event, *errors.AppError) {
	event, err := s.events.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to get event", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	if event.Status != eventEntity.EventStatusApproved {
		return nil, errors.NewAppError(errors.ErrConflict, "Event is not open for engagement", nil)
	}
	return event, nil
}

func validateCommentBody(body string) *errors.AppError {
	length := len([]rune(body))
	if length < 1 {
		return errors.NewAppError(errors.ErrInvalidInput, "body: comment must not be empty", nil)
	}
	if length > constants.MaxCommentLength {
		return errors.NewAppError(errors.ErrInvalidInput, "body: comment must be at most 500 characters", nil)
	}
	return nil
}
