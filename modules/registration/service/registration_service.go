package service

import (
	"context"
	"strings"
	"time"

	"community-events-api/core/constants"
	"community-events-api/core/errors"
	"community-events-api/core/params"
	"community-events-api/modules/registration/dto"
	"community-events-api/modules/registration/entity"
	"community-events-api/modules/registration/repository"

	"github.com/google/uuid"
)

// RegistrationService handles volunteer enrollment
type RegistrationService struct {
	repo repository.RegistrationRepositoryInterface
	now  func() time.Time
}

// RegistrationServiceInterface defines the service contract
type RegistrationServiceInterface interface {
	Register(ctx context.Context, eventID uuid.UUID, volunteerID uuid.UUID, req *dto.RegisterRequest) (*dto.RegisterResult, *errors.AppError)
	IsRegistered(ctx context.Context, eventID uuid.UUID, volunteerID uuid.UUID) (*dto.RegistrationStatusResponse, *errors.AppError)
	ListByEvent(ctx context.Context, eventID uuid.UUID, p params.QueryParams) (*dto.PaginatedRegistrationResponse, *errors.AppError)
}

// NewRegistrationService creates a new registration service
func NewRegistrationService(repo repository.RegistrationRepositoryInterface) RegistrationServiceInterface {
	return &RegistrationService{repo: repo, now: time.Now}
}

// Register enrolls a volunteer. A repeated call for the same (event,
// volunteer) pair returns the existing registration flagged as
// already_registered, which callers treat like success.
func (s *RegistrationService) Register(ctx context.Context, eventID uuid.UUID, volunteerID uuid.UUID, req *dto.RegisterRequest) (*dto.RegisterResult, *errors.AppError) {
	if appErr := validatePayload(req); appErr != nil {
		return nil, appErr
	}

	reg := &entity.Registration{
		EventID:     eventID,
		VolunteerID: volunteerID,
		Sex:         strings.TrimSpace(req.Sex),
		Skills:      strings.TrimSpace(req.Skills),
		Age:         req.Age,
	}

	outcome, created, err := s.repo.Register(ctx, reg, s.now())
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "Failed to register", err)
	}

	switch outcome {
	case repository.OutcomeRegistered:
		return &dto.RegisterResult{Registration: dto.ToRegistrationResponse(created)}, nil
	case repository.OutcomeAlreadyRegistered:
		return &dto.RegisterResult{
			Registration:      dto.ToRegistrationResponse(created),
			AlreadyRegistered: true,
		}, nil
	case repository.OutcomeEventNotFound:
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	case repository.OutcomeEventNotApproved:
		return nil, errors.NewAppError(errors.ErrConflict, "Event is not open for registration", nil)
	case repository.OutcomeEventExpired:
		return nil, errors.NewAppError(errors.ErrExpired, "Event registration window has closed", nil)
	case repository.OutcomeCapacityFull:
		return nil, errors.NewAppError(errors.ErrCapacityExceeded, "Event has no remaining capacity", nil)
	default:
		return nil, errors.NewAppError(errors.ErrInternalServer, "Unexpected registration outcome", nil)
	}
}

func (s *RegistrationService) IsRegistered(ctx context.Context, eventID uuid.UUID, volunteerID uuid.UUID) (*dto.RegistrationStatusResponse, *errors.AppError) {
	registered, err := s.repo.IsRegistered(ctx, eventID, volunteerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to check registration", err)
	}

	return &dto.RegistrationStatusResponse{EventID: eventID.String(), Registered: registered}, nil
}

func (s *RegistrationService) ListByEvent(ctx context.Context, eventID uuid.UUID, p params.QueryParams) (*dto.PaginatedRegistrationResponse, *errors.AppError) {
	page, err := s.repo.ListByEvent(ctx, eventID, p)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list registrations", err)
	}

	items := make([]dto.RegistrationResponse, 0, len(page.Items))
	for i := range page.Items {
		items = append(items, *dto.ToRegistrationResponse(&page.Items[i]))
	}

	return &dto.PaginatedRegistrationResponse{
		Items:      items,
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
	}, nil
}

func validatePayload(req *dto.RegisterRequest) *errors.AppError {
	var fields []string
	if strings.TrimSpace(req.Sex) == "" {
		fields = append(fields, "sex")
	}
	if strings.TrimSpace(req.Skills) == "" {
		fields = append(fields, "skills")
	}
	if req.Age < constants.MinVolunteerAge {
		fields = append(fields, "age")
	}
	if len(fields) > 0 {
		return errors.NewAppError(errors.ErrInvalidInput,
			"Invalid registration payload: "+strings.Join(fields, ", "), nil)
	}
	return nil
}
