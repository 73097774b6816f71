package controller

import (
	"community-events-api/core/constants"
	"community-events-api/core/controller"
	"community-events-api/core/errors"
	"community-events-api/core/params"
	"community-events-api/core/utils"
	"community-events-api/core/validation"
	"community-events-api/modules/registration/dto"
	"community-events-api/modules/registration/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RegistrationController handles volunteer registration HTTP requests
type RegistrationController struct {
	controller.BaseController
	RegistrationService service.RegistrationServiceInterface
}

// NewRegistrationController creates a new controller
func NewRegistrationController(svc service.RegistrationServiceInterface) *RegistrationController {
	return &RegistrationController{
		BaseController:      controller.NewBaseController(),
		RegistrationService: svc,
	}
}

func (c *RegistrationController) actorFromContext(ctx echo.Context) (*utils.TokenClaims, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}
	return claims, nil
}

// Register handles POST /events/:id/register
// @Summary Register for an event
// @Description Enrolls the caller as a volunteer; repeating the call returns the existing registration
// @Tags Registration
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.RegisterRequest true "Application payload"
// @Success 200 {object} dto.RegisterResult
// @Failure 400 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Failure 410 {object} errors.AppError
// @Router /private/events/{id}/register [post]
func (c *RegistrationController) Register(ctx echo.Context) error {
	actor, err := c.actorFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.RegisterRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Validation failed", validation.FieldErrors(err))
	}

	result, appErr := c.RegistrationService.Register(ctx.Request().Context(), eventID, actor.UserID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	if result.AlreadyRegistered {
		return c.SuccessResponse(ctx, result, "Already registered for this event")
	}
	return c.SuccessResponse(ctx, result, "Registered successfully")
}

// IsRegistered handles GET /events/:id/registration
// @Summary Check registration state
// @Tags Registration
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.RegistrationStatusResponse
// @Router /private/events/{id}/registration [get]
func (c *RegistrationController) IsRegistered(ctx echo.Context) error {
	actor, err := c.actorFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.RegistrationService.IsRegistered(ctx.Request().Context(), eventID, actor.UserID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ListByEvent handles GET /events/:id/registrations
// @Summary List event registrations
// @Description Roster view for admins and moderators
// @Tags Registration
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.PaginatedRegistrationResponse
// @Router /private/events/{id}/registrations [get]
func (c *RegistrationController) ListByEvent(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.RegistrationService.ListByEvent(ctx.Request().Context(), eventID, params.NewQueryParams(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
