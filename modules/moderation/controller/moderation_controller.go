package controller

import (
	"community-events-api/core/constants"
	"community-events-api/core/controller"
	"community-events-api/core/errors"
	"community-events-api/core/params"
	"community-events-api/core/utils"
	"community-events-api/modules/moderation/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ModerationController handles admin moderation HTTP requests
type ModerationController struct {
	controller.BaseController
	ModerationService service.ModerationServiceInterface
}

// NewModerationController creates a new controller
func NewModerationController(svc service.ModerationServiceInterface) *ModerationController {
	return &ModerationController{
		BaseController:    controller.NewBaseController(),
		ModerationService: svc,
	}
}

func (c *ModerationController) actorFromContext(ctx echo.Context) (*utils.TokenClaims, error) {
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

// ListPending handles GET /admin/events/pending
// @Summary Moderation queue
// @Description Lists events awaiting a moderation decision
// @Tags Moderation
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.PaginatedEventResponse
// @Router /private/admin/events/pending [get]
func (c *ModerationController) ListPending(ctx echo.Context) error {
	result, appErr := c.ModerationService.ListPending(ctx.Request().Context(), params.NewQueryParams(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Approve handles POST /admin/events/:id/approve
// @Summary Approve an event
// @Description Idempotent: a decision that already happened returns the actual status
// @Tags Moderation
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} errors.AppError
// @Router /private/admin/events/{id}/approve [post]
func (c *ModerationController) Approve(ctx echo.Context) error {
	actor, err := c.actorFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.ModerationService.Approve(ctx.Request().Context(), eventID, actor)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Moderation decision recorded")
}

// Reject handles POST /admin/events/:id/reject
// @Summary Reject an event
// @Description Idempotent: a decision that already happened returns the actual status
// @Tags Moderation
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} errors.AppError
// @Router /private/admin/events/{id}/reject [post]
func (c *ModerationController) Reject(ctx echo.Context) error {
	actor, err := c.actorFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.ModerationService.Reject(ctx.Request().Context(), eventID, actor)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Moderation decision recorded")
}
