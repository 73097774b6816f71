package controller

import (
	"community-events-api/core/constants"
	"community-events-api/core/controller"
	"community-events-api/core/errors"
	"community-events-api/core/utils"
	"community-events-api/core/validation"
	"community-events-api/modules/engagement/dto"
	"community-events-api/modules/engagement/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// EngagementController handles like and comment HTTP requests
type EngagementController struct {
	controller.BaseController
	EngagementService service.EngagementServiceInterface
}

// NewEngagementController creates a new controller
func NewEngagementController(svc service.EngagementServiceInterface) *EngagementController {
	return &EngagementController{
		BaseController:    controller.NewBaseController(),
		EngagementService: svc,
	}
}

func (c *EngagementController) actorFromContext(ctx echo.Context) (*utils.TokenClaims, error) {
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

// ToggleLike handles PUT /events/:id/like
// @Summary Set like state
// @Description Drives the caller's like for an event to the requested state
// @Tags Engagement
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.ToggleLikeRequest true "Desired like state"
// @Success 200 {object} dto.LikeStatusResponse
// @Router /private/events/{id}/like [put]
func (c *EngagementController) ToggleLike(ctx echo.Context) error {
	actor, err := c.actorFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.ToggleLikeRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.EngagementService.ToggleLike(ctx.Request().Context(), eventID, actor.UserID, req.Liked)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Like state updated")
}

// GetLikeStatus handles GET /events/:id/like
// @Summary Get like state
// @Tags Engagement
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.LikeStatusResponse
// @Router /private/events/{id}/like [get]
func (c *EngagementController) GetLikeStatus(ctx echo.Context) error {
	actor, err := c.actorFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.EngagementService.GetLikeStatus(ctx.Request().Context(), eventID, actor.UserID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// PostComment handles POST /events/:id/comments
// @Summary Post a comment
// @Description Appends an immutable comment to the event thread
// @Tags Engagement
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.PostCommentRequest true "Comment"
// @Success 201 {object} dto.CommentResponse
// @Failure 400 {object} errors.AppError
// @Router /private/events/{id}/comments [post]
func (c *EngagementController) PostComment(ctx echo.Context) error {
	actor, err := c.actorFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.PostCommentRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Validation failed", validation.FieldErrors(err))
	}

	result, appErr := c.EngagementService.PostComment(ctx.Request().Context(), eventID, actor.UserID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Comment posted")
}

// ListComments handles GET /events/:id/comments
// @Summary List comments
// @Description Returns the event's comment thread oldest first
// @Tags Engagement
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {array} dto.CommentResponse
// @Router /public/events/{id}/comments [get]
func (c *EngagementController) ListComments(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.EngagementService.ListComments(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
