package controller

import (
	"community-events-api/core/constants"
	"community-events-api/core/controller"
	"community-events-api/core/errors"
	"community-events-api/core/params"
	"community-events-api/core/utils"
	"community-events-api/core/validation"
	"community-events-api/modules/event/dto"
	"community-events-api/modules/event/entity"
	"community-events-api/modules/event/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// EventController handles event lifecycle HTTP requests
type EventController struct {
	controller.BaseController
	EventService service.EventServiceInterface
}

// NewEventController creates a new controller
func NewEventController(svc service.EventServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   svc,
	}
}

func (c *EventController) actorFromContext(ctx echo.Context) (*utils.TokenClaims, error) {
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

// CreateEvent handles POST /events
// @Summary Submit an event
// @Description Creates an event in the pending state, awaiting moderation
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event fields"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} errors.AppError
// @Router /private/events [post]
func (c *EventController) CreateEvent(ctx echo.Context) error {
	actor, err := c.actorFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Validation failed", validation.FieldErrors(err))
	}

	result, appErr := c.EventService.CreateEvent(ctx.Request().Context(), actor.UserID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Event submitted for moderation")
}

// ListEvents handles GET /public/events
// @Summary List approved events
// @Description Lists approved events annotated with live countdown timing
// @Tags Event
// @Produce json
// @Success 200 {object} dto.PaginatedEventResponse
// @Router /public/events [get]
func (c *EventController) ListEvents(ctx echo.Context) error {
	status := entity.EventStatusApproved
	result, appErr := c.EventService.ListEvents(ctx.Request().Context(), &status, params.NewQueryParams(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ListMyEvents handles GET /private/events
// @Summary List events with a status filter
// @Description Authenticated listing; admins may filter by any status
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param status query string false "pending, approved or rejected"
// @Success 200 {object} dto.PaginatedEventResponse
// @Router /private/events [get]
func (c *EventController) ListMyEvents(ctx echo.Context) error {
	actor, err := c.actorFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var status *entity.EventStatus
	if raw := ctx.QueryParam("status"); raw != "" {
		s := entity.EventStatus(raw)
		if !s.Valid() {
			return c.BadRequest(errors.ErrInvalidInput, "status: must be pending, approved or rejected")
		}
		// Non-admins only ever see the approved listing.
		if s != entity.EventStatusApproved && actor.Role != constants.RoleAdmin {
			return c.Forbidden(errors.ErrForbidden, "Insufficient role for this status filter")
		}
		status = &s
	} else {
		s := entity.EventStatusApproved
		status = &s
	}

	result, appErr := c.EventService.ListEvents(ctx.Request().Context(), status, params.NewQueryParams(ctx))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetEventDetail handles GET /public/events/:id
// @Summary Event detail
// @Description Event with timing, like count, registration count and comments
// @Tags Event
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventDetailResponse
// @Failure 404 {object} errors.AppError
// @Router /public/events/{id} [get]
func (c *EventController) GetEventDetail(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	result, appErr := c.EventService.GetEventDetail(ctx.Request().Context(), eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetEventBySlug handles GET /public/events/slug/:slug
// @Summary Event detail by slug
// @Tags Event
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} dto.EventDetailResponse
// @Failure 404 {object} errors.AppError
// @Router /public/events/slug/{slug} [get]
func (c *EventController) GetEventBySlug(ctx echo.Context) error {
	slug := ctx.Param("slug")
	if slug == "" {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event slug")
	}

	result, appErr := c.EventService.GetEventBySlug(ctx.Request().Context(), slug)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// UpdateEvent handles PUT /events/:id
// @Summary Edit a pending event
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.UpdateEventRequest true "Fields to update"
// @Success 200 {object} dto.EventResponse
// @Router /private/events/{id} [put]
func (c *EventController) UpdateEvent(ctx echo.Context) error {
	actor, err := c.actorFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	var req dto.UpdateEventRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Validation failed", validation.FieldErrors(err))
	}

	result, appErr := c.EventService.UpdateEvent(ctx.Request().Context(), eventID, actor, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Event updated")
}

// DeleteEvent handles DELETE /events/:id
// @Summary Delete an event
// @Description Removes the event and cascades to registrations, likes and comments
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} controller.SuccessResponse
// @Router /private/events/{id} [delete]
func (c *EventController) DeleteEvent(ctx echo.Context) error {
	actor, err := c.actorFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	if appErr := c.EventService.DeleteEvent(ctx.Request().Context(), eventID, actor); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Event deleted")
}
