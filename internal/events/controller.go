package events

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"seatgrid/internal/shared/utils/response"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) CreateEvent(ctx *gin.Context) {
	var req CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err.Error())
		return
	}

	event, err := c.service.CreateEvent(ctx.Request.Context(), req)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to create event", err.Error())
		return
	}
	response.Success(ctx, http.StatusCreated, "Event created successfully", event)
}

func (c *Controller) GetEvent(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid event ID", err.Error())
		return
	}

	event, err := c.service.GetEvent(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(ctx, http.StatusNotFound, "Event not found", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to get event", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "Event retrieved successfully", event)
}

func (c *Controller) GetEventsByTenant(ctx *gin.Context) {
	tenantID, err := uuid.Parse(ctx.Query("tenant_id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid or missing tenant_id query parameter", err.Error())
		return
	}

	events, err := c.service.GetEventsByTenant(ctx.Request.Context(), tenantID)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to list events", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "Events retrieved successfully", events)
}

func (c *Controller) UpdateEvent(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid event ID", err.Error())
		return
	}

	var req UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err.Error())
		return
	}

	event, err := c.service.UpdateEvent(ctx.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(ctx, http.StatusNotFound, "Event not found", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to update event", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "Event updated successfully", event)
}

func (c *Controller) DeleteEvent(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid event ID", err.Error())
		return
	}

	if err := c.service.DeleteEvent(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(ctx, http.StatusNotFound, "Event not found", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to delete event", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "Event deleted successfully", nil)
}
