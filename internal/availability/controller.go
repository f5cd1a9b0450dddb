package availability

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"seatgrid/internal/shared/utils/response"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) GetVenueSeatMap(ctx *gin.Context) {
	venueID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid venue ID", err.Error())
		return
	}

	seatMap, err := c.service.VenueSeatMap(ctx.Request.Context(), venueID)
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			response.Error(ctx, http.StatusNotFound, "Venue not found", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to build seat map", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "Seat map retrieved successfully", seatMap)
}

func (c *Controller) GetEventSeatMap(ctx *gin.Context) {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid event ID", err.Error())
		return
	}

	seatMap, err := c.service.EventSeatMap(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			response.Error(ctx, http.StatusNotFound, "Event not found", nil)
			return
		}
		if errors.Is(err, ErrVenueNotFound) {
			response.Error(ctx, http.StatusNotFound, "Venue not found for event", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to resolve availability", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "Seat map retrieved successfully", seatMap)
}
