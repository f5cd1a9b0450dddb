package venues

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

func (c *Controller) CreateVenue(ctx *gin.Context) {
	var req CreateVenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err.Error())
		return
	}

	venue, err := c.service.CreateVenue(ctx.Request.Context(), req)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to create venue", err.Error())
		return
	}
	response.Success(ctx, http.StatusCreated, "Venue created successfully", venue)
}

func (c *Controller) GetVenue(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid venue ID", err.Error())
		return
	}

	venue, err := c.service.GetVenue(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(ctx, http.StatusNotFound, "Venue not found", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to get venue", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "Venue retrieved successfully", venue)
}

func (c *Controller) GetVenuesByTenant(ctx *gin.Context) {
	tenantID, err := uuid.Parse(ctx.Query("tenant_id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid or missing tenant_id query parameter", err.Error())
		return
	}

	venues, err := c.service.GetVenuesByTenant(ctx.Request.Context(), tenantID)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to list venues", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "Venues retrieved successfully", venues)
}

func (c *Controller) UpdateVenue(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid venue ID", err.Error())
		return
	}

	var req UpdateVenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err.Error())
		return
	}

	venue, err := c.service.UpdateVenue(ctx.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(ctx, http.StatusNotFound, "Venue not found", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to update venue", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "Venue updated successfully", venue)
}

func (c *Controller) DeleteVenue(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid venue ID", err.Error())
		return
	}

	if err := c.service.DeleteVenue(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(ctx, http.StatusNotFound, "Venue not found", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to delete venue", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "Venue deleted successfully", nil)
}
