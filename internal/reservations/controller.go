package reservations

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"seatgrid/internal/shared/middleware"
	"seatgrid/internal/shared/utils/response"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) CreateHold(ctx *gin.Context) {
	var req CreateHoldRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err.Error())
		return
	}

	// The holder identity comes from the authenticated caller. End users
	// may only hold seats for themselves; tenant backends hold on behalf
	// of their own customers and may name any holder.
	caller := ctx.GetString(middleware.ContextCallerID)
	if req.HolderID == "" {
		req.HolderID = caller
	}
	if req.HolderID == "" {
		response.BadRequest(ctx, "Invalid hold request", "holder identity is required")
		return
	}
	if req.HolderID != caller && !strings.HasPrefix(caller, "tenant:") &&
		ctx.GetString(middleware.ContextCallerRole) != middleware.RoleAdmin {
		response.Error(ctx, http.StatusForbidden, "Holder does not match authenticated caller", nil)
		return
	}

	hold, err := c.service.CreateHold(ctx.Request.Context(), req)
	if err != nil {
		if conflict, ok := AsConflict(err); ok {
			response.Error(ctx, http.StatusConflict, "Seats are not available", gin.H{
				"conflicting_seats": conflict.Seats,
			})
			return
		}
		if errors.Is(err, ErrEventNotFound) {
			response.Error(ctx, http.StatusNotFound, "Event not found", nil)
			return
		}
		if errors.Is(err, ErrNoHolder) || errors.Is(err, ErrNoSeats) || errors.Is(err, ErrDuplicateSeats) || errors.Is(err, ErrInvalidDuration) {
			response.BadRequest(ctx, "Invalid hold request", err.Error())
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to create hold", err.Error())
		return
	}
	response.Success(ctx, http.StatusCreated, "Hold created successfully", hold)
}

func (c *Controller) ReleaseHold(ctx *gin.Context) {
	holdID, err := uuid.Parse(ctx.Param("holdId"))
	if err != nil {
		response.BadRequest(ctx, "Invalid hold ID", err.Error())
		return
	}

	result, err := c.service.ReleaseHold(ctx.Request.Context(), holdID)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to release hold", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "Hold released", result)
}
