package tenants

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

func (c *Controller) CreateTenant(ctx *gin.Context) {
	var req CreateTenantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err.Error())
		return
	}

	tenant, err := c.service.CreateTenant(ctx.Request.Context(), req)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to create tenant", err.Error())
		return
	}
	response.Success(ctx, http.StatusCreated, "Tenant created successfully", tenant)
}

func (c *Controller) GetTenant(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid tenant ID", err.Error())
		return
	}

	tenant, err := c.service.GetTenant(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(ctx, http.StatusNotFound, "Tenant not found", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to get tenant", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "Tenant retrieved successfully", tenant)
}

func (c *Controller) GetAllTenants(ctx *gin.Context) {
	tenants, err := c.service.GetAllTenants(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to list tenants", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "Tenants retrieved successfully", tenants)
}

func (c *Controller) UpdateTenant(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid tenant ID", err.Error())
		return
	}

	var req UpdateTenantRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.BadRequest(ctx, "Invalid request body", err.Error())
		return
	}

	tenant, err := c.service.UpdateTenant(ctx.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(ctx, http.StatusNotFound, "Tenant not found", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to update tenant", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "Tenant updated successfully", tenant)
}

func (c *Controller) DeleteTenant(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.BadRequest(ctx, "Invalid tenant ID", err.Error())
		return
	}

	if err := c.service.DeleteTenant(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(ctx, http.StatusNotFound, "Tenant not found", nil)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to delete tenant", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "Tenant deleted successfully", nil)
}
