package tenants

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"seatgrid/internal/shared/middleware"
	"seatgrid/internal/shared/utils/response"
)

// Header names for server-to-server tenant authentication.
const (
	HeaderTenantID = "X-Tenant-ID"
	HeaderAPIKey   = "X-API-Key"
)

// APIKeyAuth authenticates a tenant backend by its API key. On success the
// tenant identity is placed on the request context under the same keys the
// JWT middleware uses, so downstream handlers see one caller shape.
func APIKeyAuth(service Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID, err := uuid.Parse(c.GetHeader(HeaderTenantID))
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "X-Tenant-ID header is required", nil)
			c.Abort()
			return
		}

		apiKey := c.GetHeader(HeaderAPIKey)
		if apiKey == "" {
			response.Error(c, http.StatusUnauthorized, "X-API-Key header is required", nil)
			c.Abort()
			return
		}

		valid, err := service.VerifyAPIKey(c.Request.Context(), tenantID, apiKey)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Error(c, http.StatusUnauthorized, "invalid tenant credentials", nil)
				c.Abort()
				return
			}
			response.Error(c, http.StatusInternalServerError, "Failed to verify credentials", nil)
			c.Abort()
			return
		}
		if !valid {
			response.Error(c, http.StatusUnauthorized, "invalid tenant credentials", nil)
			c.Abort()
			return
		}

		c.Set(middleware.ContextTenantID, tenantID.String())
		c.Set(middleware.ContextCallerID, "tenant:"+tenantID.String())
		c.Set(middleware.ContextCallerRole, middleware.RoleUser)

		c.Next()
	}
}
