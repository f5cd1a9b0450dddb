package middleware

import (
	"net/http"
	"strings"

	"seatgrid/internal/shared/config"
	"seatgrid/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// Caller roles as issued by the external identity provider.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// Context keys populated by the auth middleware.
const (
	ContextCallerID   = "caller_id"
	ContextCallerRole = "caller_role"
	ContextTenantID   = "tenant_id"
)

// JWTAuth verifies a bearer token issued by the external identity provider
// and places the caller identity on the request context. Token issuance and
// user management are not this service's concern.
func JWTAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header is required", nil)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, http.StatusUnauthorized, "authorization header format must be Bearer {token}", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWT.Secret), nil
		})
		if err != nil || !token.Valid {
			response.Error(c, http.StatusUnauthorized, "invalid or expired token", nil)
			c.Abort()
			return
		}

		if claims, ok := token.Claims.(jwt.MapClaims); ok {
			if tokenType, ok := claims["type"]; !ok || tokenType != "access" {
				response.Error(c, http.StatusUnauthorized, "invalid token type", nil)
				c.Abort()
				return
			}
			c.Set(ContextCallerID, claims["sub"])
			c.Set(ContextCallerRole, claims["role"])
			if tenant, ok := claims["tenant_id"]; ok {
				c.Set(ContextTenantID, tenant)
			}
		}

		c.Next()
	}
}

// RequireRole checks that the caller carries the required role.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerRole, exists := c.Get(ContextCallerRole)
		if !exists {
			response.Error(c, http.StatusUnauthorized, "caller role not found in context", nil)
			c.Abort()
			return
		}

		if callerRole.(string) != requiredRole {
			response.Error(c, http.StatusForbidden, "Insufficient permissions", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireAdmin requires the ADMIN role.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(RoleAdmin)
}

// RequireRoles checks that the caller carries any of the required roles.
func RequireRoles(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		callerRole, exists := c.Get(ContextCallerRole)
		if !exists {
			response.Error(c, http.StatusUnauthorized, "caller role not found in context", nil)
			c.Abort()
			return
		}

		hasRole := false
		for _, role := range requiredRoles {
			if callerRole.(string) == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			response.Error(c, http.StatusForbidden, "Insufficient permissions", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
