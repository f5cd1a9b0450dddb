package tenants

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts tenant administration on the admin group, which
// already carries auth middleware.
func RegisterRoutes(admin *gin.RouterGroup, controller *Controller) {
	group := admin.Group("/tenants")
	{
		group.POST("", controller.CreateTenant)
		group.GET("", controller.GetAllTenants)
		group.GET("/:id", controller.GetTenant)
		group.PUT("/:id", controller.UpdateTenant)
		group.DELETE("/:id", controller.DeleteTenant)
	}
}
