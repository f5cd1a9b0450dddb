package venues

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts venue reads on the public group and mutations on the
// admin group, which already carries auth middleware.
func RegisterRoutes(public, admin *gin.RouterGroup, controller *Controller) {
	reads := public.Group("/venues")
	{
		reads.GET("", controller.GetVenuesByTenant)
		reads.GET("/:id", controller.GetVenue)
	}

	writes := admin.Group("/venues")
	{
		writes.POST("", controller.CreateVenue)
		writes.PUT("/:id", controller.UpdateVenue)
		writes.DELETE("/:id", controller.DeleteVenue)
	}
}
