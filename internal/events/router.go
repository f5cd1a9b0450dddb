package events

import "github.com/gin-gonic/gin"

func RegisterRoutes(public, admin *gin.RouterGroup, controller *Controller) {
	reads := public.Group("/events")
	{
		reads.GET("", controller.GetEventsByTenant)
		reads.GET("/:id", controller.GetEvent)
	}

	writes := admin.Group("/events")
	{
		writes.POST("", controller.CreateEvent)
		writes.PUT("/:id", controller.UpdateEvent)
		writes.DELETE("/:id", controller.DeleteEvent)
	}
}
