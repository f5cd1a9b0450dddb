package availability

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the seat map reads under the existing venue and
// event groups. Both are public and rate limited at the router level.
func RegisterRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.GET("/venues/:id/seat-map", controller.GetVenueSeatMap)
	rg.GET("/events/:id/seat-map", controller.GetEventSeatMap)
}
