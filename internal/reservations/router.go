package reservations

import "github.com/gin-gonic/gin"

func RegisterRoutes(rg *gin.RouterGroup, controller *Controller) {
	holds := rg.Group("/holds")
	{
		holds.POST("", controller.CreateHold)
		holds.DELETE("/:holdId", controller.ReleaseHold)
	}
}
