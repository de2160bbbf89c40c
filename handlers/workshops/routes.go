package workshops

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to workshops
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	workshops := r.Group("/workshops")
	{
		workshops.GET("/", GetAllWorkshops)
		workshops.GET("/:id", GetWorkshop)
		workshops.POST("/", CreateWorkshop)
		workshops.PUT("/:id", UpdateWorkshop)
		workshops.DELETE("/:id", DeleteWorkshop)

		// Lifecycle routes
		workshops.PUT("/:id/start", StartWorkshop)
		workshops.PUT("/:id/end", EndWorkshop)

		// Change-notification subscription
		workshops.GET("/:id/ws", WorkshopWebSocket)
	}
}
