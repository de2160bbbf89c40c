package announcements

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to announcements
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	workshops := r.Group("/workshops")
	{
		workshops.GET("/:id/announcements", GetWorkshopAnnouncements)
		workshops.POST("/:id/announcements", CreateAnnouncement)
	}
}
