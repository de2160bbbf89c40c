package participants

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to participants
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	workshops := r.Group("/workshops")
	{
		workshops.GET("/:id/participants", GetWorkshopParticipants)
		workshops.POST("/:id/participants", CreateParticipant)
		workshops.POST("/:id/participants/import", ImportParticipantsFromXLSX)
	}

	participants := r.Group("/participants")
	{
		participants.PUT("/:participant_id", UpdateParticipant)
		participants.DELETE("/:participant_id", DeleteParticipant)
	}
}
