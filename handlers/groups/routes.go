package groups

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to groups
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	workshops := r.Group("/workshops")
	{
		workshops.GET("/:id/groups", GetWorkshopGroups)
		workshops.POST("/:id/groups", CreateGroup)
	}

	groups := r.Group("/groups")
	{
		groups.GET("/:group_id", GetGroup)
		groups.PUT("/:group_id", UpdateGroup)
		groups.PUT("/:group_id/code", RegenerateGroupCode)
		groups.DELETE("/:group_id", DeleteGroup)

		// Membership routes
		groups.POST("/:group_id/participants/:participant_id", AddParticipantToGroup)
		groups.DELETE("/:group_id/participants/:participant_id", RemoveParticipantFromGroup)
	}
}
