package judges

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to judges
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	workshops := r.Group("/workshops")
	{
		workshops.GET("/:id/judges", GetWorkshopJudges)
		workshops.POST("/:id/judges", CreateJudge)
	}

	judges := r.Group("/judges")
	{
		judges.PUT("/:judge_id", UpdateJudge)
		judges.DELETE("/:judge_id", DeleteJudge)

		// Assignment routes
		judges.POST("/:judge_id/groups/:group_id", AssignJudgeToGroup)
		judges.DELETE("/:judge_id/groups/:group_id", UnassignJudgeFromGroup)
	}
}
