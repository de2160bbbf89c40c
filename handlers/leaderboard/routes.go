package leaderboard

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to the leaderboard
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	workshops := r.Group("/workshops")
	{
		workshops.GET("/:id/leaderboard", GetLeaderboard)
		workshops.POST("/:id/leaderboard/refresh", RefreshLeaderboard)
		workshops.GET("/:id/leaderboard/export", ExportLeaderboardExcel)
	}

	leaderboard := r.Group("/leaderboard")
	{
		leaderboard.PUT("/:entry_id/adjust", AdjustScore)
	}
}
