package v1

import (
	"workshophub/handlers/announcements"
	"workshophub/handlers/groups"
	"workshophub/handlers/judges"
	"workshophub/handlers/leaderboard"
	"workshophub/handlers/participants"
	"workshophub/handlers/tasks"
	"workshophub/handlers/workshops"
	"workshophub/middleware"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(10000, 1500)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)
	workshops.RegisterRoutes(v1)
	tasks.RegisterRoutes(v1)
	groups.RegisterRoutes(v1)
	participants.RegisterRoutes(v1)
	judges.RegisterRoutes(v1)
	leaderboard.RegisterRoutes(v1)
	announcements.RegisterRoutes(v1)

	// Register metrics and swagger endpoints
	RegisterMetricsRoutes(v1)
	RegisterSwaggerRoutes(v1)
}
