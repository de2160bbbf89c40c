package tasks

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to tasks
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	workshops := r.Group("/workshops")
	{
		workshops.GET("/:id/tasks", GetWorkshopTasks)
		workshops.POST("/:id/tasks", CreateTask)
	}

	tasks := r.Group("/tasks")
	{
		tasks.PUT("/:task_id", UpdateTask)
		tasks.DELETE("/:task_id", DeleteTask)

		// Sequence routes
		tasks.PUT("/:task_id/activate", ActivateTask)
		tasks.PUT("/:task_id/deactivate", DeactivateTask)
		tasks.PUT("/:task_id/end", EndTask)
	}
}
