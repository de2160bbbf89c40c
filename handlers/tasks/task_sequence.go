package tasks

import (
	"errors"
	"log"
	"net/http"

	"workshophub/realtime"
	"workshophub/services"
	"workshophub/utils/response"

	"github.com/gin-gonic/gin"
)

// ActivateTask marks a task as the running one
// @Summary Activate a task
// @Description Mark a task as active and stamp its start time; rejected if the task has ended or another task is active
// @Tags Tasks
// @Accept json
// @Produce json
// @Param task_id path string true "Task ID"
// @Success 200 {object} models.Task
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{task_id}/activate [put]
func ActivateTask(c *gin.Context) {
	taskID := c.Param("task_id")

	task, err := services.ActivateTaskByID(taskID)
	switch {
	case errors.Is(err, services.ErrTaskEnded):
		response.Error(c, http.StatusBadRequest, ErrTaskAlreadyEnded)
		return
	case errors.Is(err, services.ErrAnotherTaskActive):
		response.Error(c, http.StatusBadRequest, ErrAnotherTaskActive)
		return
	case err != nil:
		log.Printf("Failed to activate task %s: %v", taskID, err)
		response.Error(c, http.StatusNotFound, ErrTaskNotFound)
		return
	}

	realtime.Notify(task.WorkshopID, "tasks", "update")
	c.JSON(http.StatusOK, task)
}

// DeactivateTask toggles a task off
// @Summary Deactivate a task
// @Description Toggle a task off and clear its start time
// @Tags Tasks
// @Accept json
// @Produce json
// @Param task_id path string true "Task ID"
// @Success 200 {object} models.Task
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{task_id}/deactivate [put]
func DeactivateTask(c *gin.Context) {
	taskID := c.Param("task_id")

	task, err := services.DeactivateTaskByID(taskID)
	if err != nil {
		log.Printf("Failed to deactivate task %s: %v", taskID, err)
		response.Error(c, http.StatusNotFound, ErrTaskNotFound)
		return
	}

	realtime.Notify(task.WorkshopID, "tasks", "update")
	c.JSON(http.StatusOK, task)
}

// EndTask terminally ends a task and auto-advances the sequence
// @Summary End a task
// @Description End a task; the next task in sequence order is activated automatically if one exists
// @Tags Tasks
// @Accept json
// @Produce json
// @Param task_id path string true "Task ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /tasks/{task_id}/end [put]
func EndTask(c *gin.Context) {
	taskID := c.Param("task_id")

	task, next, err := services.EndTaskByID(taskID)
	if err != nil {
		log.Printf("Failed to end task %s: %v", taskID, err)
		response.Error(c, http.StatusNotFound, ErrTaskNotFound)
		return
	}

	realtime.Notify(task.WorkshopID, "tasks", "update")
	c.JSON(http.StatusOK, gin.H{"task": task, "next": next})
}
