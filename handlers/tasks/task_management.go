package tasks

import (
	"context"
	"log"
	"net/http"
	"time"

	"workshophub/database"
	"workshophub/models"
	"workshophub/realtime"
	"workshophub/utils/response"

	"github.com/gin-gonic/gin"
)

const (
	TaskOperationTimeout = 5 * time.Second
)

// GetWorkshopTasks retrieves all tasks of a workshop in sequence order
// @Summary Get workshop tasks
// @Description Get all tasks of a workshop ordered by task_order
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Workshop ID"
// @Success 200 {array} models.Task
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /workshops/{id}/tasks [get]
func GetWorkshopTasks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), TaskOperationTimeout)
	defer cancel()

	workshopID := c.Param("id")

	var workshop models.Workshop
	if err := database.DB.WithContext(ctx).First(&workshop, "id = ?", workshopID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrWorkshopNotFound)
		return
	}

	var tasks []models.Task
	if err := database.DB.WithContext(ctx).
		Where("workshop_id = ?", workshopID).
		Order("task_order ASC").
		Find(&tasks).Error; err != nil {
		log.Printf("Failed to fetch tasks for workshop %s: %v", workshopID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchTasks)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask creates a task within a workshop
// @Summary Create a task
// @Description Create a new task in a workshop with a 1-based sequence order
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Workshop ID"
// @Param task body CreateTaskRequest true "Task details"
// @Success 201 {object} models.Task
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /workshops/{id}/tasks [post]
func CreateTask(c *gin.Context) {
	workshopID := c.Param("id")

	var workshop models.Workshop
	if err := database.DB.First(&workshop, "id = ?", workshopID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrWorkshopNotFound)
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	task := models.Task{
		WorkshopID:  workshopID,
		Title:       req.Title,
		Description: req.Description,
		TaskOrder:   req.TaskOrder,
		CreatedAt:   time.Now(),
	}
	if err := database.DB.Create(&task).Error; err != nil {
		log.Printf("Failed to create task in workshop %s: %v", workshopID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedCreateTask)
		return
	}

	realtime.Notify(workshopID, "tasks", "insert")
	c.JSON(http.StatusCreated, task)
}

// UpdateTask updates a task's title, description or sequence order
// @Summary Update a task
// @Description Update a task; activation state is managed through the sequence routes
// @Tags Tasks
// @Accept json
// @Produce json
// @Param task_id path string true "Task ID"
// @Param task body UpdateTaskRequest true "Task details"
// @Success 200 {object} models.Task
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /tasks/{task_id} [put]
func UpdateTask(c *gin.Context) {
	taskID := c.Param("task_id")

	var task models.Task
	if err := database.DB.First(&task, "id = ?", taskID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrTaskNotFound)
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if req.Title != "" {
		task.Title = req.Title
	}
	if req.Description != "" {
		task.Description = req.Description
	}
	if req.TaskOrder != nil && *req.TaskOrder >= 1 {
		task.TaskOrder = *req.TaskOrder
	}

	if err := database.DB.Save(&task).Error; err != nil {
		log.Printf("Failed to update task %s: %v", taskID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedUpdateTask)
		return
	}

	realtime.Notify(task.WorkshopID, "tasks", "update")
	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
// @Summary Delete a task
// @Description Delete a task from its workshop
// @Tags Tasks
// @Accept json
// @Produce json
// @Param task_id path string true "Task ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /tasks/{task_id} [delete]
func DeleteTask(c *gin.Context) {
	taskID := c.Param("task_id")

	var task models.Task
	if err := database.DB.First(&task, "id = ?", taskID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrTaskNotFound)
		return
	}

	if err := database.DB.Delete(&task).Error; err != nil {
		log.Printf("Failed to delete task %s: %v", taskID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteTask)
		return
	}

	realtime.Notify(task.WorkshopID, "tasks", "delete")
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
