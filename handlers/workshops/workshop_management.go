package workshops

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
	"gorm.io/gorm"
)

const (
	WorkshopOperationTimeout = 5 * time.Second
)

// GetAllWorkshops retrieves all workshops
// @Summary Get all workshops
// @Description Get all workshops ordered by title
// @Tags Workshops
// @Accept json
// @Produce json
// @Success 200 {array} models.Workshop
// @Failure 500 {object} response.ErrorResponse
// @Router /workshops [get]
func GetAllWorkshops(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), WorkshopOperationTimeout)
	defer cancel()

	var workshops []models.Workshop
	if err := database.DB.WithContext(ctx).Order("title ASC").Find(&workshops).Error; err != nil {
		log.Printf("Failed to fetch workshops: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchWorkshops)
		return
	}

	c.JSON(http.StatusOK, workshops)
}

// GetWorkshop retrieves a workshop with its associations
// @Summary Get a workshop
// @Description Get a workshop with its tasks, groups and judges
// @Tags Workshops
// @Accept json
// @Produce json
// @Param id path string true "Workshop ID"
// @Success 200 {object} models.Workshop
// @Failure 404 {object} response.ErrorResponse
// @Router /workshops/{id} [get]
func GetWorkshop(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), WorkshopOperationTimeout)
	defer cancel()

	workshopID := c.Param("id")
	var workshop models.Workshop
	if err := database.DB.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("task_order ASC") }).
		Preload("Groups.Participants").
		Preload("Judges").
		First(&workshop, "id = ?", workshopID).Error; err != nil {
		log.Printf("Workshop not found (ID: %s): %v", workshopID, err)
		response.Error(c, http.StatusNotFound, ErrWorkshopNotFound)
		return
	}

	c.JSON(http.StatusOK, workshop)
}

// CreateWorkshop creates a workshop in draft status
// @Summary Create a workshop
// @Description Create a new workshop; it always starts in draft status
// @Tags Workshops
// @Accept json
// @Produce json
// @Param workshop body CreateWorkshopRequest true "Workshop details"
// @Success 201 {object} models.Workshop
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /workshops [post]
func CreateWorkshop(c *gin.Context) {
	var req CreateWorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	workshop := models.Workshop{
		Title:       req.Title,
		Description: req.Description,
		Status:      models.WorkshopStatusDraft,
	}
	if err := database.DB.Create(&workshop).Error; err != nil {
		log.Printf("Failed to create workshop: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedCreateWorkshop)
		return
	}

	realtime.Notify(workshop.ID, "workshops", "insert")
	c.JSON(http.StatusCreated, workshop)
}

// UpdateWorkshop updates a workshop's title and description
// @Summary Update a workshop
// @Description Update the title and description of a workshop
// @Tags Workshops
// @Accept json
// @Produce json
// @Param id path string true "Workshop ID"
// @Param workshop body UpdateWorkshopRequest true "Workshop details"
// @Success 200 {object} models.Workshop
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /workshops/{id} [put]
func UpdateWorkshop(c *gin.Context) {
	workshopID := c.Param("id")

	var workshop models.Workshop
	if err := database.DB.First(&workshop, "id = ?", workshopID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrWorkshopNotFound)
		return
	}

	var req UpdateWorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if req.Title != "" {
		workshop.Title = req.Title
	}
	if req.Description != "" {
		workshop.Description = req.Description
	}

	if err := database.DB.Save(&workshop).Error; err != nil {
		log.Printf("Failed to update workshop %s: %v", workshopID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedUpdateWorkshop)
		return
	}

	realtime.Notify(workshop.ID, "workshops", "update")
	c.JSON(http.StatusOK, workshop)
}

// DeleteWorkshop deletes a workshop and everything it owns
// @Summary Delete a workshop
// @Description Delete a workshop with its tasks, groups, participants, judges, leaderboard entries and announcements
// @Tags Workshops
// @Accept json
// @Produce json
// @Param id path string true "Workshop ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /workshops/{id} [delete]
func DeleteWorkshop(c *gin.Context) {
	workshopID := c.Param("id")

	var workshop models.Workshop
	if err := database.DB.First(&workshop, "id = ?", workshopID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrWorkshopNotFound)
		return
	}

	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, model := range []interface{}{
		&models.Announcement{},
		&models.LeaderboardEntry{},
		&models.Participant{},
		&models.Judge{},
		&models.Group{},
		&models.Task{},
	} {
		if err := tx.Where("workshop_id = ?", workshopID).Delete(model).Error; err != nil {
			tx.Rollback()
			log.Printf("Failed to delete workshop %s contents: %v", workshopID, err)
			response.Error(c, http.StatusInternalServerError, ErrFailedDeleteWorkshop)
			return
		}
	}

	if err := tx.Delete(&workshop).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to delete workshop %s: %v", workshopID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteWorkshop)
		return
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Failed to commit workshop deletion: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteWorkshop)
		return
	}

	realtime.Notify(workshopID, "workshops", "delete")
	c.JSON(http.StatusOK, gin.H{"message": "Workshop deleted successfully"})
}
