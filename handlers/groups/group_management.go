package groups

import (
	"context"
	"log"
	"net/http"
	"time"

	"workshophub/database"
	"workshophub/models"
	"workshophub/realtime"
	"workshophub/services"
	"workshophub/utils/response"

	"github.com/gin-gonic/gin"
)

// Constants for database operations
const (
	defaultQueryTimeout = 5 * time.Second
)

// withTimeout executes a database operation with a timeout context
// dbOperation: The database operation function to execute with timeout
// returns: Error if the operation fails or times out
func withTimeout(dbOperation func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultQueryTimeout)
	defer cancel()
	return dbOperation(ctx)
}

// GetWorkshopGroups retrieves all groups of a workshop
// @Summary Get workshop groups
// @Description Get all groups of a workshop with their participants
// @Tags Groups
// @Accept json
// @Produce json
// @Param id path string true "Workshop ID"
// @Success 200 {array} models.Group
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /workshops/{id}/groups [get]
func GetWorkshopGroups(c *gin.Context) {
	workshopID := c.Param("id")

	var groups []models.Group
	err := withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).
			Where("workshop_id = ?", workshopID).
			Preload("Participants").
			Find(&groups).Error
	})

	if err != nil {
		log.Printf("Failed to fetch groups for workshop %s: %v", workshopID, err)
		response.Error(c, http.StatusInternalServerError, ErrFetchingGroups)
		return
	}

	c.JSON(http.StatusOK, groups)
}

// GetGroup retrieves a group by ID
// @Summary Get a group
// @Description Get a group with its participants and judges
// @Tags Groups
// @Accept json
// @Produce json
// @Param group_id path string true "Group ID"
// @Success 200 {object} models.Group
// @Failure 404 {object} response.ErrorResponse
// @Router /groups/{group_id} [get]
func GetGroup(c *gin.Context) {
	groupID := c.Param("group_id")
	var group models.Group

	err := withTimeout(func(ctx context.Context) error {
		return database.DB.WithContext(ctx).
			Where("id = ?", groupID).
			Preload("Participants").
			Preload("Judges").
			First(&group).Error
	})

	if err != nil {
		response.Error(c, http.StatusNotFound, ErrGroupNotFound)
		return
	}

	c.JSON(http.StatusOK, group)
}

// CreateGroup creates a group with a generated join code and a leaderboard entry
// @Summary Create a group
// @Description Create a new group in a workshop; a unique 6-character join code and an empty leaderboard entry are created with it
// @Tags Groups
// @Accept json
// @Produce json
// @Param id path string true "Workshop ID"
// @Param group body CreateGroupRequest true "Group details"
// @Success 201 {object} models.Group
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /workshops/{id}/groups [post]
func CreateGroup(c *gin.Context) {
	workshopID := c.Param("id")

	var workshop models.Workshop
	if err := database.DB.First(&workshop, "id = ?", workshopID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrWorkshopNotFound)
		return
	}

	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	code, err := services.UniqueGroupCode()
	if err != nil {
		log.Printf("Failed to generate group code: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedGenerateCode)
		return
	}

	group := models.Group{
		WorkshopID: workshopID,
		Name:       req.Name,
		GroupCode:  code,
	}

	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&group).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to create group in workshop %s: %v", workshopID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedCreateGroup)
		return
	}

	entry := models.LeaderboardEntry{
		WorkshopID: workshopID,
		GroupID:    group.ID,
		CreatedAt:  time.Now(),
	}
	if err := tx.Create(&entry).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to create leaderboard entry for group %s: %v", group.ID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedCreateGroup)
		return
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Failed to commit group creation: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedCreateGroup)
		return
	}

	realtime.Notify(workshopID, "groups", "insert")
	c.JSON(http.StatusCreated, group)
}

// UpdateGroup updates a group's name
// @Summary Update a group
// @Description Update the name of a group
// @Tags Groups
// @Accept json
// @Produce json
// @Param group_id path string true "Group ID"
// @Param group body UpdateGroupRequest true "Group details"
// @Success 200 {object} models.Group
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /groups/{group_id} [put]
func UpdateGroup(c *gin.Context) {
	groupID := c.Param("group_id")

	var group models.Group
	if err := database.DB.First(&group, "id = ?", groupID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrGroupNotFound)
		return
	}

	var req UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if req.Name != "" {
		group.Name = req.Name
	}

	if err := database.DB.Save(&group).Error; err != nil {
		log.Printf("Failed to update group %s: %v", groupID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedUpdateGroup)
		return
	}

	realtime.Notify(group.WorkshopID, "groups", "update")
	c.JSON(http.StatusOK, group)
}

// RegenerateGroupCode replaces a group's join code with a fresh unique one
// @Summary Regenerate a group code
// @Description Replace the group's join code with a newly generated unique code
// @Tags Groups
// @Accept json
// @Produce json
// @Param group_id path string true "Group ID"
// @Success 200 {object} models.Group
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /groups/{group_id}/code [put]
func RegenerateGroupCode(c *gin.Context) {
	groupID := c.Param("group_id")

	var group models.Group
	if err := database.DB.First(&group, "id = ?", groupID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrGroupNotFound)
		return
	}

	code, err := services.UniqueGroupCode()
	if err != nil {
		log.Printf("Failed to generate group code: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedGenerateCode)
		return
	}

	group.GroupCode = code
	if err := database.DB.Model(&group).Update("group_code", code).Error; err != nil {
		log.Printf("Failed to update group code for %s: %v", groupID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedUpdateGroup)
		return
	}

	realtime.Notify(group.WorkshopID, "groups", "update")
	c.JSON(http.StatusOK, group)
}

// DeleteGroup deletes a group, detaching its participants and removing its leaderboard entry
// @Summary Delete a group
// @Description Delete a group; its participants are detached and its leaderboard entry removed
// @Tags Groups
// @Accept json
// @Produce json
// @Param group_id path string true "Group ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /groups/{group_id} [delete]
func DeleteGroup(c *gin.Context) {
	groupID := c.Param("group_id")

	var group models.Group
	if err := database.DB.First(&group, "id = ?", groupID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrGroupNotFound)
		return
	}

	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Model(&models.Participant{}).
		Where("group_id = ?", groupID).
		Update("group_id", nil).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to detach participants from group %s: %v", groupID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteGroup)
		return
	}

	if err := tx.Where("group_id = ?", groupID).Delete(&models.LeaderboardEntry{}).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to delete leaderboard entry for group %s: %v", groupID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteGroup)
		return
	}

	if err := tx.Exec("DELETE FROM judge_assignments WHERE group_id = ?", groupID).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to delete judge assignments for group %s: %v", groupID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteGroup)
		return
	}

	if err := tx.Delete(&group).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to delete group %s: %v", groupID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteGroup)
		return
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Failed to commit group deletion: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteGroup)
		return
	}

	realtime.Notify(group.WorkshopID, "groups", "delete")
	c.JSON(http.StatusOK, gin.H{"message": "Group deleted successfully"})
}
