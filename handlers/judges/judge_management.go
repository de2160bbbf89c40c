package judges

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
	JudgeOperationTimeout = 5 * time.Second
)

// GetWorkshopJudges retrieves all judges of a workshop
// @Summary Get workshop judges
// @Description Get all judges of a workshop with their assigned groups
// @Tags Judges
// @Accept json
// @Produce json
// @Param id path string true "Workshop ID"
// @Success 200 {array} models.Judge
// @Failure 500 {object} response.ErrorResponse
// @Router /workshops/{id}/judges [get]
func GetWorkshopJudges(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), JudgeOperationTimeout)
	defer cancel()

	workshopID := c.Param("id")

	var judges []models.Judge
	if err := database.DB.WithContext(ctx).
		Where("workshop_id = ?", workshopID).
		Preload("Groups").
		Find(&judges).Error; err != nil {
		log.Printf("Failed to fetch judges for workshop %s: %v", workshopID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchJudges)
		return
	}

	c.JSON(http.StatusOK, judges)
}

// CreateJudge registers a judge in a workshop
// @Summary Create a judge
// @Description Register a new judge in a workshop
// @Tags Judges
// @Accept json
// @Produce json
// @Param id path string true "Workshop ID"
// @Param judge body CreateJudgeRequest true "Judge details"
// @Success 201 {object} models.Judge
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /workshops/{id}/judges [post]
func CreateJudge(c *gin.Context) {
	workshopID := c.Param("id")

	var workshop models.Workshop
	if err := database.DB.First(&workshop, "id = ?", workshopID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrWorkshopNotFound)
		return
	}

	var req CreateJudgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	judge := models.Judge{
		WorkshopID: workshopID,
		Name:       req.Name,
		Email:      req.Email,
	}
	if err := database.DB.Create(&judge).Error; err != nil {
		log.Printf("Failed to create judge in workshop %s: %v", workshopID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedCreateJudge)
		return
	}

	realtime.Notify(workshopID, "judges", "insert")
	c.JSON(http.StatusCreated, judge)
}

// UpdateJudge updates a judge's name or email
// @Summary Update a judge
// @Description Update the name and email of a judge
// @Tags Judges
// @Accept json
// @Produce json
// @Param judge_id path string true "Judge ID"
// @Param judge body UpdateJudgeRequest true "Judge details"
// @Success 200 {object} models.Judge
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /judges/{judge_id} [put]
func UpdateJudge(c *gin.Context) {
	judgeID := c.Param("judge_id")

	var judge models.Judge
	if err := database.DB.First(&judge, "id = ?", judgeID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrJudgeNotFound)
		return
	}

	var req UpdateJudgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if req.Name != "" {
		judge.Name = req.Name
	}
	if req.Email != "" {
		judge.Email = req.Email
	}

	if err := database.DB.Save(&judge).Error; err != nil {
		log.Printf("Failed to update judge %s: %v", judgeID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedUpdateJudge)
		return
	}

	realtime.Notify(judge.WorkshopID, "judges", "update")
	c.JSON(http.StatusOK, judge)
}

// DeleteJudge removes a judge and their group assignments
// @Summary Delete a judge
// @Description Remove a judge from a workshop along with all group assignments
// @Tags Judges
// @Accept json
// @Produce json
// @Param judge_id path string true "Judge ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /judges/{judge_id} [delete]
func DeleteJudge(c *gin.Context) {
	judgeID := c.Param("judge_id")

	var judge models.Judge
	if err := database.DB.First(&judge, "id = ?", judgeID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrJudgeNotFound)
		return
	}

	tx := database.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Exec("DELETE FROM judge_assignments WHERE judge_id = ?", judgeID).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to delete assignments for judge %s: %v", judgeID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteJudge)
		return
	}

	if err := tx.Delete(&judge).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to delete judge %s: %v", judgeID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteJudge)
		return
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Failed to commit judge deletion: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteJudge)
		return
	}

	realtime.Notify(judge.WorkshopID, "judges", "delete")
	c.JSON(http.StatusOK, gin.H{"message": "Judge deleted successfully"})
}
