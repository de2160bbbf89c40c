package judges

import (
	"context"
	"log"
	"net/http"

	"workshophub/database"
	"workshophub/models"
	"workshophub/realtime"
	"workshophub/utils/response"

	"github.com/gin-gonic/gin"
)

// AssignJudgeToGroup assigns a judge to a group
// @Summary Assign a judge to a group
// @Description Assign a judge to a group of the same workshop; assigning twice is a no-op
// @Tags Judges
// @Accept json
// @Produce json
// @Param judge_id path string true "Judge ID"
// @Param group_id path string true "Group ID"
// @Success 200 {object} models.Judge
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /judges/{judge_id}/groups/{group_id} [post]
func AssignJudgeToGroup(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), JudgeOperationTimeout)
	defer cancel()

	judgeID := c.Param("judge_id")
	groupID := c.Param("group_id")

	if judgeID == "" || groupID == "" {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	tx := database.DB.WithContext(ctx).Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var judge models.Judge
	if err := tx.First(&judge, "id = ?", judgeID).Error; err != nil {
		tx.Rollback()
		log.Printf("Judge not found (ID: %s): %v", judgeID, err)
		response.Error(c, http.StatusNotFound, ErrJudgeNotFound)
		return
	}

	var group models.Group
	if err := tx.First(&group, "id = ?", groupID).Error; err != nil {
		tx.Rollback()
		log.Printf("Group not found (ID: %s): %v", groupID, err)
		response.Error(c, http.StatusNotFound, ErrGroupNotFound)
		return
	}

	if group.WorkshopID != judge.WorkshopID {
		tx.Rollback()
		response.Error(c, http.StatusBadRequest, ErrGroupOtherWorkshop)
		return
	}

	// ON CONFLICT DO NOTHING keeps the assignment idempotent
	if err := tx.Exec("INSERT INTO judge_assignments (judge_id, group_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		judgeID, groupID).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to assign judge %s to group %s: %v", judgeID, groupID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedAssignGroup)
		return
	}

	if err := tx.Preload("Groups").First(&judge, "id = ?", judgeID).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to reload judge %s: %v", judgeID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedAssignGroup)
		return
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Failed to commit transaction: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedAssignGroup)
		return
	}

	realtime.Notify(judge.WorkshopID, "judges", "update")
	c.JSON(http.StatusOK, judge)
}

// UnassignJudgeFromGroup removes a judge's assignment to a group
// @Summary Unassign a judge from a group
// @Description Remove the assignment between a judge and a group
// @Tags Judges
// @Accept json
// @Produce json
// @Param judge_id path string true "Judge ID"
// @Param group_id path string true "Group ID"
// @Success 200 {object} models.Judge
// @Failure 404 {object} response.ErrorResponse
// @Router /judges/{judge_id}/groups/{group_id} [delete]
func UnassignJudgeFromGroup(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), JudgeOperationTimeout)
	defer cancel()

	judgeID := c.Param("judge_id")
	groupID := c.Param("group_id")

	tx := database.DB.WithContext(ctx).Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var judge models.Judge
	if err := tx.First(&judge, "id = ?", judgeID).Error; err != nil {
		tx.Rollback()
		log.Printf("Judge not found (ID: %s): %v", judgeID, err)
		response.Error(c, http.StatusNotFound, ErrJudgeNotFound)
		return
	}

	if err := tx.Exec("DELETE FROM judge_assignments WHERE judge_id = ? AND group_id = ?",
		judgeID, groupID).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to unassign judge %s from group %s: %v", judgeID, groupID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedUnassignGroup)
		return
	}

	if err := tx.Preload("Groups").First(&judge, "id = ?", judgeID).Error; err != nil {
		tx.Rollback()
		log.Printf("Failed to reload judge %s: %v", judgeID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedUnassignGroup)
		return
	}

	if err := tx.Commit().Error; err != nil {
		log.Printf("Failed to commit transaction: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedUnassignGroup)
		return
	}

	realtime.Notify(judge.WorkshopID, "judges", "update")
	c.JSON(http.StatusOK, judge)
}
