package groups

import (
	"log"
	"net/http"

	"workshophub/database"
	"workshophub/models"
	"workshophub/realtime"
	"workshophub/utils/response"

	"github.com/gin-gonic/gin"
)

// AddParticipantToGroup assigns a participant to a group
// @Summary Add a participant to a group
// @Description Assign a participant of the same workshop to a group; reassigning from another group is allowed
// @Tags Groups
// @Accept json
// @Produce json
// @Param group_id path string true "Group ID"
// @Param participant_id path string true "Participant ID"
// @Success 200 {object} models.Group
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /groups/{group_id}/participants/{participant_id} [post]
func AddParticipantToGroup(c *gin.Context) {
	groupID := c.Param("group_id")
	participantID := c.Param("participant_id")

	var group models.Group
	if err := database.DB.First(&group, "id = ?", groupID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrGroupNotFound)
		return
	}

	var participant models.Participant
	if err := database.DB.First(&participant, "id = ?", participantID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrParticipantNotFound)
		return
	}

	if participant.WorkshopID != group.WorkshopID {
		response.Error(c, http.StatusBadRequest, ErrParticipantOtherWorkshop)
		return
	}

	if err := database.DB.Model(&participant).Update("group_id", groupID).Error; err != nil {
		log.Printf("Failed to add participant %s to group %s: %v", participantID, groupID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedAddParticipant)
		return
	}

	if err := database.DB.Preload("Participants").First(&group, "id = ?", groupID).Error; err != nil {
		log.Printf("Failed to reload group %s: %v", groupID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedAddParticipant)
		return
	}

	realtime.Notify(group.WorkshopID, "participants", "update")
	c.JSON(http.StatusOK, group)
}

// RemoveParticipantFromGroup detaches a participant from a group
// @Summary Remove a participant from a group
// @Description Detach a participant from a group; the participant stays in the workshop
// @Tags Groups
// @Accept json
// @Produce json
// @Param group_id path string true "Group ID"
// @Param participant_id path string true "Participant ID"
// @Success 200 {object} models.Group
// @Failure 404 {object} response.ErrorResponse
// @Router /groups/{group_id}/participants/{participant_id} [delete]
func RemoveParticipantFromGroup(c *gin.Context) {
	groupID := c.Param("group_id")
	participantID := c.Param("participant_id")

	var group models.Group
	if err := database.DB.First(&group, "id = ?", groupID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrGroupNotFound)
		return
	}

	var participant models.Participant
	if err := database.DB.First(&participant, "id = ? AND group_id = ?", participantID, groupID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrParticipantNotFound)
		return
	}

	if err := database.DB.Model(&participant).Update("group_id", nil).Error; err != nil {
		log.Printf("Failed to remove participant %s from group %s: %v", participantID, groupID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedRemoveParticipant)
		return
	}

	if err := database.DB.Preload("Participants").First(&group, "id = ?", groupID).Error; err != nil {
		log.Printf("Failed to reload group %s: %v", groupID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedRemoveParticipant)
		return
	}

	realtime.Notify(group.WorkshopID, "participants", "update")
	c.JSON(http.StatusOK, group)
}
