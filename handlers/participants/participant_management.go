package participants

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
	ParticipantOperationTimeout = 5 * time.Second
)

// GetWorkshopParticipants retrieves all participants of a workshop
// @Summary Get workshop participants
// @Description Get all participants of a workshop ordered by name
// @Tags Participants
// @Accept json
// @Produce json
// @Param id path string true "Workshop ID"
// @Success 200 {array} models.Participant
// @Failure 500 {object} response.ErrorResponse
// @Router /workshops/{id}/participants [get]
func GetWorkshopParticipants(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), ParticipantOperationTimeout)
	defer cancel()

	workshopID := c.Param("id")

	var participants []models.Participant
	if err := database.DB.WithContext(ctx).
		Where("workshop_id = ?", workshopID).
		Order("name ASC").
		Find(&participants).Error; err != nil {
		log.Printf("Failed to fetch participants for workshop %s: %v", workshopID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchParticipants)
		return
	}

	c.JSON(http.StatusOK, participants)
}

// CreateParticipant registers a participant in a workshop
// @Summary Create a participant
// @Description Register a new participant in a workshop, initially without a group
// @Tags Participants
// @Accept json
// @Produce json
// @Param id path string true "Workshop ID"
// @Param participant body CreateParticipantRequest true "Participant details"
// @Success 201 {object} models.Participant
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /workshops/{id}/participants [post]
func CreateParticipant(c *gin.Context) {
	workshopID := c.Param("id")

	var workshop models.Workshop
	if err := database.DB.First(&workshop, "id = ?", workshopID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrWorkshopNotFound)
		return
	}

	var req CreateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	participant := models.Participant{
		WorkshopID: workshopID,
		Name:       req.Name,
		Email:      req.Email,
	}
	if err := database.DB.Create(&participant).Error; err != nil {
		log.Printf("Failed to create participant in workshop %s: %v", workshopID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedCreateParticipant)
		return
	}

	realtime.Notify(workshopID, "participants", "insert")
	c.JSON(http.StatusCreated, participant)
}

// UpdateParticipant updates a participant's name or email
// @Summary Update a participant
// @Description Update the name and email of a participant
// @Tags Participants
// @Accept json
// @Produce json
// @Param participant_id path string true "Participant ID"
// @Param participant body UpdateParticipantRequest true "Participant details"
// @Success 200 {object} models.Participant
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /participants/{participant_id} [put]
func UpdateParticipant(c *gin.Context) {
	participantID := c.Param("participant_id")

	var participant models.Participant
	if err := database.DB.First(&participant, "id = ?", participantID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrParticipantNotFound)
		return
	}

	var req UpdateParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	if req.Name != "" {
		participant.Name = req.Name
	}
	if req.Email != "" {
		participant.Email = req.Email
	}

	if err := database.DB.Save(&participant).Error; err != nil {
		log.Printf("Failed to update participant %s: %v", participantID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedUpdateParticipant)
		return
	}

	realtime.Notify(participant.WorkshopID, "participants", "update")
	c.JSON(http.StatusOK, participant)
}

// DeleteParticipant removes a participant from a workshop
// @Summary Delete a participant
// @Description Remove a participant from a workshop
// @Tags Participants
// @Accept json
// @Produce json
// @Param participant_id path string true "Participant ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /participants/{participant_id} [delete]
func DeleteParticipant(c *gin.Context) {
	participantID := c.Param("participant_id")

	var participant models.Participant
	if err := database.DB.First(&participant, "id = ?", participantID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrParticipantNotFound)
		return
	}

	if err := database.DB.Delete(&participant).Error; err != nil {
		log.Printf("Failed to delete participant %s: %v", participantID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteParticipant)
		return
	}

	realtime.Notify(participant.WorkshopID, "participants", "delete")
	c.JSON(http.StatusOK, gin.H{"message": "Participant deleted successfully"})
}
