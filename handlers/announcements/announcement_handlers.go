package announcements

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

const (
	AnnouncementOperationTimeout = 5 * time.Second
)

// GetWorkshopAnnouncements retrieves all announcements of a workshop, newest first
// @Summary Get workshop announcements
// @Description Get all announcements of a workshop ordered by creation time descending
// @Tags Announcements
// @Accept json
// @Produce json
// @Param id path string true "Workshop ID"
// @Success 200 {array} models.Announcement
// @Failure 500 {object} response.ErrorResponse
// @Router /workshops/{id}/announcements [get]
func GetWorkshopAnnouncements(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), AnnouncementOperationTimeout)
	defer cancel()

	workshopID := c.Param("id")

	var announcements []models.Announcement
	if err := database.DB.WithContext(ctx).
		Where("workshop_id = ?", workshopID).
		Order("created_at DESC").
		Find(&announcements).Error; err != nil {
		log.Printf("Failed to fetch announcements for workshop %s: %v", workshopID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchAnnouncements)
		return
	}

	c.JSON(http.StatusOK, announcements)
}

// CreateAnnouncement broadcasts an announcement to a workshop
// @Summary Create an announcement
// @Description Create an immutable announcement; subscribers are notified and participants can optionally be emailed
// @Tags Announcements
// @Accept json
// @Produce json
// @Param id path string true "Workshop ID"
// @Param announcement body CreateAnnouncementRequest true "Announcement details"
// @Success 201 {object} models.Announcement
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /workshops/{id}/announcements [post]
func CreateAnnouncement(c *gin.Context) {
	workshopID := c.Param("id")

	var workshop models.Workshop
	if err := database.DB.First(&workshop, "id = ?", workshopID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrWorkshopNotFound)
		return
	}

	var req CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	announcement := models.Announcement{
		WorkshopID: workshopID,
		Message:    req.Message,
		CreatedAt:  time.Now(),
	}
	if err := database.DB.Create(&announcement).Error; err != nil {
		log.Printf("Failed to create announcement in workshop %s: %v", workshopID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedCreateAnnouncement)
		return
	}

	if req.SendEmail {
		go emailParticipants(workshop, announcement.Message)
	}

	realtime.Notify(workshopID, "announcements", "insert")
	c.JSON(http.StatusCreated, announcement)
}

// emailParticipants mails the announcement to every participant with an email
// address. Failures are logged, never surfaced to the admin.
func emailParticipants(workshop models.Workshop, message string) {
	emailService := services.NewEmailService()
	if !emailService.Enabled() {
		return
	}

	var recipients []string
	if err := database.DB.Model(&models.Participant{}).
		Where("workshop_id = ? AND email <> ''", workshop.ID).
		Pluck("email", &recipients).Error; err != nil {
		log.Printf("Failed to fetch announcement recipients for workshop %s: %v", workshop.ID, err)
		return
	}

	if err := emailService.SendAnnouncementEmail(recipients, workshop.Title, message); err != nil {
		log.Printf("Failed to email announcement for workshop %s: %v", workshop.ID, err)
	}
}
