package workshops

import (
	"errors"
	"log"
	"net/http"

	"workshophub/realtime"
	"workshophub/services"
	"workshophub/utils/response"

	"github.com/gin-gonic/gin"
)

// StartWorkshop moves a workshop from draft to live
// @Summary Start a workshop
// @Description Move a workshop from draft to live status
// @Tags Workshops
// @Accept json
// @Produce json
// @Param id path string true "Workshop ID"
// @Success 200 {object} models.Workshop
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /workshops/{id}/start [put]
func StartWorkshop(c *gin.Context) {
	workshopID := c.Param("id")
	if workshopID == "" {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	workshop, err := services.StartWorkshopByID(workshopID)
	switch {
	case errors.Is(err, services.ErrWorkshopCompleted):
		response.Error(c, http.StatusBadRequest, ErrWorkshopIsCompleted)
		return
	case errors.Is(err, services.ErrInvalidTransition):
		response.Error(c, http.StatusBadRequest, ErrWorkshopNotStartable)
		return
	case err != nil:
		log.Printf("Failed to start workshop %s: %v", workshopID, err)
		response.Error(c, http.StatusNotFound, ErrWorkshopNotFound)
		return
	}

	log.Printf("Workshop %s started", workshopID)
	realtime.Notify(workshopID, "workshops", "update")
	c.JSON(http.StatusOK, workshop)
}

// EndWorkshop ends a live workshop and force-ends all of its tasks
// @Summary End a workshop
// @Description Move a workshop from live to completed and end every task; the cascade is a single transaction
// @Tags Workshops
// @Accept json
// @Produce json
// @Param id path string true "Workshop ID"
// @Success 200 {object} models.Workshop
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /workshops/{id}/end [put]
func EndWorkshop(c *gin.Context) {
	workshopID := c.Param("id")
	if workshopID == "" {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	workshop, err := services.EndWorkshopByID(workshopID)
	switch {
	case errors.Is(err, services.ErrWorkshopCompleted):
		response.Error(c, http.StatusBadRequest, ErrWorkshopIsCompleted)
		return
	case errors.Is(err, services.ErrInvalidTransition):
		response.Error(c, http.StatusBadRequest, ErrWorkshopNotEndable)
		return
	case err != nil:
		log.Printf("Failed to end workshop %s: %v", workshopID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedEndWorkshop)
		return
	}

	log.Printf("Workshop %s ended", workshopID)
	realtime.Notify(workshopID, "workshops", "update")
	realtime.Notify(workshopID, "tasks", "update")
	c.JSON(http.StatusOK, workshop)
}
