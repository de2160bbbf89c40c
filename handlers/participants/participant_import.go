package participants

import (
	"log"
	"net/http"

	"workshophub/database"
	"workshophub/models"
	"workshophub/realtime"
	"workshophub/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ImportParticipantsFromXLSX bulk-registers participants from an uploaded spreadsheet
// @Summary Import participants from an XLSX file
// @Description Upload a spreadsheet with Name and Email columns; one participant is created per data row
// @Tags Participants
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Workshop ID"
// @Param file formData file true "XLSX file"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /workshops/{id}/participants/import [post]
func ImportParticipantsFromXLSX(c *gin.Context) {
	workshopID := c.Param("id")

	var workshop models.Workshop
	if err := database.DB.First(&workshop, "id = ?", workshopID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrWorkshopNotFound)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to get file: "+err.Error())
		return
	}

	openedFile, err := file.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to open file: "+err.Error())
		return
	}
	defer openedFile.Close()

	xlsx, err := excelize.OpenReader(openedFile)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to parse XLSX file: "+err.Error())
		return
	}

	var imported []models.Participant
	for _, sheetName := range xlsx.GetSheetList() {
		rows, err := xlsx.GetRows(sheetName)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to read sheet: "+err.Error())
			return
		}

		if len(rows) < 2 { // At least header and one data row
			continue
		}

		// Find column indices
		nameIdx, emailIdx := -1, -1
		for i, cell := range rows[0] {
			switch cell {
			case "Name", "Nom", "Full Name":
				nameIdx = i
			case "Email", "E-mail":
				emailIdx = i
			}
		}

		if nameIdx == -1 {
			continue
		}

		for i := 1; i < len(rows); i++ {
			row := rows[i]
			if len(row) <= nameIdx || row[nameIdx] == "" {
				continue
			}

			email := ""
			if emailIdx != -1 && len(row) > emailIdx {
				email = row[emailIdx]
			}

			imported = append(imported, models.Participant{
				WorkshopID: workshopID,
				Name:       row[nameIdx],
				Email:      email,
			})
		}
	}

	if len(imported) == 0 {
		response.Error(c, http.StatusBadRequest, "No participants found in file")
		return
	}

	if err := database.DB.Create(&imported).Error; err != nil {
		log.Printf("Failed to import participants into workshop %s: %v", workshopID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedImportParticipants)
		return
	}

	log.Printf("Imported %d participants into workshop %s", len(imported), workshopID)
	realtime.Notify(workshopID, "participants", "insert")
	c.JSON(http.StatusOK, gin.H{"imported": len(imported)})
}
