package leaderboard

import (
	"fmt"
	"log"
	"net/http"

	"workshophub/database"
	"workshophub/models"
	"workshophub/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportLeaderboardExcel exports the standings of a workshop as an XLSX file
// @Summary Export the leaderboard
// @Description Download the current standings as an XLSX spreadsheet
// @Tags Leaderboard
// @Accept json
// @Produce application/octet-stream
// @Param id path string true "Workshop ID"
// @Success 200 {file} binary
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /workshops/{id}/leaderboard/export [get]
func ExportLeaderboardExcel(c *gin.Context) {
	workshopID := c.Param("id")

	var workshop models.Workshop
	if err := database.DB.First(&workshop, "id = ?", workshopID).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrWorkshopNotFound)
		return
	}

	var entries []models.LeaderboardEntry
	if err := database.DB.
		Where("workshop_id = ?", workshopID).
		Order("rank ASC, created_at ASC").
		Preload("Group").
		Find(&entries).Error; err != nil {
		log.Printf("Failed to fetch leaderboard for export (workshop %s): %v", workshopID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedExport)
		return
	}

	xlsx := excelize.NewFile()
	sheet := xlsx.GetSheetName(0)

	headers := []string{"Rank", "Group", "Code", "Total Score"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		xlsx.SetCellValue(sheet, cell, header)
	}

	for i, entry := range entries {
		row := i + 2
		groupName := ""
		groupCode := ""
		if entry.Group != nil {
			groupName = entry.Group.Name
			groupCode = entry.Group.GroupCode
		}
		xlsx.SetCellValue(sheet, fmt.Sprintf("A%d", row), entry.Rank)
		xlsx.SetCellValue(sheet, fmt.Sprintf("B%d", row), groupName)
		xlsx.SetCellValue(sheet, fmt.Sprintf("C%d", row), groupCode)
		xlsx.SetCellValue(sheet, fmt.Sprintf("D%d", row), entry.TotalScore)
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=leaderboard-%s.xlsx", workshopID))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := xlsx.Write(c.Writer); err != nil {
		log.Printf("Failed to write leaderboard export: %v", err)
	}
}
