package leaderboard

import (
	"context"
	"log"
	"net/http"
	"time"

	"workshophub/database"
	"workshophub/metrics"
	"workshophub/models"
	"workshophub/realtime"
	"workshophub/services"
	"workshophub/utils"
	"workshophub/utils/response"

	"github.com/gin-gonic/gin"
)

const (
	LeaderboardOperationTimeout = 5 * time.Second
	leaderboardCacheDuration    = 30 * time.Second
)

// GetLeaderboard retrieves the current standings of a workshop
// @Summary Get the leaderboard
// @Description Get the leaderboard of a workshop ordered by persisted rank; ranks may be stale until a refresh
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Param id path string true "Workshop ID"
// @Success 200 {array} models.LeaderboardEntry
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /workshops/{id}/leaderboard [get]
func GetLeaderboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), LeaderboardOperationTimeout)
	defer cancel()

	workshopID := c.Param("id")

	// Check cache for the standings
	cacheKey := services.LeaderboardCacheKey(workshopID)
	var entries []models.LeaderboardEntry
	cachedData, err := database.REDIS.Get(ctx, cacheKey).Result()
	if err == nil && cachedData != "" {
		if err := utils.UnmarshalJSON([]byte(cachedData), &entries); err == nil {
			metrics.CacheHits.Inc()
			c.JSON(http.StatusOK, entries)
			return
		}
		log.Printf("Failed to unmarshal cached leaderboard: %v", err)
	}
	metrics.CacheMisses.Inc()

	if !services.WorkshopExists(workshopID) {
		response.Error(c, http.StatusNotFound, ErrWorkshopNotFound)
		return
	}

	if err := database.DB.WithContext(ctx).
		Where("workshop_id = ?", workshopID).
		Order("rank ASC, created_at ASC").
		Preload("Group").
		Find(&entries).Error; err != nil {
		log.Printf("Failed to fetch leaderboard for workshop %s: %v", workshopID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchLeaderboard)
		return
	}

	// Cache the standings for future requests
	entriesJSON, err := utils.MarshalJSON(entries)
	if err == nil {
		if err := database.REDIS.Set(ctx, cacheKey, string(entriesJSON), leaderboardCacheDuration).Err(); err != nil {
			log.Printf("Failed to cache leaderboard: %v", err)
		}
	}

	c.JSON(http.StatusOK, entries)
}

// RefreshLeaderboard recomputes and persists ranks for a workshop
// @Summary Refresh the leaderboard
// @Description Recompute all ranks from total scores; only this operation reorders the table
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Param id path string true "Workshop ID"
// @Success 200 {array} models.LeaderboardEntry
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /workshops/{id}/leaderboard/refresh [post]
func RefreshLeaderboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), LeaderboardOperationTimeout)
	defer cancel()

	workshopID := c.Param("id")
	if !services.WorkshopExists(workshopID) {
		response.Error(c, http.StatusNotFound, ErrWorkshopNotFound)
		return
	}

	entries, err := services.RefreshLeaderboard(ctx, workshopID)
	if err != nil {
		log.Printf("Failed to refresh leaderboard for workshop %s: %v", workshopID, err)
		response.Error(c, http.StatusInternalServerError, ErrFailedRefresh)
		return
	}

	realtime.Notify(workshopID, "leaderboard", "update")
	c.JSON(http.StatusOK, entries)
}

// AdjustScore adds a delta to one entry's total score
// @Summary Adjust a group's score
// @Description Add a positive or negative delta to an entry's total score; ranks stay unchanged until the next refresh
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Param entry_id path string true "Leaderboard entry ID"
// @Param adjustment body AdjustScoreRequest true "Score delta"
// @Success 200 {object} models.LeaderboardEntry
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /leaderboard/{entry_id}/adjust [put]
func AdjustScore(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), LeaderboardOperationTimeout)
	defer cancel()

	entryID := c.Param("entry_id")

	var req AdjustScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	entry, err := services.AdjustEntryScore(ctx, entryID, req.Delta)
	if err != nil {
		log.Printf("Failed to adjust score for entry %s: %v", entryID, err)
		response.Error(c, http.StatusNotFound, ErrEntryNotFound)
		return
	}

	realtime.Notify(entry.WorkshopID, "leaderboard", "update")
	c.JSON(http.StatusOK, entry)
}
