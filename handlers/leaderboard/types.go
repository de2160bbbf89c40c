package leaderboard

// Constants for error messages
const (
	ErrEntryNotFound          = "Leaderboard entry not found"
	ErrWorkshopNotFound       = "Workshop not found"
	ErrInvalidRequest         = "Invalid request data"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrFailedRefresh          = "Failed to refresh leaderboard"
	ErrFailedAdjustScore      = "Failed to adjust score"
	ErrFailedExport           = "Failed to export leaderboard"
)

// AdjustScoreRequest model for adjusting a group's total score
type AdjustScoreRequest struct {
	Delta int `json:"delta" binding:"required"`
}
