package judges

// Constants for error messages
const (
	ErrJudgeNotFound       = "Judge not found"
	ErrGroupNotFound       = "Group not found"
	ErrWorkshopNotFound    = "Workshop not found"
	ErrInvalidRequest      = "Invalid request data"
	ErrFailedFetchJudges   = "Failed to fetch judges"
	ErrFailedCreateJudge   = "Failed to create judge"
	ErrFailedUpdateJudge   = "Failed to update judge"
	ErrFailedDeleteJudge   = "Failed to delete judge"
	ErrFailedAssignGroup   = "Failed to assign judge to group"
	ErrFailedUnassignGroup = "Failed to unassign judge from group"
	ErrGroupOtherWorkshop  = "Group belongs to a different workshop"
)

// CreateJudgeRequest model for creating a judge
type CreateJudgeRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}

// UpdateJudgeRequest model for updating a judge
type UpdateJudgeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
