package workshops

// Constants for error messages
const (
	ErrWorkshopNotFound      = "Workshop not found"
	ErrInvalidRequest        = "Invalid request data"
	ErrFailedFetchWorkshops  = "Failed to fetch workshops"
	ErrFailedCreateWorkshop  = "Failed to create workshop"
	ErrFailedUpdateWorkshop  = "Failed to update workshop"
	ErrFailedDeleteWorkshop  = "Failed to delete workshop"
	ErrWorkshopNotStartable  = "Workshop can only be started from draft status"
	ErrWorkshopNotEndable    = "Workshop can only be ended while live"
	ErrWorkshopIsCompleted   = "Workshop is completed and cannot change status"
	ErrFailedStartWorkshop   = "Failed to start workshop"
	ErrFailedEndWorkshop     = "Failed to end workshop"
)

// CreateWorkshopRequest model for creating a workshop
type CreateWorkshopRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// UpdateWorkshopRequest model for updating a workshop
type UpdateWorkshopRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
