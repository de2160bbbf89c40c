package participants

// Constants for error messages
const (
	ErrParticipantNotFound      = "Participant not found"
	ErrWorkshopNotFound         = "Workshop not found"
	ErrInvalidRequest           = "Invalid request data"
	ErrFailedFetchParticipants  = "Failed to fetch participants"
	ErrFailedCreateParticipant  = "Failed to create participant"
	ErrFailedUpdateParticipant  = "Failed to update participant"
	ErrFailedDeleteParticipant  = "Failed to delete participant"
	ErrFailedImportParticipants = "Failed to import participants"
)

// CreateParticipantRequest model for creating a participant
type CreateParticipantRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}

// UpdateParticipantRequest model for updating a participant
type UpdateParticipantRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
