package groups

// Constants for error messages
const (
	ErrGroupNotFound            = "Group not found"
	ErrWorkshopNotFound         = "Workshop not found"
	ErrParticipantNotFound      = "Participant not found"
	ErrInvalidRequest           = "Invalid request data"
	ErrFetchingGroups           = "Error while fetching groups"
	ErrFailedCreateGroup        = "Failed to create group"
	ErrFailedUpdateGroup        = "Failed to update group"
	ErrFailedDeleteGroup        = "Failed to delete group"
	ErrFailedGenerateCode       = "Failed to generate group code"
	ErrParticipantOtherWorkshop = "Participant belongs to a different workshop"
	ErrFailedAddParticipant     = "Failed to add participant to group"
	ErrFailedRemoveParticipant  = "Failed to remove participant from group"
)

// CreateGroupRequest model for creating a group
type CreateGroupRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateGroupRequest model for updating a group
type UpdateGroupRequest struct {
	Name string `json:"name"`
}
