package announcements

// Constants for error messages
const (
	ErrWorkshopNotFound         = "Workshop not found"
	ErrInvalidRequest           = "Invalid request data"
	ErrFailedFetchAnnouncements = "Failed to fetch announcements"
	ErrFailedCreateAnnouncement = "Failed to create announcement"
)

// CreateAnnouncementRequest model for creating an announcement
type CreateAnnouncementRequest struct {
	Message   string `json:"message" binding:"required"`
	SendEmail bool   `json:"send_email"`
}
