package models

// Workshop statuses. Transitions are monotonic: draft -> live -> completed.
const (
	WorkshopStatusDraft     = "draft"
	WorkshopStatusLive      = "live"
	WorkshopStatusCompleted = "completed"
)

// Workshop represents a time-boxed group event containing tasks, groups and participants
type Workshop struct {
	ID          string              `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Title       string              `gorm:"type:varchar(100);not null" json:"title"`
	Description string              `gorm:"type:varchar(255)" json:"description"`
	Status      string              `gorm:"type:varchar(20);not null;default:'draft'" json:"status"`
	Tasks       []*Task             `gorm:"foreignKey:WorkshopID" json:"tasks"`
	Groups      []*Group            `gorm:"foreignKey:WorkshopID" json:"groups"`
	Judges      []*Judge            `gorm:"foreignKey:WorkshopID" json:"judges"`
	Entries     []*LeaderboardEntry `gorm:"foreignKey:WorkshopID" json:"entries"`
}
