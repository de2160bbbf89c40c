package models

// Participant represents a person attending a workshop, optionally assigned to a group
type Participant struct {
	ID         string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	WorkshopID string    `gorm:"type:uuid;not null;column:workshop_id" json:"workshop_id"`
	GroupID    *string   `gorm:"type:uuid;column:group_id" json:"group_id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	Email      string    `gorm:"type:varchar(255)" json:"email"`
	Group      *Group    `gorm:"foreignKey:GroupID" json:"-"`
	Workshop   *Workshop `gorm:"foreignKey:WorkshopID" json:"-"`
}
