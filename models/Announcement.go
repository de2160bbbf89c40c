package models

import "time"

// Announcement represents a broadcast message to everyone in a workshop, immutable once created
type Announcement struct {
	ID         string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	WorkshopID string    `gorm:"type:uuid;not null;column:workshop_id" json:"workshop_id"`
	Message    string    `gorm:"type:varchar(500);not null" json:"message"`
	CreatedAt  time.Time `gorm:"type:timestamp;column:created_at" json:"created_at"`
	Workshop   *Workshop `gorm:"foreignKey:WorkshopID" json:"-"`
}
