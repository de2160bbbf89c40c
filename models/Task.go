package models

import "time"

// Task represents one unit of graded work within a workshop, activated in sequence
type Task struct {
	ID          string     `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	WorkshopID  string     `gorm:"type:uuid;not null;column:workshop_id" json:"workshop_id"`
	Title       string     `gorm:"type:varchar(100);not null" json:"title"`
	Description string     `gorm:"type:varchar(255)" json:"description"`
	TaskOrder   int        `gorm:"type:integer;not null;column:task_order" json:"task_order"`
	IsActive    bool       `gorm:"not null;default:false;column:is_active" json:"is_active"`
	IsEnded     bool       `gorm:"not null;default:false;column:is_ended" json:"is_ended"`
	StartTime   *time.Time `gorm:"type:timestamp;column:start_time" json:"start_time"`
	CreatedAt   time.Time  `gorm:"type:timestamp;column:created_at" json:"created_at"`
	Workshop    *Workshop  `gorm:"foreignKey:WorkshopID" json:"-"`
}
