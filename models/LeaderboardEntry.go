package models

import "time"

// LeaderboardEntry represents one group's aggregated score and rank within a workshop.
// Rank is persisted, not derived: it only changes on an explicit refresh.
type LeaderboardEntry struct {
	ID         string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	WorkshopID string    `gorm:"type:uuid;not null;column:workshop_id" json:"workshop_id"`
	GroupID    string    `gorm:"type:uuid;not null;column:group_id" json:"group_id"`
	TotalScore int       `gorm:"type:integer;not null;default:0;column:total_score" json:"total_score"`
	Rank       int       `gorm:"type:integer;not null;default:0" json:"rank"`
	CreatedAt  time.Time `gorm:"type:timestamp;column:created_at" json:"created_at"`
	Group      *Group    `gorm:"foreignKey:GroupID" json:"group"`
	Workshop   *Workshop `gorm:"foreignKey:WorkshopID" json:"-"`
}
