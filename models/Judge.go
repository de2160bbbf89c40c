package models

// Judge represents a person grading group submissions within a workshop
type Judge struct {
	ID         string    `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	WorkshopID string    `gorm:"type:uuid;not null;column:workshop_id" json:"workshop_id"`
	Name       string    `gorm:"type:varchar(100);not null" json:"name"`
	Email      string    `gorm:"type:varchar(255)" json:"email"`
	Groups     []*Group  `gorm:"many2many:judge_assignments;" json:"groups"`
	Workshop   *Workshop `gorm:"foreignKey:WorkshopID" json:"-"`
}
