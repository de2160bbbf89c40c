package models

// Group represents a team of participants sharing a join code, scored collectively
type Group struct {
	ID           string         `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	WorkshopID   string         `gorm:"type:uuid;not null;column:workshop_id" json:"workshop_id"`
	Name         string         `gorm:"type:varchar(100);not null" json:"name"`
	GroupCode    string         `gorm:"type:varchar(6);not null;column:group_code" json:"group_code"`
	Participants []*Participant `gorm:"foreignKey:GroupID" json:"participants"`
	Judges       []*Judge       `gorm:"many2many:judge_assignments;" json:"judges"`
	Workshop     *Workshop      `gorm:"foreignKey:WorkshopID" json:"-"`
}
