package models

import "time"

// Notification is an in-portal message addressed to one profile. The owner
// may mark it read or hard-delete it.
type Notification struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProfileID uint      `gorm:"not null;index" json:"profile_id"`
	Profile   *Profile  `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	IsRead    bool      `gorm:"not null;default:false;index" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Notification) TableName() string {
	return "notifications"
}

// InspectionStatus defines the progress state of an inspection.
type InspectionStatus string

const (
	InspectionStatusOpen      InspectionStatus = "open"
	InspectionStatusCompleted InspectionStatus = "completed"
)

// Inspection is a prosecutor-initiated check of an organization or official.
type Inspection struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	Target      string           `gorm:"size:200;not null" json:"target"`
	Kind        string           `gorm:"size:64;not null" json:"kind"`
	Findings    string           `gorm:"type:text" json:"findings"`
	Status      InspectionStatus `gorm:"type:varchar(12);not null;default:'open';index" json:"status"`
	InspectorID uint             `gorm:"not null;index" json:"inspector_id"`
	Inspector   *Profile         `gorm:"foreignKey:InspectorID" json:"inspector,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Inspection) TableName() string {
	return "inspections"
}
