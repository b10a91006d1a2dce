package models

import "time"

// LawyerStatus defines whether a lawyer is accepting clients.
type LawyerStatus string

const (
	LawyerStatusActive    LawyerStatus = "active"
	LawyerStatusSuspended LawyerStatus = "suspended"
)

// Lawyer is a registry entry for a licensed attorney.
type Lawyer struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	ProfileID      uint         `gorm:"not null;uniqueIndex" json:"profile_id"`
	Profile        *Profile     `gorm:"foreignKey:ProfileID" json:"profile,omitempty"`
	LicenseNumber  string       `gorm:"size:32;not null;uniqueIndex" json:"license_number"`
	Specialization string       `gorm:"size:120" json:"specialization"`
	Status         LawyerStatus `gorm:"type:varchar(12);not null;default:'active'" json:"status"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Lawyer) TableName() string {
	return "lawyers"
}

// LawyerRequest is a citizen's request for legal representation. It follows
// the shared PENDING/APPROVED/REJECTED lifecycle; the lawyer reviews it.
type LawyerRequest struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	ClientID    uint          `gorm:"not null;index" json:"client_id"`
	Client      *Profile      `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	LawyerID    uint          `gorm:"not null;index" json:"lawyer_id"`
	Lawyer      *Lawyer       `gorm:"foreignKey:LawyerID" json:"lawyer,omitempty"`
	Subject     string        `gorm:"size:200;not null" json:"subject"`
	Status      RequestStatus `gorm:"type:varchar(12);not null;default:'PENDING';index" json:"status"`
	ReviewNotes string        `gorm:"type:text" json:"review_notes"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (LawyerRequest) TableName() string {
	return "lawyer_requests"
}
