package models

import "time"

// CaseStatus defines the procedural state of a case record.
type CaseStatus string

const (
	CaseStatusOpen     CaseStatus = "open"
	CaseStatusInCourt  CaseStatus = "in_court"
	CaseStatusClosed   CaseStatus = "closed"
	CaseStatusArchived CaseStatus = "archived"
)

// Case is a prosecution or court case record.
type Case struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Number      string     `gorm:"size:32;not null;uniqueIndex" json:"number"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      CaseStatus `gorm:"type:varchar(12);not null;default:'open';index" json:"status"`
	CreatedByID uint       `gorm:"not null;index" json:"created_by_id"`
	CreatedBy   *Profile   `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Case) TableName() string {
	return "cases"
}

// CourtSessionStatus defines the scheduling state of a court session.
type CourtSessionStatus string

const (
	CourtSessionStatusScheduled CourtSessionStatus = "scheduled"
	CourtSessionStatusHeld      CourtSessionStatus = "held"
	CourtSessionStatusCancelled CourtSessionStatus = "cancelled"
)

// CourtSession is a scheduled hearing for a case.
type CourtSession struct {
	ID          uint               `gorm:"primaryKey" json:"id"`
	CaseID      uint               `gorm:"not null;index" json:"case_id"`
	Case        *Case              `gorm:"foreignKey:CaseID" json:"case,omitempty"`
	Courtroom   string             `gorm:"size:64;not null" json:"courtroom"`
	ScheduledAt time.Time          `gorm:"not null" json:"scheduled_at"`
	JudgeID     uint               `gorm:"not null;index" json:"judge_id"`
	Judge       *Profile           `gorm:"foreignKey:JudgeID" json:"judge,omitempty"`
	Status      CourtSessionStatus `gorm:"type:varchar(12);not null;default:'scheduled'" json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (CourtSession) TableName() string {
	return "court_sessions"
}
