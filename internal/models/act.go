package models

import "time"

// ActStatus defines the publication state of a government or court act.
type ActStatus string

const (
	ActStatusDraft     ActStatus = "draft"
	ActStatusPublished ActStatus = "published"
	ActStatusArchived  ActStatus = "archived"
)

// GovAct is a published (or draft) act of the executive branch.
type GovAct struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	SourceURL string    `gorm:"size:300" json:"source_url"`
	Status    ActStatus `gorm:"type:varchar(12);not null;default:'draft';index" json:"status"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	Author    *Profile  `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (GovAct) TableName() string {
	return "gov_acts"
}

// CourtAct is a judicial act: decisions, rulings, precedents.
type CourtAct struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	SourceURL string    `gorm:"size:300" json:"source_url"`
	Status    ActStatus `gorm:"type:varchar(12);not null;default:'draft';index" json:"status"`
	JudgeID   uint      `gorm:"not null;index" json:"judge_id"`
	Judge     *Profile  `gorm:"foreignKey:JudgeID" json:"judge,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (CourtAct) TableName() string {
	return "court_acts"
}
