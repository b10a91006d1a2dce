package models

import "time"

// RequestStatus defines the shared lifecycle for review-style requests.
// PENDING is the only non-terminal state; there is no path back to it.
type RequestStatus string

const (
	// RequestStatusPending indicates the request is awaiting review.
	RequestStatusPending RequestStatus = "PENDING"
	// RequestStatusApproved indicates the request was accepted.
	RequestStatusApproved RequestStatus = "APPROVED"
	// RequestStatusRejected indicates the request was denied.
	RequestStatusRejected RequestStatus = "REJECTED"
)

// VerificationKind identifies what a verification request claims.
type VerificationKind string

const (
	VerificationKindAccount       VerificationKind = "ACCOUNT"
	VerificationKindProsecutor    VerificationKind = "PROSECUTOR"
	VerificationKindJudge         VerificationKind = "JUDGE"
	VerificationKindFactionMember VerificationKind = "FACTION_MEMBER"
)

// VerificationKinds lists every valid verification kind.
var VerificationKinds = []VerificationKind{
	VerificationKindAccount, VerificationKindProsecutor,
	VerificationKindJudge, VerificationKindFactionMember,
}

// Valid reports whether k is a known verification kind.
func (k VerificationKind) Valid() bool {
	for _, known := range VerificationKinds {
		if k == known {
			return true
		}
	}
	return false
}

// VerificationRequest is a pending claim to be granted a trusted role or a
// confirmed identity. Approval applies a side-effect mutation to the subject
// profile in the same transaction as the status flip.
type VerificationRequest struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	Kind          VerificationKind `gorm:"type:varchar(20);not null;index" json:"kind"`
	TargetFaction *Faction         `gorm:"type:varchar(16)" json:"target_faction,omitempty"`
	Comment       string           `gorm:"type:text" json:"comment"`
	Status        RequestStatus    `gorm:"type:varchar(12);not null;default:'PENDING';index" json:"status"`
	CreatedByID   uint             `gorm:"not null;index" json:"created_by_id"`
	CreatedBy     *Profile         `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	ReviewedByID  *uint            `json:"reviewed_by_id"`
	ReviewedBy    *Profile         `gorm:"foreignKey:ReviewedByID" json:"reviewed_by,omitempty"`
	ReviewComment string           `gorm:"type:text" json:"review_comment"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (VerificationRequest) TableName() string {
	return "verification_requests"
}

// RoleChangeType selects which role-like profile field a role-change request
// alters.
type RoleChangeType string

const (
	RoleChangeTypeFaction    RoleChangeType = "FACTION"
	RoleChangeTypeGovRole    RoleChangeType = "GOV_ROLE"
	RoleChangeTypeLeaderRole RoleChangeType = "LEADER_ROLE"
	RoleChangeTypeOfficeRole RoleChangeType = "OFFICE_ROLE"
)

// RoleChangeTypes lists every valid role-change type.
var RoleChangeTypes = []RoleChangeType{
	RoleChangeTypeFaction, RoleChangeTypeGovRole,
	RoleChangeTypeLeaderRole, RoleChangeTypeOfficeRole,
}

// Valid reports whether t is a known role-change type.
func (t RoleChangeType) Valid() bool {
	for _, known := range RoleChangeTypes {
		if t == known {
			return true
		}
	}
	return false
}

// RoleChangeRequest is a generalized request to alter one of a profile's
// role-like fields, with audit fields for the review.
type RoleChangeRequest struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	RequestType    RoleChangeType `gorm:"type:varchar(16);not null;index" json:"request_type"`
	CurrentValue   string         `gorm:"size:32;not null" json:"current_value"`
	RequestedValue string         `gorm:"size:32;not null" json:"requested_value"`
	Reason         string         `gorm:"type:text;not null" json:"reason"`
	Status         RequestStatus  `gorm:"type:varchar(12);not null;default:'PENDING';index" json:"status"`
	CreatedByID    uint           `gorm:"not null;index" json:"created_by_id"`
	CreatedBy      *Profile       `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	ReviewedByID   *uint          `json:"reviewed_by_id"`
	ReviewedBy     *Profile       `gorm:"foreignKey:ReviewedByID" json:"reviewed_by,omitempty"`
	ReviewComment  string         `gorm:"type:text" json:"review_comment"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (RoleChangeRequest) TableName() string {
	return "role_change_requests"
}
