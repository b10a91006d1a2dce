package models

import "time"

// Department is the government desk an appointment is addressed to.
type Department string

const (
	DepartmentMinJustice Department = "MIN_JUSTICE"
	DepartmentMinFinance Department = "MIN_FINANCE"
	DepartmentGovernor   Department = "GOVERNOR"
	DepartmentRegistry   Department = "REGISTRY"
)

// Departments lists every valid department value.
var Departments = []Department{
	DepartmentMinJustice, DepartmentMinFinance,
	DepartmentGovernor, DepartmentRegistry,
}

// Valid reports whether d is a known department.
func (d Department) Valid() bool {
	for _, known := range Departments {
		if d == known {
			return true
		}
	}
	return false
}

// AppointmentStatus defines lifecycle states for appointment requests.
// Unlike verification requests, appointments have two extra terminal states:
// DONE (the meeting happened) and CANCELLED (withdrawn by the citizen).
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "PENDING"
	AppointmentStatusApproved  AppointmentStatus = "APPROVED"
	AppointmentStatusRejected  AppointmentStatus = "REJECTED"
	AppointmentStatusDone      AppointmentStatus = "DONE"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
)

// Appointment is a citizen's request to meet a department.
type Appointment struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	Department  Department        `gorm:"type:varchar(16);not null;index" json:"department"`
	Subject     string            `gorm:"size:200;not null" json:"subject"`
	PreferredAt *time.Time        `json:"preferred_at,omitempty"`
	Status      AppointmentStatus `gorm:"type:varchar(12);not null;default:'PENDING';index" json:"status"`
	CreatedByID uint              `gorm:"not null;index" json:"created_by_id"`
	CreatedBy   *Profile          `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (Appointment) TableName() string {
	return "appointments"
}

// Terminal reports whether the appointment can no longer change state.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentStatusRejected || s == AppointmentStatusDone || s == AppointmentStatusCancelled
}
