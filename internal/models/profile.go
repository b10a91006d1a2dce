// Package models contains data structures for the portal's domain entities.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Faction is the in-world organization a citizen belongs to.
type Faction string

const (
	FactionCivilian Faction = "CIVILIAN"
	FactionFIB      Faction = "FIB"
	FactionLSPD     Faction = "LSPD"
	FactionLSCSD    Faction = "LSCSD"
	FactionEMS      Faction = "EMS"
	FactionWN       Faction = "WN"
	FactionSANG     Faction = "SANG"
	FactionGov      Faction = "GOV"
	FactionJudicial Faction = "JUDICIAL"
)

// Factions lists every valid faction value.
var Factions = []Faction{
	FactionCivilian, FactionFIB, FactionLSPD, FactionLSCSD,
	FactionEMS, FactionWN, FactionSANG, FactionGov, FactionJudicial,
}

// Valid reports whether f is a known faction.
func (f Faction) Valid() bool {
	for _, known := range Factions {
		if f == known {
			return true
		}
	}
	return false
}

// GovRole is a profile's government-service privilege level, orthogonal to
// faction. The set is closed; page-level ad hoc roles from the old frontend
// (attorney general, chief justice) are first-class members here.
type GovRole string

const (
	GovRoleNone            GovRole = "NONE"
	GovRoleProsecutor      GovRole = "PROSECUTOR"
	GovRoleJudge           GovRole = "JUDGE"
	GovRoleAttorneyGeneral GovRole = "ATTORNEY_GENERAL"
	GovRoleChiefJustice    GovRole = "CHIEF_JUSTICE"
	GovRoleTechAdmin       GovRole = "TECH_ADMIN"
)

// GovRoles lists every valid gov role value.
var GovRoles = []GovRole{
	GovRoleNone, GovRoleProsecutor, GovRoleJudge,
	GovRoleAttorneyGeneral, GovRoleChiefJustice, GovRoleTechAdmin,
}

// Valid reports whether r is a known gov role.
func (r GovRole) Valid() bool {
	for _, known := range GovRoles {
		if r == known {
			return true
		}
	}
	return false
}

// LeaderRole grants faction-leadership privileges. Each leader role maps to
// exactly one faction (see authz.LeaderFaction).
type LeaderRole string

const (
	LeaderRoleNone         LeaderRole = ""
	LeaderRoleGovernor     LeaderRole = "GOVERNOR"
	LeaderRoleDirectorWN   LeaderRole = "DIRECTOR_WN"
	LeaderRoleDirectorFIB  LeaderRole = "DIRECTOR_FIB"
	LeaderRoleChiefLSPD    LeaderRole = "CHIEF_LSPD"
	LeaderRoleSheriffLSCSD LeaderRole = "SHERIFF_LSCSD"
	LeaderRoleChiefEMS     LeaderRole = "CHIEF_EMS"
	LeaderRoleColonelSANG  LeaderRole = "COLONEL_SANG"
)

// OfficeRole grants a department-desk privilege: holders review appointments
// addressed to their department.
type OfficeRole string

const (
	OfficeRoleNone       OfficeRole = ""
	OfficeRoleMinJustice OfficeRole = "MIN_JUSTICE_DESK"
	OfficeRoleMinFinance OfficeRole = "MIN_FINANCE_DESK"
	OfficeRoleGovernor   OfficeRole = "GOVERNOR_DESK"
	OfficeRoleRegistry   OfficeRole = "REGISTRY_DESK"
)

// Profile is the identity row for a portal account. StaticID is the
// human-facing in-world identifier; Email holds the synthetic technical
// login derived from it at sign-up.
type Profile struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Nickname   string         `gorm:"size:64;not null" json:"nickname"`
	StaticID   string         `gorm:"size:32;not null;uniqueIndex" json:"static_id"`
	Email      string         `gorm:"size:120;not null;uniqueIndex" json:"email"`
	Password   string         `gorm:"not null" json:"-"`
	Discord    string         `gorm:"size:64" json:"discord"`
	Faction    Faction        `gorm:"type:varchar(16);not null;default:'CIVILIAN'" json:"faction"`
	GovRole    GovRole        `gorm:"type:varchar(24);not null;default:'NONE'" json:"gov_role"`
	LeaderRole LeaderRole     `gorm:"type:varchar(24);not null;default:''" json:"leader_role"`
	OfficeRole OfficeRole     `gorm:"type:varchar(24);not null;default:''" json:"office_role"`
	IsVerified bool           `gorm:"not null;default:false" json:"is_verified"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for GORM.
func (Profile) TableName() string {
	return "profiles"
}
