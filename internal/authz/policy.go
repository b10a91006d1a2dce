// Package authz computes role-gated permissions from a profile.
//
// The old frontend re-derived these booleans ad hoc on every page; this
// package is the single shared policy. Every function is a pure function of
// profile fields, so callers must pass a freshly loaded profile: stale role
// data after an approval elsewhere is acceptable until the next load, never
// cached here.
package authz

import "govportal/internal/models"

// leaderFactions is the fixed mapping from a leadership role to the faction
// whose join requests that leader may review.
var leaderFactions = map[models.LeaderRole]models.Faction{
	models.LeaderRoleGovernor:     models.FactionGov,
	models.LeaderRoleDirectorWN:   models.FactionWN,
	models.LeaderRoleDirectorFIB:  models.FactionFIB,
	models.LeaderRoleChiefLSPD:    models.FactionLSPD,
	models.LeaderRoleSheriffLSCSD: models.FactionLSCSD,
	models.LeaderRoleChiefEMS:     models.FactionEMS,
	models.LeaderRoleColonelSANG:  models.FactionSANG,
}

// LeaderFaction returns the faction a leader role governs, if any.
func LeaderFaction(role models.LeaderRole) (models.Faction, bool) {
	faction, ok := leaderFactions[role]
	return faction, ok
}

// IsTechAdmin reports whether the profile holds the technical admin role.
func IsTechAdmin(p *models.Profile) bool {
	return p != nil && p.GovRole == models.GovRoleTechAdmin
}

// CanReviewAccountVerification gates review of ACCOUNT verification requests.
func CanReviewAccountVerification(p *models.Profile) bool {
	return IsTechAdmin(p)
}

// CanReviewProsecutorRequests gates review of PROSECUTOR verification requests.
func CanReviewProsecutorRequests(p *models.Profile) bool {
	if p == nil {
		return false
	}
	return p.GovRole == models.GovRoleTechAdmin || p.GovRole == models.GovRoleAttorneyGeneral
}

// CanReviewJudgeRequests gates review of JUDGE verification requests.
func CanReviewJudgeRequests(p *models.Profile) bool {
	if p == nil {
		return false
	}
	return p.GovRole == models.GovRoleTechAdmin || p.GovRole == models.GovRoleChiefJustice
}

// CanReviewFactionJoinRequests reports whether the viewer may review
// FACTION_MEMBER requests at all. Leaders are additionally scoped to their
// own faction; use ReviewableFaction for the scope.
func CanReviewFactionJoinRequests(p *models.Profile) bool {
	if IsTechAdmin(p) {
		return true
	}
	if p == nil {
		return false
	}
	_, ok := leaderFactions[p.LeaderRole]
	return ok
}

// ReviewableFaction returns the faction the viewer's faction-join reviews are
// scoped to. Tech admins are unscoped (ok with empty faction).
func ReviewableFaction(p *models.Profile) (models.Faction, bool) {
	if IsTechAdmin(p) {
		return "", true
	}
	if p == nil {
		return "", false
	}
	faction, ok := leaderFactions[p.LeaderRole]
	return faction, ok
}

// CanCreateCourtAct gates authoring of court acts.
func CanCreateCourtAct(p *models.Profile) bool {
	if p == nil {
		return false
	}
	switch p.GovRole {
	case models.GovRoleJudge, models.GovRoleChiefJustice, models.GovRoleTechAdmin:
		return true
	}
	return false
}

// CanCreateGovAct gates authoring of government acts. Prosecutors must be
// verified; tech admins are exempt.
func CanCreateGovAct(p *models.Profile) bool {
	if p == nil {
		return false
	}
	if p.GovRole == models.GovRoleTechAdmin {
		return true
	}
	return p.GovRole == models.GovRoleProsecutor && p.IsVerified
}

// CanCreateCase gates opening of case records.
func CanCreateCase(p *models.Profile) bool {
	if p == nil {
		return false
	}
	switch p.GovRole {
	case models.GovRoleProsecutor, models.GovRoleJudge,
		models.GovRoleAttorneyGeneral, models.GovRoleChiefJustice:
		return true
	}
	return false
}

// CanCreateWarrant gates issuing warrants.
func CanCreateWarrant(p *models.Profile) bool {
	if p == nil {
		return false
	}
	switch p.GovRole {
	case models.GovRoleProsecutor, models.GovRoleJudge,
		models.GovRoleAttorneyGeneral, models.GovRoleChiefJustice,
		models.GovRoleTechAdmin:
		return true
	}
	return false
}

// CanEditAct reports whether the viewer may edit an act authored by authorID.
func CanEditAct(p *models.Profile, authorID uint) bool {
	if p == nil {
		return false
	}
	return p.ID == authorID || IsTechAdmin(p)
}

// CanDeleteWarrant reports whether the viewer may hard-delete a warrant
// issued by issuerID.
func CanDeleteWarrant(p *models.Profile, issuerID uint) bool {
	if p == nil {
		return false
	}
	return p.ID == issuerID || IsTechAdmin(p)
}

// CanScheduleCourtSession gates court session scheduling.
func CanScheduleCourtSession(p *models.Profile) bool {
	return CanCreateCourtAct(p)
}

// CanCreateInspection gates opening inspections.
func CanCreateInspection(p *models.Profile) bool {
	if p == nil {
		return false
	}
	switch p.GovRole {
	case models.GovRoleProsecutor, models.GovRoleAttorneyGeneral, models.GovRoleTechAdmin:
		return true
	}
	return false
}

// officeDepartments maps a department desk role to the department whose
// appointments that desk reviews.
var officeDepartments = map[models.OfficeRole]models.Department{
	models.OfficeRoleMinJustice: models.DepartmentMinJustice,
	models.OfficeRoleMinFinance: models.DepartmentMinFinance,
	models.OfficeRoleGovernor:   models.DepartmentGovernor,
	models.OfficeRoleRegistry:   models.DepartmentRegistry,
}

// ReviewableDepartment returns the department the viewer's appointment
// reviews are scoped to. Tech admins are unscoped (ok with empty department).
func ReviewableDepartment(p *models.Profile) (models.Department, bool) {
	if IsTechAdmin(p) {
		return "", true
	}
	if p == nil {
		return "", false
	}
	dept, ok := officeDepartments[p.OfficeRole]
	return dept, ok
}

// CanReviewVerification dispatches the per-kind review gate.
func CanReviewVerification(p *models.Profile, kind models.VerificationKind) bool {
	switch kind {
	case models.VerificationKindAccount:
		return CanReviewAccountVerification(p)
	case models.VerificationKindProsecutor:
		return CanReviewProsecutorRequests(p)
	case models.VerificationKindJudge:
		return CanReviewJudgeRequests(p)
	case models.VerificationKindFactionMember:
		return CanReviewFactionJoinRequests(p)
	}
	return false
}

// CanReviewRoleChange gates review of role-change requests. Faction changes
// may be reviewed by the target faction's leader; everything else is tech
// admin only.
func CanReviewRoleChange(p *models.Profile, req *models.RoleChangeRequest) bool {
	if IsTechAdmin(p) {
		return true
	}
	if p == nil || req == nil {
		return false
	}
	if req.RequestType == models.RoleChangeTypeFaction {
		faction, ok := leaderFactions[p.LeaderRole]
		return ok && string(faction) == req.RequestedValue
	}
	return false
}
