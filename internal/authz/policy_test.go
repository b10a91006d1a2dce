package authz

import (
	"testing"

	"govportal/internal/models"

	"github.com/stretchr/testify/assert"
)

func profileWith(role models.GovRole, leader models.LeaderRole) *models.Profile {
	return &models.Profile{ID: 1, GovRole: role, LeaderRole: leader}
}

func TestCanReviewFactionJoinRequests_FalseWithoutLeaderRole(t *testing.T) {
	t.Parallel()

	// Every non-tech-admin gov role with no leader role must be denied.
	for _, role := range models.GovRoles {
		if role == models.GovRoleTechAdmin {
			continue
		}
		assert.False(t, CanReviewFactionJoinRequests(profileWith(role, models.LeaderRoleNone)),
			"gov_role %s without leader_role must not review faction joins", role)
	}
	assert.False(t, CanReviewFactionJoinRequests(nil))
}

func TestCanReviewFactionJoinRequests_LeadersAndTechAdmin(t *testing.T) {
	t.Parallel()

	assert.True(t, CanReviewFactionJoinRequests(profileWith(models.GovRoleTechAdmin, models.LeaderRoleNone)))
	assert.True(t, CanReviewFactionJoinRequests(profileWith(models.GovRoleNone, models.LeaderRoleChiefLSPD)))
}

func TestReviewableFaction_Scoping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		leader  models.LeaderRole
		faction models.Faction
	}{
		{models.LeaderRoleGovernor, models.FactionGov},
		{models.LeaderRoleDirectorWN, models.FactionWN},
		{models.LeaderRoleDirectorFIB, models.FactionFIB},
		{models.LeaderRoleChiefLSPD, models.FactionLSPD},
		{models.LeaderRoleSheriffLSCSD, models.FactionLSCSD},
		{models.LeaderRoleChiefEMS, models.FactionEMS},
		{models.LeaderRoleColonelSANG, models.FactionSANG},
	}
	for _, tt := range tests {
		faction, ok := ReviewableFaction(profileWith(models.GovRoleNone, tt.leader))
		assert.True(t, ok)
		assert.Equal(t, tt.faction, faction)
	}

	// Tech admin is unscoped.
	faction, ok := ReviewableFaction(profileWith(models.GovRoleTechAdmin, models.LeaderRoleNone))
	assert.True(t, ok)
	assert.Empty(t, faction)

	_, ok = ReviewableFaction(profileWith(models.GovRoleProsecutor, models.LeaderRoleNone))
	assert.False(t, ok)
}

func TestVerificationReviewGates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		kind    models.VerificationKind
		profile *models.Profile
		want    bool
	}{
		{"account by tech admin", models.VerificationKindAccount, profileWith(models.GovRoleTechAdmin, ""), true},
		{"account by AG denied", models.VerificationKindAccount, profileWith(models.GovRoleAttorneyGeneral, ""), false},
		{"prosecutor by AG", models.VerificationKindProsecutor, profileWith(models.GovRoleAttorneyGeneral, ""), true},
		{"prosecutor by CJ denied", models.VerificationKindProsecutor, profileWith(models.GovRoleChiefJustice, ""), false},
		{"judge by CJ", models.VerificationKindJudge, profileWith(models.GovRoleChiefJustice, ""), true},
		{"judge by AG denied", models.VerificationKindJudge, profileWith(models.GovRoleAttorneyGeneral, ""), false},
		{"judge by tech admin", models.VerificationKindJudge, profileWith(models.GovRoleTechAdmin, ""), true},
		{"faction by leader", models.VerificationKindFactionMember, profileWith(models.GovRoleNone, models.LeaderRoleChiefEMS), true},
		{"faction by plain citizen denied", models.VerificationKindFactionMember, profileWith(models.GovRoleNone, ""), false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CanReviewVerification(tt.profile, tt.kind))
		})
	}
}

func TestCanCreateGovAct(t *testing.T) {
	t.Parallel()

	verified := profileWith(models.GovRoleProsecutor, "")
	verified.IsVerified = true
	unverified := profileWith(models.GovRoleProsecutor, "")

	assert.True(t, CanCreateGovAct(verified), "verified prosecutor")
	assert.False(t, CanCreateGovAct(unverified), "unverified prosecutor")
	assert.True(t, CanCreateGovAct(profileWith(models.GovRoleTechAdmin, "")))
	assert.False(t, CanCreateGovAct(profileWith(models.GovRoleJudge, "")))
}

func TestCanCreateCourtActAndCase(t *testing.T) {
	t.Parallel()

	assert.True(t, CanCreateCourtAct(profileWith(models.GovRoleJudge, "")))
	assert.True(t, CanCreateCourtAct(profileWith(models.GovRoleChiefJustice, "")))
	assert.True(t, CanCreateCourtAct(profileWith(models.GovRoleTechAdmin, "")))
	assert.False(t, CanCreateCourtAct(profileWith(models.GovRoleProsecutor, "")))

	assert.True(t, CanCreateCase(profileWith(models.GovRoleProsecutor, "")))
	assert.True(t, CanCreateCase(profileWith(models.GovRoleAttorneyGeneral, "")))
	assert.False(t, CanCreateCase(profileWith(models.GovRoleTechAdmin, "")),
		"tech admin is not a prosecutorial/judicial role for cases")
	assert.False(t, CanCreateCase(profileWith(models.GovRoleNone, "")))
}

func TestCanEditActAndDeleteWarrant(t *testing.T) {
	t.Parallel()

	author := profileWith(models.GovRoleProsecutor, "")
	author.ID = 7

	assert.True(t, CanEditAct(author, 7), "author edits own act")
	assert.False(t, CanEditAct(author, 8), "non-author non-admin denied")
	assert.True(t, CanEditAct(profileWith(models.GovRoleTechAdmin, ""), 8))

	assert.True(t, CanDeleteWarrant(author, 7))
	assert.False(t, CanDeleteWarrant(author, 9))
	assert.True(t, CanDeleteWarrant(profileWith(models.GovRoleTechAdmin, ""), 9))
}

func TestCanReviewRoleChange(t *testing.T) {
	t.Parallel()

	factionReq := &models.RoleChangeRequest{
		RequestType:    models.RoleChangeTypeFaction,
		RequestedValue: string(models.FactionLSPD),
	}
	govRoleReq := &models.RoleChangeRequest{
		RequestType:    models.RoleChangeTypeGovRole,
		RequestedValue: string(models.GovRoleProsecutor),
	}

	lspdChief := profileWith(models.GovRoleNone, models.LeaderRoleChiefLSPD)
	emsChief := profileWith(models.GovRoleNone, models.LeaderRoleChiefEMS)

	assert.True(t, CanReviewRoleChange(lspdChief, factionReq), "leader of the requested faction")
	assert.False(t, CanReviewRoleChange(emsChief, factionReq), "leader of another faction")
	assert.False(t, CanReviewRoleChange(lspdChief, govRoleReq), "gov role changes are admin-only")
	assert.True(t, CanReviewRoleChange(profileWith(models.GovRoleTechAdmin, ""), govRoleReq))
}

func TestReviewableDepartment(t *testing.T) {
	t.Parallel()

	desk := profileWith(models.GovRoleNone, "")
	desk.OfficeRole = models.OfficeRoleMinJustice
	dept, ok := ReviewableDepartment(desk)
	assert.True(t, ok)
	assert.Equal(t, models.DepartmentMinJustice, dept)

	_, ok = ReviewableDepartment(profileWith(models.GovRoleNone, ""))
	assert.False(t, ok)

	dept, ok = ReviewableDepartment(profileWith(models.GovRoleTechAdmin, ""))
	assert.True(t, ok)
	assert.Empty(t, dept)
}
