package service

import (
	"context"
	"testing"

	"govportal/internal/models"
	"govportal/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestVerificationSubmitUnknownKind(t *testing.T) {
	svc := NewVerificationService(nil, noopVerificationRepo(), noopProfileRepo(), noopNotificationRepo())

	_, err := svc.Submit(context.Background(), 1, "SOMETHING_ELSE", nil, "")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", err.(*models.AppError).Code)
}

func TestVerificationSubmitFactionRequiresTarget(t *testing.T) {
	svc := NewVerificationService(nil, noopVerificationRepo(), noopProfileRepo(), noopNotificationRepo())

	_, err := svc.Submit(context.Background(), 1, models.VerificationKindFactionMember, nil, "")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", err.(*models.AppError).Code)

	faction := models.FactionLSPD
	_, err = svc.Submit(context.Background(), 1, models.VerificationKindAccount, &faction, "")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", err.(*models.AppError).Code)
}

func TestVerificationSubmitDuplicateBlocked(t *testing.T) {
	repo := noopVerificationRepo()
	repo.countOpenFn = func(context.Context, uint, models.VerificationKind) (int64, error) {
		return 1, nil
	}
	svc := NewVerificationService(nil, repo, noopProfileRepo(), noopNotificationRepo())

	_, err := svc.Submit(context.Background(), 1, models.VerificationKindAccount, nil, "please")
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", err.(*models.AppError).Code)
}

func TestVerificationSubmitCreatesPending(t *testing.T) {
	var created *models.VerificationRequest
	repo := noopVerificationRepo()
	repo.createFn = func(_ context.Context, req *models.VerificationRequest) error {
		created = req
		return nil
	}
	svc := NewVerificationService(nil, repo, noopProfileRepo(), noopNotificationRepo())

	req, err := svc.Submit(context.Background(), 7, models.VerificationKindJudge, nil, "bar results attached")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, models.RequestStatusPending, req.Status)
	assert.Equal(t, uint(7), req.CreatedByID)
}

func TestVerificationApproveAppliesGrant(t *testing.T) {
	db := newTestDB(t)
	subject := models.Profile{Nickname: "Jane Doe", StaticID: "AB-1000", Email: "ab-1000@x", Password: "x"}
	require.NoError(t, db.Create(&subject).Error)

	stored := models.VerificationRequest{
		Kind:        models.VerificationKindProsecutor,
		Status:      models.RequestStatusPending,
		CreatedByID: subject.ID,
	}
	require.NoError(t, db.Create(&stored).Error)

	admin := models.Profile{ID: 99, GovRole: models.GovRoleAttorneyGeneral}
	repo := &verificationRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.VerificationRequest, error) {
			var req models.VerificationRequest
			if err := db.First(&req, id).Error; err != nil {
				return nil, models.NewNotFoundError("Verification request", id)
			}
			return &req, nil
		},
		getByIDForUpdateFn: func(tx *gorm.DB, id uint) (*models.VerificationRequest, error) {
			var req models.VerificationRequest
			if err := tx.First(&req, id).Error; err != nil {
				return nil, models.NewNotFoundError("Verification request", id)
			}
			return &req, nil
		},
		createFn: func(context.Context, *models.VerificationRequest) error { return nil },
		saveFn: func(tx *gorm.DB, req *models.VerificationRequest) error {
			return tx.Save(req).Error
		},
		listByCreatorFn: func(context.Context, uint) ([]models.VerificationRequest, error) { return nil, nil },
		listFn: func(context.Context, repository.VerificationFilter) ([]models.VerificationRequest, error) {
			return nil, nil
		},
		countOpenFn: func(context.Context, uint, models.VerificationKind) (int64, error) { return 0, nil },
	}

	svc := NewVerificationService(db, repo, profileByID(admin), noopNotificationRepo())

	reviewed, err := svc.Approve(context.Background(), admin.ID, stored.ID, "credentials check out")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusApproved, reviewed.Status)
	require.NotNil(t, reviewed.ReviewedByID)
	assert.Equal(t, admin.ID, *reviewed.ReviewedByID)

	var after models.Profile
	require.NoError(t, db.First(&after, subject.ID).Error)
	assert.Equal(t, models.GovRoleProsecutor, after.GovRole)
	assert.True(t, after.IsVerified)
}

func TestVerificationApproveAlreadyReviewed(t *testing.T) {
	db := newTestDB(t)
	subject := models.Profile{Nickname: "John Doe", StaticID: "CD-2000", Email: "cd-2000@x", Password: "x"}
	require.NoError(t, db.Create(&subject).Error)

	stored := models.VerificationRequest{
		Kind:        models.VerificationKindAccount,
		Status:      models.RequestStatusApproved,
		CreatedByID: subject.ID,
	}
	require.NoError(t, db.Create(&stored).Error)

	admin := models.Profile{ID: 99, GovRole: models.GovRoleTechAdmin}
	repo := noopVerificationRepo()
	repo.getByIDForUpdateFn = func(tx *gorm.DB, id uint) (*models.VerificationRequest, error) {
		var req models.VerificationRequest
		if err := tx.First(&req, id).Error; err != nil {
			return nil, models.NewNotFoundError("Verification request", id)
		}
		return &req, nil
	}

	svc := NewVerificationService(db, repo, profileByID(admin), noopNotificationRepo())

	_, err := svc.Approve(context.Background(), admin.ID, stored.ID, "")
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", err.(*models.AppError).Code)
}

func TestVerificationReviewWrongFactionScope(t *testing.T) {
	db := newTestDB(t)
	subject := models.Profile{Nickname: "Joiner", StaticID: "EF-3000", Email: "ef-3000@x", Password: "x"}
	require.NoError(t, db.Create(&subject).Error)

	target := models.FactionFIB
	stored := models.VerificationRequest{
		Kind:          models.VerificationKindFactionMember,
		TargetFaction: &target,
		Status:        models.RequestStatusPending,
		CreatedByID:   subject.ID,
	}
	require.NoError(t, db.Create(&stored).Error)

	lspdChief := models.Profile{ID: 50, LeaderRole: models.LeaderRoleChiefLSPD, Faction: models.FactionLSPD}
	repo := noopVerificationRepo()
	repo.getByIDForUpdateFn = func(tx *gorm.DB, id uint) (*models.VerificationRequest, error) {
		var req models.VerificationRequest
		if err := tx.First(&req, id).Error; err != nil {
			return nil, models.NewNotFoundError("Verification request", id)
		}
		return &req, nil
	}

	svc := NewVerificationService(db, repo, profileByID(lspdChief), noopNotificationRepo())

	_, err := svc.Approve(context.Background(), lspdChief.ID, stored.ID, "")
	require.Error(t, err)
	assert.Equal(t, "UNAUTHORIZED", err.(*models.AppError).Code)
}

func TestVerificationListForReviewRequiresKindForNonAdmin(t *testing.T) {
	ag := models.Profile{ID: 3, GovRole: models.GovRoleAttorneyGeneral}
	svc := NewVerificationService(nil, noopVerificationRepo(), profileByID(ag), noopNotificationRepo())

	_, err := svc.ListForReview(context.Background(), ag.ID, repository.VerificationFilter{})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_ERROR", err.(*models.AppError).Code)
}

func TestVerificationListForReviewScopesFactionLeader(t *testing.T) {
	chief := models.Profile{ID: 4, LeaderRole: models.LeaderRoleChiefLSPD, Faction: models.FactionLSPD}

	var captured repository.VerificationFilter
	repo := noopVerificationRepo()
	repo.listFn = func(_ context.Context, filter repository.VerificationFilter) ([]models.VerificationRequest, error) {
		captured = filter
		return nil, nil
	}
	svc := NewVerificationService(nil, repo, profileByID(chief), noopNotificationRepo())

	_, err := svc.ListForReview(context.Background(), chief.ID, repository.VerificationFilter{
		Kind: models.VerificationKindFactionMember,
	})
	require.NoError(t, err)
	assert.Equal(t, models.FactionLSPD, captured.TargetFaction)
	assert.Equal(t, models.RequestStatusPending, captured.Status)
}
