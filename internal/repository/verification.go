package repository

import (
	"context"
	"errors"

	"govportal/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VerificationFilter narrows admin listings of verification requests.
type VerificationFilter struct {
	Kind          models.VerificationKind
	Status        models.RequestStatus // empty means all statuses
	TargetFaction models.Faction       // scopes FACTION_MEMBER reviews
	Limit         int
	Offset        int
}

// VerificationRepository defines persistence operations for verification
// requests.
type VerificationRepository interface {
	GetByID(ctx context.Context, id uint) (*models.VerificationRequest, error)
	GetByIDForUpdate(tx *gorm.DB, id uint) (*models.VerificationRequest, error)
	Create(ctx context.Context, req *models.VerificationRequest) error
	Save(tx *gorm.DB, req *models.VerificationRequest) error
	ListByCreator(ctx context.Context, creatorID uint) ([]models.VerificationRequest, error)
	List(ctx context.Context, filter VerificationFilter) ([]models.VerificationRequest, error)
	CountOpen(ctx context.Context, creatorID uint, kind models.VerificationKind) (int64, error)
}

type verificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository returns a new VerificationRepository
// implementation.
func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (r *verificationRepository) GetByID(ctx context.Context, id uint) (*models.VerificationRequest, error) {
	var req models.VerificationRequest
	if err := readDB(r.db).WithContext(ctx).First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Verification request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &req, nil
}

// GetByIDForUpdate locks the request row inside the caller's transaction so
// two reviewers cannot both observe PENDING.
func (r *verificationRepository) GetByIDForUpdate(tx *gorm.DB, id uint) (*models.VerificationRequest, error) {
	var req models.VerificationRequest
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Verification request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &req, nil
}

func (r *verificationRepository) Create(ctx context.Context, req *models.VerificationRequest) error {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *verificationRepository) Save(tx *gorm.DB, req *models.VerificationRequest) error {
	if err := tx.Save(req).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *verificationRepository) ListByCreator(ctx context.Context, creatorID uint) ([]models.VerificationRequest, error) {
	var requests []models.VerificationRequest
	if err := readDB(r.db).WithContext(ctx).
		Preload("ReviewedBy").
		Where("created_by_id = ?", creatorID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

func (r *verificationRepository) List(ctx context.Context, filter VerificationFilter) ([]models.VerificationRequest, error) {
	q := readDB(r.db).WithContext(ctx).Model(&models.VerificationRequest{})
	if filter.Kind != "" {
		q = q.Where("kind = ?", filter.Kind)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.TargetFaction != "" {
		q = q.Where("target_faction = ?", filter.TargetFaction)
	}

	var requests []models.VerificationRequest
	if err := q.
		Order("created_at DESC").
		Limit(clampLimit(filter.Limit, 50)).
		Offset(filter.Offset).
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

// CountOpen counts the creator's requests of the given kind still in PENDING
// or already APPROVED; such requests block a re-submission.
func (r *verificationRepository) CountOpen(ctx context.Context, creatorID uint, kind models.VerificationKind) (int64, error) {
	var count int64
	if err := readDB(r.db).WithContext(ctx).
		Model(&models.VerificationRequest{}).
		Where("created_by_id = ? AND kind = ? AND status IN ?", creatorID, kind,
			[]models.RequestStatus{models.RequestStatusPending, models.RequestStatusApproved}).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
