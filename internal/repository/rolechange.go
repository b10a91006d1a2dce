package repository

import (
	"context"
	"errors"

	"govportal/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoleChangeFilter narrows admin listings of role-change requests.
type RoleChangeFilter struct {
	RequestType models.RoleChangeType
	Status      models.RequestStatus // empty means all statuses
	Limit       int
	Offset      int
}

// RoleChangeRepository defines persistence operations for role-change
// requests.
type RoleChangeRepository interface {
	GetByID(ctx context.Context, id uint) (*models.RoleChangeRequest, error)
	GetByIDForUpdate(tx *gorm.DB, id uint) (*models.RoleChangeRequest, error)
	Create(ctx context.Context, req *models.RoleChangeRequest) error
	Save(tx *gorm.DB, req *models.RoleChangeRequest) error
	ListByCreator(ctx context.Context, creatorID uint) ([]models.RoleChangeRequest, error)
	List(ctx context.Context, filter RoleChangeFilter) ([]models.RoleChangeRequest, error)
	CountOpen(ctx context.Context, creatorID uint, requestType models.RoleChangeType) (int64, error)
}

type roleChangeRepository struct {
	db *gorm.DB
}

// NewRoleChangeRepository returns a new RoleChangeRepository implementation.
func NewRoleChangeRepository(db *gorm.DB) RoleChangeRepository {
	return &roleChangeRepository{db: db}
}

func (r *roleChangeRepository) GetByID(ctx context.Context, id uint) (*models.RoleChangeRequest, error) {
	var req models.RoleChangeRequest
	if err := readDB(r.db).WithContext(ctx).First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Role change request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &req, nil
}

func (r *roleChangeRepository) GetByIDForUpdate(tx *gorm.DB, id uint) (*models.RoleChangeRequest, error) {
	var req models.RoleChangeRequest
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Role change request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &req, nil
}

func (r *roleChangeRepository) Create(ctx context.Context, req *models.RoleChangeRequest) error {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *roleChangeRepository) Save(tx *gorm.DB, req *models.RoleChangeRequest) error {
	if err := tx.Save(req).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *roleChangeRepository) ListByCreator(ctx context.Context, creatorID uint) ([]models.RoleChangeRequest, error) {
	var requests []models.RoleChangeRequest
	if err := readDB(r.db).WithContext(ctx).
		Preload("ReviewedBy").
		Where("created_by_id = ?", creatorID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

func (r *roleChangeRepository) List(ctx context.Context, filter RoleChangeFilter) ([]models.RoleChangeRequest, error) {
	q := readDB(r.db).WithContext(ctx).Model(&models.RoleChangeRequest{})
	if filter.RequestType != "" {
		q = q.Where("request_type = ?", filter.RequestType)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var requests []models.RoleChangeRequest
	if err := q.
		Order("created_at DESC").
		Limit(clampLimit(filter.Limit, 50)).
		Offset(filter.Offset).
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

func (r *roleChangeRepository) CountOpen(ctx context.Context, creatorID uint, requestType models.RoleChangeType) (int64, error) {
	var count int64
	if err := readDB(r.db).WithContext(ctx).
		Model(&models.RoleChangeRequest{}).
		Where("created_by_id = ? AND request_type = ? AND status IN ?", creatorID, requestType,
			[]models.RequestStatus{models.RequestStatusPending, models.RequestStatusApproved}).
		Count(&count).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return count, nil
}
