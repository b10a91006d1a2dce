package repository

import (
	"context"
	"errors"

	"govportal/internal/models"

	"gorm.io/gorm"
)

// WarrantFilter narrows registry listings of warrants.
type WarrantFilter struct {
	Status models.WarrantStatus // empty means all statuses
	Limit  int
	Offset int
}

// WarrantRepository defines persistence operations for warrants.
type WarrantRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Warrant, error)
	Create(ctx context.Context, warrant *models.Warrant) error
	Update(ctx context.Context, warrant *models.Warrant) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, filter WarrantFilter) ([]models.Warrant, error)
	Search(ctx context.Context, query string, limit int) ([]models.Warrant, error)
}

type warrantRepository struct {
	db *gorm.DB
}

// NewWarrantRepository returns a new WarrantRepository implementation.
func NewWarrantRepository(db *gorm.DB) WarrantRepository {
	return &warrantRepository{db: db}
}

func (r *warrantRepository) GetByID(ctx context.Context, id uint) (*models.Warrant, error) {
	var warrant models.Warrant
	if err := readDB(r.db).WithContext(ctx).First(&warrant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Warrant", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &warrant, nil
}

func (r *warrantRepository) Create(ctx context.Context, warrant *models.Warrant) error {
	if err := r.db.WithContext(ctx).Create(warrant).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Warrant number already in use")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *warrantRepository) Update(ctx context.Context, warrant *models.Warrant) error {
	if err := r.db.WithContext(ctx).Save(warrant).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Delete removes the warrant outright. Warrants are the only entity with a
// hard-delete policy.
func (r *warrantRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Warrant{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *warrantRepository) List(ctx context.Context, filter WarrantFilter) ([]models.Warrant, error) {
	q := readDB(r.db).WithContext(ctx).Model(&models.Warrant{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var warrants []models.Warrant
	if err := q.
		Order("created_at DESC").
		Limit(clampLimit(filter.Limit, 50)).
		Offset(filter.Offset).
		Find(&warrants).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return warrants, nil
}

func (r *warrantRepository) Search(ctx context.Context, query string, limit int) ([]models.Warrant, error) {
	var warrants []models.Warrant
	pattern := "%" + query + "%"
	if err := readDB(r.db).WithContext(ctx).
		Where("status = ? AND (target_name LIKE ? OR warrant_number LIKE ?)",
			models.WarrantStatusActive, pattern, pattern).
		Limit(clampLimit(limit, 50)).
		Order("created_at DESC").
		Find(&warrants).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return warrants, nil
}
