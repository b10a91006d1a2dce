package repository

import (
	"context"
	"errors"

	"govportal/internal/models"

	"gorm.io/gorm"
)

// InspectionRepository defines persistence operations for inspections.
type InspectionRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Inspection, error)
	Create(ctx context.Context, insp *models.Inspection) error
	Update(ctx context.Context, insp *models.Inspection) error
	List(ctx context.Context, status models.InspectionStatus, limit, offset int) ([]models.Inspection, error)
}

type inspectionRepository struct {
	db *gorm.DB
}

// NewInspectionRepository returns a new InspectionRepository implementation.
func NewInspectionRepository(db *gorm.DB) InspectionRepository {
	return &inspectionRepository{db: db}
}

func (r *inspectionRepository) GetByID(ctx context.Context, id uint) (*models.Inspection, error) {
	var insp models.Inspection
	if err := readDB(r.db).WithContext(ctx).Preload("Inspector").First(&insp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Inspection", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &insp, nil
}

func (r *inspectionRepository) Create(ctx context.Context, insp *models.Inspection) error {
	if err := r.db.WithContext(ctx).Create(insp).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *inspectionRepository) Update(ctx context.Context, insp *models.Inspection) error {
	if err := r.db.WithContext(ctx).Save(insp).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *inspectionRepository) List(ctx context.Context, status models.InspectionStatus, limit, offset int) ([]models.Inspection, error) {
	q := readDB(r.db).WithContext(ctx).Model(&models.Inspection{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var inspections []models.Inspection
	if err := q.
		Order("created_at DESC").
		Limit(clampLimit(limit, 50)).
		Offset(offset).
		Find(&inspections).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return inspections, nil
}
