package repository

import (
	"context"
	"errors"

	"govportal/internal/models"

	"gorm.io/gorm"
)

// LawyerRepository defines persistence operations for the lawyer registry.
type LawyerRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Lawyer, error)
	GetByProfileID(ctx context.Context, profileID uint) (*models.Lawyer, error)
	Create(ctx context.Context, lawyer *models.Lawyer) error
	Update(ctx context.Context, lawyer *models.Lawyer) error
	List(ctx context.Context, limit, offset int) ([]models.Lawyer, error)
}

type lawyerRepository struct {
	db *gorm.DB
}

// NewLawyerRepository returns a new LawyerRepository implementation.
func NewLawyerRepository(db *gorm.DB) LawyerRepository {
	return &lawyerRepository{db: db}
}

func (r *lawyerRepository) GetByID(ctx context.Context, id uint) (*models.Lawyer, error) {
	var lawyer models.Lawyer
	if err := readDB(r.db).WithContext(ctx).Preload("Profile").First(&lawyer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Lawyer", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &lawyer, nil
}

// GetByProfileID returns nil, nil when the profile has no registry entry.
func (r *lawyerRepository) GetByProfileID(ctx context.Context, profileID uint) (*models.Lawyer, error) {
	var lawyer models.Lawyer
	if err := readDB(r.db).WithContext(ctx).Where("profile_id = ?", profileID).First(&lawyer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &lawyer, nil
}

func (r *lawyerRepository) Create(ctx context.Context, lawyer *models.Lawyer) error {
	if err := r.db.WithContext(ctx).Create(lawyer).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Lawyer already registered")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *lawyerRepository) Update(ctx context.Context, lawyer *models.Lawyer) error {
	if err := r.db.WithContext(ctx).Save(lawyer).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *lawyerRepository) List(ctx context.Context, limit, offset int) ([]models.Lawyer, error) {
	var lawyers []models.Lawyer
	if err := readDB(r.db).WithContext(ctx).
		Preload("Profile").
		Where("status = ?", models.LawyerStatusActive).
		Order("created_at DESC").
		Limit(clampLimit(limit, 50)).
		Offset(offset).
		Find(&lawyers).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return lawyers, nil
}

// LawyerRequestRepository defines persistence operations for representation
// requests.
type LawyerRequestRepository interface {
	GetByID(ctx context.Context, id uint) (*models.LawyerRequest, error)
	Create(ctx context.Context, req *models.LawyerRequest) error
	Update(ctx context.Context, req *models.LawyerRequest) error
	ListByClient(ctx context.Context, clientID uint) ([]models.LawyerRequest, error)
	ListByLawyer(ctx context.Context, lawyerID uint, status models.RequestStatus) ([]models.LawyerRequest, error)
}

type lawyerRequestRepository struct {
	db *gorm.DB
}

// NewLawyerRequestRepository returns a new LawyerRequestRepository
// implementation.
func NewLawyerRequestRepository(db *gorm.DB) LawyerRequestRepository {
	return &lawyerRequestRepository{db: db}
}

func (r *lawyerRequestRepository) GetByID(ctx context.Context, id uint) (*models.LawyerRequest, error) {
	var req models.LawyerRequest
	if err := readDB(r.db).WithContext(ctx).Preload("Client").Preload("Lawyer").First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Lawyer request", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &req, nil
}

func (r *lawyerRequestRepository) Create(ctx context.Context, req *models.LawyerRequest) error {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *lawyerRequestRepository) Update(ctx context.Context, req *models.LawyerRequest) error {
	if err := r.db.WithContext(ctx).Save(req).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *lawyerRequestRepository) ListByClient(ctx context.Context, clientID uint) ([]models.LawyerRequest, error) {
	var requests []models.LawyerRequest
	if err := readDB(r.db).WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}

func (r *lawyerRequestRepository) ListByLawyer(ctx context.Context, lawyerID uint, status models.RequestStatus) ([]models.LawyerRequest, error) {
	q := readDB(r.db).WithContext(ctx).Where("lawyer_id = ?", lawyerID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var requests []models.LawyerRequest
	if err := q.
		Preload("Client").
		Order("created_at DESC").
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return requests, nil
}
