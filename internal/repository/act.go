package repository

import (
	"context"
	"errors"

	"govportal/internal/models"

	"gorm.io/gorm"
)

// ActFilter narrows registry listings of acts.
type ActFilter struct {
	Status   models.ActStatus // empty means all statuses
	AuthorID uint             // non-zero restricts to one author's acts
	Limit    int
	Offset   int
}

// GovActRepository defines persistence operations for government acts.
type GovActRepository interface {
	GetByID(ctx context.Context, id uint) (*models.GovAct, error)
	Create(ctx context.Context, act *models.GovAct) error
	Update(ctx context.Context, act *models.GovAct) error
	List(ctx context.Context, filter ActFilter) ([]models.GovAct, error)
	Search(ctx context.Context, query string, limit int) ([]models.GovAct, error)
}

type govActRepository struct {
	db *gorm.DB
}

// NewGovActRepository returns a new GovActRepository implementation.
func NewGovActRepository(db *gorm.DB) GovActRepository {
	return &govActRepository{db: db}
}

func (r *govActRepository) GetByID(ctx context.Context, id uint) (*models.GovAct, error) {
	var act models.GovAct
	if err := readDB(r.db).WithContext(ctx).Preload("Author").First(&act, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Government act", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &act, nil
}

func (r *govActRepository) Create(ctx context.Context, act *models.GovAct) error {
	if err := r.db.WithContext(ctx).Create(act).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *govActRepository) Update(ctx context.Context, act *models.GovAct) error {
	if err := r.db.WithContext(ctx).Save(act).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *govActRepository) List(ctx context.Context, filter ActFilter) ([]models.GovAct, error) {
	q := readDB(r.db).WithContext(ctx).Model(&models.GovAct{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.AuthorID != 0 {
		q = q.Where("author_id = ?", filter.AuthorID)
	}

	var acts []models.GovAct
	if err := q.
		Order("created_at DESC").
		Limit(clampLimit(filter.Limit, 50)).
		Offset(filter.Offset).
		Find(&acts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return acts, nil
}

func (r *govActRepository) Search(ctx context.Context, query string, limit int) ([]models.GovAct, error) {
	var acts []models.GovAct
	pattern := "%" + query + "%"
	if err := readDB(r.db).WithContext(ctx).
		Where("status = ? AND (title LIKE ? OR content LIKE ?)", models.ActStatusPublished, pattern, pattern).
		Limit(clampLimit(limit, 50)).
		Order("created_at DESC").
		Find(&acts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return acts, nil
}

// CourtActRepository defines persistence operations for court acts.
type CourtActRepository interface {
	GetByID(ctx context.Context, id uint) (*models.CourtAct, error)
	Create(ctx context.Context, act *models.CourtAct) error
	Update(ctx context.Context, act *models.CourtAct) error
	List(ctx context.Context, filter ActFilter) ([]models.CourtAct, error)
	Search(ctx context.Context, query string, limit int) ([]models.CourtAct, error)
}

type courtActRepository struct {
	db *gorm.DB
}

// NewCourtActRepository returns a new CourtActRepository implementation.
func NewCourtActRepository(db *gorm.DB) CourtActRepository {
	return &courtActRepository{db: db}
}

func (r *courtActRepository) GetByID(ctx context.Context, id uint) (*models.CourtAct, error) {
	var act models.CourtAct
	if err := readDB(r.db).WithContext(ctx).Preload("Judge").First(&act, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Court act", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &act, nil
}

func (r *courtActRepository) Create(ctx context.Context, act *models.CourtAct) error {
	if err := r.db.WithContext(ctx).Create(act).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *courtActRepository) Update(ctx context.Context, act *models.CourtAct) error {
	if err := r.db.WithContext(ctx).Save(act).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *courtActRepository) List(ctx context.Context, filter ActFilter) ([]models.CourtAct, error) {
	q := readDB(r.db).WithContext(ctx).Model(&models.CourtAct{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.AuthorID != 0 {
		q = q.Where("judge_id = ?", filter.AuthorID)
	}

	var acts []models.CourtAct
	if err := q.
		Order("created_at DESC").
		Limit(clampLimit(filter.Limit, 50)).
		Offset(filter.Offset).
		Find(&acts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return acts, nil
}

func (r *courtActRepository) Search(ctx context.Context, query string, limit int) ([]models.CourtAct, error) {
	var acts []models.CourtAct
	pattern := "%" + query + "%"
	if err := readDB(r.db).WithContext(ctx).
		Where("status = ? AND (title LIKE ? OR content LIKE ?)", models.ActStatusPublished, pattern, pattern).
		Limit(clampLimit(limit, 50)).
		Order("created_at DESC").
		Find(&acts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return acts, nil
}
