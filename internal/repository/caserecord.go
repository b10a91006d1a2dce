package repository

import (
	"context"
	"errors"

	"govportal/internal/models"

	"gorm.io/gorm"
)

// CaseFilter narrows listings of case records.
type CaseFilter struct {
	Status models.CaseStatus // empty means all statuses
	Limit  int
	Offset int
}

// CaseRepository defines persistence operations for case records.
type CaseRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Case, error)
	GetByNumber(ctx context.Context, number string) (*models.Case, error)
	Create(ctx context.Context, record *models.Case) error
	Update(ctx context.Context, record *models.Case) error
	List(ctx context.Context, filter CaseFilter) ([]models.Case, error)
}

type caseRepository struct {
	db *gorm.DB
}

// NewCaseRepository returns a new CaseRepository implementation.
func NewCaseRepository(db *gorm.DB) CaseRepository {
	return &caseRepository{db: db}
}

func (r *caseRepository) GetByID(ctx context.Context, id uint) (*models.Case, error) {
	var record models.Case
	if err := readDB(r.db).WithContext(ctx).Preload("CreatedBy").First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Case", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &record, nil
}

// GetByNumber returns nil, nil when no case carries the number.
func (r *caseRepository) GetByNumber(ctx context.Context, number string) (*models.Case, error) {
	var record models.Case
	if err := readDB(r.db).WithContext(ctx).Where("number = ?", number).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &record, nil
}

func (r *caseRepository) Create(ctx context.Context, record *models.Case) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Case number already in use")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *caseRepository) Update(ctx context.Context, record *models.Case) error {
	if err := r.db.WithContext(ctx).Save(record).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *caseRepository) List(ctx context.Context, filter CaseFilter) ([]models.Case, error) {
	q := readDB(r.db).WithContext(ctx).Model(&models.Case{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var records []models.Case
	if err := q.
		Order("created_at DESC").
		Limit(clampLimit(filter.Limit, 50)).
		Offset(filter.Offset).
		Find(&records).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return records, nil
}

// CourtSessionRepository defines persistence operations for court sessions.
type CourtSessionRepository interface {
	GetByID(ctx context.Context, id uint) (*models.CourtSession, error)
	Create(ctx context.Context, session *models.CourtSession) error
	Update(ctx context.Context, session *models.CourtSession) error
	ListByCase(ctx context.Context, caseID uint) ([]models.CourtSession, error)
	ListUpcoming(ctx context.Context, limit int) ([]models.CourtSession, error)
}

type courtSessionRepository struct {
	db *gorm.DB
}

// NewCourtSessionRepository returns a new CourtSessionRepository
// implementation.
func NewCourtSessionRepository(db *gorm.DB) CourtSessionRepository {
	return &courtSessionRepository{db: db}
}

func (r *courtSessionRepository) GetByID(ctx context.Context, id uint) (*models.CourtSession, error) {
	var session models.CourtSession
	if err := readDB(r.db).WithContext(ctx).Preload("Judge").First(&session, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Court session", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &session, nil
}

func (r *courtSessionRepository) Create(ctx context.Context, session *models.CourtSession) error {
	if err := r.db.WithContext(ctx).Create(session).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *courtSessionRepository) Update(ctx context.Context, session *models.CourtSession) error {
	if err := r.db.WithContext(ctx).Save(session).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *courtSessionRepository) ListByCase(ctx context.Context, caseID uint) ([]models.CourtSession, error) {
	var sessions []models.CourtSession
	if err := readDB(r.db).WithContext(ctx).
		Where("case_id = ?", caseID).
		Order("scheduled_at ASC").
		Find(&sessions).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return sessions, nil
}

// ListUpcoming returns scheduled sessions soonest first.
func (r *courtSessionRepository) ListUpcoming(ctx context.Context, limit int) ([]models.CourtSession, error) {
	var sessions []models.CourtSession
	if err := readDB(r.db).WithContext(ctx).
		Where("status = ?", models.CourtSessionStatusScheduled).
		Order("scheduled_at ASC").
		Limit(clampLimit(limit, 50)).
		Find(&sessions).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return sessions, nil
}
