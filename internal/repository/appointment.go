package repository

import (
	"context"
	"errors"

	"govportal/internal/models"

	"gorm.io/gorm"
)

// AppointmentFilter narrows office-cabinet listings of appointments.
type AppointmentFilter struct {
	Department models.Department
	Status     models.AppointmentStatus // empty means all statuses
	Limit      int
	Offset     int
}

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	GetByID(ctx context.Context, id uint) (*models.Appointment, error)
	Create(ctx context.Context, appt *models.Appointment) error
	Update(ctx context.Context, appt *models.Appointment) error
	ListByCreator(ctx context.Context, creatorID uint) ([]models.Appointment, error)
	List(ctx context.Context, filter AppointmentFilter) ([]models.Appointment, error)
}

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository returns a new AppointmentRepository
// implementation.
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) GetByID(ctx context.Context, id uint) (*models.Appointment, error) {
	var appt models.Appointment
	if err := readDB(r.db).WithContext(ctx).First(&appt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Appointment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &appt, nil
}

func (r *appointmentRepository) Create(ctx context.Context, appt *models.Appointment) error {
	if err := r.db.WithContext(ctx).Create(appt).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *appointmentRepository) Update(ctx context.Context, appt *models.Appointment) error {
	if err := r.db.WithContext(ctx).Save(appt).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *appointmentRepository) ListByCreator(ctx context.Context, creatorID uint) ([]models.Appointment, error) {
	var appts []models.Appointment
	if err := readDB(r.db).WithContext(ctx).
		Where("created_by_id = ?", creatorID).
		Order("created_at DESC").
		Find(&appts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return appts, nil
}

func (r *appointmentRepository) List(ctx context.Context, filter AppointmentFilter) ([]models.Appointment, error) {
	q := readDB(r.db).WithContext(ctx).Model(&models.Appointment{})
	if filter.Department != "" {
		q = q.Where("department = ?", filter.Department)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var appts []models.Appointment
	if err := q.
		Order("created_at DESC").
		Limit(clampLimit(filter.Limit, 50)).
		Offset(filter.Offset).
		Find(&appts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return appts, nil
}
