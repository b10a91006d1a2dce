package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"govportal/internal/authz"
	"govportal/internal/middleware"
	"govportal/internal/models"
	"govportal/internal/repository"
)

// AppointmentService provides appointment business logic.
type AppointmentService struct {
	appointmentRepo  repository.AppointmentRepository
	profileRepo      repository.ProfileRepository
	notificationRepo repository.NotificationRepository
}

// NewAppointmentService returns a new AppointmentService.
func NewAppointmentService(
	appointmentRepo repository.AppointmentRepository,
	profileRepo repository.ProfileRepository,
	notificationRepo repository.NotificationRepository,
) *AppointmentService {
	return &AppointmentService{
		appointmentRepo:  appointmentRepo,
		profileRepo:      profileRepo,
		notificationRepo: notificationRepo,
	}
}

// Submit books a new appointment request with a department.
func (s *AppointmentService) Submit(ctx context.Context, creatorID uint, department models.Department, subject string, preferredAt *time.Time) (*models.Appointment, error) {
	if !department.Valid() {
		return nil, models.NewValidationError(fmt.Sprintf("Unknown department %q", department))
	}
	if strings.TrimSpace(subject) == "" {
		return nil, models.NewValidationError("Subject is required")
	}
	if preferredAt != nil && preferredAt.Before(time.Now()) {
		return nil, models.NewValidationError("Preferred time must be in the future")
	}

	appt := &models.Appointment{
		Department:  department,
		Subject:     strings.TrimSpace(subject),
		PreferredAt: preferredAt,
		Status:      models.AppointmentStatusPending,
		CreatedByID: creatorID,
	}
	if err := s.appointmentRepo.Create(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

// ListMine returns the creator's own appointments, newest first.
func (s *AppointmentService) ListMine(ctx context.Context, creatorID uint) ([]models.Appointment, error) {
	return s.appointmentRepo.ListByCreator(ctx, creatorID)
}

// ListForDesk returns appointments visible to a department desk. Desk holders
// are scoped to their own department; tech admins see everything.
func (s *AppointmentService) ListForDesk(ctx context.Context, viewerID uint, filter repository.AppointmentFilter) ([]models.Appointment, error) {
	viewer, err := s.profileRepo.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	dept, ok := authz.ReviewableDepartment(viewer)
	if !ok {
		return nil, models.NewUnauthorizedError("You are not allowed to view the department queue")
	}
	if dept != "" {
		filter.Department = dept
	}
	if filter.Status == "" {
		filter.Status = models.AppointmentStatusPending
	}
	return s.appointmentRepo.List(ctx, filter)
}

// Transition moves an appointment through its desk-side lifecycle:
// PENDING -> APPROVED/REJECTED/DONE, APPROVED -> DONE. A desk may close a
// walk-in straight from the pending queue without approving it first.
func (s *AppointmentService) Transition(ctx context.Context, reviewerID, appointmentID uint, next models.AppointmentStatus) (*models.Appointment, error) {
	reviewer, err := s.profileRepo.GetByID(ctx, reviewerID)
	if err != nil {
		return nil, err
	}

	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	dept, ok := authz.ReviewableDepartment(reviewer)
	if !ok || (dept != "" && dept != appt.Department) {
		return nil, models.NewUnauthorizedError("You are not allowed to manage this appointment")
	}

	switch {
	case appt.Status == models.AppointmentStatusPending &&
		(next == models.AppointmentStatusApproved || next == models.AppointmentStatusRejected ||
			next == models.AppointmentStatusDone):
	case appt.Status == models.AppointmentStatusApproved && next == models.AppointmentStatusDone:
	default:
		return nil, models.NewValidationError(
			fmt.Sprintf("Cannot move appointment from %s to %s", appt.Status, next))
	}

	appt.Status = next
	if err := s.appointmentRepo.Update(ctx, appt); err != nil {
		return nil, err
	}

	middleware.RequestsReviewed.WithLabelValues("appointment", strings.ToLower(string(next))).Inc()
	s.notify(ctx, appt)
	return appt, nil
}

// Cancel withdraws the citizen's own appointment before it reaches a terminal
// state.
func (s *AppointmentService) Cancel(ctx context.Context, creatorID, appointmentID uint) (*models.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.CreatedByID != creatorID {
		return nil, models.NewUnauthorizedError("You can only cancel your own appointments")
	}
	if appt.Status.Terminal() {
		return nil, models.NewValidationError("Appointment is already closed")
	}

	appt.Status = models.AppointmentStatusCancelled
	if err := s.appointmentRepo.Update(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *AppointmentService) notify(ctx context.Context, appt *models.Appointment) {
	var title string
	switch appt.Status {
	case models.AppointmentStatusApproved:
		title = "Appointment confirmed"
	case models.AppointmentStatusRejected:
		title = "Appointment declined"
	case models.AppointmentStatusDone:
		title = "Appointment completed"
	default:
		return
	}
	notif := &models.Notification{
		ProfileID: appt.CreatedByID,
		Title:     title,
		Body:      fmt.Sprintf("Your appointment with %s: %s", appt.Department, appt.Subject),
	}
	if err := s.notificationRepo.Create(ctx, notif); err != nil {
		middleware.Logger.WarnContext(ctx, "failed to create appointment notification", "appointment_id", appt.ID, "error", err)
	}
}
