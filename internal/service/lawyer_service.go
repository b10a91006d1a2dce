package service

import (
	"context"
	"strings"

	"govportal/internal/authz"
	"govportal/internal/middleware"
	"govportal/internal/models"
	"govportal/internal/repository"
)

// LawyerService provides lawyer registry and representation-request logic.
type LawyerService struct {
	lawyerRepo       repository.LawyerRepository
	requestRepo      repository.LawyerRequestRepository
	profileRepo      repository.ProfileRepository
	notificationRepo repository.NotificationRepository
}

// NewLawyerService returns a new LawyerService.
func NewLawyerService(
	lawyerRepo repository.LawyerRepository,
	requestRepo repository.LawyerRequestRepository,
	profileRepo repository.ProfileRepository,
	notificationRepo repository.NotificationRepository,
) *LawyerService {
	return &LawyerService{
		lawyerRepo:       lawyerRepo,
		requestRepo:      requestRepo,
		profileRepo:      profileRepo,
		notificationRepo: notificationRepo,
	}
}

// Register adds a profile to the lawyer registry. Tech admin only.
func (s *LawyerService) Register(ctx context.Context, actorID, profileID uint, licenseNumber, specialization string) (*models.Lawyer, error) {
	actor, err := s.profileRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !authz.IsTechAdmin(actor) {
		return nil, models.NewUnauthorizedError("Only administrators can register lawyers")
	}
	if strings.TrimSpace(licenseNumber) == "" {
		return nil, models.NewValidationError("License number is required")
	}
	if _, err := s.profileRepo.GetByID(ctx, profileID); err != nil {
		return nil, err
	}

	lawyer := &models.Lawyer{
		ProfileID:      profileID,
		LicenseNumber:  strings.TrimSpace(licenseNumber),
		Specialization: specialization,
		Status:         models.LawyerStatusActive,
	}
	if err := s.lawyerRepo.Create(ctx, lawyer); err != nil {
		return nil, err
	}
	return lawyer, nil
}

// List returns the public registry of active lawyers.
func (s *LawyerService) List(ctx context.Context, limit, offset int) ([]models.Lawyer, error) {
	return s.lawyerRepo.List(ctx, limit, offset)
}

// SetStatus suspends or reinstates a lawyer. Tech admin only.
func (s *LawyerService) SetStatus(ctx context.Context, actorID, lawyerID uint, next models.LawyerStatus) (*models.Lawyer, error) {
	actor, err := s.profileRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if !authz.IsTechAdmin(actor) {
		return nil, models.NewUnauthorizedError("Only administrators can manage lawyers")
	}
	if next != models.LawyerStatusActive && next != models.LawyerStatusSuspended {
		return nil, models.NewValidationError("Unknown lawyer status")
	}

	lawyer, err := s.lawyerRepo.GetByID(ctx, lawyerID)
	if err != nil {
		return nil, err
	}
	lawyer.Status = next
	if err := s.lawyerRepo.Update(ctx, lawyer); err != nil {
		return nil, err
	}
	return lawyer, nil
}

// RequestRepresentation files a citizen's request to be represented.
func (s *LawyerService) RequestRepresentation(ctx context.Context, clientID, lawyerID uint, subject string) (*models.LawyerRequest, error) {
	if strings.TrimSpace(subject) == "" {
		return nil, models.NewValidationError("Subject is required")
	}

	lawyer, err := s.lawyerRepo.GetByID(ctx, lawyerID)
	if err != nil {
		return nil, err
	}
	if lawyer.Status != models.LawyerStatusActive {
		return nil, models.NewValidationError("This lawyer is not accepting clients")
	}
	if lawyer.ProfileID == clientID {
		return nil, models.NewValidationError("You cannot request representation from yourself")
	}

	req := &models.LawyerRequest{
		ClientID: clientID,
		LawyerID: lawyerID,
		Subject:  strings.TrimSpace(subject),
		Status:   models.RequestStatusPending,
	}
	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// ListMyRequests returns the client's own representation requests.
func (s *LawyerService) ListMyRequests(ctx context.Context, clientID uint) ([]models.LawyerRequest, error) {
	return s.requestRepo.ListByClient(ctx, clientID)
}

// ListIncoming returns the requests addressed to the caller's lawyer entry.
func (s *LawyerService) ListIncoming(ctx context.Context, profileID uint, status models.RequestStatus) ([]models.LawyerRequest, error) {
	lawyer, err := s.lawyerRepo.GetByProfileID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if lawyer == nil {
		return nil, models.NewUnauthorizedError("You are not a registered lawyer")
	}
	return s.requestRepo.ListByLawyer(ctx, lawyer.ID, status)
}

// Respond lets the addressed lawyer accept or decline a pending request.
func (s *LawyerService) Respond(ctx context.Context, profileID, requestID uint, accept bool, notes string) (*models.LawyerRequest, error) {
	lawyer, err := s.lawyerRepo.GetByProfileID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if lawyer == nil {
		return nil, models.NewUnauthorizedError("You are not a registered lawyer")
	}

	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.LawyerID != lawyer.ID {
		return nil, models.NewUnauthorizedError("You can only respond to your own requests")
	}
	if req.Status != models.RequestStatusPending {
		return nil, models.NewValidationError("Request has already been answered")
	}

	if accept {
		req.Status = models.RequestStatusApproved
	} else {
		req.Status = models.RequestStatusRejected
	}
	req.ReviewNotes = notes
	if err := s.requestRepo.Update(ctx, req); err != nil {
		return nil, err
	}

	title := "Representation request declined"
	if accept {
		title = "Representation request accepted"
	}
	notif := &models.Notification{
		ProfileID: req.ClientID,
		Title:     title,
		Body:      notes,
	}
	if err := s.notificationRepo.Create(ctx, notif); err != nil {
		middleware.Logger.WarnContext(ctx, "failed to create representation notification", "request_id", req.ID, "error", err)
	}
	return req, nil
}
