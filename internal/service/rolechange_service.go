package service

import (
	"context"
	"fmt"

	"govportal/internal/authz"
	"govportal/internal/cache"
	"govportal/internal/middleware"
	"govportal/internal/models"
	"govportal/internal/repository"
	"govportal/internal/validation"

	"gorm.io/gorm"
)

// RoleChangeService provides role-change request business logic.
type RoleChangeService struct {
	db               *gorm.DB
	roleChangeRepo   repository.RoleChangeRepository
	profileRepo      repository.ProfileRepository
	notificationRepo repository.NotificationRepository
}

// NewRoleChangeService returns a new RoleChangeService.
func NewRoleChangeService(
	db *gorm.DB,
	roleChangeRepo repository.RoleChangeRepository,
	profileRepo repository.ProfileRepository,
	notificationRepo repository.NotificationRepository,
) *RoleChangeService {
	return &RoleChangeService{
		db:               db,
		roleChangeRepo:   roleChangeRepo,
		profileRepo:      profileRepo,
		notificationRepo: notificationRepo,
	}
}

// Submit files a role-change request. The current value is snapshotted from
// the creator's profile at submission time for the reviewer's benefit.
func (s *RoleChangeService) Submit(ctx context.Context, creatorID uint, requestType models.RoleChangeType, requestedValue, reason string) (*models.RoleChangeRequest, error) {
	if !requestType.Valid() {
		return nil, models.NewValidationError(fmt.Sprintf("Unknown role change type %q", requestType))
	}
	if err := validateRequestedValue(requestType, requestedValue); err != nil {
		return nil, err
	}
	if err := validation.ValidateReason(reason); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	creator, err := s.profileRepo.GetByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}

	current := currentRoleValue(creator, requestType)
	if current == requestedValue {
		return nil, models.NewValidationError("Requested value matches your current value")
	}

	open, err := s.roleChangeRepo.CountOpen(ctx, creatorID, requestType)
	if err != nil {
		return nil, err
	}
	if open > 0 {
		return nil, models.NewConflictError("You already have an open or approved request of this type")
	}

	req := &models.RoleChangeRequest{
		RequestType:    requestType,
		CurrentValue:   current,
		RequestedValue: requestedValue,
		Reason:         reason,
		Status:         models.RequestStatusPending,
		CreatedByID:    creatorID,
	}
	if err := s.roleChangeRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// ListMine returns the creator's own requests, newest first.
func (s *RoleChangeService) ListMine(ctx context.Context, creatorID uint) ([]models.RoleChangeRequest, error) {
	return s.roleChangeRepo.ListByCreator(ctx, creatorID)
}

// ListForReview returns requests the reviewer may see. Only tech admins and
// faction leaders have a review surface here; leaders see faction-change
// requests targeting their own faction.
func (s *RoleChangeService) ListForReview(ctx context.Context, reviewerID uint, filter repository.RoleChangeFilter) ([]models.RoleChangeRequest, error) {
	reviewer, err := s.profileRepo.GetByID(ctx, reviewerID)
	if err != nil {
		return nil, err
	}
	if filter.Status == "" {
		filter.Status = models.RequestStatusPending
	}

	if authz.IsTechAdmin(reviewer) {
		return s.roleChangeRepo.List(ctx, filter)
	}

	faction, ok := authz.ReviewableFaction(reviewer)
	if !ok {
		return nil, models.NewUnauthorizedError("You are not allowed to review role change requests")
	}
	filter.RequestType = models.RoleChangeTypeFaction

	requests, err := s.roleChangeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	scoped := make([]models.RoleChangeRequest, 0, len(requests))
	for _, req := range requests {
		if req.RequestedValue == string(faction) {
			scoped = append(scoped, req)
		}
	}
	return scoped, nil
}

// Approve flips a PENDING request to APPROVED and writes the requested value
// onto the creator's profile in the same transaction.
func (s *RoleChangeService) Approve(ctx context.Context, reviewerID, requestID uint, reviewComment string) (*models.RoleChangeRequest, error) {
	return s.review(ctx, reviewerID, requestID, reviewComment, true)
}

// Reject flips a PENDING request to REJECTED without touching the profile.
func (s *RoleChangeService) Reject(ctx context.Context, reviewerID, requestID uint, reviewComment string) (*models.RoleChangeRequest, error) {
	return s.review(ctx, reviewerID, requestID, reviewComment, false)
}

func (s *RoleChangeService) review(ctx context.Context, reviewerID, requestID uint, reviewComment string, approve bool) (*models.RoleChangeRequest, error) {
	reviewer, err := s.profileRepo.GetByID(ctx, reviewerID)
	if err != nil {
		return nil, err
	}

	var subjectID uint
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		req, err := s.roleChangeRepo.GetByIDForUpdate(tx, requestID)
		if err != nil {
			return err
		}
		if !authz.CanReviewRoleChange(reviewer, req) {
			return models.NewUnauthorizedError("You are not allowed to review this request")
		}
		if req.Status != models.RequestStatusPending {
			return models.NewValidationError("Request has already been reviewed")
		}

		if approve {
			req.Status = models.RequestStatusApproved
		} else {
			req.Status = models.RequestStatusRejected
		}
		req.ReviewedByID = &reviewerID
		req.ReviewComment = reviewComment

		if approve {
			var subject models.Profile
			if err := tx.First(&subject, req.CreatedByID).Error; err != nil {
				return models.NewInternalError(err)
			}
			applyRoleChange(&subject, req)
			if err := tx.Save(&subject).Error; err != nil {
				return models.NewInternalError(err)
			}
			subjectID = subject.ID
		}

		return s.roleChangeRepo.Save(tx, req)
	})
	if err != nil {
		return nil, err
	}

	if subjectID != 0 {
		cache.InvalidateProfile(ctx, subjectID)
	}

	outcome := "rejected"
	if approve {
		outcome = "approved"
	}
	middleware.RequestsReviewed.WithLabelValues("role_change", outcome).Inc()

	reviewed, err := s.roleChangeRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	s.notifyReview(ctx, reviewed)
	return reviewed, nil
}

// currentRoleValue snapshots the profile field a request type governs.
func currentRoleValue(p *models.Profile, requestType models.RoleChangeType) string {
	switch requestType {
	case models.RoleChangeTypeFaction:
		return string(p.Faction)
	case models.RoleChangeTypeGovRole:
		return string(p.GovRole)
	case models.RoleChangeTypeLeaderRole:
		return string(p.LeaderRole)
	case models.RoleChangeTypeOfficeRole:
		return string(p.OfficeRole)
	}
	return ""
}

// applyRoleChange writes the approved value onto the matching profile field.
func applyRoleChange(subject *models.Profile, req *models.RoleChangeRequest) {
	switch req.RequestType {
	case models.RoleChangeTypeFaction:
		subject.Faction = models.Faction(req.RequestedValue)
	case models.RoleChangeTypeGovRole:
		subject.GovRole = models.GovRole(req.RequestedValue)
	case models.RoleChangeTypeLeaderRole:
		subject.LeaderRole = models.LeaderRole(req.RequestedValue)
	case models.RoleChangeTypeOfficeRole:
		subject.OfficeRole = models.OfficeRole(req.RequestedValue)
	}
}

// validateRequestedValue checks the requested value against the closed enum
// for its request type. Leader and office roles accept the empty string so a
// holder can request stepping down.
func validateRequestedValue(requestType models.RoleChangeType, value string) error {
	switch requestType {
	case models.RoleChangeTypeFaction:
		if !models.Faction(value).Valid() {
			return models.NewValidationError(fmt.Sprintf("Unknown faction %q", value))
		}
	case models.RoleChangeTypeGovRole:
		role := models.GovRole(value)
		if !role.Valid() || role == models.GovRoleTechAdmin {
			return models.NewValidationError(fmt.Sprintf("Invalid gov role %q", value))
		}
	case models.RoleChangeTypeLeaderRole:
		switch models.LeaderRole(value) {
		case models.LeaderRoleNone, models.LeaderRoleGovernor, models.LeaderRoleDirectorWN,
			models.LeaderRoleDirectorFIB, models.LeaderRoleChiefLSPD,
			models.LeaderRoleSheriffLSCSD, models.LeaderRoleChiefEMS, models.LeaderRoleColonelSANG:
		default:
			return models.NewValidationError(fmt.Sprintf("Unknown leader role %q", value))
		}
	case models.RoleChangeTypeOfficeRole:
		switch models.OfficeRole(value) {
		case models.OfficeRoleNone, models.OfficeRoleMinJustice, models.OfficeRoleMinFinance,
			models.OfficeRoleGovernor, models.OfficeRoleRegistry:
		default:
			return models.NewValidationError(fmt.Sprintf("Unknown office role %q", value))
		}
	}
	return nil
}

func (s *RoleChangeService) notifyReview(ctx context.Context, req *models.RoleChangeRequest) {
	title := "Role change request rejected"
	if req.Status == models.RequestStatusApproved {
		title = "Role change request approved"
	}
	notif := &models.Notification{
		ProfileID: req.CreatedByID,
		Title:     title,
		Body:      req.ReviewComment,
	}
	if err := s.notificationRepo.Create(ctx, notif); err != nil {
		middleware.Logger.WarnContext(ctx, "failed to create review notification", "request_id", req.ID, "error", err)
	}
}
