package service

import (
	"context"
	"fmt"

	"govportal/internal/authz"
	"govportal/internal/cache"
	"govportal/internal/middleware"
	"govportal/internal/models"
	"govportal/internal/observability"
	"govportal/internal/repository"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
)

// VerificationService provides verification-request business logic.
type VerificationService struct {
	db               *gorm.DB
	verificationRepo repository.VerificationRepository
	profileRepo      repository.ProfileRepository
	notificationRepo repository.NotificationRepository
}

// NewVerificationService returns a new VerificationService.
func NewVerificationService(
	db *gorm.DB,
	verificationRepo repository.VerificationRepository,
	profileRepo repository.ProfileRepository,
	notificationRepo repository.NotificationRepository,
) *VerificationService {
	return &VerificationService{
		db:               db,
		verificationRepo: verificationRepo,
		profileRepo:      profileRepo,
		notificationRepo: notificationRepo,
	}
}

// Submit files a new verification request for the creator. A creator may hold
// at most one PENDING or APPROVED request per kind.
func (s *VerificationService) Submit(ctx context.Context, creatorID uint, kind models.VerificationKind, targetFaction *models.Faction, comment string) (*models.VerificationRequest, error) {
	if !kind.Valid() {
		return nil, models.NewValidationError(fmt.Sprintf("Unknown verification kind %q", kind))
	}
	if kind == models.VerificationKindFactionMember {
		if targetFaction == nil || !targetFaction.Valid() {
			return nil, models.NewValidationError("Faction membership requests require a valid target faction")
		}
	} else if targetFaction != nil {
		return nil, models.NewValidationError("Target faction is only valid for faction membership requests")
	}

	open, err := s.verificationRepo.CountOpen(ctx, creatorID, kind)
	if err != nil {
		return nil, err
	}
	if open > 0 {
		return nil, models.NewConflictError("You already have an open or approved request of this kind")
	}

	req := &models.VerificationRequest{
		Kind:          kind,
		TargetFaction: targetFaction,
		Comment:       comment,
		Status:        models.RequestStatusPending,
		CreatedByID:   creatorID,
	}
	if err := s.verificationRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// ListMine returns the creator's own requests, newest first.
func (s *VerificationService) ListMine(ctx context.Context, creatorID uint) ([]models.VerificationRequest, error) {
	return s.verificationRepo.ListByCreator(ctx, creatorID)
}

// ListForReview returns requests the reviewer is entitled to see. Faction
// leaders are scoped to their own faction's membership requests.
func (s *VerificationService) ListForReview(ctx context.Context, reviewerID uint, filter repository.VerificationFilter) ([]models.VerificationRequest, error) {
	reviewer, err := s.profileRepo.GetByID(ctx, reviewerID)
	if err != nil {
		return nil, err
	}

	if filter.Kind != "" && !filter.Kind.Valid() {
		return nil, models.NewValidationError(fmt.Sprintf("Unknown verification kind %q", filter.Kind))
	}
	if filter.Status == "" {
		filter.Status = models.RequestStatusPending
	}

	if filter.Kind == models.VerificationKindFactionMember && !authz.IsTechAdmin(reviewer) {
		scope, ok := authz.ReviewableFaction(reviewer)
		if !ok {
			return nil, models.NewUnauthorizedError("You are not allowed to review faction membership requests")
		}
		filter.TargetFaction = scope
	} else if filter.Kind != "" {
		if !authz.CanReviewVerification(reviewer, filter.Kind) {
			return nil, models.NewUnauthorizedError("You are not allowed to review requests of this kind")
		}
	} else if !authz.IsTechAdmin(reviewer) {
		return nil, models.NewValidationError("A verification kind is required")
	}

	return s.verificationRepo.List(ctx, filter)
}

// Approve flips a PENDING request to APPROVED and applies the corresponding
// profile mutation. Both writes happen in one transaction behind a row lock,
// so a concurrent second review sees the flipped status and fails.
func (s *VerificationService) Approve(ctx context.Context, reviewerID, requestID uint, reviewComment string) (*models.VerificationRequest, error) {
	return s.review(ctx, reviewerID, requestID, reviewComment, true)
}

// Reject flips a PENDING request to REJECTED. No profile mutation happens.
func (s *VerificationService) Reject(ctx context.Context, reviewerID, requestID uint, reviewComment string) (*models.VerificationRequest, error) {
	return s.review(ctx, reviewerID, requestID, reviewComment, false)
}

func (s *VerificationService) review(ctx context.Context, reviewerID, requestID uint, reviewComment string, approve bool) (*models.VerificationRequest, error) {
	span, ctx := observability.NewSpan(ctx, "verification.review")
	defer span.End()
	span.AddAttributes(
		attribute.Int("request.id", int(requestID)),
		attribute.Bool("request.approve", approve),
	)

	reviewer, err := s.profileRepo.GetByID(ctx, reviewerID)
	if err != nil {
		return nil, err
	}

	var subjectID uint
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		req, err := s.verificationRepo.GetByIDForUpdate(tx, requestID)
		if err != nil {
			return err
		}
		if !authz.CanReviewVerification(reviewer, req.Kind) {
			return models.NewUnauthorizedError("You are not allowed to review this request")
		}
		if req.Kind == models.VerificationKindFactionMember {
			scope, _ := authz.ReviewableFaction(reviewer)
			if scope != "" && (req.TargetFaction == nil || *req.TargetFaction != scope) {
				return models.NewUnauthorizedError("You can only review join requests for your own faction")
			}
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
			applyVerificationGrant(&subject, req)
			if err := tx.Save(&subject).Error; err != nil {
				return models.NewInternalError(err)
			}
			subjectID = subject.ID
		}

		return s.verificationRepo.Save(tx, req)
	})
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	if subjectID != 0 {
		cache.InvalidateProfile(ctx, subjectID)
	}

	outcome := "rejected"
	if approve {
		outcome = "approved"
	}
	middleware.RequestsReviewed.WithLabelValues("verification", outcome).Inc()

	reviewed, err := s.verificationRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	s.notifyReview(ctx, reviewed)
	return reviewed, nil
}

// applyVerificationGrant mutates the subject profile per the approved kind.
func applyVerificationGrant(subject *models.Profile, req *models.VerificationRequest) {
	switch req.Kind {
	case models.VerificationKindAccount:
		subject.IsVerified = true
	case models.VerificationKindProsecutor:
		subject.GovRole = models.GovRoleProsecutor
		subject.IsVerified = true
	case models.VerificationKindJudge:
		subject.GovRole = models.GovRoleJudge
		subject.IsVerified = true
	case models.VerificationKindFactionMember:
		if req.TargetFaction != nil {
			subject.Faction = *req.TargetFaction
		}
	}
}

// notifyReview informs the request creator about the outcome. Notification
// failures are logged, never surfaced to the reviewer.
func (s *VerificationService) notifyReview(ctx context.Context, req *models.VerificationRequest) {
	title := "Verification request rejected"
	if req.Status == models.RequestStatusApproved {
		title = "Verification request approved"
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
