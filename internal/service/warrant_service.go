package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"govportal/internal/authz"
	"govportal/internal/models"
	"govportal/internal/repository"
	"govportal/internal/validation"
)

// WarrantService provides warrant registry business logic.
type WarrantService struct {
	warrantRepo repository.WarrantRepository
	profileRepo repository.ProfileRepository
}

// NewWarrantService returns a new WarrantService.
func NewWarrantService(warrantRepo repository.WarrantRepository, profileRepo repository.ProfileRepository) *WarrantService {
	return &WarrantService{warrantRepo: warrantRepo, profileRepo: profileRepo}
}

// WarrantInput carries the writable fields of a warrant.
type WarrantInput struct {
	WarrantNumber string
	TargetName    string
	WarrantType   models.WarrantType
	Reason        string
	Articles      models.Articles
	ValidUntil    *time.Time
}

// Issue files a new active warrant.
func (s *WarrantService) Issue(ctx context.Context, issuerID uint, in WarrantInput) (*models.Warrant, error) {
	issuer, err := s.profileRepo.GetByID(ctx, issuerID)
	if err != nil {
		return nil, err
	}
	if !authz.CanCreateWarrant(issuer) {
		return nil, models.NewUnauthorizedError("You are not allowed to issue warrants")
	}

	if strings.TrimSpace(in.WarrantNumber) == "" {
		return nil, models.NewValidationError("Warrant number is required")
	}
	if strings.TrimSpace(in.TargetName) == "" {
		return nil, models.NewValidationError("Target name is required")
	}
	if !in.WarrantType.Valid() {
		return nil, models.NewValidationError(fmt.Sprintf("Unknown warrant type %q", in.WarrantType))
	}
	if err := validation.ValidateReason(in.Reason); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if in.ValidUntil != nil && in.ValidUntil.Before(time.Now()) {
		return nil, models.NewValidationError("Expiry must be in the future")
	}

	warrant := &models.Warrant{
		WarrantNumber: strings.TrimSpace(in.WarrantNumber),
		TargetName:    strings.TrimSpace(in.TargetName),
		WarrantType:   in.WarrantType,
		Reason:        in.Reason,
		Articles:      in.Articles,
		ValidUntil:    in.ValidUntil,
		Status:        models.WarrantStatusActive,
		IssuedByID:    issuerID,
	}
	if err := s.warrantRepo.Create(ctx, warrant); err != nil {
		return nil, err
	}
	return warrant, nil
}

// Get returns one warrant, expiring it lazily when its validity has lapsed.
func (s *WarrantService) Get(ctx context.Context, id uint) (*models.Warrant, error) {
	warrant, err := s.warrantRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.expireIfLapsed(ctx, warrant)
}

// List returns the warrant registry.
func (s *WarrantService) List(ctx context.Context, filter repository.WarrantFilter) ([]models.Warrant, error) {
	return s.warrantRepo.List(ctx, filter)
}

// Revoke marks an active warrant revoked. Only the issuer or a tech admin may
// revoke.
func (s *WarrantService) Revoke(ctx context.Context, actorID, warrantID uint) (*models.Warrant, error) {
	actor, err := s.profileRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	warrant, err := s.warrantRepo.GetByID(ctx, warrantID)
	if err != nil {
		return nil, err
	}
	if !authz.CanDeleteWarrant(actor, warrant.IssuedByID) {
		return nil, models.NewUnauthorizedError("You are not allowed to revoke this warrant")
	}
	if warrant.Status != models.WarrantStatusActive {
		return nil, models.NewValidationError("Only active warrants can be revoked")
	}

	warrant.Status = models.WarrantStatusRevoked
	if err := s.warrantRepo.Update(ctx, warrant); err != nil {
		return nil, err
	}
	return warrant, nil
}

// Delete removes a warrant permanently. Same gate as Revoke.
func (s *WarrantService) Delete(ctx context.Context, actorID, warrantID uint) error {
	actor, err := s.profileRepo.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	warrant, err := s.warrantRepo.GetByID(ctx, warrantID)
	if err != nil {
		return err
	}
	if !authz.CanDeleteWarrant(actor, warrant.IssuedByID) {
		return models.NewUnauthorizedError("You are not allowed to delete this warrant")
	}
	return s.warrantRepo.Delete(ctx, warrantID)
}

// expireIfLapsed flips an active warrant to expired once ValidUntil passes.
// The flip is persisted so registry listings converge without a cron job.
func (s *WarrantService) expireIfLapsed(ctx context.Context, warrant *models.Warrant) (*models.Warrant, error) {
	if warrant.Status != models.WarrantStatusActive || warrant.ValidUntil == nil {
		return warrant, nil
	}
	if warrant.ValidUntil.After(time.Now()) {
		return warrant, nil
	}
	warrant.Status = models.WarrantStatusExpired
	if err := s.warrantRepo.Update(ctx, warrant); err != nil {
		return nil, err
	}
	return warrant, nil
}
