package service

import (
	"context"
	"strings"

	"govportal/internal/authz"
	"govportal/internal/models"
	"govportal/internal/repository"
	"govportal/internal/validation"
)

// ActService provides government and court act business logic. The two act
// kinds share identical lifecycles (draft -> published -> archived) but have
// separate authoring gates and registries.
type ActService struct {
	govActRepo   repository.GovActRepository
	courtActRepo repository.CourtActRepository
	profileRepo  repository.ProfileRepository
}

// NewActService returns a new ActService.
func NewActService(
	govActRepo repository.GovActRepository,
	courtActRepo repository.CourtActRepository,
	profileRepo repository.ProfileRepository,
) *ActService {
	return &ActService{
		govActRepo:   govActRepo,
		courtActRepo: courtActRepo,
		profileRepo:  profileRepo,
	}
}

// ActInput carries the writable fields of an act draft.
type ActInput struct {
	Title     string
	Content   string
	SourceURL string
}

func (in *ActInput) validate() error {
	if err := validation.ValidateActTitle(in.Title); err != nil {
		return models.NewValidationError(err.Error())
	}
	if strings.TrimSpace(in.Content) == "" {
		return models.NewValidationError("Content is required")
	}
	return nil
}

// CreateGovAct drafts a new government act.
func (s *ActService) CreateGovAct(ctx context.Context, authorID uint, in ActInput) (*models.GovAct, error) {
	author, err := s.profileRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if !authz.CanCreateGovAct(author) {
		return nil, models.NewUnauthorizedError("You are not allowed to author government acts")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	act := &models.GovAct{
		Title:     strings.TrimSpace(in.Title),
		Content:   in.Content,
		SourceURL: in.SourceURL,
		Status:    models.ActStatusDraft,
		AuthorID:  authorID,
	}
	if err := s.govActRepo.Create(ctx, act); err != nil {
		return nil, err
	}
	return act, nil
}

// UpdateGovAct edits an act draft or published act. Only the author or a tech
// admin may edit; archived acts are frozen.
func (s *ActService) UpdateGovAct(ctx context.Context, editorID, actID uint, in ActInput) (*models.GovAct, error) {
	editor, err := s.profileRepo.GetByID(ctx, editorID)
	if err != nil {
		return nil, err
	}
	act, err := s.govActRepo.GetByID(ctx, actID)
	if err != nil {
		return nil, err
	}
	if !authz.CanEditAct(editor, act.AuthorID) {
		return nil, models.NewUnauthorizedError("You are not allowed to edit this act")
	}
	if act.Status == models.ActStatusArchived {
		return nil, models.NewValidationError("Archived acts cannot be edited")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	act.Title = strings.TrimSpace(in.Title)
	act.Content = in.Content
	act.SourceURL = in.SourceURL
	if err := s.govActRepo.Update(ctx, act); err != nil {
		return nil, err
	}
	return act, nil
}

// SetGovActStatus moves an act along draft -> published -> archived.
func (s *ActService) SetGovActStatus(ctx context.Context, editorID, actID uint, next models.ActStatus) (*models.GovAct, error) {
	editor, err := s.profileRepo.GetByID(ctx, editorID)
	if err != nil {
		return nil, err
	}
	act, err := s.govActRepo.GetByID(ctx, actID)
	if err != nil {
		return nil, err
	}
	if !authz.CanEditAct(editor, act.AuthorID) {
		return nil, models.NewUnauthorizedError("You are not allowed to manage this act")
	}
	if err := validateActTransition(act.Status, next); err != nil {
		return nil, err
	}

	act.Status = next
	if err := s.govActRepo.Update(ctx, act); err != nil {
		return nil, err
	}
	return act, nil
}

// GetGovAct returns one act. Drafts are only visible to their author and tech
// admins; viewerID 0 means an anonymous reader.
func (s *ActService) GetGovAct(ctx context.Context, viewerID, actID uint) (*models.GovAct, error) {
	act, err := s.govActRepo.GetByID(ctx, actID)
	if err != nil {
		return nil, err
	}
	if act.Status == models.ActStatusDraft {
		if viewerID == 0 {
			return nil, models.NewNotFoundError("Government act", actID)
		}
		viewer, err := s.profileRepo.GetByID(ctx, viewerID)
		if err != nil {
			return nil, err
		}
		if !authz.CanEditAct(viewer, act.AuthorID) {
			return nil, models.NewNotFoundError("Government act", actID)
		}
	}
	return act, nil
}

// ListGovActs returns the public registry. Non-empty status other than
// published requires authoring rights, and non-admin authors only see their
// own drafts and archives, so nothing unpublished leaks across authors.
func (s *ActService) ListGovActs(ctx context.Context, viewerID uint, filter repository.ActFilter) ([]models.GovAct, error) {
	ownOnly, err := s.registryScope(ctx, viewerID, filter.Status, authz.CanCreateGovAct)
	if err != nil {
		return nil, err
	}
	if ownOnly {
		filter.AuthorID = viewerID
	}
	if filter.Status == "" {
		filter.Status = models.ActStatusPublished
	}
	return s.govActRepo.List(ctx, filter)
}

// CreateCourtAct drafts a new court act.
func (s *ActService) CreateCourtAct(ctx context.Context, judgeID uint, in ActInput) (*models.CourtAct, error) {
	judge, err := s.profileRepo.GetByID(ctx, judgeID)
	if err != nil {
		return nil, err
	}
	if !authz.CanCreateCourtAct(judge) {
		return nil, models.NewUnauthorizedError("You are not allowed to author court acts")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	act := &models.CourtAct{
		Title:     strings.TrimSpace(in.Title),
		Content:   in.Content,
		SourceURL: in.SourceURL,
		Status:    models.ActStatusDraft,
		JudgeID:   judgeID,
	}
	if err := s.courtActRepo.Create(ctx, act); err != nil {
		return nil, err
	}
	return act, nil
}

// UpdateCourtAct edits a court act under the same ownership rules as
// government acts.
func (s *ActService) UpdateCourtAct(ctx context.Context, editorID, actID uint, in ActInput) (*models.CourtAct, error) {
	editor, err := s.profileRepo.GetByID(ctx, editorID)
	if err != nil {
		return nil, err
	}
	act, err := s.courtActRepo.GetByID(ctx, actID)
	if err != nil {
		return nil, err
	}
	if !authz.CanEditAct(editor, act.JudgeID) {
		return nil, models.NewUnauthorizedError("You are not allowed to edit this act")
	}
	if act.Status == models.ActStatusArchived {
		return nil, models.NewValidationError("Archived acts cannot be edited")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	act.Title = strings.TrimSpace(in.Title)
	act.Content = in.Content
	act.SourceURL = in.SourceURL
	if err := s.courtActRepo.Update(ctx, act); err != nil {
		return nil, err
	}
	return act, nil
}

// SetCourtActStatus moves a court act along draft -> published -> archived.
func (s *ActService) SetCourtActStatus(ctx context.Context, editorID, actID uint, next models.ActStatus) (*models.CourtAct, error) {
	editor, err := s.profileRepo.GetByID(ctx, editorID)
	if err != nil {
		return nil, err
	}
	act, err := s.courtActRepo.GetByID(ctx, actID)
	if err != nil {
		return nil, err
	}
	if !authz.CanEditAct(editor, act.JudgeID) {
		return nil, models.NewUnauthorizedError("You are not allowed to manage this act")
	}
	if err := validateActTransition(act.Status, next); err != nil {
		return nil, err
	}

	act.Status = next
	if err := s.courtActRepo.Update(ctx, act); err != nil {
		return nil, err
	}
	return act, nil
}

// GetCourtAct mirrors GetGovAct for the judicial registry.
func (s *ActService) GetCourtAct(ctx context.Context, viewerID, actID uint) (*models.CourtAct, error) {
	act, err := s.courtActRepo.GetByID(ctx, actID)
	if err != nil {
		return nil, err
	}
	if act.Status == models.ActStatusDraft {
		if viewerID == 0 {
			return nil, models.NewNotFoundError("Court act", actID)
		}
		viewer, err := s.profileRepo.GetByID(ctx, viewerID)
		if err != nil {
			return nil, err
		}
		if !authz.CanEditAct(viewer, act.JudgeID) {
			return nil, models.NewNotFoundError("Court act", actID)
		}
	}
	return act, nil
}

// ListCourtActs returns the judicial registry with the same draft shielding
// as ListGovActs.
func (s *ActService) ListCourtActs(ctx context.Context, viewerID uint, filter repository.ActFilter) ([]models.CourtAct, error) {
	ownOnly, err := s.registryScope(ctx, viewerID, filter.Status, authz.CanCreateCourtAct)
	if err != nil {
		return nil, err
	}
	if ownOnly {
		filter.AuthorID = viewerID
	}
	if filter.Status == "" {
		filter.Status = models.ActStatusPublished
	}
	return s.courtActRepo.List(ctx, filter)
}

// registryScope gates non-published listings and reports whether the result
// must be pinned to the viewer's own acts. Tech admins list unscoped.
func (s *ActService) registryScope(ctx context.Context, viewerID uint, status models.ActStatus, gate func(*models.Profile) bool) (bool, error) {
	if status == "" || status == models.ActStatusPublished {
		return false, nil
	}
	if viewerID == 0 {
		return false, models.NewUnauthorizedError("Sign in to view non-published acts")
	}
	viewer, err := s.profileRepo.GetByID(ctx, viewerID)
	if err != nil {
		return false, err
	}
	if !gate(viewer) {
		return false, models.NewUnauthorizedError("You are not allowed to view non-published acts")
	}
	return !authz.IsTechAdmin(viewer), nil
}

func validateActTransition(current, next models.ActStatus) error {
	switch {
	case current == models.ActStatusDraft && next == models.ActStatusPublished:
	case current == models.ActStatusPublished && next == models.ActStatusArchived:
	default:
		return models.NewValidationError("Invalid act status transition")
	}
	return nil
}
