package service

import (
	"context"
	"strings"
	"time"

	"govportal/internal/authz"
	"govportal/internal/models"
	"govportal/internal/repository"
)

// CaseService provides case and court session business logic.
type CaseService struct {
	caseRepo    repository.CaseRepository
	sessionRepo repository.CourtSessionRepository
	profileRepo repository.ProfileRepository
}

// NewCaseService returns a new CaseService.
func NewCaseService(
	caseRepo repository.CaseRepository,
	sessionRepo repository.CourtSessionRepository,
	profileRepo repository.ProfileRepository,
) *CaseService {
	return &CaseService{
		caseRepo:    caseRepo,
		sessionRepo: sessionRepo,
		profileRepo: profileRepo,
	}
}

// Open creates a new case record.
func (s *CaseService) Open(ctx context.Context, creatorID uint, number, title, description string) (*models.Case, error) {
	creator, err := s.profileRepo.GetByID(ctx, creatorID)
	if err != nil {
		return nil, err
	}
	if !authz.CanCreateCase(creator) {
		return nil, models.NewUnauthorizedError("You are not allowed to open cases")
	}
	if strings.TrimSpace(number) == "" {
		return nil, models.NewValidationError("Case number is required")
	}
	if strings.TrimSpace(title) == "" {
		return nil, models.NewValidationError("Title is required")
	}

	existing, err := s.caseRepo.GetByNumber(ctx, strings.TrimSpace(number))
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Case number already in use")
	}

	record := &models.Case{
		Number:      strings.TrimSpace(number),
		Title:       strings.TrimSpace(title),
		Description: description,
		Status:      models.CaseStatusOpen,
		CreatedByID: creatorID,
	}
	if err := s.caseRepo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Get returns one case record.
func (s *CaseService) Get(ctx context.Context, id uint) (*models.Case, error) {
	return s.caseRepo.GetByID(ctx, id)
}

// List returns the case registry.
func (s *CaseService) List(ctx context.Context, filter repository.CaseFilter) ([]models.Case, error) {
	return s.caseRepo.List(ctx, filter)
}

// SetStatus advances a case through open -> in_court -> closed -> archived.
// Skipping forward is allowed (open -> closed); moving backward is not.
func (s *CaseService) SetStatus(ctx context.Context, actorID, caseID uint, next models.CaseStatus) (*models.Case, error) {
	actor, err := s.profileRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	record, err := s.caseRepo.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if !authz.CanCreateCase(actor) && !authz.IsTechAdmin(actor) {
		return nil, models.NewUnauthorizedError("You are not allowed to manage cases")
	}
	if caseRank(next) <= caseRank(record.Status) {
		return nil, models.NewValidationError("Case status can only move forward")
	}

	record.Status = next
	if err := s.caseRepo.Update(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func caseRank(s models.CaseStatus) int {
	switch s {
	case models.CaseStatusOpen:
		return 0
	case models.CaseStatusInCourt:
		return 1
	case models.CaseStatusClosed:
		return 2
	case models.CaseStatusArchived:
		return 3
	}
	return -1
}

// ScheduleSession books a hearing for a case. The scheduling judge becomes
// the session's presiding judge.
func (s *CaseService) ScheduleSession(ctx context.Context, judgeID, caseID uint, courtroom string, scheduledAt time.Time) (*models.CourtSession, error) {
	judge, err := s.profileRepo.GetByID(ctx, judgeID)
	if err != nil {
		return nil, err
	}
	if !authz.CanScheduleCourtSession(judge) {
		return nil, models.NewUnauthorizedError("You are not allowed to schedule court sessions")
	}
	record, err := s.caseRepo.GetByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if record.Status == models.CaseStatusClosed || record.Status == models.CaseStatusArchived {
		return nil, models.NewValidationError("Cannot schedule a session for a closed case")
	}
	if strings.TrimSpace(courtroom) == "" {
		return nil, models.NewValidationError("Courtroom is required")
	}
	if scheduledAt.Before(time.Now()) {
		return nil, models.NewValidationError("Session time must be in the future")
	}

	session := &models.CourtSession{
		CaseID:      caseID,
		Courtroom:   strings.TrimSpace(courtroom),
		ScheduledAt: scheduledAt,
		JudgeID:     judgeID,
		Status:      models.CourtSessionStatusScheduled,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	if record.Status == models.CaseStatusOpen {
		record.Status = models.CaseStatusInCourt
		if err := s.caseRepo.Update(ctx, record); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// ListSessions returns the hearings for one case, soonest first.
func (s *CaseService) ListSessions(ctx context.Context, caseID uint) ([]models.CourtSession, error) {
	if _, err := s.caseRepo.GetByID(ctx, caseID); err != nil {
		return nil, err
	}
	return s.sessionRepo.ListByCase(ctx, caseID)
}

// ListUpcomingSessions returns the public hearing schedule.
func (s *CaseService) ListUpcomingSessions(ctx context.Context, limit int) ([]models.CourtSession, error) {
	return s.sessionRepo.ListUpcoming(ctx, limit)
}

// CloseSession marks a session held or cancelled.
func (s *CaseService) CloseSession(ctx context.Context, actorID, sessionID uint, next models.CourtSessionStatus) (*models.CourtSession, error) {
	actor, err := s.profileRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.JudgeID != actorID && !authz.IsTechAdmin(actor) {
		return nil, models.NewUnauthorizedError("Only the presiding judge can close this session")
	}
	if session.Status != models.CourtSessionStatusScheduled {
		return nil, models.NewValidationError("Session is already closed")
	}
	if next != models.CourtSessionStatusHeld && next != models.CourtSessionStatusCancelled {
		return nil, models.NewValidationError("Sessions close as held or cancelled")
	}

	session.Status = next
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
