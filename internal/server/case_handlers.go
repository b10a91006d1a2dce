package server

import (
	"time"

	"govportal/internal/models"
	"govportal/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// CreateCase handles POST /api/cases
// @Summary Open a case record
// @Tags cases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{number=string,title=string,description=string} true "Case record"
// @Success 201 {object} models.Case
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /cases [post]
func (s *Server) CreateCase(c *fiber.Ctx) error {
	var req struct {
		Number      string `json:"number"`
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	record, err := s.caseService.Open(c.Context(), s.profileID(c), req.Number, req.Title, req.Description)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// GetCase handles GET /api/cases/:id
// @Summary Get a case record
// @Tags cases
// @Produce json
// @Security BearerAuth
// @Param id path int true "Case ID"
// @Success 200 {object} models.Case
// @Failure 404 {object} models.ErrorResponse
// @Router /cases/{id} [get]
func (s *Server) GetCase(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	record, err := s.caseService.Get(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(record)
}

// ListCases handles GET /api/cases
// @Summary List the case registry
// @Tags cases
// @Produce json
// @Security BearerAuth
// @Param status query string false "Case status"
// @Param limit query int false "Max results"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Case
// @Router /cases [get]
func (s *Server) ListCases(c *fiber.Ctx) error {
	p := parsePagination(c, 50)
	filter := repository.CaseFilter{
		Status: models.CaseStatus(c.Query("status")),
		Limit:  p.Limit,
		Offset: p.Offset,
	}

	records, err := s.caseService.List(c.Context(), filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(records)
}

// SetCaseStatus handles POST /api/cases/:id/status
// @Summary Advance a case's status
// @Tags cases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Case ID"
// @Param request body object{status=string} true "Target status"
// @Success 200 {object} models.Case
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /cases/{id}/status [post]
func (s *Server) SetCaseStatus(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req struct {
		Status models.CaseStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	record, err := s.caseService.SetStatus(c.Context(), s.profileID(c), id, req.Status)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(record)
}

// ScheduleCourtSession handles POST /api/cases/:id/sessions
// @Summary Schedule a hearing for a case
// @Tags court-sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Case ID"
// @Param request body object{courtroom=string,scheduled_at=string} true "Session details"
// @Success 201 {object} models.CourtSession
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /cases/{id}/sessions [post]
func (s *Server) ScheduleCourtSession(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req struct {
		Courtroom   string    `json:"courtroom"`
		ScheduledAt time.Time `json:"scheduled_at"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	session, err := s.caseService.ScheduleSession(c.Context(), s.profileID(c), id, req.Courtroom, req.ScheduledAt)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(session)
}

// ListCaseSessions handles GET /api/cases/:id/sessions
// @Summary List hearings for a case
// @Tags court-sessions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Case ID"
// @Success 200 {array} models.CourtSession
// @Failure 404 {object} models.ErrorResponse
// @Router /cases/{id}/sessions [get]
func (s *Server) ListCaseSessions(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	sessions, err := s.caseService.ListSessions(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(sessions)
}

// ListUpcomingSessions handles GET /api/court-sessions/upcoming
// @Summary List the public hearing schedule
// @Tags court-sessions
// @Produce json
// @Param limit query int false "Max results"
// @Success 200 {array} models.CourtSession
// @Router /court-sessions/upcoming [get]
func (s *Server) ListUpcomingSessions(c *fiber.Ctx) error {
	p := parsePagination(c, 50)
	sessions, err := s.caseService.ListUpcomingSessions(c.Context(), p.Limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(sessions)
}

// CloseCourtSession handles POST /api/court-sessions/:id/close
// @Summary Mark a session held or cancelled
// @Tags court-sessions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Session ID"
// @Param request body object{status=string} true "held or cancelled"
// @Success 200 {object} models.CourtSession
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /court-sessions/{id}/close [post]
func (s *Server) CloseCourtSession(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req struct {
		Status models.CourtSessionStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	session, err := s.caseService.CloseSession(c.Context(), s.profileID(c), id, req.Status)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(session)
}
