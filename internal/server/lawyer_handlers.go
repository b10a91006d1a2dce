package server

import (
	"govportal/internal/models"

	"github.com/gofiber/fiber/v2"
)

// RegisterLawyer handles POST /api/lawyers
// @Summary Register a lawyer
// @Description Admin-only: add a profile to the lawyer registry.
// @Tags lawyers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{profile_id=int,license_number=string,specialization=string} true "Lawyer entry"
// @Success 201 {object} models.Lawyer
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /lawyers [post]
func (s *Server) RegisterLawyer(c *fiber.Ctx) error {
	var req struct {
		ProfileID      uint   `json:"profile_id"`
		LicenseNumber  string `json:"license_number"`
		Specialization string `json:"specialization"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	lawyer, err := s.lawyerService.Register(c.Context(), s.profileID(c), req.ProfileID, req.LicenseNumber, req.Specialization)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(lawyer)
}

// ListLawyers handles GET /api/lawyers
// @Summary List active lawyers
// @Tags lawyers
// @Produce json
// @Param limit query int false "Max results"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Lawyer
// @Router /lawyers [get]
func (s *Server) ListLawyers(c *fiber.Ctx) error {
	p := parsePagination(c, 50)
	lawyers, err := s.lawyerService.List(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(lawyers)
}

// SetLawyerStatus handles POST /api/lawyers/:id/status
// @Summary Suspend or reinstate a lawyer
// @Tags lawyers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lawyer ID"
// @Param request body object{status=string} true "active or suspended"
// @Success 200 {object} models.Lawyer
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /lawyers/{id}/status [post]
func (s *Server) SetLawyerStatus(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req struct {
		Status models.LawyerStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	lawyer, err := s.lawyerService.SetStatus(c.Context(), s.profileID(c), id, req.Status)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(lawyer)
}

// RequestRepresentation handles POST /api/lawyers/:id/requests
// @Summary Request legal representation
// @Tags lawyers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lawyer ID"
// @Param request body object{subject=string} true "What the case is about"
// @Success 201 {object} models.LawyerRequest
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /lawyers/{id}/requests [post]
func (s *Server) RequestRepresentation(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req struct {
		Subject string `json:"subject"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	created, err := s.lawyerService.RequestRepresentation(c.Context(), s.profileID(c), id, req.Subject)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetMyLawyerRequests handles GET /api/lawyer-requests/me
// @Summary List own representation requests
// @Tags lawyers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.LawyerRequest
// @Router /lawyer-requests/me [get]
func (s *Server) GetMyLawyerRequests(c *fiber.Ctx) error {
	requests, err := s.lawyerService.ListMyRequests(c.Context(), s.profileID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(requests)
}

// GetIncomingLawyerRequests handles GET /api/lawyer-requests/incoming
// @Summary List requests addressed to the caller's lawyer entry
// @Tags lawyers
// @Produce json
// @Security BearerAuth
// @Param status query string false "Request status"
// @Success 200 {array} models.LawyerRequest
// @Failure 403 {object} models.ErrorResponse
// @Router /lawyer-requests/incoming [get]
func (s *Server) GetIncomingLawyerRequests(c *fiber.Ctx) error {
	requests, err := s.lawyerService.ListIncoming(c.Context(), s.profileID(c),
		models.RequestStatus(c.Query("status")))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(requests)
}

// RespondLawyerRequest handles POST /api/lawyer-requests/:id/respond
// @Summary Accept or decline a representation request
// @Tags lawyers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body object{accept=bool,notes=string} true "Response"
// @Success 200 {object} models.LawyerRequest
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /lawyer-requests/{id}/respond [post]
func (s *Server) RespondLawyerRequest(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req struct {
		Accept bool   `json:"accept"`
		Notes  string `json:"notes"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	answered, err := s.lawyerService.Respond(c.Context(), s.profileID(c), id, req.Accept, req.Notes)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(answered)
}
