package server

import (
	"strings"

	"govportal/internal/authz"
	"govportal/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateInspection handles POST /api/inspections
// @Summary Open an inspection
// @Tags inspections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{target=string,kind=string} true "Inspection"
// @Success 201 {object} models.Inspection
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /inspections [post]
func (s *Server) CreateInspection(c *fiber.Ctx) error {
	var req struct {
		Target string `json:"target"`
		Kind   string `json:"kind"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	inspector, err := s.profileRepo.GetByID(c.Context(), s.profileID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	if !authz.CanCreateInspection(inspector) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("You are not allowed to open inspections"))
	}
	if strings.TrimSpace(req.Target) == "" || strings.TrimSpace(req.Kind) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Target and kind are required"))
	}

	insp := &models.Inspection{
		Target:      strings.TrimSpace(req.Target),
		Kind:        strings.TrimSpace(req.Kind),
		Status:      models.InspectionStatusOpen,
		InspectorID: inspector.ID,
	}
	if err := s.inspectionRepo.Create(c.Context(), insp); err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(insp)
}

// GetInspection handles GET /api/inspections/:id
// @Summary Get an inspection
// @Tags inspections
// @Produce json
// @Security BearerAuth
// @Param id path int true "Inspection ID"
// @Success 200 {object} models.Inspection
// @Failure 404 {object} models.ErrorResponse
// @Router /inspections/{id} [get]
func (s *Server) GetInspection(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	insp, err := s.inspectionRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(insp)
}

// ListInspections handles GET /api/inspections
// @Summary List inspections
// @Tags inspections
// @Produce json
// @Security BearerAuth
// @Param status query string false "Inspection status"
// @Param limit query int false "Max results"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Inspection
// @Router /inspections [get]
func (s *Server) ListInspections(c *fiber.Ctx) error {
	p := parsePagination(c, 50)
	inspections, err := s.inspectionRepo.List(c.Context(),
		models.InspectionStatus(c.Query("status")), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(inspections)
}

// CompleteInspection handles POST /api/inspections/:id/complete
// @Summary Record findings and close an inspection
// @Tags inspections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Inspection ID"
// @Param request body object{findings=string} true "Findings"
// @Success 200 {object} models.Inspection
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /inspections/{id}/complete [post]
func (s *Server) CompleteInspection(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req struct {
		Findings string `json:"findings"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	actor, err := s.profileRepo.GetByID(c.Context(), s.profileID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	insp, err := s.inspectionRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	if insp.InspectorID != actor.ID && !authz.IsTechAdmin(actor) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("Only the inspector can close this inspection"))
	}
	if insp.Status != models.InspectionStatusOpen {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Inspection is already completed"))
	}

	insp.Findings = req.Findings
	insp.Status = models.InspectionStatusCompleted
	if err := s.inspectionRepo.Update(c.Context(), insp); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(insp)
}
