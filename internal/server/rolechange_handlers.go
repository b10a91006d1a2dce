package server

import (
	"govportal/internal/models"
	"govportal/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// CreateRoleChange handles POST /api/role-changes
// @Summary Submit a role change request
// @Tags role-changes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{request_type=string,requested_value=string,reason=string} true "Role change request"
// @Success 201 {object} models.RoleChangeRequest
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /role-changes [post]
func (s *Server) CreateRoleChange(c *fiber.Ctx) error {
	var req struct {
		RequestType    models.RoleChangeType `json:"request_type"`
		RequestedValue string                `json:"requested_value"`
		Reason         string                `json:"reason"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	created, err := s.roleChangeService.Submit(c.Context(), s.profileID(c), req.RequestType, req.RequestedValue, req.Reason)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetMyRoleChanges handles GET /api/role-changes/me
// @Summary List own role change requests
// @Tags role-changes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.RoleChangeRequest
// @Router /role-changes/me [get]
func (s *Server) GetMyRoleChanges(c *fiber.Ctx) error {
	requests, err := s.roleChangeService.ListMine(c.Context(), s.profileID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(requests)
}

// ListRoleChangesForReview handles GET /api/role-changes/review
// @Summary List role change requests awaiting review
// @Tags role-changes
// @Produce json
// @Security BearerAuth
// @Param request_type query string false "Role change type"
// @Param status query string false "Request status"
// @Param limit query int false "Max results"
// @Param offset query int false "Offset"
// @Success 200 {array} models.RoleChangeRequest
// @Failure 403 {object} models.ErrorResponse
// @Router /role-changes/review [get]
func (s *Server) ListRoleChangesForReview(c *fiber.Ctx) error {
	p := parsePagination(c, 50)
	filter := repository.RoleChangeFilter{
		RequestType: models.RoleChangeType(c.Query("request_type")),
		Status:      models.RequestStatus(c.Query("status")),
		Limit:       p.Limit,
		Offset:      p.Offset,
	}

	requests, err := s.roleChangeService.ListForReview(c.Context(), s.profileID(c), filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(requests)
}

// ApproveRoleChange handles POST /api/role-changes/:id/approve
// @Summary Approve a role change request
// @Tags role-changes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body object{comment=string} false "Review comment"
// @Success 200 {object} models.RoleChangeRequest
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /role-changes/{id}/approve [post]
func (s *Server) ApproveRoleChange(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	reviewed, err := s.roleChangeService.Approve(c.Context(), s.profileID(c), id, reviewComment(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(reviewed)
}

// RejectRoleChange handles POST /api/role-changes/:id/reject
// @Summary Reject a role change request
// @Tags role-changes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body object{comment=string} false "Review comment"
// @Success 200 {object} models.RoleChangeRequest
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /role-changes/{id}/reject [post]
func (s *Server) RejectRoleChange(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	reviewed, err := s.roleChangeService.Reject(c.Context(), s.profileID(c), id, reviewComment(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(reviewed)
}
