package server

import (
	"time"

	"govportal/internal/models"
	"govportal/internal/repository"
	"govportal/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateWarrant handles POST /api/warrants
// @Summary Issue a warrant
// @Tags warrants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{warrant_number=string,target_name=string,warrant_type=string,reason=string,articles=[]string,valid_until=string} true "Warrant"
// @Success 201 {object} models.Warrant
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /warrants [post]
func (s *Server) CreateWarrant(c *fiber.Ctx) error {
	var req struct {
		WarrantNumber string             `json:"warrant_number"`
		TargetName    string             `json:"target_name"`
		WarrantType   models.WarrantType `json:"warrant_type"`
		Reason        string             `json:"reason"`
		Articles      models.Articles    `json:"articles"`
		ValidUntil    *time.Time         `json:"valid_until"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	warrant, err := s.warrantService.Issue(c.Context(), s.profileID(c), service.WarrantInput{
		WarrantNumber: req.WarrantNumber,
		TargetName:    req.TargetName,
		WarrantType:   req.WarrantType,
		Reason:        req.Reason,
		Articles:      req.Articles,
		ValidUntil:    req.ValidUntil,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(warrant)
}

// GetWarrant handles GET /api/warrants/:id
// @Summary Get a warrant
// @Tags warrants
// @Produce json
// @Param id path int true "Warrant ID"
// @Success 200 {object} models.Warrant
// @Failure 404 {object} models.ErrorResponse
// @Router /warrants/{id} [get]
func (s *Server) GetWarrant(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	warrant, err := s.warrantService.Get(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(warrant)
}

// ListWarrants handles GET /api/warrants
// @Summary List the warrant registry
// @Tags warrants
// @Produce json
// @Param status query string false "Warrant status"
// @Param limit query int false "Max results"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Warrant
// @Router /warrants [get]
func (s *Server) ListWarrants(c *fiber.Ctx) error {
	p := parsePagination(c, 50)
	filter := repository.WarrantFilter{
		Status: models.WarrantStatus(c.Query("status")),
		Limit:  p.Limit,
		Offset: p.Offset,
	}

	warrants, err := s.warrantService.List(c.Context(), filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(warrants)
}

// RevokeWarrant handles POST /api/warrants/:id/revoke
// @Summary Revoke an active warrant
// @Tags warrants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Warrant ID"
// @Success 200 {object} models.Warrant
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /warrants/{id}/revoke [post]
func (s *Server) RevokeWarrant(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	warrant, err := s.warrantService.Revoke(c.Context(), s.profileID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(warrant)
}

// DeleteWarrant handles DELETE /api/warrants/:id
// @Summary Permanently delete a warrant
// @Tags warrants
// @Produce json
// @Security BearerAuth
// @Param id path int true "Warrant ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /warrants/{id} [delete]
func (s *Server) DeleteWarrant(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.warrantService.Delete(c.Context(), s.profileID(c), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Warrant deleted"})
}
