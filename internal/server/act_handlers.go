package server

import (
	"govportal/internal/models"
	"govportal/internal/repository"
	"govportal/internal/service"

	"github.com/gofiber/fiber/v2"
)

type actRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	SourceURL string `json:"source_url"`
}

// CreateGovAct handles POST /api/acts/gov
// @Summary Draft a government act
// @Tags acts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body actRequest true "Act draft"
// @Success 201 {object} models.GovAct
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /acts/gov [post]
func (s *Server) CreateGovAct(c *fiber.Ctx) error {
	var req actRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	act, err := s.actService.CreateGovAct(c.Context(), s.profileID(c), service.ActInput{
		Title: req.Title, Content: req.Content, SourceURL: req.SourceURL,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(act)
}

// UpdateGovAct handles PUT /api/acts/gov/:id
// @Summary Edit a government act
// @Tags acts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Act ID"
// @Param request body actRequest true "Act fields"
// @Success 200 {object} models.GovAct
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /acts/gov/{id} [put]
func (s *Server) UpdateGovAct(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req actRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	act, err := s.actService.UpdateGovAct(c.Context(), s.profileID(c), id, service.ActInput{
		Title: req.Title, Content: req.Content, SourceURL: req.SourceURL,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(act)
}

// SetGovActStatus handles POST /api/acts/gov/:id/status
// @Summary Publish or archive a government act
// @Tags acts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Act ID"
// @Param request body object{status=string} true "Target status"
// @Success 200 {object} models.GovAct
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /acts/gov/{id}/status [post]
func (s *Server) SetGovActStatus(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req struct {
		Status models.ActStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	act, err := s.actService.SetGovActStatus(c.Context(), s.profileID(c), id, req.Status)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(act)
}

// GetGovAct handles GET /api/acts/gov/:id
// @Summary Get a government act
// @Tags acts
// @Produce json
// @Param id path int true "Act ID"
// @Success 200 {object} models.GovAct
// @Failure 404 {object} models.ErrorResponse
// @Router /acts/gov/{id} [get]
func (s *Server) GetGovAct(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	viewerID, _ := s.optionalProfileID(c)

	act, err := s.actService.GetGovAct(c.Context(), viewerID, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(act)
}

// ListGovActs handles GET /api/acts/gov
// @Summary List the government act registry
// @Tags acts
// @Produce json
// @Param status query string false "Act status (non-published requires authoring rights)"
// @Param limit query int false "Max results"
// @Param offset query int false "Offset"
// @Success 200 {array} models.GovAct
// @Router /acts/gov [get]
func (s *Server) ListGovActs(c *fiber.Ctx) error {
	p := parsePagination(c, 50)
	viewerID, _ := s.optionalProfileID(c)
	filter := repository.ActFilter{
		Status: models.ActStatus(c.Query("status")),
		Limit:  p.Limit,
		Offset: p.Offset,
	}

	acts, err := s.actService.ListGovActs(c.Context(), viewerID, filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(acts)
}

// CreateCourtAct handles POST /api/acts/court
// @Summary Draft a court act
// @Tags acts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body actRequest true "Act draft"
// @Success 201 {object} models.CourtAct
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /acts/court [post]
func (s *Server) CreateCourtAct(c *fiber.Ctx) error {
	var req actRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	act, err := s.actService.CreateCourtAct(c.Context(), s.profileID(c), service.ActInput{
		Title: req.Title, Content: req.Content, SourceURL: req.SourceURL,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(act)
}

// UpdateCourtAct handles PUT /api/acts/court/:id
// @Summary Edit a court act
// @Tags acts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Act ID"
// @Param request body actRequest true "Act fields"
// @Success 200 {object} models.CourtAct
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /acts/court/{id} [put]
func (s *Server) UpdateCourtAct(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req actRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	act, err := s.actService.UpdateCourtAct(c.Context(), s.profileID(c), id, service.ActInput{
		Title: req.Title, Content: req.Content, SourceURL: req.SourceURL,
	})
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(act)
}

// SetCourtActStatus handles POST /api/acts/court/:id/status
// @Summary Publish or archive a court act
// @Tags acts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Act ID"
// @Param request body object{status=string} true "Target status"
// @Success 200 {object} models.CourtAct
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /acts/court/{id}/status [post]
func (s *Server) SetCourtActStatus(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	var req struct {
		Status models.ActStatus `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	act, err := s.actService.SetCourtActStatus(c.Context(), s.profileID(c), id, req.Status)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(act)
}

// GetCourtAct handles GET /api/acts/court/:id
// @Summary Get a court act
// @Tags acts
// @Produce json
// @Param id path int true "Act ID"
// @Success 200 {object} models.CourtAct
// @Failure 404 {object} models.ErrorResponse
// @Router /acts/court/{id} [get]
func (s *Server) GetCourtAct(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	viewerID, _ := s.optionalProfileID(c)

	act, err := s.actService.GetCourtAct(c.Context(), viewerID, id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(act)
}

// ListCourtActs handles GET /api/acts/court
// @Summary List the court act registry
// @Tags acts
// @Produce json
// @Param status query string false "Act status (non-published requires authoring rights)"
// @Param limit query int false "Max results"
// @Param offset query int false "Offset"
// @Success 200 {array} models.CourtAct
// @Router /acts/court [get]
func (s *Server) ListCourtActs(c *fiber.Ctx) error {
	p := parsePagination(c, 50)
	viewerID, _ := s.optionalProfileID(c)
	filter := repository.ActFilter{
		Status: models.ActStatus(c.Query("status")),
		Limit:  p.Limit,
		Offset: p.Offset,
	}

	acts, err := s.actService.ListCourtActs(c.Context(), viewerID, filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(acts)
}
