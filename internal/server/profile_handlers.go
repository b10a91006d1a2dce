package server

import (
	"govportal/internal/models"
	"govportal/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/profiles/me
// @Summary Get own profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Profile
// @Router /profiles/me [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	profile, err := s.profileRepo.GetByID(c.Context(), s.profileID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// UpdateMyProfile handles PUT /api/profiles/me
// @Summary Update own profile
// @Description Update display fields. Roles and verification flags are only
// @Description changed through the request workflows.
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Profile
// @Failure 400 {object} models.ErrorResponse
// @Router /profiles/me [put]
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		Nickname *string `json:"nickname"`
		Discord  *string `json:"discord"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileRepo.GetByID(c.Context(), s.profileID(c))
	if err != nil {
		return respondServiceError(c, err)
	}

	if req.Nickname != nil {
		if err := validation.ValidateNickname(*req.Nickname); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError(err.Error()))
		}
		profile.Nickname = *req.Nickname
	}
	if req.Discord != nil {
		profile.Discord = *req.Discord
	}

	if err := s.profileRepo.Update(c.Context(), profile); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// GetProfile handles GET /api/profiles/:id
// @Summary Get a profile by ID
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param id path int true "Profile ID"
// @Success 200 {object} models.Profile
// @Failure 404 {object} models.ErrorResponse
// @Router /profiles/{id} [get]
func (s *Server) GetProfile(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	profile, err := s.profileRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profile)
}

// ListProfiles handles GET /api/profiles
// @Summary List or search profiles
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search by nickname or static ID"
// @Param limit query int false "Max results"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Profile
// @Router /profiles [get]
func (s *Server) ListProfiles(c *fiber.Ctx) error {
	p := parsePagination(c, 50)

	if q := c.Query("q"); q != "" {
		profiles, err := s.profileRepo.SearchByName(c.Context(), q, p.Limit)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(profiles)
	}

	profiles, err := s.profileRepo.List(c.Context(), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(profiles)
}
