package server

import (
	"strings"

	"govportal/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Search handles GET /api/search
// @Summary Portal-wide search
// @Description Searches published acts, active warrants, and profiles.
// @Tags search
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Max results per section"
// @Success 200 {object} object{gov_acts=[]models.GovAct,court_acts=[]models.CourtAct,warrants=[]models.Warrant,profiles=[]models.Profile}
// @Failure 400 {object} models.ErrorResponse
// @Router /search [get]
func (s *Server) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if len(q) < 2 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Search query must be at least 2 characters"))
	}
	p := parsePagination(c, 20)

	govActs, err := s.govActRepo.Search(c.Context(), q, p.Limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	courtActs, err := s.courtActRepo.Search(c.Context(), q, p.Limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	warrants, err := s.warrantRepo.Search(c.Context(), q, p.Limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	profiles, err := s.profileRepo.SearchByName(c.Context(), q, p.Limit)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"gov_acts":   govActs,
		"court_acts": courtActs,
		"warrants":   warrants,
		"profiles":   profiles,
	})
}
