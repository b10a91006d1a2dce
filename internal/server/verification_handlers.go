package server

import (
	"govportal/internal/models"
	"govportal/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// CreateVerification handles POST /api/verifications
// @Summary Submit a verification request
// @Tags verifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{kind=string,target_faction=string,comment=string} true "Verification request"
// @Success 201 {object} models.VerificationRequest
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /verifications [post]
func (s *Server) CreateVerification(c *fiber.Ctx) error {
	var req struct {
		Kind          models.VerificationKind `json:"kind"`
		TargetFaction *models.Faction         `json:"target_faction"`
		Comment       string                  `json:"comment"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	created, err := s.verificationService.Submit(c.Context(), s.profileID(c), req.Kind, req.TargetFaction, req.Comment)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetMyVerifications handles GET /api/verifications/me
// @Summary List own verification requests
// @Tags verifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.VerificationRequest
// @Router /verifications/me [get]
func (s *Server) GetMyVerifications(c *fiber.Ctx) error {
	requests, err := s.verificationService.ListMine(c.Context(), s.profileID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(requests)
}

// ListVerificationsForReview handles GET /api/verifications/review
// @Summary List verification requests awaiting review
// @Description Scoped to the reviewer's authority. Defaults to PENDING.
// @Tags verifications
// @Produce json
// @Security BearerAuth
// @Param kind query string false "Verification kind"
// @Param status query string false "Request status"
// @Param limit query int false "Max results"
// @Param offset query int false "Offset"
// @Success 200 {array} models.VerificationRequest
// @Failure 403 {object} models.ErrorResponse
// @Router /verifications/review [get]
func (s *Server) ListVerificationsForReview(c *fiber.Ctx) error {
	p := parsePagination(c, 50)
	filter := repository.VerificationFilter{
		Kind:   models.VerificationKind(c.Query("kind")),
		Status: models.RequestStatus(c.Query("status")),
		Limit:  p.Limit,
		Offset: p.Offset,
	}

	requests, err := s.verificationService.ListForReview(c.Context(), s.profileID(c), filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(s.withRequestAuthors(c, requests))
}

// ApproveVerification handles POST /api/verifications/:id/approve
// @Summary Approve a verification request
// @Tags verifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body object{comment=string} false "Review comment"
// @Success 200 {object} models.VerificationRequest
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /verifications/{id}/approve [post]
func (s *Server) ApproveVerification(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	comment := reviewComment(c)

	reviewed, err := s.verificationService.Approve(c.Context(), s.profileID(c), id, comment)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(reviewed)
}

// RejectVerification handles POST /api/verifications/:id/reject
// @Summary Reject a verification request
// @Tags verifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Request ID"
// @Param request body object{comment=string} false "Review comment"
// @Success 200 {object} models.VerificationRequest
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /verifications/{id}/reject [post]
func (s *Server) RejectVerification(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	comment := reviewComment(c)

	reviewed, err := s.verificationService.Reject(c.Context(), s.profileID(c), id, comment)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(reviewed)
}

// reviewComment parses the optional review comment body.
func reviewComment(c *fiber.Ctx) string {
	var req struct {
		Comment string `json:"comment"`
	}
	_ = c.BodyParser(&req)
	return req.Comment
}

// verificationListItem pairs a request with its resolved author display.
type verificationListItem struct {
	models.VerificationRequest
	Author authorView `json:"author"`
}

// withRequestAuthors resolves creator display names in one batched query.
func (s *Server) withRequestAuthors(c *fiber.Ctx, requests []models.VerificationRequest) []verificationListItem {
	ids := make([]uint, 0, len(requests))
	for _, r := range requests {
		ids = append(ids, r.CreatedByID)
	}
	authors, err := s.resolveAuthors(c, ids)
	if err != nil {
		authors = map[uint]authorView{}
	}

	items := make([]verificationListItem, 0, len(requests))
	for _, r := range requests {
		author, ok := authors[r.CreatedByID]
		if !ok {
			author = authorPlaceholder
		}
		items = append(items, verificationListItem{VerificationRequest: r, Author: author})
	}
	return items
}
