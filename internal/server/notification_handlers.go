package server

import (
	"govportal/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetMyNotifications handles GET /api/notifications
// @Summary List own notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param unread query bool false "Only unread"
// @Param limit query int false "Max results"
// @Param offset query int false "Offset"
// @Success 200 {object} object{notifications=[]models.Notification,unread=int}
// @Router /notifications [get]
func (s *Server) GetMyNotifications(c *fiber.Ctx) error {
	p := parsePagination(c, 50)
	profileID := s.profileID(c)

	notifs, err := s.notificationRepo.ListByProfile(c.Context(), profileID,
		c.QueryBool("unread", false), p.Limit, p.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	unread, err := s.notificationRepo.CountUnread(c.Context(), profileID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"notifications": notifs,
		"unread":        unread,
	})
}

// MarkNotificationRead handles POST /api/notifications/:id/read
// @Summary Mark one notification read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /notifications/{id}/read [post]
func (s *Server) MarkNotificationRead(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	notif, err := s.notificationRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	if notif.ProfileID != s.profileID(c) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("You can only manage your own notifications"))
	}

	if err := s.notificationRepo.MarkRead(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notification marked read"})
}

// MarkAllNotificationsRead handles POST /api/notifications/read-all
// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string}
// @Router /notifications/read-all [post]
func (s *Server) MarkAllNotificationsRead(c *fiber.Ctx) error {
	if err := s.notificationRepo.MarkAllRead(c.Context(), s.profileID(c)); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "All notifications marked read"})
}

// DeleteNotification handles DELETE /api/notifications/:id
// @Summary Dismiss a notification permanently
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /notifications/{id} [delete]
func (s *Server) DeleteNotification(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	notif, err := s.notificationRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	if notif.ProfileID != s.profileID(c) {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewUnauthorizedError("You can only manage your own notifications"))
	}

	if err := s.notificationRepo.Delete(c.Context(), id); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Notification deleted"})
}
