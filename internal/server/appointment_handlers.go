package server

import (
	"time"

	"govportal/internal/models"
	"govportal/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// CreateAppointment handles POST /api/appointments
// @Summary Book an appointment with a department
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body object{department=string,subject=string,preferred_at=string} true "Appointment request"
// @Success 201 {object} models.Appointment
// @Failure 400 {object} models.ErrorResponse
// @Router /appointments [post]
func (s *Server) CreateAppointment(c *fiber.Ctx) error {
	var req struct {
		Department  models.Department `json:"department"`
		Subject     string            `json:"subject"`
		PreferredAt *time.Time        `json:"preferred_at"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	created, err := s.appointmentService.Submit(c.Context(), s.profileID(c), req.Department, req.Subject, req.PreferredAt)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetMyAppointments handles GET /api/appointments/me
// @Summary List own appointments
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Appointment
// @Router /appointments/me [get]
func (s *Server) GetMyAppointments(c *fiber.Ctx) error {
	appts, err := s.appointmentService.ListMine(c.Context(), s.profileID(c))
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(appts)
}

// ListDeskAppointments handles GET /api/appointments/desk
// @Summary List the department desk queue
// @Description Desk holders see their own department; defaults to PENDING.
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param status query string false "Appointment status"
// @Param limit query int false "Max results"
// @Param offset query int false "Offset"
// @Success 200 {array} models.Appointment
// @Failure 403 {object} models.ErrorResponse
// @Router /appointments/desk [get]
func (s *Server) ListDeskAppointments(c *fiber.Ctx) error {
	p := parsePagination(c, 50)
	filter := repository.AppointmentFilter{
		Status: models.AppointmentStatus(c.Query("status")),
		Limit:  p.Limit,
		Offset: p.Offset,
	}

	appts, err := s.appointmentService.ListForDesk(c.Context(), s.profileID(c), filter)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(appts)
}

// ApproveAppointment handles POST /api/appointments/:id/approve
// @Summary Confirm a pending appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /appointments/{id}/approve [post]
func (s *Server) ApproveAppointment(c *fiber.Ctx) error {
	return s.transitionAppointment(c, models.AppointmentStatusApproved)
}

// RejectAppointment handles POST /api/appointments/:id/reject
// @Summary Decline a pending appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /appointments/{id}/reject [post]
func (s *Server) RejectAppointment(c *fiber.Ctx) error {
	return s.transitionAppointment(c, models.AppointmentStatusRejected)
}

// CompleteAppointment handles POST /api/appointments/:id/done
// @Summary Mark a confirmed appointment as held
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /appointments/{id}/done [post]
func (s *Server) CompleteAppointment(c *fiber.Ctx) error {
	return s.transitionAppointment(c, models.AppointmentStatusDone)
}

func (s *Server) transitionAppointment(c *fiber.Ctx, next models.AppointmentStatus) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	appt, err := s.appointmentService.Transition(c.Context(), s.profileID(c), id, next)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(appt)
}

// CancelAppointment handles POST /api/appointments/:id/cancel
// @Summary Withdraw own appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Success 200 {object} models.Appointment
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Router /appointments/{id}/cancel [post]
func (s *Server) CancelAppointment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}
	appt, err := s.appointmentService.Cancel(c.Context(), s.profileID(c), id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(appt)
}
