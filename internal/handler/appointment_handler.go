package handler

import (
	"github.com/labstack/echo/v4"

	"wittycar/internal/httputil"
	"wittycar/internal/service"
)

// AppointmentHandler handles appointment endpoints.
type AppointmentHandler struct {
	appointmentService service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler.
func NewAppointmentHandler(appointmentService service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// CreateAppointmentRequest represents an appointment booking request.
type CreateAppointmentRequest struct {
	VehicleID string `json:"vehicleId"`
	Date      string `json:"date"`
}

// UpdateAppointmentRequest represents a partial appointment update.
type UpdateAppointmentRequest struct {
	VehicleID *string `json:"vehicleId"`
	Date      *string `json:"date"`
}

// ListAppointments godoc
// @Summary List the authenticated user's appointments
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httputil.Envelope
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return httputil.Fail(c, err)
	}

	appointments, err := h.appointmentService.ListAppointments(c.Request().Context(), claims.UID)
	if err != nil {
		return httputil.Fail(c, err)
	}
	return httputil.OK(c, "appointments retrieved successfully", appointments)
}

// GetAppointment godoc
// @Summary Get one appointment by id
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} httputil.Envelope
// @Failure 404 {object} httputil.Envelope
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetAppointment(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return httputil.Fail(c, err)
	}

	appointment, err := h.appointmentService.GetAppointment(c.Request().Context(), c.Param("id"), claims.UID)
	if err != nil {
		return httputil.Fail(c, err)
	}
	return httputil.OK(c, "appointment retrieved successfully", appointment)
}

// CreateAppointment godoc
// @Summary Book a service appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAppointmentRequest true "Appointment data"
// @Success 201 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Failure 409 {object} httputil.Envelope
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return httputil.Fail(c, err)
	}

	var req CreateAppointmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return httputil.Fail(c, err)
	}

	appointment, err := h.appointmentService.CreateAppointment(c.Request().Context(), claims.UID, service.AppointmentInput{
		VehicleID: req.VehicleID,
		Date:      req.Date,
	})
	if err != nil {
		return httputil.Fail(c, err)
	}
	return httputil.Created(c, "appointment created successfully", appointment)
}

// UpdateAppointment godoc
// @Summary Update an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body UpdateAppointmentRequest true "Appointment fields"
// @Success 200 {object} httputil.Envelope
// @Failure 404 {object} httputil.Envelope
// @Failure 409 {object} httputil.Envelope
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) UpdateAppointment(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return httputil.Fail(c, err)
	}

	var req UpdateAppointmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return httputil.Fail(c, err)
	}

	appointment, err := h.appointmentService.UpdateAppointment(c.Request().Context(), c.Param("id"), claims.UID, service.AppointmentUpdate{
		VehicleID: req.VehicleID,
		Date:      req.Date,
	})
	if err != nil {
		return httputil.Fail(c, err)
	}
	return httputil.OK(c, "appointment updated successfully", appointment)
}

// DeleteAppointment godoc
// @Summary Cancel an appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} httputil.Envelope
// @Failure 404 {object} httputil.Envelope
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) DeleteAppointment(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return httputil.Fail(c, err)
	}

	if err := h.appointmentService.DeleteAppointment(c.Request().Context(), c.Param("id"), claims.UID); err != nil {
		return httputil.Fail(c, err)
	}
	return httputil.OK(c, "appointment deleted successfully", nil)
}
