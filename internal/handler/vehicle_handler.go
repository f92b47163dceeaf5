package handler

import (
	"github.com/labstack/echo/v4"

	"wittycar/internal/httputil"
	"wittycar/internal/service"
)

// VehicleHandler handles vehicle endpoints.
type VehicleHandler struct {
	vehicleService service.VehicleService
}

// NewVehicleHandler creates a new vehicle handler.
func NewVehicleHandler(vehicleService service.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// CreateVehicleRequest represents a vehicle creation request.
type CreateVehicleRequest struct {
	Plate   string `json:"plate"`
	Brand   string `json:"brand"`
	Model   string `json:"model"`
	Year    int    `json:"year"`
	Mileage int    `json:"mileage"`
}

// UpdateVehicleRequest represents a partial vehicle update.
type UpdateVehicleRequest struct {
	Plate   *string `json:"plate"`
	Brand   *string `json:"brand"`
	Model   *string `json:"model"`
	Year    *int    `json:"year"`
	Mileage *int    `json:"mileage"`
}

// ListVehicles godoc
// @Summary List the authenticated user's vehicles
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httputil.Envelope
// @Router /vehicles [get]
func (h *VehicleHandler) ListVehicles(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return httputil.Fail(c, err)
	}

	vehicles, err := h.vehicleService.ListVehicles(c.Request().Context(), claims.UID)
	if err != nil {
		return httputil.Fail(c, err)
	}
	return httputil.OK(c, "vehicles retrieved successfully", vehicles)
}

// GetVehicle godoc
// @Summary Get one vehicle by id
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 200 {object} httputil.Envelope
// @Failure 404 {object} httputil.Envelope
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) GetVehicle(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return httputil.Fail(c, err)
	}

	vehicle, err := h.vehicleService.GetVehicle(c.Request().Context(), c.Param("id"), claims.UID)
	if err != nil {
		return httputil.Fail(c, err)
	}
	return httputil.OK(c, "vehicle retrieved successfully", vehicle)
}

// CreateVehicle godoc
// @Summary Register a new vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateVehicleRequest true "Vehicle data"
// @Success 201 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Failure 409 {object} httputil.Envelope
// @Router /vehicles [post]
func (h *VehicleHandler) CreateVehicle(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return httputil.Fail(c, err)
	}

	var req CreateVehicleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return httputil.Fail(c, err)
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request().Context(), claims.UID, service.VehicleInput{
		Plate:   req.Plate,
		Brand:   req.Brand,
		Model:   req.Model,
		Year:    req.Year,
		Mileage: req.Mileage,
	})
	if err != nil {
		return httputil.Fail(c, err)
	}
	return httputil.Created(c, "vehicle created successfully", vehicle)
}

// UpdateVehicle godoc
// @Summary Update a vehicle
// @Tags vehicles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Param request body UpdateVehicleRequest true "Vehicle fields"
// @Success 200 {object} httputil.Envelope
// @Failure 404 {object} httputil.Envelope
// @Failure 409 {object} httputil.Envelope
// @Router /vehicles/{id} [put]
func (h *VehicleHandler) UpdateVehicle(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return httputil.Fail(c, err)
	}

	var req UpdateVehicleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return httputil.Fail(c, err)
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request().Context(), c.Param("id"), claims.UID, service.VehicleUpdate{
		Plate:   req.Plate,
		Brand:   req.Brand,
		Model:   req.Model,
		Year:    req.Year,
		Mileage: req.Mileage,
	})
	if err != nil {
		return httputil.Fail(c, err)
	}
	return httputil.OK(c, "vehicle updated successfully", vehicle)
}

// DeleteVehicle godoc
// @Summary Delete a vehicle
// @Tags vehicles
// @Produce json
// @Security BearerAuth
// @Param id path string true "Vehicle ID"
// @Success 200 {object} httputil.Envelope
// @Failure 404 {object} httputil.Envelope
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) DeleteVehicle(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return httputil.Fail(c, err)
	}

	if err := h.vehicleService.DeleteVehicle(c.Request().Context(), c.Param("id"), claims.UID); err != nil {
		return httputil.Fail(c, err)
	}
	return httputil.OK(c, "vehicle deleted successfully", nil)
}
