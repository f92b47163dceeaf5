package handler

import (
	"github.com/labstack/echo/v4"

	"wittycar/internal/httputil"
	"wittycar/internal/service"
)

// ServiceRecordHandler handles service-history endpoints nested under a
// vehicle.
type ServiceRecordHandler struct {
	recordService service.ServiceRecordService
}

// NewServiceRecordHandler creates a new service-record handler.
func NewServiceRecordHandler(recordService service.ServiceRecordService) *ServiceRecordHandler {
	return &ServiceRecordHandler{recordService: recordService}
}

// CreateServiceRecordRequest represents a service-record creation request.
type CreateServiceRecordRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Mileage     int    `json:"mileage"`
}

// ListServiceRecords godoc
// @Summary List service records of a vehicle
// @Tags service-records
// @Produce json
// @Security BearerAuth
// @Param vehicleId path string true "Vehicle ID"
// @Success 200 {object} httputil.Envelope
// @Failure 404 {object} httputil.Envelope
// @Router /vehicles/{vehicleId}/service-records [get]
func (h *ServiceRecordHandler) ListServiceRecords(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return httputil.Fail(c, err)
	}

	records, err := h.recordService.ListRecords(c.Request().Context(), c.Param("vehicleId"), claims.UID)
	if err != nil {
		return httputil.Fail(c, err)
	}
	return httputil.OK(c, "service records retrieved successfully", records)
}

// CreateServiceRecord godoc
// @Summary Add a service record to a vehicle
// @Tags service-records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param vehicleId path string true "Vehicle ID"
// @Param request body CreateServiceRecordRequest true "Service record data"
// @Success 201 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Failure 404 {object} httputil.Envelope
// @Router /vehicles/{vehicleId}/service-records [post]
func (h *ServiceRecordHandler) CreateServiceRecord(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return httputil.Fail(c, err)
	}

	var req CreateServiceRecordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return httputil.Fail(c, err)
	}

	record, err := h.recordService.CreateRecord(c.Request().Context(), c.Param("vehicleId"), claims.UID, service.ServiceRecordInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Mileage:     req.Mileage,
	})
	if err != nil {
		return httputil.Fail(c, err)
	}
	return httputil.Created(c, "service record created successfully", record)
}
