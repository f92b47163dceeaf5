package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"wittycar/internal/errors"
	"wittycar/internal/model"
	"wittycar/internal/repository"
)

// ServiceRecordInput carries a service-record creation payload. Date is an
// ISO-8601 timestamp and may lie in the past; it is the semantic date the
// service was performed.
type ServiceRecordInput struct {
	Title       string
	Description string
	Date        string
	Mileage     int
}

// ServiceRecordService handles service-history operations. A record's
// validity is derivative of vehicle ownership: every operation resolves the
// parent vehicle for the acting user first.
type ServiceRecordService interface {
	ListRecords(ctx context.Context, vehicleID, userID string) ([]model.ServiceRecord, error)
	CreateRecord(ctx context.Context, vehicleID, userID string, in ServiceRecordInput) (*model.ServiceRecord, error)
}

type serviceRecordService struct {
	repo        repository.ServiceRecordRepository
	vehicleRepo repository.VehicleRepository
}

// NewServiceRecordService creates a new service-record service.
func NewServiceRecordService(repo repository.ServiceRecordRepository, vehicleRepo repository.VehicleRepository) ServiceRecordService {
	return &serviceRecordService{repo: repo, vehicleRepo: vehicleRepo}
}

func (s *serviceRecordService) ListRecords(ctx context.Context, vehicleID, userID string) ([]model.ServiceRecord, error) {
	if err := s.requireVehicle(ctx, vehicleID, userID); err != nil {
		return nil, err
	}
	return s.repo.ListByVehicle(ctx, vehicleID, userID)
}

func (s *serviceRecordService) CreateRecord(ctx context.Context, vehicleID, userID string, in ServiceRecordInput) (*model.ServiceRecord, error) {
	if err := s.requireVehicle(ctx, vehicleID, userID); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)

	var fields []errors.FieldError
	if title == "" {
		fields = append(fields, errors.FieldError{Field: "title", Message: "title is required"})
	}
	if description == "" {
		fields = append(fields, errors.FieldError{Field: "description", Message: "description is required"})
	}
	if len(fields) > 0 {
		return nil, errors.Validation("title and description are required", fields...)
	}
	if in.Date == "" {
		return nil, errors.Validation("date is required",
			errors.FieldError{Field: "date", Message: "date is required"})
	}
	if _, err := time.Parse(time.RFC3339, in.Date); err != nil {
		return nil, errors.Validation(`invalid date format, use ISO format (e.g. "2025-07-05T14:30:00Z")`)
	}
	if in.Mileage < 0 {
		return nil, errors.Validation("mileage cannot be negative")
	}

	record := &model.ServiceRecord{
		VehicleID:   vehicleID,
		UserID:      userID,
		Title:       title,
		Description: description,
		Date:        in.Date,
		Mileage:     in.Mileage,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("create service record: %w", err)
	}
	return record, nil
}

func (s *serviceRecordService) requireVehicle(ctx context.Context, vehicleID, userID string) error {
	if _, err := s.vehicleRepo.FindOwned(ctx, vehicleID, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NotFound("vehicle not found")
		}
		return err
	}
	return nil
}
