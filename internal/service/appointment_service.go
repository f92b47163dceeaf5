package service

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"wittycar/internal/errors"
	"wittycar/internal/model"
	"wittycar/internal/repository"
)

// AppointmentInput carries an appointment creation payload.
type AppointmentInput struct {
	VehicleID string
	Date      string
}

// AppointmentUpdate carries a partial appointment update. Nil fields are
// left untouched.
type AppointmentUpdate struct {
	VehicleID *string
	Date      *string
}

// AppointmentService handles appointment scheduling. Date slots are globally
// exclusive: the workshop is a single shared resource, so two appointments
// can never hold the same date regardless of user or vehicle.
type AppointmentService interface {
	ListAppointments(ctx context.Context, userID string) ([]model.Appointment, error)
	GetAppointment(ctx context.Context, id, userID string) (*model.Appointment, error)
	CreateAppointment(ctx context.Context, userID string, in AppointmentInput) (*model.Appointment, error)
	UpdateAppointment(ctx context.Context, id, userID string, in AppointmentUpdate) (*model.Appointment, error)
	DeleteAppointment(ctx context.Context, id, userID string) error
}

type appointmentService struct {
	repo        repository.AppointmentRepository
	vehicleRepo repository.VehicleRepository
}

// NewAppointmentService creates a new appointment service.
func NewAppointmentService(repo repository.AppointmentRepository, vehicleRepo repository.VehicleRepository) AppointmentService {
	return &appointmentService{repo: repo, vehicleRepo: vehicleRepo}
}

func (s *appointmentService) ListAppointments(ctx context.Context, userID string) ([]model.Appointment, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *appointmentService) GetAppointment(ctx context.Context, id, userID string) (*model.Appointment, error) {
	appointment, err := s.repo.FindOwned(ctx, id, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("appointment not found")
		}
		return nil, err
	}
	return appointment, nil
}

func (s *appointmentService) CreateAppointment(ctx context.Context, userID string, in AppointmentInput) (*model.Appointment, error) {
	if in.VehicleID == "" || in.Date == "" {
		return nil, errors.Validation("vehicle id and date are required")
	}
	if err := validateFutureDate(in.Date); err != nil {
		return nil, err
	}
	if err := s.requireVehicle(ctx, in.VehicleID, userID); err != nil {
		return nil, err
	}

	appointment := &model.Appointment{
		UserID:    userID,
		VehicleID: in.VehicleID,
		Date:      in.Date,
	}
	if err := s.repo.CreateExclusive(ctx, appointment); err != nil {
		if err == repository.ErrSlotTaken {
			return nil, errors.Conflict("time slot already taken")
		}
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return appointment, nil
}

func (s *appointmentService) UpdateAppointment(ctx context.Context, id, userID string, in AppointmentUpdate) (*model.Appointment, error) {
	appointment, err := s.GetAppointment(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if in.Date != nil {
		if err := validateFutureDate(*in.Date); err != nil {
			return nil, err
		}
	}
	if in.VehicleID != nil {
		if err := s.requireVehicle(ctx, *in.VehicleID, userID); err != nil {
			return nil, err
		}
		appointment.VehicleID = *in.VehicleID
	}

	dateChanged := in.Date != nil && *in.Date != appointment.Date
	if in.Date != nil {
		appointment.Date = *in.Date
	}

	if err := s.repo.SaveExclusive(ctx, appointment, dateChanged); err != nil {
		if err == repository.ErrSlotTaken {
			return nil, errors.Conflict("time slot already taken")
		}
		return nil, fmt.Errorf("update appointment: %w", err)
	}
	return appointment, nil
}

func (s *appointmentService) DeleteAppointment(ctx context.Context, id, userID string) error {
	if _, err := s.GetAppointment(ctx, id, userID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete appointment: %w", err)
	}
	return nil
}

func (s *appointmentService) requireVehicle(ctx context.Context, vehicleID, userID string) error {
	if _, err := s.vehicleRepo.FindOwned(ctx, vehicleID, userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.NotFound("vehicle not found")
		}
		return err
	}
	return nil
}

// validateFutureDate requires a parseable ISO-8601 timestamp strictly after
// the current time.
func validateFutureDate(date string) error {
	parsed, err := time.Parse(time.RFC3339, date)
	if err != nil {
		return errors.Validation(`invalid date format, use ISO format (e.g. "2025-07-10T15:30:00Z")`)
	}
	if !parsed.After(time.Now()) {
		return errors.Validation("appointment date must be in the future")
	}
	return nil
}
