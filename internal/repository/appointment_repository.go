package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wittycar/internal/model"
)

// ErrSlotTaken is returned when another appointment already occupies the
// requested date. The service layer translates it into a conflict error.
var ErrSlotTaken = errors.New("appointment slot already taken")

// AppointmentRepository defines appointment persistence operations. Writes
// that touch the date field go through the transactional guard so two
// concurrent requests for the same slot cannot both succeed.
type AppointmentRepository interface {
	FindOwned(ctx context.Context, id, userID string) (*model.Appointment, error)
	// ListByUser returns the user's appointments, earliest date first.
	ListByUser(ctx context.Context, userID string) ([]model.Appointment, error)
	// CreateExclusive inserts the appointment only if no other appointment
	// holds the same date. The check and the write run in one transaction.
	CreateExclusive(ctx context.Context, appointment *model.Appointment) error
	// SaveExclusive persists changes to an existing appointment. When
	// checkSlot is set the same in-transaction date check as CreateExclusive
	// is applied, excluding the appointment itself.
	SaveExclusive(ctx context.Context, appointment *model.Appointment, checkSlot bool) error
	Delete(ctx context.Context, id string) error
}

type appointmentRepository struct {
	db *gorm.DB
}

// NewAppointmentRepository builds a GORM-backed repository.
func NewAppointmentRepository(db *gorm.DB) AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) FindOwned(ctx context.Context, id, userID string) (*model.Appointment, error) {
	return findOwned[model.Appointment](ctx, r.db, id, userID)
}

func (r *appointmentRepository) ListByUser(ctx context.Context, userID string) ([]model.Appointment, error) {
	return listOwned[model.Appointment](ctx, r.db, userID, "date ASC")
}

func (r *appointmentRepository) CreateExclusive(ctx context.Context, appointment *model.Appointment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkSlotFree(tx, appointment.Date, ""); err != nil {
			return err
		}
		if err := tx.Create(appointment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSlotTaken
			}
			return err
		}
		return nil
	})
}

func (r *appointmentRepository) SaveExclusive(ctx context.Context, appointment *model.Appointment, checkSlot bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if checkSlot {
			if err := checkSlotFree(tx, appointment.Date, appointment.ID); err != nil {
				return err
			}
		}
		if err := tx.Save(appointment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSlotTaken
			}
			return err
		}
		return nil
	})
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	return deleteByID[model.Appointment](ctx, r.db, id)
}

// checkSlotFree locks any row holding the date and reports ErrSlotTaken if
// one exists. The row lock plus the unique index on date make the
// read-then-write indivisible with respect to concurrent bookings.
func checkSlotFree(tx *gorm.DB, date, excludeID string) error {
	query := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("date = ?", date)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	var existing model.Appointment
	err := query.First(&existing).Error
	if err == nil {
		return ErrSlotTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}
