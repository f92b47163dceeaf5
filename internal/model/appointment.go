package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Appointment reserves a service time slot. Date is an ISO-8601 string and
// is globally unique across all appointments: the workshop is modeled as a
// single shared scheduling resource. The unique index backs the
// transactional double-booking guard in the repository.
type Appointment struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	UserID    string    `json:"userId" gorm:"size:36;not null;index"`
	VehicleID string    `json:"vehicleId" gorm:"size:36;not null;index"`
	Date      string    `json:"date" gorm:"size:64;not null;uniqueIndex"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// OwnerID returns the owning user id.
func (a Appointment) OwnerID() string {
	return a.UserID
}

// BeforeCreate assigns a UUID before creating the record.
func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
