package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceRecord logs maintenance performed on a vehicle. UserID denormalizes
// the vehicle owner; validity is still derived from vehicle ownership on
// every operation, not from this field alone. Date is the semantic date of
// service as an ISO-8601 string and may lie in the past.
type ServiceRecord struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	VehicleID   string    `json:"vehicleId" gorm:"size:36;not null;index"`
	UserID      string    `json:"userId" gorm:"size:36;not null;index"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Date        string    `json:"date" gorm:"size:64;not null"`
	Mileage     int       `json:"mileage" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// OwnerID returns the owning user id.
func (r ServiceRecord) OwnerID() string {
	return r.UserID
}

// BeforeCreate assigns a UUID before creating the record.
func (r *ServiceRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
