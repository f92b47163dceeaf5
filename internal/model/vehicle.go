package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vehicle is a car registered by a user. Plate is stored trimmed and
// uppercased; the composite unique index makes a plate unique per owner.
type Vehicle struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	UserID    string    `json:"userId" gorm:"size:36;not null;uniqueIndex:idx_vehicles_user_plate"`
	Plate     string    `json:"plate" gorm:"size:32;not null;uniqueIndex:idx_vehicles_user_plate"`
	Brand     string    `json:"brand" gorm:"size:255;not null"`
	Model     string    `json:"model" gorm:"size:255;not null"`
	Year      int       `json:"year" gorm:"not null"`
	Mileage   int       `json:"mileage" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnerID returns the owning user id.
func (v Vehicle) OwnerID() string {
	return v.UserID
}

// BeforeCreate assigns a UUID before creating the record.
func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
