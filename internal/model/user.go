package model

import "time"

// User is the profile document paired with an identity account. UID is the
// provider-assigned subject and never changes after registration.
type User struct {
	UID           string    `json:"uid" gorm:"primaryKey;size:36"`
	Email         string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	DisplayName   *string   `json:"displayName,omitempty" gorm:"size:255"`
	PhoneNumber   *string   `json:"phoneNumber" gorm:"size:32"` // serialized as explicit null when absent
	EmailVerified bool      `json:"emailVerified"`
	IsActive      bool      `json:"isActive" gorm:"default:true"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
