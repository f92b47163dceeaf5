package identity

import (
	"context"
	"time"
)

// Account is the identity provider's own record for a registered user. It is
// internal to the gateway and never exposed through the API; the application
// profile lives in model.User.
type Account struct {
	UID           string    `gorm:"primaryKey;size:36"`
	Email         string    `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash  string    `gorm:"size:255;not null"`
	DisplayName   string    `gorm:"size:255"`
	PhoneNumber   string    `gorm:"size:32"`
	EmailVerified bool      `gorm:"default:false"`
	Disabled      bool      `gorm:"default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName keeps provider accounts clearly separated from profile documents.
func (Account) TableName() string {
	return "identity_accounts"
}

// Provider is the minimal surface the application needs from the identity
// provider: account CRUD and password verification. Credential issuing and
// verification is handled separately by the JWT service.
type Provider interface {
	// CreateAccount registers a new account. Fails with a conflict error if
	// the email is already registered.
	CreateAccount(ctx context.Context, email, password, displayName, phoneNumber string) (*Account, error)
	// FindByEmail looks an account up by email.
	FindByEmail(ctx context.Context, email string) (*Account, error)
	// FindByUID looks an account up by its subject id.
	FindByUID(ctx context.Context, uid string) (*Account, error)
	// VerifyPassword checks a password against the stored hash.
	VerifyPassword(ctx context.Context, uid, password string) error
	// SetDisabled enables or disables sign-in for an account.
	SetDisabled(ctx context.Context, uid string, disabled bool) error
	// SetEmailVerified marks the account email as verified or not.
	SetEmailVerified(ctx context.Context, uid string, verified bool) error
	// DeleteAccount removes an account. Used only to compensate a failed
	// registration; user-facing flows deactivate instead.
	DeleteAccount(ctx context.Context, uid string) error
}
