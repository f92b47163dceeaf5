package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"wittycar/internal/errors"
)

const bcryptCost = 10

type gormProvider struct {
	db *gorm.DB
}

// NewGormProvider builds a database-backed identity provider.
func NewGormProvider(db *gorm.DB) Provider {
	return &gormProvider{db: db}
}

func (p *gormProvider) CreateAccount(ctx context.Context, email, password, displayName, phoneNumber string) (*Account, error) {
	var existing Account
	err := p.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, errors.Conflict("email already exists")
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check account existence: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &Account{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
		PhoneNumber:  phoneNumber,
	}
	if err := p.db.WithContext(ctx).Create(account).Error; err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, errors.Conflict("email already exists")
		}
		return nil, fmt.Errorf("create account: %w", err)
	}
	return account, nil
}

func (p *gormProvider) FindByEmail(ctx context.Context, email string) (*Account, error) {
	var account Account
	if err := p.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("account not found")
		}
		return nil, err
	}
	return &account, nil
}

func (p *gormProvider) FindByUID(ctx context.Context, uid string) (*Account, error) {
	var account Account
	if err := p.db.WithContext(ctx).Where("uid = ?", uid).First(&account).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("account not found")
		}
		return nil, err
	}
	return &account, nil
}

func (p *gormProvider) VerifyPassword(ctx context.Context, uid, password string) error {
	account, err := p.FindByUID(ctx, uid)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return errors.Unauthenticated("invalid email or password")
	}
	return nil
}

func (p *gormProvider) SetDisabled(ctx context.Context, uid string, disabled bool) error {
	return p.updateAccount(ctx, uid, map[string]interface{}{"disabled": disabled})
}

func (p *gormProvider) SetEmailVerified(ctx context.Context, uid string, verified bool) error {
	return p.updateAccount(ctx, uid, map[string]interface{}{"email_verified": verified})
}

func (p *gormProvider) DeleteAccount(ctx context.Context, uid string) error {
	return p.db.WithContext(ctx).Where("uid = ?", uid).Delete(&Account{}).Error
}

func (p *gormProvider) updateAccount(ctx context.Context, uid string, fields map[string]interface{}) error {
	res := p.db.WithContext(ctx).Model(&Account{}).Where("uid = ?", uid).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.NotFound("account not found")
	}
	return nil
}
