package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"wittycar/internal/auth"
	"wittycar/internal/cache"
	"wittycar/internal/errors"
	"wittycar/internal/identity"
	"wittycar/internal/model"
	"wittycar/internal/repository"
)

const (
	profileCacheTTL = 5 * time.Minute
	// profileSaveRetries bounds the create-and-verify loop in Register.
	profileSaveRetries = 3
)

// AuthResult pairs a profile with a freshly issued bearer token.
type AuthResult struct {
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

// RegisterInput carries the registration payload. DisplayName and
// PhoneNumber are optional.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	PhoneNumber string
}

// ProfileUpdate carries a partial profile update. Nil fields are left
// untouched. UID, email, createdAt and emailVerified are not updatable
// through this path.
type ProfileUpdate struct {
	DisplayName *string
	PhoneNumber *string
	IsActive    *bool
}

// AuthService handles registration, login and profile operations.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetProfile(ctx context.Context, uid string) (*model.User, error)
	UpdateProfile(ctx context.Context, uid string, updates ProfileUpdate) (*model.User, error)
	VerifyEmail(ctx context.Context, uid string) error
	Deactivate(ctx context.Context, uid string) error
}

type authService struct {
	provider   identity.Provider
	userRepo   repository.UserRepository
	jwtService *auth.JWTService
	cache      *cache.Client
	sleep      func(time.Duration)
}

// NewAuthService creates a new authentication service.
func NewAuthService(provider identity.Provider, userRepo repository.UserRepository, jwtService *auth.JWTService, cache *cache.Client) AuthService {
	return &authService{
		provider:   provider,
		userRepo:   userRepo,
		jwtService: jwtService,
		cache:      cache,
		sleep:      time.Sleep,
	}
}

func profileCacheKey(uid string) string {
	return fmt.Sprintf("profile:%s", uid)
}

// Register creates an identity account and its paired profile document.
// If the profile write exhaustively fails the account is deleted again so
// no account is ever left without a profile.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	account, err := s.provider.CreateAccount(
		ctx,
		strings.TrimSpace(in.Email),
		in.Password,
		strings.TrimSpace(in.DisplayName),
		strings.TrimSpace(in.PhoneNumber),
	)
	if err != nil {
		return nil, err
	}

	user, err := s.persistProfile(ctx, buildProfile(account))
	if err != nil {
		if delErr := s.provider.DeleteAccount(ctx, account.UID); delErr != nil {
			log.Printf("compensating account delete failed for %s: %v", account.UID, delErr)
		}
		return nil, errors.Internal(fmt.Sprintf("failed to save user profile after %d attempts", profileSaveRetries))
	}

	token, err := s.jwtService.GenerateToken(account.UID, account.Email)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &AuthResult{User: user, Token: token}, nil
}

// buildProfile maps an identity account to a fresh profile document.
// DisplayName is omitted when blank; phoneNumber is written as an explicit
// null instead, which model.User's serialization preserves.
func buildProfile(account *identity.Account) *model.User {
	user := &model.User{
		UID:           account.UID,
		Email:         account.Email,
		EmailVerified: account.EmailVerified,
		IsActive:      true,
	}
	if name := strings.TrimSpace(account.DisplayName); name != "" {
		user.DisplayName = &name
	}
	if phone := strings.TrimSpace(account.PhoneNumber); phone != "" {
		user.PhoneNumber = &phone
	}
	return user
}

// persistProfile writes the profile create-only and reads it back to confirm
// persistence, retrying with linear backoff. A duplicate-key error on retry
// means an earlier attempt landed, so it proceeds to the read-back.
func (s *authService) persistProfile(ctx context.Context, user *model.User) (*model.User, error) {
	var lastErr error
	for attempt := 1; attempt <= profileSaveRetries; attempt++ {
		err := s.userRepo.CreateNew(ctx, user)
		if err == nil || err == gorm.ErrDuplicatedKey {
			saved, readErr := s.userRepo.FindByUID(ctx, user.UID)
			if readErr == nil {
				return saved, nil
			}
			lastErr = readErr
		} else {
			lastErr = err
		}
		log.Printf("profile save attempt %d for %s failed: %v", attempt, user.UID, lastErr)
		if attempt < profileSaveRetries {
			s.sleep(time.Duration(attempt) * time.Second)
		}
	}
	return nil, lastErr
}

// Login authenticates against the identity provider and returns the profile
// with a fresh token.
func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	account, err := s.provider.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.KindOf(err) == errors.KindNotFound {
			return nil, errors.Unauthenticated("invalid email or password")
		}
		return nil, err
	}

	if err := s.provider.VerifyPassword(ctx, account.UID, password); err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByUID(ctx, account.UID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("user profile not found")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, errors.Unauthenticated("account is deactivated")
	}

	token, err := s.jwtService.GenerateToken(account.UID, account.Email)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	// Best effort: a failed stamp must not fail the login.
	if err := s.userRepo.TouchUpdatedAt(ctx, account.UID); err != nil {
		log.Printf("update login timestamp for %s: %v", account.UID, err)
	}
	_ = s.cache.Delete(ctx, profileCacheKey(account.UID))

	return &AuthResult{User: user, Token: token}, nil
}

// GetProfile retrieves a profile with caching.
func (s *authService) GetProfile(ctx context.Context, uid string) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, profileCacheKey(uid)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByUID(ctx, uid)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("user profile not found")
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, profileCacheKey(uid), payload, profileCacheTTL)
	}
	return user, nil
}

// UpdateProfile merges the provided fields and returns the refreshed profile.
func (s *authService) UpdateProfile(ctx context.Context, uid string, updates ProfileUpdate) (*model.User, error) {
	if _, err := s.userRepo.FindByUID(ctx, uid); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("user profile not found")
		}
		return nil, err
	}

	fields := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if updates.DisplayName != nil {
		fields["display_name"] = strings.TrimSpace(*updates.DisplayName)
	}
	if updates.PhoneNumber != nil {
		fields["phone_number"] = strings.TrimSpace(*updates.PhoneNumber)
	}
	if updates.IsActive != nil {
		fields["is_active"] = *updates.IsActive
	}
	if err := s.userRepo.UpdateFields(ctx, uid, fields); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	_ = s.cache.Delete(ctx, profileCacheKey(uid))
	return s.GetProfile(ctx, uid)
}

// VerifyEmail marks the email verified on both the identity account and the
// profile document.
func (s *authService) VerifyEmail(ctx context.Context, uid string) error {
	if err := s.provider.SetEmailVerified(ctx, uid, true); err != nil {
		return err
	}
	if err := s.userRepo.UpdateFields(ctx, uid, map[string]interface{}{
		"email_verified": true,
		"updated_at":     time.Now(),
	}); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	_ = s.cache.Delete(ctx, profileCacheKey(uid))
	return nil
}

// Deactivate disables sign-in and marks the profile inactive. Accounts are
// never hard-deleted through user-facing flows.
func (s *authService) Deactivate(ctx context.Context, uid string) error {
	if err := s.provider.SetDisabled(ctx, uid, true); err != nil {
		return err
	}
	if err := s.userRepo.UpdateFields(ctx, uid, map[string]interface{}{
		"is_active":  false,
		"updated_at": time.Now(),
	}); err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	_ = s.cache.Delete(ctx, profileCacheKey(uid))
	return nil
}
