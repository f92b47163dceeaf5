package handler

import (
	"github.com/labstack/echo/v4"

	"wittycar/internal/httputil"
	"wittycar/internal/service"
)

// AuthHandler handles authentication and profile endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	DisplayName string `json:"displayName"`
	PhoneNumber string `json:"phoneNumber"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest represents a partial profile update. UID, email,
// createdAt and emailVerified are not bound and therefore silently stripped.
type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName"`
	PhoneNumber *string `json:"phoneNumber"`
	IsActive    *bool   `json:"isActive"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Failure 409 {object} httputil.Envelope
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return httputil.Fail(c, err)
	}

	result, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return httputil.Fail(c, err)
	}
	return httputil.Created(c, "user registered successfully", result)
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} httputil.Envelope
// @Failure 401 {object} httputil.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return httputil.Fail(c, err)
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return httputil.Fail(c, err)
	}
	return httputil.OK(c, "login successful", result)
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httputil.Envelope
// @Failure 404 {object} httputil.Envelope
// @Router /auth/profile [get]
func (h *AuthHandler) GetProfile(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return httputil.Fail(c, err)
	}

	user, err := h.authService.GetProfile(c.Request().Context(), claims.UID)
	if err != nil {
		return httputil.Fail(c, err)
	}
	return httputil.OK(c, "profile retrieved successfully", user)
}

// UpdateProfile godoc
// @Summary Update the authenticated user's profile
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} httputil.Envelope
// @Failure 400 {object} httputil.Envelope
// @Router /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return httputil.Fail(c, err)
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return httputil.Fail(c, err)
	}

	user, err := h.authService.UpdateProfile(c.Request().Context(), claims.UID, service.ProfileUpdate{
		DisplayName: req.DisplayName,
		PhoneNumber: req.PhoneNumber,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return httputil.Fail(c, err)
	}
	return httputil.OK(c, "profile updated successfully", user)
}

// VerifyEmail godoc
// @Summary Mark the authenticated user's email as verified
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httputil.Envelope
// @Router /auth/verify-email [post]
func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return httputil.Fail(c, err)
	}

	if err := h.authService.VerifyEmail(c.Request().Context(), claims.UID); err != nil {
		return httputil.Fail(c, err)
	}
	return httputil.OK(c, "email verified successfully", nil)
}

// Deactivate godoc
// @Summary Deactivate the authenticated user's account
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} httputil.Envelope
// @Router /auth/deactivate [post]
func (h *AuthHandler) Deactivate(c echo.Context) error {
	claims, err := currentUser(c)
	if err != nil {
		return httputil.Fail(c, err)
	}

	if err := h.authService.Deactivate(c.Request().Context(), claims.UID); err != nil {
		return httputil.Fail(c, err)
	}
	return httputil.OK(c, "account deactivated successfully", nil)
}
