// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"saathi/internal/delivery/http/response"
	"saathi/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for auth and profile handlers.
type SessionHandler struct {
	uc usecase.SessionUsecase
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// Login handles the login request for both farmer and admin roles.
func (h *SessionHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// Signup handles new farmer registration. The client redirects to login
// afterwards; no session is created here.
func (h *SessionHandler) Signup(c echo.Context) error {
	var input *usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Signup(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Account created successfully")
}

// Logout clears the current session.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Logout successful")
}

// Current returns the restored principal, or null data when logged out.
func (h *SessionHandler) Current(c echo.Context) error {
	principal, err := h.uc.Current(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, principal, "")
}

// GetProfile returns the logged-in farmer's profile.
func (h *SessionHandler) GetProfile(c echo.Context) error {
	principal, err := h.uc.Current(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}
	if principal == nil {
		return response.Unauthorized(c, "SESSION_MISSING", "No active session")
	}

	return response.Success(c, http.StatusOK, principal, "")
}

// UpdateProfile shallow-merges a partial profile into the current farmer.
func (h *SessionHandler) UpdateProfile(c echo.Context) error {
	var update *usecase.ProfileUpdate
	if err := c.Bind(&update); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}

	principal, err := h.uc.UpdateProfile(c.Request().Context(), update)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, principal, "Profile updated successfully")
}
