package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"eventdesk/internal/status"
	"eventdesk/models"
	"eventdesk/security"
	"eventdesk/services"
)

type AuthHandler struct {
	auth    *services.AuthService
	limiter *security.RateLimiter
}

func NewAuthHandler(auth *services.AuthService, limiter *security.RateLimiter) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(e *core.RequestEvent) error {
	if h.limiter != nil {
		allowed, err := h.limiter.AllowLogin(e.Request.Context(), e.RealIP())
		if err != nil {
			slog.Warn("login rate limit check failed", "error", err)
		}
		if !allowed {
			return e.JSON(http.StatusTooManyRequests, map[string]string{
				"error": "Too many login attempts. Please try again later.",
			})
		}
	}

	req := loginRequest{}
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request body", err)
	}
	if req.Email == "" || req.Password == "" {
		return apis.NewBadRequestError("Email and password are required", nil)
	}
	resp, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, status.ErrInvalidCredentials) {
			return apis.NewUnauthorizedError("Invalid email or password", nil)
		}
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Register(e *core.RequestEvent) error {
	req := models.RegisterInput{}
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request body", err)
	}
	if req.Email == "" || req.Password == "" {
		return apis.NewBadRequestError("Email and password are required", nil)
	}
	resp, err := h.auth.Register(req)
	if err != nil {
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Logout(e *core.RequestEvent) error {
	if err := h.auth.Logout(e.Auth); err != nil {
		if errors.Is(err, status.ErrNotAuthenticated) {
			return apis.NewUnauthorizedError("Not authenticated", nil)
		}
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, map[string]bool{"ok": true})
}

func (h *AuthHandler) Me(e *core.RequestEvent) error {
	profile, err := h.auth.Me(e.Auth)
	if err != nil {
		if errors.Is(err, status.ErrNotAuthenticated) {
			return apis.NewUnauthorizedError("Not authenticated", nil)
		}
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, profile)
}

func (h *AuthHandler) Session(e *core.RequestEvent) error {
	return e.JSON(http.StatusOK, map[string]any{
		"session": h.auth.Session(e.Auth),
	})
}

func (h *AuthHandler) UploadAvatar(e *core.RequestEvent) error {
	files, err := e.FindUploadedFiles("avatar")
	if err != nil || len(files) == 0 {
		return apis.NewBadRequestError("An avatar file is required", err)
	}
	profile, err := h.auth.UploadAvatar(e.Auth, files[0])
	if err != nil {
		if errors.Is(err, status.ErrNotAuthenticated) {
			return apis.NewUnauthorizedError("Not authenticated", nil)
		}
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, profile)
}

func (h *AuthHandler) ChangePassword(e *core.RequestEvent) error {
	req := struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}{}
	if err := e.BindBody(&req); err != nil {
		return apis.NewBadRequestError("Invalid request body", err)
	}
	if req.NewPassword == "" {
		return apis.NewBadRequestError("A new password is required", nil)
	}
	if err := h.auth.ChangePassword(e.Auth, req.CurrentPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, status.ErrNotAuthenticated):
			return apis.NewUnauthorizedError("Not authenticated", nil)
		case errors.Is(err, status.ErrWrongPassword):
			return apis.NewBadRequestError("Current password is incorrect", nil)
		}
		return apis.NewBadRequestError(err.Error(), nil)
	}
	return e.JSON(http.StatusOK, map[string]bool{"ok": true})
}
