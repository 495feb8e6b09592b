package handler

import (
	stderrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"regadmin/internal/auth"
	"regadmin/internal/errors"
	"regadmin/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the account-creation payload.
type RegisterRequest struct {
	Username string   `json:"username" validate:"required,min=3,max=64"`
	Password string   `json:"password" validate:"required,min=8"`
	FullName string   `json:"fullName" validate:"required"`
	RoleIDs  []string `json:"roleIds" validate:"dive,uuid4"`
	BranchID string   `json:"branchId" validate:"omitempty,uuid4"`
}

// RefreshRequest carries a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// ChangePasswordRequest is the self-service password change payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

// ResetPasswordRequest is the administrative password reset payload.
type ResetPasswordRequest struct {
	UserID      string `json:"userId" validate:"required,uuid4"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type authResponse struct {
	User   interface{}       `json:"user"`
	Tokens service.TokenPair `json:"tokens"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	user, tokens, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		// A disabled account answers 403 but does not reveal that the
		// credentials were otherwise correct.
		if stderrors.Is(err, errors.ErrUserInactive) {
			return c.JSON(http.StatusForbidden, Envelope{
				Code:    errors.StatusText(http.StatusForbidden),
				Message: http.StatusText(http.StatusForbidden),
				Error:   errors.ErrInvalidCredentials.Error(),
			})
		}
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "login successful", authResponse{User: user, Tokens: tokens})
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	in := service.RegisterInput{
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
	}
	for _, raw := range req.RoleIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return badRequest(c, "invalid role id")
		}
		in.RoleIDs = append(in.RoleIDs, id)
	}
	if req.BranchID != "" {
		id, err := uuid.Parse(req.BranchID)
		if err != nil {
			return badRequest(c, "invalid branch id")
		}
		in.BranchID = &id
	}

	user, tokens, err := h.authService.Register(c.Request().Context(), in)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusCreated, "user registered", authResponse{User: user, Tokens: tokens})
}

func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	tokens, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "token refreshed", tokens)
}

func (h *AuthHandler) Me(c echo.Context) error {
	user := auth.CurrentUser(c)
	profile, err := h.authService.Me(c.Request().Context(), user.ID)
	if err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "profile", profile)
}

func (h *AuthHandler) ChangePassword(c echo.Context) error {
	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	user := auth.CurrentUser(c)
	if err := h.authService.ChangePassword(c.Request().Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "password changed", nil)
}

func (h *AuthHandler) ResetPasswordByAdmin(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, err.Error())
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return badRequest(c, "invalid user id")
	}
	if err := h.authService.ResetPasswordByAdmin(c.Request().Context(), userID, req.NewPassword); err != nil {
		return respondErr(c, err)
	}
	return respond(c, http.StatusOK, "password reset", nil)
}
