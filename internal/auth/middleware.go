package auth

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"regadmin/internal/errors"
	"regadmin/internal/model"
)

// Context keys used by the gate.
const (
	ContextKeyClaims = "token_claims"
	ContextKeyUser   = "auth_user"
)

// UserLoader fetches a user with roles (and each role's actions) populated.
type UserLoader interface {
	FindByIDWithRoles(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// Gate is the two-stage authorization gate: LoadUser runs after token
// verification and attaches the sanitized user; Require enforces a Strategy.
type Gate struct {
	users     UserLoader
	superRole string
}

// NewGate creates the authorization gate.
func NewGate(users UserLoader, superRole string) *Gate {
	return &Gate{users: users, superRole: superRole}
}

type envelope struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

func reject(c echo.Context, status int, message string) error {
	return c.JSON(status, envelope{Code: errors.StatusText(status), Message: message, Data: []interface{}{}})
}

// ErrorHandler maps token extraction and verification failures to the
// envelope the clients expect. Wired as the echo-jwt error handler, which
// means it fires before any DB access. echo-jwt wraps verification errors
// in its own TokenError, so the sentinels must be matched by unwrapping.
func (g *Gate) ErrorHandler(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, errors.ErrTokenExpired):
		return reject(c, http.StatusUnauthorized, "Access token expired, request a new one with refresh token")
	case stderrors.Is(err, errors.ErrTokenInvalid):
		return reject(c, http.StatusUnauthorized, "Access token invalid")
	default:
		return reject(c, http.StatusUnauthorized, "Access denied, no token provided")
	}
}

// LoadUser resolves the verified claims to a user with roles and role
// actions populated, rejects unknown or inactive accounts, and stores the
// sanitized user in the request context.
func (g *Gate) LoadUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(ContextKeyClaims).(*Claims)
		if !ok {
			return reject(c, http.StatusUnauthorized, "Access denied, no token provided")
		}

		id, err := uuid.Parse(claims.UserID)
		if err != nil {
			return reject(c, http.StatusUnauthorized, "Access token invalid")
		}

		user, err := g.users.FindByIDWithRoles(c.Request().Context(), id)
		if err != nil {
			return reject(c, http.StatusUnauthorized, "User not found.")
		}
		if !user.IsActive {
			return reject(c, http.StatusForbidden, "User is inactive.")
		}

		user.Password = ""
		c.Set(ContextKeyUser, user)
		return next(c)
	}
}

// Require enforces a Strategy for the authenticated user.
func (g *Gate) Require(strategy Strategy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil || len(user.Roles) == 0 {
				return reject(c, http.StatusForbidden, "Forbidden")
			}
			if !strategy.Allows(user) {
				return reject(c, http.StatusForbidden, "Access denied, requires "+strategy.Describe())
			}
			return next(c)
		}
	}
}

// RequireRoles is the allow-list gate used by nearly every route.
func (g *Gate) RequireRoles(allowed ...string) echo.MiddlewareFunc {
	return g.Require(RoleNameStrategy{Allowed: allowed, SuperRole: g.superRole})
}

// CurrentUser returns the authenticated user attached by LoadUser, or nil.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(ContextKeyUser).(*model.User)
	return user
}
