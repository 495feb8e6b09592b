package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"regadmin/internal/auth"
)

// dateLayouts are the accepted formats for date query parameters.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

func parseDateParam(c echo.Context, name string) (*time.Time, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, true
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, true
		}
	}
	return nil, false
}

func parseBoolParam(c echo.Context, name string) (*bool, bool) {
	switch c.QueryParam(name) {
	case "":
		return nil, true
	case "true", "1":
		v := true
		return &v, true
	case "false", "0":
		v := false
		return &v, true
	default:
		return nil, false
	}
}

func parseUUIDParam(c echo.Context, name string) (*uuid.UUID, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}
	return &id, true
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// currentUserID returns the authenticated user's id. Routes calling this sit
// behind the JWT middleware, so the user is always present.
func currentUserID(c echo.Context) uuid.UUID {
	if u := auth.CurrentUser(c); u != nil {
		return u.ID
	}
	return uuid.Nil
}
