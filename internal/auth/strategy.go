package auth

import (
	"strings"

	"regadmin/internal/model"
)

// Strategy decides whether an authenticated user may pass a route gate.
// RoleNameStrategy is the current contract; ActionStrategy is the older
// capability model kept available for routes that still want it.
type Strategy interface {
	Allows(u *model.User) bool
	// Describe names the requirement for the 403 message.
	Describe() string
}

// RoleNameStrategy grants access when any assigned role name matches the
// allow-list (case-insensitive), or unconditionally when the user holds the
// super-role (case-sensitive).
type RoleNameStrategy struct {
	Allowed   []string
	SuperRole string
}

func (s RoleNameStrategy) Allows(u *model.User) bool {
	if len(u.Roles) == 0 {
		return false
	}
	if s.SuperRole != "" && u.HasRole(s.SuperRole) {
		return true
	}
	for _, role := range u.Roles {
		for _, allowed := range s.Allowed {
			if strings.EqualFold(role.Name, allowed) {
				return true
			}
		}
	}
	return false
}

func (s RoleNameStrategy) Describe() string {
	return "one of roles: " + strings.Join(s.Allowed, ", ")
}

// ActionStrategy grants access when any assigned role carries the named
// action.
type ActionStrategy struct {
	Action string
}

func (s ActionStrategy) Allows(u *model.User) bool {
	for _, role := range u.Roles {
		for _, action := range role.Actions {
			if action.Name == s.Action {
				return true
			}
		}
	}
	return false
}

func (s ActionStrategy) Describe() string {
	return "action: " + s.Action
}
