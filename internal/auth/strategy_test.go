package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"regadmin/internal/model"
)

func userWithRoles(names ...string) *model.User {
	u := &model.User{Username: "tester"}
	for _, n := range names {
		u.Roles = append(u.Roles, model.Role{Name: n})
	}
	return u
}

func TestRoleNameStrategy(t *testing.T) {
	strategy := RoleNameStrategy{
		Allowed:   []string{"Admin", "Staff"},
		SuperRole: "SystemAdmin",
	}

	tests := []struct {
		name string
		user *model.User
		want bool
	}{
		{"no roles always denied", userWithRoles(), false},
		{"matching role allowed", userWithRoles("Staff"), true},
		{"allow-list match is case-insensitive", userWithRoles("staff"), true},
		{"super-role bypasses allow-list", userWithRoles("SystemAdmin"), true},
		{"super-role match is case-sensitive", userWithRoles("systemadmin"), false},
		{"unrelated role denied", userWithRoles("Viewer"), false},
		{"any of several roles suffices", userWithRoles("Viewer", "Admin"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, strategy.Allows(tt.user))
		})
	}
}

func TestRoleNameStrategy_EmptyAllowListIsSuperRoleOnly(t *testing.T) {
	strategy := RoleNameStrategy{SuperRole: "SystemAdmin"}

	assert.True(t, strategy.Allows(userWithRoles("SystemAdmin")))
	assert.False(t, strategy.Allows(userWithRoles("Admin")))
}

func TestActionStrategy(t *testing.T) {
	user := &model.User{
		Roles: []model.Role{
			{Name: "Staff", Actions: []model.Action{{Name: "manage_content"}}},
		},
	}

	assert.True(t, ActionStrategy{Action: "manage_content"}.Allows(user))
	assert.False(t, ActionStrategy{Action: "manage_users"}.Allows(user))
}
