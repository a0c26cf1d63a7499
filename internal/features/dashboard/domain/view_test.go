package domain

import (
	"testing"

	sessiondomain "cargo-portal/internal/features/session/domain"

	"github.com/stretchr/testify/assert"
)

func TestRoute_KnownRoles(t *testing.T) {
	seen := map[ViewName]bool{}
	for _, role := range sessiondomain.Roles {
		v := Route(role)
		assert.NotEmpty(t, v.Name, role)
		assert.False(t, v.Fallback(), role)
		assert.NotEmpty(t, v.Widgets, role)
		assert.False(t, seen[v.Name], "view %s routed twice", v.Name)
		seen[v.Name] = true
	}
}

func TestRoute_UnknownRole(t *testing.T) {
	for _, role := range []sessiondomain.Role{"UNKNOWN_ROLE", "", "customer"} {
		v := Route(role)
		assert.True(t, v.Fallback())
		assert.Equal(t, ViewNoDashboard, v.Name)
		assert.Contains(t, v.Actions, ActionSignOut)
		assert.Equal(t, "No dashboard is available for your role", v.Title.In("en"))
	}
}

func TestRoute_WidgetQueries(t *testing.T) {
	v := Route(sessiondomain.RoleStaffChina)
	assert.Equal(t, "RECEIVED_IN_CHINA", v.Widgets[0].Query.Get("status"))

	v = Route(sessiondomain.RoleSuperAdmin)
	assert.False(t, v.Widgets[0].Query.Has("status"))
}
