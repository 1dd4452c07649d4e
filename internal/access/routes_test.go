package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chastucker/wrestling-club/internal/access"
)

func TestCanAccessRouteFailsClosed(t *testing.T) {
	admin := access.NewRoleSet(access.RoleAdmin)
	assert.False(t, access.CanAccessRoute("/nonexistent-path", admin))
	assert.False(t, access.CanAccessRoute("", admin))
	assert.False(t, access.CanAccessRoute("/dashboard", access.RoleSet{}))
}

func TestRouteTable(t *testing.T) {
	cases := []struct {
		path string
		role access.Role
		want bool
	}{
		{"/dashboard", access.RoleWrestler, true},
		{"/schedule", access.RoleParent, true},
		{"/check-in", access.RoleCoach, true},
		{"/payments", access.RoleAdmin, true},
		{"/payments", access.RoleParent, true},
		{"/payments", access.RoleWrestler, true},
		// Coaches never see payment pages.
		{"/payments", access.RoleCoach, false},
		{"/events", access.RoleCoach, true},
		{"/events", access.RoleParent, false},
		{"/admin", access.RoleAdmin, true},
		{"/admin", access.RoleCoach, false},
		{"/admin/members", access.RoleAdmin, true},
		{"/admin/members", access.RoleWrestler, false},
		// pending_coach appears nowhere in the table.
		{"/dashboard", access.RolePendingCoach, false},
	}
	for _, tc := range cases {
		got := access.CanAccessRoute(tc.path, access.NewRoleSet(tc.role))
		assert.Equal(t, tc.want, got, "%s as %s", tc.path, tc.role)
	}
}

func TestRouteTableMultiRole(t *testing.T) {
	coachParent := access.NewRoleSet(access.RoleCoach, access.RoleParent)
	// The parent role grants payments even though coach alone would not.
	assert.True(t, access.CanAccessRoute("/payments", coachParent))
	assert.True(t, access.CanAccessRoute("/events", coachParent))
}

func TestStateFor(t *testing.T) {
	assert.Equal(t, access.Unauthenticated, access.StateFor(false, 0))
	assert.Equal(t, access.Unauthenticated, access.StateFor(false, 3))
	assert.Equal(t, access.AuthenticatedNoProfile, access.StateFor(true, 0))
	assert.Equal(t, access.AuthenticatedWithProfile, access.StateFor(true, 1))
	assert.Equal(t, access.AuthenticatedWithProfile, access.StateFor(true, 2))
}

func TestRedirectFor(t *testing.T) {
	cases := []struct {
		name       string
		state      access.AuthState
		path       string
		wantTarget string
		wantOK     bool
	}{
		{"signed out goes to sign-in", access.Unauthenticated, "/dashboard", access.PathSignIn, true},
		{"signed out at sign-in stays", access.Unauthenticated, access.PathSignIn, "", false},
		{"no profile forced to onboarding", access.AuthenticatedNoProfile, "/dashboard", access.PathOnboarding, true},
		{"no profile forced from admin too", access.AuthenticatedNoProfile, "/admin", access.PathOnboarding, true},
		{"no profile at onboarding stays", access.AuthenticatedNoProfile, access.PathOnboarding, "", false},
		{"with profile never redirected", access.AuthenticatedWithProfile, "/dashboard", "", false},
		{"with profile free to onboard again", access.AuthenticatedWithProfile, access.PathOnboarding, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			target, ok := access.RedirectFor(tc.state, tc.path)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantTarget, target)
		})
	}
}
