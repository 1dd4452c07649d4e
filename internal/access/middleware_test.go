package access_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chastucker/wrestling-club/internal/access"
	"github.com/chastucker/wrestling-club/internal/shared"
)

type stubRoleSource struct {
	roles access.RoleSet
	err   error
}

func (s stubRoleSource) RolesFor(_ context.Context, _, _ string) (access.RoleSet, error) {
	return s.roles, s.err
}

type stubProfileCounter struct {
	count int
	err   error
}

func (s stubProfileCounter) CountProfiles(_ context.Context, _, _ string) (int, error) {
	return s.count, s.err
}

func requestAs(userID, path string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, path, nil)
	if userID == "" {
		return r
	}
	sess := &shared.Session{}
	sess.SetUser(userID)
	return r.WithContext(shared.ContextWithSession(r.Context(), sess))
}

func okHandler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestWithRolesResolvesOncePerRequest(t *testing.T) {
	guard := access.Guard{
		Roles:  stubRoleSource{roles: access.NewRoleSet(access.RoleCoach)},
		ClubID: "club-1",
	}

	var seen access.RoleSet
	handler := guard.WithRoles(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = access.RolesFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestAs("user-1", "/api/sessions"))

	require.True(t, seen.Has(access.RoleCoach))
}

func TestWithRolesAnonymousGetsEmptySet(t *testing.T) {
	guard := access.Guard{Roles: stubRoleSource{roles: access.NewRoleSet(access.RoleAdmin)}, ClubID: "club-1"}

	var seen access.RoleSet
	handler := guard.WithRoles(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = access.RolesFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestAs("", "/api/sessions"))

	assert.Empty(t, seen.Roles())
	// Empty set means every capability denies.
	assert.False(t, access.IsAuthorized(access.CapCheckIn, seen))
}

func TestRequireIdentity(t *testing.T) {
	guard := access.Guard{}

	rec := httptest.NewRecorder()
	guard.RequireIdentity(okHandler(t)).ServeHTTP(rec, requestAs("", "/api/profile"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	guard.RequireIdentity(okHandler(t)).ServeHTTP(rec, requestAs("user-1", "/api/profile"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireOnboardedRedirectsToOnboarding(t *testing.T) {
	guard := access.Guard{Profiles: stubProfileCounter{count: 0}, ClubID: "club-1"}

	rec := httptest.NewRecorder()
	guard.RequireOnboarded(okHandler(t)).ServeHTTP(rec, requestAs("user-1", "/api/sessions"))

	require.Equal(t, http.StatusForbidden, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, access.PathOnboarding, body["redirectTo"])
}

func TestRequireOnboardedPassesWithProfile(t *testing.T) {
	guard := access.Guard{Profiles: stubProfileCounter{count: 1}, ClubID: "club-1"}

	rec := httptest.NewRecorder()
	guard.RequireOnboarded(okHandler(t)).ServeHTTP(rec, requestAs("user-1", "/api/sessions"))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireOnboardedRejectsAnonymous(t *testing.T) {
	guard := access.Guard{Profiles: stubProfileCounter{count: 1}, ClubID: "club-1"}

	rec := httptest.NewRecorder()
	guard.RequireOnboarded(okHandler(t)).ServeHTTP(rec, requestAs("", "/api/sessions"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireCapability(t *testing.T) {
	guard := access.Guard{}
	handler := guard.RequireCapability(access.CapManageSessions)(okHandler(t))

	// Anonymous callers get 401 before any role check.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestAs("", "/api/sessions"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Signed in but not granted: 403.
	r := requestAs("user-1", "/api/sessions")
	r = r.WithContext(access.ContextWithRoles(r.Context(), access.NewRoleSet(access.RoleParent)))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Granted role passes.
	r = requestAs("user-1", "/api/sessions")
	r = r.WithContext(access.ContextWithRoles(r.Context(), access.NewRoleSet(access.RoleAdmin)))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireCapabilityAnyOf(t *testing.T) {
	guard := access.Guard{}
	handler := guard.RequireCapability(access.CapManageTournaments, access.CapViewEvents)(okHandler(t))

	// Coach lacks tournament management but holds event visibility.
	r := requestAs("user-1", "/api/tournaments/t1/interests")
	r = r.WithContext(access.ContextWithRoles(r.Context(), access.NewRoleSet(access.RoleCoach)))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	assert.Equal(t, http.StatusOK, rec.Code)

	r = requestAs("user-1", "/api/tournaments/t1/interests")
	r = r.WithContext(access.ContextWithRoles(r.Context(), access.NewRoleSet(access.RoleWrestler)))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
