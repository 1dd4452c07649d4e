package profiles_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chastucker/wrestling-club/internal/access"
	"github.com/chastucker/wrestling-club/internal/observability"
	"github.com/chastucker/wrestling-club/internal/profiles"
	"github.com/chastucker/wrestling-club/internal/shared"
)

func newTestRouter(t *testing.T, repo *memoryRepo) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := profiles.NewService(repo)
	guard := access.Guard{Roles: service, Profiles: service, ClubID: "club-1", Logger: logger}
	handler := profiles.NewHandler(logger, service, guard, "club-1", observability.NewMetrics())

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(guard.RequireIdentity)
		r.Use(guard.WithRoles)
		handler.MountRoutes(r)
	})
	return r
}

func asUser(r *http.Request, userID string) *http.Request {
	sess := &shared.Session{}
	sess.SetUser(userID)
	return r.WithContext(shared.ContextWithSession(r.Context(), sess))
}

func TestCreateProfileEndpoint(t *testing.T) {
	router := newTestRouter(t, &memoryRepo{})

	body := `{"role":"wrestler","firstName":"Jordan","lastName":"Burroughs","city":"Lincoln","state":"NE"}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/profile", strings.NewReader(body)), "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created profiles.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "user-1", created.UserID)
	assert.Equal(t, "club-1", created.ClubID)
	assert.Equal(t, access.RoleWrestler, created.Role)
}

func TestCreateProfileEndpointDuplicate(t *testing.T) {
	router := newTestRouter(t, &memoryRepo{})
	body := `{"role":"parent","firstName":"Pat","lastName":"Smith","city":"Stillwater","state":"OK"}`

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/profile", strings.NewReader(body)), "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	req = asUser(httptest.NewRequest(http.MethodPost, "/api/profile", strings.NewReader(body)), "user-1")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	var problem map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, "Profile already exists", problem["detail"])
}

func TestCreateProfileEndpointRejectsUnknownRole(t *testing.T) {
	router := newTestRouter(t, &memoryRepo{})

	body := `{"role":"referee","firstName":"Pat","lastName":"Smith","city":"Stillwater","state":"OK"}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/profile", strings.NewReader(body)), "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProfileEndpointValidation(t *testing.T) {
	router := newTestRouter(t, &memoryRepo{})

	// Missing last name and a three-letter state.
	body := `{"role":"wrestler","firstName":"Jordan","city":"Lincoln","state":"NEB"}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/profile", strings.NewReader(body)), "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProfileEndpointAnonymous(t *testing.T) {
	router := newTestRouter(t, &memoryRepo{})

	body := `{"role":"wrestler","firstName":"Jordan","lastName":"Burroughs","city":"Lincoln","state":"NE"}`
	req := httptest.NewRequest(http.MethodPost, "/api/profile", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetProfileEndpointEmpty(t *testing.T) {
	router := newTestRouter(t, &memoryRepo{})

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/profile", nil), "user-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestAdminRoutesRequireMemberManagement(t *testing.T) {
	repo := &memoryRepo{records: []profiles.Profile{
		{ID: "p1", UserID: "coach-1", ClubID: "club-1", Role: access.RolePendingCoach, FirstName: "Dan", LastName: "Gable"},
		{ID: "p2", UserID: "admin-1", ClubID: "club-1", Role: access.RoleAdmin, FirstName: "Club", LastName: "Admin"},
	}}
	router := newTestRouter(t, repo)

	// A pending coach cannot list the queue they sit in.
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/admin/pending-coaches", nil), "coach-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = asUser(httptest.NewRequest(http.MethodGet, "/api/admin/pending-coaches", nil), "admin-1")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var pending []profiles.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pending))
	require.Len(t, pending, 1)
	assert.Equal(t, "coach-1", pending[0].UserID)
}

func TestPromoteEndpoint(t *testing.T) {
	repo := &memoryRepo{records: []profiles.Profile{
		{ID: "p1", UserID: "coach-1", ClubID: "club-1", Role: access.RolePendingCoach},
		{ID: "p2", UserID: "admin-1", ClubID: "club-1", Role: access.RoleAdmin},
	}}
	router := newTestRouter(t, repo)

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/admin/members/coach-1/promote", nil), "admin-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, access.RoleCoach, repo.records[0].Role)

	// Promoting someone who is not pending yields 404.
	req = asUser(httptest.NewRequest(http.MethodPost, "/api/admin/members/nobody/promote", nil), "admin-1")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
