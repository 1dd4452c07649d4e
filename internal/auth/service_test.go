package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/chastucker/wrestling-club/internal/auth"
	"github.com/chastucker/wrestling-club/internal/shared"
	_ "github.com/chastucker/wrestling-club/testing"
)

type memoryRepo struct {
	users    map[string]auth.User
	sessions map[string]time.Time
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: make(map[string]auth.User), sessions: make(map[string]time.Time)}
}

func (m *memoryRepo) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return &user, nil
}

func (m *memoryRepo) CreateUser(_ context.Context, user auth.User) (*auth.User, error) {
	if _, exists := m.users[user.Email]; exists {
		return nil, shared.ErrValidation
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	m.users[user.Email] = user
	return &user, nil
}

func (m *memoryRepo) CreateSession(_ context.Context, id, _ string, expiresAt time.Time, _, _ string) error {
	m.sessions[id] = expiresAt
	return nil
}

func (m *memoryRepo) DeleteSession(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

func (m *memoryRepo) DeleteExpiredSessions(_ context.Context, before time.Time) (int64, error) {
	var n int64
	for id, expires := range m.sessions {
		if expires.Before(before) {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := auth.NewService(newMemoryRepo())
	ctx := context.Background()

	user, err := svc.Register(ctx, "  Coach@Club.Local ", "Dan Gable", "takedown99")
	require.NoError(t, err)
	assert.Equal(t, "coach@club.local", user.Email)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "takedown99", user.PasswordHash)

	got, err := svc.Authenticate(ctx, "coach@club.local", "takedown99")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	repo := newMemoryRepo()
	svc := auth.NewService(repo)
	ctx := context.Background()

	_, err := svc.Register(ctx, "coach@club.local", "Dan Gable", "takedown99")
	require.NoError(t, err)

	// Unknown email and wrong password collapse into the same error.
	_, badEmail := svc.Authenticate(ctx, "nobody@club.local", "takedown99")
	_, badPassword := svc.Authenticate(ctx, "coach@club.local", "headlock")
	assert.ErrorIs(t, badEmail, shared.ErrInvalidCredentials)
	assert.ErrorIs(t, badPassword, shared.ErrInvalidCredentials)
	assert.Equal(t, badEmail.Error(), badPassword.Error())
}

func TestAuthenticateInactiveAccount(t *testing.T) {
	repo := newMemoryRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("takedown99"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.users["coach@club.local"] = auth.User{
		ID: "u1", Email: "coach@club.local", PasswordHash: string(hash), IsActive: false,
	}

	_, err = auth.NewService(repo).Authenticate(context.Background(), "coach@club.local", "takedown99")
	assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := auth.NewService(newMemoryRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "coach@club.local", "Dan Gable", "takedown99")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "coach@club.local", "Imposter", "other")
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestSweepExpiredSessions(t *testing.T) {
	repo := newMemoryRepo()
	svc := auth.NewService(repo)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, svc.RegisterSession(ctx, "old", "u1", now.Add(-time.Hour), "", ""))
	require.NoError(t, svc.RegisterSession(ctx, "live", "u1", now.Add(time.Hour), "", ""))

	swept, err := svc.SweepExpiredSessions(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), swept)
	assert.Contains(t, repo.sessions, "live")
	assert.NotContains(t, repo.sessions, "old")
}
