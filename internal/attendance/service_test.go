package attendance_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chastucker/wrestling-club/internal/access"
	"github.com/chastucker/wrestling-club/internal/attendance"
	"github.com/chastucker/wrestling-club/internal/schedule"
	"github.com/chastucker/wrestling-club/internal/shared"
	_ "github.com/chastucker/wrestling-club/testing"
)

type memoryRepo struct {
	checkIns []attendance.CheckIn
}

func (m *memoryRepo) Create(_ context.Context, c attendance.CheckIn) (attendance.CheckIn, error) {
	for _, existing := range m.checkIns {
		if existing.UserID == c.UserID && existing.PracticeID == c.PracticeID {
			return attendance.CheckIn{}, shared.ErrDuplicate
		}
	}
	c.ID = uuid.NewString()
	c.CheckedInAt = time.Now().UTC()
	m.checkIns = append(m.checkIns, c)
	return c, nil
}

func (m *memoryRepo) ListByPractice(_ context.Context, practiceID string) ([]attendance.CheckIn, error) {
	var out []attendance.CheckIn
	for _, c := range m.checkIns {
		if c.PracticeID == practiceID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memoryRepo) ListByUser(_ context.Context, userID, clubID string) ([]attendance.CheckIn, error) {
	var out []attendance.CheckIn
	for _, c := range m.checkIns {
		if c.UserID == userID && c.ClubID == clubID {
			out = append(out, c)
		}
	}
	return out, nil
}

type stubPractices struct {
	practices map[string]schedule.Practice
}

func (s stubPractices) GetPractice(_ context.Context, id string) (schedule.Practice, error) {
	p, ok := s.practices[id]
	if !ok {
		return schedule.Practice{}, shared.ErrNotFound
	}
	return p, nil
}

func newService(repo *memoryRepo) *attendance.Service {
	return attendance.NewService(repo, stubPractices{practices: map[string]schedule.Practice{
		"practice-1": {ID: "practice-1", SessionID: "session-1", ClubID: "club-1", Name: "Monday Night"},
	}})
}

func ctxAs(userID string, roles ...access.Role) context.Context {
	sess := &shared.Session{}
	sess.SetUser(userID)
	ctx := shared.ContextWithSession(context.Background(), sess)
	return access.ContextWithRoles(ctx, access.NewRoleSet(roles...))
}

func TestSelfCheckIn(t *testing.T) {
	repo := &memoryRepo{}
	svc := newService(repo)

	checkIn, err := svc.CheckIn(ctxAs("wrestler-1", access.RoleWrestler), attendance.CheckInInput{
		PracticeID: "practice-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "wrestler-1", checkIn.UserID)
	assert.Equal(t, "club-1", checkIn.ClubID)
	assert.False(t, checkIn.CheckedInAt.IsZero())
}

func TestCheckInIsOncePerPractice(t *testing.T) {
	repo := &memoryRepo{}
	svc := newService(repo)
	ctx := ctxAs("wrestler-1", access.RoleWrestler)

	_, err := svc.CheckIn(ctx, attendance.CheckInInput{PracticeID: "practice-1"})
	require.NoError(t, err)

	_, err = svc.CheckIn(ctx, attendance.CheckInInput{PracticeID: "practice-1"})
	assert.ErrorIs(t, err, shared.ErrDuplicate)
	assert.Len(t, repo.checkIns, 1)
}

func TestCoachChecksInMember(t *testing.T) {
	repo := &memoryRepo{}
	svc := newService(repo)

	checkIn, err := svc.CheckIn(ctxAs("coach-1", access.RoleCoach), attendance.CheckInInput{
		PracticeID: "practice-1",
		UserID:     "wrestler-1",
		Notes:      "made weight",
	})
	require.NoError(t, err)
	assert.Equal(t, "wrestler-1", checkIn.UserID)
	assert.Equal(t, "made weight", checkIn.Notes)
}

func TestMemberCannotCheckInOthers(t *testing.T) {
	svc := newService(&memoryRepo{})

	for _, role := range []access.Role{access.RoleParent, access.RoleWrestler} {
		_, err := svc.CheckIn(ctxAs("user-1", role), attendance.CheckInInput{
			PracticeID: "practice-1",
			UserID:     "wrestler-2",
		})
		assert.ErrorIs(t, err, shared.ErrValidation, "role %s", role)
	}
}

func TestCheckInUnknownPractice(t *testing.T) {
	svc := newService(&memoryRepo{})
	_, err := svc.CheckIn(ctxAs("wrestler-1", access.RoleWrestler), attendance.CheckInInput{
		PracticeID: "missing",
	})
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestCheckInRequiresIdentity(t *testing.T) {
	svc := newService(&memoryRepo{})
	_, err := svc.CheckIn(context.Background(), attendance.CheckInInput{PracticeID: "practice-1"})
	assert.ErrorIs(t, err, shared.ErrNotAuthenticated)
}

func TestRoster(t *testing.T) {
	repo := &memoryRepo{}
	svc := newService(repo)

	_, err := svc.CheckIn(ctxAs("wrestler-1", access.RoleWrestler), attendance.CheckInInput{PracticeID: "practice-1"})
	require.NoError(t, err)
	_, err = svc.CheckIn(ctxAs("wrestler-2", access.RoleWrestler), attendance.CheckInInput{PracticeID: "practice-1"})
	require.NoError(t, err)

	roster, err := svc.Roster(ctxAs("coach-1", access.RoleCoach), "practice-1")
	require.NoError(t, err)
	assert.Len(t, roster, 2)

	_, err = svc.Roster(ctxAs("coach-1", access.RoleCoach), "missing")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestHistory(t *testing.T) {
	repo := &memoryRepo{}
	svc := newService(repo)
	ctx := ctxAs("wrestler-1", access.RoleWrestler)

	_, err := svc.CheckIn(ctx, attendance.CheckInInput{PracticeID: "practice-1"})
	require.NoError(t, err)

	history, err := svc.History(ctx, "club-1")
	require.NoError(t, err)
	assert.Len(t, history, 1)

	_, err = svc.History(context.Background(), "club-1")
	assert.ErrorIs(t, err, shared.ErrNotAuthenticated)
}
