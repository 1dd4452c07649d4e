package attendance

import (
	"context"
	"fmt"

	"github.com/chastucker/wrestling-club/internal/access"
	"github.com/chastucker/wrestling-club/internal/schedule"
	"github.com/chastucker/wrestling-club/internal/shared"
)

// RepositoryPort defines data access methods for attendance.
type RepositoryPort interface {
	Create(ctx context.Context, c CheckIn) (CheckIn, error)
	ListByPractice(ctx context.Context, practiceID string) ([]CheckIn, error)
	ListByUser(ctx context.Context, userID, clubID string) ([]CheckIn, error)
}

// PracticeSource resolves practices so check-ins inherit the right club.
type PracticeSource interface {
	GetPractice(ctx context.Context, id string) (schedule.Practice, error)
}

// Service handles check-in business logic.
type Service struct {
	repo      RepositoryPort
	practices PracticeSource
}

// NewService builds Service instance.
func NewService(repo RepositoryPort, practices PracticeSource) *Service {
	return &Service{repo: repo, practices: practices}
}

// CheckInInput carries a check-in request. UserID is empty for
// self check-in; coaches and admins may set it to check in a member.
type CheckInInput struct {
	PracticeID string
	UserID     string
	Notes      string
}

// CheckIn records attendance for a practice. Checking in someone other
// than yourself requires event-management rights, which the capability
// table grants to coaches and admins only.
func (s *Service) CheckIn(ctx context.Context, input CheckInInput) (CheckIn, error) {
	callerID := shared.CurrentUserID(ctx)
	if callerID == "" {
		return CheckIn{}, shared.ErrNotAuthenticated
	}

	target := input.UserID
	if target == "" {
		target = callerID
	}
	if target != callerID {
		if !access.IsAuthorized(access.CapManageEvents, access.RolesFromContext(ctx)) {
			return CheckIn{}, fmt.Errorf("%w: cannot check in another member", shared.ErrValidation)
		}
	}

	practice, err := s.practices.GetPractice(ctx, input.PracticeID)
	if err != nil {
		return CheckIn{}, err
	}

	return s.repo.Create(ctx, CheckIn{
		UserID:     target,
		PracticeID: practice.ID,
		ClubID:     practice.ClubID,
		Notes:      input.Notes,
	})
}

// Roster returns the check-ins recorded for a practice.
func (s *Service) Roster(ctx context.Context, practiceID string) ([]CheckIn, error) {
	if _, err := s.practices.GetPractice(ctx, practiceID); err != nil {
		return nil, err
	}
	return s.repo.ListByPractice(ctx, practiceID)
}

// History returns the caller's own check-ins for a club.
func (s *Service) History(ctx context.Context, clubID string) ([]CheckIn, error) {
	userID := shared.CurrentUserID(ctx)
	if userID == "" {
		return nil, shared.ErrNotAuthenticated
	}
	return s.repo.ListByUser(ctx, userID, clubID)
}
