package schedule

import (
	"context"
	"fmt"
	"strings"

	"github.com/chastucker/wrestling-club/internal/shared"
)

// RepositoryPort defines data access methods for the schedule.
type RepositoryPort interface {
	CreateSession(ctx context.Context, s Session) (Session, error)
	ListSessions(ctx context.Context, clubID string) ([]Session, error)
	GetSession(ctx context.Context, id string) (Session, error)
	CreatePractice(ctx context.Context, p Practice) (Practice, error)
	ListPractices(ctx context.Context, sessionID string) ([]Practice, error)
	GetPractice(ctx context.Context, id string) (Practice, error)
}

// Service handles schedule business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// CreateSession validates and persists a new training session. The caller
// identity becomes created_by/updated_by.
func (s *Service) CreateSession(ctx context.Context, session Session) (Session, error) {
	userID := shared.CurrentUserID(ctx)
	if userID == "" {
		return Session{}, shared.ErrNotAuthenticated
	}
	session.Name = strings.TrimSpace(session.Name)
	if session.Name == "" {
		return Session{}, fmt.Errorf("%w: name required", shared.ErrValidation)
	}
	if !session.EndDate.After(session.StartDate) {
		return Session{}, fmt.Errorf("%w: end date must follow start date", shared.ErrValidation)
	}
	if session.PricePerSession < 0 || session.PricePerPractice < 0 {
		return Session{}, fmt.Errorf("%w: price cannot be negative", shared.ErrValidation)
	}
	if session.MaxEnrollments <= 0 {
		return Session{}, fmt.Errorf("%w: max enrollments must be positive", shared.ErrValidation)
	}
	session.CreatedBy = userID
	session.UpdatedBy = userID
	return s.repo.CreateSession(ctx, session)
}

// ListSessions returns a club's training sessions.
func (s *Service) ListSessions(ctx context.Context, clubID string) ([]Session, error) {
	return s.repo.ListSessions(ctx, clubID)
}

// CreatePractice validates and persists a practice under an existing
// session. Club scope is inherited from the parent session.
func (s *Service) CreatePractice(ctx context.Context, practice Practice) (Practice, error) {
	if shared.CurrentUserID(ctx) == "" {
		return Practice{}, shared.ErrNotAuthenticated
	}
	parent, err := s.repo.GetSession(ctx, practice.SessionID)
	if err != nil {
		return Practice{}, err
	}
	practice.ClubID = parent.ClubID
	practice.Name = strings.TrimSpace(practice.Name)
	if practice.Name == "" {
		return Practice{}, fmt.Errorf("%w: name required", shared.ErrValidation)
	}
	if !practice.EndTime.After(practice.StartTime) {
		return Practice{}, fmt.Errorf("%w: end time must follow start time", shared.ErrValidation)
	}
	if practice.MaxCapacity <= 0 {
		return Practice{}, fmt.Errorf("%w: max capacity must be positive", shared.ErrValidation)
	}
	return s.repo.CreatePractice(ctx, practice)
}

// ListPractices returns the practices for a session.
func (s *Service) ListPractices(ctx context.Context, sessionID string) ([]Practice, error) {
	return s.repo.ListPractices(ctx, sessionID)
}
