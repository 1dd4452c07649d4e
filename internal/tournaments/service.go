package tournaments

import (
	"context"
	"fmt"
	"strings"

	"github.com/chastucker/wrestling-club/internal/shared"
)

// RepositoryPort defines data access methods for tournaments.
type RepositoryPort interface {
	Create(ctx context.Context, t Tournament) (Tournament, error)
	List(ctx context.Context, clubID string) ([]Tournament, error)
	Get(ctx context.Context, id string) (Tournament, error)
	CreateInterest(ctx context.Context, in Interest) (Interest, error)
	ListInterests(ctx context.Context, tournamentID string) ([]Interest, error)
}

// Service handles tournament business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// Create validates and persists a new tournament.
func (s *Service) Create(ctx context.Context, t Tournament) (Tournament, error) {
	if shared.CurrentUserID(ctx) == "" {
		return Tournament{}, shared.ErrNotAuthenticated
	}
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return Tournament{}, fmt.Errorf("%w: name required", shared.ErrValidation)
	}
	if t.EndDate.Before(t.StartDate) {
		return Tournament{}, fmt.Errorf("%w: end date precedes start date", shared.ErrValidation)
	}
	return s.repo.Create(ctx, t)
}

// List returns a club's tournaments.
func (s *Service) List(ctx context.Context, clubID string) ([]Tournament, error) {
	return s.repo.List(ctx, clubID)
}

// RegisterInterest records the caller's interest in a tournament. The
// tournament must exist; registering twice is a conflict.
func (s *Service) RegisterInterest(ctx context.Context, tournamentID, weightClass string) (Interest, error) {
	userID := shared.CurrentUserID(ctx)
	if userID == "" {
		return Interest{}, shared.ErrNotAuthenticated
	}
	if _, err := s.repo.Get(ctx, tournamentID); err != nil {
		return Interest{}, err
	}
	return s.repo.CreateInterest(ctx, Interest{
		TournamentID: tournamentID,
		UserID:       userID,
		WeightClass:  strings.TrimSpace(weightClass),
	})
}

// ListInterests returns the interest roster for a tournament.
func (s *Service) ListInterests(ctx context.Context, tournamentID string) ([]Interest, error) {
	if _, err := s.repo.Get(ctx, tournamentID); err != nil {
		return nil, err
	}
	return s.repo.ListInterests(ctx, tournamentID)
}
