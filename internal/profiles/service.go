package profiles

import (
	"context"
	"fmt"
	"strings"

	"github.com/chastucker/wrestling-club/internal/access"
	"github.com/chastucker/wrestling-club/internal/shared"
)

// RepositoryPort defines data access methods for profiles.
type RepositoryPort interface {
	CreateProfile(ctx context.Context, profile Profile) (Profile, error)
	ListProfiles(ctx context.Context, userID, clubID string) ([]Profile, error)
	CountProfiles(ctx context.Context, userID, clubID string) (int, error)
	RolesFor(ctx context.Context, userID, clubID string) (access.RoleSet, error)
	PromotePendingCoach(ctx context.Context, userID, clubID string) error
	ListPendingCoaches(ctx context.Context, clubID string) ([]Profile, error)
}

// Service handles profile lifecycle rules: create once, read many. No
// update or delete exists on purpose; the clients never mutate a profile
// after onboarding.
type Service struct {
	repo RepositoryPort
}

// NewService builds Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// CreateProfileInput carries the onboarding fields.
type CreateProfileInput struct {
	Role      access.Role
	ClubID    string
	FirstName string
	LastName  string
	City      string
	State     string
}

// CreateProfile creates the caller's profile for a club. The caller
// identity comes from the request session; its absence fails before any
// write. The application-level duplicate pre-check mirrors the original
// flow, while the repository's unique constraint closes the race two
// concurrent creates would otherwise win together.
func (s *Service) CreateProfile(ctx context.Context, input CreateProfileInput) (Profile, error) {
	userID := shared.CurrentUserID(ctx)
	if userID == "" {
		return Profile{}, shared.ErrNotAuthenticated
	}
	if !roleCreatable(input.Role) {
		return Profile{}, fmt.Errorf("%w: role %q cannot be self-assigned", shared.ErrValidation, input.Role)
	}

	count, err := s.repo.CountProfiles(ctx, userID, input.ClubID)
	if err != nil {
		return Profile{}, err
	}
	if count > 0 {
		return Profile{}, shared.ErrDuplicateProfile
	}

	return s.repo.CreateProfile(ctx, Profile{
		UserID:    userID,
		ClubID:    input.ClubID,
		Role:      input.Role,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		City:      strings.TrimSpace(input.City),
		State:     strings.ToUpper(strings.TrimSpace(input.State)),
	})
}

// GetProfiles returns the caller's profiles for a club. The result is a
// collection: an empty slice is the "not onboarded" signal, and callers
// must not assume exactly one record.
func (s *Service) GetProfiles(ctx context.Context, clubID string) ([]Profile, error) {
	userID := shared.CurrentUserID(ctx)
	if userID == "" {
		return nil, shared.ErrNotAuthenticated
	}
	records, err := s.repo.ListProfiles(ctx, userID, clubID)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []Profile{}
	}
	return records, nil
}

// CountProfiles reports the caller-independent profile count for a user.
// Satisfies access.ProfileCounter.
func (s *Service) CountProfiles(ctx context.Context, userID, clubID string) (int, error) {
	return s.repo.CountProfiles(ctx, userID, clubID)
}

// RolesFor loads a user's role set. Satisfies access.RoleSource.
func (s *Service) RolesFor(ctx context.Context, userID, clubID string) (access.RoleSet, error) {
	return s.repo.RolesFor(ctx, userID, clubID)
}

// Promote turns a pending coach into a coach.
func (s *Service) Promote(ctx context.Context, userID, clubID string) error {
	return s.repo.PromotePendingCoach(ctx, userID, clubID)
}

// PendingCoaches lists profiles awaiting promotion for a club.
func (s *Service) PendingCoaches(ctx context.Context, clubID string) ([]Profile, error) {
	return s.repo.ListPendingCoaches(ctx, clubID)
}
