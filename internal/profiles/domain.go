package profiles

import (
	"time"

	"github.com/chastucker/wrestling-club/internal/access"
)

// Profile binds a user to a club with a role and basic identity details.
// At most one profile exists per (user, club) pair; the profiles table
// carries a unique constraint on exactly that pair because the
// check-then-insert sequence alone cannot rule out a racing duplicate.
type Profile struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	ClubID    string      `json:"clubId"`
	Role      access.Role `json:"role"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	City      string      `json:"city"`
	State     string      `json:"state"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// CreatableRoles are the roles a user may select for themselves during
// onboarding. Admin and coach are granted by an administrator afterwards;
// a coach signup starts as pending_coach until promoted.
func CreatableRoles() []access.Role {
	return []access.Role{access.RolePendingCoach, access.RoleWrestler, access.RoleParent}
}

func roleCreatable(role access.Role) bool {
	for _, r := range CreatableRoles() {
		if r == role {
			return true
		}
	}
	return false
}
