package access

import (
	"fmt"
	"sort"
)

// Role is a user's capacity within a club. The set is closed; anything
// outside it is a programming error and ParseRole rejects it.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleCoach        Role = "coach"
	RolePendingCoach Role = "pending_coach"
	RoleParent       Role = "parent"
	RoleWrestler     Role = "wrestler"
)

// AllRoles lists every role in display order.
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleCoach, RolePendingCoach, RoleParent, RoleWrestler}
}

// ParseRole validates a raw role value.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAdmin, RoleCoach, RolePendingCoach, RoleParent, RoleWrestler:
		return Role(raw), nil
	}
	return "", fmt.Errorf("access: unknown role %q", raw)
}

// DisplayName returns the human readable label for a role.
func DisplayName(role Role) string {
	switch role {
	case RoleAdmin:
		return "Administrator"
	case RoleCoach:
		return "Coach"
	case RolePendingCoach:
		return "Pending Coach"
	case RoleParent:
		return "Parent"
	case RoleWrestler:
		return "Wrestler"
	}
	return string(role)
}

// ColorToken returns the UI color token associated with a role.
func ColorToken(role Role) string {
	switch role {
	case RoleAdmin:
		return "danger"
	case RoleCoach:
		return "warning"
	case RolePendingCoach:
		return "muted"
	case RoleParent:
		return "primary"
	case RoleWrestler:
		return "success"
	}
	return "muted"
}

// Icon returns the icon token associated with a role.
func Icon(role Role) string {
	switch role {
	case RoleAdmin:
		return "crown"
	case RoleCoach:
		return "trophy"
	case RolePendingCoach:
		return "hourglass"
	case RoleParent:
		return "family"
	case RoleWrestler:
		return "wrestling"
	}
	return "user"
}

// Level positions a role in the club hierarchy. Used only for sorting
// role badges; authorization never consults it.
func Level(role Role) int {
	switch role {
	case RoleAdmin:
		return 4
	case RoleCoach:
		return 3
	case RoleParent:
		return 2
	case RoleWrestler:
		return 1
	}
	return 0
}

// RoleSet is the set of roles a user holds for a club.
type RoleSet map[Role]struct{}

// NewRoleSet builds a RoleSet from the given roles.
func NewRoleSet(roles ...Role) RoleSet {
	set := make(RoleSet, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// Has reports whether the set contains the role.
func (s RoleSet) Has(role Role) bool {
	_, ok := s[role]
	return ok
}

// HasAny reports whether the set contains at least one of the roles.
func (s RoleSet) HasAny(roles ...Role) bool {
	for _, r := range roles {
		if s.Has(r) {
			return true
		}
	}
	return false
}

// Add returns the set extended with the role.
func (s RoleSet) Add(role Role) RoleSet {
	if s == nil {
		return NewRoleSet(role)
	}
	s[role] = struct{}{}
	return s
}

// Roles returns the members ordered by hierarchy level, highest first.
func (s RoleSet) Roles() []Role {
	out := make([]Role, 0, len(s))
	for r := range s {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if Level(out[i]) != Level(out[j]) {
			return Level(out[i]) > Level(out[j])
		}
		return out[i] < out[j]
	})
	return out
}
