package access

// Well-known paths referenced by the onboarding state machine.
const (
	PathSignIn     = "/sign-in"
	PathOnboarding = "/onboarding"
	PathDashboard  = "/dashboard"
)

// routeRoles maps each logical route to the roles allowed to reach it.
// Paths missing from the table deny for everyone: the guard fails closed.
var routeRoles = map[string][]Role{
	PathDashboard:    {RoleAdmin, RoleCoach, RoleParent, RoleWrestler},
	"/schedule":      {RoleAdmin, RoleCoach, RoleParent, RoleWrestler},
	"/sessions":      {RoleAdmin, RoleCoach, RoleParent, RoleWrestler},
	"/tournaments":   {RoleAdmin, RoleCoach, RoleParent, RoleWrestler},
	"/relationships": {RoleAdmin, RoleCoach, RoleParent, RoleWrestler},
	"/check-in":      {RoleAdmin, RoleCoach, RoleParent, RoleWrestler},

	// Coaches never see payment pages.
	"/payments": {RoleAdmin, RoleParent, RoleWrestler},

	"/events": {RoleAdmin, RoleCoach},

	"/admin":             {RoleAdmin},
	"/admin/sessions":    {RoleAdmin},
	"/admin/tournaments": {RoleAdmin},
	"/admin/members":     {RoleAdmin},
	"/admin/payments":    {RoleAdmin},
}

// Routes lists every guarded path.
func Routes() []string {
	out := make([]string, 0, len(routeRoles))
	for p := range routeRoles {
		out = append(out, p)
	}
	return out
}

// RouteRoles returns the allow list for a path, or nil when the path is not
// in the table.
func RouteRoles(path string) []Role {
	allowed, ok := routeRoles[path]
	if !ok {
		return nil
	}
	out := make([]Role, len(allowed))
	copy(out, allowed)
	return out
}

// CanAccessRoute reports whether the role set may reach the path. Unknown
// paths deny by default.
func CanAccessRoute(path string, roles RoleSet) bool {
	allowed, ok := routeRoles[path]
	if !ok {
		return false
	}
	return roles.HasAny(allowed...)
}

// AuthState positions a caller in the onboarding flow.
type AuthState int

const (
	// Unauthenticated callers have no verified identity.
	Unauthenticated AuthState = iota
	// AuthenticatedNoProfile callers are signed in but hold no profile for
	// the club and must complete onboarding first.
	AuthenticatedNoProfile
	// AuthenticatedWithProfile callers may reach role-gated routes.
	AuthenticatedWithProfile
)

// StateFor derives the auth state from identity presence and the number of
// profile records found for the (caller, club) pair.
func StateFor(authenticated bool, profileCount int) AuthState {
	switch {
	case !authenticated:
		return Unauthenticated
	case profileCount == 0:
		return AuthenticatedNoProfile
	default:
		return AuthenticatedWithProfile
	}
}

// RedirectFor returns the forced destination for a caller in the given
// state requesting path, and whether a redirect applies. Signed-out callers
// go to sign-in. Callers without a profile are sent to onboarding no matter
// what they asked for, except onboarding itself so the flow cannot loop.
func RedirectFor(state AuthState, path string) (string, bool) {
	switch state {
	case Unauthenticated:
		if path == PathSignIn {
			return "", false
		}
		return PathSignIn, true
	case AuthenticatedNoProfile:
		if path == PathOnboarding {
			return "", false
		}
		return PathOnboarding, true
	}
	return "", false
}
