package access

// Capability is a named permission gating a UI action or backend operation.
type Capability string

const (
	CapAccessAdmin         Capability = "access.admin"
	CapAccessCoach         Capability = "access.coach"
	CapManageSessions      Capability = "sessions.manage"
	CapManageTournaments   Capability = "tournaments.manage"
	CapManageMembers       Capability = "members.manage"
	CapViewAllPayments     Capability = "payments.view_all"
	CapViewPayments        Capability = "payments.view"
	CapViewEvents          Capability = "events.view"
	CapManageEvents        Capability = "events.manage"
	CapCheckIn             Capability = "attendance.check_in"
	CapEnroll              Capability = "sessions.enroll"
	CapShowInterest        Capability = "tournaments.interest"
	CapManageRelationships Capability = "relationships.manage"
)

// capabilityRoles is the single source of truth for authorization. Every
// check in the application derives from this table; nothing re-encodes role
// comparisons on its own. Absence from a list means denial, and admin is
// granted only where listed, never implicitly.
//
// payments.view is the one non-uniform entry: coaches are excluded even
// though the remaining three roles are all allowed.
var capabilityRoles = map[Capability][]Role{
	CapAccessAdmin:         {RoleAdmin},
	CapAccessCoach:         {RoleAdmin, RoleCoach},
	CapManageSessions:      {RoleAdmin},
	CapManageTournaments:   {RoleAdmin},
	CapManageMembers:       {RoleAdmin},
	CapViewAllPayments:     {RoleAdmin},
	CapViewPayments:        {RoleAdmin, RoleParent, RoleWrestler},
	CapViewEvents:          {RoleAdmin, RoleCoach},
	CapManageEvents:        {RoleAdmin, RoleCoach},
	CapCheckIn:             {RoleAdmin, RoleCoach, RoleParent, RoleWrestler},
	CapEnroll:              {RoleParent, RoleWrestler},
	CapShowInterest:        {RoleParent, RoleWrestler},
	CapManageRelationships: {RoleParent, RoleWrestler},
}

// Capabilities lists every capability known to the table.
func Capabilities() []Capability {
	out := make([]Capability, 0, len(capabilityRoles))
	for c := range capabilityRoles {
		out = append(out, c)
	}
	return out
}

// AuthorizedRoles returns the roles allowed for a capability, or nil when
// the capability is unknown.
func AuthorizedRoles(cap Capability) []Role {
	allowed, ok := capabilityRoles[cap]
	if !ok {
		return nil
	}
	out := make([]Role, len(allowed))
	copy(out, allowed)
	return out
}

// IsAuthorized reports whether any held role is in the capability's allow
// list. Unknown capabilities deny. There is no precedence beyond set
// intersection.
func IsAuthorized(cap Capability, roles RoleSet) bool {
	allowed, ok := capabilityRoles[cap]
	if !ok {
		return false
	}
	return roles.HasAny(allowed...)
}

// CapabilitySet is the derived, read-only view of what a role set may do.
// It is recomputed on demand and never mutated.
type CapabilitySet struct {
	IsAdmin            bool `json:"isAdmin"`
	IsCoach            bool `json:"isCoach"`
	IsParent           bool `json:"isParent"`
	IsWrestler         bool `json:"isWrestler"`
	IsCoachOrAdmin     bool `json:"isCoachOrAdmin"`
	IsParentOrWrestler bool `json:"isParentOrWrestler"`

	CanAccessAdmin         bool `json:"canAccessAdmin"`
	CanAccessCoach         bool `json:"canAccessCoach"`
	CanManageSessions      bool `json:"canManageSessions"`
	CanManageTournaments   bool `json:"canManageTournaments"`
	CanManageMembers       bool `json:"canManageMembers"`
	CanViewAllPayments     bool `json:"canViewAllPayments"`
	CanViewPayments        bool `json:"canViewPayments"`
	CanViewEvents          bool `json:"canViewEvents"`
	CanManageEvents        bool `json:"canManageEvents"`
	CanCheckIn             bool `json:"canCheckIn"`
	CanEnroll              bool `json:"canEnroll"`
	CanShowInterest        bool `json:"canShowInterest"`
	CanManageRelationships bool `json:"canManageRelationships"`
}

// Resolve computes the capability flags for a role set. Capabilities are
// OR'd across every held role; the active role only selects dashboard
// content and never narrows what the set grants. An empty set resolves to
// all-false, which is the signed-out default.
func Resolve(roles RoleSet) CapabilitySet {
	return CapabilitySet{
		IsAdmin:            roles.Has(RoleAdmin),
		IsCoach:            roles.Has(RoleCoach),
		IsParent:           roles.Has(RoleParent),
		IsWrestler:         roles.Has(RoleWrestler),
		IsCoachOrAdmin:     roles.HasAny(RoleCoach, RoleAdmin),
		IsParentOrWrestler: roles.HasAny(RoleParent, RoleWrestler),

		CanAccessAdmin:         IsAuthorized(CapAccessAdmin, roles),
		CanAccessCoach:         IsAuthorized(CapAccessCoach, roles),
		CanManageSessions:      IsAuthorized(CapManageSessions, roles),
		CanManageTournaments:   IsAuthorized(CapManageTournaments, roles),
		CanManageMembers:       IsAuthorized(CapManageMembers, roles),
		CanViewAllPayments:     IsAuthorized(CapViewAllPayments, roles),
		CanViewPayments:        IsAuthorized(CapViewPayments, roles),
		CanViewEvents:          IsAuthorized(CapViewEvents, roles),
		CanManageEvents:        IsAuthorized(CapManageEvents, roles),
		CanCheckIn:             IsAuthorized(CapCheckIn, roles),
		CanEnroll:              IsAuthorized(CapEnroll, roles),
		CanShowInterest:        IsAuthorized(CapShowInterest, roles),
		CanManageRelationships: IsAuthorized(CapManageRelationships, roles),
	}
}
