package access

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/chastucker/wrestling-club/internal/platform/httpx"
	"github.com/chastucker/wrestling-club/internal/shared"
)

// SessionKeyActiveRole is the session slot holding the caller's selected
// display role. It narrows dashboard content only; capability resolution
// always runs over the full role set.
const SessionKeyActiveRole = "active_role"

// Handler exposes the caller's roles, capabilities and guarded routes.
type Handler struct {
	logger *slog.Logger
	guard  Guard
}

// NewHandler builds Handler instance.
func NewHandler(logger *slog.Logger, guard Guard) *Handler {
	return &Handler{logger: logger, guard: guard}
}

// MountRoutes registers identity/permission routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/me", h.me)
	r.Put("/me/role", h.switchRole)
}

type roleView struct {
	Role        Role   `json:"role"`
	DisplayName string `json:"displayName"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
}

type meResponse struct {
	UserID      string          `json:"userId"`
	ActiveRole  Role            `json:"activeRole,omitempty"`
	Roles       []roleView      `json:"roles"`
	Permissions CapabilitySet   `json:"permissions"`
	Routes      map[string]bool `json:"routes"`
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	userID := shared.CurrentUserID(r.Context())
	if userID == "" {
		httpx.RespondError(w, shared.ErrNotAuthenticated)
		return
	}
	roles := RolesFromContext(r.Context())

	views := make([]roleView, 0, len(roles))
	for _, role := range roles.Roles() {
		views = append(views, roleView{
			Role:        role,
			DisplayName: DisplayName(role),
			Color:       ColorToken(role),
			Icon:        Icon(role),
		})
	}

	routes := make(map[string]bool, len(routeRoles))
	for _, path := range Routes() {
		routes[path] = CanAccessRoute(path, roles)
	}

	httpx.JSON(w, http.StatusOK, meResponse{
		UserID:      userID,
		ActiveRole:  h.activeRole(r, roles),
		Roles:       views,
		Permissions: Resolve(roles),
		Routes:      routes,
	})
}

type switchRoleRequest struct {
	Role string `json:"role"`
}

// switchRole updates the session-scoped display role. Switching to a role
// the caller does not hold is rejected.
func (h *Handler) switchRole(w http.ResponseWriter, r *http.Request) {
	userID := shared.CurrentUserID(r.Context())
	if userID == "" {
		httpx.RespondError(w, shared.ErrNotAuthenticated)
		return
	}

	var req switchRoleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, shared.ErrValidation)
		return
	}
	role, err := ParseRole(req.Role)
	if err != nil {
		httpx.RespondError(w, shared.ErrValidation)
		return
	}

	roles := RolesFromContext(r.Context())
	if !roles.Has(role) {
		httpx.Problem(w, http.StatusForbidden, "Forbidden", "role not held")
		return
	}

	if sess := shared.SessionFromContext(r.Context()); sess != nil {
		sess.Set(SessionKeyActiveRole, string(role))
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"activeRole": string(role)})
}

// activeRole returns the session's selected role when it is still held,
// falling back to the highest-level role the caller has.
func (h *Handler) activeRole(r *http.Request, roles RoleSet) Role {
	sess := shared.SessionFromContext(r.Context())
	if sess != nil {
		if stored, err := ParseRole(sess.Get(SessionKeyActiveRole)); err == nil && roles.Has(stored) {
			return stored
		}
	}
	if ordered := roles.Roles(); len(ordered) > 0 {
		return ordered[0]
	}
	return ""
}
