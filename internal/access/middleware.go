package access

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/chastucker/wrestling-club/internal/platform/httpx"
	"github.com/chastucker/wrestling-club/internal/shared"
)

// RoleSource loads the roles a user holds for a club.
type RoleSource interface {
	RolesFor(ctx context.Context, userID, clubID string) (RoleSet, error)
}

// ProfileCounter reports how many profile records a user holds for a club.
// Zero means the user has not finished onboarding.
type ProfileCounter interface {
	CountProfiles(ctx context.Context, userID, clubID string) (int, error)
}

type rolesContextKey struct{}

// ContextWithRoles stores the resolved role set in context.
func ContextWithRoles(ctx context.Context, roles RoleSet) context.Context {
	return context.WithValue(ctx, rolesContextKey{}, roles)
}

// RolesFromContext extracts the role set resolved for this request. A
// missing set behaves like the signed-out default: everything denies.
func RolesFromContext(ctx context.Context) RoleSet {
	roles, _ := ctx.Value(rolesContextKey{}).(RoleSet)
	return roles
}

// Guard wires authorization middleware for HTTP handlers. Denial is a
// response value (401/403), never a panic: permission checks are expected,
// frequent outcomes.
type Guard struct {
	Roles    RoleSource
	Profiles ProfileCounter
	ClubID   string
	Logger   *slog.Logger
}

// WithRoles resolves the caller's role set once and stashes it in context.
// Anonymous callers proceed with an empty set.
func (g Guard) WithRoles(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := shared.CurrentUserID(r.Context())
		if userID == "" {
			next.ServeHTTP(w, r.WithContext(ContextWithRoles(r.Context(), RoleSet{})))
			return
		}
		roles, err := g.Roles.RolesFor(r.Context(), userID, g.ClubID)
		if err != nil {
			if g.Logger != nil {
				g.Logger.Error("resolve roles", slog.Any("error", err))
			}
			httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithRoles(r.Context(), roles)))
	})
}

// RequireIdentity rejects anonymous callers with 401.
func (g Guard) RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if shared.CurrentUserID(r.Context()) == "" {
			httpx.RespondError(w, shared.ErrNotAuthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireOnboarded forces callers without a club profile back to the
// onboarding flow. The redirect target is returned in the body; API clients
// perform the navigation themselves.
func (g Guard) RequireOnboarded(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := shared.CurrentUserID(r.Context())
		if userID == "" {
			httpx.RespondError(w, shared.ErrNotAuthenticated)
			return
		}
		count, err := g.Profiles.CountProfiles(r.Context(), userID, g.ClubID)
		if err != nil {
			if g.Logger != nil {
				g.Logger.Error("count profiles", slog.Any("error", err))
			}
			httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
			return
		}
		if target, ok := RedirectFor(StateFor(true, count), r.URL.Path); ok {
			httpx.JSON(w, http.StatusForbidden, map[string]string{
				"error":      "onboarding required",
				"redirectTo": target,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireCapability ensures the caller's role set grants at least one of
// the capabilities.
func (g Guard) RequireCapability(caps ...Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if shared.CurrentUserID(r.Context()) == "" {
				httpx.RespondError(w, shared.ErrNotAuthenticated)
				return
			}
			roles := RolesFromContext(r.Context())
			for _, c := range caps {
				if IsAuthorized(c, roles) {
					next.ServeHTTP(w, r)
					return
				}
			}
			httpx.Problem(w, http.StatusForbidden, "Forbidden", "")
		})
	}
}
