package server

import (
	"context"
	"net/http"
	"path"
	"strings"

	"github.com/nuggetscustoms/site/roles"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeyRole stores the role resolved from the session cookie
const ContextKeyRole ContextKey = "role"

// protectedPages lists every path that reaches a board page, including the
// raw file names the static server would otherwise hand out.
var protectedPages = map[string]roles.Role{
	RouteClientBoard:      roles.Client,
	"/" + pageClientBoard: roles.Client,
	RouteAdminBoard:       roles.Admin,
	"/" + pageAdminBoard:  roles.Admin,
}

// RoleFromContext returns the role a guard stored on the request, or None.
func RoleFromContext(ctx context.Context) roles.Role {
	role, ok := ctx.Value(ContextKeyRole).(roles.Role)
	if !ok {
		return roles.None
	}
	return role
}

func withRole(r *http.Request, role roles.Role) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ContextKeyRole, role))
}

// ProtectedPagesMiddleware runs ahead of routing and the static file server so
// a board page can't be fetched by its file name without the right session.
func (s *Server) ProtectedPagesMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		required, ok := protectedPages[strings.ToLower(path.Clean("/"+r.URL.Path))]
		if ok && !s.resolveRole(r).Satisfies(required) {
			redirectToPortal(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequirePageRole is middleware for page routes. Callers without the required
// role are sent back to the portal login page.
func (s *Server) RequirePageRole(required roles.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := s.resolveRole(r)
			if !role.Satisfies(required) {
				redirectToPortal(w, r)
				return
			}
			next.ServeHTTP(w, withRole(r, role))
		})
	}
}

// RequireAPIRole is middleware for API routes. Callers without the required
// role get a 401 envelope and the handler never runs.
func (s *Server) RequireAPIRole(required roles.Role) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role := s.resolveRole(r)
			if !role.Satisfies(required) {
				writeJSON(w, http.StatusUnauthorized, errorResponse{OK: false, Error: msgUnauthorized})
				return
			}
			next.ServeHTTP(w, withRole(r, role))
		})
	}
}
