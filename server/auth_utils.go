package server

import (
	"net/http"

	"github.com/nuggetscustoms/site/roles"
)

const (
	// sessionCookieName carries the opaque session token. Never readable from page scripts.
	sessionCookieName = "session_id"
	// roleCookieName is a display hint for the board pages. It is never trusted.
	roleCookieName = "role"
)

func (s *Server) SetLoginSessionCookies(w http.ResponseWriter, r *http.Request, token string, role roles.Role) {
	isSecure := getScheme(r) == "https"
	maxAge := int(s.auth.MaxSessionAge().Seconds())

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     roleCookieName,
		Value:    role.String(),
		Path:     "/",
		Secure:   isSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

func (s *Server) ClearLoginSessionCookies(w http.ResponseWriter, r *http.Request) {
	isSecure := getScheme(r) == "https"
	for _, name := range []string{sessionCookieName, roleCookieName} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			HttpOnly: name == sessionCookieName,
			Secure:   isSecure,
			SameSite: http.SameSiteLaxMode,
			MaxAge:   -1,
		})
	}
}

// sessionToken returns the session cookie value, or "" when absent.
func sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// resolveRole is the single place a request's role is derived. Only the
// session cookie is consulted.
func (s *Server) resolveRole(r *http.Request) roles.Role {
	token := sessionToken(r)
	if token == "" {
		return roles.None
	}
	return s.auth.ResolveRole(token)
}

func redirectToPortal(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, RoutePortal, http.StatusSeeOther)
}
