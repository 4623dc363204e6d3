package server

import (
	"mime"
	"net/http"

	"github.com/nuggetscustoms/site/internal/errors"
)

type loginRequest struct {
	Secret string `json:"secret"`
}

// LoginHandler accepts {"secret": "..."} as JSON or a form post, opens a
// session for the role the secret grants and tells the browser where to go.
func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		secret, err := readLoginSecret(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		result, err := s.auth.Login(secret)
		if err != nil {
			if errors.Is(err, errors.ErrUnauthorized) {
				writeJSON(w, http.StatusUnauthorized, errorResponse{OK: false, Error: msgInvalidSecret})
				return
			}
			writeError(w, r, err)
			return
		}

		// Rotate: a fresh login never reuses the session the browser arrived with.
		s.auth.Logout(sessionToken(r))

		s.SetLoginSessionCookies(w, r, result.Token, result.Role)
		writeJSON(w, http.StatusOK, loginResponse{
			OK:       true,
			Role:     result.Role.String(),
			Redirect: result.Destination,
		})
	}
}

func readLoginSecret(r *http.Request) (string, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" || mediaType == "multipart/form-data" {
		if err := r.ParseForm(); err != nil {
			if tooLarge(err) {
				return "", errors.Wrapf(errors.ErrTooLarge, "[readLoginSecret] %s", err)
			}
			return "", errors.Wrapf(errors.ErrValidation, msgInvalidForm)
		}
		return r.FormValue("secret"), nil
	}

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		return "", err
	}
	return req.Secret, nil
}

// LogoutHandler revokes the caller's session, clears both cookies and
// returns to the portal. Always succeeds.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.auth.Logout(sessionToken(r))
		s.ClearLoginSessionCookies(w, r)
		redirectToPortal(w, r)
	}
}
