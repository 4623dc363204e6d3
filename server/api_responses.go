package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/nuggetscustoms/site/contact"
	"github.com/nuggetscustoms/site/gallery"
	"github.com/nuggetscustoms/site/internal/errors"
	"github.com/nuggetscustoms/site/orders"
	"github.com/rs/zerolog/log"
)

const (
	msgServerError      = "Server error"
	msgUnauthorized     = "unauthorized"
	msgInvalidSecret    = "invalid secret"
	msgInvalidJSON      = "invalid JSON body"
	msgInvalidForm      = "invalid form body"
	msgTooLarge         = "request body too large"
	msgOrderNotFound    = "order not found"
	msgWebhookFailed    = "Discord webhook failed"
	msgWebhookNotConfig = "DISCORD_WEBHOOK_URL not set"
)

type okResponse struct {
	OK bool `json:"ok"`
}

type errorResponse struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

type loginResponse struct {
	OK       bool   `json:"ok"`
	Role     string `json:"role"`
	Redirect string `json:"redirect"`
}

type ordersResponse struct {
	OK     bool           `json:"ok"`
	Orders []orders.Order `json:"orders"`
}

type orderResponse struct {
	OK    bool         `json:"ok"`
	Order orders.Order `json:"order"`
	ID    string       `json:"id,omitempty"`
}

type galleryResponse struct {
	OK    bool           `json:"ok"`
	Items []gallery.Item `json:"items"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Err(err).Msg("Failed to encode JSON response")
	}
}

// decodeJSON reads a JSON body into v. Body size is capped by BodyLimitMiddleware.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if tooLarge(err) {
			return errors.Wrapf(errors.ErrTooLarge, "[decodeJSON] %s", err)
		}
		return errors.Wrapf(errors.ErrInvalidJSON, "[decodeJSON] %s", err)
	}
	return nil
}

func tooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}

// writeError maps err onto a status and a message that is safe to show a browser.
// Storage and internal failures are logged and reported generically.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	resp := errorResponse{OK: false, Error: publicMessage(err)}

	var upstream *contact.UpstreamError
	if errors.As(err, &upstream) {
		resp.Details = upstream.Details
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msgf("%s %s failed", r.Method, r.URL.Path)
	}
	writeJSON(w, status, resp)
}

func publicMessage(err error) string {
	switch {
	case errors.Is(err, errors.ErrValidation):
		return strings.TrimSuffix(err.Error(), ": "+errors.ErrValidation.Error())
	case errors.Is(err, errors.ErrInvalidJSON):
		return msgInvalidJSON
	case errors.Is(err, errors.ErrTooLarge):
		return msgTooLarge
	case errors.Is(err, errors.ErrUnauthorized),
		errors.Is(err, errors.ErrSessionNotFound),
		errors.Is(err, errors.ErrSessionExpired):
		return msgUnauthorized
	case errors.Is(err, errors.ErrNotFound):
		return msgOrderNotFound
	case errors.Is(err, errors.ErrUpstream):
		return msgWebhookFailed
	case errors.Is(err, errors.ErrNotConfigured):
		return msgWebhookNotConfig
	default:
		return msgServerError
	}
}
