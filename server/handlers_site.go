package server

import (
	"net/http"

	"github.com/nuggetscustoms/site/contact"
	"github.com/nuggetscustoms/site/gallery"
	"github.com/nuggetscustoms/site/internal/errors"
)

// ContactHandler forwards a contact form submission to the webhook.
func (s *Server) ContactHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !s.notifier.Configured() {
			writeError(w, r, errors.Wrapf(errors.ErrNotConfigured, "[ContactHandler] webhook"))
			return
		}

		var submission contact.Submission
		if err := decodeJSON(r, &submission); err != nil {
			writeError(w, r, err)
			return
		}
		if err := submission.Validate(); err != nil {
			writeError(w, r, err)
			return
		}

		if err := s.notifier.Notify(r.Context(), submission); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, okResponse{OK: true})
	}
}

// GalleryHandler lists the past-work images under the site's images/work folder.
func (s *Server) GalleryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := s.gallery.List()
		if err != nil {
			writeError(w, r, err)
			return
		}
		if items == nil {
			items = []gallery.Item{}
		}
		writeJSON(w, http.StatusOK, galleryResponse{OK: true, Items: items})
	}
}
