package contact

import (
	"strings"

	"github.com/nuggetscustoms/site/internal/errors"
)

// Submission is a contact / commission request from the website form.
type Submission struct {
	DiscordUsername string `json:"discordUsername"`
	DiscordID       string `json:"discordId"`
	Service         string `json:"service,omitempty"`
	Budget          string `json:"budget,omitempty"`
	Message         string `json:"message"`
}

// Validate requires the handle, the contact id and the details.
func (s Submission) Validate() error {
	if strings.TrimSpace(s.DiscordUsername) == "" ||
		strings.TrimSpace(s.DiscordID) == "" ||
		strings.TrimSpace(s.Message) == "" {
		return errors.Wrapf(errors.ErrValidation, "Discord Username, Discord ID, and message are required")
	}
	return nil
}
