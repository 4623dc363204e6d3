package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nuggetscustoms/site/internal/errors"
	"github.com/nuggetscustoms/site/internal/utils"
)

const (
	webhookUsername = "Nuggets Customs • Contact"
	embedTitle      = "New Contact Form Submission"
	embedFooter     = "Nuggets Customs Website"
	embedColor      = 0x111111
	emptyField      = "—"

	maxFieldLength   = 256
	maxMessageLength = 1500
	maxDetailsLength = 300
)

// Notifier forwards a submission somewhere a human will see it.
type Notifier interface {
	Configured() bool
	Notify(ctx context.Context, s Submission) error
}

// UpstreamError is returned when the webhook answered with a non-success status.
type UpstreamError struct {
	StatusCode int
	Details    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("webhook returned %d: %s", e.StatusCode, e.Details)
}

func (e *UpstreamError) Unwrap() error {
	return errors.ErrUpstream
}

// WebhookNotifier posts a Discord embed to a webhook URL. One attempt per
// submission, no retries.
type WebhookNotifier struct {
	url    string
	client *http.Client
	now    func() time.Time
}

func NewWebhookNotifier(url string, timeout time.Duration) *WebhookNotifier {
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: timeout},
		now:    time.Now,
	}
}

// Configured reports whether a webhook URL is set
func (n *WebhookNotifier) Configured() bool {
	return n != nil && n.url != ""
}

func (n *WebhookNotifier) Notify(ctx context.Context, s Submission) error {
	if !n.Configured() {
		return errors.Wrapf(errors.ErrNotConfigured, "DISCORD_WEBHOOK_URL not set")
	}

	body, err := json.Marshal(BuildPayload(s, n.now()))
	if err != nil {
		return fmt.Errorf("[WebhookNotifier Notify] encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("[WebhookNotifier Notify] build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return errors.Wrapf(errors.ErrUpstream, "[WebhookNotifier Notify] %s", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &UpstreamError{
			StatusCode: resp.StatusCode,
			Details:    utils.FirstN(string(text), maxDetailsLength),
		}
	}
	return nil
}

// Payload is the Discord webhook body
type Payload struct {
	Username string  `json:"username"`
	Embeds   []Embed `json:"embeds"`
}

type Embed struct {
	Title     string       `json:"title"`
	Color     int          `json:"color"`
	Fields    []EmbedField `json:"fields"`
	Footer    EmbedFooter  `json:"footer"`
	Timestamp string       `json:"timestamp"`
}

type EmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type EmbedFooter struct {
	Text string `json:"text"`
}

// BuildPayload formats a submission as a Discord embed, truncating every field.
func BuildPayload(s Submission, now time.Time) Payload {
	orDash := func(v string) string {
		if v == "" {
			return emptyField
		}
		return v
	}

	return Payload{
		Username: webhookUsername,
		Embeds: []Embed{{
			Title: embedTitle,
			Color: embedColor,
			Fields: []EmbedField{
				{Name: "Discord Username", Value: utils.Truncate(s.DiscordUsername, maxFieldLength), Inline: true},
				{Name: "Discord ID", Value: utils.Truncate(s.DiscordID, maxFieldLength), Inline: true},
				{Name: "Service", Value: orDash(utils.Truncate(s.Service, maxFieldLength)), Inline: true},
				{Name: "Budget", Value: orDash(utils.Truncate(s.Budget, maxFieldLength)), Inline: true},
				{Name: "Message", Value: utils.Truncate(s.Message, maxMessageLength), Inline: false},
			},
			Footer:    EmbedFooter{Text: embedFooter},
			Timestamp: now.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
		}},
	}
}
