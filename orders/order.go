package orders

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nuggetscustoms/site/internal/errors"
	"github.com/nuggetscustoms/site/internal/utils"
)

// DefaultStatus is assigned to new orders created without a status
const DefaultStatus = "Queued"

// Order is one tracked commission.
type Order struct {
	ID        string    `json:"id"`        // order-<unix millis>-<random suffix>
	Client    string    `json:"client"`    // Who the commission is for
	Title     string    `json:"title"`     // What is being made
	Status    string    `json:"status"`    // Free-form progress label
	UpdatedAt time.Time `json:"updatedAt"` // Refreshed on every create and update
}

// UnmarshalJSON reads a stored record. A blank or unparseable updatedAt
// leaves UpdatedAt zero instead of failing the whole collection.
func (o *Order) UnmarshalJSON(data []byte) error {
	type plain Order
	var raw struct {
		plain
		UpdatedAt json.RawMessage `json:"updatedAt"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*o = Order(raw.plain)
	o.UpdatedAt = time.Time{}
	var text string
	if err := json.Unmarshal(raw.UpdatedAt, &text); err == nil {
		if t, err := time.Parse(time.RFC3339Nano, text); err == nil {
			o.UpdatedAt = Timestamp(t)
		}
	}
	return nil
}

// NewOrder carries the fields accepted on create.
type NewOrder struct {
	Client string `json:"client"`
	Title  string `json:"title"`
	Status string `json:"status,omitempty"`
}

// Validate trims the fields and rejects an empty client or title.
func (n NewOrder) Validate() (NewOrder, error) {
	n.Client = strings.TrimSpace(n.Client)
	n.Title = strings.TrimSpace(n.Title)
	n.Status = strings.TrimSpace(n.Status)

	if n.Client == "" {
		return NewOrder{}, errors.Wrapf(errors.ErrValidation, "client is required")
	}
	if n.Title == "" {
		return NewOrder{}, errors.Wrapf(errors.ErrValidation, "title is required")
	}
	if n.Status == "" {
		n.Status = DefaultStatus
	}
	return n, nil
}

// Build validates n and turns it into a new Order stamped with now.
func (n NewOrder) Build(now time.Time) (Order, error) {
	valid, err := n.Validate()
	if err != nil {
		return Order{}, err
	}
	now = Timestamp(now)
	return Order{
		ID:        NewID(now),
		Client:    valid.Client,
		Title:     valid.Title,
		Status:    valid.Status,
		UpdatedAt: now,
	}, nil
}

// Patch is a partial update. Nil fields are left untouched.
// UpdatedAt is accepted for compatibility but the server always stamps its own time.
type Patch struct {
	Client    *string `json:"client,omitempty"`
	Title     *string `json:"title,omitempty"`
	Status    *string `json:"status,omitempty"`
	UpdatedAt *string `json:"updatedAt,omitempty"`
}

// Validate rejects a patch that would blank out the client or title.
func (p Patch) Validate() error {
	if p.Client != nil && strings.TrimSpace(*p.Client) == "" {
		return errors.Wrapf(errors.ErrValidation, "client cannot be empty")
	}
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return errors.Wrapf(errors.ErrValidation, "title cannot be empty")
	}
	return nil
}

// Apply returns o with the present fields replaced and UpdatedAt set to now.
func (p Patch) Apply(o Order, now time.Time) Order {
	if p.Client != nil {
		o.Client = strings.TrimSpace(utils.Value(p.Client))
	}
	if p.Title != nil {
		o.Title = strings.TrimSpace(utils.Value(p.Title))
	}
	if p.Status != nil {
		o.Status = strings.TrimSpace(utils.Value(p.Status))
	}
	o.UpdatedAt = Timestamp(now)
	return o
}

// Timestamp normalises t to the precision and zone the stores persist.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// NewID returns a unique order identifier derived from the creation time.
func NewID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("order-%d-%s", now.UnixMilli(), suffix)
}
