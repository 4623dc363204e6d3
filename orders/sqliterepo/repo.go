package sqliterepo

import (
	"database/sql"
	"sync"
	"time"

	"github.com/nuggetscustoms/site/internal/errors"
	"github.com/nuggetscustoms/site/orders"
	"github.com/rs/zerolog/log"
)

var _ orders.Repo = (*Repo)(nil)

// Repo keeps the order collection in an embedded SQLite database. Insertion
// order (seq) provides the most-recent-first listing.
type Repo struct {
	db  *sql.DB
	mu  sync.RWMutex
	now func() time.Time
}

// Open opens or creates the database at path and applies the schema.
func Open(path string) (*Repo, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrStorage, "[sqliterepo Open] %s: %s", path, err)
	}
	return &Repo{db: db, now: time.Now}, nil
}

// WithClock replaces the time source used for timestamps.
func (r *Repo) WithClock(now func() time.Time) *Repo {
	r.now = now
	return r
}

func (r *Repo) Close() error {
	return r.db.Close()
}

func (r *Repo) List() ([]orders.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list, err := r.list()
	if err != nil {
		log.Err(err).Msg("Failed to read orders, returning empty list")
		return []orders.Order{}, nil
	}
	return list, nil
}

func (r *Repo) list() ([]orders.Order, error) {
	rows, err := r.db.Query(`SELECT id, client, title, status, updated_at FROM orders ORDER BY seq DESC`)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrStorage, "[sqliterepo List] %s", err)
	}
	defer rows.Close()

	list := []orders.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, o)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(errors.ErrStorage, "[sqliterepo List] %s", err)
	}
	return list, nil
}

func (r *Repo) Create(newOrder orders.NewOrder) (orders.Order, error) {
	order, err := newOrder.Build(r.now())
	if err != nil {
		return orders.Order{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err = r.db.Exec(
		`INSERT INTO orders (id, client, title, status, updated_at) VALUES (?, ?, ?, ?, ?)`,
		order.ID, order.Client, order.Title, order.Status, formatTime(order.UpdatedAt),
	)
	if err != nil {
		return orders.Order{}, errors.Wrapf(errors.ErrStorage, "[sqliterepo Create] %s", err)
	}
	return order, nil
}

func (r *Repo) Update(id string, patch orders.Patch) (orders.Order, error) {
	if err := patch.Validate(); err != nil {
		return orders.Order{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return orders.Order{}, errors.Wrapf(errors.ErrStorage, "[sqliterepo Update] begin: %s", err)
	}
	defer tx.Rollback()

	row := tx.QueryRow(`SELECT id, client, title, status, updated_at FROM orders WHERE id = ?`, id)
	current, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return orders.Order{}, errors.Wrapf(errors.ErrNotFound, "[sqliterepo Update] order %s", id)
	}
	if err != nil {
		return orders.Order{}, err
	}

	updated := patch.Apply(current, r.now())
	_, err = tx.Exec(
		`UPDATE orders SET client = ?, title = ?, status = ?, updated_at = ? WHERE id = ?`,
		updated.Client, updated.Title, updated.Status, formatTime(updated.UpdatedAt), id,
	)
	if err != nil {
		return orders.Order{}, errors.Wrapf(errors.ErrStorage, "[sqliterepo Update] %s", err)
	}
	if err := tx.Commit(); err != nil {
		return orders.Order{}, errors.Wrapf(errors.ErrStorage, "[sqliterepo Update] commit: %s", err)
	}
	return updated, nil
}

func (r *Repo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.Exec(`DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return errors.Wrapf(errors.ErrStorage, "[sqliterepo Delete] %s", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(errors.ErrStorage, "[sqliterepo Delete] %s", err)
	}
	if n == 0 {
		return errors.Wrapf(errors.ErrNotFound, "[sqliterepo Delete] order %s", id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOrder(row scanner) (orders.Order, error) {
	var o orders.Order
	var updatedAt string
	if err := row.Scan(&o.ID, &o.Client, &o.Title, &o.Status, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return orders.Order{}, err
		}
		return orders.Order{}, errors.Wrapf(errors.ErrStorage, "[sqliterepo scan] %s", err)
	}

	t, err := time.Parse(time.RFC3339Nano, updatedAt)
	if err != nil {
		return orders.Order{}, errors.Wrapf(errors.ErrStorage, "[sqliterepo scan] updated_at %q: %s", updatedAt, err)
	}
	o.UpdatedAt = t
	return o, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
