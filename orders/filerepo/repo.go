package filerepo

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/nuggetscustoms/site/internal/errors"
	"github.com/nuggetscustoms/site/orders"
	"github.com/rs/zerolog/log"
)

var _ orders.Repo = (*Repo)(nil)

// document is the on-disk layout of the orders file
type document struct {
	Orders []orders.Order `json:"orders"`
}

// Repo stores the order collection in a single JSON file. Every call reads
// the whole file and every mutation rewrites it, so the file stays the only
// source of truth. One lock serialises mutations; reads share it.
type Repo struct {
	path string
	mu   sync.RWMutex
	now  func() time.Time
}

// New opens the orders file at path, creating it with an empty collection when missing.
func New(path string) (*Repo, error) {
	r := &Repo{path: path, now: time.Now}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(errors.ErrStorage, "[filerepo New] create data folder: %s", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := r.write([]orders.Order{}); err != nil {
			return nil, err
		}
		log.Info().Str("path", path).Msg("Created empty orders file")
	} else if err != nil {
		return nil, errors.Wrapf(errors.ErrStorage, "[filerepo New] stat %s: %s", path, err)
	}

	return r, nil
}

// WithClock replaces the time source used for timestamps.
func (r *Repo) WithClock(now func() time.Time) *Repo {
	r.now = now
	return r
}

// Path returns the backing file
func (r *Repo) Path() string {
	return r.path
}

// List returns every order, most recent first. An unreadable file is logged
// and reported as an empty collection.
func (r *Repo) List() ([]orders.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list, err := r.read()
	if err != nil {
		log.Err(err).Str("path", r.path).Msg("Failed to read orders, returning empty list")
		return []orders.Order{}, nil
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

	list, err := r.read()
	if err != nil {
		return orders.Order{}, err
	}

	list = append([]orders.Order{order}, list...)
	if err := r.write(list); err != nil {
		return orders.Order{}, err
	}
	return order, nil
}

func (r *Repo) Update(id string, patch orders.Patch) (orders.Order, error) {
	if err := patch.Validate(); err != nil {
		return orders.Order{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.read()
	if err != nil {
		return orders.Order{}, err
	}

	idx := indexOf(list, id)
	if idx < 0 {
		return orders.Order{}, errors.Wrapf(errors.ErrNotFound, "[filerepo Update] order %s", id)
	}

	list[idx] = patch.Apply(list[idx], r.now())
	if err := r.write(list); err != nil {
		return orders.Order{}, err
	}
	return list[idx], nil
}

func (r *Repo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.read()
	if err != nil {
		return err
	}

	idx := indexOf(list, id)
	if idx < 0 {
		return errors.Wrapf(errors.ErrNotFound, "[filerepo Delete] order %s", id)
	}

	list = append(list[:idx], list[idx+1:]...)
	return r.write(list)
}

func indexOf(list []orders.Order, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

// read loads the collection. A missing file is an empty collection.
func (r *Repo) read() ([]orders.Order, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return []orders.Order{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(errors.ErrStorage, "[filerepo read] %s: %s", r.path, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(errors.ErrStorage, "[filerepo read] parse %s: %s", r.path, err)
	}
	if doc.Orders == nil {
		doc.Orders = []orders.Order{}
	}
	return doc.Orders, nil
}

// write replaces the file through a temp file + rename so a reader never sees a partial document.
func (r *Repo) write(list []orders.Order) error {
	data, err := json.MarshalIndent(document{Orders: list}, "", "  ")
	if err != nil {
		return errors.Wrapf(errors.ErrStorage, "[filerepo write] encode: %s", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(errors.ErrStorage, "[filerepo write] temp file: %s", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(errors.ErrStorage, "[filerepo write] %s", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errors.Wrapf(errors.ErrStorage, "[filerepo write] sync: %s", err)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(errors.ErrStorage, "[filerepo write] close: %s", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return errors.Wrapf(errors.ErrStorage, "[filerepo write] replace %s: %s", r.path, err)
	}
	return nil
}
