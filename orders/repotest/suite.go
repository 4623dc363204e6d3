// Package repotest holds the behavioural checks every orders.Repo backend must pass.
package repotest

import (
	"sync"
	"testing"
	"time"

	"github.com/nuggetscustoms/site/internal/errors"
	"github.com/nuggetscustoms/site/internal/utils"
	"github.com/nuggetscustoms/site/orders"
	"github.com/stretchr/testify/require"
)

// Clock is a manually advanced time source shared by a repo under test.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Factory builds a fresh, empty repo driven by clock.
type Factory func(t *testing.T, clock *Clock) orders.Repo

// Run executes the suite against repos built by newRepo.
func Run(t *testing.T, newRepo Factory) {
	start := time.Date(2026, 5, 4, 9, 0, 0, 0, time.UTC)

	setup := func(t *testing.T) (orders.Repo, *Clock) {
		t.Helper()
		clock := NewClock(start)
		return newRepo(t, clock), clock
	}

	t.Run("empty on first use", func(t *testing.T) {
		repo, _ := setup(t)
		list, err := repo.List()
		require.NoError(t, err)
		require.NotNil(t, list)
		require.Empty(t, list)
	})

	t.Run("create then list shows newest first", func(t *testing.T) {
		repo, clock := setup(t)

		first, err := repo.Create(orders.NewOrder{Client: "Alice", Title: "Custom badge"})
		require.NoError(t, err)
		clock.Advance(time.Second)
		second, err := repo.Create(orders.NewOrder{Client: "Bob", Title: "Sticker sheet", Status: "Sketching"})
		require.NoError(t, err)
		require.NotEqual(t, first.ID, second.ID)

		list, err := repo.List()
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, second, list[0])
		require.Equal(t, first, list[1])
		require.Equal(t, orders.DefaultStatus, list[1].Status)
		require.Equal(t, "Sketching", list[0].Status)
	})

	t.Run("create stamps the current time", func(t *testing.T) {
		repo, clock := setup(t)

		o, err := repo.Create(orders.NewOrder{Client: "Alice", Title: "Custom badge"})
		require.NoError(t, err)
		require.True(t, o.UpdatedAt.Equal(clock.Now()))
	})

	t.Run("create rejects blank fields without side effect", func(t *testing.T) {
		repo, _ := setup(t)
		_, err := repo.Create(orders.NewOrder{Client: "Alice", Title: "Badge"})
		require.NoError(t, err)

		for _, n := range []orders.NewOrder{
			{Client: "", Title: "Badge"},
			{Client: "  ", Title: "Badge"},
			{Client: "Alice", Title: ""},
			{Client: "Alice", Title: " \t "},
		} {
			_, err := repo.Create(n)
			require.True(t, errors.Is(err, errors.ErrValidation), "%+v", n)
		}

		list, err := repo.List()
		require.NoError(t, err)
		require.Len(t, list, 1)
	})

	t.Run("status update changes only status and timestamp", func(t *testing.T) {
		repo, clock := setup(t)

		o, err := repo.Create(orders.NewOrder{Client: "Alice", Title: "Custom badge"})
		require.NoError(t, err)
		clock.Advance(time.Minute)

		updated, err := repo.Update(o.ID, orders.Patch{Status: utils.Ptr("Done")})
		require.NoError(t, err)
		require.Equal(t, "Done", updated.Status)
		require.True(t, updated.UpdatedAt.After(o.UpdatedAt))

		want := o
		want.Status = "Done"
		want.UpdatedAt = updated.UpdatedAt
		require.Equal(t, want, updated)

		list, err := repo.List()
		require.NoError(t, err)
		require.Equal(t, []orders.Order{want}, list)
	})

	t.Run("update applies several fields", func(t *testing.T) {
		repo, _ := setup(t)

		o, err := repo.Create(orders.NewOrder{Client: "Alice", Title: "Custom badge"})
		require.NoError(t, err)

		updated, err := repo.Update(o.ID, orders.Patch{
			Client: utils.Ptr("Alice B."),
			Title:  utils.Ptr("Custom badge x2"),
		})
		require.NoError(t, err)
		require.Equal(t, "Alice B.", updated.Client)
		require.Equal(t, "Custom badge x2", updated.Title)
		require.Equal(t, orders.DefaultStatus, updated.Status)
	})

	t.Run("update unknown id leaves collection unchanged", func(t *testing.T) {
		repo, _ := setup(t)
		_, err := repo.Create(orders.NewOrder{Client: "Alice", Title: "Badge"})
		require.NoError(t, err)
		before, err := repo.List()
		require.NoError(t, err)

		_, err = repo.Update("order-missing", orders.Patch{Status: utils.Ptr("Done")})
		require.True(t, errors.Is(err, errors.ErrNotFound))

		after, err := repo.List()
		require.NoError(t, err)
		require.Equal(t, before, after)
	})

	t.Run("update rejects blank title", func(t *testing.T) {
		repo, _ := setup(t)
		o, err := repo.Create(orders.NewOrder{Client: "Alice", Title: "Badge"})
		require.NoError(t, err)

		_, err = repo.Update(o.ID, orders.Patch{Title: utils.Ptr(" ")})
		require.True(t, errors.Is(err, errors.ErrValidation))

		list, err := repo.List()
		require.NoError(t, err)
		require.Equal(t, []orders.Order{o}, list)
	})

	t.Run("delete removes exactly one and is not found the second time", func(t *testing.T) {
		repo, _ := setup(t)
		keep, err := repo.Create(orders.NewOrder{Client: "Alice", Title: "Badge"})
		require.NoError(t, err)
		gone, err := repo.Create(orders.NewOrder{Client: "Bob", Title: "Pin"})
		require.NoError(t, err)

		require.NoError(t, repo.Delete(gone.ID))

		list, err := repo.List()
		require.NoError(t, err)
		require.Equal(t, []orders.Order{keep}, list)

		err = repo.Delete(gone.ID)
		require.True(t, errors.Is(err, errors.ErrNotFound))
	})

	t.Run("concurrent creates are all persisted", func(t *testing.T) {
		repo, _ := setup(t)

		const writers = 20
		var wg sync.WaitGroup
		errs := make(chan error, writers)
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := repo.Create(orders.NewOrder{Client: "Client", Title: "Concurrent"})
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			require.NoError(t, err)
		}

		list, err := repo.List()
		require.NoError(t, err)
		require.Len(t, list, writers)

		ids := map[string]bool{}
		for _, o := range list {
			ids[o.ID] = true
		}
		require.Len(t, ids, writers)
	})

	t.Run("badge scenario", func(t *testing.T) {
		repo, clock := setup(t)

		o, err := repo.Create(orders.NewOrder{Client: "Alice", Title: "Custom badge"})
		require.NoError(t, err)
		require.Regexp(t, `^order-\d+-`, o.ID)
		require.Equal(t, "Alice", o.Client)
		require.Equal(t, "Custom badge", o.Title)
		require.Equal(t, "Queued", o.Status)

		clock.Advance(2 * time.Hour)
		shipped, err := repo.Update(o.ID, orders.Patch{Status: utils.Ptr("Shipped")})
		require.NoError(t, err)
		require.Equal(t, "Shipped", shipped.Status)
		require.Equal(t, o.ID, shipped.ID)
		require.True(t, shipped.UpdatedAt.After(o.UpdatedAt))
	})
}
