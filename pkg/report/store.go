/*
Package report provides stores for the reports of cross-validation runs.
*/
package report

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pbanos/grove/pkg/grove"
)

/*
Store is an interface to manage a store
where cross-validation reports can be created
and retrieved.

All it methods take a context that may allow
cancelling the operation (thus forcing the return
of an error) if the implementation allows it.
*/
type Store interface {
	// Create takes a report and stores it for the
	// first time in the store, creating an ID for
	// it and setting it for the report, as well as
	// its CreatedAt time if it is not set. It returns
	// an error if the report cannot be stored.
	Create(ctx context.Context, r *grove.Report) error
	// Get takes an id and returns the report in the
	// store with that id (or nil if it cannot be
	// found) or an error if the store cannot be
	// queried
	Get(ctx context.Context, id string) (*grove.Report, error)
	// List returns the IDs of the reports in the store
	// in creation order, or an error if the store cannot
	// be queried
	List(ctx context.Context) ([]string, error)
	// Close closes the store, freeing any resources in use.
	Close(ctx context.Context) error
}

/*
Prepare sets a new random ID on the report and its CreatedAt time
if it is not set.
*/
func Prepare(r *grove.Report) {
	r.ID = uuid.NewString()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
}

type memoryStore struct {
	reports map[string]*grove.Report
	ids     []string
	lock    *sync.RWMutex
}

// NewMemoryStore returns an implementation
// of Store with the process memory space
// as underlying backend
func NewMemoryStore() Store {
	return &memoryStore{
		reports: make(map[string]*grove.Report),
		lock:    &sync.RWMutex{},
	}
}

func (ms *memoryStore) Create(ctx context.Context, r *grove.Report) error {
	return ms.withLock(ctx, func(ctx context.Context) error {
		taken := true
		for taken {
			if err := ctx.Err(); err != nil {
				return err
			}
			Prepare(r)
			_, taken = ms.reports[r.ID]
		}
		ms.reports[r.ID] = r
		ms.ids = append(ms.ids, r.ID)
		return nil
	})
}

func (ms *memoryStore) Get(ctx context.Context, id string) (*grove.Report, error) {
	var r *grove.Report
	err := ms.withRLock(ctx, func(ctx context.Context) error {
		r = ms.reports[id]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (ms *memoryStore) List(ctx context.Context) ([]string, error) {
	var ids []string
	err := ms.withRLock(ctx, func(ctx context.Context) error {
		ids = append([]string{}, ms.ids...)
		return nil
	})
	return ids, err
}

func (ms *memoryStore) Close(ctx context.Context) error {
	return nil
}

func (ms *memoryStore) withLock(ctx context.Context, f func(ctx context.Context) error) error {
	gotLock := make(chan struct{})
	go func() {
		ms.lock.Lock()
		select {
		case <-ctx.Done():
			ms.lock.Unlock()
		case gotLock <- struct{}{}:
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gotLock:
		defer ms.lock.Unlock()
	}
	return f(ctx)
}

func (ms *memoryStore) withRLock(ctx context.Context, f func(ctx context.Context) error) error {
	gotLock := make(chan struct{})
	go func() {
		ms.lock.RLock()
		select {
		case <-ctx.Done():
			ms.lock.RUnlock()
		case gotLock <- struct{}{}:
		}
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-gotLock:
		defer ms.lock.RUnlock()
	}
	return f(ctx)
}
