// Package stores owns the in-process cache of each entity list and mediates
// every mutation through the gateway. Reads fall back to seed data so the
// surface is never empty; writes propagate their failures and the cache is
// reconciled from the row the backend returns.
package stores

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"renthub/internal/gateway"
)

// Resource is the shared store implementation: a mutex-guarded list of view
// models over one backend table, with wire↔view conversion at the edges.
type Resource[W, V any] struct {
	table    *gateway.Table[W]
	fromWire func(W) V
	toWire   func(V) W
	idOf     func(V) int64
	seeds    func() []V
	log      *zap.Logger

	mu     sync.RWMutex
	items  []V
	seeded bool
}

func NewResource[W, V any](
	table *gateway.Table[W],
	fromWire func(W) V,
	toWire func(V) W,
	idOf func(V) int64,
	seeds func() []V,
	log *zap.Logger,
) *Resource[W, V] {
	return &Resource[W, V]{
		table:    table,
		fromWire: fromWire,
		toWire:   toWire,
		idOf:     idOf,
		seeds:    seeds,
		log:      log,
	}
}

// Load fetches the full list once. Fetch failures are logged and swallowed;
// the seed list stands in for an error or an empty table, so initial reads
// never surface an error to the caller.
func (r *Resource[W, V]) Load(ctx context.Context) {
	rows, _, err := r.table.List(ctx, gateway.SelectOptions{OrderBy: "created_at", Desc: true})
	if err != nil {
		r.log.Warn("list fetch failed, using seed data",
			zap.String("table", r.table.Name()), zap.Error(err))
		r.replace(r.seeds(), true)
		return
	}
	if len(rows) == 0 {
		r.log.Info("table empty, using seed data", zap.String("table", r.table.Name()))
		r.replace(r.seeds(), true)
		return
	}

	items := make([]V, 0, len(rows))
	for _, w := range rows {
		items = append(items, r.fromWire(w))
	}
	r.replace(items, false)
}

func (r *Resource[W, V]) replace(items []V, seeded bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = items
	r.seeded = seeded
}

// Seeded reports whether the current cache is fallback data.
func (r *Resource[W, V]) Seeded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.seeded
}

// List returns a snapshot copy of the cached list.
func (r *Resource[W, V]) List() []V {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]V, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Resource[W, V]) Get(id int64) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if r.idOf(item) == id {
			return item, true
		}
	}
	var zero V
	return zero, false
}

// Add inserts through the gateway and prepends the row the backend returned,
// so the cache carries the server-assigned identifier.
func (r *Resource[W, V]) Add(ctx context.Context, v V) (V, error) {
	var zero V
	saved, err := r.table.Insert(ctx, r.toWire(v))
	if err != nil {
		return zero, err
	}

	item := r.fromWire(saved)
	r.mu.Lock()
	r.items = append([]V{item}, r.items...)
	r.mu.Unlock()
	return item, nil
}

// Update replaces the matching cached record with the backend's returned row.
// On failure the cache is left as it was; the error surfaces to the caller.
func (r *Resource[W, V]) Update(ctx context.Context, id int64, v V) (V, error) {
	var zero V
	saved, err := r.table.Update(ctx, id, r.toWire(v))
	if err != nil {
		return zero, err
	}

	item := r.fromWire(saved)
	r.mu.Lock()
	for i := range r.items {
		if r.idOf(r.items[i]) == id {
			r.items[i] = item
			break
		}
	}
	r.mu.Unlock()
	return item, nil
}

func (r *Resource[W, V]) Remove(ctx context.Context, id int64) error {
	if err := r.table.Delete(ctx, id); err != nil {
		return err
	}

	r.mu.Lock()
	kept := r.items[:0]
	for _, item := range r.items {
		if r.idOf(item) != id {
			kept = append(kept, item)
		}
	}
	r.items = kept
	r.mu.Unlock()
	return nil
}

func (r *Resource[W, V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
