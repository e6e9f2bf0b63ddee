// ABOUTME: Generic collection-plus-focus cache core shared by entity stores.
// ABOUTME: Holds items, the focused entity, counts, and per-family statuses.
package store

import "sync"

// cache is the shared state container behind every entity store: the
// collection, the focused ("current") entity, the server-reported total
// count, and one Op per operation family. Mutations happen only when a
// transport call returns, under the lock; between issuing a request and
// its resolution readers see the pre-call state. No ordering is enforced
// across concurrent calls in the same family: whichever resolves last
// overwrites, so a slow stale response can clobber a fresher one.
type cache[E any] struct {
	mu         sync.RWMutex
	items      []E
	current    *E
	totalCount int

	collectionOp Op
	currentOp    Op
	statsOp      Op

	id func(*E) int64
}

func newCache[E any](id func(*E) int64) *cache[E] {
	return &cache[E]{id: id}
}

// begin marks the start of a call in a family: loading, error cleared.
func (c *cache[E]) begin(op *Op) {
	c.mu.Lock()
	op.Status = StatusLoading
	op.Err = ""
	c.mu.Unlock()
}

// fail records a failure without touching the collection.
func (c *cache[E]) fail(op *Op, msg string) {
	c.mu.Lock()
	op.Status = StatusFailed
	op.Err = msg
	c.mu.Unlock()
}

func (c *cache[E]) succeed(op *Op) {
	op.Status = StatusSucceeded
	op.Err = ""
}

// replaceAll overwrites the whole collection with the server result set.
// An empty result clears the collection rather than leaving stale entries.
func (c *cache[E]) replaceAll(items []E, total int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = items
	c.totalCount = total
	c.succeed(&c.collectionOp)
}

// setCurrent focuses an entity and upserts it into the collection:
// replaced in place when present by id, appended otherwise. The rest of
// the collection is never removed or reordered.
func (c *cache[E]) setCurrent(item *E) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = item
	c.upsertLocked(*item)
	c.succeed(&c.currentOp)
}

// append adds a freshly created entity to the end of the collection.
func (c *cache[E]) append(item E) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	c.succeed(&c.collectionOp)
}

// replace swaps in the server's full updated representation. Absent ids
// are upserted (the server round-trip succeeded, so the entity exists).
// The focused entity follows when it has the same id.
func (c *cache[E]) replace(item E) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.upsertLocked(item)
	if c.current != nil && c.id(c.current) == c.id(&item) {
		copied := item
		c.current = &copied
	}
	c.succeed(&c.collectionOp)
}

// remove drops an entity and clears the focus if it pointed at the id.
// Removing an absent id is a no-op, not an error.
func (c *cache[E]) remove(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	for _, item := range c.items {
		if c.id(&item) != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	if c.current != nil && c.id(c.current) == id {
		c.current = nil
	}
	c.succeed(&c.collectionOp)
}

func (c *cache[E]) upsertLocked(item E) {
	id := c.id(&item)
	for i := range c.items {
		if c.id(&c.items[i]) == id {
			c.items[i] = item
			return
		}
	}
	c.items = append(c.items, item)
}

// patch applies fn to the cached entity with the given id, and to the
// focused entity when it matches. Used for nested-collection edits
// (links, images, session exercises) after a successful server call.
func (c *cache[E]) patch(id int64, fn func(*E)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.id(&c.items[i]) == id {
			fn(&c.items[i])
			break
		}
	}
	if c.current != nil && c.id(c.current) == id {
		fn(c.current)
	}
	c.succeed(&c.collectionOp)
}

// patchAll applies fn to every cached entity and the focused entity.
// Used when the server identifies the nested record only by its own id.
func (c *cache[E]) patchAll(fn func(*E)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		fn(&c.items[i])
	}
	if c.current != nil {
		fn(c.current)
	}
	c.succeed(&c.collectionOp)
}

// Items returns a copy of the current collection snapshot.
func (c *cache[E]) Items() []E {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]E, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns a copy of the cached entity with the given id.
func (c *cache[E]) Get(id int64) (E, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.items {
		if c.id(&c.items[i]) == id {
			return c.items[i], true
		}
	}
	var zero E
	return zero, false
}

// Current returns a copy of the focused entity, or nil when none is set.
func (c *cache[E]) Current() *E {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.current == nil {
		return nil
	}
	copied := *c.current
	return &copied
}

// TotalCount returns the server-reported total from the last FetchAll.
func (c *cache[E]) TotalCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.totalCount
}

// Len returns the number of cached entities.
func (c *cache[E]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// CollectionOp is the status pair for fetchAll/create/update/delete.
func (c *cache[E]) CollectionOp() Op {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.collectionOp
}

// CurrentOp is the status pair for fetchOne.
func (c *cache[E]) CurrentOp() Op {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentOp
}

// StatsOp is the status pair for stats fetches, on stores that have them.
func (c *cache[E]) StatsOp() Op {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.statsOp
}
