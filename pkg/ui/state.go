package ui

import "github.com/go-ember/ember/pkg/errors"

// stateStore maps widget IDs to their persisted state records. Entries
// are created on first access, mutated in place, and never evicted.
// Each entry remembers the widget kind that created it; a lookup under
// a different kind is a hard error, not a silent rebind.
type stateStore struct {
	entries map[ID]*stateEntry
}

type stateEntry struct {
	kind  string
	value any
}

func newStateStore() *stateStore {
	return &stateStore{entries: make(map[ID]*stateEntry)}
}

// Len returns the number of persisted records.
func (s *stateStore) Len() int {
	return len(s.entries)
}

// widgetState returns the persisted state of the given kind for id,
// creating it with init on first access. A kind mismatch returns a
// StateConflictError and touches nothing.
func widgetState[T any](c *Context, id ID, kind string, init func() *T) (*T, error) {
	entry, ok := c.store.entries[id]
	if !ok {
		v := init()
		c.store.entries[id] = &stateEntry{kind: kind, value: v}
		return v, nil
	}
	if entry.kind != kind {
		return nil, &errors.StateConflictError{
			ID:         uint64(id),
			Registered: entry.kind,
			Requested:  kind,
		}
	}
	return entry.value.(*T), nil
}
