// Package store implements the entity store shared by every repository:
// one JSON blob per collection, written whole on every change, seeded from
// a fixture on first run. Identifier allocation is a persisted monotonic
// counter per collection, never derived from record contents.
package store

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/syedsmuzakkir/Gym-Portal/internal/db"
	bolt "go.etcd.io/bbolt"
)

// ErrCorrupt reports a persisted blob that no longer parses. Callers must
// surface it; the store never replaces a corrupt blob with the seed.
var ErrCorrupt = errors.New("corrupt collection blob")

// Collection is a typed view over one persisted collection blob.
type Collection[T any] struct {
	db   *db.Store
	name string
	id   func(T) int64
	seed func() []T
}

// New binds a collection name to its record type. id extracts the numeric
// record id (used to initialize counters); seed builds the first-run fixture.
func New[T any](s *db.Store, name string, id func(T) int64, seed func() []T) Collection[T] {
	return Collection[T]{db: s, name: name, id: id, seed: seed}
}

func (c Collection[T]) Name() string { return c.name }

// Load returns the persisted collection, or the seed fixture if nothing has
// ever been saved. The seed is not persisted by Load itself.
func (c Collection[T]) Load() ([]T, error) {
	var items []T
	err := c.db.Bolt.View(func(tx *bolt.Tx) error {
		var err error
		items, err = c.loadTx(tx)
		return err
	})
	return items, err
}

// Save overwrites the persisted blob with items.
func (c Collection[T]) Save(items []T) error {
	return c.db.Bolt.Update(func(tx *bolt.Tx) error {
		return c.saveTx(tx, items)
	})
}

// Mutate runs fn against the current records inside a single write
// transaction and persists whatever fn returns. The Alloc passed to fn
// draws ids from the collection's counter within the same transaction, so
// a mutation and its allocations commit or roll back together.
func (c Collection[T]) Mutate(fn func(alloc *Alloc, items []T) ([]T, error)) error {
	return c.db.Bolt.Update(func(tx *bolt.Tx) error {
		items, err := c.loadTx(tx)
		if err != nil {
			return err
		}
		maxID := int64(0)
		for _, it := range items {
			if id := c.id(it); id > maxID {
				maxID = id
			}
		}
		alloc := &Alloc{bucket: tx.Bucket(db.SequencesBucket), name: c.name, floor: maxID}
		out, err := fn(alloc, items)
		if err != nil {
			return err
		}
		return c.saveTx(tx, out)
	})
}

func (c Collection[T]) loadTx(tx *bolt.Tx) ([]T, error) {
	raw := tx.Bucket(db.CollectionsBucket).Get([]byte(c.name))
	if raw == nil {
		if c.seed == nil {
			return nil, nil
		}
		return c.seed(), nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("collection %q: %w: %v", c.name, ErrCorrupt, err)
	}
	return items, nil
}

func (c Collection[T]) saveTx(tx *bolt.Tx, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("collection %q: marshal: %w", c.name, err)
	}
	return tx.Bucket(db.CollectionsBucket).Put([]byte(c.name), raw)
}

// Alloc hands out identifiers from persisted counters. A counter that has
// never been touched starts at the collection's current maximum, so seeded
// fixtures and counters always agree.
type Alloc struct {
	bucket *bolt.Bucket
	name   string
	floor  int64
}

// NextID returns the next numeric record id for the collection.
func (a *Alloc) NextID() (int64, error) {
	return a.next(a.name)
}

// NextNumber returns the next value in the collection's document-number
// space (invoice numbers, transaction ids, link ids). It advances
// independently of NextID so deleted records never shift document numbers.
func (a *Alloc) NextNumber() (int64, error) {
	return a.next(a.name + ":number")
}

func (a *Alloc) next(key string) (int64, error) {
	cur := a.floor
	if raw := a.bucket.Get([]byte(key)); raw != nil {
		cur = int64(binary.BigEndian.Uint64(raw))
	}
	cur++
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(cur))
	if err := a.bucket.Put([]byte(key), buf); err != nil {
		return 0, fmt.Errorf("sequence %q: %w", key, err)
	}
	return cur, nil
}
