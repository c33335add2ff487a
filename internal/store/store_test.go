package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/syedsmuzakkir/Gym-Portal/internal/config"
	"github.com/syedsmuzakkir/Gym-Portal/internal/db"
	bolt "go.etcd.io/bbolt"
)

type record struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newTestStore(t *testing.T) *db.Store {
	t.Helper()
	cfg := config.Config{DataPath: filepath.Join(t.TempDir(), "test.db")}
	s, err := db.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(s.Close)
	return s
}

func testCollection(s *db.Store) Collection[record] {
	return New(s, "records",
		func(r record) int64 { return r.ID },
		func() []record {
			return []record{{ID: 1, Name: "first"}, {ID: 2, Name: "second"}}
		})
}

func TestLoad_SeedsOnFirstRun(t *testing.T) {
	s := newTestStore(t)
	c := testCollection(s)

	items, err := c.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 seeded records, got %d", len(items))
	}

	// The seed must not be persisted by Load itself.
	err = s.Bolt.View(func(tx *bolt.Tx) error {
		if raw := tx.Bucket(db.CollectionsBucket).Get([]byte("records")); raw != nil {
			t.Fatal("Load persisted the seed fixture")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("View() error: %v", err)
	}
}

func TestSave_RoundTrips(t *testing.T) {
	s := newTestStore(t)
	c := testCollection(s)

	want := []record{{ID: 7, Name: "saved"}}
	if err := c.Save(want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	got, err := c.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 7 || got[0].Name != "saved" {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestSave_NilPersistsEmptyList(t *testing.T) {
	s := newTestStore(t)
	c := testCollection(s)

	if err := c.Save(nil); err != nil {
		t.Fatalf("Save(nil) error: %v", err)
	}
	got, err := c.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	// An explicitly emptied collection must stay empty, not re-seed.
	if len(got) != 0 {
		t.Fatalf("expected empty collection, got %+v", got)
	}
}

func TestLoad_CorruptBlob(t *testing.T) {
	s := newTestStore(t)
	c := testCollection(s)

	err := s.Bolt.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(db.CollectionsBucket).Put([]byte("records"), []byte("{not json"))
	})
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	if _, err := c.Load(); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestMutate_AllocatesMonotonicIDs(t *testing.T) {
	s := newTestStore(t)
	c := testCollection(s)

	add := func(name string) int64 {
		t.Helper()
		var id int64
		err := c.Mutate(func(alloc *Alloc, items []record) ([]record, error) {
			var err error
			id, err = alloc.NextID()
			if err != nil {
				return nil, err
			}
			return append(items, record{ID: id, Name: name}), nil
		})
		if err != nil {
			t.Fatalf("Mutate() error: %v", err)
		}
		return id
	}

	// Seed holds ids 1 and 2, so the counter starts above them.
	if id := add("third"); id != 3 {
		t.Fatalf("expected id 3, got %d", id)
	}

	// Deleting the max record must not cause id reuse.
	err := c.Mutate(func(_ *Alloc, items []record) ([]record, error) {
		return items[:len(items)-1], nil
	})
	if err != nil {
		t.Fatalf("Mutate() delete error: %v", err)
	}
	if id := add("fourth"); id != 4 {
		t.Fatalf("expected id 4 after delete, got %d", id)
	}
}

func TestMutate_NumberSpaceIsIndependent(t *testing.T) {
	s := newTestStore(t)
	c := testCollection(s)

	err := c.Mutate(func(alloc *Alloc, items []record) ([]record, error) {
		id, err := alloc.NextID()
		if err != nil {
			return nil, err
		}
		if id != 3 {
			t.Fatalf("expected id 3, got %d", id)
		}
		n, err := alloc.NextNumber()
		if err != nil {
			return nil, err
		}
		// The number counter shares the floor but advances on its own.
		if n != 3 {
			t.Fatalf("expected number 3, got %d", n)
		}
		n, err = alloc.NextNumber()
		if err != nil {
			return nil, err
		}
		if n != 4 {
			t.Fatalf("expected number 4, got %d", n)
		}
		return items, nil
	})
	if err != nil {
		t.Fatalf("Mutate() error: %v", err)
	}
}

func TestMutate_ErrorRollsBack(t *testing.T) {
	s := newTestStore(t)
	c := testCollection(s)

	boom := errors.New("boom")
	err := c.Mutate(func(alloc *Alloc, items []record) ([]record, error) {
		if _, err := alloc.NextID(); err != nil {
			return nil, err
		}
		return nil, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected mutation error, got %v", err)
	}

	// The failed allocation must not have advanced the counter.
	err = c.Mutate(func(alloc *Alloc, items []record) ([]record, error) {
		id, err := alloc.NextID()
		if err != nil {
			return nil, err
		}
		if id != 3 {
			t.Fatalf("expected id 3 after rollback, got %d", id)
		}
		return items, nil
	})
	if err != nil {
		t.Fatalf("Mutate() error: %v", err)
	}
}
