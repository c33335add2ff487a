package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/syedsmuzakkir/Gym-Portal/internal/config"
	bolt "go.etcd.io/bbolt"
)

// Bucket names. Collections holds one JSON array per collection name,
// Sequences holds one big-endian uint64 counter per sequence name.
var (
	CollectionsBucket = []byte("collections")
	SequencesBucket   = []byte("sequences")
)

// Store wraps the bbolt database file that backs every collection.
type Store struct {
	Bolt *bolt.DB
}

// New opens (creating if needed) the data file and its buckets.
func New(ctx context.Context, cfg config.Config) (*Store, error) {
	if dir := filepath.Dir(cfg.DataPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	opts := *bolt.DefaultOptions
	opts.Timeout = 5 * time.Second
	b, err := bolt.Open(cfg.DataPath, 0o600, &opts)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}

	err = b.Update(func(tx *bolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(CollectionsBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(SequencesBucket)
		return err
	})
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("init buckets: %w", err)
	}

	return &Store{Bolt: b}, nil
}

func (s *Store) Close() {
	if s.Bolt != nil {
		_ = s.Bolt.Close()
	}
}

// Health checks that the data file is still readable.
func (s *Store) Health(ctx context.Context) error {
	return s.Bolt.View(func(tx *bolt.Tx) error {
		if tx.Bucket(CollectionsBucket) == nil {
			return fmt.Errorf("collections bucket missing")
		}
		return nil
	})
}
