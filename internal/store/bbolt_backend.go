package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketInkwell = []byte("inkwell")
	keyNotebooks  = []byte("notebooks")
)

type BboltBackend struct {
	db *bolt.DB
}

func NewBboltBackend(path string) (*BboltBackend, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("backend db path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, err
	}
	if err := initBboltSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &BboltBackend{db: db}, nil
}

func initBboltSchema(db *bolt.DB) error {
	return db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketInkwell)
		return err
	})
}

func (b *BboltBackend) Load(ctx context.Context) ([]byte, error) {
	var out []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketInkwell)
		if bucket == nil {
			return ErrEmpty
		}
		raw := bucket.Get(keyNotebooks)
		if raw == nil {
			return ErrEmpty
		}
		// bbolt values are only valid inside the transaction.
		out = append([]byte(nil), raw...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (b *BboltBackend) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists(bucketInkwell)
		if err != nil {
			return err
		}
		return bucket.Put(keyNotebooks, data)
	})
}

func (b *BboltBackend) Name() string {
	return BackendBbolt
}

func (b *BboltBackend) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}
