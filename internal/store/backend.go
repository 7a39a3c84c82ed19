package store

import (
	"context"
	"errors"
	"strings"
	"sync"
)

const (
	BackendBbolt  = "bbolt"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Backend holds the single serialized blob for the aggregate.
type Backend interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Name() string
	Close() error
}

// OpenBackend resolves a backend by name. path is the bbolt database for
// "bbolt" and the JSON document for "file"; "memory" ignores it.
func OpenBackend(backend, path string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendBbolt:
		if strings.TrimSpace(path) == "" {
			return nil, errors.New("db path is required for bbolt backend")
		}
		return NewBboltBackend(path)
	case BackendFile:
		if strings.TrimSpace(path) == "" {
			return nil, errors.New("file path is required for file backend")
		}
		return NewFileBackend(path), nil
	case BackendMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, errors.New("unsupported storage backend: " + backend)
	}
}

type MemoryBackend struct {
	mu   sync.Mutex
	data []byte
	// FailSave makes the next Save calls fail; used to exercise write-through.
	FailSave error
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Load(ctx context.Context) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.data == nil {
		return nil, ErrEmpty
	}
	return append([]byte(nil), b.data...), nil
}

func (b *MemoryBackend) Save(ctx context.Context, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.FailSave != nil {
		return b.FailSave
	}
	b.data = append([]byte(nil), data...)
	return nil
}

func (b *MemoryBackend) Name() string {
	return BackendMemory
}

func (b *MemoryBackend) Close() error {
	return nil
}
