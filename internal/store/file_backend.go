package store

import (
	"context"
	"errors"
	"os"
	"sync"
)

// FileBackend keeps the aggregate in one JSON document, replaced atomically
// on every save.
type FileBackend struct {
	path string
	mu   sync.Mutex
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (b *FileBackend) Load(ctx context.Context) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := os.ReadFile(b.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrEmpty
		}
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}
	return data, nil
}

func (b *FileBackend) Save(ctx context.Context, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return writeFileAtomic(b.path, data)
}

func (b *FileBackend) Name() string {
	return BackendFile
}

func (b *FileBackend) Close() error {
	return nil
}

func (b *FileBackend) Path() string {
	return b.path
}
