package store

import (
	"context"
	"errors"
	"os"
)

// SeedFromFile copies a legacy JSON document into dst when dst has never
// been written. Returns true when data was copied.
func SeedFromFile(ctx context.Context, dst Backend, path string) (bool, error) {
	if dst == nil || dst.Name() == BackendFile || path == "" {
		return false, nil
	}
	if _, err := dst.Load(ctx); err == nil {
		return false, nil
	} else if !errors.Is(err, ErrEmpty) {
		return false, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	snapshot, err := Decode(data)
	if err != nil {
		return false, err
	}
	if err := CheckSnapshot(snapshot); err != nil {
		return false, err
	}
	encoded, err := Encode(snapshot)
	if err != nil {
		return false, err
	}
	if err := dst.Save(ctx, encoded); err != nil {
		return false, err
	}
	return true, nil
}
