package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestBackendsReportEmpty(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	bolt, err := NewBboltBackend(filepath.Join(dir, "storage.db"))
	if err != nil {
		t.Fatalf("NewBboltBackend: %v", err)
	}
	defer bolt.Close()

	for _, backend := range []Backend{NewMemoryBackend(), NewFileBackend(filepath.Join(dir, "nb.json")), bolt} {
		if _, err := backend.Load(ctx); !errors.Is(err, ErrEmpty) {
			t.Fatalf("%s: expected ErrEmpty, got %v", backend.Name(), err)
		}
		if err := backend.Save(ctx, []byte(`{"notebooks":[]}`)); err != nil {
			t.Fatalf("%s: save: %v", backend.Name(), err)
		}
		data, err := backend.Load(ctx)
		if err != nil || string(data) != `{"notebooks":[]}` {
			t.Fatalf("%s: unexpected load %q err=%v", backend.Name(), data, err)
		}
	}
}

func TestFileBackendLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	backend := NewFileBackend(filepath.Join(dir, "nb.json"))
	for i := 0; i < 3; i++ {
		if err := backend.Save(context.Background(), []byte(`{}`)); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "nb.json" {
		t.Fatalf("unexpected files: %v", entries)
	}
}

func TestOpenBackend(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		backend string
		path    string
		want    string
		wantErr bool
	}{
		{backend: "", path: filepath.Join(dir, "a.db"), want: BackendBbolt},
		{backend: "file", path: filepath.Join(dir, "a.json"), want: BackendFile},
		{backend: "memory", want: BackendMemory},
		{backend: "bbolt", wantErr: true},
		{backend: "postgres", path: "x", wantErr: true},
	}
	for _, tc := range cases {
		backend, err := OpenBackend(tc.backend, tc.path)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error", tc.backend)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: %v", tc.backend, err)
		}
		if backend.Name() != tc.want {
			t.Fatalf("%q: got backend %s", tc.backend, backend.Name())
		}
		_ = backend.Close()
	}
}

func TestSeedFromFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	legacy := filepath.Join(dir, "notebooks.json")
	content := `{"notebooks":[{"id":"1","name":"Seed","notes":[{"id":"n","title":"t","text":"","createdAt":5}]}]}`
	if err := os.WriteFile(legacy, []byte(content), 0o600); err != nil {
		t.Fatalf("write legacy: %v", err)
	}
	dst, err := NewBboltBackend(filepath.Join(dir, "storage.db"))
	if err != nil {
		t.Fatalf("NewBboltBackend: %v", err)
	}
	defer dst.Close()

	seeded, err := SeedFromFile(ctx, dst, legacy)
	if err != nil || !seeded {
		t.Fatalf("expected seed, got seeded=%v err=%v", seeded, err)
	}
	s, err := Open(ctx, dst)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	list := s.ListNotebooks(ctx)
	if len(list) != 1 || list[0].Name != "Seed" || len(list[0].Notes) != 1 {
		t.Fatalf("unexpected seeded state: %#v", list)
	}

	seeded, err = SeedFromFile(ctx, dst, legacy)
	if err != nil || seeded {
		t.Fatalf("expected no second seed, got seeded=%v err=%v", seeded, err)
	}
	if seeded, err := SeedFromFile(ctx, NewMemoryBackend(), filepath.Join(dir, "missing.json")); err != nil || seeded {
		t.Fatalf("expected missing legacy file to be ignored, got seeded=%v err=%v", seeded, err)
	}
}
