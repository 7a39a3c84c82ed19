package store

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"inkwell/internal/types"
)

func TestEncodeMatchesPersistedSchema(t *testing.T) {
	snapshot := types.Snapshot{Notebooks: []types.Notebook{{
		ID:   "1",
		Name: "Work",
		Notes: []types.Note{
			{ID: "n2", Title: "newer", Text: "b", CreatedAt: time.UnixMilli(2000)},
			{ID: "n1", Title: "older", Text: "a", CreatedAt: time.UnixMilli(1000)},
		},
	}, {ID: "2", Name: "Empty"}}}

	data, err := Encode(snapshot)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var raw map[string][]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	notebooks := raw["notebooks"]
	if len(notebooks) != 2 {
		t.Fatalf("expected 2 notebooks, got %d", len(notebooks))
	}
	notes, ok := notebooks[0]["notes"].([]any)
	if !ok || len(notes) != 2 {
		t.Fatalf("expected notes array, got %#v", notebooks[0]["notes"])
	}
	first := notes[0].(map[string]any)
	if first["id"] != "n2" || first["createdAt"] != float64(2000) {
		t.Fatalf("expected newest first with ms epoch, got %#v", first)
	}
	if empty, ok := notebooks[1]["notes"].([]any); !ok || len(empty) != 0 {
		t.Fatalf("expected empty notes array, got %#v", notebooks[1]["notes"])
	}

	back, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if back.Notebooks[0].Notes[1].ID != "n1" || back.Notebooks[1].Notes == nil {
		t.Fatalf("unexpected decode: %#v", back)
	}
}

func TestDecodeEmptyAndInvalid(t *testing.T) {
	snap, err := Decode([]byte("  "))
	if err != nil || snap.Notebooks == nil || len(snap.Notebooks) != 0 {
		t.Fatalf("expected empty snapshot, got %#v err=%v", snap, err)
	}
	if _, err := Decode([]byte("{not json")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestCheckSnapshotReportsAllProblems(t *testing.T) {
	err := CheckSnapshot(types.Snapshot{Notebooks: []types.Notebook{
		{ID: "a", Name: ""},
		{ID: "b", Name: "B", Notes: []types.Note{{ID: "x", Title: "t"}, {ID: "x", Title: ""}}},
	}})
	if err == nil {
		t.Fatalf("expected error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	for _, want := range []string{"notebook a name", "note id x is duplicated", "note x title"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected %q in %q", want, err.Error())
		}
	}
}

