package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestSnapshotCloneIsDeep(t *testing.T) {
	src := Snapshot{Notebooks: []Notebook{{ID: "a", Name: "A", Notes: []Note{{ID: "n1", Title: "one"}}}}}
	copy := src.Clone()
	copy.Notebooks[0].Name = "changed"
	copy.Notebooks[0].Notes[0].Title = "changed"
	if src.Notebooks[0].Name != "A" || src.Notebooks[0].Notes[0].Title != "one" {
		t.Fatalf("expected clone semantics, got %#v", src)
	}
}

func TestSnapshotLookups(t *testing.T) {
	snap := Snapshot{Notebooks: []Notebook{{ID: "a"}, {ID: "b", Notes: []Note{{ID: "x"}, {ID: "y"}}}}}
	if got := snap.NotebookIndex("b"); got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
	if got := snap.NotebookIndex("missing"); got != -1 {
		t.Fatalf("expected -1, got %d", got)
	}
	if got := snap.Notebooks[1].NoteIndex("y"); got != 1 {
		t.Fatalf("expected note index 1, got %d", got)
	}
	ids := snap.NotebookIDs()
	if len(ids) != 2 || ids[0] != "a" || ids[1] != "b" {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestNoteJSONUsesEpochMillis(t *testing.T) {
	note := Note{ID: "n1", Title: "T", Text: "B", CreatedAt: time.UnixMilli(1700000000123).UTC()}
	data, err := json.Marshal(note)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":"n1","title":"T","text":"B","createdAt":1700000000123}`
	if string(data) != want {
		t.Fatalf("unexpected json: %s", data)
	}
	var back Note
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.CreatedAt.Equal(note.CreatedAt) || back.ID != note.ID || back.Title != note.Title || back.Text != note.Text {
		t.Fatalf("round trip mismatch: %#v vs %#v", back, note)
	}
}
