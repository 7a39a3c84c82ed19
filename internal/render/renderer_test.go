package render

import (
	"testing"
	"time"

	"inkwell/internal/types"
)

type recordingSelector struct {
	selected []string
}

func (s *recordingSelector) SelectNotebook(id string) {
	s.selected = append(s.selected, id)
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestRenderer(selector Selector) *Renderer {
	return New(selector, WithClock(func() time.Time { return fixedNow }))
}

func notebooks(names ...string) []*types.Notebook {
	out := make([]*types.Notebook, 0, len(names))
	for _, name := range names {
		out = append(out, &types.Notebook{ID: name, Name: name})
	}
	return out
}

func assertSingleActive(t *testing.T, frame Frame) {
	t.Helper()
	active := 0
	for _, item := range frame.Sidebar {
		if item.Active {
			active++
			if item.ID != frame.ActiveID {
				t.Fatalf("active entry %q does not match ActiveID %q", item.ID, frame.ActiveID)
			}
		}
	}
	want := 0
	if frame.ActiveID != "" {
		want = 1
	}
	if active != want {
		t.Fatalf("expected %d active entries, got %d", want, active)
	}
}

func TestOnNotebookCreated(t *testing.T) {
	r := newTestRenderer(nil)
	r.OnNotebooksLoaded(notebooks("a"))
	r.OnNotebookCreated(&types.Notebook{ID: "b", Name: "Work"})

	frame := r.Frame()
	if len(frame.Sidebar) != 2 || frame.Sidebar[1].ID != "b" {
		t.Fatalf("expected appended entry, got %#v", frame.Sidebar)
	}
	if frame.ActiveID != "b" || frame.PanelTitle != "Work" {
		t.Fatalf("expected new notebook active, got %q %q", frame.ActiveID, frame.PanelTitle)
	}
	if !frame.Placeholder || len(frame.Cards) != 0 || !frame.CanCreateNote {
		t.Fatalf("expected empty placeholder with creation enabled, got %#v", frame)
	}
	assertSingleActive(t, frame)
}

func TestOnNotebooksLoadedSelectsFirst(t *testing.T) {
	selector := &recordingSelector{}
	r := newTestRenderer(selector)
	r.OnNotebooksLoaded(notebooks("a", "b"))
	if len(selector.selected) != 1 || selector.selected[0] != "a" {
		t.Fatalf("expected selection flow for first notebook, got %v", selector.selected)
	}
	if !r.Frame().CanCreateNote {
		t.Fatalf("expected note creation enabled")
	}

	empty := newTestRenderer(selector)
	empty.OnNotebooksLoaded(nil)
	frame := empty.Frame()
	if frame.CanCreateNote || frame.ActiveID != "" || len(selector.selected) != 1 {
		t.Fatalf("expected disabled creation and no selection, got %#v", frame)
	}
}

func TestOnNotebookRenamed(t *testing.T) {
	r := newTestRenderer(nil)
	r.OnNotebooksLoaded(notebooks("a", "b"))
	r.OnNotebookRenamed("b", &types.Notebook{ID: "b", Name: "Bee"})
	frame := r.Frame()
	if frame.Sidebar[1].Name != "Bee" || frame.PanelTitle != "a" {
		t.Fatalf("expected label change only, got %#v", frame)
	}
	r.OnNotebookRenamed("a", &types.Notebook{ID: "a", Name: "Ay"})
	if got := r.Frame().PanelTitle; got != "Ay" {
		t.Fatalf("expected active title updated, got %q", got)
	}
}

func TestOnNotebookDeletedActivatesRightSibling(t *testing.T) {
	selector := &recordingSelector{}
	r := newTestRenderer(selector)
	r.OnNotebooksLoaded(notebooks("a", "b", "c"))
	r.OnNotebookSelected(&types.Notebook{ID: "b", Name: "b"})
	selector.selected = nil

	r.OnNotebookDeleted("b")
	if len(selector.selected) != 1 || selector.selected[0] != "c" {
		t.Fatalf("expected selection flow for right sibling, got %v", selector.selected)
	}
	if got := r.Frame().Order(); len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Fatalf("unexpected sidebar: %v", got)
	}
}

func TestOnNotebookDeletedLastClearsPanel(t *testing.T) {
	selector := &recordingSelector{}
	r := newTestRenderer(selector)
	r.OnNotebookCreated(&types.Notebook{ID: "only", Name: "Only"})
	r.OnNoteCreated(&types.Note{ID: "n", Title: "t", CreatedAt: fixedNow})

	r.OnNotebookDeleted("only")
	frame := r.Frame()
	if frame.ActiveID != "" || frame.PanelTitle != "" || len(frame.Cards) != 0 || frame.Placeholder {
		t.Fatalf("expected cleared panel, got %#v", frame)
	}
	if frame.CanCreateNote {
		t.Fatalf("expected note creation disabled")
	}
	if len(selector.selected) != 0 {
		t.Fatalf("expected no selection flow, got %v", selector.selected)
	}
}

func TestOnNotebookDeletedInactiveKeepsPanel(t *testing.T) {
	r := newTestRenderer(nil)
	r.OnNotebooksLoaded(notebooks("a", "b"))
	r.OnNoteCreated(&types.Note{ID: "n", Title: "t"})
	r.OnNotebookDeleted("b")
	frame := r.Frame()
	if frame.ActiveID != "a" || len(frame.Cards) != 1 {
		t.Fatalf("expected active panel untouched, got %#v", frame)
	}
	assertSingleActive(t, frame)
}

func TestNoteProjection(t *testing.T) {
	r := newTestRenderer(nil)
	r.OnNotebookCreated(&types.Notebook{ID: "a", Name: "a"})

	r.OnNoteCreated(&types.Note{ID: "1", Title: "first", CreatedAt: fixedNow.Add(-2 * time.Hour)})
	r.OnNoteCreated(&types.Note{ID: "2", Title: "second", CreatedAt: fixedNow})
	frame := r.Frame()
	if frame.Placeholder {
		t.Fatalf("expected placeholder cleared")
	}
	if len(frame.Cards) != 2 || frame.Cards[0].ID != "2" || frame.Cards[1].ID != "1" {
		t.Fatalf("expected prepend order, got %#v", frame.Cards)
	}

	r.OnNoteUpdated("1", &types.Note{ID: "1", Title: "edited", CreatedAt: fixedNow.Add(-2 * time.Hour)})
	frame = r.Frame()
	if frame.Cards[1].Title != "edited" || frame.Cards[1].Relative != "2 hour ago" {
		t.Fatalf("expected in-place update, got %#v", frame.Cards[1])
	}

	r.OnNoteDeleted("2", 1)
	if r.Frame().Placeholder {
		t.Fatalf("expected no placeholder while notes remain")
	}
	r.OnNoteDeleted("1", 0)
	frame = r.Frame()
	if !frame.Placeholder || len(frame.Cards) != 0 {
		t.Fatalf("expected placeholder after last note, got %#v", frame)
	}
}

func TestOnNotesLoaded(t *testing.T) {
	r := newTestRenderer(nil)
	r.OnNotesLoaded([]*types.Note{{ID: "x"}, {ID: "y"}})
	if frame := r.Frame(); len(frame.Cards) != 2 || frame.Placeholder {
		t.Fatalf("expected full list, got %#v", frame)
	}
	r.OnNotesLoaded(nil)
	if frame := r.Frame(); len(frame.Cards) != 0 || !frame.Placeholder {
		t.Fatalf("expected placeholder, got %#v", frame)
	}
}

func TestFrameIsACopy(t *testing.T) {
	r := newTestRenderer(nil)
	r.OnNotebooksLoaded(notebooks("a"))
	frame := r.Frame()
	frame.Sidebar[0].Name = "mutated"
	if r.Frame().Sidebar[0].Name != "a" {
		t.Fatalf("expected Frame to return a copy")
	}
}
