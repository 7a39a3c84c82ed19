package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"inkwell/internal/store"
)

func newToastTestModel(t *testing.T) (*Model, *store.MemoryBackend, *time.Time) {
	t.Helper()
	ctx := context.Background()
	backend := store.NewMemoryBackend()
	st, err := store.Open(ctx, backend)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	wb := NewWorkbench(st)
	wb.Load(ctx)
	clock := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	m := NewModel(ctx, wb, WithModelClock(func() time.Time { return clock }))
	return m, backend, &clock
}

func TestToastDurationDependsOnLevel(t *testing.T) {
	tests := []struct {
		level toastLevel
		want  time.Duration
	}{
		{toastLevelInfo, 2 * time.Second},
		{toastLevelWarning, 3 * time.Second},
		{toastLevelError, 6 * time.Second},
	}
	for _, tt := range tests {
		m, _, clock := newToastTestModel(t)
		m.showToast(tt.level, "hello")
		if !m.toastActive(clock.Add(tt.want - time.Millisecond)) {
			t.Fatalf("level %d: expected toast active just before %s", tt.level, tt.want)
		}
		if m.toastActive(clock.Add(tt.want)) {
			t.Fatalf("level %d: expected toast expired at %s", tt.level, tt.want)
		}
	}
}

func TestErrorToastIsNotReplacedByInfo(t *testing.T) {
	m, _, clock := newToastTestModel(t)
	m.showErrorToast("save failed")
	m.showInfoToast("note saved")
	if m.toastText != "save failed" {
		t.Fatalf("expected error toast kept, got %q", m.toastText)
	}
	*clock = clock.Add(7 * time.Second)
	m.showInfoToast("note saved")
	if m.toastText != "note saved" || m.toastLevel != toastLevelInfo {
		t.Fatalf("expected info toast after expiry, got %q", m.toastText)
	}
}

func TestReportStoreErrorLevels(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		level toastLevel
		text  string
	}{
		{name: "no notebook", err: ErrNoActiveNotebook, level: toastLevelWarning, text: "select a notebook first"},
		{name: "not found", err: &store.NotFoundError{Kind: "note", ID: "x"}, level: toastLevelWarning, text: "no longer exists"},
		{name: "write", err: errors.New("disk full"), level: toastLevelError, text: "save failed: disk full"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newToastTestModel(t)
			m.reportStoreError("save", tt.err)
			if m.toastLevel != tt.level || !strings.Contains(m.toastText, tt.text) {
				t.Fatalf("got level %d text %q", m.toastLevel, m.toastText)
			}
		})
	}
}

func TestFailedNoteSaveShowsErrorToast(t *testing.T) {
	m, backend, _ := newToastTestModel(t)
	if _, err := m.workbench.CreateNotebook(context.Background(), "Work"); err != nil {
		t.Fatalf("create notebook: %v", err)
	}
	backend.FailSave = errors.New("disk full")

	press(m, "n")
	typeText(m, "T")
	press(m, "ctrl+s")
	if m.modal.IsOpen() {
		t.Fatalf("expected modal closed after a failed write")
	}
	if m.toastLevel != toastLevelError || !strings.Contains(m.toastText, "disk full") {
		t.Fatalf("expected error toast, got level %d %q", m.toastLevel, m.toastText)
	}
	if cards := m.workbench.Frame().Cards; len(cards) != 0 {
		t.Fatalf("expected no card for the failed write, got %#v", cards)
	}
}
