package app

import (
	"context"
	"errors"

	"inkwell/internal/logging"
	"inkwell/internal/render"
	"inkwell/internal/selection"
	"inkwell/internal/store"
	"inkwell/internal/types"
)

var ErrNoActiveNotebook = errors.New("no active notebook")

// Workbench is the event glue: each user action runs the store mutation,
// forwards the result to the renderer and then updates the selection.
type Workbench struct {
	store    *store.Store
	renderer *render.Renderer
	tracker  selection.Tracker
	logger   logging.Logger
}

type WorkbenchOption func(*Workbench)

func WithWorkbenchLogger(logger logging.Logger) WorkbenchOption {
	return func(w *Workbench) {
		if logger != nil {
			w.logger = logger
		}
	}
}

func WithRenderer(renderer *render.Renderer) WorkbenchOption {
	return func(w *Workbench) {
		if renderer != nil {
			w.renderer = renderer
		}
	}
}

func NewWorkbench(st *store.Store, opts ...WorkbenchOption) *Workbench {
	w := &Workbench{
		store:   st,
		tracker: selection.None(),
		logger:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.renderer == nil {
		w.renderer = render.New(nil)
	}
	w.renderer.SetSelector(render.SelectorFunc(w.selectFromRenderer))
	return w
}

func (w *Workbench) Tracker() selection.Tracker {
	return w.tracker
}

func (w *Workbench) Frame() render.Frame {
	return w.renderer.Frame()
}

func (w *Workbench) Refresh() {
	w.renderer.Refresh()
}

// Load projects the persisted notebooks and selects the first one.
func (w *Workbench) Load(ctx context.Context) {
	w.tracker = selection.None()
	w.renderer.OnNotebooksLoaded(w.store.ListNotebooks(ctx))
}

func (w *Workbench) SelectNotebook(ctx context.Context, id string) error {
	nb, err := w.store.GetNotebook(ctx, id)
	if err != nil {
		return w.fault("select notebook", err)
	}
	notes, err := w.store.ListNotes(ctx, id)
	if err != nil {
		return w.fault("select notebook", err)
	}
	w.renderer.OnNotebookSelected(nb)
	w.renderer.OnNotesLoaded(notes)
	w.tracker = w.tracker.Activate(nb.ID)
	return nil
}

// selectFromRenderer runs the selection flow the renderer triggers after a
// load or a delete. The store reads it performs never block.
func (w *Workbench) selectFromRenderer(id string) {
	if err := w.SelectNotebook(context.Background(), id); err != nil {
		w.tracker = w.tracker.Clear()
	}
}

func (w *Workbench) CreateNotebook(ctx context.Context, name string) (*types.Notebook, error) {
	nb, err := w.store.CreateNotebook(ctx, name)
	if err != nil {
		return nil, w.fault("create notebook", err)
	}
	w.renderer.OnNotebookCreated(nb)
	w.tracker = w.tracker.Activate(nb.ID)
	return nb, nil
}

func (w *Workbench) RenameNotebook(ctx context.Context, id, name string) (*types.Notebook, error) {
	nb, err := w.store.RenameNotebook(ctx, id, name)
	if err != nil {
		return nil, w.fault("rename notebook", err)
	}
	w.renderer.OnNotebookRenamed(id, nb)
	return nb, nil
}

func (w *Workbench) DeleteNotebook(ctx context.Context, id string) error {
	order := w.renderer.Frame().Order()
	if err := w.store.DeleteNotebook(ctx, id); err != nil {
		return w.fault("delete notebook", err)
	}
	// The renderer may already have moved the selection to a sibling, in
	// which case AfterDelete is a no-op.
	w.renderer.OnNotebookDeleted(id)
	w.tracker = w.tracker.AfterDelete(order, id)
	w.followFrame()
	return nil
}

// followFrame realigns the tracker with the projected selection. They only
// diverge when the selection flow failed part way through.
func (w *Workbench) followFrame() {
	active := w.renderer.Frame().ActiveID
	current, _ := w.tracker.Current()
	if current == active {
		return
	}
	w.logger.Warn("tracker realigned to frame", logging.F("tracker", current), logging.F("frame", active))
	if active == "" {
		w.tracker = w.tracker.Clear()
		return
	}
	w.tracker = w.tracker.Activate(active)
}

func (w *Workbench) CreateNote(ctx context.Context, input types.NoteInput) (*types.Note, error) {
	notebookID, ok := w.tracker.Current()
	if !ok {
		return nil, ErrNoActiveNotebook
	}
	note, err := w.store.CreateNote(ctx, notebookID, input)
	if err != nil {
		return nil, w.fault("create note", err)
	}
	w.renderer.OnNoteCreated(note)
	return note, nil
}

func (w *Workbench) UpdateNote(ctx context.Context, noteID string, input types.NoteInput) (*types.Note, error) {
	notebookID, ok := w.tracker.Current()
	if !ok {
		return nil, ErrNoActiveNotebook
	}
	note, err := w.store.UpdateNote(ctx, notebookID, noteID, input)
	if err != nil {
		return nil, w.fault("update note", err)
	}
	w.renderer.OnNoteUpdated(noteID, note)
	return note, nil
}

func (w *Workbench) DeleteNote(ctx context.Context, noteID string) (int, error) {
	notebookID, ok := w.tracker.Current()
	if !ok {
		return 0, ErrNoActiveNotebook
	}
	remaining, err := w.store.DeleteNote(ctx, notebookID, noteID)
	if err != nil {
		return 0, w.fault("delete note", err)
	}
	w.renderer.OnNoteDeleted(noteID, remaining)
	return remaining, nil
}

// fault logs a not-found as a UI/store desync. Validation errors are left to
// the caller for inline display.
func (w *Workbench) fault(op string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		w.logger.Error("selection out of sync with store", logging.F("op", op), logging.F("err", err))
	}
	return err
}
