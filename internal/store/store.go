// Package store owns the durable aggregate of notebooks and their notes.
//
// Every mutation is write-through: the change is applied to a copy of the
// aggregate, persisted through the Backend, and only then made visible.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"inkwell/internal/ids"
	"inkwell/internal/logging"
	"inkwell/internal/types"
)

type Store struct {
	mu      sync.Mutex
	backend Backend
	ids     ids.Generator
	now     func() time.Time
	logger  logging.Logger
	state   types.Snapshot
}

type Option func(*Store)

func WithIDGenerator(gen ids.Generator) Option {
	return func(s *Store) {
		if gen != nil {
			s.ids = gen
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

func WithLogger(logger logging.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Open loads the last persisted aggregate from backend. An empty backend
// yields an empty store.
func Open(ctx context.Context, backend Backend, opts ...Option) (*Store, error) {
	if backend == nil {
		return nil, errors.New("backend is required")
	}
	s := &Store{
		backend: backend,
		ids:     ids.NewTimestampGenerator(nil),
		now:     time.Now,
		logger:  logging.Nop(),
		state:   types.Snapshot{Notebooks: []types.Notebook{}},
	}
	for _, opt := range opts {
		opt(s)
	}
	data, err := backend.Load(ctx)
	switch {
	case errors.Is(err, ErrEmpty):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("load notebooks from %s: %w", backend.Name(), err)
	}
	state, err := Decode(data)
	if err != nil {
		return nil, err
	}
	if err := CheckSnapshot(state); err != nil {
		return nil, fmt.Errorf("load notebooks from %s: %w", backend.Name(), err)
	}
	s.state = state
	s.logger.Debug("store opened", logging.F("backend", backend.Name()), logging.F("notebooks", len(state.Notebooks)))
	return s, nil
}

func (s *Store) Backend() Backend {
	return s.backend
}

func (s *Store) CreateNotebook(ctx context.Context, name string) (*types.Notebook, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "name"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	nb := types.Notebook{ID: s.uniqueNotebookID(), Name: name, Notes: []types.Note{}}
	next.Notebooks = append(next.Notebooks, nb)
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	s.logger.Info("notebook created", logging.F("notebook_id", nb.ID))
	return nb.Clone(), nil
}

// ListNotebooks returns every notebook in insertion order.
func (s *Store) ListNotebooks(ctx context.Context) []*types.Notebook {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*types.Notebook, 0, len(s.state.Notebooks))
	for i := range s.state.Notebooks {
		out = append(out, s.state.Notebooks[i].Clone())
	}
	return out
}

func (s *Store) GetNotebook(ctx context.Context, id string) (*types.Notebook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.state.NotebookIndex(id)
	if idx < 0 {
		return nil, notebookNotFound(id)
	}
	return s.state.Notebooks[idx].Clone(), nil
}

func (s *Store) RenameNotebook(ctx context.Context, id, name string) (*types.Notebook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.state.NotebookIndex(id)
	if idx < 0 {
		return nil, notebookNotFound(id)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &ValidationError{Field: "name"}
	}
	next := s.state.Clone()
	next.Notebooks[idx].Name = name
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return next.Notebooks[idx].Clone(), nil
}

// DeleteNotebook removes the notebook together with all of its notes in a
// single persisted write.
func (s *Store) DeleteNotebook(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.state.NotebookIndex(id)
	if idx < 0 {
		return notebookNotFound(id)
	}
	next := s.state.Clone()
	removed := len(next.Notebooks[idx].Notes)
	next.Notebooks = append(next.Notebooks[:idx], next.Notebooks[idx+1:]...)
	if err := s.commit(ctx, next); err != nil {
		return err
	}
	s.logger.Info("notebook deleted", logging.F("notebook_id", id), logging.F("notes_removed", removed))
	return nil
}

// CreateNote prepends a note to the notebook so lists stay newest first.
func (s *Store) CreateNote(ctx context.Context, notebookID string, input types.NoteInput) (*types.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.state.NotebookIndex(notebookID)
	if idx < 0 {
		return nil, notebookNotFound(notebookID)
	}
	input, err := normalizeNoteInput(input)
	if err != nil {
		return nil, err
	}
	note := types.Note{
		ID:        s.uniqueNoteID(&s.state.Notebooks[idx]),
		Title:     input.Title,
		Text:      input.Text,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}
	next := s.state.Clone()
	nb := &next.Notebooks[idx]
	nb.Notes = append([]types.Note{note}, nb.Notes...)
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	s.logger.Debug("note created", logging.F("notebook_id", notebookID), logging.F("note_id", note.ID))
	out := note
	return &out, nil
}

func (s *Store) ListNotes(ctx context.Context, notebookID string) ([]*types.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.state.NotebookIndex(notebookID)
	if idx < 0 {
		return nil, notebookNotFound(notebookID)
	}
	notes := s.state.Notebooks[idx].Notes
	out := make([]*types.Note, 0, len(notes))
	for i := range notes {
		note := notes[i]
		out = append(out, &note)
	}
	return out, nil
}

// UpdateNote edits title and text in place. CreatedAt and position are kept.
func (s *Store) UpdateNote(ctx context.Context, notebookID, noteID string, input types.NoteInput) (*types.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.state.NotebookIndex(notebookID)
	if idx < 0 {
		return nil, notebookNotFound(notebookID)
	}
	noteIdx := s.state.Notebooks[idx].NoteIndex(noteID)
	if noteIdx < 0 {
		return nil, noteNotFound(noteID)
	}
	input, err := normalizeNoteInput(input)
	if err != nil {
		return nil, err
	}
	next := s.state.Clone()
	note := &next.Notebooks[idx].Notes[noteIdx]
	note.Title = input.Title
	note.Text = input.Text
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	out := *note
	return &out, nil
}

// DeleteNote removes one note and reports how many remain in the notebook.
func (s *Store) DeleteNote(ctx context.Context, notebookID, noteID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.state.NotebookIndex(notebookID)
	if idx < 0 {
		return 0, notebookNotFound(notebookID)
	}
	noteIdx := s.state.Notebooks[idx].NoteIndex(noteID)
	if noteIdx < 0 {
		return 0, noteNotFound(noteID)
	}
	next := s.state.Clone()
	nb := &next.Notebooks[idx]
	nb.Notes = append(nb.Notes[:noteIdx], nb.Notes[noteIdx+1:]...)
	if err := s.commit(ctx, next); err != nil {
		return 0, err
	}
	return len(nb.Notes), nil
}

func (s *Store) Snapshot(ctx context.Context) types.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Replace swaps the whole aggregate, used by import. The snapshot must hold
// the same invariants the store maintains itself.
func (s *Store) Replace(ctx context.Context, snapshot types.Snapshot) error {
	if err := CheckSnapshot(snapshot); err != nil {
		return err
	}
	normalized := snapshot.Clone()
	for i := range normalized.Notebooks {
		for j := range normalized.Notebooks[i].Notes {
			note := &normalized.Notebooks[i].Notes[j]
			note.CreatedAt = note.CreatedAt.UTC().Truncate(time.Millisecond)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.commit(ctx, normalized); err != nil {
		return err
	}
	s.logger.Info("notebooks replaced", logging.F("notebooks", len(normalized.Notebooks)))
	return nil
}

// commit persists next and makes it the visible state. Callers hold s.mu.
func (s *Store) commit(ctx context.Context, next types.Snapshot) error {
	data, err := Encode(next)
	if err != nil {
		return err
	}
	if err := s.backend.Save(ctx, data); err != nil {
		s.logger.Error("persist notebooks failed", logging.F("backend", s.backend.Name()), logging.F("err", err))
		return fmt.Errorf("persist notebooks: %w", err)
	}
	s.state = next
	return nil
}

func (s *Store) uniqueNotebookID() string {
	for {
		id := s.ids.Next()
		if s.state.NotebookIndex(id) < 0 {
			return id
		}
	}
}

func (s *Store) uniqueNoteID(nb *types.Notebook) string {
	for {
		id := s.ids.Next()
		if nb.NoteIndex(id) < 0 {
			return id
		}
	}
}

func normalizeNoteInput(input types.NoteInput) (types.NoteInput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return types.NoteInput{}, &ValidationError{Field: "title"}
	}
	input.Title = strings.TrimSpace(input.Title)
	return input, nil
}
