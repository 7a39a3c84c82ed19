package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"inkwell/internal/types"
)

// Encode serializes the aggregate in the persisted schema. Notes keep their
// newest-first order.
func Encode(snapshot types.Snapshot) ([]byte, error) {
	if snapshot.Notebooks == nil {
		snapshot.Notebooks = []types.Notebook{}
	}
	for i := range snapshot.Notebooks {
		if snapshot.Notebooks[i].Notes == nil {
			snapshot.Notebooks[i].Notes = []types.Note{}
		}
	}
	return json.MarshalIndent(snapshot, "", "  ")
}

func Decode(data []byte) (types.Snapshot, error) {
	var snapshot types.Snapshot
	if len(strings.TrimSpace(string(data))) == 0 {
		return types.Snapshot{Notebooks: []types.Notebook{}}, nil
	}
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return types.Snapshot{}, fmt.Errorf("decode notebooks: %w", err)
	}
	if snapshot.Notebooks == nil {
		snapshot.Notebooks = []types.Notebook{}
	}
	for i := range snapshot.Notebooks {
		if snapshot.Notebooks[i].Notes == nil {
			snapshot.Notebooks[i].Notes = []types.Note{}
		}
	}
	return snapshot, nil
}

// CheckSnapshot verifies the invariants a persisted aggregate must hold:
// named notebooks, titled notes, unique notebook ids, and unique note ids
// within each notebook.
func CheckSnapshot(snapshot types.Snapshot) error {
	var errs []error
	notebookIDs := map[string]struct{}{}
	for _, nb := range snapshot.Notebooks {
		if strings.TrimSpace(nb.ID) == "" {
			errs = append(errs, &ValidationError{Field: "notebook id"})
			continue
		}
		if _, dup := notebookIDs[nb.ID]; dup {
			errs = append(errs, &ValidationError{Field: "notebook id " + nb.ID, Reason: "is duplicated"})
		}
		notebookIDs[nb.ID] = struct{}{}
		if strings.TrimSpace(nb.Name) == "" {
			errs = append(errs, &ValidationError{Field: "notebook " + nb.ID + " name"})
		}
		noteIDs := map[string]struct{}{}
		for _, note := range nb.Notes {
			if strings.TrimSpace(note.ID) == "" {
				errs = append(errs, &ValidationError{Field: "note id in notebook " + nb.ID})
				continue
			}
			if _, dup := noteIDs[note.ID]; dup {
				errs = append(errs, &ValidationError{Field: "note id " + note.ID, Reason: "is duplicated"})
			}
			noteIDs[note.ID] = struct{}{}
			if strings.TrimSpace(note.Title) == "" {
				errs = append(errs, &ValidationError{Field: "note " + note.ID + " title"})
			}
		}
	}
	return errors.Join(errs...)
}
