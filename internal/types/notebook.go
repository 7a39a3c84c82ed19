package types

import (
	"encoding/json"
	"time"
)

// Notebook is a named container owning its notes, newest first.
type Notebook struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Notes []Note `json:"notes"`
}

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"-"`
}

// NoteInput carries the editable fields of a note.
type NoteInput struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Snapshot is the single persisted aggregate.
type Snapshot struct {
	Notebooks []Notebook `json:"notebooks"`
}

type noteJSON struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"`
}

// MarshalJSON writes CreatedAt as integer milliseconds since the epoch.
func (n Note) MarshalJSON() ([]byte, error) {
	return json.Marshal(noteJSON{
		ID:        n.ID,
		Title:     n.Title,
		Text:      n.Text,
		CreatedAt: n.CreatedAt.UnixMilli(),
	})
}

func (n *Note) UnmarshalJSON(data []byte) error {
	var raw noteJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	n.ID = raw.ID
	n.Title = raw.Title
	n.Text = raw.Text
	n.CreatedAt = time.UnixMilli(raw.CreatedAt).UTC()
	return nil
}

func (n *Notebook) Clone() *Notebook {
	if n == nil {
		return nil
	}
	out := *n
	out.Notes = append(make([]Note, 0, len(n.Notes)), n.Notes...)
	return &out
}

func (n *Notebook) NoteIndex(id string) int {
	if n == nil {
		return -1
	}
	for i := range n.Notes {
		if n.Notes[i].ID == id {
			return i
		}
	}
	return -1
}

func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Notebooks: make([]Notebook, 0, len(s.Notebooks))}
	for i := range s.Notebooks {
		out.Notebooks = append(out.Notebooks, *s.Notebooks[i].Clone())
	}
	return out
}

func (s Snapshot) NotebookIndex(id string) int {
	for i := range s.Notebooks {
		if s.Notebooks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s Snapshot) NotebookIDs() []string {
	out := make([]string, 0, len(s.Notebooks))
	for _, nb := range s.Notebooks {
		out = append(out, nb.ID)
	}
	return out
}
