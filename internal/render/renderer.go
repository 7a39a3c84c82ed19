// Package render projects store results into a Frame the UI draws.
//
// The Renderer never reads or writes the store. Callers hand it the result of
// each store operation and it keeps the frame consistent with that result.
package render

import (
	"time"

	"inkwell/internal/selection"
	"inkwell/internal/types"
)

// Selector runs the full selection flow for a notebook: activate it, load
// its notes and project them. The event glue implements it.
type Selector interface {
	SelectNotebook(id string)
}

type SelectorFunc func(id string)

func (f SelectorFunc) SelectNotebook(id string) {
	f(id)
}

type Frame struct {
	Sidebar    []NavItem
	ActiveID   string
	PanelTitle string
	Cards      []Card
	// Placeholder is set when the panel shows the empty-notes state.
	Placeholder   bool
	CanCreateNote bool
}

func (f Frame) Clone() Frame {
	out := f
	out.Sidebar = append([]NavItem(nil), f.Sidebar...)
	out.Cards = append([]Card(nil), f.Cards...)
	return out
}

func (f Frame) SidebarIndex(id string) int {
	for i := range f.Sidebar {
		if f.Sidebar[i].ID == id {
			return i
		}
	}
	return -1
}

func (f Frame) CardIndex(id string) int {
	for i := range f.Cards {
		if f.Cards[i].ID == id {
			return i
		}
	}
	return -1
}

// Order lists the sidebar ids top to bottom.
func (f Frame) Order() []string {
	out := make([]string, 0, len(f.Sidebar))
	for _, item := range f.Sidebar {
		out = append(out, item.ID)
	}
	return out
}

type Renderer struct {
	frame    Frame
	selector Selector
	now      func() time.Time
}

type Option func(*Renderer)

func WithClock(now func() time.Time) Option {
	return func(r *Renderer) {
		if now != nil {
			r.now = now
		}
	}
}

func New(selector Selector, opts ...Option) *Renderer {
	r := &Renderer{selector: selector, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetSelector swaps the selection flow target. Used when the glue that owns
// the renderer is built after it.
func (r *Renderer) SetSelector(selector Selector) {
	r.selector = selector
}

func (r *Renderer) Frame() Frame {
	return r.frame.Clone()
}

func (r *Renderer) OnNotebookCreated(nb *types.Notebook) {
	if nb == nil {
		return
	}
	r.frame.Sidebar = append(r.frame.Sidebar, NewNavItem(nb.ID, nb.Name))
	r.markActive(nb.ID)
	r.frame.PanelTitle = nb.Name
	r.showPlaceholder()
	r.frame.CanCreateNote = true
}

func (r *Renderer) OnNotebooksLoaded(list []*types.Notebook) {
	r.frame.Sidebar = make([]NavItem, 0, len(list))
	for _, nb := range list {
		if nb == nil {
			continue
		}
		r.frame.Sidebar = append(r.frame.Sidebar, NewNavItem(nb.ID, nb.Name))
	}
	r.frame.CanCreateNote = len(r.frame.Sidebar) > 0
	if len(r.frame.Sidebar) == 0 {
		r.clearPanel()
		return
	}
	first := r.frame.Sidebar[0]
	r.selectFlow(first.ID, first.Name)
}

// OnNotebookSelected is the projection half of a sidebar click: it marks the
// entry active and titles the panel. Notes are projected by OnNotesLoaded.
func (r *Renderer) OnNotebookSelected(nb *types.Notebook) {
	if nb == nil {
		return
	}
	r.markActive(nb.ID)
	r.frame.PanelTitle = nb.Name
	r.frame.CanCreateNote = true
}

func (r *Renderer) OnNotebookRenamed(id string, nb *types.Notebook) {
	if nb == nil {
		return
	}
	idx := r.frame.SidebarIndex(id)
	if idx < 0 {
		return
	}
	r.frame.Sidebar[idx].Name = nb.Name
	if r.frame.ActiveID == id {
		r.frame.PanelTitle = nb.Name
	}
}

func (r *Renderer) OnNotebookDeleted(id string) {
	idx := r.frame.SidebarIndex(id)
	if idx < 0 {
		return
	}
	order := r.frame.Order()
	wasActive := r.frame.ActiveID == id
	r.frame.Sidebar = append(r.frame.Sidebar[:idx], r.frame.Sidebar[idx+1:]...)
	if !wasActive {
		return
	}
	r.frame.ActiveID = ""
	next, ok := selection.Adjacent(order, id)
	if !ok {
		r.clearPanel()
		r.frame.CanCreateNote = false
		return
	}
	nextIdx := r.frame.SidebarIndex(next)
	r.selectFlow(next, r.frame.Sidebar[nextIdx].Name)
}

func (r *Renderer) OnNoteCreated(note *types.Note) {
	if note == nil {
		return
	}
	r.frame.Placeholder = false
	r.frame.Cards = append([]Card{NewCard(*note, r.now())}, r.frame.Cards...)
}

func (r *Renderer) OnNotesLoaded(list []*types.Note) {
	now := r.now()
	r.frame.Cards = make([]Card, 0, len(list))
	for _, note := range list {
		if note == nil {
			continue
		}
		r.frame.Cards = append(r.frame.Cards, NewCard(*note, now))
	}
	r.frame.Placeholder = len(r.frame.Cards) == 0
}

func (r *Renderer) OnNoteUpdated(id string, note *types.Note) {
	if note == nil {
		return
	}
	idx := r.frame.CardIndex(id)
	if idx < 0 {
		return
	}
	r.frame.Cards[idx] = NewCard(*note, r.now())
}

func (r *Renderer) OnNoteDeleted(id string, remaining int) {
	if idx := r.frame.CardIndex(id); idx >= 0 {
		r.frame.Cards = append(r.frame.Cards[:idx], r.frame.Cards[idx+1:]...)
	}
	if remaining == 0 {
		r.showPlaceholder()
	}
}

// Refresh recomputes relative times against the clock.
func (r *Renderer) Refresh() {
	now := r.now()
	for i := range r.frame.Cards {
		r.frame.Cards[i].Relative = RelativeTime(r.frame.Cards[i].CreatedAt, now)
	}
}

// selectFlow hands selection to the Selector, or projects the title alone
// when no Selector is wired.
func (r *Renderer) selectFlow(id, name string) {
	if r.selector != nil {
		r.selector.SelectNotebook(id)
		return
	}
	r.markActive(id)
	r.frame.PanelTitle = name
}

func (r *Renderer) markActive(id string) {
	r.frame.ActiveID = id
	for i := range r.frame.Sidebar {
		r.frame.Sidebar[i].Active = r.frame.Sidebar[i].ID == id
	}
}

func (r *Renderer) showPlaceholder() {
	r.frame.Cards = []Card{}
	r.frame.Placeholder = true
}

func (r *Renderer) clearPanel() {
	r.frame.ActiveID = ""
	r.frame.PanelTitle = ""
	r.frame.Cards = []Card{}
	r.frame.Placeholder = false
}
