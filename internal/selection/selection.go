// Package selection tracks the single active notebook.
//
// A Tracker is a value: every transition returns a new Tracker and leaves the
// receiver untouched, so handlers thread it through explicitly.
package selection

import "strings"

type Tracker struct {
	id string
}

// None is the tracker with no active notebook.
func None() Tracker {
	return Tracker{}
}

func Active(id string) Tracker {
	return Tracker{id: strings.TrimSpace(id)}
}

// Activate replaces whatever was active with id.
func (t Tracker) Activate(id string) Tracker {
	return Active(id)
}

func (t Tracker) Clear() Tracker {
	return None()
}

func (t Tracker) Current() (string, bool) {
	return t.id, t.id != ""
}

func (t Tracker) IsActive(id string) bool {
	return t.id != "" && t.id == id
}

func (t Tracker) String() string {
	if t.id == "" {
		return "none"
	}
	return "active(" + t.id + ")"
}

// Initial is the selection on load: the first notebook, or none.
func Initial(order []string) Tracker {
	if len(order) == 0 {
		return None()
	}
	return Active(order[0])
}

// Adjacent returns the sibling that takes over when id goes away: the entry
// after it, else the one before it.
func Adjacent(order []string, id string) (string, bool) {
	for i, candidate := range order {
		if candidate != id {
			continue
		}
		if i+1 < len(order) {
			return order[i+1], true
		}
		if i > 0 {
			return order[i-1], true
		}
		return "", false
	}
	return "", false
}

// AfterDelete applies the removal of deleted from order, which is the list
// as it was before the delete.
func (t Tracker) AfterDelete(order []string, deleted string) Tracker {
	if !t.IsActive(deleted) {
		return t
	}
	if next, ok := Adjacent(order, deleted); ok {
		return Active(next)
	}
	return None()
}

// Reconcile drops an active id that is no longer in order, falling back to
// the first entry.
func (t Tracker) Reconcile(order []string) Tracker {
	if t.id != "" {
		for _, id := range order {
			if id == t.id {
				return t
			}
		}
	}
	return Initial(order)
}
