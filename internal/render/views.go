package render

import (
	"fmt"
	"strings"
	"time"

	"inkwell/internal/types"
)

type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// EmptyNotesLabel is what the panel shows for a notebook without notes.
const EmptyNotesLabel = "No notes"

// NavItem is the sidebar entry for one notebook.
type NavItem struct {
	ID     string
	Name   string
	Active bool
}

func NewNavItem(id, name string) NavItem {
	return NavItem{ID: id, Name: name}
}

func (NavItem) Actions() []Action {
	return []Action{ActionEdit, ActionDelete}
}

// Card is the panel entry for one note.
type Card struct {
	ID        string
	Title     string
	Text      string
	CreatedAt time.Time
	Relative  string
}

func NewCard(note types.Note, now time.Time) Card {
	return Card{
		ID:        note.ID,
		Title:     note.Title,
		Text:      note.Text,
		CreatedAt: note.CreatedAt,
		Relative:  RelativeTime(note.CreatedAt, now),
	}
}

func (Card) Actions() []Action {
	return []Action{ActionEdit, ActionDelete}
}

// Preview is the first line of the text, cut to width runes.
func (c Card) Preview(width int) string {
	line, _, _ := strings.Cut(c.Text, "\n")
	line = strings.TrimSpace(line)
	runes := []rune(line)
	if width > 0 && len(runes) > width {
		if width <= 3 {
			return string(runes[:width])
		}
		return string(runes[:width-3]) + "..."
	}
	return line
}

func RelativeTime(createdAt, now time.Time) string {
	if createdAt.IsZero() {
		return ""
	}
	if now.IsZero() {
		now = time.Now()
	}
	delta := now.Sub(createdAt)
	if delta < 0 {
		delta = 0
	}
	minutes := int(delta / time.Minute)
	hours := minutes / 60
	days := hours / 24
	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%d min ago", minutes)
	case hours < 24:
		return fmt.Sprintf("%d hour ago", hours)
	default:
		return fmt.Sprintf("%d day ago", days)
	}
}

// Greeting picks the salutation for an hour of the day (0-23).
func Greeting(hour int) string {
	var part string
	switch {
	case hour < 5:
		part = "Night"
	case hour < 12:
		part = "Morning"
	case hour < 15:
		part = "Noon"
	case hour < 17:
		part = "Afternoon"
	case hour < 20:
		part = "Evening"
	default:
		part = "Night"
	}
	return "Good " + part
}
