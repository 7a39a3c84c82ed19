package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"inkwell/internal/types"
)

const (
	noteModalMaxWidth   = 72
	noteModalBodyHeight = 8
	nameCharLimit       = 120
	titleCharLimit      = 200
	bodyCharLimit       = 10000
)

type noteModalField int

const (
	noteModalFieldTitle noteModalField = iota
	noteModalFieldBody
)

// NoteModal edits a note, or a single name when opened with OpenName.
type NoteModal struct {
	Modal
	heading  string
	nameOnly bool
	field    noteModalField
	title    textinput.Model
	body     textarea.Model
	width    int
}

func NewNoteModal() *NoteModal {
	title := textinput.New()
	title.Prompt = ""
	title.CharLimit = titleCharLimit

	body := textarea.New()
	body.ShowLineNumbers = false
	body.CharLimit = bodyCharLimit
	body.Placeholder = "Take a note..."
	body.SetHeight(noteModalBodyHeight)

	return &NoteModal{title: title, body: body, width: noteModalMaxWidth}
}

func (m *NoteModal) OpenNote(heading string, input types.NoteInput) tea.Cmd {
	m.heading = heading
	m.nameOnly = false
	m.title.CharLimit = titleCharLimit
	m.title.Placeholder = "Untitled"
	m.title.SetValue(input.Title)
	m.body.SetValue(input.Text)
	m.Modal.Open()
	return m.focusField(noteModalFieldTitle)
}

func (m *NoteModal) OpenName(heading, name string) tea.Cmd {
	m.heading = heading
	m.nameOnly = true
	m.title.CharLimit = nameCharLimit
	m.title.Placeholder = "Notebook name"
	m.title.SetValue(name)
	m.body.SetValue("")
	m.Modal.Open()
	return m.focusField(noteModalFieldTitle)
}

func (m *NoteModal) Close() {
	m.Modal.Close()
	m.title.Blur()
	m.body.Blur()
	m.title.SetValue("")
	m.body.SetValue("")
}

// Submit sends the current field values. Repeated calls in one cycle are
// dropped.
func (m *NoteModal) Submit() bool {
	input := types.NoteInput{Title: m.title.Value()}
	if !m.nameOnly {
		input.Text = m.body.Value()
	}
	return m.Deliver(input)
}

func (m *NoteModal) SetWidth(width int) {
	if width <= 0 {
		return
	}
	m.width = min(width, noteModalMaxWidth)
	inner := max(10, m.width-4)
	m.title.Width = inner
	m.body.SetWidth(inner)
}

func (m *NoteModal) focusField(field noteModalField) tea.Cmd {
	m.field = field
	if field == noteModalFieldBody && !m.nameOnly {
		m.title.Blur()
		return m.body.Focus()
	}
	m.field = noteModalFieldTitle
	m.body.Blur()
	return m.title.Focus()
}

// Update routes a message to the focused field. handled is false when the
// modal is closed.
func (m *NoteModal) Update(msg tea.Msg) (tea.Cmd, bool) {
	if !m.IsOpen() {
		return nil, false
	}
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			m.Close()
			return nil, true
		case "ctrl+s":
			m.Submit()
			return nil, true
		case "tab", "shift+tab":
			if m.field == noteModalFieldTitle {
				return m.focusField(noteModalFieldBody), true
			}
			return m.focusField(noteModalFieldTitle), true
		case "enter":
			if m.nameOnly || m.field == noteModalFieldTitle {
				m.Submit()
				return nil, true
			}
		}
	}
	var cmd tea.Cmd
	if m.field == noteModalFieldBody && !m.nameOnly {
		m.body, cmd = m.body.Update(msg)
	} else {
		m.title, cmd = m.title.Update(msg)
	}
	return cmd, true
}

func (m *NoteModal) View() string {
	if !m.IsOpen() {
		return ""
	}
	inner := max(10, m.width-4)
	lines := []string{panelTitleStyle.Render(truncateToWidth(m.heading, inner)), m.title.View()}
	if !m.nameOnly {
		lines = append(lines, dividerStyle.Render(strings.Repeat("─", inner)), m.body.View())
	}
	if msg := m.ErrorText(); msg != "" {
		lines = append(lines, modalErrorStyle.Render(truncateToWidth(msg, inner)))
	}
	hint := "enter save • esc cancel"
	if !m.nameOnly {
		hint = "ctrl+s save • tab switch field • esc cancel"
	}
	lines = append(lines, helpStyle.Render(hint))
	return modalBorderStyle.Width(m.width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
