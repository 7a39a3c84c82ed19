package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"inkwell/internal/render"
	"inkwell/internal/store"
	"inkwell/internal/types"
)

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.modal.IsOpen() {
		cmd, _ := m.modal.Update(msg)
		m.syncKeyStates()
		return cmd
	}
	if m.confirm.IsOpen() {
		m.confirm.HandleKey(msg)
		m.syncKeyStates()
		return nil
	}
	cmd := m.handleBrowseKey(msg)
	m.syncKeyStates()
	return cmd
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	frame := m.workbench.Frame()
	switch {
	case m.matches(msg, m.keys.Quit):
		return tea.Quit
	case m.matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case m.matches(msg, m.keys.ToggleSidebar):
		m.toggleSidebar()
	case m.matches(msg, m.keys.SwitchFocus):
		if m.focus == focusSidebar {
			m.focus = focusPanel
		} else {
			m.focus = focusSidebar
		}
	case m.matches(msg, m.keys.Up):
		m.moveCursor(frame, -1)
	case m.matches(msg, m.keys.Down):
		m.moveCursor(frame, 1)
	case m.matches(msg, m.keys.Open):
		if m.focus == focusPanel {
			return m.openEditNote(frame)
		}
	case m.matches(msg, m.keys.NewNotebook):
		m.modalPurpose = modalPurposeNewNotebook
		return m.modal.OpenName("New notebook", "")
	case m.matches(msg, m.keys.RenameNotebook):
		idx := frame.SidebarIndex(frame.ActiveID)
		if idx < 0 {
			return nil
		}
		m.modalPurpose = modalPurposeRenameNotebook
		return m.modal.OpenName("Rename notebook", frame.Sidebar[idx].Name)
	case m.matches(msg, m.keys.DeleteNotebook):
		m.confirmDeleteNotebook(frame)
	case m.matches(msg, m.keys.NewNote):
		if !frame.CanCreateNote {
			m.showWarningToast("create a notebook first")
			return nil
		}
		m.modalPurpose = modalPurposeNewNote
		return m.modal.OpenNote("New note", types.NoteInput{})
	case m.matches(msg, m.keys.EditNote):
		return m.openEditNote(frame)
	case m.matches(msg, m.keys.DeleteNote):
		m.confirmDeleteNote(frame)
	case m.matches(msg, m.keys.CopyNote):
		card, ok := m.selectedCard(frame)
		if !ok {
			return nil
		}
		return copyCmd(card.Text, fmt.Sprintf("copied %q", truncatePlain(card.Title, 32)))
	}
	return nil
}

// moveCursor walks the notebook list when the sidebar has focus, selecting
// as it goes, and the cards otherwise.
func (m *Model) moveCursor(frame render.Frame, delta int) {
	if m.focus == focusPanel || m.sidebarCollapsed {
		if len(frame.Cards) == 0 {
			return
		}
		m.cardCursor = min(max(0, m.cardCursor+delta), len(frame.Cards)-1)
		return
	}
	if len(frame.Sidebar) == 0 {
		return
	}
	idx := frame.SidebarIndex(frame.ActiveID)
	next := min(max(0, idx+delta), len(frame.Sidebar)-1)
	if next == idx {
		return
	}
	if err := m.workbench.SelectNotebook(m.ctx, frame.Sidebar[next].ID); err != nil {
		m.reportStoreError("select notebook", err)
		return
	}
	m.cardCursor = 0
}

func (m *Model) selectedCard(frame render.Frame) (render.Card, bool) {
	if m.cardCursor < 0 || m.cardCursor >= len(frame.Cards) {
		return render.Card{}, false
	}
	return frame.Cards[m.cardCursor], true
}

func (m *Model) openEditNote(frame render.Frame) tea.Cmd {
	card, ok := m.selectedCard(frame)
	if !ok {
		return nil
	}
	m.modalPurpose = modalPurposeEditNote
	m.editingNoteID = card.ID
	return m.modal.OpenNote("Edit note", types.NoteInput{Title: card.Title, Text: card.Text})
}

func (m *Model) confirmDeleteNotebook(frame render.Frame) {
	idx := frame.SidebarIndex(frame.ActiveID)
	if idx < 0 {
		return
	}
	item := frame.Sidebar[idx]
	message := fmt.Sprintf("Delete notebook %q and all of its notes?", item.Name)
	m.confirm.Open("Delete Notebook", message, "Delete", "Cancel", func() {
		if err := m.workbench.DeleteNotebook(m.ctx, item.ID); err != nil {
			m.reportStoreError("delete notebook", err)
			return
		}
		m.cardCursor = 0
		m.showInfoToast("notebook deleted")
	})
}

func (m *Model) confirmDeleteNote(frame render.Frame) {
	card, ok := m.selectedCard(frame)
	if !ok {
		return
	}
	message := fmt.Sprintf("Delete note %q?", card.Title)
	m.confirm.Open("Delete Note", message, "Delete", "Cancel", func() {
		remaining, err := m.workbench.DeleteNote(m.ctx, card.ID)
		if err != nil {
			m.reportStoreError("delete note", err)
			return
		}
		if m.cardCursor >= remaining {
			m.cardCursor = max(0, remaining-1)
		}
		m.showInfoToast("note deleted")
	})
}

// handleModalSubmit applies a submitted form. Validation failures stay in
// the modal; everything else closes it.
func (m *Model) handleModalSubmit(input types.NoteInput) {
	var (
		err     error
		success string
	)
	switch m.modalPurpose {
	case modalPurposeNewNotebook:
		_, err = m.workbench.CreateNotebook(m.ctx, input.Title)
		success = "notebook created"
		m.cardCursor = 0
	case modalPurposeRenameNotebook:
		id := m.workbench.Frame().ActiveID
		_, err = m.workbench.RenameNotebook(m.ctx, id, input.Title)
		success = "notebook renamed"
	case modalPurposeNewNote:
		_, err = m.workbench.CreateNote(m.ctx, input)
		success = "note created"
		if err == nil {
			m.cardCursor = 0
		}
	case modalPurposeEditNote:
		_, err = m.workbench.UpdateNote(m.ctx, m.editingNoteID, input)
		success = "note saved"
	default:
		m.modal.Close()
		return
	}
	if errors.Is(err, store.ErrValidation) {
		m.modal.Reject(err.Error())
		return
	}
	m.modal.Close()
	m.modalPurpose = modalPurposeNone
	m.editingNoteID = ""
	if err != nil {
		m.reportStoreError("save", err)
		return
	}
	m.status = success
	m.showInfoToast(success)
}
