package app

import (
	"strings"

	"inkwell/internal/types"
)

// Modal delivers at most one submission per open/close cycle. Reject re-arms
// it when the receiver refuses the input, so a corrected form can be sent
// again without reopening.
type Modal struct {
	open      bool
	delivered bool
	errText   string
	onSubmit  func(types.NoteInput)
}

func (m *Modal) Open() {
	m.open = true
	m.delivered = false
	m.errText = ""
}

func (m *Modal) OnSubmit(fn func(types.NoteInput)) {
	m.onSubmit = fn
}

func (m *Modal) Close() {
	m.open = false
	m.delivered = false
	m.errText = ""
}

func (m *Modal) IsOpen() bool {
	return m != nil && m.open
}

// Deliver hands input to the submit callback. It reports false when the
// modal is closed or already delivered in this cycle.
func (m *Modal) Deliver(input types.NoteInput) bool {
	if m == nil || !m.open || m.delivered {
		return false
	}
	m.delivered = true
	if m.onSubmit != nil {
		m.onSubmit(input)
	}
	return true
}

// Reject keeps the modal open with an inline message and allows one more
// delivery.
func (m *Modal) Reject(message string) {
	if m == nil || !m.open {
		return
	}
	m.delivered = false
	m.errText = strings.TrimSpace(message)
}

func (m *Modal) ErrorText() string {
	if m == nil {
		return ""
	}
	return m.errText
}
