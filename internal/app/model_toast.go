package app

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"inkwell/internal/logging"
	"inkwell/internal/store"
)

type toastLevel int

const (
	toastLevelInfo toastLevel = iota
	toastLevelWarning
	toastLevelError
)

// Errors stay up longer than confirmations.
var toastDurations = map[toastLevel]time.Duration{
	toastLevelInfo:    2 * time.Second,
	toastLevelWarning: toastDuration,
	toastLevelError:   6 * time.Second,
}

func (l toastLevel) duration() time.Duration {
	if d, ok := toastDurations[l]; ok {
		return d
	}
	return toastDuration
}

func (m *Model) showInfoToast(message string) {
	m.showToast(toastLevelInfo, message)
}

func (m *Model) showWarningToast(message string) {
	m.showToast(toastLevelWarning, message)
}

func (m *Model) showErrorToast(message string) {
	m.showToast(toastLevelError, message)
}

// showToast replaces the current toast unless a more severe one is still up.
func (m *Model) showToast(level toastLevel, message string) {
	message = strings.TrimSpace(message)
	if message == "" {
		return
	}
	if m.toastActive(m.now()) && m.toastLevel > level {
		return
	}
	m.toastText = message
	m.toastLevel = level
	m.toastUntil = m.now().Add(level.duration())
}

// reportStoreError turns a failed notebook or note operation into a toast.
// Validation errors never reach here; they stay in the modal.
func (m *Model) reportStoreError(op string, err error) {
	if err == nil {
		return
	}
	switch {
	case errors.Is(err, ErrNoActiveNotebook):
		m.showWarningToast("select a notebook first")
	case errors.Is(err, store.ErrNotFound):
		m.showWarningToast(op + ": it no longer exists")
	default:
		m.logger.Error("store write failed", logging.F("op", op), logging.F("err", err))
		m.showErrorToast(op + " failed: " + err.Error())
	}
}

func (m *Model) clearToast() {
	m.toastText = ""
	m.toastLevel = toastLevelInfo
	m.toastUntil = time.Time{}
}

func (m *Model) toastActive(at time.Time) bool {
	if m.toastText == "" {
		return false
	}
	if at.IsZero() {
		at = m.now()
	}
	return at.Before(m.toastUntil)
}

func (m *Model) toastLine(width int) string {
	if width <= 0 || !m.toastActive(m.now()) {
		return ""
	}
	text := truncateToWidth(m.toastText, max(1, width-4))
	var style lipgloss.Style
	switch m.toastLevel {
	case toastLevelWarning:
		style = toastWarningStyle
	case toastLevelError:
		style = toastErrorStyle
	default:
		style = toastInfoStyle
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, style.Render(" "+text+" "))
}
