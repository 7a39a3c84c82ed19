package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"inkwell/internal/config"
	"inkwell/internal/logging"
)

const (
	tickInterval     = time.Second
	toastDuration    = 3 * time.Second
	minSidebarWidth  = 16
	maxSidebarWidth  = 48
	minPanelWidth    = 24
	cardHeight       = 5
	headerHeight     = 2
	statusLineHeight = 1
)

type Model struct {
	ctx       context.Context
	workbench *Workbench
	logger    logging.Logger
	keys      keyMap
	now       func() time.Time

	modal         *NoteModal
	modalPurpose  modalPurpose
	editingNoteID string
	confirm       *ConfirmController

	focus            focusArea
	cardCursor       int
	sidebarWidth     int
	sidebarCollapsed bool
	greeting         bool
	showHelp         bool
	width            int
	height           int

	status     string
	toastText  string
	toastLevel toastLevel
	toastUntil time.Time
}

type ModelOption func(*Model)

func WithUIConfig(cfg config.UIConfig) ModelOption {
	return func(m *Model) {
		m.sidebarWidth = cfg.SidebarWidth()
		m.sidebarCollapsed = cfg.Sidebar.Collapsed
		m.greeting = cfg.GreetingEnabled()
		if m.sidebarCollapsed {
			m.focus = focusPanel
		}
	}
}

func WithModelClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

func WithModelLogger(logger logging.Logger) ModelOption {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// NewModel builds the TUI over an already loaded workbench.
func NewModel(ctx context.Context, workbench *Workbench, opts ...ModelOption) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	ui := config.DefaultUIConfig()
	m := &Model{
		ctx:          ctx,
		workbench:    workbench,
		logger:       logging.Nop(),
		keys:         defaultKeyMap(),
		now:          time.Now,
		modal:        NewNoteModal(),
		confirm:      NewConfirmController(),
		sidebarWidth: ui.SidebarWidth(),
		greeting:     ui.GreetingEnabled(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.modal.OnSubmit(m.handleModalSubmit)
	m.syncKeyStates()
	return m
}

func Run(ctx context.Context, workbench *Workbench, opts ...ModelOption) error {
	model := NewModel(ctx, workbench, opts...)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return tickCmd()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tickMsg:
		m.workbench.Refresh()
		if !m.toastActive(time.Time(msg)) {
			m.clearToast()
		}
		return m, tickCmd()
	case clipboardResultMsg:
		if msg.err != nil {
			m.logger.Warn("copy failed", logging.F("err", msg.err))
			m.showErrorToast("copy failed: " + msg.err.Error())
			return m, nil
		}
		m.logger.Debug("copied to clipboard", logging.F("method", msg.method.String()))
		m.showInfoToast(msg.label)
		return m, nil
	case tea.MouseMsg:
		if m.confirm.IsOpen() {
			m.confirm.HandleMouse(msg, m.width, m.height)
			m.syncKeyStates()
		}
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	if m.modal.IsOpen() {
		cmd, _ := m.modal.Update(msg)
		return m, cmd
	}
	return m, nil
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.modal.SetWidth(width - 4)
}

func (m *Model) toggleSidebar() {
	m.sidebarCollapsed = !m.sidebarCollapsed
	if m.sidebarCollapsed {
		m.focus = focusPanel
	}
}

// syncKeyStates enables only the bindings that make sense for the frame.
func (m *Model) syncKeyStates() {
	frame := m.workbench.Frame()
	hasNotebook := frame.ActiveID != ""
	hasCard := len(frame.Cards) > 0
	m.keys.RenameNotebook.SetEnabled(hasNotebook)
	m.keys.DeleteNotebook.SetEnabled(hasNotebook)
	m.keys.EditNote.SetEnabled(hasCard)
	m.keys.DeleteNote.SetEnabled(hasCard)
	m.keys.CopyNote.SetEnabled(hasCard)
	m.keys.SwitchFocus.SetEnabled(!m.sidebarCollapsed)
	if m.cardCursor >= len(frame.Cards) {
		m.cardCursor = max(0, len(frame.Cards)-1)
	}
}

func (m *Model) matches(msg tea.KeyMsg, binding key.Binding) bool {
	return key.Matches(msg, binding)
}
