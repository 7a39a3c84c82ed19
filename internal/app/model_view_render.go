package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"inkwell/internal/render"
)

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	frame := m.workbench.Frame()
	header := m.headerView()
	bodyHeight := max(1, m.height-headerHeight-statusLineHeight)

	var body string
	switch {
	case m.modal.IsOpen():
		body = lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, m.modal.View())
	case m.confirm.IsOpen():
		block, y := m.confirm.View(m.width, bodyHeight)
		body = strings.Repeat("\n", max(0, y-1)) + block
	default:
		body = m.browseView(frame, bodyHeight)
	}
	body = lipgloss.NewStyle().Height(bodyHeight).MaxHeight(bodyHeight).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.statusLine())
}

func (m *Model) headerView() string {
	now := m.now()
	title := "inkwell"
	if m.greeting {
		title = render.Greeting(now.Hour())
	}
	left := headerStyle.Render(title)
	right := headerDateStyle.Render(now.Format("Monday, 2 January"))
	gap := max(1, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	line := left + strings.Repeat(" ", gap) + right
	return line + "\n" + dividerStyle.Render(strings.Repeat("─", max(0, m.width)))
}

func (m *Model) browseView(frame render.Frame, height int) string {
	panelWidth := m.width
	var sidebar string
	if !m.sidebarCollapsed {
		width := m.resolvedSidebarWidth()
		sidebar = m.sidebarView(frame, width, height)
		panelWidth = max(minPanelWidth, m.width-width-1)
	}
	panel := m.panelView(frame, panelWidth, height)
	if sidebar == "" {
		return panel
	}
	divider := dividerStyle.Render(strings.TrimRight(strings.Repeat("│\n", height), "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, divider, panel)
}

func (m *Model) resolvedSidebarWidth() int {
	width := min(max(m.sidebarWidth, minSidebarWidth), maxSidebarWidth)
	if m.width-width-1 < minPanelWidth {
		width = max(minSidebarWidth, m.width-minPanelWidth-1)
	}
	return width
}

func (m *Model) sidebarView(frame render.Frame, width, height int) string {
	heading := "Notebooks"
	if m.focus == focusSidebar {
		heading = "› " + heading
	}
	lines := []string{panelTitleStyle.Render(truncateToWidth(heading, width)), ""}
	for _, item := range frame.Sidebar {
		label := truncatePlain(item.Name, max(1, width-2))
		if item.Active {
			lines = append(lines, notebookActiveStyle.Render("● "+label))
			continue
		}
		lines = append(lines, notebookStyle.Render("  "+label))
	}
	if len(frame.Sidebar) == 0 {
		lines = append(lines, emptyNotesStyle.Render("press a to add one"))
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	return padLines(lines, width)
}

func (m *Model) panelView(frame render.Frame, width, height int) string {
	title := frame.PanelTitle
	if title == "" {
		title = "No notebook selected"
	}
	if m.focus == focusPanel {
		title = "› " + title
	}
	hint := "n new note"
	hintStyle := helpStyle
	if !frame.CanCreateNote {
		hintStyle = hintStyle.Faint(true).Strikethrough(true)
	}
	titleLine := panelTitleStyle.Render(truncatePlain(title, max(1, width-lipgloss.Width(hint)-1)))
	gap := max(1, width-lipgloss.Width(titleLine)-lipgloss.Width(hint))
	lines := []string{titleLine + strings.Repeat(" ", gap) + hintStyle.Render(hint), ""}

	switch {
	case frame.Placeholder:
		lines = append(lines, emptyNotesStyle.Render(render.EmptyNotesLabel))
	case len(frame.Cards) > 0:
		visible := max(1, (height-2)/cardHeight)
		start := 0
		if m.cardCursor >= visible {
			start = m.cardCursor - visible + 1
		}
		end := min(len(frame.Cards), start+visible)
		for i := start; i < end; i++ {
			lines = append(lines, m.cardView(frame.Cards[i], width, i == m.cardCursor && m.focus == focusPanel))
		}
		if end < len(frame.Cards) {
			lines = append(lines, helpStyle.Render(fmt.Sprintf("%d more", len(frame.Cards)-end)))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) cardView(card render.Card, width int, selected bool) string {
	inner := max(1, width-4)
	style := cardStyle
	if selected {
		style = cardSelectedStyle
	}
	content := []string{
		cardTitleStyle.Render(truncatePlain(card.Title, inner)),
		card.Preview(inner),
		cardMetaStyle.Render(card.Relative),
	}
	return style.Width(max(1, width-2)).Render(strings.Join(content, "\n"))
}

func (m *Model) statusLine() string {
	if line := m.toastLine(m.width); line != "" {
		return line
	}
	if m.showHelp {
		return helpStyle.Render(truncateToWidth(m.keys.helpLine(), m.width))
	}
	status := m.status
	if status == "" {
		status = "? help"
	}
	return statusStyle.Render(truncateToWidth(status, m.width))
}
