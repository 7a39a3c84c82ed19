package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

type confirmChoice int

const (
	confirmChoiceNone confirmChoice = iota
	confirmChoiceConfirm
	confirmChoiceCancel
)

const (
	confirmMaxWidth = 60
	confirmMinWidth = 24
)

// ConfirmController is a yes/no dialog. The confirm callback fires at most
// once between Open and Close.
type ConfirmController struct {
	active       bool
	resolved     bool
	title        string
	message      string
	confirmLabel string
	cancelLabel  string
	selected     int
	onConfirm    func()
}

func NewConfirmController() *ConfirmController {
	return &ConfirmController{}
}

func (c *ConfirmController) IsOpen() bool {
	return c != nil && c.active
}

func (c *ConfirmController) Open(title, message, confirmLabel, cancelLabel string, onConfirm func()) {
	if c == nil {
		return
	}
	c.active = true
	c.resolved = false
	c.title = strings.TrimSpace(title)
	c.message = strings.TrimSpace(message)
	if confirmLabel == "" {
		confirmLabel = "Confirm"
	}
	if cancelLabel == "" {
		cancelLabel = "Cancel"
	}
	c.confirmLabel = confirmLabel
	c.cancelLabel = cancelLabel
	c.selected = 0
	c.onConfirm = onConfirm
}

func (c *ConfirmController) Close() {
	if c == nil {
		return
	}
	c.active = false
	c.resolved = false
	c.title = ""
	c.message = ""
	c.confirmLabel = ""
	c.cancelLabel = ""
	c.selected = 0
	c.onConfirm = nil
}

// resolve applies a choice and closes the dialog on confirm or cancel.
func (c *ConfirmController) resolve(choice confirmChoice) confirmChoice {
	switch choice {
	case confirmChoiceConfirm:
		if c.resolved {
			return confirmChoiceNone
		}
		c.resolved = true
		fn := c.onConfirm
		c.Close()
		if fn != nil {
			fn()
		}
	case confirmChoiceCancel:
		c.Close()
	}
	return choice
}

func (c *ConfirmController) HandleKey(msg tea.KeyMsg) (bool, confirmChoice) {
	if c == nil || !c.active {
		return false, confirmChoiceNone
	}
	switch msg.String() {
	case "esc", "q", "n":
		return true, c.resolve(confirmChoiceCancel)
	case "left", "h":
		c.selected = 0
		return true, confirmChoiceNone
	case "right", "l":
		c.selected = 1
		return true, confirmChoiceNone
	case "tab":
		c.selected = 1 - c.selected
		return true, confirmChoiceNone
	case "y":
		return true, c.resolve(confirmChoiceConfirm)
	case "enter":
		if c.selected == 0 {
			return true, c.resolve(confirmChoiceConfirm)
		}
		return true, c.resolve(confirmChoiceCancel)
	}
	// Swallow everything else while the dialog is up.
	return true, confirmChoiceNone
}

func (c *ConfirmController) HandleMouse(msg tea.MouseMsg, maxWidth, maxHeight int) (bool, confirmChoice) {
	if c == nil || !c.active {
		return false, confirmChoiceNone
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false, confirmChoiceNone
	}
	x, y, width, height := c.layout(maxWidth, maxHeight)
	if msg.X < x || msg.X >= x+width || msg.Y < y || msg.Y >= y+height {
		return false, confirmChoiceNone
	}
	buttonRow := y + height - 2
	if msg.Y != buttonRow {
		return true, confirmChoiceNone
	}
	contentX := x + 1
	contentWidth := max(1, width-2)
	if msg.X < contentX || msg.X >= contentX+contentWidth {
		return true, confirmChoiceNone
	}
	if msg.X < contentX+contentWidth/2 {
		c.selected = 0
		return true, c.resolve(confirmChoiceConfirm)
	}
	c.selected = 1
	return true, c.resolve(confirmChoiceCancel)
}

func (c *ConfirmController) View(maxWidth, maxHeight int) (string, int) {
	if c == nil || !c.active {
		return "", 0
	}
	x, y, width, _ := c.layout(maxWidth, maxHeight)
	innerWidth := max(1, width-2)
	contentWidth := max(1, innerWidth-2)
	title := c.title
	if title == "" {
		title = "Confirm"
	}
	title = truncateToWidth(title, contentWidth)
	lines := []string{contextMenuHeaderStyle.Render(" " + padToWidth(title, contentWidth) + " ")}

	if c.message != "" {
		wrapped := xansi.Hardwrap(c.message, contentWidth, true)
		for _, line := range strings.Split(wrapped, "\n") {
			line = truncateToWidth(line, contentWidth)
			lines = append(lines, menuDropStyle.Render(" "+padToWidth(line, contentWidth)+" "))
		}
	}

	leftWidth := contentWidth / 2
	rightWidth := contentWidth - leftWidth
	confirm := padToWidth(truncateToWidth("["+c.confirmLabel+"]", leftWidth), leftWidth)
	cancel := padToWidth(truncateToWidth("["+c.cancelLabel+"]", rightWidth), rightWidth)
	if c.selected == 0 {
		confirm = selectedStyle.Render(confirm)
		cancel = menuDropStyle.Render(cancel)
	} else {
		confirm = menuDropStyle.Render(confirm)
		cancel = selectedStyle.Render(cancel)
	}
	buttonLine := " " + confirm + cancel + " "
	if xansi.StringWidth(buttonLine) < innerWidth {
		buttonLine = padToWidth(buttonLine, innerWidth)
	}
	lines = append(lines, buttonLine)

	block := confirmDialogBorderStyle.Render(strings.Join(lines, "\n"))
	return indentBlock(block, x), y
}

func (c *ConfirmController) layout(maxWidth, maxHeight int) (int, int, int, int) {
	width := c.menuWidth()
	if maxWidth > 0 && width > maxWidth {
		width = maxWidth
	}
	height := c.menuHeight(width)
	minRow := 1
	if maxHeight <= 0 {
		minRow = 0
	}
	x := 0
	y := minRow
	if maxWidth > 0 {
		x = max(0, (maxWidth-width)/2)
	}
	if maxHeight > 0 {
		y = max(minRow, (maxHeight-height)/2+minRow)
	}
	return x, y, width, height
}

func (c *ConfirmController) menuWidth() int {
	contentWidth := 0
	title := c.title
	if title == "" {
		title = "Confirm"
	}
	if w := xansi.StringWidth(title); w > contentWidth {
		contentWidth = w
	}
	if w := xansi.StringWidth(c.message); w > contentWidth {
		contentWidth = w
	}
	if w := xansi.StringWidth(c.confirmLabel) + xansi.StringWidth(c.cancelLabel) + 6; w > contentWidth {
		contentWidth = w
	}
	width := max(confirmMinWidth, contentWidth+4)
	return min(width, confirmMaxWidth)
}

func (c *ConfirmController) menuHeight(width int) int {
	innerWidth := max(1, width-2)
	contentWidth := max(1, innerWidth-2)
	height := 2
	if c.message != "" {
		height += len(strings.Split(xansi.Hardwrap(c.message, contentWidth, true), "\n"))
	}
	return height + 2
}
