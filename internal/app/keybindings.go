package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NewNotebook    key.Binding
	RenameNotebook key.Binding
	DeleteNotebook key.Binding
	NewNote        key.Binding
	EditNote       key.Binding
	DeleteNote     key.Binding
	CopyNote       key.Binding
	ToggleSidebar  key.Binding
	SwitchFocus    key.Binding
	Up             key.Binding
	Down           key.Binding
	Open           key.Binding
	Help           key.Binding
	Quit           key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NewNotebook:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "new notebook")),
		RenameNotebook: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rename")),
		DeleteNotebook: key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete notebook")),
		NewNote:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new note")),
		EditNote:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit note")),
		DeleteNote:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete note")),
		CopyNote:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy note")),
		ToggleSidebar:  key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "sidebar")),
		SwitchFocus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Open:           key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:           key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) bindings() []key.Binding {
	return []key.Binding{
		k.NewNotebook, k.RenameNotebook, k.DeleteNotebook,
		k.NewNote, k.EditNote, k.DeleteNote, k.CopyNote,
		k.ToggleSidebar, k.SwitchFocus, k.Help, k.Quit,
	}
}

// helpLine renders the enabled bindings as "key desc" pairs.
func (k keyMap) helpLine() string {
	out := ""
	for _, binding := range k.bindings() {
		if !binding.Enabled() {
			continue
		}
		help := binding.Help()
		if out != "" {
			out += " • "
		}
		out += help.Key + " " + help.Desc
	}
	return out
}
