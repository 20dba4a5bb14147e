package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings of the section browser.
type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextSection key.Binding
	PrevSection key.Binding
	Edit        key.Binding
	Remove      key.Binding
	Variant     key.Binding
	Template    key.Binding
	Raw         key.Binding
	Preview     key.Binding
	Copy        key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "prev section"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit/run"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "remove"),
		),
		Variant: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "variant"),
		),
		Template: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "template"),
		),
		Raw: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "raw"),
		),
		Preview: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "preview"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy markdown"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.Edit, k.Remove, k.Variant, k.Raw, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextSection, k.PrevSection},
		{k.Edit, k.Remove, k.Variant, k.Template},
		{k.Raw, k.Preview, k.Copy, k.Help, k.Quit},
	}
}

// fieldHelp is the help line shown while a field is edited.
func fieldHelp() string {
	return "esc done • shift+←/→ select • " + Shortcuts.SelectAll.Get() + " select all • alt+b/i/u marks • alt+l/c/r align • alt+f font • alt+s size • ctrl+v paste markdown"
}

// rawHelp is the help line shown in the raw panel.
func rawHelp() string {
	return "esc close • alt+]/alt+[ switch section • " + Shortcuts.ResetBuffer.Get() + " reset buffer • " + Shortcuts.CopyBuffer.Get() + " copy buffer"
}
