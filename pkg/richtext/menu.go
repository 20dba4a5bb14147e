package richtext

// CommandName identifies a formatting command of the command bar.
type CommandName string

const (
	CmdBold            CommandName = "bold"
	CmdItalic          CommandName = "italic"
	CmdUnderline       CommandName = "underline"
	CmdAlign           CommandName = "align"
	CmdFontFamily      CommandName = "fontFamily"
	CmdUnsetFontFamily CommandName = "unsetFontFamily"
	CmdFontSize        CommandName = "fontSize"
	CmdUnsetFontSize   CommandName = "unsetFontSize"
)

// Command is a formatting command with its argument, if any.
type Command struct {
	Name  CommandName
	Value string
}

// Exec runs cmd and reports whether it was understood.
func (e *Engine) Exec(cmd Command) bool {
	switch cmd.Name {
	case CmdBold:
		e.ToggleBold()
	case CmdItalic:
		e.ToggleItalic()
	case CmdUnderline:
		e.ToggleUnderline()
	case CmdAlign:
		return e.SetTextAlign(Alignment(cmd.Value))
	case CmdFontFamily:
		if cmd.Value == "" {
			e.UnsetFontFamily()
			return true
		}
		return e.SetFontFamily(cmd.Value)
	case CmdUnsetFontFamily:
		e.UnsetFontFamily()
	case CmdFontSize:
		if cmd.Value == "" {
			e.UnsetFontSize()
			return true
		}
		return e.SetFontSize(cmd.Value)
	case CmdUnsetFontSize:
		e.UnsetFontSize()
	default:
		return false
	}
	return true
}

// MenuItem is one button of the command bar.
type MenuItem struct {
	Label   string
	Command Command
	Active  bool
}

// Menu is the state of the floating command bar.
type Menu struct {
	Visible    bool
	Marks      []MenuItem
	Alignments []MenuItem
	FontFamily string
	FontSize   string
}

// Menu returns the command bar for the current selection. The bar is only
// visible while text is selected.
func (e *Engine) Menu() Menu {
	if e.sel.Empty() {
		return Menu{}
	}
	m := Menu{
		Visible: true,
		Marks: []MenuItem{
			{Label: "B", Command: Command{Name: CmdBold}, Active: e.IsActive(MarkBold)},
			{Label: "I", Command: Command{Name: CmdItalic}, Active: e.IsActive(MarkItalic)},
			{Label: "U", Command: Command{Name: CmdUnderline}, Active: e.IsActive(MarkUnderline)},
		},
		FontFamily: e.ActiveFontFamily(),
		FontSize:   e.ActiveFontSize(),
	}
	align := e.ActiveAlign()
	for _, a := range Alignments {
		m.Alignments = append(m.Alignments, MenuItem{
			Label:   a.Label,
			Command: Command{Name: CmdAlign, Value: a.Value},
			Active:  string(align) == a.Value,
		})
	}
	return m
}
