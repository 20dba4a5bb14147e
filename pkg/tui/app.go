package tui

import (
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/pluqqy/pluqqy-cv/pkg/composer"
	"github.com/pluqqy/pluqqy-cv/pkg/field"
	"github.com/pluqqy/pluqqy-cv/pkg/models"
	"github.com/pluqqy/pluqqy-cv/pkg/rawtext"
	"github.com/pluqqy/pluqqy-cv/pkg/richtext"
	"github.com/pluqqy/pluqqy-cv/pkg/sections"
	"github.com/pluqqy/pluqqy-cv/pkg/store"
	"github.com/pluqqy/pluqqy-cv/pkg/styles"
	"github.com/pluqqy/pluqqy-cv/pkg/utils"
)

type sessionState int

const (
	browseView sessionState = iota
	fieldView
	rawView
)

// App is the root model of the editor.
type App struct {
	st       *store.Store
	ctl      *sections.Controllers
	registry *field.Registry
	sync     *rawtext.Sync
	view     *ViewState
	deps     *editorDeps
	logger   *slog.Logger
	cancel   func()

	state       sessionState
	section     int
	cursor      int
	offset      int
	targets     []target
	editor      *FieldEditor
	raw         *RawEditor
	preview     *Preview
	confirm     *ConfirmationModel
	help        help.Model
	keys        keyMap
	showPreview bool
	words       int

	width     int
	height    int
	statusMsg string
}

// NewApp creates the editor over st. Settings seed the view state; a nil
// logger discards everything.
func NewApp(st *store.Store, settings *models.Settings, logger *slog.Logger) *App {
	st = store.Must(st)
	if settings == nil {
		settings = models.DefaultSettings()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	opts := richtext.Options{
		Placeholder: settings.Editor.Placeholder,
		Typography:  settings.Editor.Typography,
	}
	view := NewViewState(settings)
	ctl := sections.New(st)
	registry := field.NewRegistry(st, opts, logger)
	sync := rawtext.New(st, rawtext.WithLogger(logger))

	a := &App{
		st:          st,
		ctl:         ctl,
		registry:    registry,
		sync:        sync,
		view:        view,
		deps:        &editorDeps{st: st, ctl: ctl, registry: registry, view: view, opts: opts},
		logger:      logger,
		raw:         NewRawEditor(sync),
		preview:     NewPreview(),
		confirm:     NewConfirmation(),
		help:        help.New(),
		keys:        defaultKeyMap(),
		showPreview: settings.UI.ShowPreview,
	}
	if s, err := models.ParseSection(settings.Editor.StartSection); err == nil {
		a.section = sectionIndex(s)
	}
	if layout := view.SummaryLayout(); layout != ctl.Summary.Layout() {
		ctl.Summary.ChangeLayout(layout)
	}
	a.cancel = st.Subscribe(func(_, _ *models.CV) { a.onStoreChange() })
	a.refresh()
	return a
}

func sectionIndex(s models.SectionID) int {
	for i, id := range models.Sections() {
		if id == s {
			return i
		}
	}
	return 0
}

// Close stops listening to the store.
func (a *App) Close() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.registry.Close()
}

// Section returns the section being edited.
func (a *App) Section() models.SectionID {
	return models.Sections()[a.section]
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) onStoreChange() {
	if a.editor != nil {
		a.editor.Sync()
	}
	a.raw.Refresh()
	a.refresh()
}

// refresh rebuilds the rows of the current section and the preview.
func (a *App) refresh() {
	a.targets = a.deps.targets(a.Section())
	if a.cursor >= len(a.targets) {
		a.cursor = len(a.targets) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
	a.preview.Render(a.st.Snapshot(), a.view.Options(0, true))
	if text, err := composer.Export(a.st.Snapshot(), composer.FormatPlain); err == nil {
		a.words = utils.CountWords(text)
	}
}

// lengthLabel renders the word count colored by how many pages it fills.
func (a *App) lengthLabel() string {
	color := styles.ColorSuccess
	switch _, _, status := utils.GetLengthStatus(a.words); status {
	case "warning":
		color = styles.ColorWarning
	case "danger":
		color = styles.ColorDanger
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Render(utils.FormatWordCount(a.words))
}

func (a *App) setSection(i int) {
	n := len(models.Sections())
	a.section = (i + n) % n
	a.cursor = 0
	a.offset = 0
	a.refresh()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		return a, nil

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.confirm.Active() {
			return a, a.confirm.Update(msg)
		}
		switch a.state {
		case fieldView:
			done, status := a.editor.Update(msg)
			if status != "" {
				a.statusMsg = status
			}
			if done {
				a.closeEditor()
			}
			return a, nil
		case rawView:
			done, status, cmd := a.raw.Update(msg)
			if status != "" {
				a.statusMsg = status
			}
			if done {
				a.view.Section(a.raw.Section()).RawOpen = false
				a.state = browseView
				a.refresh()
			}
			return a, cmd
		}
		return a, a.browse(msg)
	}

	if a.state == rawView {
		_, _, cmd := a.raw.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) browse(msg tea.KeyMsg) tea.Cmd {
	a.statusMsg = ""
	switch {
	case key.Matches(msg, a.keys.Quit):
		return tea.Quit
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.targets)-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.NextSection):
		a.setSection(a.section + 1)
	case key.Matches(msg, a.keys.PrevSection):
		a.setSection(a.section - 1)
	case key.Matches(msg, a.keys.Edit):
		a.activate()
	case key.Matches(msg, a.keys.Remove):
		a.confirmRemove()
	case key.Matches(msg, a.keys.Variant):
		s := a.Section()
		v := a.view.CycleVariant(s)
		if s == models.SectionSummary {
			a.ctl.Summary.ChangeLayout(a.view.SummaryLayout())
		}
		a.statusMsg = "Variant: " + v.Name
		a.refresh()
	case key.Matches(msg, a.keys.Template):
		t := a.view.CycleTemplate()
		a.statusMsg = "Template: " + t.Label
		a.refresh()
	case key.Matches(msg, a.keys.Raw):
		if a.view.ToggleRaw(a.Section()) {
			a.state = rawView
			return a.raw.Open(a.Section())
		}
	case key.Matches(msg, a.keys.Preview):
		a.showPreview = !a.showPreview
		a.layout()
	case key.Matches(msg, a.keys.Copy):
		a.copyMarkdown()
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
	case msg.String() == "pgup" || msg.String() == "pgdown":
		return a.preview.Update(msg)
	}
	return nil
}

// activate edits the selected field or runs the selected action.
func (a *App) activate() {
	if len(a.targets) == 0 {
		return
	}
	t := a.targets[a.cursor]
	if !t.editable() {
		if status := t.action(); status != "" {
			a.statusMsg = status
		}
		a.refresh()
		return
	}
	f, ok := t.open()
	if !ok {
		a.statusMsg = "Field unavailable"
		return
	}
	a.editor = NewFieldEditor(t.label, f, t.owned)
	a.editor.SetWidth(a.leftWidth() - 4)
	a.state = fieldView
}

func (a *App) closeEditor() {
	a.editor = nil
	a.state = browseView
	a.refresh()
}

func (a *App) confirmRemove() {
	if len(a.targets) == 0 {
		return
	}
	t := a.targets[a.cursor]
	if t.remove == nil {
		a.statusMsg = "Cannot remove " + t.label
		return
	}
	a.confirm.ShowInline("Remove "+t.label+"?", true, func() tea.Cmd {
		if t.remove() {
			a.statusMsg = "Removed " + t.label
		}
		a.refresh()
		return nil
	}, nil)
}

func (a *App) copyMarkdown() {
	out, err := composer.Export(a.st.Snapshot(), composer.FormatMarkdown)
	if err != nil {
		a.statusMsg = "Export failed: " + err.Error()
		return
	}
	if err := clipboardWrite(out); err != nil {
		a.statusMsg = "Clipboard unavailable"
		return
	}
	a.statusMsg = "✓ Copied CV to clipboard"
}

func (a *App) leftWidth() int {
	if !a.showPreview || a.width < 80 {
		return a.width
	}
	return a.width / 2
}

func (a *App) paneHeight() int {
	// header, length, tabs, help and status lines plus the pane borders
	return max(a.height-7, 3)
}

func (a *App) layout() {
	left := a.leftWidth()
	right := a.width - left
	h := a.paneHeight()
	a.raw.SetSize(left-4, h-ViewTitleHeight()-3)
	if a.editor != nil {
		a.editor.SetWidth(left - 4)
	}
	a.preview.SetSize(right-4, h-ViewTitleHeight())
	a.confirm.SetWidth(a.width)
	a.help.Width = a.width
	a.refresh()
}

func (a *App) renderTargets(width, height int) string {
	if a.cursor < a.offset {
		a.offset = a.cursor
	}
	if a.cursor >= a.offset+height {
		a.offset = a.cursor - height + 1
	}

	var lines []string
	for i, t := range a.targets {
		if i < a.offset || i >= a.offset+height {
			continue
		}
		line := strings.Repeat("  ", t.depth) + t.label
		if t.editable() {
			value := strings.SplitN(richtext.PlainText(t.value()), "\n", 2)[0]
			if value == "" {
				value = styles.PlaceholderStyle.Render(richtext.DefaultPlaceholder)
			}
			line += styles.DescriptionStyle.Render(": ") + value
		}
		if t.remove != nil {
			line += " " + styles.RemoveControlStyle.Render(composer.RemoveMarker)
		}
		line = truncate.StringWithTail(line, uint(max(width-2, 1)), "…")
		if i == a.cursor {
			line = styles.SelectedStyle.Render("> " + line)
		} else {
			line = styles.NormalStyle.Render("  " + line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderTabs() string {
	var tabs []string
	for i, s := range models.Sections() {
		tabs = append(tabs, styles.GetTabStyle(i == a.section, false).Render(s.Label()))
	}
	return lipgloss.NewStyle().PaddingLeft(1).Render(strings.Join(tabs, " "))
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	h := a.paneHeight()
	left := a.leftWidth()

	var title, body string
	switch a.state {
	case fieldView:
		title, body = "EDIT FIELD", a.editor.View()
	case rawView:
		title, body = "RAW "+strings.ToUpper(a.raw.Section().Label()), a.raw.View()
	default:
		title = strings.ToUpper(a.Section().Label()) + " · " + styles.Lookup(a.Section(), a.view.Section(a.Section()).Variant).Name
		body = a.renderTargets(left-4, h-ViewTitleHeight()-1)
	}
	leftPane := styles.ActiveBorderStyle.
		Width(left - 2).
		Height(h).
		Render(NewViewTitle(title, true).View() + "\n" + body)

	panes := leftPane
	if left < a.width {
		rightPane := styles.InactiveBorderStyle.
			Width(a.width - left - 2).
			Height(h).
			Render(NewViewTitle("PREVIEW · "+styles.LookupTemplate(a.view.Template).Label, false).View() + "\n" + a.preview.View())
		panes = lipgloss.JoinHorizontal(lipgloss.Top, leftPane, rightPane)
	}

	var footer string
	switch {
	case a.confirm.Active():
		footer = a.confirm.View()
	case a.state == fieldView:
		footer = styles.DescriptionStyle.Render(fieldHelp())
	case a.state == rawView:
		footer = styles.DescriptionStyle.Render(rawHelp())
	default:
		footer = a.help.View(a.keys)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(a.width, "Editing "+a.Section().Label()),
		a.lengthLabel(),
		a.renderTabs(),
		panes,
		footer,
	)

	// Add status bar if there's a message
	if a.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

		content = lipgloss.JoinVertical(lipgloss.Left, content, statusStyle.Render(a.statusMsg))
	}
	return content
}

// StatusMsg sets the status line.
type StatusMsg string
