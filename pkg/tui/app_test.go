package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-cv/pkg/models"
	"github.com/pluqqy/pluqqy-cv/pkg/richtext"
	"github.com/pluqqy/pluqqy-cv/pkg/sections"
	"github.com/pluqqy/pluqqy-cv/pkg/store"
)

func newTestApp(t *testing.T) (*App, *store.Store) {
	t.Helper()
	st := store.New(models.SampleCV())
	app := NewApp(st, nil, nil)
	t.Cleanup(app.Close)
	app.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return app, st
}

func press(app *App, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = app.Update(keyPress(k))
	}
	return cmd
}

func TestApp_StartsOnConfiguredSection(t *testing.T) {
	settings := models.DefaultSettings()
	settings.Editor.StartSection = "skills"

	app := NewApp(store.New(models.SampleCV()), settings, nil)
	defer app.Close()

	assert.Equal(t, models.SectionSkills, app.Section())
}

func TestApp_SectionNavigationWraps(t *testing.T) {
	app, _ := newTestApp(t)

	press(app, "tab")
	assert.Equal(t, models.SectionSummary, app.Section())

	press(app, "shift+tab", "shift+tab")
	assert.Equal(t, models.SectionCourses, app.Section())
}

func TestApp_EditField(t *testing.T) {
	app, st := newTestApp(t)

	press(app, "down", "enter")
	require.Equal(t, fieldView, app.state)

	press(app, "!", "esc")

	assert.Equal(t, browseView, app.state)
	name, _ := st.Snapshot().ContactInfo.Get("name")
	assert.Equal(t, "John Doe!", richtext.PlainText(name))
	assert.Contains(t, app.preview.Content(), "John Doe!")
}

func TestApp_RemoveAsksForConfirmation(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		present bool
	}{
		{name: "confirmed", answer: "y", present: false},
		{name: "cancelled", answer: "n", present: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, st := newTestApp(t)

			press(app, "down", "down", "d")
			require.True(t, app.confirm.Active())
			assert.Contains(t, app.View(), "Remove Title?")

			press(app, tt.answer)

			assert.False(t, app.confirm.Active())
			assert.Equal(t, tt.present, st.Snapshot().ContactInfo.Has("title"))
		})
	}
}

func TestApp_NameCannotBeRemoved(t *testing.T) {
	app, _ := newTestApp(t)

	press(app, "down", "d")

	assert.False(t, app.confirm.Active())
	assert.Equal(t, "Cannot remove Name", app.statusMsg)
}

func TestApp_ActionRows(t *testing.T) {
	app, st := newTestApp(t)

	for i := 0; i < 8; i++ {
		press(app, "down")
	}
	press(app, "enter")

	assert.True(t, st.Snapshot().ContactInfo.Has("website"))
	assert.Equal(t, "Website added", app.statusMsg)
}

func TestApp_SummaryVariantChangesLayout(t *testing.T) {
	app, _ := newTestApp(t)

	press(app, "tab", "v")

	assert.Equal(t, "Variant: Bullet Points", app.statusMsg)
	assert.Equal(t, sections.LayoutBullets, app.ctl.Summary.Layout())
	assert.Equal(t, "Bullet 1", app.targets[1].label)
}

func TestApp_TemplateCycles(t *testing.T) {
	app, _ := newTestApp(t)

	press(app, "t")

	assert.Equal(t, "classic", app.view.Template)
	assert.True(t, strings.HasPrefix(app.statusMsg, "Template: "))
}

func TestApp_RawPanel(t *testing.T) {
	app, _ := newTestApp(t)

	press(app, "r")
	require.Equal(t, rawView, app.state)
	assert.Equal(t, models.SectionContact, app.raw.Section())
	assert.Contains(t, app.View(), "RAW CONTACT INFO")

	press(app, "esc")
	assert.Equal(t, browseView, app.state)
	assert.False(t, app.view.Section(models.SectionContact).RawOpen)
}

func TestApp_CopyMarkdown(t *testing.T) {
	var copied string
	prev := clipboardWrite
	clipboardWrite = func(s string) error { copied = s; return nil }
	t.Cleanup(func() { clipboardWrite = prev })

	app, _ := newTestApp(t)
	press(app, "y")

	assert.True(t, strings.HasPrefix(copied, "# John Doe"))
	assert.Equal(t, "✓ Copied CV to clipboard", app.statusMsg)
}

func TestApp_PreviewToggle(t *testing.T) {
	app, _ := newTestApp(t)
	require.Contains(t, app.View(), "PREVIEW")

	press(app, "p")

	assert.NotContains(t, app.View(), "PREVIEW")
}

func TestApp_View(t *testing.T) {
	app := NewApp(store.New(models.SampleCV()), nil, nil)
	defer app.Close()
	assert.Equal(t, "Loading...", app.View())

	app.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	view := app.View()

	assert.Contains(t, view, "PLUQQY CV")
	assert.Contains(t, view, "Contact Info")
	assert.Contains(t, view, "John Doe")
}

func TestApp_Quit(t *testing.T) {
	tests := []string{"q", "ctrl+c"}
	for _, k := range tests {
		t.Run(k, func(t *testing.T) {
			app, _ := newTestApp(t)

			cmd := press(app, k)

			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestApp_StatusMsg(t *testing.T) {
	app, _ := newTestApp(t)

	app.Update(StatusMsg("Saved"))

	assert.Contains(t, app.View(), "Saved")
}

func TestApp_WordCountFollowsEdits(t *testing.T) {
	app, st := newTestApp(t)
	before := app.words
	require.Positive(t, before)
	assert.Contains(t, app.View(), "words")

	courses := append([]models.Course{}, st.Snapshot().Courses...)
	courses = append(courses, models.Course{Name: "Distributed Systems"})
	st.Merge(store.Partial{Courses: &courses})

	assert.Equal(t, before+2, app.words)
}
