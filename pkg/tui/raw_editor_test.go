package tui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-cv/pkg/models"
	"github.com/pluqqy/pluqqy-cv/pkg/rawtext"
	"github.com/pluqqy/pluqqy-cv/pkg/store"
)

func newTestRawEditor(t *testing.T) (*RawEditor, *store.Store) {
	t.Helper()
	st := store.New(models.SampleCV())
	r := NewRawEditor(rawtext.New(st))
	r.SetSize(80, 20)
	return r, st
}

func TestRawEditor_OpenShowsSection(t *testing.T) {
	r, _ := newTestRawEditor(t)

	r.Open(models.SectionSkills)

	assert.Equal(t, models.SectionSkills, r.Section())
	assert.Contains(t, r.Value(), `"name": "JavaScript/TypeScript"`)
}

func TestRawEditor_InvalidEditIsNotApplied(t *testing.T) {
	r, st := newTestRawEditor(t)
	r.Open(models.SectionSkills)
	before := st.Snapshot()

	r.Update(keyPress("x"))

	require.Error(t, r.Err())
	assert.Same(t, before, st.Snapshot())
	assert.Contains(t, r.View(), "not applied")

	r.Update(keyPress("backspace"))
	assert.NoError(t, r.Err())
}

func TestRawEditor_SwitchSections(t *testing.T) {
	r, _ := newTestRawEditor(t)
	r.Open(models.SectionCourses)

	r.Update(keyPress("alt+]"))
	assert.Equal(t, models.SectionContact, r.Section(), "wraps to the first section")

	r.Update(keyPress("alt+["))
	assert.Equal(t, models.SectionCourses, r.Section())
}

func TestRawEditor_ResetDropsBuffer(t *testing.T) {
	r, _ := newTestRawEditor(t)
	r.Open(models.SectionSkills)
	original := r.Value()
	r.Update(keyPress("x"))
	require.NotEqual(t, original, r.Value())

	_, status, _ := r.Update(keyPress(Shortcuts.ResetBuffer.Get()))

	assert.Equal(t, "Skills buffer reset", status)
	assert.Equal(t, original, r.Value())
	assert.NoError(t, r.Err())
}

func TestRawEditor_RefreshFollowsStore(t *testing.T) {
	r, st := newTestRawEditor(t)
	r.Open(models.SectionSummary)

	st.SetField(store.SummaryPath(), "Changed elsewhere")
	r.Refresh()

	assert.Contains(t, r.Value(), "Changed elsewhere")
}

func TestRawEditor_CopyBuffer(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status string
	}{
		{name: "copied", status: "✓ Copied Skills to clipboard"},
		{name: "no clipboard", err: errors.New("exec: xclip not found"), status: "Clipboard unavailable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var copied string
			prev := clipboardWrite
			clipboardWrite = func(s string) error { copied = s; return tt.err }
			t.Cleanup(func() { clipboardWrite = prev })

			r, _ := newTestRawEditor(t)
			r.Open(models.SectionSkills)

			_, status, _ := r.Update(keyPress(Shortcuts.CopyBuffer.Get()))

			assert.Equal(t, tt.status, status)
			assert.Equal(t, r.Value(), copied)
		})
	}
}

func TestRawEditor_EscCloses(t *testing.T) {
	r, _ := newTestRawEditor(t)
	r.Open(models.SectionSkills)

	done, _, _ := r.Update(keyPress("esc"))

	assert.True(t, done)
}
