package tui

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-cv/pkg/field"
	"github.com/pluqqy/pluqqy-cv/pkg/models"
	"github.com/pluqqy/pluqqy-cv/pkg/richtext"
	"github.com/pluqqy/pluqqy-cv/pkg/sections"
	"github.com/pluqqy/pluqqy-cv/pkg/store"
)

func newTestDeps(t *testing.T, cv *models.CV) *editorDeps {
	t.Helper()
	st := store.New(cv)
	registry := field.NewRegistry(st, richtext.Options{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	t.Cleanup(registry.Close)
	return &editorDeps{
		st:       st,
		ctl:      sections.New(st),
		registry: registry,
		view:     NewViewState(nil),
	}
}

func labels(targets []target) []string {
	out := make([]string, len(targets))
	for i, t := range targets {
		out[i] = t.label
	}
	return out
}

func findTarget(t *testing.T, targets []target, label string) target {
	t.Helper()
	for _, tg := range targets {
		if tg.label == label {
			return tg
		}
	}
	require.Failf(t, "target not found", "no row labelled %q in %v", label, labels(targets))
	return target{}
}

func TestTargets_Contact(t *testing.T) {
	d := newTestDeps(t, models.SampleCV())

	got := d.targets(models.SectionContact)

	assert.Equal(t, []string{
		"Heading", "Name", "Title", "Email", "Phone", "Location", "LinkedIn", "GitHub",
		"+ Add Website", "+ Add Twitter",
	}, labels(got))
	assert.Nil(t, findTarget(t, got, "Name").remove, "the name is always present")
	assert.Equal(t, "John Doe", findTarget(t, got, "Name").value())

	require.True(t, findTarget(t, got, "Title").remove())
	assert.False(t, d.st.Snapshot().ContactInfo.Has("title"))

	assert.Equal(t, "Website added", findTarget(t, got, "+ Add Website").action())
	assert.True(t, d.st.Snapshot().ContactInfo.Has("website"))
}

func TestTargets_HeadingIsOwnedField(t *testing.T) {
	d := newTestDeps(t, models.SampleCV())

	heading := d.targets(models.SectionSkills)[0]
	require.True(t, heading.editable())
	assert.True(t, heading.owned)

	f, ok := heading.open()
	require.True(t, ok)
	f.Engine().InsertText("!")

	assert.Equal(t, "Technical Skills!", richtext.PlainText(d.ctl.Headings.Heading(models.SectionSkills)))
}

func TestTargets_SummaryLayouts(t *testing.T) {
	cv := models.SampleCV()
	cv.Summary = "First.\n\nSecond."
	d := newTestDeps(t, cv)

	assert.Equal(t, []string{"Heading", "Summary"}, labels(d.targets(models.SectionSummary)))

	d.ctl.Summary.ChangeLayout(sections.LayoutBullets)
	got := d.targets(models.SectionSummary)
	assert.Equal(t, []string{"Heading", "Bullet 1", "Bullet 2", "+ Add Bullet"}, labels(got))
	assert.Equal(t, "Second.", findTarget(t, got, "Bullet 2").value())

	require.True(t, findTarget(t, got, "Bullet 1").remove())
	got = d.targets(models.SectionSummary)
	assert.Equal(t, []string{"Heading", "Bullet 1", "+ Add Bullet"}, labels(got))
	assert.Nil(t, findTarget(t, got, "Bullet 1").remove, "the last segment stays")
}

func TestTargets_SummarySegmentEditsJoinedText(t *testing.T) {
	cv := models.SampleCV()
	cv.Summary = "First.\n\nSecond."
	d := newTestDeps(t, cv)
	d.ctl.Summary.ChangeLayout(sections.LayoutParagraphs)

	seg := findTarget(t, d.targets(models.SectionSummary), "Paragraph 2")
	f, ok := seg.open()
	require.True(t, ok)
	f.Engine().InsertText("!")

	paras := d.ctl.Summary.Paragraphs()
	require.Len(t, paras, 2)
	assert.Equal(t, "First.", paras[0])
	assert.Equal(t, "Second.!", richtext.PlainText(paras[1]))
}

func TestTargets_AbsentEndDateIsCreatedOnEdit(t *testing.T) {
	cv := models.SampleCV()
	cv.Experiences[0].EndDate = nil
	d := newTestDeps(t, cv)

	end := findTarget(t, d.targets(models.SectionExperience), "End date")
	assert.True(t, end.owned)
	assert.Equal(t, "", end.value())

	f, ok := end.open()
	require.True(t, ok)
	f.Engine().InsertText("2024")

	got := d.st.Snapshot().Experiences[0].EndDate
	require.NotNil(t, got)
	assert.Equal(t, "2024", richtext.PlainText(*got))
}

func TestTargets_ExperienceRows(t *testing.T) {
	cv := models.SampleCV()
	cv.Experiences[0].Technologies = []string{"Go"}
	d := newTestDeps(t, cv)

	got := d.targets(models.SectionExperience)

	assert.Equal(t, []string{
		"Heading", "#1 Position", "Company", "Start date", "End date",
		"Hide responsibilities", "•", "•", "•", "+ Add responsibility",
		"Hide technologies", "•", "+ Add technology",
		"+ Add experience",
	}, labels(got))
	assert.Nil(t, got[11].remove, "the last technology stays")
	assert.NotNil(t, got[6].remove)

	findTarget(t, got, "Hide responsibilities").action()
	assert.True(t, d.view.Experience[0].HideBullets)
	got = d.targets(models.SectionExperience)
	findTarget(t, got, "Show responsibilities")
}

func TestTargets_RemovingExperienceShiftsToggles(t *testing.T) {
	cv := models.SampleCV()
	cv.Experiences = append(cv.Experiences, models.DefaultExperience())
	d := newTestDeps(t, cv)
	d.view.ToggleTechnologies(1)

	require.True(t, findTarget(t, d.targets(models.SectionExperience), "#1 Position").remove())

	require.Len(t, d.st.Snapshot().Experiences, 1)
	assert.True(t, d.view.Experience[0].HideTechnologies)
}

func TestTargets_EducationActivitiesCanAllBeRemoved(t *testing.T) {
	cv := models.SampleCV()
	cv.Education[0].Activities = []string{"Chess"}
	d := newTestDeps(t, cv)

	got := d.targets(models.SectionEducation)

	item := findTarget(t, got, "•")
	require.NotNil(t, item.remove)
	require.True(t, item.remove())
	assert.Empty(t, d.st.Snapshot().Education[0].Activities)
}

func TestTargets_SkillLevelCycles(t *testing.T) {
	d := newTestDeps(t, models.SampleCV())

	level := findTarget(t, d.targets(models.SectionSkills), "Level: Expert")
	level.action()

	assert.Equal(t, models.Beginner, d.st.Snapshot().Skills[0].Level)
}

func TestTargets_SimpleLists(t *testing.T) {
	d := newTestDeps(t, models.SampleCV())

	tests := []struct {
		section models.SectionID
		want    []string
	}{
		{models.SectionCertificates, []string{"Heading", "#1 Name", "Issuer", "Date", "+ Add certificate"}},
		{models.SectionCourses, []string{"Heading", "#1 Name", "Platform", "Completion date", "+ Add course"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.section), func(t *testing.T) {
			got := d.targets(tt.section)
			assert.Equal(t, tt.want, labels(got))

			got[len(got)-1].action()
			assert.Len(t, d.targets(tt.section), len(tt.want)+3)
		})
	}
}
