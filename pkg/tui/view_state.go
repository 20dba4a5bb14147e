package tui

import (
	"github.com/pluqqy/pluqqy-cv/pkg/composer"
	"github.com/pluqqy/pluqqy-cv/pkg/models"
	"github.com/pluqqy/pluqqy-cv/pkg/sections"
	"github.com/pluqqy/pluqqy-cv/pkg/styles"
)

// SectionView is the presentation state of one section. It never reaches the
// document store.
type SectionView struct {
	Variant string
	RawOpen bool
}

// ViewState holds every presentation choice of the editor: the template, the
// variant and raw panel of each section and the per-entry toggles of the
// experience section.
type ViewState struct {
	Template   string
	Sections   map[models.SectionID]*SectionView
	Experience map[int]composer.ExperienceView
}

// NewViewState seeds the view state from settings.
func NewViewState(settings *models.Settings) *ViewState {
	if settings == nil {
		settings = models.DefaultSettings()
	}
	v := &ViewState{
		Template:   styles.LookupTemplate(settings.UI.Template).ID,
		Sections:   make(map[models.SectionID]*SectionView),
		Experience: make(map[int]composer.ExperienceView),
	}
	for _, s := range models.Sections() {
		v.Sections[s] = &SectionView{Variant: styles.Lookup(s, settings.UI.Variants.Variant(s)).ID}
	}
	return v
}

// Section returns the view of s, creating it when missing.
func (v *ViewState) Section(s models.SectionID) *SectionView {
	sv, ok := v.Sections[s]
	if !ok {
		sv = &SectionView{Variant: styles.Lookup(s, "").ID}
		v.Sections[s] = sv
	}
	return sv
}

// CycleVariant moves section s to its next variant and returns it.
func (v *ViewState) CycleVariant(s models.SectionID) styles.Variant {
	sv := v.Section(s)
	next := styles.NextVariant(s, sv.Variant)
	sv.Variant = next.ID
	return next
}

// CycleTemplate moves to the next page template and returns it.
func (v *ViewState) CycleTemplate() styles.Template {
	for i, t := range styles.Templates {
		if t.ID == v.Template {
			next := styles.Templates[(i+1)%len(styles.Templates)]
			v.Template = next.ID
			return next
		}
	}
	v.Template = styles.Templates[0].ID
	return styles.Templates[0]
}

// ToggleRaw opens or closes the raw panel of s and reports whether it is open.
func (v *ViewState) ToggleRaw(s models.SectionID) bool {
	sv := v.Section(s)
	sv.RawOpen = !sv.RawOpen
	return sv.RawOpen
}

// ToggleBullets shows or hides the responsibilities of experience entry i.
func (v *ViewState) ToggleBullets(i int) {
	e := v.Experience[i]
	e.HideBullets = !e.HideBullets
	v.setExperience(i, e)
}

// ToggleTechnologies shows or hides the technologies of experience entry i.
func (v *ViewState) ToggleTechnologies(i int) {
	e := v.Experience[i]
	e.HideTechnologies = !e.HideTechnologies
	v.setExperience(i, e)
}

func (v *ViewState) setExperience(i int, e composer.ExperienceView) {
	if e == (composer.ExperienceView{}) {
		delete(v.Experience, i)
		return
	}
	v.Experience[i] = e
}

// RemoveExperience forgets the toggles of entry i and shifts the toggles of
// later entries down so they stay with their entry.
func (v *ViewState) RemoveExperience(i int) {
	next := make(map[int]composer.ExperienceView, len(v.Experience))
	for k, e := range v.Experience {
		switch {
		case k < i:
			next[k] = e
		case k > i:
			next[k-1] = e
		}
	}
	v.Experience = next
}

// SummaryLayout maps the summary variant to the segmentation used to edit it.
func (v *ViewState) SummaryLayout() sections.Layout {
	return summaryLayout(v.Section(models.SectionSummary).Variant)
}

func summaryLayout(variant string) sections.Layout {
	switch variant {
	case "bullet-points":
		return sections.LayoutBullets
	case "multi-paragraph":
		return sections.LayoutParagraphs
	}
	return sections.LayoutSingle
}

// Options returns the composer options for the current view.
func (v *ViewState) Options(width int, controls bool) composer.Options {
	variants := make(map[models.SectionID]string, len(v.Sections))
	for s, sv := range v.Sections {
		variants[s] = sv.Variant
	}
	experience := make(map[int]composer.ExperienceView, len(v.Experience))
	for i, e := range v.Experience {
		experience[i] = e
	}
	return composer.Options{
		Width:      width,
		Template:   v.Template,
		Variants:   variants,
		Experience: experience,
		Controls:   controls,
	}
}
