package tui

import (
	"fmt"

	"github.com/pluqqy/pluqqy-cv/pkg/field"
	"github.com/pluqqy/pluqqy-cv/pkg/models"
	"github.com/pluqqy/pluqqy-cv/pkg/richtext"
	"github.com/pluqqy/pluqqy-cv/pkg/sections"
	"github.com/pluqqy/pluqqy-cv/pkg/store"
)

// target is one row of the section editor. A row is either a rich-text field
// (open is set) or an action (action is set); either may be removable.
type target struct {
	label  string
	depth  int
	value  func() string
	open   func() (*field.Field, bool)
	action func() string
	remove func() bool
	// owned fields are built per edit and not tracked by the registry.
	owned bool
}

func (t target) editable() bool { return t.open != nil }

// editorDeps is what building the targets of a section needs.
type editorDeps struct {
	st       *store.Store
	ctl      *sections.Controllers
	registry *field.Registry
	view     *ViewState
	opts     richtext.Options
}

var entryLabels = map[string]string{
	"company":        "Company",
	"position":       "Position",
	"startDate":      "Start date",
	"endDate":        "End date",
	"institution":    "Institution",
	"degree":         "Degree",
	"major":          "Major",
	"graduationYear": "Graduation year",
	"gpa":            "GPA",
	"name":           "Name",
	"issuer":         "Issuer",
	"date":           "Date",
	"platform":       "Platform",
	"completionDate": "Completion date",
}

var subListLabels = map[string]string{
	"responsibilities": "responsibility",
	"technologies":     "technology",
	"activities":       "activity",
}

// pathTarget binds a row to the string leaf at p through the field registry.
func (d *editorDeps) pathTarget(label string, depth int, p store.Path) target {
	return target{
		label: label,
		depth: depth,
		value: func() string {
			v, _ := d.st.Get(p)
			return v
		},
		open: func() (*field.Field, bool) { return d.registry.Open(p) },
	}
}

// sourceTarget binds a row to a value that has no path of its own, such as a
// summary segment or an absent optional field.
func (d *editorDeps) sourceTarget(label string, depth int, src field.Source) target {
	return target{
		label: label,
		depth: depth,
		value: src.Value,
		open:  func() (*field.Field, bool) { return field.New(src, d.opts), true },
		owned: true,
	}
}

func actionTarget(label string, depth int, fn func() string) target {
	return target{label: label, depth: depth, action: fn}
}

// targets lists the rows of section s for the current snapshot.
func (d *editorDeps) targets(s models.SectionID) []target {
	out := []target{d.headingTarget(s)}
	switch s {
	case models.SectionContact:
		out = append(out, d.contactTargets()...)
	case models.SectionSummary:
		out = append(out, d.summaryTargets()...)
	case models.SectionExperience:
		out = append(out, d.experienceTargets()...)
	case models.SectionEducation:
		out = append(out, d.educationTargets()...)
	case models.SectionSkills:
		out = append(out, d.skillTargets()...)
	case models.SectionCertificates:
		out = append(out, d.simpleListTargets(s, d.ctl.Certificates.Len(), d.ctl.Certificates.RemoveAt, d.ctl.Certificates.AppendDefault, "certificate", "name", "issuer", "date")...)
	case models.SectionCourses:
		out = append(out, d.simpleListTargets(s, d.ctl.Courses.Len(), d.ctl.Courses.RemoveAt, d.ctl.Courses.AppendDefault, "course", "name", "platform", "completionDate")...)
	}
	return out
}

func (d *editorDeps) headingTarget(s models.SectionID) target {
	return d.sourceTarget("Heading", 0, field.Source{
		Value:    func() string { return d.ctl.Headings.Heading(s) },
		OnChange: func(v string) { d.ctl.Headings.SetHeading(s, v) },
	})
}

func (d *editorDeps) contactTargets() []target {
	var out []target
	for _, row := range d.ctl.Contact.Rows() {
		t := d.pathTarget(row.Label, 0, store.ContactPath(row.Key))
		if row.Removable {
			key := row.Key
			t.remove = func() bool { return d.ctl.Contact.RemoveField(key) }
		}
		out = append(out, t)
	}
	for _, f := range d.ctl.Contact.Available() {
		key, label := f.Key, f.Label
		out = append(out, actionTarget("+ Add "+label, 0, func() string {
			if d.ctl.Contact.AddField(key) {
				return label + " added"
			}
			return ""
		}))
	}
	return out
}

func (d *editorDeps) summaryTargets() []target {
	summary := d.ctl.Summary
	if summary.Layout() == sections.LayoutSingle {
		return []target{d.pathTarget("Summary", 0, store.SummaryPath())}
	}

	name := "Paragraph"
	if summary.Layout() == sections.LayoutBullets {
		name = "Bullet"
	}
	var out []target
	for i := range summary.Paragraphs() {
		i := i
		t := d.sourceTarget(fmt.Sprintf("%s %d", name, i+1), 0, field.Source{
			Value: func() string {
				paras := summary.Paragraphs()
				if i >= len(paras) {
					return ""
				}
				return paras[i]
			},
			OnChange: func(v string) { summary.SetParagraph(i, v) },
		})
		if summary.CanRemove() {
			t.remove = func() bool { return summary.RemoveParagraph(i) }
		}
		out = append(out, t)
	}
	return append(out, actionTarget("+ Add "+name, 0, func() string {
		summary.AddParagraph()
		return name + " added"
	}))
}

// entryField binds a scalar of entry i. Optional fields that are absent are
// bound through the list controller so the first edit creates them.
func (d *editorDeps) entryField(s models.SectionID, i int, key string, depth int, set func(i int, key, value string) bool) target {
	p := store.EntryPath(s, i, key)
	if _, ok := d.st.Get(p); ok {
		return d.pathTarget(entryLabels[key], depth, p)
	}
	return d.sourceTarget(entryLabels[key], depth, field.Source{
		Value:    func() string { v, _ := d.st.Get(p); return v },
		OnChange: func(v string) { set(i, key, v) },
	})
}

// subListTargets lists the items of a nested list. keepLast leaves the last
// item without a remove control.
func subListTargets[T models.Entry[T]](d *editorDeps, s models.SectionID, i int, sub *sections.SubList[T], key string, keepLast bool) []target {
	var out []target
	items := sub.Items(i)
	for j := range items {
		j := j
		t := d.pathTarget("•", 2, store.ItemPath(s, i, key, j))
		if !keepLast || len(items) > 1 {
			t.remove = func() bool { return sub.RemoveAt(i, j) }
		}
		out = append(out, t)
	}
	noun := subListLabels[key]
	return append(out, actionTarget("+ Add "+noun, 2, func() string {
		sub.AppendDefault(i)
		return noun + " added"
	}))
}

func (d *editorDeps) experienceTargets() []target {
	var out []target
	list := d.ctl.Experience
	for i := range list.Entries() {
		i := i
		head := d.pathTarget(fmt.Sprintf("#%d Position", i+1), 0, store.EntryPath(models.SectionExperience, i, "position"))
		head.remove = func() bool {
			if !list.RemoveAt(i) {
				return false
			}
			d.view.RemoveExperience(i)
			return true
		}
		out = append(out, head)
		for _, key := range []string{"company", "startDate", "endDate"} {
			out = append(out, d.entryField(models.SectionExperience, i, key, 1, list.SetFieldAt))
		}

		bullets := "Hide responsibilities"
		if d.view.Experience[i].HideBullets {
			bullets = "Show responsibilities"
		}
		out = append(out, actionTarget(bullets, 1, func() string {
			d.view.ToggleBullets(i)
			return ""
		}))
		out = append(out, subListTargets(d, models.SectionExperience, i, list.Sub("responsibilities"), "responsibilities", true)...)

		techs := "Hide technologies"
		if d.view.Experience[i].HideTechnologies {
			techs = "Show technologies"
		}
		out = append(out, actionTarget(techs, 1, func() string {
			d.view.ToggleTechnologies(i)
			return ""
		}))
		out = append(out, subListTargets(d, models.SectionExperience, i, list.Sub("technologies"), "technologies", true)...)
	}
	return append(out, actionTarget("+ Add experience", 0, func() string {
		list.AppendDefault()
		return "Experience added"
	}))
}

func (d *editorDeps) educationTargets() []target {
	var out []target
	list := d.ctl.Education
	for i := range list.Entries() {
		i := i
		head := d.pathTarget(fmt.Sprintf("#%d Institution", i+1), 0, store.EntryPath(models.SectionEducation, i, "institution"))
		head.remove = func() bool { return list.RemoveAt(i) }
		out = append(out, head)
		for _, key := range []string{"degree", "major", "graduationYear", "gpa"} {
			out = append(out, d.entryField(models.SectionEducation, i, key, 1, list.SetFieldAt))
		}
		out = append(out, subListTargets(d, models.SectionEducation, i, list.Sub("activities"), "activities", false)...)
	}
	return append(out, actionTarget("+ Add education", 0, func() string {
		list.AppendDefault()
		return "Education added"
	}))
}

func (d *editorDeps) skillTargets() []target {
	var out []target
	skills := d.ctl.Skills
	for i, sk := range skills.Entries() {
		i := i
		t := d.pathTarget(fmt.Sprintf("#%d Skill", i+1), 0, store.EntryPath(models.SectionSkills, i, "name"))
		t.remove = func() bool { return skills.RemoveAt(i) }
		out = append(out, t)
		out = append(out, actionTarget("Level: "+string(sk.Level), 1, func() string {
			skills.CycleLevel(i)
			return ""
		}))
	}
	return append(out, actionTarget("+ Add skill", 0, func() string {
		skills.AppendDefault()
		return "Skill added"
	}))
}

func (d *editorDeps) simpleListTargets(s models.SectionID, n int, remove func(int) bool, add func(), noun string, keys ...string) []target {
	var out []target
	for i := 0; i < n; i++ {
		i := i
		head := d.pathTarget(fmt.Sprintf("#%d %s", i+1, entryLabels[keys[0]]), 0, store.EntryPath(s, i, keys[0]))
		head.remove = func() bool { return remove(i) }
		out = append(out, head)
		for _, key := range keys[1:] {
			out = append(out, d.pathTarget(entryLabels[key], 1, store.EntryPath(s, i, key)))
		}
	}
	return append(out, actionTarget("+ Add "+noun, 0, func() string {
		add()
		return noun + " added"
	}))
}
