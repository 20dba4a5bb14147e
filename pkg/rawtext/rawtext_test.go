package rawtext

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-cv/pkg/models"
	"github.com/pluqqy/pluqqy-cv/pkg/store"
)

func TestEncode_Notation(t *testing.T) {
	cv := models.SampleCV()
	cv.Summary = "<p>Builds <strong>fast</strong> & safe</p>"

	text, err := Encode(cv, models.SectionSummary)
	require.NoError(t, err)
	assert.Equal(t, `"<p>Builds <strong>fast</strong> & safe</p>"`, text)

	text, err = Encode(cv, models.SectionContact)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "{\n  \"name\": \"John Doe\",\n  \"title\": "), text)

	text, err = Encode(cv, models.SectionSkills)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "[\n  {\n    \"name\": \"JavaScript/TypeScript\",\n    \"level\": \"Expert\"\n  },"), text)

	_, err = Encode(cv, "hobbies")
	assert.True(t, errors.Is(err, ErrUnknownSection))
}

func TestEncode_EmptyListsAreArrays(t *testing.T) {
	text, err := Encode(&models.CV{}, models.SectionCourses)
	require.NoError(t, err)
	assert.Equal(t, "[]", text)
}

func TestDecode_RoundTripIsIdempotent(t *testing.T) {
	for _, section := range models.Sections() {
		t.Run(string(section), func(t *testing.T) {
			cv := models.SampleCV()
			text, err := Encode(cv, section)
			require.NoError(t, err)

			first, err := Decode(section, text)
			require.NoError(t, err)

			again, err := Encode(store.Apply(cv, first), section)
			require.NoError(t, err)
			assert.Equal(t, text, again)

			second, err := Decode(section, again)
			require.NoError(t, err)
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("round trip drifted (-first +second):\n%s", diff)
			}
		})
	}
}

func TestDecode_RoundTripOfEditedBuffers(t *testing.T) {
	tests := []struct {
		name    string
		section models.SectionID
		text    string
	}{
		{
			name:    "null gpa",
			section: models.SectionEducation,
			text:    `[{"institution": "U", "degree": "BSc", "major": "CS", "graduationYear": "2018", "gpa": null}]`,
		},
		{
			name:    "null end date",
			section: models.SectionExperience,
			text:    `[{"company": "A", "position": "B", "startDate": "2020", "endDate": null, "responsibilities": ["x"], "technologies": ["Go"]}]`,
		},
		{
			name:    "empty activities",
			section: models.SectionEducation,
			text:    `[{"institution": "U", "degree": "BSc", "major": "CS", "graduationYear": "2018", "activities": []}]`,
		},
		{
			name:    "unknown keys inside entries",
			section: models.SectionCourses,
			text:    `[{"name": "Go", "platform": "Web", "completionDate": "2023", "hours": 12}]`,
		},
		{
			name:    "unordered extra contact keys",
			section: models.SectionContact,
			text:    `{"mastodon": "@jane", "email": "a@b.c", "name": "Jane", "blog": "jane.dev"}`,
		},
		{
			name:    "non-canonical skill level",
			section: models.SectionSkills,
			text:    `[{"name": "Go", "level": 7}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv := models.SampleCV()

			first, err := Decode(tt.section, tt.text)
			require.NoError(t, err)
			text, err := Encode(store.Apply(cv, first), tt.section)
			require.NoError(t, err)

			second, err := Decode(tt.section, text)
			require.NoError(t, err)
			again, err := Encode(store.Apply(cv, second), tt.section)
			require.NoError(t, err)

			assert.Equal(t, text, again)
			if diff := cmp.Diff(first, second); diff != "" {
				t.Errorf("round trip drifted (-first +second):\n%s", diff)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		section models.SectionID
		text    string
		wantErr bool
		check   func(t *testing.T, p store.Partial)
	}{
		{
			name:    "skill level coerced",
			section: models.SectionSkills,
			text:    `[{"name": "Go", "level": "Wizard"}, {"name": "Rust", "level": "Expert"}]`,
			check: func(t *testing.T, p store.Partial) {
				require.NotNil(t, p.Skills)
				assert.Equal(t, []models.Skill{
					{Name: "Go", Level: models.Beginner},
					{Name: "Rust", Level: models.Expert},
				}, *p.Skills)
			},
		},
		{
			name:    "skill level of any type coerced",
			section: models.SectionSkills,
			text:    `[{"name": "Go", "level": 3}, {"name": "Rust", "level": null}, {"name": "Zig"}, {"name": "C", "level": {"x": 1}}]`,
			check: func(t *testing.T, p store.Partial) {
				require.NotNil(t, p.Skills)
				assert.Equal(t, []models.Skill{
					{Name: "Go", Level: models.Beginner},
					{Name: "Rust", Level: models.Beginner},
					{Name: "Zig", Level: models.Beginner},
					{Name: "C", Level: models.Beginner},
				}, *p.Skills)
			},
		},
		{
			name:    "unknown keys ignored",
			section: models.SectionCertificates,
			text:    `[{"name": "CKA", "issuer": "CNCF", "date": "2024", "url": "https://example.com"}]`,
			check: func(t *testing.T, p store.Partial) {
				assert.Equal(t, []models.Certificate{{Name: "CKA", Issuer: "CNCF", Date: "2024"}}, *p.Certificates)
			},
		},
		{
			name:    "null end date means ongoing",
			section: models.SectionExperience,
			text:    `[{"company": "A", "position": "B", "startDate": "2020", "endDate": null, "responsibilities": ["x"], "technologies": []}]`,
			check: func(t *testing.T, p store.Partial) {
				exps := *p.Experiences
				assert.Nil(t, exps[0].EndDate)
				assert.Equal(t, []string{}, exps[0].Technologies)
			},
		},
		{
			name:    "empty activities are absent",
			section: models.SectionEducation,
			text:    `[{"institution": "U", "degree": "BSc", "major": "CS", "graduationYear": "2018", "activities": []}]`,
			check: func(t *testing.T, p store.Partial) {
				assert.Nil(t, (*p.Education)[0].Activities)
				assert.Nil(t, (*p.Education)[0].GPA)
			},
		},
		{
			name:    "contact without phone",
			section: models.SectionContact,
			text:    `{"name": "Jane", "email": "jane@example.com"}`,
			check: func(t *testing.T, p store.Partial) {
				assert.Equal(t, []string{"name", "email"}, p.ContactInfo.Keys())
				assert.False(t, p.ContactInfo.Has("phone"))
			},
		},
		{
			name:    "summary",
			section: models.SectionSummary,
			text:    `"<p>Hello</p>"`,
			check: func(t *testing.T, p store.Partial) {
				assert.Equal(t, "<p>Hello</p>", *p.Summary)
				assert.Nil(t, p.Skills)
			},
		},
		{name: "syntax error", section: models.SectionSkills, text: `[{"name": "Go",`, wantErr: true},
		{name: "missing required key", section: models.SectionSkills, text: `[{"level": "Expert"}]`, wantErr: true},
		{name: "wrong type", section: models.SectionCourses, text: `[{"name": 1, "platform": "x", "completionDate": "y"}]`, wantErr: true},
		{name: "contact without name", section: models.SectionContact, text: `{"email": "a@b.c"}`, wantErr: true},
		{name: "contact with nested value", section: models.SectionContact, text: `{"name": "a", "links": {"x": "y"}}`, wantErr: true},
		{name: "list expected", section: models.SectionExperience, text: `{}`, wantErr: true},
		{name: "null list", section: models.SectionSkills, text: `null`, wantErr: true},
		{name: "summary must be a string", section: models.SectionSummary, text: `["a"]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Decode(tt.section, tt.text)
			if tt.wantErr {
				require.Error(t, err)
				var de *DecodeError
				require.True(t, errors.As(err, &de), "got %T", err)
				assert.Equal(t, tt.section, de.Section)
				assert.NotEmpty(t, de.Errors)
				assert.Contains(t, err.Error(), string(tt.section))
				return
			}
			require.NoError(t, err)
			tt.check(t, p)
		})
	}
}

func TestSync_PanicsWithoutStore(t *testing.T) {
	assert.Panics(t, func() { New(nil) })
}

func TestSync_EditAppliesValidBuffer(t *testing.T) {
	st := store.New(models.SampleCV())
	s := New(st)
	prev := st.Snapshot()

	text := `{
  "name": "John Doe",
  "email": "john.doe@example.com"
}`
	out := s.Edit(models.SectionContact, text)

	require.True(t, out.Applied, "err: %v", out.Err)
	next := st.Snapshot()
	assert.False(t, next.ContactInfo.Has("phone"))
	assert.Equal(t, []models.SectionID{models.SectionContact}, store.Changed(prev, next))
	assert.Equal(t, text, s.Text(models.SectionContact), "buffer is kept as typed")
}

func TestSync_InvalidBufferLeavesDocument(t *testing.T) {
	st := store.New(models.SampleCV())
	s := New(st)
	prev := st.Snapshot()

	text := `[{"name": "Go", "level": `
	out := s.Edit(models.SectionSkills, text)

	assert.False(t, out.Applied)
	assert.Error(t, out.Err)
	assert.Same(t, prev, st.Snapshot())
	assert.Equal(t, text, s.Text(models.SectionSkills))
	assert.True(t, s.Touched(models.SectionSkills))
}

func TestSync_UntouchedSectionFollowsDocument(t *testing.T) {
	st := store.New(models.SampleCV())
	s := New(st)

	st.SetField(store.EntryPath(models.SectionCourses, 0, "name"), "Go in Depth")

	assert.False(t, s.Touched(models.SectionCourses))
	assert.Contains(t, s.Text(models.SectionCourses), `"name": "Go in Depth"`)
}

func TestSync_TouchedBuffersSurviveSwitching(t *testing.T) {
	st := store.New(models.SampleCV())
	s := New(st)

	s.Edit(models.SectionSkills, "not json")
	s.Edit(models.SectionSummary, `"new summary"`)
	st.SetField(store.EntryPath(models.SectionSkills, 0, "name"), "Elixir")

	assert.Equal(t, "not json", s.Text(models.SectionSkills))
	assert.Equal(t, `"new summary"`, s.Text(models.SectionSummary))
	assert.Equal(t, "new summary", st.Snapshot().Summary)

	s.Reset(models.SectionSkills)
	assert.Contains(t, s.Text(models.SectionSkills), `"name": "Elixir"`)
}

func TestSync_Buffer(t *testing.T) {
	st := store.New(models.SampleCV())
	s := New(st)

	b := s.Buffer(models.SectionCertificates)
	assert.Contains(t, b.Text, "AWS Certified Solutions Architect")

	out := b.OnChange(`[]`)
	assert.True(t, out.Applied)
	assert.Empty(t, st.Snapshot().Certificates)
	assert.Equal(t, "[]", s.Buffer(models.SectionCertificates).Text)
}

func TestSync_UnknownSection(t *testing.T) {
	s := New(store.New(models.SampleCV()))
	out := s.Edit("hobbies", "[]")
	assert.False(t, out.Applied)
	assert.True(t, errors.Is(out.Err, ErrUnknownSection))
	assert.False(t, s.Touched("hobbies"))
}
