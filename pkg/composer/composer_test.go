package composer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-cv/pkg/models"
)

func TestComposeCV(t *testing.T) {
	out, err := ComposeCV(models.SampleCV(), Options{Width: 100})
	require.NoError(t, err)

	expectedElements := []string{
		"John Doe",
		"Contact Information",
		"Professional Summary",
		"Work Experience",
		"Senior Software Engineer · Tech Corp",
		"2020-01 - Present",
		"Technical Skills",
		"Certifications",
		"AWS Certified Solutions Architect",
		"Professional Development",
		"Bachelor of Science in Computer Science",
		"GPA 3.8",
	}
	for _, expected := range expectedElements {
		assert.Contains(t, out, expected)
	}
	assert.NotContains(t, out, RemoveMarker, "controls are off by default")
}

func TestComposeCV_NilDocument(t *testing.T) {
	_, err := ComposeCV(nil, Options{})
	assert.Error(t, err)

	_, err = ComposeSection(nil, models.SectionSkills, Options{})
	assert.Error(t, err)

	_, err = ComposeSection(models.SampleCV(), models.SectionID("hobbies"), Options{})
	assert.Error(t, err)
}

func TestComposeSection_HeadingOverride(t *testing.T) {
	cv := models.SampleCV()
	cv.Headings = models.Headings{"experience": "Career"}

	out, err := ComposeSection(cv, models.SectionExperience, Options{})
	require.NoError(t, err)
	assert.Contains(t, out, "Career")
	assert.NotContains(t, out, "Work Experience")
}

func TestComposeSection_EmptyListRendersHeading(t *testing.T) {
	cv := models.SampleCV()
	cv.Courses = []models.Course{}

	out, err := ComposeSection(cv, models.SectionCourses, Options{})
	require.NoError(t, err)
	assert.Equal(t, "Professional Development", strings.TrimSpace(out))
}

func TestComposeSection_Contact(t *testing.T) {
	cv := models.SampleCV()
	cv.ContactInfo = models.NewContactInfo("Ada", map[string]string{"email": "ada@example.com", "website": ""})

	for _, variant := range []string{"modern-grid", "centered", "minimalist"} {
		t.Run(variant, func(t *testing.T) {
			opts := Options{Width: 80, Variants: map[models.SectionID]string{models.SectionContact: variant}}
			out, err := ComposeSection(cv, models.SectionContact, opts)
			require.NoError(t, err)
			assert.Contains(t, out, "Ada")
			assert.Contains(t, out, "ada@example.com")
			assert.NotContains(t, out, "Phone", "absent fields are omitted")
			assert.NotContains(t, out, "Website", "empty fields are hidden without controls")
		})
	}

	out, err := ComposeSection(cv, models.SectionContact, Options{Controls: true})
	require.NoError(t, err)
	assert.Contains(t, out, "Website")
	assert.Contains(t, out, "Click to edit...")
	assert.Equal(t, 2, strings.Count(out, RemoveMarker), "name has no remove control")
}

func TestComposeSection_RemoveControls(t *testing.T) {
	cv := models.SampleCV()
	cv.Experiences[0].Responsibilities = []string{"Only one"}
	cv.Experiences[0].Technologies = []string{"Go", "SQL"}

	out, err := ComposeSection(cv, models.SectionExperience, Options{Controls: true})
	require.NoError(t, err)

	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Only one") {
			assert.NotContains(t, line, RemoveMarker, "last responsibility cannot be removed")
		}
		if strings.Contains(line, "Technologies:") {
			assert.Equal(t, 2, strings.Count(line, RemoveMarker))
		}
	}
}

func TestComposeSection_ExperienceToggles(t *testing.T) {
	cv := models.SampleCV()
	opts := Options{Experience: map[int]ExperienceView{0: {HideBullets: true, HideTechnologies: true}}}

	out, err := ComposeSection(cv, models.SectionExperience, opts)
	require.NoError(t, err)
	assert.NotContains(t, out, "Led a team")
	assert.NotContains(t, out, "Technologies:")
	assert.Contains(t, out, "Tech Corp")
}

func TestComposeSection_SummaryVariants(t *testing.T) {
	cv := models.SampleCV()
	cv.Summary = "<p>First <strong>bold</strong>.</p>\n\nSecond."

	tests := []struct {
		variant string
		want    []string
	}{
		{"single-paragraph", []string{"First bold."}},
		{"bullet-points", []string{"• First bold.", "• Second."}},
		{"multi-paragraph", []string{"First bold.", "Second."}},
	}
	for _, tt := range tests {
		t.Run(tt.variant, func(t *testing.T) {
			opts := Options{Variants: map[models.SectionID]string{models.SectionSummary: tt.variant}}
			out, err := ComposeSection(cv, models.SectionSummary, opts)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestComposeSection_SkillVariants(t *testing.T) {
	cv := models.SampleCV()
	cv.Skills = []models.Skill{{Name: "Go", Level: models.Advanced}}

	bars, err := ComposeSection(cv, models.SectionSkills, Options{Variants: map[models.SectionID]string{models.SectionSkills: "bars"}})
	require.NoError(t, err)
	assert.Contains(t, bars, strings.Repeat("█", 15)+strings.Repeat("░", 5))
	assert.Contains(t, bars, "Advanced")

	tags, err := ComposeSection(cv, models.SectionSkills, Options{Variants: map[models.SectionID]string{models.SectionSkills: "tags"}})
	require.NoError(t, err)
	assert.Contains(t, tags, "Go · Advanced")
}

func TestComposeSection_UnknownVariantFallsBack(t *testing.T) {
	cv := models.SampleCV()
	def, err := ComposeSection(cv, models.SectionCourses, Options{})
	require.NoError(t, err)
	got, err := ComposeSection(cv, models.SectionCourses, Options{Variants: map[models.SectionID]string{models.SectionCourses: "carousel"}})
	require.NoError(t, err)
	assert.Equal(t, def, got)
}

func TestRichBlock(t *testing.T) {
	assert.Equal(t, "", richBlock("", 40))
	assert.Equal(t, "", richBlock("<p></p>", 40))
	assert.Equal(t, "one\ntwo", richBlock("<p>one</p><p>two</p>", 0))
	assert.Equal(t, "a\nb", richBlock("<p>a<br>b</p>", 0))

	centered := richBlock(`<p style="text-align: center">hi</p>`, 10)
	assert.Equal(t, "    hi    ", centered)

	wrapped := richBlock("<p>aaa bbb ccc</p>", 7)
	assert.Equal(t, "aaa bbb\nccc", wrapped)
}

func TestMarkdownRuns(t *testing.T) {
	tests := []struct {
		name   string
		markup string
		want   string
	}{
		{"plain", "<p>hello</p>", "hello"},
		{"bold", "<p><strong>hi</strong> there</p>", "**hi** there"},
		{"italic keeps spaces outside", "<p>a<em> b </em>c</p>", "a *b* c"},
		{"bold italic", "<p><strong><em>x</em></strong></p>", "***x***"},
		{"underline", "<p><u>u</u></p>", "<u>u</u>"},
		{"hard break", "<p>a<br>b</p>", "a  \nb"},
		{"paragraphs", "<p>a</p><p>b</p>", "a\n\nb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, markdownInline(tt.markup))
		})
	}
}

func TestExport(t *testing.T) {
	cv := models.SampleCV()
	cv.Summary = "<p>I build <strong>things</strong>.</p>"

	md, err := Export(cv, FormatMarkdown)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(md, "# John Doe\n"))
	for _, expected := range []string{
		"## Professional Summary",
		"I build **things**.",
		"### Senior Software Engineer, Tech Corp",
		"2020-01 - Present",
		"- Led a team of 5 developers in building a microservices architecture",
		"Technologies: React, Node.js, TypeScript, AWS",
		"### Bachelor of Science in Computer Science",
		"University of Technology, 2018, GPA 3.8",
		"- React (Expert)",
		"- AWS Certified Solutions Architect, Amazon Web Services, 2023",
		"- Advanced TypeScript, Frontend Masters, 2023",
		"john.doe@example.com",
	} {
		assert.Contains(t, md, expected)
	}

	txt, err := Export(cv, FormatPlain)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(txt, "John Doe\n========\n"))
	assert.Contains(t, txt, "PROFESSIONAL SUMMARY")
	assert.Contains(t, txt, "I build things.")
	assert.NotContains(t, txt, "**")

	_, err = Export(cv, Format("pdf"))
	assert.Error(t, err)
	_, err = Export(nil, FormatMarkdown)
	assert.Error(t, err)
}

func TestExport_SkipsEmptySections(t *testing.T) {
	cv := models.Normalize(&models.CV{ContactInfo: models.NewContactInfo("Ada", map[string]string{"email": ""})})

	md, err := Export(cv, FormatMarkdown)
	require.NoError(t, err)
	assert.Equal(t, "# Ada\n", md)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"md": FormatMarkdown, "Markdown": FormatMarkdown, "text": FormatPlain, "plain": FormatPlain} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("pdf")
	assert.Error(t, err)
}

func TestWriteExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.md")
	require.NoError(t, WriteExport("# CV\n", path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# CV\n", string(content))

	assert.Error(t, WriteExport("x", ""))
}
