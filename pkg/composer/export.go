package composer

import (
	"fmt"
	"strings"

	"github.com/pluqqy/pluqqy-cv/pkg/files"
	"github.com/pluqqy/pluqqy-cv/pkg/models"
)

// Format is a text export format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatPlain    Format = "plain"
)

// ParseFormat resolves a format name. "md" and "text" are accepted aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "plain", "text", "txt":
		return FormatPlain, nil
	}
	return "", fmt.Errorf("unknown export format: %s", s)
}

// exporter writes the structure of a CV; the flavor decides how marks and
// headings are spelled.
type exporter struct {
	out      strings.Builder
	markdown bool
}

func (e *exporter) text(markup string) string {
	if e.markdown {
		return markdownInline(markup)
	}
	return plain(markup)
}

func (e *exporter) title(s string) {
	if e.markdown {
		e.out.WriteString("# " + s + "\n")
		return
	}
	e.out.WriteString(s + "\n" + strings.Repeat("=", len([]rune(s))) + "\n")
}

func (e *exporter) heading(s string) {
	if e.markdown {
		e.out.WriteString("\n## " + s + "\n\n")
		return
	}
	e.out.WriteString("\n" + strings.ToUpper(s) + "\n" + strings.Repeat("-", len([]rune(s))) + "\n\n")
}

func (e *exporter) entry(s string) {
	if e.markdown {
		e.out.WriteString("### " + s + "\n")
		return
	}
	e.out.WriteString(s + "\n")
}

func (e *exporter) item(s string) {
	if e.markdown {
		e.out.WriteString("- " + s + "\n")
		return
	}
	e.out.WriteString("  * " + s + "\n")
}

func (e *exporter) line(s string) {
	if s == "" {
		return
	}
	e.out.WriteString(s + "\n")
}

// Export renders cv as markdown or plain text. Headings honour the overrides of
// the document; contact fields that are absent or empty are skipped.
func Export(cv *models.CV, format Format) (string, error) {
	if cv == nil {
		return "", fmt.Errorf("cannot export CV: nil document provided")
	}
	var e *exporter
	switch format {
	case FormatMarkdown:
		e = &exporter{markdown: true}
	case FormatPlain:
		e = &exporter{}
	default:
		return "", fmt.Errorf("cannot export CV: unknown format %q", format)
	}

	if info := cv.ContactInfo; info != nil {
		e.title(plain(info.Name))
		var fields []string
		for _, key := range info.Keys() {
			if key == models.ContactNameKey {
				continue
			}
			v, _ := info.Get(key)
			if text := e.text(v); text != "" {
				fields = append(fields, text)
			}
		}
		if len(fields) > 0 {
			e.out.WriteString("\n" + strings.Join(fields, " | ") + "\n")
		}
	}

	if summary := e.text(cv.Summary); summary != "" {
		e.heading(plain(cv.Headings.Heading(models.SectionSummary)))
		e.line(summary)
	}

	if len(cv.Experiences) > 0 {
		e.heading(plain(cv.Headings.Heading(models.SectionExperience)))
		for i, x := range cv.Experiences {
			if i > 0 {
				e.out.WriteString("\n")
			}
			e.entry(joinNonEmpty(", ", e.text(x.Position), e.text(x.Company)))
			end := "Present"
			if x.EndDate != nil && plain(*x.EndDate) != "" {
				end = e.text(*x.EndDate)
			}
			e.line(e.text(x.StartDate) + " - " + end)
			for _, r := range x.Responsibilities {
				e.item(e.text(r))
			}
			if len(x.Technologies) > 0 {
				var techs []string
				for _, t := range x.Technologies {
					techs = append(techs, e.text(t))
				}
				e.line("Technologies: " + strings.Join(techs, ", "))
			}
		}
	}

	if len(cv.Education) > 0 {
		e.heading(plain(cv.Headings.Heading(models.SectionEducation)))
		for i, x := range cv.Education {
			if i > 0 {
				e.out.WriteString("\n")
			}
			degree := e.text(x.Degree)
			if major := e.text(x.Major); major != "" {
				degree += " in " + major
			}
			e.entry(degree)
			meta := []string{e.text(x.Institution), e.text(x.GraduationYear)}
			if x.GPA != nil && plain(*x.GPA) != "" {
				meta = append(meta, "GPA "+e.text(*x.GPA))
			}
			e.line(joinNonEmpty(", ", meta...))
			for _, a := range x.Activities {
				e.item(e.text(a))
			}
		}
	}

	if len(cv.Skills) > 0 {
		e.heading(plain(cv.Headings.Heading(models.SectionSkills)))
		for _, s := range cv.Skills {
			e.item(fmt.Sprintf("%s (%s)", e.text(s.Name), s.Level))
		}
	}

	if len(cv.Certificates) > 0 {
		e.heading(plain(cv.Headings.Heading(models.SectionCertificates)))
		for _, c := range cv.Certificates {
			e.item(joinNonEmpty(", ", e.text(c.Name), e.text(c.Issuer), e.text(c.Date)))
		}
	}

	if len(cv.Courses) > 0 {
		e.heading(plain(cv.Headings.Heading(models.SectionCourses)))
		for _, c := range cv.Courses {
			e.item(joinNonEmpty(", ", e.text(c.Name), e.text(c.Platform), e.text(c.CompletionDate)))
		}
	}

	return e.out.String(), nil
}

// WriteExport writes an exported CV to outputPath.
func WriteExport(content string, outputPath string) error {
	if outputPath == "" {
		return fmt.Errorf("failed to write export: no output path")
	}
	if err := files.WriteFile(outputPath, content); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
