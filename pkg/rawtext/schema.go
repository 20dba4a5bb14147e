package rawtext

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/pluqqy/pluqqy-cv/pkg/models"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	schemasOnce sync.Once
	schemas     map[models.SectionID]*gojsonschema.Schema
	schemasErr  error
)

func loadSchemas() (map[models.SectionID]*gojsonschema.Schema, error) {
	schemasOnce.Do(func() {
		schemas = make(map[models.SectionID]*gojsonschema.Schema)
		for _, id := range models.Sections() {
			raw, err := schemaFS.ReadFile("schemas/" + string(id) + ".json")
			if err != nil {
				schemasErr = fmt.Errorf("read schema %s: %w", id, err)
				return
			}
			s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
			if err != nil {
				schemasErr = fmt.Errorf("compile schema %s: %w", id, err)
				return
			}
			schemas[id] = s
		}
	})
	return schemas, schemasErr
}

// DecodeError reports why a buffer could not be decoded.
type DecodeError struct {
	Section models.SectionID
	Errors  []FieldError
}

// FieldError is a single problem at a location of the buffer.
type FieldError struct {
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
}

func (e *DecodeError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("decode %s:", e.Section))
	for _, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", fe.Field, fe.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// Validate checks text against the schema of section.
func Validate(section models.SectionID, text string) error {
	all, err := loadSchemas()
	if err != nil {
		return err
	}
	schema, ok := all[section]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(text))
	if err != nil {
		return &DecodeError{
			Section: section,
			Errors:  []FieldError{{Field: "(root)", Message: err.Error()}},
		}
	}
	if result.Valid() {
		return nil
	}

	de := &DecodeError{Section: section, Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		de.Errors = append(de.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return de
}
