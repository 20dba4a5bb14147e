package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pluqqy/pluqqy-cv/pkg/composer"
	"github.com/pluqqy/pluqqy-cv/pkg/models"
	"github.com/pluqqy/pluqqy-cv/pkg/styles"
)

// ValidateFilePath validates that a file path exists and is a file
func ValidateFilePath(path string) error {
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", path)
		}
		return fmt.Errorf("error accessing path: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, expected file: %s", path)
	}

	return nil
}

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateSection resolves a section argument such as "skills" or "experience".
func ValidateSection(name string) (models.SectionID, error) {
	s, err := models.ParseSection(name)
	if err != nil {
		return "", fmt.Errorf("%w (must be one of: %s)", err, sectionNames())
	}
	return s, nil
}

func sectionNames() string {
	var names []string
	for _, s := range models.Sections() {
		names = append(names, s.HeadingKey())
	}
	return strings.Join(names, ", ")
}

// ValidateExportFormat resolves the --format flag of export commands.
func ValidateExportFormat(format string) (composer.Format, error) {
	return composer.ParseFormat(format)
}

// ValidateTemplate checks a --template flag against the template catalog.
func ValidateTemplate(id string) error {
	if id == "" {
		return nil
	}
	for _, t := range styles.Templates {
		if t.ID == id {
			return nil
		}
	}
	return fmt.Errorf("unknown template: %s", id)
}
