// Package examples holds ready-made CVs that can be written to disk as seed
// documents for the editor.
package examples

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pluqqy/pluqqy-cv/pkg/files"
	"github.com/pluqqy/pluqqy-cv/pkg/models"
)

// Example is one installable seed document.
type Example struct {
	Category    string
	Name        string
	Description string
	Filename    string
	Build       func() *models.CV
}

// Categories lists the example categories in display order.
func Categories() []string {
	return []string{"engineer", "designer", "graduate"}
}

// GetExamples returns the examples of category, or every example for "all".
// An unknown category yields nothing.
func GetExamples(category string) []Example {
	switch category {
	case "engineer":
		return tag("engineer", getEngineerExamples())
	case "designer":
		return tag("designer", getDesignerExamples())
	case "graduate":
		return tag("graduate", getGraduateExamples())
	case "all":
		var all []Example
		for _, c := range Categories() {
			all = append(all, GetExamples(c)...)
		}
		return all
	default:
		return nil
	}
}

func tag(category string, examples []Example) []Example {
	for i := range examples {
		examples[i].Category = category
	}
	return examples
}

// Install writes ex into dir and returns the written path. Without force an
// existing file is left alone and reported as an error.
func Install(ex Example, dir string, force bool) (string, error) {
	path := filepath.Join(dir, ex.Filename)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("example already exists at %s", path)
		}
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if err := files.WriteCV(path, ex.Build()); err != nil {
		return "", err
	}
	return path, nil
}
