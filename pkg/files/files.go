package files

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/pluqqy-cv/pkg/models"
)

const (
	ConfigDir    = ".pluqqy-cv"
	SettingsFile = "settings.yaml"
	// SettingsEnv names the environment variable that overrides the settings path.
	SettingsEnv = "PLUQQY_CV_SETTINGS"
)

// ErrUnsupportedFormat is returned for documents that are neither JSON nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported document format")

func InitProjectStructure() error {
	if err := os.MkdirAll(ConfigDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}
	return nil
}

// SettingsPath resolves the settings file: an explicit path wins, then the
// environment, then the project default.
func SettingsPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(SettingsEnv); env != "" {
		return env
	}
	return filepath.Join(ConfigDir, SettingsFile)
}

// ReadSettings loads and validates the settings at path. A missing file yields
// the defaults. Keys absent from the file keep their default values.
func ReadSettings(path string) (*models.Settings, error) {
	settings := models.DefaultSettings()

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML %s: %w", path, err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	return settings, nil
}

// WriteSettings writes settings to path as YAML, creating parent directories.
func WriteSettings(path string, settings *models.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for settings: %w", err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	return nil
}

func formatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// ReadCV loads a seed document from a JSON or YAML file, chosen by extension,
// and normalizes it.
func ReadCV(path string) (*models.CV, error) {
	format, err := formatOf(path)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read CV %s: %w", path, err)
	}

	cv, err := ParseCV(content, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse CV %s: %w", path, err)
	}
	return cv, nil
}

// ParseCV decodes a document in the given format ("json" or "yaml").
func ParseCV(content []byte, format string) (*models.CV, error) {
	var cv models.CV
	switch format {
	case "json":
		if err := json.Unmarshal(content, &cv); err != nil {
			return nil, err
		}
	case "yaml":
		if err := yaml.Unmarshal(content, &cv); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if cv.ContactInfo == nil {
		return nil, fmt.Errorf("missing contactInfo")
	}
	return models.Normalize(&cv), nil
}

// MarshalCV encodes a document in the given format.
func MarshalCV(cv *models.CV, format string) ([]byte, error) {
	switch format {
	case "json":
		out, err := json.MarshalIndent(cv, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case "yaml":
		return yaml.Marshal(cv)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

// WriteCV writes cv to path in the format chosen by its extension.
func WriteCV(path string, cv *models.CV) error {
	format, err := formatOf(path)
	if err != nil {
		return err
	}

	content, err := MarshalCV(cv, format)
	if err != nil {
		return fmt.Errorf("failed to marshal CV: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write CV %s: %w", path, err)
	}
	return nil
}

// WriteFile writes content to a file
func WriteFile(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
