package cli

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/pluqqy/pluqqy-cv/pkg/files"
	"github.com/pluqqy/pluqqy-cv/pkg/models"
)

// CommandContext carries what every command needs: settings, the seed
// document and the logger.
type CommandContext struct {
	SettingsPath string
	CVPath       string
	Settings     *models.Settings
	Logger       *slog.Logger
}

// NewCommandContext creates a context for the given --settings and --cv flag
// values. An empty settings flag falls back to the environment and then to
// the project default.
func NewCommandContext(settingsFlag, cvFlag string, logger *slog.Logger) *CommandContext {
	if logger == nil {
		logger = DiscardLogger()
	}
	return &CommandContext{
		SettingsPath: files.SettingsPath(settingsFlag),
		CVPath:       cvFlag,
		Logger:       logger,
	}
}

// LoadSettings reads the settings file once. A missing file yields defaults.
func (c *CommandContext) LoadSettings() (*models.Settings, error) {
	if c.Settings != nil {
		return c.Settings, nil
	}
	settings, err := files.ReadSettings(c.SettingsPath)
	if err != nil {
		return nil, err
	}
	c.Settings = settings
	return settings, nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	settings, err := c.LoadSettings()
	if err != nil {
		c.Logger.Warn("settings unreadable, using defaults", "path", c.SettingsPath, "error", err)
		settings = models.DefaultSettings()
		c.Settings = settings
	}
	return settings
}

// LoadCV reads the seed document, or returns the sample document when no
// seed was given.
func (c *CommandContext) LoadCV() (*models.CV, error) {
	if c.CVPath == "" {
		return models.SampleCV(), nil
	}
	if err := ValidateFilePath(c.CVPath); err != nil {
		return nil, err
	}
	cv, err := files.ReadCV(c.CVPath)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("seed document loaded", "path", c.CVPath)
	return cv, nil
}

// EditorLauncher handles all editor-related operations
type EditorLauncher struct {
	DefaultEditor string
}

// NewEditorLauncher creates a new editor launcher
func NewEditorLauncher() *EditorLauncher {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	return &EditorLauncher{
		DefaultEditor: editor,
	}
}

// command builds the editor invocation for path. EDITOR may carry arguments.
func (e *EditorLauncher) command(path string) *exec.Cmd {
	parts := strings.Fields(e.DefaultEditor)
	if len(parts) > 1 {
		return exec.Command(parts[0], append(parts[1:], path)...)
	}
	return exec.Command(e.DefaultEditor, path)
}

// OpenFile opens a file in the configured editor
func (e *EditorLauncher) OpenFile(path string) error {
	editorCmd := e.command(path)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// EditText writes content to a temp file named after pattern, opens it in the
// editor and returns what the user saved.
func (e *EditorLauncher) EditText(pattern, content string) (string, error) {
	tmpFile, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.WriteString(content); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := e.OpenFile(tmpFile.Name()); err != nil {
		return "", err
	}

	edited, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}
	return string(edited), nil
}
