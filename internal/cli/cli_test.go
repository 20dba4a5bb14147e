package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-cv/pkg/files"
	"github.com/pluqqy/pluqqy-cv/pkg/models"
)

func TestCommandContext_LoadCV(t *testing.T) {
	t.Run("sample without seed", func(t *testing.T) {
		ctx := NewCommandContext("", "", nil)

		cv, err := ctx.LoadCV()

		require.NoError(t, err)
		name, _ := cv.ContactInfo.Get("name")
		assert.Equal(t, "John Doe", name)
	})

	t.Run("seed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "cv.yaml")
		cv := models.SampleCV()
		cv.Summary = "From file"
		require.NoError(t, files.WriteCV(path, cv))

		got, err := NewCommandContext("", path, nil).LoadCV()

		require.NoError(t, err)
		assert.Equal(t, "From file", got.Summary)
	})

	t.Run("missing seed", func(t *testing.T) {
		_, err := NewCommandContext("", filepath.Join(t.TempDir(), "nope.json"), nil).LoadCV()
		assert.ErrorContains(t, err, "path does not exist")
	})
}

func TestCommandContext_LoadSettingsWithDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  template: nope\n"), 0o644))

	ctx := NewCommandContext(path, "", nil)

	_, err := ctx.LoadSettings()
	require.Error(t, err)
	assert.Equal(t, models.DefaultSettings(), ctx.LoadSettingsWithDefault())
}

func TestEditorLauncher_Command(t *testing.T) {
	tests := []struct {
		editor string
		want   []string
	}{
		{editor: "vi", want: []string{"vi", "/tmp/f"}},
		{editor: "code --wait", want: []string{"code", "--wait", "/tmp/f"}},
	}
	for _, tt := range tests {
		t.Run(tt.editor, func(t *testing.T) {
			e := &EditorLauncher{DefaultEditor: tt.editor}
			assert.Equal(t, tt.want, e.command("/tmp/f").Args)
		})
	}
}

func TestEditorLauncher_EditTextWithTrue(t *testing.T) {
	if _, err := os.Stat("/bin/true"); err != nil {
		t.Skip("no /bin/true")
	}
	e := &EditorLauncher{DefaultEditor: "/bin/true"}

	got, err := e.EditText("raw-*.json", "{}\n")

	require.NoError(t, err)
	assert.Equal(t, "{}\n", got)
}

func TestOutputResults(t *testing.T) {
	data := map[string]string{"name": "Ada"}
	tests := []struct {
		format string
		want   string
	}{
		{format: "json", want: "{\n  \"name\": \"Ada\"\n}\n"},
		{format: "yaml", want: "name: Ada\n"},
		{format: "text", want: "map[name:Ada]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, OutputResults(&buf, tt.format, data))
			assert.Equal(t, tt.want, buf.String())
		})
	}

	assert.Error(t, OutputResults(&bytes.Buffer{}, "xml", data))
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	tf := NewTableFormatter(&buf)
	tf.Header("FIELD", "MESSAGE")
	tf.Row("skills.0.name", "is required")
	tf.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[2], "skills.0.name  is required"))
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.5 KB", FormatBytes(1536))
	assert.Equal(t, "héllo", TruncateString("héllo", 5))
	assert.Equal(t, "hé...", TruncateString("héllo!", 5))
	assert.Equal(t, "# Ada ...", FirstLine("# Ada\n\nmore"))
	assert.Equal(t, "# Ada", FirstLine("# Ada\n"))
}

func TestValidators(t *testing.T) {
	s, err := ValidateSection("experience")
	require.NoError(t, err)
	assert.Equal(t, models.SectionExperience, s)

	_, err = ValidateSection("hobbies")
	assert.ErrorContains(t, err, "contactInfo, summary, experience")

	assert.NoError(t, ValidateOutputFormat("yaml"))
	assert.Error(t, ValidateOutputFormat("xml"))
	assert.NoError(t, ValidateTemplate(""))
	assert.NoError(t, ValidateTemplate("classic"))
	assert.Error(t, ValidateTemplate("baroque"))

	dir := t.TempDir()
	assert.ErrorContains(t, ValidateFilePath(dir), "is a directory")
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input      string
		defaultYes bool
		want       bool
	}{
		{input: "y\n", want: true},
		{input: "yes\n", want: true},
		{input: "\n", defaultYes: true, want: true},
		{input: "\n", want: false},
		{input: "n\n", defaultYes: true, want: false},
	}
	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			prev := confirmInput
			confirmInput = strings.NewReader(tt.input)
			t.Cleanup(func() { confirmInput = prev })

			got, err := Confirm("Overwrite?", tt.defaultYes)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfirmOverwrite(t *testing.T) {
	tests := []struct {
		name     string
		yes      bool
		terminal bool
		input    string
		want     bool
	}{
		{name: "--yes skips the prompt", yes: true, terminal: true, want: true},
		{name: "no terminal skips the prompt", terminal: false, want: true},
		{name: "terminal accepts", terminal: true, input: "y\n", want: true},
		{name: "terminal default accepts", terminal: true, input: "\n", want: true},
		{name: "terminal declines", terminal: true, input: "n\n", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prevInput, prevTerminal := confirmInput, stdinIsTerminal
			confirmInput = strings.NewReader(tt.input)
			stdinIsTerminal = func() bool { return tt.terminal }
			SetGlobalFlags(false, false, tt.yes)
			t.Cleanup(func() {
				confirmInput, stdinIsTerminal = prevInput, prevTerminal
				SetGlobalFlags(false, false, false)
			})

			got, err := ConfirmOverwrite("cv.json")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "INFO", parseLevel("").String())
	assert.Equal(t, "WARN", parseLevel("warning").String())
}

func TestNewLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cv.log")
	t.Setenv(LogEnv, path)

	logger, closeLog, err := NewLogger()
	require.NoError(t, err)
	logger.Info("started", "section", "skills")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"started"`)
	assert.Contains(t, string(data), `"section":"skills"`)
}
