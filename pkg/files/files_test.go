package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/pluqqy-cv/pkg/models"
)

func TestInitProjectStructure(t *testing.T) {
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)
	os.Chdir(tempDir)

	require.NoError(t, InitProjectStructure())

	info, err := os.Stat(ConfigDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSettingsPath(t *testing.T) {
	t.Setenv(SettingsEnv, "")
	assert.Equal(t, filepath.Join(ConfigDir, SettingsFile), SettingsPath(""))

	t.Setenv(SettingsEnv, "/tmp/env.yaml")
	assert.Equal(t, "/tmp/env.yaml", SettingsPath(""))
	assert.Equal(t, "flag.yaml", SettingsPath("flag.yaml"))
}

func TestReadSettings(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, s *models.Settings)
		wantErr bool
	}{
		{
			name:    "partial file keeps defaults",
			content: "ui:\n  template: classic\n",
			check: func(t *testing.T, s *models.Settings) {
				assert.Equal(t, "classic", s.UI.Template)
				assert.True(t, s.UI.ShowPreview)
				assert.True(t, s.Editor.Typography)
				assert.Equal(t, "Click to edit...", s.Editor.Placeholder)
			},
		},
		{
			name:    "variants",
			content: "ui:\n  variants:\n    skills: bars\n    experience: cards\n",
			check: func(t *testing.T, s *models.Settings) {
				assert.Equal(t, "bars", s.UI.Variants.Variant(models.SectionSkills))
				assert.Equal(t, "cards", s.UI.Variants.Variant(models.SectionExperience))
				assert.Equal(t, "", s.UI.Variants.Variant(models.SectionCourses))
			},
		},
		{
			name:    "unknown template",
			content: "ui:\n  template: fancy\n",
			wantErr: true,
		},
		{
			name:    "unknown variant",
			content: "ui:\n  variants:\n    skills: pie\n",
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			content: "ui: [",
			wantErr: true,
		},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "settings"+string(rune('a'+i))+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			s, err := ReadSettings(path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestReadSettings_MissingFileUsesDefaults(t *testing.T) {
	s, err := ReadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, models.DefaultSettings(), s)
}

func TestWriteSettings_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", SettingsFile)
	s := models.DefaultSettings()
	s.UI.Template = "minimal"
	s.UI.Variants.Summary = "bullet-points"

	require.NoError(t, WriteSettings(path, s))
	got, err := ReadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestReadWriteCV(t *testing.T) {
	for _, ext := range []string{".json", ".yaml", ".yml"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "cv"+ext)
			cv := models.SampleCV()

			require.NoError(t, WriteCV(path, cv))
			got, err := ReadCV(path)
			require.NoError(t, err)

			if diff := cmp.Diff(cv, got, cmp.Comparer(func(a, b *models.ContactInfo) bool { return a.Equal(b) })); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseCV(t *testing.T) {
	cv, err := ParseCV([]byte(`{"contactInfo":{"name":"Ada"},"skills":[{"name":"Go","level":"Guru"}]}`), "json")
	require.NoError(t, err)
	assert.Equal(t, "Ada", cv.ContactInfo.Name)
	assert.Equal(t, models.Beginner, cv.Skills[0].Level)
	assert.NotNil(t, cv.Experiences)
	assert.NotNil(t, cv.Courses)

	_, err = ParseCV([]byte(`{"summary":"x"}`), "json")
	assert.Error(t, err)

	_, err = ParseCV([]byte(`contactInfo: {title: x}`), "yaml")
	assert.Error(t, err, "name is required")

	_, err = ParseCV([]byte(`{}`), "toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestReadCV_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadCV(filepath.Join(dir, "cv.txt"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = ReadCV(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	_, err = ReadCV(bad)
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")
	require.NoError(t, WriteFile(path, "# CV\n"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# CV\n", string(content))

	assert.Error(t, WriteFile(filepath.Join(path, "child"), "x"))
}
