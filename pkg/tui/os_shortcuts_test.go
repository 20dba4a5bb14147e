package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func withOS(t *testing.T, os OSType) {
	t.Helper()
	prev := currentOS
	currentOS = func() OSType { return os }
	t.Cleanup(func() { currentOS = prev })
}

func TestOSFromGOOS(t *testing.T) {
	tests := map[string]OSType{
		"darwin":  OSMac,
		"linux":   OSLinux,
		"windows": OSWindows,
		"plan9":   OSUnknown,
	}
	for goos, want := range tests {
		t.Run(goos, func(t *testing.T) {
			assert.Equal(t, want, osFromGOOS(goos))
		})
	}
}

func TestShortcutKey_Get(t *testing.T) {
	shortcut := ShortcutKey{Mac: "ctrl+s", Linux: "alt+a", Default: "ctrl+s"}

	tests := []struct {
		name string
		os   OSType
		want string
	}{
		{name: "mac", os: OSMac, want: "ctrl+s"},
		{name: "linux", os: OSLinux, want: "alt+a"},
		{name: "windows falls back to default", os: OSWindows, want: "ctrl+s"},
		{name: "unknown", os: OSUnknown, want: "ctrl+s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withOS(t, tt.os)
			assert.Equal(t, tt.want, shortcut.Get())
		})
	}
}

func TestShortcutKey_GetWithWarning(t *testing.T) {
	withOS(t, OSLinux)

	_, warning := ShortcutKey{Default: "ctrl+s"}.GetWithWarning()
	assert.Contains(t, warning, "stty -ixon")

	_, warning = Shortcuts.SelectAll.GetWithWarning()
	assert.Empty(t, warning)
}

func TestHelpLinesFollowShortcuts(t *testing.T) {
	withOS(t, OSLinux)
	assert.Contains(t, fieldHelp(), "alt+a select all")
	assert.Contains(t, rawHelp(), "alt+y copy buffer")

	withOS(t, OSMac)
	assert.Contains(t, fieldHelp(), "ctrl+s select all")
}
