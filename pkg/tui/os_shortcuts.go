package tui

import (
	"runtime"
)

// OSType represents the operating system type
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

// currentOS is replaced in tests.
var currentOS = func() OSType { return osFromGOOS(runtime.GOOS) }

func osFromGOOS(goos string) OSType {
	switch goos {
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// GetOS returns the current operating system type
func GetOS() OSType {
	return currentOS()
}

// ShortcutKey represents a keyboard shortcut with OS-specific variations
type ShortcutKey struct {
	Mac     string
	Linux   string
	Windows string
	Default string // Fallback if OS-specific not defined
}

// Get returns the appropriate shortcut for the current OS
func (s ShortcutKey) Get() string {
	switch GetOS() {
	case OSMac:
		if s.Mac != "" {
			return s.Mac
		}
	case OSLinux:
		if s.Linux != "" {
			return s.Linux
		}
	case OSWindows:
		if s.Windows != "" {
			return s.Windows
		}
	}
	return s.Default
}

// GetWithWarning returns the shortcut and a warning if there are known issues
func (s ShortcutKey) GetWithWarning() (shortcut string, warning string) {
	shortcut = s.Get()
	if GetOS() == OSLinux {
		switch shortcut {
		case "ctrl+s":
			warning = "(may need: stty -ixon)"
		case "ctrl+y":
			warning = "(caution: may suspend process)"
		}
	}
	return shortcut, warning
}

// Shortcuts holds the editor keys that collide with terminal control
// characters on some systems.
var Shortcuts = struct {
	SelectAll   ShortcutKey
	ResetBuffer ShortcutKey
	CopyBuffer  ShortcutKey
}{
	SelectAll: ShortcutKey{
		Mac:     "ctrl+s",
		Linux:   "alt+a", // Avoid Ctrl+S terminal conflict (XOFF)
		Windows: "alt+a",
		Default: "ctrl+s",
	},
	ResetBuffer: ShortcutKey{
		Default: "ctrl+r",
	},
	CopyBuffer: ShortcutKey{
		Mac:     "ctrl+y",
		Linux:   "alt+y",
		Windows: "alt+y",
		Default: "ctrl+y",
	},
}
