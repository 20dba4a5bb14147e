package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

var namedKeys = map[string]tea.KeyType{
	"enter":       tea.KeyEnter,
	"esc":         tea.KeyEsc,
	"tab":         tea.KeyTab,
	"shift+tab":   tea.KeyShiftTab,
	"up":          tea.KeyUp,
	"down":        tea.KeyDown,
	"left":        tea.KeyLeft,
	"right":       tea.KeyRight,
	"shift+left":  tea.KeyShiftLeft,
	"shift+right": tea.KeyShiftRight,
	"backspace":   tea.KeyBackspace,
	"ctrl+c":      tea.KeyCtrlC,
	"ctrl+r":      tea.KeyCtrlR,
	"ctrl+s":      tea.KeyCtrlS,
	"ctrl+v":      tea.KeyCtrlV,
	"ctrl+y":      tea.KeyCtrlY,
	"home":        tea.KeyHome,
	"end":         tea.KeyEnd,
	"space":       tea.KeySpace,
}

// keyPress builds the message bubbletea sends for a key such as "a", "enter"
// or "alt+b".
func keyPress(s string) tea.KeyMsg {
	if t, ok := namedKeys[s]; ok {
		return tea.KeyMsg{Type: t}
	}
	if rest, ok := strings.CutPrefix(s, "alt+"); ok {
		k := keyPress(rest)
		k.Alt = true
		return k
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeKeys(fn func(tea.KeyMsg), keys ...string) {
	for _, k := range keys {
		fn(keyPress(k))
	}
}
