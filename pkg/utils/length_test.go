package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty", "", 0},
		{"whitespace", "  \n\t ", 0},
		{"plain", "Senior Software Engineer", 3},
		{"markdown heading", "# John Doe\n\n## Summary", 3},
		{"rules and bullets", "John Doe\n========\n- Go\n- Rust", 4},
		{"punctuation attached", "Built APIs, pipelines & tools.", 4},
		{"unicode", "Zoë Müller — Köln", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountWords(tt.input))
		})
	}
}

func TestFormatWordCount(t *testing.T) {
	tests := []struct {
		words    int
		expected string
	}{
		{0, "0 words · ~0.0 pages"},
		{1, "1 word · ~0.0 pages"},
		{450, "450 words · ~1.0 pages"},
		{999, "999 words · ~2.2 pages"},
		{1350, "1.4K words · ~3.0 pages"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatWordCount(tt.words))
		})
	}
}

func TestGetLengthStatus(t *testing.T) {
	tests := []struct {
		words          int
		expectedPct    int
		expectedPages  int
		expectedStatus string
	}{
		{0, 0, 1, "good"},
		{225, 50, 1, "good"},
		{450, 100, 1, "good"},
		{451, 50, 2, "warning"},
		{900, 100, 2, "warning"},
		{1350, 150, 2, "danger"},
	}

	for _, tt := range tests {
		t.Run(tt.expectedStatus, func(t *testing.T) {
			pct, pages, status := GetLengthStatus(tt.words)
			assert.Equal(t, tt.expectedPct, pct)
			assert.Equal(t, tt.expectedPages, pages)
			assert.Equal(t, tt.expectedStatus, status)
		})
	}
}
