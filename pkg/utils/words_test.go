package utils

import (
	"testing"
)

func TestCountWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{
			name:     "Empty string",
			input:    "",
			expected: 0,
		},
		{
			name:     "Simple sentence",
			input:    "The quick brown fox jumps over the lazy dog.",
			expected: 9,
		},
		{
			name:     "Markdown markers",
			input:    "# Jane Doe\n\n## Skills\n\n- Go\n- Rust\n\n---\n\n*Acme | 2020 - Present*",
			expected: 8,
		},
		{
			name:     "Extra whitespace",
			input:    "  spaced \t out\n\nwords  ",
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountWords(tt.input); got != tt.expected {
				t.Errorf("CountWords() = %d, expected %d", got, tt.expected)
			}
		})
	}
}

func TestFormatWordCount(t *testing.T) {
	tests := []struct {
		words    int
		expected string
	}{
		{0, "0 words"},
		{1, "1 word"},
		{450, "450 words"},
		{1500, "~1.5K words"},
		{12000, "~12K words"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := FormatWordCount(tt.words); got != tt.expected {
				t.Errorf("FormatWordCount(%d) = %s, expected %s", tt.words, got, tt.expected)
			}
		})
	}
}

func TestGetLengthStatus(t *testing.T) {
	tests := []struct {
		name          string
		words         int
		expectedPct   int
		expectedLimit int
		expectedPages int
		expectedState string
	}{
		{"Short", 225, 50, 450, 1, "good"},
		{"Full page", 450, 100, 450, 1, "good"},
		{"Two pages", 600, 66, 900, 2, "warning"},
		{"Three pages", 1000, 74, 1350, 3, "danger"},
		{"Beyond budget", 2700, 200, 1350, 3, "danger"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pct, limit, pages, status := GetLengthStatus(tt.words)
			if pct != tt.expectedPct || limit != tt.expectedLimit || pages != tt.expectedPages || status != tt.expectedState {
				t.Errorf("GetLengthStatus(%d) = (%d, %d, %d, %s), expected (%d, %d, %d, %s)",
					tt.words, pct, limit, pages, status,
					tt.expectedPct, tt.expectedLimit, tt.expectedPages, tt.expectedState)
			}
		})
	}
}
