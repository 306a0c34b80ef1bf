package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"no truncation needed", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"truncate with ellipsis", "hello world", 8, "hello..."},
		{"very short width", "hello", 3, "hel"},
		{"zero width", "hello", 0, ""},
		{"negative width", "hello", -1, ""},
		{"empty string", "", 10, ""},
		{"unicode fits", "Hello世界", 8, "Hello世界"},
		{"with ANSI no truncation", "\x1b[31mhello\x1b[0m", 5, "\x1b[31mhello\x1b[0m"},
		{"truncate with ANSI", "\x1b[31mhello world\x1b[0m", 8, "hello..."},
		{"width 4 with ellipsis", "hello world", 4, "h..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.width))
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"add padding", "npm", 6, "npm   "},
		{"no padding needed", "hello", 5, "hello"},
		{"already wider", "hello world", 5, "hello world"},
		{"empty string", "", 3, "   "},
		{"with ANSI", "\x1b[31mhi\x1b[0m", 5, "\x1b[31mhi\x1b[0m   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PadRight(tt.input, tt.width))
		})
	}
}

func TestCountVisibleWidth(t *testing.T) {
	assert.Equal(t, 5, CountVisibleWidth("hello"))
	assert.Equal(t, 5, CountVisibleWidth("\x1b[1;32mhello\x1b[0m"))
	assert.Equal(t, 2, CountVisibleWidth("世界"))
	assert.Equal(t, 0, CountVisibleWidth(""))
}

func TestIndent(t *testing.T) {
	assert.Equal(t, "  a\n\n  b", Indent("a\n\nb", 2))
	assert.Equal(t, "a", Indent("a", 0))
	assert.Equal(t, "", Indent("", 4))
}

func TestLastLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		want  string
	}{
		{"fewer lines than n", "one\ntwo\n", 5, "one\ntwo"},
		{"tail only", "1\n2\n3\n4\n", 2, "3\n4"},
		{"blank lines dropped", "a\n\n  \nb\n", 5, "a\nb"},
		{"zero n", "a\nb", 0, ""},
		{"empty input", "", 3, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LastLines(tt.input, tt.n))
		})
	}
}
