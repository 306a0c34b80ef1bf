package prompter

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schmitthub/tsinit/internal/iostreams/iostreamstest"
)

func newInteractive(input string) (*Prompter, *iostreamstest.TestIOStreams) {
	ios := iostreamstest.New()
	ios.SetInteractive(true)
	ios.InBuf.SetInput(input)
	return NewPrompter(ios.IOStreams), ios
}

func TestPrompter_String(t *testing.T) {
	errBad := errors.New("bad value")

	tests := []struct {
		name        string
		input       string
		cfg         PromptConfig
		interactive bool
		want        string
		wantErr     error
	}{
		{
			name:        "returns user input",
			input:       "user value\n",
			cfg:         PromptConfig{Message: "Enter value"},
			interactive: true,
			want:        "user value",
		},
		{
			name:        "returns default on empty input",
			input:       "\n",
			cfg:         PromptConfig{Message: "Enter value", Default: "default"},
			interactive: true,
			want:        "default",
		},
		{
			name:        "returns default on EOF",
			input:       "",
			cfg:         PromptConfig{Message: "Enter value", Default: "default"},
			interactive: true,
			want:        "default",
		},
		{
			name:        "accepts final line without newline",
			input:       "my-app",
			cfg:         PromptConfig{Message: "Project name", Required: true},
			interactive: true,
			want:        "my-app",
		},
		{
			name:        "required with empty input",
			input:       "\n",
			cfg:         PromptConfig{Message: "Project name", Required: true},
			interactive: true,
			wantErr:     ErrRequired,
		},
		{
			name:        "validator error is returned",
			input:       "nope\n",
			cfg:         PromptConfig{Message: "Enter", Validator: func(string) error { return errBad }},
			interactive: true,
			wantErr:     errBad,
		},
		{
			name:        "non-interactive returns default",
			cfg:         PromptConfig{Message: "Enter", Default: "fallback"},
			interactive: false,
			want:        "fallback",
		},
		{
			name:        "non-interactive required without default",
			cfg:         PromptConfig{Message: "Enter", Required: true},
			interactive: false,
			wantErr:     ErrRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ios := newInteractive(tt.input)
			ios.SetInteractive(tt.interactive)

			got, err := p.String(tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrompter_StringShowsDefault(t *testing.T) {
	p, ios := newInteractive("\n")

	_, err := p.String(PromptConfig{Message: "Project name", Default: "my-app"})
	require.NoError(t, err)
	assert.Equal(t, "Project name [my-app]: ", ios.ErrBuf.String())
	assert.Empty(t, ios.OutBuf.String())
}

func TestPrompter_Confirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{name: "y", input: "y\n", want: true},
		{name: "yes uppercase", input: "YES\n", want: true},
		{name: "n with default yes", input: "n\n", defaultYes: true, want: false},
		{name: "empty uses default yes", input: "\n", defaultYes: true, want: true},
		{name: "empty uses default no", input: "\n", defaultYes: false, want: false},
		{name: "EOF uses default", input: "", defaultYes: true, want: true},
		{name: "other text is no", input: "maybe\n", defaultYes: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newInteractive(tt.input)
			got, err := p.Confirm("Continue?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrompter_ConfirmHint(t *testing.T) {
	p, ios := newInteractive("\n")
	_, err := p.Confirm("Install dependencies?", true)
	require.NoError(t, err)
	assert.Equal(t, "Install dependencies? [Y/n] ", ios.ErrBuf.String())
}

func TestPrompter_ConfirmNonInteractive(t *testing.T) {
	ios := iostreamstest.New()
	p := NewPrompter(ios.IOStreams)

	got, err := p.Confirm("Continue?", true)
	require.NoError(t, err)
	assert.True(t, got)
	assert.Empty(t, ios.ErrBuf.String())
}

func TestPrompter_Select(t *testing.T) {
	options := []SelectOption{
		{Label: "npm"},
		{Label: "yarn"},
		{Label: "pnpm", Description: "fast"},
		{Label: "bun"},
	}

	tests := []struct {
		name       string
		input      string
		defaultIdx int
		want       int
		wantErr    bool
	}{
		{name: "by number", input: "3\n", want: 2},
		{name: "by label", input: "BUN\n", want: 3},
		{name: "empty uses default", input: "\n", defaultIdx: 1, want: 1},
		{name: "EOF uses default", input: "", defaultIdx: 2, want: 2},
		{name: "out of range default clamps", input: "\n", defaultIdx: 9, want: 0},
		{name: "retry after out of range", input: "7\n2\n", want: 1},
		{name: "retry after unknown label", input: "nmp\npnpm\n", want: 2},
		{name: "EOF after bad answer uses default", input: "nmp\n", defaultIdx: 3, want: 3},
		{name: "three bad answers", input: "7\ndeno\nnmp\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newInteractive(tt.input)
			got, err := p.Select("Package manager", options, tt.defaultIdx)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSelection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrompter_SelectRendersList(t *testing.T) {
	p, ios := newInteractive("1\n")
	_, err := p.Select("Package manager", []SelectOption{{Label: "npm"}, {Label: "pnpm", Description: "fast"}}, 0)
	require.NoError(t, err)

	assert.Equal(t, "Package manager:\n> 1. npm\n  2. pnpm (fast)\nEnter selection [1]: ", ios.ErrBuf.String())
}

func TestPrompter_SelectReportsBadAnswer(t *testing.T) {
	p, ios := newInteractive("nmp\n1\n")
	idx, err := p.Select("Package manager", []SelectOption{{Label: "npm"}, {Label: "pnpm"}}, 1)
	require.NoError(t, err)

	assert.Equal(t, 0, idx)
	assert.Contains(t, ios.ErrBuf.String(), `"nmp" is not one of the options, enter a number from 1 to 2 or a name`)
	assert.Equal(t, 2, strings.Count(ios.ErrBuf.String(), "Enter selection [2]: "))
}

func TestPrompter_SelectNoOptions(t *testing.T) {
	p, _ := newInteractive("")
	_, err := p.Select("Pick", nil, 0)
	assert.Error(t, err)
}

func TestPrompter_SharedReaderAcrossPrompts(t *testing.T) {
	p, _ := newInteractive("my-app\n3\nn\ny\n")

	name, err := p.String(PromptConfig{Message: "Project name", Required: true})
	require.NoError(t, err)
	idx, err := p.Select("Package manager", []SelectOption{{Label: "npm"}, {Label: "yarn"}, {Label: "pnpm"}, {Label: "bun"}}, 0)
	require.NoError(t, err)
	install, err := p.Confirm("Install dependencies?", true)
	require.NoError(t, err)
	gitInit, err := p.Confirm("Initialize git?", false)
	require.NoError(t, err)

	assert.Equal(t, "my-app", name)
	assert.Equal(t, 2, idx)
	assert.False(t, install)
	assert.True(t, gitInit)
}
