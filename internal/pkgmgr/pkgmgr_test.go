package pkgmgr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Manager
		wantErr bool
	}{
		{input: "npm", want: NPM},
		{input: "Yarn", want: Yarn},
		{input: " pnpm ", want: PNPM},
		{input: "bun", want: Bun},
		{input: "deno", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownManager)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllAndNames(t *testing.T) {
	assert.Equal(t, []Manager{NPM, Yarn, PNPM, Bun}, All())
	assert.Equal(t, []string{"npm", "yarn", "pnpm", "bun"}, Names())
}

func TestInstallCommand_Defaults(t *testing.T) {
	for _, m := range All() {
		t.Run(m.String(), func(t *testing.T) {
			argv, err := InstallCommand(m, nil)
			require.NoError(t, err)
			assert.Equal(t, []string{m.String(), "install"}, argv)
		})
	}
}

func TestInstallCommand_Override(t *testing.T) {
	overrides := map[string]string{
		"npm":  `npm ci --cache "/tmp/npm cache"`,
		"yarn": "   ",
	}

	argv, err := InstallCommand(NPM, overrides)
	require.NoError(t, err)
	assert.Equal(t, []string{"npm", "ci", "--cache", "/tmp/npm cache"}, argv)

	argv, err = InstallCommand(Yarn, overrides)
	require.NoError(t, err)
	assert.Equal(t, []string{"yarn", "install"}, argv)
}

func TestInstallCommand_Errors(t *testing.T) {
	_, err := InstallCommand(Manager("deno"), nil)
	assert.ErrorIs(t, err, ErrUnknownManager)

	_, err = InstallCommand(PNPM, map[string]string{"pnpm": `pnpm "install`})
	assert.Error(t, err)
}

func TestDetectFromUserAgent(t *testing.T) {
	tests := []struct {
		ua     string
		want   Manager
		wantOK bool
	}{
		{ua: "pnpm/9.0.0 npm/? node/v20.11.0 darwin arm64", want: PNPM, wantOK: true},
		{ua: "yarn/1.22.19 npm/? node/v18.17.0 linux x64", want: Yarn, wantOK: true},
		{ua: "npm/10.2.4 node/v20.11.0 linux x64 workspaces/false", want: NPM, wantOK: true},
		{ua: "bun/1.1.0 npm/? node/v21.6.0 linux x64", want: Bun, wantOK: true},
		{ua: "deno/1.40.0", wantOK: false},
		{ua: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.ua, func(t *testing.T) {
			got, ok := DetectFromUserAgent(tt.ua)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestManager_TextRoundTrip(t *testing.T) {
	var m Manager
	require.NoError(t, m.UnmarshalText([]byte("PNPM")))
	assert.Equal(t, PNPM, m)

	b, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "pnpm", string(b))

	assert.Error(t, m.UnmarshalText([]byte("cargo")))
	assert.Equal(t, PNPM, m)
}
