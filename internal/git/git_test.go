package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_SetsHeadBranch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}\n"), 0o644))

	require.NoError(t, Init(dir, "trunk"))

	info, err := os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	branch, err := HeadBranch(dir)
	require.NoError(t, err)
	assert.Equal(t, "trunk", branch)

	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data), "working tree is untouched")
}

func TestInit_DefaultsToMain(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir, "  "))

	branch, err := HeadBranch(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultBranch, branch)
}

func TestInit_AlreadyRepository(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir, "main"))

	err := Init(dir, "main")
	assert.ErrorIs(t, err, ErrAlreadyRepository)
}

func TestHeadBranch_NotRepository(t *testing.T) {
	_, err := HeadBranch(t.TempDir())
	assert.Error(t, err)
}

func TestWriteGitignore(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/p", 0o755))

	require.NoError(t, WriteGitignore(fsys, "/p"))

	data, err := afero.ReadFile(fsys, "/p/.gitignore")
	require.NoError(t, err)
	content := string(data)
	for _, want := range []string{"node_modules/\n", "dist/\n", "*.log\n", ".env\n", "coverage/\n"} {
		assert.Contains(t, content, want)
	}
	assert.Equal(t, GitignoreContent(), data)
}

func TestWriteGitignore_ReadOnlyFs(t *testing.T) {
	fsys := afero.NewReadOnlyFs(afero.NewMemMapFs())
	assert.Error(t, WriteGitignore(fsys, "/p"))
}
