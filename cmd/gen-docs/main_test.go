package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()

	err := run([]string{"gen-docs", "--doc-path", dir, "--markdown", "--man-page", "--website"})
	require.NoError(t, err)

	manContent, err := os.ReadFile(filepath.Join(dir, "man", "tsinit-create.1"))
	require.NoError(t, err)
	assert.Contains(t, string(manContent), "Create a new TypeScript project")

	mdContent, err := os.ReadFile(filepath.Join(dir, "markdown", "tsinit_create.md"))
	require.NoError(t, err)
	assert.Contains(t, string(mdContent), "## tsinit create")
	assert.Contains(t, string(mdContent), "layout: manual")
	assert.Contains(t, string(mdContent), "--package-manager")
}

func TestRunValidation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "missing doc-path",
			args:    []string{"gen-docs", "--markdown"},
			wantErr: "--doc-path is required",
		},
		{
			name:    "no format specified",
			args:    []string{"gen-docs", "--doc-path", t.TempDir()},
			wantErr: "at least one format must be specified",
		},
		{
			name:    "website without markdown",
			args:    []string{"gen-docs", "--doc-path", t.TempDir(), "--website", "--yaml"},
			wantErr: "--website requires --markdown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRunAllFormats(t *testing.T) {
	dir := t.TempDir()

	err := run([]string{"gen-docs", "--doc-path", dir, "--markdown", "--man-page", "--yaml", "--rst"})
	require.NoError(t, err)

	formats := []struct {
		dir      string
		fileGlob string
	}{
		{"markdown", "*.md"},
		{"man", "*.1"},
		{"yaml", "*.yaml"},
		{"rst", "*.rst"},
	}

	for _, format := range formats {
		t.Run(format.dir, func(t *testing.T) {
			files, err := filepath.Glob(filepath.Join(dir, format.dir, format.fileGlob))
			require.NoError(t, err)
			assert.NotEmpty(t, files, "should have generated %s files", format.dir)
		})
	}
}

func TestJekyllFilePrepender(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantPath string
		wantName string
	}{
		{name: "root command", filename: "/docs/tsinit.md", wantPath: "/cli/tsinit/", wantName: "tsinit"},
		{name: "subcommand", filename: "/docs/tsinit_config.md", wantPath: "/cli/tsinit/config/", wantName: "tsinit config"},
		{name: "deep subcommand", filename: "/docs/tsinit_config_set.md", wantPath: "/cli/tsinit/config/set/", wantName: "tsinit config set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := jekyllFilePrepender(tt.filename)

			assert.Contains(t, result, "layout: manual")
			assert.Contains(t, result, "permalink: "+tt.wantPath)
			assert.Contains(t, result, "title: "+tt.wantName)
		})
	}
}

func TestJekyllLinkHandler(t *testing.T) {
	assert.Equal(t, "/cli/tsinit/", jekyllLinkHandler("tsinit.md"))
	assert.Equal(t, "/cli/tsinit/config/get/", jekyllLinkHandler("tsinit_config_get.md"))
}

// TestNoTestHelperImports keeps test doubles out of the production binary.
func TestNoTestHelperImports(t *testing.T) {
	entries, err := os.ReadDir(".")
	require.NoError(t, err)

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}

		data, err := os.ReadFile(filepath.Clean(name))
		require.NoError(t, err, "reading %s", name)

		for _, imp := range []string{"iostreamstest", "loggertest", "processtest", "configtest"} {
			assert.NotContains(t, string(data), imp, "%s must not import %s", name, imp)
		}
	}
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.True(t, cmd.DisableAutoGenTag)
	create, _, err := cmd.Find([]string{"create"})
	require.NoError(t, err)
	assert.Equal(t, "create", create.Name())
}
