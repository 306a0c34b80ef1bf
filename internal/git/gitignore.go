package git

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// GitignoreFileName is the ignore file written next to a new repository.
const GitignoreFileName = ".gitignore"

var ignoredPatterns = []string{
	"node_modules/",
	"dist/",
	"*.log",
	"npm-debug.log*",
	"yarn-debug.log*",
	"yarn-error.log*",
	"pnpm-debug.log*",
	".env",
	".env.*",
	"coverage/",
	"*.tsbuildinfo",
	".DS_Store",
}

// GitignoreContent returns the standard Node/TypeScript ignore list.
func GitignoreContent() []byte {
	return []byte(strings.Join(ignoredPatterns, "\n") + "\n")
}

// WriteGitignore writes .gitignore into dir, replacing any existing file.
func WriteGitignore(fsys afero.Fs, dir string) error {
	path := filepath.Join(dir, GitignoreFileName)
	if err := afero.WriteFile(fsys, path, GitignoreContent(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
