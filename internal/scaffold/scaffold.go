// Package scaffold lays out the skeleton of a new TypeScript project on an
// afero filesystem.
package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/schmitthub/tsinit/internal/pkgmgr"
)

// ProjectConfig holds the answers that drive a create run.
type ProjectConfig struct {
	Name                string
	PackageManager      pkgmgr.Manager
	InstallDependencies bool
	InitGit             bool
}

// Entry is one directory or file of the skeleton, relative to the project root.
type Entry struct {
	Path    string
	Dir     bool
	Content []byte
}

const (
	dirPerm  fs.FileMode = 0o755
	filePerm fs.FileMode = 0o644
)

// Plan returns the ordered skeleton for a project named name: src/, tests/,
// package.json, tsconfig.json and src/index.ts.
func Plan(name string, values TemplateValues) ([]Entry, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	pkgName := PackageName(name)

	pkg, err := RenderPackageJSON(pkgName, values)
	if err != nil {
		return nil, fmt.Errorf("rendering package.json: %w", err)
	}
	tsconfig, err := RenderTSConfig(values)
	if err != nil {
		return nil, fmt.Errorf("rendering tsconfig.json: %w", err)
	}
	index, err := RenderIndex(pkgName)
	if err != nil {
		return nil, err
	}

	return []Entry{
		{Path: "src", Dir: true},
		{Path: "tests", Dir: true},
		{Path: "package.json", Content: pkg},
		{Path: "tsconfig.json", Content: tsconfig},
		{Path: filepath.Join("src", "index.ts"), Content: index},
	}, nil
}

// Scaffolder writes planned entries to a filesystem.
type Scaffolder struct {
	Fs afero.Fs
}

// New returns a Scaffolder on fsys.
func New(fsys afero.Fs) *Scaffolder {
	return &Scaffolder{Fs: fsys}
}

// CheckTarget returns ErrProjectExists if root is already present.
func (s *Scaffolder) CheckTarget(root string) error {
	_, err := s.Fs.Stat(root)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", ErrProjectExists, root)
	case errors.Is(err, fs.ErrNotExist):
		return nil
	default:
		return fmt.Errorf("checking %s: %w", root, err)
	}
}

// Create makes root and writes entries beneath it. root must not exist. If
// any write fails after root was created, root is removed again so a retry
// with the same name starts clean.
func (s *Scaffolder) Create(root string, entries []Entry) (err error) {
	if err := s.CheckTarget(root); err != nil {
		return err
	}

	if parent := filepath.Dir(root); parent != "." {
		if err := s.Fs.MkdirAll(parent, dirPerm); err != nil {
			return fmt.Errorf("creating parent directory %s: %w", parent, err)
		}
	}

	if err := s.Fs.Mkdir(root, dirPerm); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s", ErrProjectExists, root)
		}
		return fmt.Errorf("creating %s: %w", root, err)
	}

	defer func() {
		if err != nil {
			if rmErr := s.Fs.RemoveAll(root); rmErr != nil {
				err = errors.Join(err, fmt.Errorf("rolling back %s: %w", root, rmErr))
			}
		}
	}()

	for _, e := range entries {
		path := filepath.Join(root, e.Path)
		if e.Dir {
			if err := s.Fs.MkdirAll(path, dirPerm); err != nil {
				return fmt.Errorf("creating %s: %w", path, err)
			}
			continue
		}
		if err := s.Fs.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := afero.WriteFile(s.Fs, path, e.Content, filePerm); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}
