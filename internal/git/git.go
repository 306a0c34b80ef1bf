// Package git initialises repositories for new projects with go-git.
//
// It imports only go-git, afero and the standard library; callers pass the
// default branch in rather than reading settings here.
package git

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
)

// DefaultBranch is used when no branch is configured.
const DefaultBranch = "main"

// ErrAlreadyRepository is returned when dir already contains a .git entry.
var ErrAlreadyRepository = errors.New("git repository already exists")

// Init creates an empty repository in dir with HEAD pointing at branch.
// The working tree is left untouched.
func Init(dir, branch string) error {
	if _, err := os.Stat(filepath.Join(dir, gogit.GitDirName)); err == nil {
		return fmt.Errorf("%w: %s", ErrAlreadyRepository, dir)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", dir, err)
	}

	branch = strings.TrimSpace(branch)
	if branch == "" {
		branch = DefaultBranch
	}

	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryAlreadyExists) {
			return fmt.Errorf("%w: %s", ErrAlreadyRepository, dir)
		}
		return fmt.Errorf("initializing repository in %s: %w", dir, err)
	}

	head := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(branch))
	if err := repo.Storer.SetReference(head); err != nil {
		return fmt.Errorf("pointing HEAD at %s: %w", branch, err)
	}
	return nil
}

// HeadBranch returns the branch HEAD points at in the repository at dir.
func HeadBranch(dir string) (string, error) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return "", fmt.Errorf("opening repository at %s: %w", dir, err)
	}
	ref, err := repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return "", fmt.Errorf("reading HEAD: %w", err)
	}
	if ref.Type() != plumbing.SymbolicReference {
		return "", fmt.Errorf("HEAD is detached at %s", ref.Hash())
	}
	return ref.Target().Short(), nil
}
