package scaffold

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidName is returned when a project name cannot be used as a
	// directory name.
	ErrInvalidName = errors.New("invalid project name")

	// ErrProjectExists is returned when the target directory already exists.
	ErrProjectExists = errors.New("project directory already exists")
)

// ValidateName checks that name can be used as a single directory name.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		return fmt.Errorf("%w: name must not be empty", ErrInvalidName)
	case trimmed == "." || trimmed == "..":
		return fmt.Errorf("%w: %q is not allowed", ErrInvalidName, trimmed)
	case strings.ContainsAny(trimmed, `/\`):
		return fmt.Errorf("%w: %q must not contain path separators", ErrInvalidName, trimmed)
	case strings.ContainsRune(trimmed, 0):
		return fmt.Errorf("%w: name contains a NUL byte", ErrInvalidName)
	}
	return nil
}

// PackageName derives an npm package name from a directory name: lower
// case, spaces become dashes, characters outside [a-z0-9-._~@/] are dropped
// and leading dots or underscores are stripped. Falls back to "app" if
// nothing usable remains.
func PackageName(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))

	var b strings.Builder
	for _, r := range lower {
		switch {
		case r == ' ':
			b.WriteRune('-')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case strings.ContainsRune("-._~@/", r):
			b.WriteRune(r)
		}
	}

	pkg := strings.TrimLeft(b.String(), "._")
	if pkg == "" {
		return "app"
	}
	return pkg
}
