// Package pkgmgr knows the JavaScript package managers a project can be
// bootstrapped with and how to invoke their install step.
package pkgmgr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/shlex"
)

// Manager is a supported JavaScript package manager.
type Manager string

const (
	NPM  Manager = "npm"
	Yarn Manager = "yarn"
	PNPM Manager = "pnpm"
	Bun  Manager = "bun"
)

// ErrUnknownManager is returned when a name does not match any supported manager.
var ErrUnknownManager = errors.New("unknown package manager")

// All returns the supported managers in prompt order.
func All() []Manager {
	return []Manager{NPM, Yarn, PNPM, Bun}
}

// Names returns the supported manager names in prompt order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, m := range all {
		names[i] = string(m)
	}
	return names
}

// Parse converts a user supplied name into a Manager. Matching is
// case-insensitive and ignores surrounding whitespace.
func Parse(s string) (Manager, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, m := range All() {
		if string(m) == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q (valid: %s)", ErrUnknownManager, s, strings.Join(Names(), ", "))
}

func (m Manager) String() string { return string(m) }

// Valid reports whether m is one of the supported managers.
func (m Manager) Valid() bool {
	_, err := Parse(string(m))
	return err == nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Manager) MarshalText() ([]byte, error) {
	return []byte(m), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so settings files and
// environment overrides are validated while decoding.
func (m *Manager) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// InstallCommand returns the argv used to install dependencies with m.
// An entry in overrides keyed by the manager name replaces the default
// "<pm> install"; it is split with shell quoting rules.
func InstallCommand(m Manager, overrides map[string]string) ([]string, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w %q", ErrUnknownManager, string(m))
	}

	override := strings.TrimSpace(overrides[string(m)])
	if override == "" {
		return []string{string(m), "install"}, nil
	}

	argv, err := shlex.Split(override)
	if err != nil {
		return nil, fmt.Errorf("parsing install command for %s: %w", m, err)
	}
	if len(argv) == 0 {
		return nil, fmt.Errorf("install command for %s is empty", m)
	}
	return argv, nil
}

// DetectFromUserAgent inspects an npm_config_user_agent value such as
// "pnpm/9.1.0 npm/? node/v20.11.0 linux x64" and returns the manager that
// launched the process.
func DetectFromUserAgent(ua string) (Manager, bool) {
	fields := strings.Fields(ua)
	if len(fields) == 0 {
		return "", false
	}
	name, _, _ := strings.Cut(fields[0], "/")
	m, err := Parse(name)
	if err != nil {
		return "", false
	}
	return m, true
}
