package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cast"

	"github.com/schmitthub/tsinit/internal/pkgmgr"
)

// ErrUnknownKey is returned for keys outside the settings schema.
var ErrUnknownKey = errors.New("unknown settings key")

// KeyKind is the value type of a settings key.
type KeyKind int

const (
	KindString KeyKind = iota
	KindBool
	KindInt
	KindPackageManager
)

func (k KeyKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindPackageManager:
		return "package manager"
	default:
		return "string"
	}
}

var settingsSchema = map[string]KeyKind{
	"defaults.package_manager": KindPackageManager,
	"defaults.install":         KindBool,
	"defaults.git_init":        KindBool,
	"defaults.default_branch":  KindString,
	"template.typescript":      KindString,
	"template.ts_node":         KindString,
	"template.node_types":      KindString,
	"template.target":          KindString,
	"template.module":          KindString,
	"logging.file_enabled":     KindBool,
	"logging.max_size_mb":      KindInt,
	"logging.max_age_days":     KindInt,
	"logging.max_backups":      KindInt,
}

// Keys returns every settable key, sorted, including the per-manager
// install overrides.
func Keys() []string {
	keys := make([]string, 0, len(settingsSchema)+len(pkgmgr.All()))
	for k := range settingsSchema {
		keys = append(keys, k)
	}
	for _, m := range pkgmgr.All() {
		keys = append(keys, installKey(m))
	}
	sort.Strings(keys)
	return keys
}

func installKey(m pkgmgr.Manager) string {
	return "package_managers." + string(m) + ".install"
}

// LookupKey normalises key and returns its kind.
func LookupKey(key string) (string, KeyKind, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if kind, ok := settingsSchema[key]; ok {
		return key, kind, nil
	}

	parts := strings.Split(key, ".")
	if len(parts) == 3 && parts[0] == "package_managers" && parts[2] == "install" {
		if _, err := pkgmgr.Parse(parts[1]); err == nil {
			return key, KindString, nil
		}
	}
	return "", 0, fmt.Errorf("%w %q", ErrUnknownKey, key)
}

// Coerce converts a raw command-line value into the type stored for key.
func Coerce(key, raw string) (any, error) {
	key, kind, err := LookupKey(key)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindBool:
		b, err := cast.ToBoolE(raw)
		if err != nil {
			return nil, fmt.Errorf("%s expects a bool: %w", key, err)
		}
		return b, nil
	case KindInt:
		n, err := cast.ToIntE(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%s expects an integer: %w", key, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("%s must not be negative", key)
		}
		return n, nil
	case KindPackageManager:
		m, err := pkgmgr.Parse(raw)
		if err != nil {
			return nil, err
		}
		return string(m), nil
	default:
		return raw, nil
	}
}
