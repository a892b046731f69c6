// Package version compares package versions and records the last
// installed one, so a re-run of the hook can tell a fresh install from
// an upgrade.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Compare compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func Compare(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// Transition classifies an install relative to the previously recorded
// version: "install" (no prior record), "upgrade", "downgrade", or
// "reinstall" (same version).
func Transition(previous, incoming string) string {
	if previous == "" {
		return "install"
	}
	cmp, err := Compare(previous, incoming)
	if err != nil {
		// Unparseable versions are treated as a plain install.
		return "install"
	}
	switch {
	case cmp < 0:
		return "upgrade"
	case cmp > 0:
		return "downgrade"
	default:
		return "reinstall"
	}
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
