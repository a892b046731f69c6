package linker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hydrangea-network/hydrangea-postinst/internal/manifest"
	"github.com/hydrangea-network/hydrangea-postinst/internal/platform"
)

// State classifies what occupies a link path.
type State string

const (
	// StateMissing means nothing exists at the link path.
	StateMissing State = "missing"
	// StateOK means a symlink pointing at the expected target.
	StateOK State = "ok"
	// StateWrongTarget means a symlink pointing somewhere else.
	StateWrongTarget State = "wrong-target"
	// StateBroken means a symlink whose expected target does not exist.
	StateBroken State = "broken"
	// StateNotSymlink means a regular file or directory occupies the path.
	StateNotSymlink State = "not-symlink"
)

// Status describes one manifest link as found on disk.
type Status struct {
	Name   string
	Path   string // link location in the bin dir
	Want   string // target the manifest declares
	Actual string // target found on disk, empty when missing or not a symlink
	State  State
}

// Result records the outcome of ensuring or removing a single link.
type Result struct {
	Name    string
	Path    string
	Created bool
	Removed bool
	Skipped string // non-empty reason when the path was left untouched
	Err     error  // filesystem failure, never fatal to the caller
}

// Report aggregates per-link results from Apply or Remove.
type Report struct {
	Results []Result
}

// Created counts links that were created.
func (r *Report) Created() int {
	n := 0
	for _, res := range r.Results {
		if res.Created {
			n++
		}
	}
	return n
}

// Removed counts links that were removed.
func (r *Report) Removed() int {
	n := 0
	for _, res := range r.Results {
		if res.Removed {
			n++
		}
	}
	return n
}

// Failed counts links whose filesystem operation errored.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Inspect classifies every manifest link against the bin dir.
func Inspect(m *manifest.Manifest, binDir, prefix string) []Status {
	statuses := make([]Status, 0, len(m.Links))
	for _, spec := range m.Links {
		statuses = append(statuses, inspectOne(spec, binDir, prefix))
	}
	return statuses
}

func inspectOne(spec manifest.LinkSpec, binDir, prefix string) Status {
	s := Status{
		Name: spec.Name,
		Path: filepath.Join(binDir, spec.Name),
		Want: manifest.ResolveTarget(spec, prefix),
	}

	if _, err := os.Lstat(s.Path); os.IsNotExist(err) {
		s.State = StateMissing
		return s
	}

	isLink, err := platform.IsSymlink(s.Path)
	if err != nil || !isLink {
		s.State = StateNotSymlink
		return s
	}

	s.Actual, err = platform.Readlink(s.Path)
	if err != nil {
		s.State = StateNotSymlink
		return s
	}

	if s.Actual != s.Want {
		s.State = StateWrongTarget
		return s
	}

	if _, err := os.Stat(s.Want); err != nil {
		s.State = StateBroken
		return s
	}

	s.State = StateOK
	return s
}

// Ensure creates the link for one spec. An existing path of any kind is
// left untouched unless force is set and the path is a symlink we own.
func Ensure(spec manifest.LinkSpec, binDir, prefix string, force bool) Result {
	status := inspectOne(spec, binDir, prefix)
	res := Result{Name: spec.Name, Path: status.Path}

	switch status.State {
	case StateOK, StateBroken:
		res.Skipped = "already linked"
		return res
	case StateWrongTarget:
		if !force {
			res.Skipped = fmt.Sprintf("exists, points at %s", status.Actual)
			return res
		}
		if err := platform.Remove(status.Path); err != nil {
			res.Err = fmt.Errorf("replacing %s: %w", status.Path, err)
			return res
		}
	case StateNotSymlink:
		// Never replace a file we did not create, even with force.
		res.Skipped = "exists and is not a symlink"
		return res
	}

	if err := platform.Symlink(status.Want, status.Path); err != nil {
		res.Err = fmt.Errorf("creating %s: %w", status.Path, err)
		return res
	}
	res.Created = true
	return res
}

// Apply ensures every manifest link, best-effort. It never returns an
// error: failures are carried per-result in the report.
func Apply(m *manifest.Manifest, binDir, prefix string, force bool) *Report {
	report := &Report{}
	for _, spec := range m.Links {
		report.Results = append(report.Results, Ensure(spec, binDir, prefix, force))
	}
	return report
}

// Remove deletes manifest links from the bin dir. Only symlinks whose
// target matches the manifest (or resolves into the app prefix) are
// removed; anything else is skipped.
func Remove(m *manifest.Manifest, binDir, prefix string) *Report {
	report := &Report{}
	for _, spec := range m.Links {
		status := inspectOne(spec, binDir, prefix)
		res := Result{Name: spec.Name, Path: status.Path}

		switch status.State {
		case StateMissing:
			res.Skipped = "not present"
		case StateNotSymlink:
			res.Skipped = "exists and is not a symlink"
		case StateWrongTarget:
			if !withinPrefix(status.Actual, prefix) {
				res.Skipped = fmt.Sprintf("points outside %s (%s)", prefix, status.Actual)
				break
			}
			fallthrough
		default:
			if err := platform.Remove(status.Path); err != nil {
				res.Err = fmt.Errorf("removing %s: %w", status.Path, err)
			} else {
				res.Removed = true
			}
		}

		report.Results = append(report.Results, res)
	}
	return report
}

// withinPrefix reports whether path is lexically inside prefix.
func withinPrefix(path, prefix string) bool {
	rel, err := filepath.Rel(prefix, path)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
