package manifest

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// DefaultFileName is the manifest file name looked up inside the app prefix.
const DefaultFileName = "links.yaml"

//go:embed default.yaml
var defaultManifest []byte

// Default returns the built-in manifest: the single primary CLI link the
// package has always shipped.
func Default() *Manifest {
	var m Manifest
	if err := yaml.Unmarshal(defaultManifest, &m); err != nil {
		panic(fmt.Sprintf("embedded default manifest is invalid: %v", err))
	}
	return &m
}

// Load reads and parses a manifest file. Validation is separate; see Validate.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// Resolve locates the manifest to install from. Explicit path wins; then
// <prefix>/links.yaml; then the embedded default.
func Resolve(explicit, prefix string) (*Manifest, string, error) {
	if explicit != "" {
		m, err := Load(explicit)
		return m, explicit, err
	}

	bundled := filepath.Join(prefix, DefaultFileName)
	if _, err := os.Stat(bundled); err == nil {
		m, err := Load(bundled)
		return m, bundled, err
	}

	return Default(), "", nil
}

// ResolveTarget returns the absolute target path for a link spec.
// Relative targets resolve against the app prefix.
func ResolveTarget(spec LinkSpec, prefix string) string {
	if filepath.IsAbs(spec.Target) {
		return spec.Target
	}
	return filepath.Join(prefix, filepath.FromSlash(spec.Target))
}
