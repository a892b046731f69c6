//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	Prefix string // HYDRANGEA_PREFIX — the unpacked app
	BinDir string // HYDRANGEA_BIN_DIR — where links get created
	Home   string // HOME — config dir and install state live here
	Daemon string // the fake daemon binary inside Prefix
}

// setupTestEnv creates isolated temp directories and sets environment
// variables so all installer operations are sandboxed.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		Prefix: t.TempDir(),
		BinDir: t.TempDir(),
		Home:   t.TempDir(),
	}

	t.Setenv("HYDRANGEA_PREFIX", env.Prefix)
	t.Setenv("HYDRANGEA_BIN_DIR", env.BinDir)
	t.Setenv("HOME", env.Home)

	env.Daemon = filepath.Join(env.Prefix, "resources", "app.asar.unpacked", "daemon", "hydrangea")
	if err := os.MkdirAll(filepath.Dir(env.Daemon), 0755); err != nil {
		t.Fatalf("creating daemon dir: %v", err)
	}
	if err := os.WriteFile(env.Daemon, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		t.Fatalf("creating daemon binary: %v", err)
	}

	return env
}

// writeBundledManifest drops a links.yaml into the prefix.
func writeBundledManifest(t *testing.T, env *testEnv, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(env.Prefix, "links.yaml"), []byte(content), 0644); err != nil {
		t.Fatalf("writing links.yaml: %v", err)
	}
}

func assertLinkTarget(t *testing.T, link, want string) {
	t.Helper()
	got, err := os.Readlink(link)
	if err != nil {
		t.Fatalf("Readlink(%s): %v", link, err)
	}
	if got != want {
		t.Errorf("%s -> %q, want %q", link, got, want)
	}
}
