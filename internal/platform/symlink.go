package platform

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Symlink creates a symbolic link at link pointing to target.
// On Unix systems this is os.Symlink directly.
// On Windows it attempts os.Symlink first (requires developer mode),
// then falls back to copying the target and writing a .target sidecar.
func Symlink(target, link string) error {
	if runtime.GOOS != "windows" {
		return os.Symlink(target, link)
	}

	if err := os.Symlink(target, link); err == nil {
		return nil
	}

	if err := copyForSymlink(target, link); err != nil {
		return fmt.Errorf("symlink fallback (copy) failed: %w", err)
	}

	// Sidecar lets Readlink recover the original target from the copy.
	_ = os.WriteFile(link+".target", []byte(target), 0644)
	return nil
}

// Remove removes a symlink (or its fallback copy and sidecar).
func Remove(link string) error {
	err := os.Remove(link)
	os.Remove(link + ".target") // best-effort
	return err
}

// Readlink returns the target of a symlink. On Windows, if os.Readlink
// fails because a copy fallback was used, it reads the .target sidecar.
func Readlink(link string) (string, error) {
	target, err := os.Readlink(link)
	if err == nil {
		return target, nil
	}

	if runtime.GOOS != "windows" {
		return "", err
	}

	data, readErr := os.ReadFile(link + ".target")
	if readErr != nil {
		return "", fmt.Errorf("readlink failed and no .target sidecar found: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// IsSymlink reports whether path is a symbolic link (without following it).
func IsSymlink(path string) (bool, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return false, err
	}
	return info.Mode()&os.ModeSymlink != 0, nil
}

// SymlinksSupported returns true if the current platform supports native
// symlinks. On Windows this attempts a test symlink to check developer mode.
func SymlinksSupported() bool {
	if runtime.GOOS != "windows" {
		return true
	}

	link := filepath.Join(os.TempDir(), ".hydrangea-symlink-test")
	defer os.Remove(link)
	return os.Symlink(os.TempDir(), link) == nil
}

// copyForSymlink copies src to dst. Relative targets resolve against the
// directory containing dst, matching symlink resolution semantics.
func copyForSymlink(src, dst string) error {
	if !filepath.IsAbs(src) {
		src = filepath.Join(filepath.Dir(dst), src)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
