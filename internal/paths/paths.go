package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/hydrangea-network/hydrangea-postinst/internal/branding"
)

// Directory name constants for the Hydrangea on-disk convention.
const (
	MainnetDir  = "mainnet"
	KeysDirName = ".hydrangea_keys"
)

// Permission constants.
const (
	DirPermNormal  os.FileMode = 0755
	FilePermNormal os.FileMode = 0644
	ExecPerm       os.FileMode = 0755
)

// Root returns the Hydrangea root directory.
// It checks the HYDRANGEA_ROOT environment variable first,
// then falls back to ~/.hydrangea/mainnet.
func Root() (string, error) {
	if v := os.Getenv(branding.EnvVar("ROOT")); v != "" {
		return expand(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir(), MainnetDir), nil
}

// KeysRoot returns the key storage directory.
// It checks the HYDRANGEA_KEYS_ROOT environment variable first,
// then falls back to ~/.hydrangea_keys.
func KeysRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("KEYS_ROOT")); v != "" {
		return expand(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, KeysDirName), nil
}

// AppPrefix returns the directory the package unpacked into.
// Checks HYDRANGEA_PREFIX env override first, then the branded default
// (/opt/hydrangea on Linux).
func AppPrefix() string {
	if v := os.Getenv(branding.EnvVar("PREFIX")); v != "" {
		return v
	}
	return branding.AppPrefix()
}

// DaemonBinary returns the absolute path of the bundled daemon binary,
// the source every CLI link points at.
func DaemonBinary() string {
	return filepath.Join(AppPrefix(), filepath.FromSlash(branding.DaemonPath()))
}

// BinDir returns the executable search directory links are created in.
// Checks HYDRANGEA_BIN_DIR env override first, then a per-OS default:
// /usr/bin on Linux, /usr/local/bin on macOS.
func BinDir() string {
	if v := os.Getenv(branding.EnvVar("BIN_DIR")); v != "" {
		return v
	}
	if runtime.GOOS == "darwin" {
		return "/usr/local/bin"
	}
	return branding.BinDir()
}

// ConfigDir returns the directory install state and config live in (~/.hydrangea).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir()), nil
}

// expand resolves a leading ~ and returns an absolute, symlink-free path.
func expand(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}
	return abs, nil
}
