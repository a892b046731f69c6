// Package branding provides compile-time identity values for the installer.
//
// Packagers edit branding.yaml at the repo root, then run `make build`.
// The Makefile syncs branding.yaml into this package before compilation,
// and Go's //go:embed bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
	AppPrefix   string `yaml:"app_prefix"`
	DaemonPath  string `yaml:"daemon_path"`
	BinDir      string `yaml:"bin_dir"`
	LinkName    string `yaml:"link_name"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "hydrangea-postinst",
			DisplayName: "Hydrangea",
			Description: "Package hook that wires the Hydrangea CLI into the executable search path",
			HomeDir:     ".hydrangea",
			EnvPrefix:   "HYDRANGEA",
			GoModule:    "github.com/hydrangea-network/hydrangea-postinst",
			GitHubRepo:  "hydrangea-network/hydrangea-postinst",
			AppPrefix:   "/opt/hydrangea",
			DaemonPath:  "resources/app.asar.unpacked/daemon/hydrangea",
			BinDir:      "/usr/bin",
			LinkName:    "hydrangea",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "hydrangea-postinst").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Hydrangea").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".hydrangea").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "HYDRANGEA").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by scripts/rebrand.sh — not
// consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// AppPrefix returns the directory the package unpacks into (e.g., "/opt/hydrangea").
func AppPrefix() string { load(); return defaults.AppPrefix }

// DaemonPath returns the daemon binary path relative to AppPrefix.
func DaemonPath() string { load(); return defaults.DaemonPath }

// BinDir returns the default executable search directory links go into.
func BinDir() string { load(); return defaults.BinDir }

// LinkName returns the name of the primary CLI link (e.g., "hydrangea").
func LinkName() string { load(); return defaults.LinkName }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("ROOT") → "HYDRANGEA_ROOT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
