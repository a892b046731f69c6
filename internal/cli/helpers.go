package cli

import (
	"github.com/hydrangea-network/hydrangea-postinst/internal/config"
	"github.com/hydrangea-network/hydrangea-postinst/internal/paths"
)

// resolveBinDir picks the executable search directory: flag, then config,
// then the env/per-OS default.
func resolveBinDir(flag string) string {
	if flag != "" {
		return flag
	}
	if v := config.Get(config.KeyBinDir); v != "" {
		return v
	}
	return paths.BinDir()
}

// resolvePrefix picks the app prefix: flag, then config, then the
// env/branded default.
func resolvePrefix(flag string) string {
	if flag != "" {
		return flag
	}
	if v := config.Get(config.KeyPrefix); v != "" {
		return v
	}
	return paths.AppPrefix()
}

// resolveManifestPath picks an explicit manifest path: flag, then config.
// Empty means "bundled manifest or embedded default".
func resolveManifestPath(flag string) string {
	if flag != "" {
		return flag
	}
	return config.Get(config.KeyManifest)
}
