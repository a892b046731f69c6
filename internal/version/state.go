package version

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const stateFileName = "install-state.json"

// State holds what the last run of the hook recorded.
type State struct {
	Package     string    `json:"package"`
	Version     string    `json:"version"`
	InstalledAt time.Time `json:"installed_at"`
	BinDir      string    `json:"bin_dir"`
}

// LoadState reads the install state from the config directory.
// Returns nil, nil if the state file does not exist (first install).
func LoadState(configDir string) (*State, error) {
	path := filepath.Join(configDir, stateFileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading install state: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parsing install state: %w", err)
	}
	return &state, nil
}

// SaveState writes the install state to the config directory.
func SaveState(configDir string, state *State) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling install state: %w", err)
	}

	path := filepath.Join(configDir, stateFileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing install state: %w", err)
	}
	return nil
}
