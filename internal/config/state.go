package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// StatePath returns the path of the saved dashboard view state.
func StatePath() string {
	return filepath.Join(Dir(), "state.toml")
}

// LogPath returns the path the dashboard logs to.
func LogPath() string {
	return filepath.Join(Dir(), "spendview.log")
}

// LoadState reads the saved key-value view snapshot. A missing file is an
// empty snapshot, not an error.
func LoadState() (map[string]string, error) {
	snap := make(map[string]string)

	data, err := os.ReadFile(StatePath())
	if err != nil {
		if os.IsNotExist(err) {
			return snap, nil
		}
		return snap, fmt.Errorf("reading state: %w", err)
	}

	if _, err := toml.Decode(string(data), &snap); err != nil {
		return make(map[string]string), fmt.Errorf("parsing state: %w", err)
	}
	return snap, nil
}

// SaveState writes a key-value view snapshot.
func SaveState(snap map[string]string) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(StatePath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating state file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(snap); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}
	return nil
}
