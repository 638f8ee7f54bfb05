// Package settings loads and saves the persisted combine-notes settings.
package settings

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/taigrr/combine-notes/internal/types"
	"gopkg.in/yaml.v3"
)

// Setting keys accepted by Set.
const (
	KeyOutputFolder          = "output-folder"
	KeyPreselectParentFolder = "preselect-parent-folder"
)

// DefaultOutputFolder is where saved documents go unless configured otherwise.
const DefaultOutputFolder = "combined_notes"

// Default returns the settings used when nothing has been saved.
func Default() types.Settings {
	return types.Settings{
		OutputFolder:          DefaultOutputFolder,
		PreselectParentFolder: true,
	}
}

// DefaultPath returns the settings file location inside a vault.
func DefaultPath(vaultPath string) string {
	return filepath.Join(vaultPath, ".obsidian", "plugins", "combine-notes", "data.yaml")
}

// Load reads settings from path. Keys missing from the file keep their defaults,
// and a missing file yields the defaults.
func Load(path string) (types.Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return s, goerr.Wrap(err, "failed to read settings", goerr.V("path", path))
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), goerr.Wrap(err, "failed to parse settings", goerr.V("path", path))
	}

	return s, nil
}

// Save writes settings to path, creating parent directories as needed.
func Save(path string, s types.Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return goerr.Wrap(err, "failed to encode settings")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return goerr.Wrap(err, "failed to create settings directory", goerr.V("path", path))
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return goerr.Wrap(err, "failed to write settings", goerr.V("path", path))
	}

	return nil
}

// Set updates a single setting by key.
func Set(s types.Settings, key, value string) (types.Settings, error) {
	switch key {
	case KeyOutputFolder:
		folder := strings.TrimSpace(value)
		if folder == "" {
			return s, goerr.New("output folder cannot be empty")
		}
		s.OutputFolder = folder
	case KeyPreselectParentFolder:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return s, goerr.Wrap(err, "invalid boolean", goerr.V("key", key), goerr.V("value", value))
		}
		s.PreselectParentFolder = b
	default:
		return s, goerr.New("unknown setting", goerr.V("key", key))
	}

	return s, nil
}

// Keys lists the settings that can be changed.
func Keys() []string {
	return []string{KeyOutputFolder, KeyPreselectParentFolder}
}
