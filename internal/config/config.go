package config

import (
	"fmt"
	"path/filepath"

	"github.com/jammission/jamsetup/internal/filesystem"
	"gopkg.in/yaml.v3"
)

// FileName is the optional per-checkout configuration file, looked up at
// the project root.
const FileName = "jamsetup.yaml"

// Config holds the tool's settings. Flags override these; these override
// the built-in defaults.
type Config struct {
	// Python is the base interpreter used to create the environment
	Python string `yaml:"python"`
	// VenvDir is the virtual environment directory, relative to the root
	VenvDir string `yaml:"venv"`
	// Requirements is the dependency manifest path, relative to the root
	Requirements string `yaml:"requirements"`
	// ManagePath is the manage.py path, relative to the root
	ManagePath string `yaml:"manage"`
	// ServeAddr is the default address for `jamsetup serve`
	ServeAddr string `yaml:"serve_addr"`
}

// Default returns the built-in defaults, matching the original installer's
// conventions.
func Default() Config {
	return Config{
		Python:       "python3",
		VenvDir:      "venv",
		Requirements: "requirements.txt",
		ManagePath:   "manage.py",
		ServeAddr:    "127.0.0.1:8000",
	}
}

// Load reads jamsetup.yaml from dir over the defaults. A missing file is
// not an error; keys absent from the file keep their defaults.
func Load(fsys filesystem.FileSystem, dir string) (Config, error) {
	cfg := Default()

	path := filepath.Join(dir, FileName)
	if !fsys.Exists(path) {
		return cfg, nil
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return cfg, nil
}
