// Package config handles binding configuration loading and management.
package config

// Config holds all binding settings.
type Config struct {
	Library LibraryConfig `yaml:"library" toml:"library"`
	Import  ImportConfig  `yaml:"import" toml:"import"`
	Logging LoggingConfig `yaml:"logging" toml:"logging"`
}

// LibraryConfig locates the libassimp shared object.
type LibraryConfig struct {
	Path        string   `yaml:"path" toml:"path"`                 // Explicit library file
	SearchPaths []string `yaml:"search_paths" toml:"search_paths"` // Fallback files, tried in order
}

// ImportConfig holds defaults applied to every import.
type ImportConfig struct {
	PostProcess []string `yaml:"post_process" toml:"post_process"` // aiProcess_ names without prefix
	Validate    bool     `yaml:"validate" toml:"validate"`         // Run structural checks after import
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Candidates returns the library files to try, in order. An empty result
// means the platform defaults.
func (c LibraryConfig) Candidates() []string {
	var out []string
	if c.Path != "" {
		out = append(out, c.Path)
	}
	for _, p := range c.SearchPaths {
		if p != "" && p != c.Path {
			out = append(out, p)
		}
	}
	return out
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Library: LibraryConfig{},
		Import: ImportConfig{
			PostProcess: []string{"Triangulate", "JoinIdenticalVertices", "SortByPType"},
			Validate:    false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
