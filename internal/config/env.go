package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment overrides.
const (
	EnvLibrary  = "ASSIMP_LIBRARY"
	EnvLogLevel = "ASSIMP_LOG_LEVEL"
	EnvLogFile  = "ASSIMP_LOG_FILE"
	EnvValidate = "ASSIMP_VALIDATE"
)

// applyEnv applies environment overrides to the config.
func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvLibrary); v != "" {
		cfg.Library.Path = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.Logging.LogFile = v
	}
	if v := os.Getenv(EnvValidate); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvValidate, v, err)
		}
		cfg.Import.Validate = b
	}
	return nil
}
