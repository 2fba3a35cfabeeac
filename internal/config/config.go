package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/swarm-toolkit/swarmgen/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyTemplatesDir   = "templates_dir"
	KeyDefaultRuntime = "default_runtime"
)

// Keys lists every key accepted by Set.
var Keys = []string{KeyTemplatesDir, KeyDefaultRuntime}

// Dir returns the path to the config directory (~/.swarmgen/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.swarmgen/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// IsKnown reports whether key is one of Keys.
func IsKnown(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !IsKnown(key) {
		return fmt.Errorf("unknown config key %q (known keys: %v)", key, Keys)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// TemplatesDir resolves the template base directory. An explicit flag value
// wins over the config file and environment. An empty result means the
// built-in templates should be used.
func TemplatesDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return Get(KeyTemplatesDir)
}

// DefaultRuntime returns the configured fallback runtime, or fallback when unset.
func DefaultRuntime(fallback string) string {
	if v := Get(KeyDefaultRuntime); v != "" {
		return v
	}
	return fallback
}
