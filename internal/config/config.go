package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"

	"github.com/thoreinstein/skillindex/internal/errors"
)

// AppName is the application name used for config file naming.
const AppName = "skillindex"

// Fixed catalog layout relative to the install directory's parent.
const (
	SkillsDirName = "skills"
	IndexFileName = "SKILLS_INDEX.md"
)

// Config is the explicit configuration threaded through a single run.
type Config struct {
	// SkillsDir is the root whose immediate subdirectories are scanned.
	SkillsDir string
	// IndexPath is the markdown index rewritten on every run.
	IndexPath string
	// DisplayRoot prefixes directory names on the listing's path lines.
	DisplayRoot string
	// StructuredOutput selects JSON on stdout instead of the markdown listing.
	StructuredOutput bool

	Logging Logging
}

// Logging holds the externally configurable logging settings.
type Logging struct {
	Format    string `mapstructure:"log_format"`
	Verbosity int    `mapstructure:"verbosity"`
	Debug     string `mapstructure:"debug"`
}

// New returns the configuration for a tool installed in installDir.
func New(installDir string, structured bool) *Config {
	base := filepath.Dir(filepath.Clean(installDir))
	return &Config{
		SkillsDir:        filepath.Join(base, SkillsDirName),
		IndexPath:        filepath.Join(base, IndexFileName),
		DisplayRoot:      filepath.ToSlash(filepath.Join(filepath.Base(base), SkillsDirName)),
		StructuredOutput: structured,
		Logging:          Logging{Format: "text"},
	}
}

// InstallDir returns the directory holding the running executable, with
// symlinks resolved.
func InstallDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, "locating executable")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// ConfigDir returns the directory searched for config.yaml.
func ConfigDir() string {
	if dir := os.Getenv("SKILLINDEX_CONFIG_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Init resets Viper and registers the config search path, environment
// binding and defaults. Call it once before LoadLogging.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(ConfigDir())

	viper.SetEnvPrefix("SKILLINDEX")
	viper.AutomaticEnv()

	viper.SetDefault("log_format", "text")
	viper.SetDefault("verbosity", 0)
	viper.SetDefault("debug", "")
}

// LoadLogging reads the logging settings from the config file and environment.
// A missing config file is not an error.
func LoadLogging() (Logging, error) {
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Logging{}, errors.Wrap(err, "reading config file")
		}
	}

	var l Logging
	if err := viper.Unmarshal(&l); err != nil {
		return Logging{}, errors.Wrap(err, "unmarshaling config")
	}

	if l.Verbosity == 0 {
		switch l.Debug {
		case "1", "true":
			l.Verbosity = 2
		case "2":
			l.Verbosity = 3
		}
	}

	if err := Validate(l); err != nil {
		return Logging{}, errors.Wrap(err, "validating config")
	}

	return l, nil
}
