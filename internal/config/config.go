package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. CHAPTERQUIZ_BANK.
const EnvPrefix = "CHAPTERQUIZ"

// ErrInvalidDelimiter is returned when the delimiter is not a single rune.
var ErrInvalidDelimiter = errors.New("delimiter must be a single character")

// Config holds application configuration loaded from flags, environment
// variables and an optional YAML file.
type Config struct {
	Bank         string        `mapstructure:"bank"`          // location of the question bank
	Delimiter    string        `mapstructure:"delimiter"`     // field delimiter for delimited banks
	Seed         uint64        `mapstructure:"seed"`          // shuffle seed, 0 for random
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"` // timeout for URL banks
	Log          Log           `mapstructure:"log"`
}

// Log contains logging configuration.
type Log struct {
	Level string `mapstructure:"level"` // logrus level name
	File  string `mapstructure:"file"`  // log file path, empty for the caller's default
}

// DelimiterRune returns the configured delimiter as a rune.
func (c *Config) DelimiterRune() (rune, error) {
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDelimiter, c.Delimiter)
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r, nil
}

// New returns a viper instance with defaults and environment binding set up.
// Callers may bind flags to it before calling Load.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("bank", "sample:")
	v.SetDefault("delimiter", ",")
	v.SetDefault("seed", 0)
	v.SetDefault("fetch_timeout", "15s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads configuration into a Config. configFile may be empty, in which
// case chapterquiz.yaml is looked up in the working directory and the user
// config directory; a missing file is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("chapterquiz")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir := userConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if _, err := cfg.DelimiterRune(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// userConfigDir returns $XDG_CONFIG_HOME/chapterquiz or the platform equivalent.
func userConfigDir() string {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return filepath.Join(d, "chapterquiz")
	}
	d, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(d, "chapterquiz")
}
