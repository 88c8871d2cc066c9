package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const Version = "v1.0.0"

type Config struct {
	LogLevel         string        `mapstructure:"log_level"`
	LogFile          string        `mapstructure:"log_file"` // "" or "stderr" logs to stderr
	ListenAddr       string        `mapstructure:"listen_addr"`
	MobileBreakpoint int           `mapstructure:"mobile_breakpoint"` // terminal columns below which the drawer replaces the side form
	DrawerTransition time.Duration `mapstructure:"drawer_transition"`
	GlamourStyle     string        `mapstructure:"glamour_style"`
	Color            bool          `mapstructure:"color"`
}

// New returns a viper instance with defaults, env binding and the config
// search path set up. file overrides the search path when not empty.
func New(file string) *viper.Viper {
	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", defaultLogFile())
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("mobile_breakpoint", 100)
	v.SetDefault("drawer_transition", 300*time.Millisecond)
	v.SetDefault("glamour_style", "dark")
	v.SetDefault("color", true)

	v.SetEnvPrefix("STACKGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		return v
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	v.AddConfigPath(".")
	v.SetConfigName(".stackgen")
	v.SetConfigType("yaml")
	return v
}

// Load reads the config file if there is one and decodes it. A missing
// file on the search path is not an error; a missing explicit file is.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.MobileBreakpoint < 0 {
		cfg.MobileBreakpoint = 0
	}
	if cfg.DrawerTransition < 0 {
		cfg.DrawerTransition = 0
	}
	cfg.LogFile = expandHome(cfg.LogFile)
	return &cfg, nil
}

func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stackgen", "stackgen.log")
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
