// Package config loads application settings from an optional YAML file and
// CAMPULSE_* environment variables. LLM provider keys are handled separately
// by the llm package, which discovers the standard *_API_KEY variables.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/azizk/campulse/internal/survey"
)

// Config is the top-level application configuration.
type Config struct {
	DataDir  string       `mapstructure:"data_dir"`
	Subjects []string     `mapstructure:"subjects"`
	Admin    AdminConfig  `mapstructure:"admin"`
	Scanner  ScanConfig   `mapstructure:"scanner"`
	Notify   NotifyConfig `mapstructure:"notify"`
	Logging  LogConfig    `mapstructure:"logging"`
}

// AdminConfig gates the aggregate dashboard. The password is a client-side
// literal, not a security boundary; it only keeps students out of the stats
// view on a shared machine.
type AdminConfig struct {
	Password string `mapstructure:"password"`
}

// ScanConfig configures the QR capture loop.
type ScanConfig struct {
	// CaptureDir is polled for frame images while the scanner is open.
	CaptureDir string `mapstructure:"capture_dir"`
}

// NotifyConfig selects the administrative notification channel.
type NotifyConfig struct {
	// Channel: "console", "sendgrid" or "none".
	Channel     string `mapstructure:"channel"`
	SendGridKey string `mapstructure:"sendgrid_key"`
	AdminEmail  string `mapstructure:"admin_email"`
	FromEmail   string `mapstructure:"from_email"`
}

// LogConfig holds settings for the rotating log file.
type LogConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAgeDays int  `mapstructure:"max_age"`
	Compress   bool `mapstructure:"compress"`
}

func setDefaults(v *viper.Viper, dataDir string) {
	v.SetDefault("data_dir", dataDir)
	v.SetDefault("subjects", survey.DefaultSubjects())
	v.SetDefault("admin.password", "admin-dept")
	v.SetDefault("scanner.capture_dir", filepath.Join(dataDir, "captures"))
	v.SetDefault("notify.channel", "console")
	v.SetDefault("notify.admin_email", "")
	v.SetDefault("notify.from_email", "campulse@localhost")
	v.SetDefault("logging.max_size", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age", 7)
	v.SetDefault("logging.compress", true)
}

// Load reads campulse.yaml from dataDir, if present, and applies env
// overrides. Defaults cover every key, so a missing file is fine.
func Load(dataDir string) (*Config, error) {
	v := viper.New()
	setDefaults(v, dataDir)

	v.AddConfigPath(dataDir)
	v.SetConfigName("campulse")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("CAMPULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if len(cfg.Subjects) == 0 {
		cfg.Subjects = survey.DefaultSubjects()
	}
	return &cfg, nil
}
