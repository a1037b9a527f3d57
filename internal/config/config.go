// Package config loads cardgen settings from a YAML file, an optional .env
// file and CARDGEN_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	imagepkg "github.com/youruser/cardgen/internal/image"
)

type ServerConfig struct {
	Port        int    `yaml:"port"`
	Mode        string `yaml:"mode"`
	MaxUploadMB int    `yaml:"max_upload_mb"`
}

type CardConfig struct {
	TemplatePath string   `yaml:"template_path"`
	FontName     string   `yaml:"font_name"`
	FontDirs     []string `yaml:"font_dirs"`
}

type LoggerConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

type Config struct {
	Server ServerConfig    `yaml:"server"`
	Card   CardConfig      `yaml:"card"`
	Layout imagepkg.Layout `yaml:"layout"`
	Logger LoggerConfig    `yaml:"logger"`
}

func Defaults() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080, Mode: "release", MaxUploadMB: 10},
		Card:   CardConfig{TemplatePath: "static/template.png", FontName: "Arial"},
		Layout: imagepkg.DefaultLayout(),
		Logger: LoggerConfig{Level: "info", MaxSizeMB: 50, MaxBackups: 3, MaxAgeDays: 28},
	}
}

// Load reads path on top of Defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}

	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CARDGEN_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}
	// PORT is honoured for container platforms that inject it
	if v := os.Getenv("PORT"); v != "" && os.Getenv("CARDGEN_PORT") == "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = p
		}
	}
	if v := os.Getenv("CARDGEN_GIN_MODE"); v != "" {
		cfg.Server.Mode = v
	}
	if v := os.Getenv("CARDGEN_MAX_UPLOAD_MB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MaxUploadMB = n
		}
	}
	if v := os.Getenv("CARDGEN_TEMPLATE_PATH"); v != "" {
		cfg.Card.TemplatePath = v
	}
	if v := os.Getenv("CARDGEN_FONT_NAME"); v != "" {
		cfg.Card.FontName = v
	}
	if v := os.Getenv("CARDGEN_FONT_DIRS"); v != "" {
		cfg.Card.FontDirs = strings.Split(v, string(os.PathListSeparator))
	}
	if v := os.Getenv("CARDGEN_LOG_LEVEL"); v != "" {
		cfg.Logger.Level = v
	}
	if v := os.Getenv("CARDGEN_LOG_FILE"); v != "" {
		cfg.Logger.File = v
	}
}

func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server mode %q must be debug, release or test", c.Server.Mode)
	}
	if c.Server.MaxUploadMB <= 0 {
		return fmt.Errorf("server max_upload_mb must be positive")
	}
	if c.Card.TemplatePath == "" {
		return fmt.Errorf("card template_path is required")
	}
	if err := c.Layout.Validate(); err != nil {
		return err
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Server.Port)
}

func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Server.MaxUploadMB) << 20
}

func (c *Config) FontSpec() imagepkg.FontSpec {
	return imagepkg.FontSpec{Name: c.Card.FontName, Dirs: c.Card.FontDirs}
}
