package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the portfolio server configuration, corresponding to portfolio.yml.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Site      SiteConfig      `koanf:"site"`
	Database  DatabaseConfig  `koanf:"database"`
	Admin     AdminConfig     `koanf:"admin"`
	Analytics AnalyticsConfig `koanf:"analytics"`
}

type ServerConfig struct {
	Port int `koanf:"port"`
	// Mode is the gin mode: debug, release or test.
	Mode string `koanf:"mode"`
}

type SiteConfig struct {
	ImagesDir string `koanf:"images_dir"`
	ExportDir string `koanf:"export_dir"`
}

type DatabaseConfig struct {
	Path string `koanf:"path"`
}

type AdminConfig struct {
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

type AnalyticsConfig struct {
	Enabled         bool `koanf:"enabled"`
	TrackLinks      bool `koanf:"track_links"`
	RetentionMonths int  `koanf:"retention_months"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server:    ServerConfig{Port: 8080, Mode: gin.ReleaseMode},
		Site:      SiteConfig{ImagesDir: "./images", ExportDir: "public"},
		Database:  DatabaseConfig{Path: "data/portfolio.db"},
		Analytics: AnalyticsConfig{Enabled: true, TrackLinks: true, RetentionMonths: 12},
	}
}

// Load starts from Default, reads the YAML file at path if it exists,
// then overlays PORTFOLIO_* environment variables
// (PORTFOLIO_SERVER_PORT -> server.port). A bare PORT variable, as set
// by most hosting platforms, wins over both.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("PORTFOLIO_", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if p := os.Getenv("PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", p, err)
		}
		cfg.Server.Port = port
	}

	return cfg, nil
}

// envKey maps PORTFOLIO_ANALYTICS_RETENTION_MONTHS to
// analytics.retention_months: the first underscore separates the section.
func envKey(s string) string {
	return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "PORTFOLIO_")), "_", ".", 1)
}

var validModes = map[string]bool{
	gin.DebugMode:   true,
	gin.ReleaseMode: true,
	gin.TestMode:    true,
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if !validModes[c.Server.Mode] {
		return fmt.Errorf("invalid server.mode %q: must be one of debug, release, test", c.Server.Mode)
	}
	if c.Analytics.Enabled && c.Database.Path == "" {
		return fmt.Errorf("database.path is required when analytics is enabled")
	}
	if c.Analytics.RetentionMonths < 1 {
		return fmt.Errorf("analytics.retention_months must be at least 1")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Server.Port)
}
