package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DatabaseURL    string `yaml:"database_url"`
	HTTPListenAddr string `yaml:"http_listen_addr"`
	LogLevel       string `yaml:"log_level"`
	ServiceName    string `yaml:"service_name"`
	// FabricName tags log lines when one deployment tracks several fabrics.
	FabricName string `yaml:"fabric_name"`
}

// Load reads configuration from the environment, optionally overlaid on a
// YAML file named by CONFIG_FILE. Environment variables win.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPListenAddr: ":8090",
		LogLevel:       "info",
		ServiceName:    "inventory-api",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	overlayEnv(&cfg.DatabaseURL, "DATABASE_URL")
	overlayEnv(&cfg.HTTPListenAddr, "HTTP_LISTEN_ADDR")
	overlayEnv(&cfg.LogLevel, "LOG_LEVEL")
	overlayEnv(&cfg.ServiceName, "SERVICE_NAME")
	overlayEnv(&cfg.FabricName, "FABRIC_NAME")

	return cfg, nil
}

// Validate checks that required settings are present.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	return nil
}

func overlayEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
