// Package config loads service settings from an optional YAML file and the
// environment, with the environment taking precedence. A .env file in the
// working directory is honored for local runs.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Asset source kinds.
const (
	SourceHTTP = "http"
	SourceS3   = "s3"
)

// Config holds the runtime settings.
type Config struct {
	ListenAddr     string `yaml:"listen_addr"`
	BackendBaseURL string `yaml:"backend_base_url"`
	AssetsBaseURL  string `yaml:"assets_base_url"`

	AssetSource string `yaml:"asset_source"` // http or s3
	S3Bucket    string `yaml:"s3_bucket"`
	S3Region    string `yaml:"s3_region"`

	DownloadsDir  string `yaml:"downloads_dir"`
	WhatsAppPhone string `yaml:"whatsapp_phone"`
}

func defaults() Config {
	return Config{
		ListenAddr:    ":8080",
		AssetSource:   SourceHTTP,
		DownloadsDir:  "downloads",
		WhatsAppPhone: "919360485526",
	}
}

// Load reads the config file at path (skipped when empty or absent), then
// overlays environment variables.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := defaults()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("config: read %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	overlay(&cfg.ListenAddr, "LISTEN_ADDR")
	overlay(&cfg.BackendBaseURL, "BACKEND_BASE_URL")
	overlay(&cfg.AssetsBaseURL, "ASSETS_BASE_URL")
	overlay(&cfg.AssetSource, "ASSET_SOURCE")
	overlay(&cfg.S3Bucket, "S3_BUCKET")
	overlay(&cfg.S3Region, "S3_REGION")
	overlay(&cfg.DownloadsDir, "DOWNLOADS_DIR")
	overlay(&cfg.WhatsAppPhone, "WHATSAPP_PHONE")

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func overlay(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func (c Config) validate() error {
	if c.BackendBaseURL == "" {
		return fmt.Errorf("config: backend base URL is required")
	}
	switch c.AssetSource {
	case SourceHTTP, SourceS3:
	default:
		return fmt.Errorf("config: unknown asset source %q", c.AssetSource)
	}
	if c.AssetSource == SourceS3 && (c.S3Bucket == "" || c.S3Region == "") {
		return fmt.Errorf("config: s3 asset source needs bucket and region")
	}
	return nil
}

// AssetsBase returns the public base URL assets are served from, defaulting
// to the backend itself.
func (c Config) AssetsBase() string {
	if c.AssetsBaseURL != "" {
		return c.AssetsBaseURL
	}
	return c.BackendBaseURL
}
