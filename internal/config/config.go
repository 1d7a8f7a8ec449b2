package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// EmbedderConfig selects and configures the text embedder implementation.
type EmbedderConfig struct {
	Type      string `yaml:"type"` // "openai" or "tfidf"
	APIKeyEnv string `yaml:"api_key_env"`
	Model     string `yaml:"model"`
	Timeout   int    `yaml:"timeout_secs"`
}

// PreviewConfig configures the chat-completion preview generator.
type PreviewConfig struct {
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
	Timeout     int     `yaml:"timeout_secs"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Dataset  string         `yaml:"dataset"`
	Embedder EmbedderConfig `yaml:"embedder"`
	Preview  PreviewConfig  `yaml:"preview"`
	Server   ServerConfig   `yaml:"server"`
}

// Load reads a config from the given path. A missing file yields defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := defaultConfig()
			return cfg, nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	return &cfg, nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Dataset == "" {
		cfg.Dataset = "final_dataset.json"
	}
	if cfg.Embedder.Type == "" {
		cfg.Embedder.Type = "openai"
	}
	if cfg.Embedder.APIKeyEnv == "" {
		cfg.Embedder.APIKeyEnv = "OPENAI_API_KEY"
	}
	if cfg.Embedder.Model == "" {
		cfg.Embedder.Model = "text-embedding-3-small"
	}
	if cfg.Embedder.Timeout == 0 {
		cfg.Embedder.Timeout = 30
	}
	if cfg.Preview.Model == "" {
		cfg.Preview.Model = "gpt-3.5-turbo"
	}
	if cfg.Preview.Temperature == 0 {
		cfg.Preview.Temperature = 0.7
	}
	if cfg.Preview.Timeout == 0 {
		cfg.Preview.Timeout = 30
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":10000"
	}
}

// ListenAddr returns the configured listen address, with the PORT
// environment variable taking precedence when set.
func (c *AppConfig) ListenAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return c.Server.Addr
}
