package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port        int      `yaml:"port" env:"SERVER_PORT"`
	CORSOrigins []string `yaml:"corsOrigins" env:"CORS_ORIGINS" envSeparator:","`
}

type AIConfig struct {
	Provider string `yaml:"provider" env:"AI_PROVIDER"`
	// APIKey is the provider credential. Its absence is surfaced per
	// request as a configuration failure, never at startup.
	APIKey      string `yaml:"apiKey" env:"AI_API_KEY"`
	BaseURL     string `yaml:"baseURL" env:"AI_BASE_URL"`
	Model       string `yaml:"model" env:"AI_MODEL"`
	OllamaHost  string `yaml:"ollamaHost" env:"OLLAMA_HOST"`
	OllamaModel string `yaml:"ollamaModel" env:"OLLAMA_MODEL"`
}

type Config struct {
	Server ServerConfig `yaml:"server"`
	AI     AIConfig     `yaml:"ai"`
}

// Default returns the built-in configuration values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		AI: AIConfig{
			Provider:    "openai",
			Model:       "gpt-4o-mini",
			OllamaHost:  "http://localhost:11434",
			OllamaModel: "llama3",
		},
	}
}

// Load layers the config: defaults, then the optional YAML file at path,
// then environment variables on top.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
