// Package config loads runtime settings from the environment.
// An optional .env file is read first so local runs match the deployed setup.
package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"development"`
	Port   int    `env:"PORT" envDefault:"3000"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// WriteTimeout bounds the whole handler, so it must outlast a slow completion.
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"180s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`

	MaxRequestBodySize int64 `env:"MAX_REQUEST_BODY_SIZE" envDefault:"1048576"`

	// StaticDir overrides the embedded web assets when set.
	StaticDir string `env:"STATIC_DIR"`

	LLM  LLMConfig
	Mail MailConfig
}

// LLMConfig selects the completion provider. The API key is not part of it:
// every request carries its own. An empty BaseURL means the provider's default.
type LLMConfig struct {
	Provider string   `env:"LLM_PROVIDER" envDefault:"perplexity"`
	BaseURL  string   `env:"LLM_BASE_URL"`
	Model    string   `env:"LLM_MODEL" envDefault:"sonar-pro"`
	Models   []string `env:"LLM_MODELS" envSeparator:"," envDefault:"sonar-pro,sonar,sonar-deep-research,sonar-reasoning-pro,sonar-reasoning,r1-1776"`
}

// MailConfig holds the server-side SMTP identity used for /send-email.
type MailConfig struct {
	User     string `env:"EMAIL_USER"`
	Password string `env:"EMAIL_PASS"`
	Host     string `env:"EMAIL_HOST" envDefault:"smtp.gmail.com"`
	Port     int    `env:"EMAIL_PORT" envDefault:"587"`
	Subject  string `env:"EMAIL_SUBJECT" envDefault:"Your Business Ideas"`
}

var providers = []string{"perplexity", "openai", "gemini", "mock"}

// Enabled reports whether credentials for sending mail are present.
func (m MailConfig) Enabled() bool {
	return m.User != "" && m.Password != ""
}

// AllowsModel reports whether a request may select model.
// An empty allow-list permits any model.
func (l LLMConfig) AllowsModel(model string) bool {
	if len(l.Models) == 0 {
		return true
	}
	return slices.Contains(l.Models, model)
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate checks values env tags cannot express.
func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT out of range: %d", c.Port))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.LogFormat))
	}
	if !slices.Contains(providers, c.LLM.Provider) {
		errs = append(errs, fmt.Errorf("LLM_PROVIDER %q not supported", c.LLM.Provider))
	}
	if c.LLM.Model == "" {
		errs = append(errs, errors.New("LLM_MODEL is required"))
	}
	return errors.Join(errs...)
}

// Load reads the given .env files (or ./.env when none are named and it
// exists), then parses the environment into a Config.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, fmt.Errorf("failed to load env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
