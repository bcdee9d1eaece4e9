package splitwise

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/masa-finance/go-splitwise/auth"
)

// Config holds everything needed to build a Client from the environment.
type Config struct {
	ConsumerKey       string        `validate:"required"`
	ConsumerSecret    string        `validate:"required"`
	CallbackURL       string        `validate:"omitempty,url"`
	AccessToken       string        `validate:"required_with=AccessTokenSecret"`
	AccessTokenSecret string        `validate:"required_with=AccessToken"`
	BaseURL           string        `validate:"required,url"`
	Proxy             string        `validate:"omitempty,url"`
	Timeout           time.Duration `validate:"gte=0"`
}

// LoadConfig reads the configuration from SPLITWISE_* environment variables.
// A .env file in the working directory is loaded first when present.
func LoadConfig() (*Config, error) {
	// Missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	cfg := &Config{
		ConsumerKey:       getEnv("SPLITWISE_CONSUMER_KEY", ""),
		ConsumerSecret:    getEnv("SPLITWISE_CONSUMER_SECRET", ""),
		CallbackURL:       getEnv("SPLITWISE_CALLBACK_URL", ""),
		AccessToken:       getEnv("SPLITWISE_OAUTH_TOKEN", ""),
		AccessTokenSecret: getEnv("SPLITWISE_OAUTH_TOKEN_SECRET", ""),
		BaseURL:           getEnv("SPLITWISE_BASE_URL", DefaultBaseURL),
		Proxy:             getEnv("SPLITWISE_PROXY", ""),
	}

	timeout, err := time.ParseDuration(getEnv("SPLITWISE_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SPLITWISE_TIMEOUT: %w", err)
	}
	cfg.Timeout = timeout

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is complete.
func (cfg *Config) Validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid splitwise configuration: %w", err)
	}
	return nil
}

// HasAccessToken reports whether the configuration carries an access token.
func (cfg *Config) HasAccessToken() bool {
	return cfg.AccessToken != "" && cfg.AccessTokenSecret != ""
}

// NewFromConfig builds a Client from a validated configuration.
func NewFromConfig(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := New(cfg.ConsumerKey, cfg.ConsumerSecret).
		WithBaseURL(cfg.BaseURL).
		WithCallbackURL(cfg.CallbackURL)
	if cfg.Timeout > 0 {
		c.WithClientTimeout(cfg.Timeout)
	}
	if cfg.Proxy != "" {
		if err := c.SetProxy(cfg.Proxy); err != nil {
			return nil, fmt.Errorf("invalid SPLITWISE_PROXY: %w", err)
		}
	}
	if cfg.HasAccessToken() {
		c.SetAccessToken(auth.Token{Token: cfg.AccessToken, Secret: cfg.AccessTokenSecret})
	}
	return c, nil
}

// getEnv returns the value of an environment variable or a default if empty.
func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
