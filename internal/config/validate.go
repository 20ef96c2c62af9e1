package config

import (
	"fmt"

	"github.com/heartmarshall/flashcards-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.validateStore(); err != nil {
		return fmt.Errorf("store: %w", err)
	}

	if err := c.Study.validate(); err != nil {
		return fmt.Errorf("study: %w", err)
	}

	if err := c.Generator.validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}

	if err := c.Server.validate(); err != nil {
		return fmt.Errorf("server: %w", err)
	}

	if c.RateLimit.GeneratePerMinute <= 0 {
		return fmt.Errorf("rate_limit.generate_per_minute must be > 0 (got %d)", c.RateLimit.GeneratePerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
	}

	return nil
}

func (s *ServerConfig) validate() error {
	if s.Port < 0 || s.Port > 65535 {
		return fmt.Errorf("port must be in 0..65535 (got %d)", s.Port)
	}
	if s.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be > 0 (got %v)", s.ShutdownTimeout)
	}
	return nil
}

func (c *Config) validateStore() error {
	switch c.Store.Driver {
	case domain.StoreDriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for driver %q", c.Store.Driver)
		}
		if c.Database.MinConns > c.Database.MaxConns {
			return fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
		}
	case domain.StoreDriverSQLite:
		if c.SQLite.Path == "" {
			return fmt.Errorf("sqlite.path is required for driver %q", c.Store.Driver)
		}
	default:
		return fmt.Errorf("unknown driver %q", c.Store.Driver)
	}
	return nil
}

func (s *StudyConfig) validate() error {
	if s.SessionSize <= 0 {
		return fmt.Errorf("session_size must be > 0 (got %d)", s.SessionSize)
	}
	if s.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be > 0 (got %v)", s.TickInterval)
	}
	return nil
}

func (g *GeneratorConfig) validate() error {
	switch g.Provider {
	case ProviderMock:
	case ProviderAnthropic:
		if g.APIKey == "" {
			return fmt.Errorf("api_key is required for provider %q", g.Provider)
		}
		if g.Model == "" {
			return fmt.Errorf("model is required for provider %q", g.Provider)
		}
	default:
		return fmt.Errorf("unknown provider %q", g.Provider)
	}
	if g.MaxCards <= 0 {
		return fmt.Errorf("max_cards must be > 0 (got %d)", g.MaxCards)
	}
	if g.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", g.MaxTokens)
	}
	return nil
}
