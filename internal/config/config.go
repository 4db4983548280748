// apps/go-server/internal/config/config.go
//
// Process configuration, read from the environment (and a .env file in
// development via godotenv).

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is everything the server reads from its environment.
type Config struct {
	Port           string `env:"PORT" envDefault:"5175"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv         string `env:"APP_ENV" envDefault:"development"`
	Store          string `env:"STORE" envDefault:"sqlite"` // "sqlite" | "memory"
	DatabasePath   string `env:"DATABASE_PATH" envDefault:"./data/app.db"`
	JWTSecret      string `env:"JWT_SECRET" envDefault:"dev_secret_change_me"`
	JWTExpiresDays int    `env:"JWT_EXPIRES_DAYS" envDefault:"14"`
	CookieName     string `env:"COOKIE_NAME" envDefault:"mastermind_token"`
	ClientOrigin   string `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	DailySalt      string `env:"DAILY_SALT" envDefault:"local_dev_salt"`
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the process environment only.
func Parse() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if c.Store != "sqlite" && c.Store != "memory" {
		return Config{}, fmt.Errorf("STORE must be sqlite or memory, got %q", c.Store)
	}
	if c.JWTExpiresDays <= 0 {
		return Config{}, fmt.Errorf("JWT_EXPIRES_DAYS must be positive, got %d", c.JWTExpiresDays)
	}
	return c, nil
}

// Production reports whether cookies should be Secure / SameSite=None.
func (c Config) Production() bool { return c.AppEnv == "production" }

// TokenTTL is how long issued auth tokens stay valid.
func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpiresDays) * 24 * time.Hour
}
