package web

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the web server settings, read from the environment.
type Config struct {
	Addr            string        `env:"FINCALC_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"FINCALC_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"FINCALC_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout     time.Duration `env:"FINCALC_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"FINCALC_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	LogLevel        string        `env:"FINCALC_LOG_LEVEL" envDefault:"info"`
}

// LoadConfig loads the optional dotenv file, then parses and validates the
// environment. An empty dotenv path skips the file.
func LoadConfig(dotenv string) (Config, error) {
	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", dotenv, err)
		}
	}
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, c.Validate()
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("FINCALC_ADDR is empty"))
	}
	for name, d := range map[string]time.Duration{
		"FINCALC_READ_TIMEOUT":     c.ReadTimeout,
		"FINCALC_WRITE_TIMEOUT":    c.WriteTimeout,
		"FINCALC_IDLE_TIMEOUT":     c.IdleTimeout,
		"FINCALC_SHUTDOWN_TIMEOUT": c.ShutdownTimeout,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, d))
		}
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ParseLevel parses a log level name: debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}
