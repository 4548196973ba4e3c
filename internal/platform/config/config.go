package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// testDatabaseName is forced when TESTING=true so a test run can never touch real data.
const testDatabaseName = "paper_trail_test"

// Config captures process configuration.
type Config struct {
	Server   Server
	Database Database
	Log      Log
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string
	Development    bool
	RequestTimeout time.Duration
}

// Database captures PostgreSQL connection settings.
type Database struct {
	URL             string
	Host            string
	Port            string
	Name            string
	User            string
	Password        string
	SSLMode         string
	Schema          string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// ForceName makes Name override the database named in URL.
	ForceName bool
}

// Log captures logger settings.
type Log struct {
	Level string
}

// Load reads .env (if present) and builds a Config from environment variables.
func Load() (Config, error) {
	_ = godotenv.Load(".env")
	return FromEnv()
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() (Config, error) {
	var errs []error

	env := strings.ToLower(firstNonEmpty(os.Getenv("APP_ENV"), os.Getenv("FLASK_ENV")))

	addr := os.Getenv("PAPERTRAIL_ADDR")
	if addr == "" {
		addr = ":" + envOr("PORT", "5000")
	}

	cfg := Config{
		Server: Server{
			Addr:           addr,
			Development:    env == "development",
			RequestTimeout: durationEnv("REQUEST_TIMEOUT", 30*time.Second, &errs),
		},
		Database: Database{
			URL:             os.Getenv("DATABASE_URL"),
			Host:            envOr("DB_HOST", "localhost"),
			Port:            envOr("DB_PORT", "5432"),
			Name:            os.Getenv("DB_NAME"),
			User:            os.Getenv("DB_USER"),
			Password:        os.Getenv("DB_PASSWORD"),
			SSLMode:         envOr("DB_SSLMODE", "disable"),
			Schema:          envOr("DB_SCHEMA", "pt"),
			MaxOpenConns:    intEnv("DB_MAX_OPEN_CONNS", 10, &errs),
			MaxIdleConns:    intEnv("DB_MAX_IDLE_CONNS", 5, &errs),
			ConnMaxLifetime: durationEnv("DB_CONN_MAX_LIFETIME", 30*time.Minute, &errs),
		},
		Log: Log{
			Level: envOr("LOG_LEVEL", "info"),
		},
	}

	if os.Getenv("TESTING") == "true" {
		cfg.Database.Name = testDatabaseName
		cfg.Database.ForceName = true
	}

	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Warnings lists missing settings that do not stop the process but will likely make
// every database query fail.
func (c Config) Warnings() []string {
	if c.Database.URL != "" {
		return nil
	}
	var missing []string
	if c.Database.Name == "" {
		missing = append(missing, "DB_NAME")
	}
	if c.Database.User == "" {
		missing = append(missing, "DB_USER")
	}
	if c.Database.Password == "" {
		missing = append(missing, "DB_PASSWORD")
	}
	if len(missing) == 0 {
		return nil
	}
	return []string{"database credentials not set: " + strings.Join(missing, ", ")}
}

// DSN returns a lib/pq connection URL. DATABASE_URL wins over the individual parts
// except the database name when ForceName is set. The search_path runtime parameter
// is added when a schema is configured.
func (d Database) DSN() (string, error) {
	var u *url.URL
	if d.URL != "" {
		parsed, err := url.Parse(d.URL)
		if err != nil {
			return "", fmt.Errorf("parse DATABASE_URL: %w", err)
		}
		u = parsed
		if d.ForceName {
			u.Path = "/" + d.Name
			u.RawPath = ""
		}
	} else {
		u = &url.URL{
			Scheme: "postgres",
			Host:   net.JoinHostPort(d.Host, d.Port),
			Path:   "/" + d.Name,
		}
		if d.User != "" {
			u.User = url.UserPassword(d.User, d.Password)
		}
	}

	q := u.Query()
	if q.Get("sslmode") == "" && d.SSLMode != "" {
		q.Set("sslmode", d.SSLMode)
	}
	if q.Get("search_path") == "" && d.Schema != "" {
		q.Set("search_path", d.Schema+",public")
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func intEnv(key string, fallback int, errs *[]error) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		*errs = append(*errs, fmt.Errorf("invalid %s %q: expected a non-negative integer", key, raw))
		return fallback
	}
	return n
}

func durationEnv(key string, fallback time.Duration, errs *[]error) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		*errs = append(*errs, fmt.Errorf("invalid %s %q: expected a positive duration", key, raw))
		return fallback
	}
	return d
}
