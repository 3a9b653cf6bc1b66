package config

import (
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
)

const Production = "production"

type DatabaseOptions struct {
	Name            string        `env:"DB_NAME" envDefault:"hrdb"`
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	SSLMode         string        `env:"DB_SSLMODE" envDefault:"disable"`
	MinConns        int32         `env:"DB_POOL_MIN" envDefault:"1"`
	MaxConns        int32         `env:"DB_POOL_MAX" envDefault:"10"`
	MaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
}

// ConnectionString renders the options as a postgres:// URL so passwords
// with spaces or quotes survive intact.
func (d DatabaseOptions) ConnectionString() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, d.Port),
		Path:   "/" + d.Name,
	}
	q := url.Values{}
	if d.SSLMode != "" {
		q.Set("sslmode", d.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

type Config struct {
	Addr               string        `env:"APP_ADDR" envDefault:":8080"`
	Environment        string        `env:"APP_ENV" envDefault:"development"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat          string        `env:"LOG_FORMAT" envDefault:"json"`
	MaxBodyBytes       int64         `env:"MAX_BODY_BYTES" envDefault:"1048576"`
	RateLimitPerMinute int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"600"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	MetricsEnabled     bool          `env:"METRICS_ENABLED" envDefault:"true"`
	MetricsPath        string        `env:"METRICS_PATH" envDefault:"/metrics"`
	ReadTimeout        time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout       time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Database DatabaseOptions
}

// LoadEnv loads the env files that exist, ignoring the missing ones.
func LoadEnv(envFiles []string) (int, error) {
	existing := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

func Load() (Config, error) {
	if _, err := LoadEnv([]string{".env", ".env.local"}); err != nil {
		return Config{}, errors.Wrap(err, "load env files")
	}
	return Parse()
}

// Parse reads the configuration from the process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Environment == Production
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Database.Host) == "" {
		return errors.New("DB_HOST is required")
	}
	if strings.TrimSpace(c.Database.Name) == "" {
		return errors.New("DB_NAME is required")
	}
	if c.Database.MinConns < 0 {
		return errors.New("DB_POOL_MIN must not be negative")
	}
	if c.Database.MaxConns < 1 {
		return errors.New("DB_POOL_MAX must be at least 1")
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return errors.New("DB_POOL_MIN must not exceed DB_POOL_MAX")
	}
	if c.MaxBodyBytes < 1024 {
		return errors.New("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute < 0 {
		return errors.New("RATE_LIMIT_PER_MINUTE must not be negative")
	}
	if c.MetricsEnabled && !strings.HasPrefix(c.MetricsPath, "/") {
		return errors.New("METRICS_PATH must start with /")
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return errors.New("LOG_FORMAT must be json or text")
	}
	return nil
}
