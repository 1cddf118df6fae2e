package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      int    `env:"PORT, default=3000"`
	GinMode   string `env:"GIN_MODE, default=release"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`
	WebDir    string `env:"WEB_DIR, default=public"`

	DB      DBConfig
	Session SessionConfig
	Auth    AuthConfig
	Seed    SeedConfig
}

type DBConfig struct {
	Driver          string        `env:"DB_DRIVER, default=mysql"`
	Host            string        `env:"DB_HOST, default=localhost"`
	Port            int           `env:"DB_PORT, default=3306"`
	User            string        `env:"DB_USER, default=root"`
	Password        string        `env:"DB_PASSWORD, default=root"`
	Name            string        `env:"DB_NAME, default=capsule_db"`
	Path            string        `env:"DB_PATH, default=var/capsule.db"`
	PoolSize        int           `env:"DB_POOL_SIZE, default=10"`
	ConnectAttempts int           `env:"DB_CONNECT_ATTEMPTS, default=10"`
	ConnectBackoff  time.Duration `env:"DB_CONNECT_BACKOFF, default=2s"`
	Debug           bool          `env:"DB_DEBUG, default=false"`
}

type SessionConfig struct {
	Secret        string `env:"SESSION_SECRET, default=capsule-secret-change-this-in-production"`
	MaxAge        MaxAge `env:"SESSION_MAX_AGE, default=30m"`
	Store         string `env:"SESSION_STORE, default=memory"`
	SecureCookies bool   `env:"SECURE_COOKIES, default=false"`
}

type AuthConfig struct {
	BcryptCost    int    `env:"BCRYPT_COST, default=10"`
	AdminUsername string `env:"ADMIN_USERNAME, default=admin"`
	AdminPassword string `env:"ADMIN_PASSWORD, default=admin123"`
	AdminEmail    string `env:"ADMIN_EMAIL, default=admin@retaildashboard.com"`
}

type SeedConfig struct {
	SampleData bool `env:"SEED_SAMPLE_DATA, default=false"`
}

// MaxAge is a session lifetime. It accepts a Go duration ("30m") or a bare
// millisecond count ("1800000") as older deployments configured it.
type MaxAge time.Duration

func (m *MaxAge) EnvDecode(val string) error {
	val = strings.TrimSpace(val)
	if ms, err := strconv.ParseInt(val, 10, 64); err == nil {
		*m = MaxAge(time.Duration(ms) * time.Millisecond)
		return nil
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return fmt.Errorf("invalid session max age %q: %w", val, err)
	}
	*m = MaxAge(d)
	return nil
}

func (m MaxAge) Duration() time.Duration {
	return time.Duration(m)
}

// Load reads .env (if present) and then the process environment.
func Load(ctx context.Context) (*Config, error) {
	_ = godotenv.Load()
	return LoadFrom(ctx, envconfig.OsLookuper())
}

// LoadFrom decodes the configuration from an arbitrary lookuper.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case "mysql", "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DB_DRIVER: %q", c.DB.Driver)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unsupported GIN_MODE: %q", c.GinMode)
	}
	switch c.Session.Store {
	case "memory", "cookie":
	default:
		return fmt.Errorf("unsupported SESSION_STORE: %q", c.Session.Store)
	}
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET is not set")
	}
	if c.Session.MaxAge.Duration() <= 0 {
		return fmt.Errorf("SESSION_MAX_AGE must be positive")
	}
	if c.DB.PoolSize <= 0 {
		return fmt.Errorf("DB_POOL_SIZE must be positive")
	}
	if c.DB.ConnectAttempts <= 0 {
		c.DB.ConnectAttempts = 1
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
