package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the complete service configuration.
// Values come from an optional TOML file and are overridden by the environment.
type Config struct {
	HTTP      HTTPConfig      `toml:"http"`
	Database  DatabaseConfig  `toml:"database"`
	Redis     RedisConfig     `toml:"redis"`
	MinIO     MinIOConfig     `toml:"minio"`
	Auth      AuthConfig      `toml:"auth"`
	Scheduler SchedulerConfig `toml:"scheduler"`
}

type HTTPConfig struct {
	Port            int           `toml:"port" env:"PORT" env-default:"8080" env-description:"HTTP listen port"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"15s"`
}

type DatabaseConfig struct {
	URL         string `toml:"url" env:"DATABASE_URL" env-required:"true" env-description:"PostgreSQL connection string"`
	MaxConns    int32  `toml:"max_conns" env:"DATABASE_MAX_CONNS" env-default:"10"`
	ApplySchema bool   `toml:"apply_schema" env:"DATABASE_APPLY_SCHEMA" env-default:"true"`
}

type RedisConfig struct {
	Addr      string        `toml:"addr" env:"REDIS_ADDR" env-default:"localhost:6379"`
	Password  string        `toml:"password" env:"REDIS_PASSWORD"`
	DB        int           `toml:"db" env:"REDIS_DB" env-default:"0"`
	ChargeTTL time.Duration `toml:"charge_ttl" env:"REDIS_CHARGE_TTL" env-default:"1h" env-description:"How long computed charges stay cached"`
}

type MinIOConfig struct {
	Endpoint  string `toml:"endpoint" env:"MINIO_ENDPOINT" env-default:"localhost:9000"`
	AccessKey string `toml:"access_key" env:"MINIO_ACCESS_KEY" env-default:"minioadmin"`
	SecretKey string `toml:"secret_key" env:"MINIO_SECRET_KEY" env-default:"minioadmin"`
	Bucket    string `toml:"bucket" env:"MINIO_BUCKET" env-default:"billing-statements"`
	UseSSL    bool   `toml:"use_ssl" env:"MINIO_USE_SSL" env-default:"false"`
}

type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret" env:"JWT_SECRET" env-description:"HMAC secret for API tokens"`
	JWKSURL   string `toml:"jwks_url" env:"AUTH_JWKS_URL" env-description:"JWKS endpoint; takes precedence over JWT_SECRET"`
}

type SchedulerConfig struct {
	Enabled    bool `toml:"enabled" env:"SCHEDULER_ENABLED" env-default:"true"`
	DayOfMonth int  `toml:"day_of_month" env:"SCHEDULER_DAY_OF_MONTH" env-default:"1"`
	Hour       uint `toml:"hour" env:"SCHEDULER_HOUR" env-default:"2"`
}

// Load reads the configuration. An empty path reads the environment only.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values cleanenv cannot express with tags.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.HTTP.Port)
	}
	if c.Scheduler.DayOfMonth < 1 || c.Scheduler.DayOfMonth > 28 {
		return fmt.Errorf("scheduler day of month must be between 1 and 28")
	}
	if c.Scheduler.Hour > 23 {
		return fmt.Errorf("scheduler hour must be between 0 and 23")
	}
	return nil
}

// Usage describes the supported environment variables.
func Usage() string {
	help, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return err.Error()
	}
	return help
}
