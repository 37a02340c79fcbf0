package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type HTTP struct {
	Addr            string   `yaml:"addr"`
	ReadTimeout     string   `yaml:"readTimeout"`     // "10s"
	WriteTimeout    string   `yaml:"writeTimeout"`    // "15s"
	IdleTimeout     string   `yaml:"idleTimeout"`     // "60s"
	RequestTimeout  string   `yaml:"requestTimeout"`  // "30s"
	AllowedOrigins  []string `yaml:"allowedOrigins"`  // CORS; пусто — выключено
	ShutdownTimeout string   `yaml:"shutdownTimeout"` // "10s"
}

type GRPC struct {
	Addr        string `yaml:"addr"`
	CallTimeout string `yaml:"callTimeout"` // "10s"
}

type Logging struct {
	Env       string `yaml:"env"`       // dev|stage|prod
	Service   string `yaml:"service"`   // rooms-api
	Version   string `yaml:"version"`   // v0.1.0
	Backend   string `yaml:"backend"`   // std|zap
	Level     string `yaml:"level"`     // debug|info|warn|error
	AddSource bool   `yaml:"addSource"` // false|true
	Debug     bool   `yaml:"debug"`     // false|true
}

type Postgres struct {
	DSN             string `yaml:"dsn"`
	MaxConns        int32  `yaml:"maxConns"`
	MinConns        int32  `yaml:"minConns"`
	MaxConnLifetime string `yaml:"maxConnLifetime"`
	MaxConnIdleTime string `yaml:"maxConnIdleTime"`
}

type SQLite struct {
	Path string `yaml:"path"`
}

type Storage struct {
	Driver   string   `yaml:"driver"` // postgres|sqlite
	Postgres Postgres `yaml:"postgres"`
	SQLite   SQLite   `yaml:"sqlite"`
}

type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type Cache struct {
	Enabled bool   `yaml:"enabled"`
	Key     string `yaml:"key"`
	TTL     string `yaml:"ttl"` // "5s"
	Redis   Redis  `yaml:"redis"`
}

type Config struct {
	HTTP    HTTP    `yaml:"http"`
	GRPC    GRPC    `yaml:"grpc"`
	Logging Logging `yaml:"logging"`
	Storage Storage `yaml:"storage"`
	Cache   Cache   `yaml:"cache"`
}

func LoadConfig() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "./config/config.yaml"
	}
	return LoadFile(path)
}

func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.HTTP.Addr == "" {
		return errors.New("http.addr is required")
	}

	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverPostgres
	}
	switch c.Storage.Driver {
	case DriverPostgres:
		if c.Storage.Postgres.DSN == "" {
			return errors.New("storage.postgres.dsn is required")
		}
	case DriverSQLite:
		if c.Storage.SQLite.Path == "" {
			return errors.New("storage.sqlite.path is required")
		}
	default:
		return fmt.Errorf("storage.driver: unknown driver %q", c.Storage.Driver)
	}

	if c.Cache.Enabled && c.Cache.Redis.Addr == "" {
		return errors.New("cache.redis.addr is required when cache is enabled")
	}

	// установка дефолтов, если значения не указаны
	if c.Logging.Service == "" {
		c.Logging.Service = "rooms-api"
	}
	if c.Logging.Env == "" {
		c.Logging.Env = "dev"
	}
	if c.Logging.Version == "" {
		c.Logging.Version = "v0.1.0"
	}
	if c.Logging.Backend == "" {
		c.Logging.Backend = "std"
	}
	return nil
}

func (h HTTP) ReadTimeoutOr(def time.Duration) time.Duration { return parseDurationOr(def, h.ReadTimeout) }
func (h HTTP) WriteTimeoutOr(def time.Duration) time.Duration { return parseDurationOr(def, h.WriteTimeout) }
func (h HTTP) IdleTimeoutOr(def time.Duration) time.Duration { return parseDurationOr(def, h.IdleTimeout) }
func (h HTTP) RequestTimeoutOr(def time.Duration) time.Duration {
	return parseDurationOr(def, h.RequestTimeout)
}
func (h HTTP) ShutdownTimeoutOr(def time.Duration) time.Duration {
	return parseDurationOr(def, h.ShutdownTimeout)
}

func (g GRPC) CallTimeoutOr(def time.Duration) time.Duration { return parseDurationOr(def, g.CallTimeout) }

func (p Postgres) MaxConnLifetimeOr(def time.Duration) time.Duration {
	return parseDurationOr(def, p.MaxConnLifetime)
}
func (p Postgres) MaxConnIdleTimeOr(def time.Duration) time.Duration {
	return parseDurationOr(def, p.MaxConnIdleTime)
}

func (c Cache) TTLOr(def time.Duration) time.Duration { return parseDurationOr(def, c.TTL) }

// helper для парсинга timeout-ов
func parseDurationOr(def time.Duration, s string) time.Duration {
	if d, err := time.ParseDuration(s); err == nil && d > 0 {
		return d
	}
	return def
}
