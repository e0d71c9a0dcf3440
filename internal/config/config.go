package config

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap/zapcore"
)

const (
	// PortEnv names the variable holding the gRPC listen port.
	PortEnv = "ORDER_PORT"
	// DatabaseURLEnv names the variable holding the primary database URL.
	DatabaseURLEnv = "ORDER_SERVICE_DATABASE_URL"

	// DefaultSchema is the schema the order tables live in.
	DefaultSchema = "order-service"
	// SQLiteSchema is the only schema a SQLite connection exposes for its main database.
	SQLiteSchema = "main"
)

// GRPC holds gRPC server configuration.
type GRPC struct {
	Host       string
	Port       int
	Reflection bool
}

// HTTP holds the ops/JSON HTTP server configuration.
type HTTP struct {
	Enabled bool
	Host    string
	Port    int
}

// Cache configures caching behavior and backend selection.
type Cache struct {
	Enabled    bool
	Driver     string
	DefaultTTL time.Duration
	Redis      Redis
}

// Redis contains redis-specific connection settings.
type Redis struct {
	Addr     string
	Password string
	DB       int
}

// Database holds primary and read replica connection settings.
type Database struct {
	Driver          string
	WriterDSN       string
	ReaderDSN       string
	Schema          string
	MaxOpenConns    int
	MaxIdleConns    int
	MaxConnLifetime time.Duration
}

// Observability contains logging, tracing, and metrics configuration.
type Observability struct {
	ServiceName     string
	Environment     string
	LogLevel        string
	LogEncoding     string
	EnableTracing   bool
	TraceExporter   string
	TraceEndpoint   string
	TraceInsecure   bool
	EnableMetrics   bool
	MetricsExporter string
	PrometheusPath  string
}

// Config wraps all application configuration knobs.
type Config struct {
	GRPC          GRPC
	HTTP          HTTP
	Cache         Cache
	Database      Database
	Observability Observability
}

// Module wires the configuration loader into the Fx graph.
var Module = fx.Provide(New)

var loadEnvOnce sync.Once

// New builds a Config from environment variables or defaults.
func New() (Config, error) {
	loadEnvOnce.Do(func() {
		_ = godotenv.Load()
	})
	return Load()
}

// Load reads the configuration from the current process environment without touching .env files.
func Load() (Config, error) {
	port, err := requireEnvAsInt(PortEnv)
	if err != nil {
		return Config{}, err
	}
	writerDSN, err := requireEnv(DatabaseURLEnv)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		GRPC: GRPC{
			Host:       getEnv("ORDER_HOST", "::1"),
			Port:       port,
			Reflection: getEnvAsBool("GRPC_REFLECTION", true),
		},
		HTTP: HTTP{
			Enabled: getEnvAsBool("HTTP_ENABLED", true),
			Host:    getEnv("HTTP_HOST", "::1"),
			Port:    getEnvAsInt("HTTP_PORT", 8080),
		},
		Cache: Cache{
			Enabled:    getEnvAsBool("CACHE_ENABLED", false),
			Driver:     getEnv("CACHE_DRIVER", "redis"),
			DefaultTTL: getEnvAsDuration("CACHE_DEFAULT_TTL", 30*time.Second),
			Redis: Redis{
				Addr:     getEnv("REDIS_ADDR", "127.0.0.1:6379"),
				Password: getEnv("REDIS_PASSWORD", ""),
				DB:       getEnvAsInt("REDIS_DB", 0),
			},
		},
		Database: Database{
			Driver:          getEnv("DB_DRIVER", "mysql"),
			WriterDSN:       writerDSN,
			ReaderDSN:       getEnv("ORDER_SERVICE_DATABASE_READER_URL", ""),
			Schema:          getEnv("DB_SCHEMA", ""),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 1),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 1),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 0),
		},
		Observability: Observability{
			ServiceName:     getEnv("OBS_SERVICE_NAME", "order-service"),
			Environment:     getEnv("OBS_ENVIRONMENT", "local"),
			LogLevel:        getEnv("ORDER_LOG_LEVEL", "info"),
			LogEncoding:     getEnv("ORDER_LOG_ENCODING", "json"),
			EnableTracing:   getEnvAsBool("OBS_ENABLE_TRACING", false),
			TraceExporter:   getEnv("OBS_TRACE_EXPORTER", "stdout"),
			TraceEndpoint:   getEnv("OBS_OTLP_ENDPOINT", "localhost:4317"),
			TraceInsecure:   getEnvAsBool("OBS_OTLP_INSECURE", true),
			EnableMetrics:   getEnvAsBool("OBS_ENABLE_METRICS", true),
			MetricsExporter: getEnv("OBS_METRICS_EXPORTER", "prometheus"),
			PrometheusPath:  getEnv("OBS_PROMETHEUS_PATH", "/metrics"),
		},
	}

	return normalize(cfg)
}

func normalize(cfg Config) (Config, error) {
	if cfg.GRPC.Port <= 0 || cfg.GRPC.Port > 65535 {
		return Config{}, fmt.Errorf("invalid %s: %d", PortEnv, cfg.GRPC.Port)
	}

	if cfg.HTTP.Enabled && (cfg.HTTP.Port <= 0 || cfg.HTTP.Port > 65535) {
		return Config{}, fmt.Errorf("invalid HTTP port: %d", cfg.HTTP.Port)
	}

	if !cfg.Cache.Enabled {
		cfg.Cache.Driver = "noop"
	}

	switch cfg.Cache.Driver {
	case "redis", "memory", "noop":
		// supported
	default:
		return Config{}, fmt.Errorf("unsupported cache driver: %s", cfg.Cache.Driver)
	}

	if cfg.Cache.Driver == "redis" && cfg.Cache.Redis.Addr == "" {
		return Config{}, fmt.Errorf("missing REDIS_ADDR for redis cache")
	}

	if cfg.Cache.DefaultTTL <= 0 {
		cfg.Cache.DefaultTTL = 30 * time.Second
	}

	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	switch cfg.Database.Driver {
	case "mysql", "postgres", "sqlite":
		// supported
	default:
		return Config{}, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	if cfg.Database.ReaderDSN == "" {
		cfg.Database.ReaderDSN = cfg.Database.WriterDSN
	}

	cfg.Database.Schema = strings.TrimSpace(cfg.Database.Schema)
	if cfg.Database.Schema == "" {
		cfg.Database.Schema = DefaultSchema
		if cfg.Database.Driver == "sqlite" {
			cfg.Database.Schema = SQLiteSchema
		}
	}

	if cfg.Database.MaxOpenConns <= 0 {
		cfg.Database.MaxOpenConns = 1
	}
	if cfg.Database.MaxIdleConns > cfg.Database.MaxOpenConns {
		cfg.Database.MaxIdleConns = cfg.Database.MaxOpenConns
	}

	cfg.Observability.LogLevel = strings.ToLower(strings.TrimSpace(cfg.Observability.LogLevel))
	if cfg.Observability.LogLevel == "" {
		cfg.Observability.LogLevel = "info"
	}
	if _, err := zapcore.ParseLevel(cfg.Observability.LogLevel); err != nil {
		return Config{}, fmt.Errorf("invalid ORDER_LOG_LEVEL: %q", cfg.Observability.LogLevel)
	}
	cfg.Observability.LogEncoding = strings.ToLower(strings.TrimSpace(cfg.Observability.LogEncoding))
	if cfg.Observability.LogEncoding == "" {
		cfg.Observability.LogEncoding = "json"
	}
	cfg.Observability.TraceExporter = strings.ToLower(strings.TrimSpace(cfg.Observability.TraceExporter))
	if cfg.Observability.TraceExporter == "" {
		cfg.Observability.TraceExporter = "stdout"
	}
	cfg.Observability.MetricsExporter = strings.ToLower(strings.TrimSpace(cfg.Observability.MetricsExporter))
	if cfg.Observability.MetricsExporter == "" {
		cfg.Observability.MetricsExporter = "prometheus"
	}

	if cfg.Observability.PrometheusPath == "" {
		cfg.Observability.PrometheusPath = "/metrics"
	} else if !strings.HasPrefix(cfg.Observability.PrometheusPath, "/") {
		cfg.Observability.PrometheusPath = "/" + cfg.Observability.PrometheusPath
	}

	return cfg, nil
}
