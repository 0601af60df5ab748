package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		// dev | prod
		Env string `yaml:"app_env"`
	} `yaml:"app"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`

	Server struct {
		Addr               string   `yaml:"addr"`
		CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
		// Vacío desactiva el chequeo de X-Admin-API-Key.
		AdminAPIKey     string `yaml:"admin_api_key"`
		ShutdownTimeout string `yaml:"shutdown_timeout"`
		// Admin API requests per client IP per window. 0 disables limiting.
		RateLimit struct {
			Requests int    `yaml:"requests"`
			Window   string `yaml:"window"`
		} `yaml:"rate_limit"`
	} `yaml:"server"`

	Cache struct {
		Kind string `yaml:"kind"` // memory | redis
		// Lifetime of memoized search results.
		TTL   string `yaml:"ttl"`
		Redis struct {
			Addr     string `yaml:"addr"`
			DB       int    `yaml:"db"`
			Password string `yaml:"password"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"cache"`

	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`

	Seed struct {
		// YAML file with initial users and roles. Empty uses the built-in rows.
		Path string `yaml:"path"`
	} `yaml:"seed"`
}

// Default retorna la configuración usada cuando no hay archivo.
func Default() *Config {
	c := &Config{}
	c.Metrics.Enabled = true
	c.applyDefaults()
	return c
}

// Load lee path (si no está vacío), completa defaults, aplica overrides de env
// y valida. Un seed path relativo se resuelve contra el directorio del YAML.
func Load(path string) (*Config, error) {
	c := &Config{}
	// Métricas activas por defecto; "enabled: false" en el YAML las apaga.
	c.Metrics.Enabled = true

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
		if p := strings.TrimSpace(c.Seed.Path); p != "" && !filepath.IsAbs(p) {
			c.Seed.Path = filepath.Clean(filepath.Join(filepath.Dir(path), p))
		}
	}

	c.applyDefaults()
	c.applyEnvOverrides()

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyDefaults() {
	if c.App.Env == "" {
		c.App.Env = "dev"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ShutdownTimeout == "" {
		c.Server.ShutdownTimeout = "10s"
	}
	if c.Server.RateLimit.Window == "" {
		c.Server.RateLimit.Window = "1m"
	}
	if c.Cache.Kind == "" {
		c.Cache.Kind = "memory"
	}
	if c.Cache.TTL == "" {
		c.Cache.TTL = "2m"
	}
	if c.Cache.Redis.Prefix == "" {
		c.Cache.Redis.Prefix = "rbac"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
}

// Validate chequea enumeraciones y duraciones.
func (c *Config) Validate() error {
	switch c.Cache.Kind {
	case "memory", "redis":
	default:
		return fmt.Errorf("config: cache.kind must be memory or redis, got %q", c.Cache.Kind)
	}
	if _, err := time.ParseDuration(c.Cache.TTL); err != nil {
		return fmt.Errorf("config: cache.ttl: %w", err)
	}
	if _, err := time.ParseDuration(c.Server.ShutdownTimeout); err != nil {
		return fmt.Errorf("config: server.shutdown_timeout: %w", err)
	}
	if c.Server.RateLimit.Requests < 0 {
		return fmt.Errorf("config: server.rate_limit.requests must be >= 0, got %d", c.Server.RateLimit.Requests)
	}
	if d, err := time.ParseDuration(c.Server.RateLimit.Window); err != nil || d <= 0 {
		return fmt.Errorf("config: server.rate_limit.window must be a positive duration, got %q", c.Server.RateLimit.Window)
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("config: metrics.path must start with /, got %q", c.Metrics.Path)
	}
	return nil
}

// CacheTTL returns the parsed cache TTL. Load has already validated it.
func (c *Config) CacheTTL() time.Duration {
	d, _ := time.ParseDuration(c.Cache.TTL)
	return d
}

// ShutdownTimeout returns the parsed graceful-shutdown budget.
func (c *Config) ShutdownTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Server.ShutdownTimeout)
	return d
}

// RateLimitWindow returns the parsed rate-limit window.
func (c *Config) RateLimitWindow() time.Duration {
	d, _ := time.ParseDuration(c.Server.RateLimit.Window)
	return d
}

// ---- Helpers env ----

func getEnvStr(key string) (string, bool) {
	v := os.Getenv(key)
	return v, v != ""
}

func getEnvInt(key string) (int, bool) {
	if s, ok := getEnvStr(key); ok {
		if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return i, true
		}
	}
	return 0, false
}

func getEnvBool(key string) (bool, bool) {
	if s, ok := getEnvStr(key); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
			return b, true
		}
	}
	return false, false
}

func getEnvCSV(key string) ([]string, bool) {
	s, ok := getEnvStr(key)
	if !ok {
		return nil, false
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out, true
}

// applyEnvOverrides: el entorno pisa lo que venga de config.yaml.
func (c *Config) applyEnvOverrides() {
	if v, ok := getEnvStr("APP_ENV"); ok {
		c.App.Env = strings.ToLower(v)
	}
	if v, ok := getEnvStr("LOG_LEVEL"); ok {
		c.Log.Level = strings.ToLower(v)
	}

	// SERVER
	if v, ok := getEnvStr("SERVER_ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := getEnvCSV("SERVER_CORS_ALLOWED_ORIGINS"); ok {
		c.Server.CORSAllowedOrigins = v
	}
	if v, ok := getEnvStr("ADMIN_API_KEY"); ok {
		c.Server.AdminAPIKey = v
	}
	if v, ok := getEnvStr("SERVER_SHUTDOWN_TIMEOUT"); ok {
		c.Server.ShutdownTimeout = v
	}
	if v, ok := getEnvInt("RATE_LIMIT_REQUESTS"); ok {
		c.Server.RateLimit.Requests = v
	}
	if v, ok := getEnvStr("RATE_LIMIT_WINDOW"); ok {
		c.Server.RateLimit.Window = v
	}

	// CACHE
	if v, ok := getEnvStr("CACHE_KIND"); ok {
		c.Cache.Kind = strings.ToLower(v)
	}
	if v, ok := getEnvStr("CACHE_TTL"); ok {
		c.Cache.TTL = v
	}
	if v, ok := getEnvStr("REDIS_ADDR"); ok {
		c.Cache.Redis.Addr = v
	}
	if v, ok := getEnvInt("REDIS_DB"); ok {
		c.Cache.Redis.DB = v
	}
	if v, ok := getEnvStr("REDIS_PASSWORD"); ok {
		c.Cache.Redis.Password = v
	}
	if v, ok := getEnvStr("REDIS_PREFIX"); ok {
		c.Cache.Redis.Prefix = v
	}

	// METRICS
	if v, ok := getEnvBool("METRICS_ENABLED"); ok {
		c.Metrics.Enabled = v
	}

	// SEED
	if v, ok := getEnvStr("SEED_PATH"); ok {
		c.Seed.Path = strings.TrimSpace(v)
	}
}
