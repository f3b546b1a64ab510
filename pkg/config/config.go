package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type ServerConfig struct {
	Port        string   `yaml:"port"`
	StaticDir   string   `yaml:"static_dir"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type PaymentAPIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type SessionConfig struct {
	Store        string        `yaml:"store"`
	Secret       string        `yaml:"secret"`
	TTL          time.Duration `yaml:"ttl"`
	CookieName   string        `yaml:"cookie_name"`
	CookieSecure bool          `yaml:"cookie_secure"`
	StorageKey   string        `yaml:"storage_key"`
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type DashboardConfig struct {
	PerPage         int `yaml:"per_page"`
	ChartSampleSize int `yaml:"chart_sample_size"`
	SelectPageSize  int `yaml:"select_page_size"`
	ExportPageSize  int `yaml:"export_page_size"`
	ExportMaxPages  int `yaml:"export_max_pages"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

type TracingConfig struct {
	Endpoint string `yaml:"endpoint"`
	Insecure bool   `yaml:"insecure"`
}

type Config struct {
	Server     ServerConfig     `yaml:"server"`
	PaymentAPI PaymentAPIConfig `yaml:"payment_api"`
	Session    SessionConfig    `yaml:"session"`
	Redis      RedisConfig      `yaml:"redis"`
	Dashboard  DashboardConfig  `yaml:"dashboard"`
	Log        LogConfig        `yaml:"log"`
	Tracing    TracingConfig    `yaml:"tracing"`
}

// New builds the configuration: defaults, then the YAML file named by
// CONFIG_FILE, then environment variables.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found or could not be loaded.")
	}

	cfg := Defaults()

	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := cfg.loadYAML(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        "8080",
			CORSOrigins: []string{"http://localhost:3000"},
		},
		PaymentAPI: PaymentAPIConfig{
			BaseURL: "http://127.0.0.1:8001",
			Timeout: 20 * time.Second,
		},
		Session: SessionConfig{
			Store:      "redis",
			TTL:        time.Hour * 12,
			CookieName: "dashboard_session",
			StorageKey: "dashboard_auth_token",
		},
		Redis: RedisConfig{
			Address: "localhost:6379",
		},
		Dashboard: DashboardConfig{
			PerPage:         10,
			ChartSampleSize: 50,
			SelectPageSize:  100,
			ExportPageSize:  100,
			ExportMaxPages:  50,
		},
		Log: LogConfig{
			Level: "info",
			File:  "./logs/app.log",
		},
	}
}

func (c *Config) loadYAML(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnv("SERVER_PORT", c.Server.Port)
	c.Server.StaticDir = getEnv("STATIC_DIR", c.Server.StaticDir)
	if origins, ok := os.LookupEnv("CORS_ALLOWED_ORIGINS"); ok {
		c.Server.CORSOrigins = parseCSV(origins)
	}

	c.PaymentAPI.BaseURL = strings.TrimRight(getEnv("PAYMENT_API_URL", c.PaymentAPI.BaseURL), "/")
	c.PaymentAPI.Timeout = getDuration("PAYMENT_API_TIMEOUT", c.PaymentAPI.Timeout)

	c.Session.Store = strings.ToLower(getEnv("SESSION_STORE", c.Session.Store))
	c.Session.Secret = getEnv("SESSION_SECRET", c.Session.Secret)
	c.Session.TTL = getDuration("SESSION_TTL", c.Session.TTL)
	c.Session.CookieSecure = getBool("SESSION_COOKIE_SECURE", c.Session.CookieSecure)

	c.Redis.Address = getEnv("REDIS_ADDRESS", c.Redis.Address)
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getInt("REDIS_DB", c.Redis.DB)

	c.Dashboard.PerPage = getInt("DASHBOARD_PER_PAGE", c.Dashboard.PerPage)
	c.Dashboard.ChartSampleSize = getInt("DASHBOARD_CHART_SAMPLE", c.Dashboard.ChartSampleSize)
	c.Dashboard.ExportMaxPages = getInt("EXPORT_MAX_PAGES", c.Dashboard.ExportMaxPages)

	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.File = getEnv("LOG_FILE", c.Log.File)

	c.Tracing.Endpoint = getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", c.Tracing.Endpoint)
	c.Tracing.Insecure = getBool("OTEL_EXPORTER_OTLP_INSECURE", c.Tracing.Insecure)
}

func (c *Config) Validate() error {
	if c.Session.Secret == "" {
		return fmt.Errorf("SESSION_SECRET is required")
	}
	if c.Session.Store != "redis" && c.Session.Store != "memory" {
		return fmt.Errorf("SESSION_STORE must be redis or memory, got %q", c.Session.Store)
	}
	if c.PaymentAPI.BaseURL == "" {
		return fmt.Errorf("PAYMENT_API_URL is required")
	}
	if c.Dashboard.PerPage <= 0 || c.Dashboard.PerPage > 100 {
		return fmt.Errorf("DASHBOARD_PER_PAGE must be between 1 and 100")
	}
	return nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c *Config) HTTPAddress() string {
	return ":" + c.Server.Port
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return n
		}
		log.Printf("Warning: %s=%q is not an integer, using %d", key, value, fallback)
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(strings.TrimSpace(value)); err == nil && d > 0 {
			return d
		}
		log.Printf("Warning: %s=%q is not a duration, using %s", key, value, fallback)
	}
	return fallback
}

func parseCSV(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
