package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	AppName    string `envconfig:"APP_NAME" default:"tasktracker"`
	AppVersion string `envconfig:"APP_VERSION" default:"dev"`
	Host       string `envconfig:"HOST" default:""`
	Port       string `envconfig:"PORT" default:"8000"`

	StorageType string `envconfig:"STORAGE_TYPE" default:"local"`
	DataDir     string `envconfig:"DATA_DIR" default:"."`
	DataFile    string `envconfig:"DATA_FILE" default:"db.json"`
	S3Bucket    string `envconfig:"S3_BUCKET"`
	S3Prefix    string `envconfig:"S3_PREFIX" default:"tasks/"`
	S3Region    string `envconfig:"S3_REGION" default:"us-east-1"`

	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	TrustedProxies     string `envconfig:"TRUSTED_PROXIES"`

	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"15s"`
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &conf, nil
}

func (c *Config) Addr() string {
	port := c.Port
	if port == "" {
		port = "8000"
	}
	return c.Host + ":" + port
}

func (c *Config) AllowedOrigins() []string {
	origins := splitList(c.CORSAllowedOrigins)
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func (c *Config) TrustedProxyList() []string {
	return splitList(c.TrustedProxies)
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
