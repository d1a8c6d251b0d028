package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Belga      BelgaConfig      `yaml:"belga"`
	Prezly     PrezlyConfig     `yaml:"prezly"`
	Uploadcare UploadcareConfig `yaml:"uploadcare"`
	Database   DatabaseConfig   `yaml:"database"`
	RabbitMQ   RabbitMQConfig   `yaml:"rabbitmq"`
	Sync       SyncConfig       `yaml:"sync"`
	LogLevel   string           `yaml:"log_level"`
}

type BelgaConfig struct {
	OIDCWellKnownURI string        `yaml:"oidc_well_known_uri"`
	ClientID         string        `yaml:"client_id"`
	ClientSecret     string        `yaml:"client_secret"`
	BaseURI          string        `yaml:"base_uri"`
	Timeout          time.Duration `yaml:"timeout"`
}

type PrezlyConfig struct {
	BaseURI     string        `yaml:"base_uri"`
	AccessToken string        `yaml:"access_token"`
	Timeout     time.Duration `yaml:"timeout"`
}

type UploadcareConfig struct {
	BaseURI   string        `yaml:"base_uri"`
	PublicKey string        `yaml:"public_key"`
	Timeout   time.Duration `yaml:"timeout"`
}

// DatabaseConfig configures the optional sync journal. An empty host
// disables journaling entirely.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// RabbitMQConfig configures the optional sync event publisher. An empty
// URL disables publishing.
type RabbitMQConfig struct {
	URL        string `yaml:"url"`
	Exchange   string `yaml:"exchange"`
	RoutingKey string `yaml:"routing_key"`
	QueueName  string `yaml:"queue_name"`
}

func (r RabbitMQConfig) Enabled() bool {
	return r.URL != ""
}

// SyncConfig carries the page size and per-operation retry budgets.
type SyncConfig struct {
	PageSize      int `yaml:"page_size"`
	PageRetries   int `yaml:"page_retries"`
	DetailRetries int `yaml:"detail_retries"`
	LookupRetries int `yaml:"lookup_retries"`
	CreateRetries int `yaml:"create_retries"`
	UploadRetries int `yaml:"upload_retries"`
}

func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()

	if cfg.Belga.OIDCWellKnownURI == "" {
		return nil, fmt.Errorf("belga.oidc_well_known_uri is required")
	}
	if cfg.Belga.BaseURI == "" {
		return nil, fmt.Errorf("belga.base_uri is required")
	}
	if cfg.Prezly.AccessToken == "" {
		return nil, fmt.Errorf("prezly.access_token is required")
	}

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Belga.Timeout == 0 {
		c.Belga.Timeout = 30 * time.Second
	}
	if c.Prezly.BaseURI == "" {
		c.Prezly.BaseURI = "https://api.prezly.com"
	}
	if c.Prezly.Timeout == 0 {
		c.Prezly.Timeout = 30 * time.Second
	}
	if c.Uploadcare.BaseURI == "" {
		c.Uploadcare.BaseURI = "https://upload.uploadcare.com"
	}
	if c.Uploadcare.Timeout == 0 {
		c.Uploadcare.Timeout = 60 * time.Second
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.RabbitMQ.Exchange == "" {
		c.RabbitMQ.Exchange = "coverage_migrator"
	}
	if c.RabbitMQ.RoutingKey == "" {
		c.RabbitMQ.RoutingKey = "coverage_events"
	}
	if c.RabbitMQ.QueueName == "" {
		c.RabbitMQ.QueueName = "coverage_events"
	}
	if c.Sync.PageSize == 0 {
		c.Sync.PageSize = 50
	}
	if c.Sync.PageRetries == 0 {
		c.Sync.PageRetries = 10
	}
	if c.Sync.DetailRetries == 0 {
		c.Sync.DetailRetries = 10
	}
	if c.Sync.LookupRetries == 0 {
		c.Sync.LookupRetries = 5
	}
	if c.Sync.CreateRetries == 0 {
		c.Sync.CreateRetries = 5
	}
	if c.Sync.UploadRetries == 0 {
		c.Sync.UploadRetries = 3
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
