// Package config provides configuration management for the matchcast service.
package config

import (
	"fmt"
	"time"
)

// Config represents the complete application configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Data     DataConfig     `mapstructure:"data" validate:"required"`
	Model    ModelConfig    `mapstructure:"model" validate:"required"`
	Training TrainingConfig `mapstructure:"training" validate:"required"`
	Cache    CacheConfig    `mapstructure:"cache" validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Metrics  MetricsConfig  `mapstructure:"metrics" validate:"required"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
	Secrets  SecretsConfig  `mapstructure:"secrets"`
}

// AppConfig represents application-level configuration.
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// ServerConfig represents the HTTP API configuration.
type ServerConfig struct {
	Host                string   `mapstructure:"host"`
	Port                int      `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadTimeoutSeconds  int      `mapstructure:"read_timeout_seconds" validate:"required,gt=0"`
	WriteTimeoutSeconds int      `mapstructure:"write_timeout_seconds" validate:"required,gt=0"`
	CORSOrigins         []string `mapstructure:"cors_origins"`
}

// DataConfig represents historical data loading configuration.
type DataConfig struct {
	Dir               string   `mapstructure:"dir"`
	BaseURL           string   `mapstructure:"base_url" validate:"omitempty,url"`
	Seasons           []string `mapstructure:"seasons"`
	DisableDownload   bool     `mapstructure:"disable_download"`
	TimeoutSeconds    int      `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	MaxRetries        int      `mapstructure:"max_retries" validate:"gte=0"`
	RateLimit         float64  `mapstructure:"rate_limit" validate:"required,gt=0"`
	CircuitBreakerMax int      `mapstructure:"circuit_breaker_max" validate:"required,gt=0"`
}

// ModelConfig selects and configures the probability backend.
type ModelConfig struct {
	Backend             string  `mapstructure:"backend" validate:"required,backend"`
	ArtifactPath        string  `mapstructure:"artifact_path"`
	ConfidenceThreshold float64 `mapstructure:"confidence_threshold" validate:"gte=0,lte=100"`
}

// TrainingConfig represents offline training parameters.
type TrainingConfig struct {
	Epochs       int     `mapstructure:"epochs" validate:"required,gt=0"`
	LearningRate float64 `mapstructure:"learning_rate" validate:"required,gt=0"`
	TestFraction float64 `mapstructure:"test_fraction" validate:"required,gt=0,lt=1"`
	CVFolds      int     `mapstructure:"cv_folds" validate:"required,min=2"`
	Seed         int64   `mapstructure:"seed"`
}

// CacheConfig represents the prediction cache configuration.
type CacheConfig struct {
	Enabled                bool `mapstructure:"enabled"`
	TTLSeconds             int  `mapstructure:"ttl_seconds" validate:"required,gt=0"`
	CleanupIntervalSeconds int  `mapstructure:"cleanup_interval_seconds" validate:"required,gt=0"`
	MaxSize                int  `mapstructure:"max_size" validate:"gte=0"`
}

// DatabaseConfig represents optional PostgreSQL persistence.
type DatabaseConfig struct {
	Enabled            bool   `mapstructure:"enabled"`
	Host               string `mapstructure:"host"`
	Port               int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name               string `mapstructure:"name"`
	User               string `mapstructure:"user"`
	Password           string `mapstructure:"password"`
	SSLMode            string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections     int    `mapstructure:"max_connections" validate:"omitempty,gt=0"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections" validate:"omitempty,gte=0"`
}

// MetricsConfig represents Prometheus exposure configuration.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required"`
}

// ScheduleConfig represents the periodic stats refresh.
type ScheduleConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	RefreshCron string `mapstructure:"refresh_cron"`
}

// SecretsConfig represents the AWS Secrets Manager overlay.
type SecretsConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Region     string `mapstructure:"region"`
	SecretName string `mapstructure:"secret_name"`
}

// Backend selector values.
const (
	BackendHeuristic = "heuristic"
	BackendLearned   = "learned"
	BackendAuto      = "auto"
)

// IsDevelopment checks if the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// ListenAddr returns the host:port the HTTP server binds to.
func (c *ServerConfig) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ReadTimeout returns the server read timeout as a duration.
func (c *ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the server write timeout as a duration.
func (c *ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// CacheTTL returns the prediction cache TTL as a duration.
func (c *CacheConfig) CacheTTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// CleanupInterval returns the cache eviction sweep interval as a duration.
func (c *CacheConfig) CleanupInterval() time.Duration {
	return time.Duration(c.CleanupIntervalSeconds) * time.Second
}

// GetDatabaseDSN returns a PostgreSQL DSN string.
func (c *DatabaseConfig) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Name,
		c.SSLMode,
	)
}
