package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validYAML = `
app:
  name: matchcast
  environment: development
  log_level: debug
server:
  host: 127.0.0.1
  port: 9090
  read_timeout_seconds: 5
  write_timeout_seconds: 5
  cors_origins: ["http://localhost:3000"]
data:
  dir: testdata
  timeout_seconds: 15
  max_retries: 2
  rate_limit: 5.0
  circuit_breaker_max: 3
model:
  backend: heuristic
  artifact_path: model.json
training:
  epochs: 100
  learning_rate: 0.1
  test_fraction: 0.25
  cv_folds: 4
  seed: 7
cache:
  enabled: true
  ttl_seconds: 60
  cleanup_interval_seconds: 120
metrics:
  enabled: true
  path: /metrics
schedule:
  enabled: true
  refresh_cron: "30 3 * * *"
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "matchcast", cfg.App.Name)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.ListenAddr())
	assert.Equal(t, "heuristic", cfg.Model.Backend)
	assert.Equal(t, 4, cfg.Training.CVFolds)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	require.NoError(t, Validate(cfg))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadExpandsEnvPlaceholders(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "s3cret")

	yaml := validYAML + `
database:
  enabled: true
  host: localhost
  port: 5432
  name: matchcast
  user: matchcast
  password: ${TEST_DB_PASSWORD}
  ssl_mode: disable
  max_connections: 10
  max_idle_connections: 5
`
	cfg, err := Load(writeConfig(t, yaml))
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Database.Password)
	assert.Contains(t, cfg.Database.GetDatabaseDSN(), "s3cret")
}

func TestLoadWithDefaultsNoFile(t *testing.T) {
	cfg, err := LoadWithDefaults(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "matchcast", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, BackendAuto, cfg.Model.Backend)
	assert.Equal(t, 400, cfg.Training.Epochs)
	assert.True(t, cfg.Cache.Enabled)

	require.NoError(t, Validate(cfg))
}

func TestValidateRejections(t *testing.T) {
	mutations := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad environment", func(c *Config) { c.App.Environment = "qa" }},
		{"bad log level", func(c *Config) { c.App.LogLevel = "trace" }},
		{"bad backend", func(c *Config) { c.Model.Backend = "xgboost" }},
		{"zero port", func(c *Config) { c.Server.Port = 0 }},
		{"test fraction out of range", func(c *Config) { c.Training.TestFraction = 1.5 }},
		{"learned without artifact", func(c *Config) {
			c.Model.Backend = BackendLearned
			c.Model.ArtifactPath = ""
		}},
		{"db enabled without host", func(c *Config) {
			c.Database.Enabled = true
			c.Database.Name = "matchcast"
			c.Database.User = "matchcast"
		}},
		{"idle exceeds max connections", func(c *Config) {
			c.Database.Enabled = true
			c.Database.Host = "localhost"
			c.Database.Name = "matchcast"
			c.Database.User = "matchcast"
			c.Database.MaxConnections = 5
			c.Database.MaxIdleConnections = 10
		}},
		{"bad cron", func(c *Config) {
			c.Schedule.Enabled = true
			c.Schedule.RefreshCron = "not a cron"
		}},
		{"secrets without region", func(c *Config) {
			c.Secrets.Enabled = true
			c.Secrets.SecretName = "matchcast/prod"
		}},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, validYAML))
			require.NoError(t, err)

			tt.mutate(cfg)
			assert.Error(t, Validate(cfg))
		})
	}
}

func TestProductionRequiresSSL(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	cfg.App.Environment = "production"
	cfg.Database = DatabaseConfig{
		Enabled: true, Host: "db", Port: 5432, Name: "matchcast", User: "matchcast",
		SSLMode: "disable", MaxConnections: 10, MaxIdleConnections: 2,
	}
	assert.Error(t, Validate(cfg))

	cfg.Database.SSLMode = "require"
	assert.NoError(t, Validate(cfg))
}
