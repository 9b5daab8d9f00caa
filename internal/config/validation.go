package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
)

// CustomValidator wraps the validator with custom validation rules.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a validator with the custom rule set registered.
func NewValidator() *CustomValidator {
	v := validator.New()

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("environment", validateEnvironment)
	_ = v.RegisterValidation("loglevel", validateLogLevel)
	_ = v.RegisterValidation("backend", validateBackend)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration.
func Validate(cfg *Config) error {
	return NewValidator().Validate(cfg)
}

// Validate runs struct tag rules followed by cross-field checks.
func (cv *CustomValidator) Validate(cfg *Config) error {
	if err := cv.validator.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}
	return validateCrossField(cfg)
}

func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

func validateBackend(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case BackendHeuristic, BackendLearned, BackendAuto:
		return true
	default:
		return false
	}
}

func validateCrossField(cfg *Config) error {
	if cfg.Model.Backend == BackendLearned && cfg.Model.ArtifactPath == "" {
		return fmt.Errorf("model backend %q requires artifact_path", BackendLearned)
	}

	if cfg.Database.Enabled {
		if cfg.Database.Host == "" || cfg.Database.Name == "" || cfg.Database.User == "" {
			return fmt.Errorf("database is enabled but host, name or user is missing")
		}
		if cfg.Database.MaxIdleConnections > cfg.Database.MaxConnections {
			return fmt.Errorf("max_idle_connections cannot exceed max_connections")
		}
		if cfg.IsProduction() && cfg.Database.SSLMode == "disable" {
			return fmt.Errorf("production environment requires SSL mode 'require' or 'verify-full'")
		}
	}

	if cfg.Schedule.Enabled {
		parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
		if _, err := parser.Parse(cfg.Schedule.RefreshCron); err != nil {
			return fmt.Errorf("invalid refresh_cron %q: %w", cfg.Schedule.RefreshCron, err)
		}
	}

	if cfg.Secrets.Enabled && (cfg.Secrets.Region == "" || cfg.Secrets.SecretName == "") {
		return fmt.Errorf("secrets overlay is enabled but region or secret_name is missing")
	}

	return nil
}

// formatValidationErrors formats validation errors into a readable string.
func formatValidationErrors(validationErrors validator.ValidationErrors) error {
	var errMsg string
	for _, fieldError := range validationErrors {
		field := fieldError.StructField()
		tag := fieldError.Tag()
		value := fieldError.Value()

		switch tag {
		case "required":
			errMsg += fmt.Sprintf("- Field '%s' is required\n", field)
		case "url":
			errMsg += fmt.Sprintf("- Field '%s' must be a valid URL, got '%v'\n", field, value)
		case "min", "max", "gt", "gte", "lt", "lte":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: %s constraint violated\n", field, tag)
		case "environment":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: development, staging, production\n", field)
		case "loglevel":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: debug, info, warn, error\n", field)
		case "backend":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: %s, %s, %s\n", field, BackendHeuristic, BackendLearned, BackendAuto)
		case "oneof":
			errMsg += fmt.Sprintf("- Field '%s' has invalid value '%v'\n", field, value)
		default:
			errMsg += fmt.Sprintf("- Field '%s' failed validation: %s\n", field, tag)
		}
	}
	return fmt.Errorf("configuration validation failed:\n%s", errMsg)
}
