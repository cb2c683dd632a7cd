package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	SMTP       SMTPConfig
	Storage    StorageConfig
	Extraction ExtractionConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string

	// Domain used when deriving login emails for auto-provisioned employees
	EmployeeEmailDomain string

	// Default password assigned to auto-provisioned employee accounts
	DefaultEmployeePassword string

	// Flag file checked by the maintenance middleware
	MaintenanceFlagFile string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

type StorageConfig struct {
	Type     string
	BasePath string
	BaseURL  string
}

// ExtractionConfig tunes the timesheet extraction engine.
type ExtractionConfig struct {
	// Employees whose timesheets are structurally blank: punch fields are
	// left empty for them regardless of status.
	BlankEmployees []string

	// Sheet-name tag marking temporary staff, ineligible for PL/SL accrual.
	ExceptionTag string

	// When true, half-day codes (HF/PHF/SHF) suppress punch display the
	// same way leave codes do. The default shows punches with missing
	// markers, matching how the timesheets are actually maintained.
	SuppressHalfDayPunches bool
}

func Load() (*Config, error) {
	// A missing .env file is fine in production; env vars may come from the host.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance_portal"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:                    appPort,
		Env:                     getEnv("APP_ENV", "development"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		FrontendURL:             getEnv("FRONTEND_URL", "http://localhost:3000"),
		EmployeeEmailDomain:     getEnv("EMPLOYEE_EMAIL_DOMAIN", "balarbuilders.com"),
		DefaultEmployeePassword: getEnv("DEFAULT_EMPLOYEE_PASSWORD", ""),
		MaintenanceFlagFile:     getEnv("MAINTENANCE_FLAG_FILE", "maintenance_mode.flag"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	// SMTP configuration
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", ""),
		FromName: getEnv("SMTP_FROM_NAME", "Balar Builders IT Team"),
	}

	// Storage configuration
	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
	}

	// Extraction configuration
	config.Extraction = ExtractionConfig{
		BlankEmployees:         getEnvSlice("EXTRACTION_BLANK_EMPLOYEES"),
		ExceptionTag:           getEnv("EXTRACTION_EXCEPTION_TAG", "(T)"),
		SuppressHalfDayPunches: getEnv("EXTRACTION_SUPPRESS_HALF_DAY_PUNCHES", "false") == "true",
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.App.DefaultEmployeePassword == "" {
		return fmt.Errorf("DEFAULT_EMPLOYEE_PASSWORD is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
