package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds PostgreSQL database connection settings.
// The report index is optional: an empty Host disables it.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// Enabled reports whether a database host was configured.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level      string
	Format     string
	TimeFormat string
}

// AnalysisConfig holds the résumé analysis defaults shared by the API and the CLI.
type AnalysisConfig struct {
	DefaultRole    string
	SamplesDir     string
	MaxUploadBytes int
}

// Report backends accepted by ReportsConfig.Backend.
const (
	ReportsBackendFS    = "fs"
	ReportsBackendMinIO = "minio"
	ReportsBackendNone  = "none"
)

// ReportsConfig selects where analysis artifacts are written.
type ReportsConfig struct {
	Backend string
	Dir     string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	Version  string
	Timezone string
	Log      LogConfig
	Analysis AnalysisConfig
	Reports  ReportsConfig
	Database DatabaseConfig
	MinIO    MinIOConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "localhost:3000"),
		Port:     getEnv("PORT", "3000"),
		Version:  getEnv("APP_VERSION", "1.0.0"),
		Timezone: getEnv("APP_TIMEZONE", "UTC"),
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "json"),
			TimeFormat: getEnv("LOG_TIME_FORMAT", ""),
		},
		Analysis: AnalysisConfig{
			DefaultRole:    getEnv("ANALYSIS_DEFAULT_ROLE", "FULLSTACK_DEVELOPER"),
			SamplesDir:     getEnv("ANALYSIS_SAMPLES_DIR", "samples"),
			MaxUploadBytes: getEnvInt("ANALYSIS_MAX_UPLOAD_BYTES", 10*1024*1024),
		},
		Reports: ReportsConfig{
			Backend: getEnv("REPORTS_BACKEND", ReportsBackendFS),
			Dir:     getEnv("REPORTS_DIR", "results"),
		},
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "analysis-reports"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
