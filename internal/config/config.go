package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
// Không dùng global mutable state - inject vào container
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Upload   UploadConfig
	MinIO    MinIOConfig
	Email    EmailConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	FrontendURL string // CORS origin
	BackendURL  string // public origin, dùng để build image URLs
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// UploadConfig - image upload & processing pipeline
// Hai dimension profiles: project imagery và client avatars
type UploadConfig struct {
	Driver           string   // "local" hoặc "minio"
	Dir              string   // root folder cho local driver (vd: ./uploads)
	MaxFileSize      int64    // bytes, mặc định 5MB
	AllowedMimeTypes []string // image/jpeg, image/jpg, image/png, image/webp
	Quality          int      // WebP quality 0-100
	ProjectWidth     int
	ProjectHeight    int
	ClientWidth      int
	ClientHeight     int
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool // false for local
}

type EmailConfig struct {
	SMTPHost   string
	SMTPPort   string
	From       string
	OwnerEmail string // nhận contact notifications và daily summary
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Portfolio API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "5000"),
			FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
			BackendURL:  getEnv("BACKEND_URL", "http://localhost:5000"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "portfolio"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Upload: UploadConfig{
			Driver:      getEnv("UPLOAD_DRIVER", "local"),
			Dir:         getEnv("UPLOAD_DIR", "./uploads"),
			MaxFileSize: int64(getEnvInt("UPLOAD_MAX_FILE_SIZE", 5242880)), // 5MB
			AllowedMimeTypes: strings.Split(
				getEnv("UPLOAD_ALLOWED_TYPES", "image/jpeg,image/jpg,image/png,image/webp"),
				",",
			),
			Quality:       getEnvInt("IMAGE_QUALITY", 80),
			ProjectWidth:  getEnvInt("PROJECT_IMAGE_WIDTH", 450),
			ProjectHeight: getEnvInt("PROJECT_IMAGE_HEIGHT", 350),
			ClientWidth:   getEnvInt("CLIENT_IMAGE_WIDTH", 150),
			ClientHeight:  getEnvInt("CLIENT_IMAGE_HEIGHT", 150),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "portfolio"),
			UseSSL:    false,
		},
		Email: EmailConfig{
			SMTPHost:   getEnv("SMTP_HOST", "localhost"),
			SMTPPort:   getEnv("SMTP_PORT", "1025"),
			From:       getEnv("EMAIL_FROM", "noreply@portfolio.dev"),
			OwnerEmail: getEnv("OWNER_EMAIL", "owner@portfolio.dev"),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if c.App.BackendURL == "http://localhost:5000" {
			return fmt.Errorf("BACKEND_URL must be set in production (image URLs are built from it)")
		}
	}

	if c.Upload.Driver != "local" && c.Upload.Driver != "minio" {
		return fmt.Errorf("UPLOAD_DRIVER must be 'local' or 'minio', got %q", c.Upload.Driver)
	}

	if c.Upload.Quality < 1 || c.Upload.Quality > 100 {
		return fmt.Errorf("IMAGE_QUALITY must be 1-100, got %d", c.Upload.Quality)
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
