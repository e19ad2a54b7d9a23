package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port               string
	DatabasePath       string
	LogLevel           string
	MaxUploadSizeBytes int64

	// SellerState is the default seller state applied when a request does not
	// carry one. It may be empty, in which case every request must provide it.
	SellerState string

	DownloadTokenSecret string
	DownloadTokenExpiry time.Duration

	// How long generated workbooks stay downloadable after conversion.
	WorkbookCacheExpiry  time.Duration
	WorkbookCacheCleanup time.Duration
}

var Cfg *AppConfig

func LoadConfig() {
	errEnv := godotenv.Load()
	if errEnv != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any):", errEnv)
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	tokenSecret := getEnv("DOWNLOAD_TOKEN_SECRET", "insecure-development-download-token-secret-32b!")
	if tokenSecret == "insecure-development-download-token-secret-32b!" {
		log.Println("WARNING: Using default insecure DOWNLOAD_TOKEN_SECRET. Set DOWNLOAD_TOKEN_SECRET environment variable for production.")
	}

	maxUploadSizeBytesStr := getEnv("MAX_UPLOAD_SIZE_BYTES", "67108864")
	maxUploadSizeBytes, err := strconv.ParseInt(maxUploadSizeBytesStr, 10, 64)
	if err != nil {
		log.Printf("WARNING: Invalid MAX_UPLOAD_SIZE_BYTES format '%s'. Using default 64MB. Error: %v", maxUploadSizeBytesStr, err)
		maxUploadSizeBytes = 64 * 1024 * 1024
	}

	Cfg = &AppConfig{
		Port:               getEnv("PORT", "8080"),
		DatabasePath:       getEnv("DATABASE_PATH", "./tallybridge.db"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		MaxUploadSizeBytes: maxUploadSizeBytes,

		SellerState: getEnv("SELLER_STATE", ""),

		DownloadTokenSecret: tokenSecret,
		DownloadTokenExpiry: getEnvAsDuration("DOWNLOAD_TOKEN_EXPIRY", 30*time.Minute),

		WorkbookCacheExpiry:  getEnvAsDuration("WORKBOOK_CACHE_EXPIRY", 30*time.Minute),
		WorkbookCacheCleanup: getEnvAsDuration("WORKBOOK_CACHE_CLEANUP", 1*time.Hour),
	}

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, DBPath=%s, MaxUpload=%dB",
		Cfg.Port, Cfg.LogLevel, Cfg.DatabasePath, Cfg.MaxUploadSizeBytes)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		log.Printf("Duration value for %s not set or empty, using default: %s", key, fallback.String())
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}
