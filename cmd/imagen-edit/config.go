package main

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the ambient settings the CLI takes from the environment
// rather than flags: logging, request timeout, and the optional object
// storage mirror. A .env file in the working directory is loaded first;
// real environment variables win over it.
type Config struct {
	LogLevel       string
	RequestTimeout time.Duration

	// S3 mirror settings. Mirroring is enabled when S3Bucket is set.
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3Prefix    string
}

// LoadConfig reads the environment (and .env, if present) into a Config.
func LoadConfig() *Config {
	// Missing .env is fine; the environment alone is enough.
	_ = godotenv.Load()

	return &Config{
		LogLevel:       getEnv("IMAGEN_EDIT_LOG_LEVEL", "info"),
		RequestTimeout: time.Duration(getEnvInt("IMAGEN_EDIT_TIMEOUT_SECONDS", 120)) * time.Second,

		S3Bucket:    getEnv("IMAGEN_EDIT_S3_BUCKET", ""),
		S3Region:    getEnv("IMAGEN_EDIT_S3_REGION", "us-east-1"),
		S3Endpoint:  getEnv("IMAGEN_EDIT_S3_ENDPOINT", ""),
		S3AccessKey: getEnv("IMAGEN_EDIT_S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("IMAGEN_EDIT_S3_SECRET_KEY", ""),
		S3Prefix:    getEnv("IMAGEN_EDIT_S3_PREFIX", "imagen-edits/"),
	}
}

// getEnv returns the environment variable's value, or the default when unset.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable, or the default when
// unset or unparsable.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if i, err := strconv.Atoi(value); err == nil {
		return i
	}
	return defaultValue
}
