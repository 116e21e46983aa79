package main

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q, want info", cfg.LogLevel)
	}
	if cfg.RequestTimeout != 120*time.Second {
		t.Errorf("timeout = %v, want 2m", cfg.RequestTimeout)
	}
	if cfg.S3Bucket != "" {
		t.Errorf("s3 bucket should default to empty, got %q", cfg.S3Bucket)
	}
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("IMAGEN_EDIT_LOG_LEVEL", "debug")
	t.Setenv("IMAGEN_EDIT_TIMEOUT_SECONDS", "30")
	t.Setenv("IMAGEN_EDIT_S3_BUCKET", "my-bucket")
	t.Setenv("IMAGEN_EDIT_S3_REGION", "eu-west-1")

	cfg := LoadConfig()

	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q, want debug", cfg.LogLevel)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", cfg.RequestTimeout)
	}
	if cfg.S3Bucket != "my-bucket" || cfg.S3Region != "eu-west-1" {
		t.Errorf("s3 config = %q/%q", cfg.S3Bucket, cfg.S3Region)
	}
}

func TestLoadConfig_BadTimeoutFallsBack(t *testing.T) {
	t.Setenv("IMAGEN_EDIT_TIMEOUT_SECONDS", "not-a-number")

	cfg := LoadConfig()
	if cfg.RequestTimeout != 120*time.Second {
		t.Errorf("timeout = %v, want default 2m", cfg.RequestTimeout)
	}
}
