package common

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration. Values are loaded from the
// environment and optionally overridden by a JSON config file; components
// receive the sections they need through their constructors, never through
// package-level state.
type Config struct {
	Database DatabaseConfig
	OCR      OCRConfig
	Raster   RasterConfig
	Vision   VisionConfig
	Fetch    FetchConfig
}

// DatabaseConfig holds structured-store configuration.
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// OCRConfig holds text-extractor configuration.
type OCRConfig struct {
	Tesseract   string // binary name or absolute path; empty -> "tesseract"
	Languages   string // tesseract language spec, default "ara+eng"
	TessdataDir string
}

// RasterConfig holds page-rasterizer configuration.
type RasterConfig struct {
	Pdftoppm    string // binary name or absolute path; empty -> "pdftoppm"
	ScanDPI     int    // low-DPI render for classification, default 150
	ExtractDPI  int    // high-DPI render for extracted ad pages, default 300
	ScanPageCap int    // leading pages classified per issue, default 30
}

// VisionConfig holds vision-classifier configuration.
type VisionConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float32
	Timeout     time.Duration
}

// FetchConfig holds bulk-downloader configuration.
type FetchConfig struct {
	Concurrency int
	Timeout     time.Duration
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 10),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 2),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		OCR: OCRConfig{
			Tesseract:   getEnv("TESSERACT_PATH", "tesseract"),
			Languages:   getEnv("TESSERACT_LANG", "ara+eng"),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
		},
		Raster: RasterConfig{
			Pdftoppm:    getEnv("PDFTOPPM_PATH", "pdftoppm"),
			ScanDPI:     getEnvAsInt("SCAN_DPI", 150),
			ExtractDPI:  getEnvAsInt("EXTRACT_DPI", 300),
			ScanPageCap: getEnvAsInt("SCAN_PAGE_CAP", 30),
		},
		Vision: VisionConfig{
			APIKey:      getEnv("VISION_API_KEY", ""),
			BaseURL:     getEnv("VISION_BASE_URL", "https://api.openai.com/v1"),
			Model:       getEnv("VISION_MODEL", "gpt-4o-mini"),
			Temperature: getEnvAsFloat32("VISION_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("VISION_TIMEOUT", 30*time.Second),
		},
		Fetch: FetchConfig{
			Concurrency: getEnvAsInt("FETCH_CONCURRENCY", 3),
			Timeout:     getEnvAsDuration("FETCH_TIMEOUT", 30*time.Second),
		},
	}
}

// Validate rejects settings no run can work with.
func (c *Config) Validate() error {
	if c.Raster.ScanDPI <= 0 || c.Raster.ExtractDPI <= 0 {
		return fmt.Errorf("render DPI must be positive: %w", ErrInvalidInput)
	}
	if c.Raster.ScanDPI > c.Raster.ExtractDPI {
		return fmt.Errorf("scan DPI above extract DPI: %w", ErrInvalidInput)
	}
	if c.Raster.ScanPageCap <= 0 {
		return fmt.Errorf("scan page cap must be positive: %w", ErrInvalidInput)
	}
	if c.Fetch.Concurrency <= 0 {
		return fmt.Errorf("fetch concurrency must be positive: %w", ErrInvalidInput)
	}
	return nil
}

// FileConfig is the on-disk JSON config shape. All keys are optional; present
// keys override the environment-derived values.
type FileConfig struct {
	APIKey        string `json:"api_key"`
	PdftoppmPath  string `json:"pdftoppm_path"`
	TesseractPath string `json:"tesseract_path"`
}

// ApplyFile reads path and overlays its values onto c. A missing file returns
// ErrNotFound so callers can fall back to interactive prompting.
func (c *Config) ApplyFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("config file %s: %w", path, ErrNotFound)
		}
		return fmt.Errorf("read config file: %w", err)
	}
	var fc FileConfig
	if err := json.Unmarshal(b, &fc); err != nil {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}
	if fc.APIKey != "" {
		c.Vision.APIKey = fc.APIKey
	}
	if fc.PdftoppmPath != "" {
		c.Raster.Pdftoppm = fc.PdftoppmPath
	}
	if fc.TesseractPath != "" {
		c.OCR.Tesseract = fc.TesseractPath
	}
	return nil
}

// WriteFile persists the overridable values to a JSON config file.
func (c *Config) WriteFile(path string) error {
	fc := FileConfig{
		APIKey:        c.Vision.APIKey,
		PdftoppmPath:  c.Raster.Pdftoppm,
		TesseractPath: c.OCR.Tesseract,
	}
	b, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, b, 0o644)
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
