package common

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestApplyFileOverlays(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"api_key": "sk-test", "pdftoppm_path": "/opt/poppler/pdftoppm"}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := LoadConfig()
	cfg.OCR.Tesseract = "tesseract"
	if err := cfg.ApplyFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Vision.APIKey != "sk-test" {
		t.Errorf("api key: got %q", cfg.Vision.APIKey)
	}
	if cfg.Raster.Pdftoppm != "/opt/poppler/pdftoppm" {
		t.Errorf("pdftoppm: got %q", cfg.Raster.Pdftoppm)
	}
	// Absent keys leave the existing value alone.
	if cfg.OCR.Tesseract != "tesseract" {
		t.Errorf("tesseract: got %q", cfg.OCR.Tesseract)
	}
}

func TestApplyFileMissing(t *testing.T) {
	t.Parallel()

	cfg := LoadConfig()
	err := cfg.ApplyFile(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.json")
	cfg := LoadConfig()
	cfg.Vision.APIKey = "sk-roundtrip"
	if err := cfg.WriteFile(path); err != nil {
		t.Fatalf("write: %v", err)
	}

	other := LoadConfig()
	other.Vision.APIKey = ""
	if err := other.ApplyFile(path); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if other.Vision.APIKey != "sk-roundtrip" {
		t.Errorf("api key: got %q", other.Vision.APIKey)
	}
}

func TestLoadConfigScanPageCap(t *testing.T) {
	t.Setenv("SCAN_PAGE_CAP", "")
	cfg := LoadConfig()
	if cfg.Raster.ScanPageCap != 30 {
		t.Errorf("default scan page cap: got %d, want 30", cfg.Raster.ScanPageCap)
	}

	t.Setenv("SCAN_PAGE_CAP", "12")
	cfg = LoadConfig()
	if cfg.Raster.ScanPageCap != 12 {
		t.Errorf("scan page cap from env: got %d, want 12", cfg.Raster.ScanPageCap)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := LoadConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}

	cfg.Raster.ScanDPI = 0
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("zero DPI: got %v", err)
	}

	cfg = LoadConfig()
	cfg.Raster.ScanDPI = 600
	cfg.Raster.ExtractDPI = 150
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("inverted DPI: got %v", err)
	}
}
