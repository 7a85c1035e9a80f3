package config

import (
	"runtime"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("GBM_WORKERS", "")
	t.Setenv("GBM_STAGE_DIR", "")
	t.Setenv("GBM_SEED", "")
	t.Setenv("GBM_PREVIEW", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Check defaults
	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}

	if cfg.Simulation.Workers != runtime.NumCPU() {
		t.Errorf("Expected Workers to be %d, got %d", runtime.NumCPU(), cfg.Simulation.Workers)
	}

	if cfg.Simulation.StageDir != "." {
		t.Errorf("Expected StageDir to be ., got %s", cfg.Simulation.StageDir)
	}

	if cfg.Simulation.Seed != 0 {
		t.Errorf("Expected Seed to be 0, got %d", cfg.Simulation.Seed)
	}

	if cfg.Simulation.Preview != 5 {
		t.Errorf("Expected Preview to be 5, got %d", cfg.Simulation.Preview)
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("GBM_WORKERS", "3")
	t.Setenv("GBM_STAGE_DIR", "/tmp/stages")
	t.Setenv("GBM_SEED", "42")
	t.Setenv("GBM_PREVIEW", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}

	if cfg.LogLevel != "warn" {
		t.Errorf("Expected LogLevel to be warn, got %s", cfg.LogLevel)
	}

	if cfg.Simulation.Workers != 3 {
		t.Errorf("Expected Workers to be 3, got %d", cfg.Simulation.Workers)
	}

	if cfg.Simulation.StageDir != "/tmp/stages" {
		t.Errorf("Expected StageDir to be /tmp/stages, got %s", cfg.Simulation.StageDir)
	}

	if cfg.Simulation.Seed != 42 {
		t.Errorf("Expected Seed to be 42, got %d", cfg.Simulation.Seed)
	}

	if cfg.Simulation.Preview != 10 {
		t.Errorf("Expected Preview to be 10, got %d", cfg.Simulation.Preview)
	}
}

func TestValidateInvalidEnv(t *testing.T) {
	t.Setenv("ENV", "invalid")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when ENV is invalid, got nil")
	}
}

func TestValidateWorkers(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("GBM_WORKERS", "0")

	_, err := Load()
	if err == nil {
		t.Error("Expected error when GBM_WORKERS is 0, got nil")
	}
}

func TestValidateNegativePreview(t *testing.T) {
	cfg := &Config{
		Env:        "development",
		Simulation: SimulationConfig{StageDir: ".", Workers: 1, Preview: -1},
	}

	if err := cfg.Validate(); err == nil {
		t.Error("Expected error when Preview is negative, got nil")
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT", "100")

	value, err := getEnvAsInt("TEST_INT", 50)
	if err != nil || value != 100 {
		t.Errorf("Expected 100, got %d (%v)", value, err)
	}

	t.Setenv("TEST_INT", "")
	if value, err := getEnvAsInt("TEST_INT", 50); err != nil || value != 50 {
		t.Errorf("Expected default 50 for unset key, got %d (%v)", value, err)
	}

	t.Setenv("TEST_INT", "not-a-number")
	if _, err := getEnvAsInt("TEST_INT", 50); err == nil {
		t.Error("Expected error for non-numeric value, got nil")
	}
}

func TestGetEnvAsUint64(t *testing.T) {
	t.Setenv("TEST_UINT", "18446744073709551615")

	value, err := getEnvAsUint64("TEST_UINT", 1)
	if err != nil || value != 18446744073709551615 {
		t.Errorf("Expected max uint64, got %d (%v)", value, err)
	}

	t.Setenv("TEST_UINT", "-1")
	if _, err := getEnvAsUint64("TEST_UINT", 7); err == nil {
		t.Error("Expected error for negative value, got nil")
	}
}

func TestLoadRejectsMalformedNumbers(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"GBM_SEED", "abc"},
		{"GBM_SEED", "-5"},
		{"GBM_WORKERS", "four"},
		{"GBM_PREVIEW", "1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv("ENV", "")
			t.Setenv("GBM_SEED", "")
			t.Setenv("GBM_WORKERS", "")
			t.Setenv("GBM_PREVIEW", "")
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			if err == nil {
				t.Fatalf("Expected error for %s=%q, got config %+v", tt.key, tt.value, cfg)
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("Expected error to name %s, got %v", tt.key, err)
			}
		})
	}
}
