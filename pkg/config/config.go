package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the simulator stages
// ⭐ SSOT: environment variables are read only here
type Config struct {
	Env string // development, staging, production

	// Logging
	LogLevel  string
	LogFormat string

	// Simulation
	Simulation SimulationConfig
}

// SimulationConfig holds the settings shared by the three pipeline stages
type SimulationConfig struct {
	StageDir string // directory holding RNG.txt, RNG2.txt, StockPrice.txt
	Workers  int    // fork-join pool size
	Seed     uint64 // 0 = wall clock
	Preview  int    // head/tail rows printed in stage summaries
}

// Load reads configuration from environment variables
// ⭐ SSOT: the only caller of os.Getenv()
func Load() (*Config, error) {
	loadEnvFile()

	workers, err := getEnvAsInt("GBM_WORKERS", runtime.NumCPU())
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	seed, err := getEnvAsUint64("GBM_SEED", 0)
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	preview, err := getEnvAsInt("GBM_PREVIEW", 5)
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),

		Simulation: SimulationConfig{
			StageDir: getEnv("GBM_STAGE_DIR", "."),
			Workers:  workers,
			Seed:     seed,
			Preview:  preview,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that configuration values are usable.
// Commands call it again after applying flag overrides.
func (c *Config) Validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.Simulation.Workers < 1 {
		return fmt.Errorf("GBM_WORKERS must be at least 1, got %d", c.Simulation.Workers)
	}

	if c.Simulation.Preview < 0 {
		return fmt.Errorf("GBM_PREVIEW must not be negative, got %d", c.Simulation.Preview)
	}

	if c.Simulation.StageDir == "" {
		return fmt.Errorf("GBM_STAGE_DIR must not be empty")
	}

	return nil
}

// Helper functions (private, only used within this file)

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{
		".env",
	}

	// Also try relative to executable
	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, valueStr)
	}

	return value, nil
}

func getEnvAsUint64(key string, defaultValue uint64) (uint64, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}

	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an unsigned integer, got %q", key, valueStr)
	}

	return value, nil
}
