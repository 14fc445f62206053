package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type ConsumptionRules struct {
	InkColorPagesPerUnit int
	InkBlackPagesPerUnit int
	BindingUnitsPerJob   int
}

type Config struct {
	DatabaseURL     string
	HTTPAddr        string
	PollInterval    time.Duration
	AlertInterval   time.Duration
	BatchSize       int
	TriggerStatuses []string
	ShopID          string
	LogLevel        string
	Consumption     ConsumptionRules
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		HTTPAddr:        getEnv("AGENT_HTTP_ADDR", ":8090"),
		PollInterval:    getEnvDuration("POLL_INTERVAL", 5*time.Second),
		AlertInterval:   getEnvDuration("ALERT_INTERVAL", time.Minute),
		BatchSize:       getEnvInt("BATCH_SIZE", 20),
		TriggerStatuses: getEnvList("TRIGGER_STATUSES", []string{"confirmed", "printing"}),
		ShopID:          os.Getenv("SHOP_ID"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		Consumption: ConsumptionRules{
			InkColorPagesPerUnit: getEnvInt("INK_COLOR_PAGES_PER_UNIT", 500),
			InkBlackPagesPerUnit: getEnvInt("INK_BLACK_PAGES_PER_UNIT", 1000),
			BindingUnitsPerJob:   getEnvInt("BINDING_UNITS_PER_JOB", 1),
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.PollInterval <= 0 || cfg.AlertInterval <= 0 {
		return nil, fmt.Errorf("poll and alert intervals must be positive")
	}
	if cfg.BatchSize <= 0 {
		return nil, fmt.Errorf("BATCH_SIZE must be positive, got %d", cfg.BatchSize)
	}
	if len(cfg.TriggerStatuses) == 0 {
		return nil, fmt.Errorf("TRIGGER_STATUSES must name at least one status")
	}
	if cfg.Consumption.InkColorPagesPerUnit <= 0 || cfg.Consumption.InkBlackPagesPerUnit <= 0 {
		return nil, fmt.Errorf("ink pages-per-unit values must be positive")
	}
	if cfg.Consumption.BindingUnitsPerJob <= 0 {
		return nil, fmt.Errorf("BINDING_UNITS_PER_JOB must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
