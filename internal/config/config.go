package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/banks"
	"github.com/cloud-ru/mcp-vehicle-loan-go/internal/logger"
)

// Config содержит конфигурацию сервиса
type Config struct {
	Port            int
	MaxVehiclePrice float64
	MaxTermMonths   int
	MaxRate         float64
	DefaultBank     string
	BankRates       string
	RateLimitRPS    int
	RateLimitBurst  int
	OTELEndpoint    string
	OTELServiceName string
	LogLevel        string
	LogFormat       string
	LogOutput       string
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnvInt("PORT", 8000),
		MaxVehiclePrice: getEnvFloat("MAX_VEHICLE_PRICE", 1e12),
		MaxTermMonths:   getEnvInt("MAX_TERM_MONTHS", 360),
		MaxRate:         getEnvFloat("MAX_RATE", 2.0),
		DefaultBank:     getEnvString("DEFAULT_BANK", banks.DefaultBank),
		BankRates:       getEnvString("BANK_RATES", ""),
		RateLimitRPS:    getEnvInt("RATE_LIMIT_RPS", 10),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 20),
		OTELEndpoint:    getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName: getEnvString("OTEL_SERVICE_NAME", "mcp-vehicle-loan"),
		LogLevel:        getEnvString("LOG_LEVEL", "info"),
		LogFormat:       getEnvString("LOG_FORMAT", "console"),
		LogOutput:       getEnvString("LOG_OUTPUT", "stderr"),
	}

	if cfg.MaxVehiclePrice <= 0 {
		return nil, fmt.Errorf("MAX_VEHICLE_PRICE must be positive, got %v", cfg.MaxVehiclePrice)
	}
	if cfg.MaxTermMonths <= 0 {
		return nil, fmt.Errorf("MAX_TERM_MONTHS must be positive, got %d", cfg.MaxTermMonths)
	}
	if cfg.MaxRate <= 0 {
		return nil, fmt.Errorf("MAX_RATE must be positive, got %v", cfg.MaxRate)
	}

	return cfg, nil
}

// Addr адрес HTTP сервера
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// LoggerConfig возвращает настройки логгера
func (c *Config) LoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: time.RFC3339,
		Output:     c.LogOutput,
	}
}

// RateTable собирает таблицу ставок с учетом BANK_RATES и проверяет,
// что банк по умолчанию в ней присутствует
func (c *Config) RateTable() (banks.RateTable, error) {
	table, err := banks.Load(c.BankRates)
	if err != nil {
		return nil, fmt.Errorf("BANK_RATES: %w", err)
	}
	if _, err := table.Lookup(c.DefaultBank); err != nil {
		return nil, fmt.Errorf("DEFAULT_BANK: %w", err)
	}
	return table, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
