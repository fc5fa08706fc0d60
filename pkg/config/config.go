// Файл: pkg/config/config.go
package config

import (
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const DefaultVirtuSIMURL = "https://virtusim.com/api/json.php"

type ServerConfig struct {
	Port         string
	AllowOrigins []string
}

type VirtuSIMConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// PricingConfig: параметры наценки. Значения неотрицательные.
type PricingConfig struct {
	MarkupPercentage float64
	FixedMarkup      float64
	MinPrice         float64
}

type LogConfig struct {
	Level string
	File  string
}

// Config читается один раз при старте и дальше не меняется.
type Config struct {
	Server   ServerConfig
	VirtuSIM VirtuSIMConfig
	Pricing  PricingConfig
	Log      LogConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Предупреждение: .env файл не найден или не удалось его загрузить.")
	}
	return FromEnv()
}

// FromEnv собирает конфиг только из переменных окружения, без чтения .env.
func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "7860"),
			AllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		},
		VirtuSIM: VirtuSIMConfig{
			APIKey:  strings.TrimSpace(getEnv("VIRTUSIM_API_KEY", "")),
			BaseURL: getEnv("VIRTUSIM_API_URL", DefaultVirtuSIMURL),
			Timeout: getEnvDuration("VIRTUSIM_TIMEOUT", 30*time.Second),
		},
		Pricing: PricingConfig{
			MarkupPercentage: getEnvFloat("MARKUP_PERCENTAGE", 30),
			FixedMarkup:      getEnvFloat("FIXED_MARKUP", 0),
			MinPrice:         getEnvFloat("MIN_PRICE", 1000),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "debug"),
			File:  getEnv("LOG_FILE", "./logs/app.log"),
		},
	}
}

// APIKeyConfigured: задан ли ключ VirtuSIM на уровне процесса.
func (c *Config) APIKeyConfigured() bool {
	return c.VirtuSIM.APIKey != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	raw, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(raw) == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		log.Printf("Предупреждение: некорректное значение %s=%q, используется %v", key, raw, fallback)
		return fallback
	}
	return value
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	raw, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(raw) == "" {
		return fallback
	}
	value, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		log.Printf("Предупреждение: некорректное значение %s=%q, используется %s", key, raw, fallback)
		return fallback
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
