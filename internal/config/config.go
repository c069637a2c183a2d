package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// InferenceConfig — пороги движка инференса статусов. Все значения вынесены
// из логики переходов, чтобы тесты могли детерминированно проверять границы.
type InferenceConfig struct {
	IncidentProximityMeters  float64       `env:"INCIDENT_PROXIMITY_METERS" envDefault:"50"`
	TransportProximityMeters float64       `env:"TRANSPORT_PROXIMITY_METERS" envDefault:"20"`
	HospitalProximityMeters  float64       `env:"HOSPITAL_PROXIMITY_METERS" envDefault:"100"`
	RoamingVelocityMS        float64       `env:"ROAMING_VELOCITY_MS" envDefault:"2"`
	TransportVelocityMS      float64       `env:"TRANSPORT_VELOCITY_MS" envDefault:"5"`
	StationaryThresholdM     float64       `env:"STATIONARY_THRESHOLD_METERS" envDefault:"20"`
	StationaryWindow         time.Duration `env:"STATIONARY_WINDOW" envDefault:"120s"`
	ArrivalStationaryWindow  time.Duration `env:"ARRIVAL_STATIONARY_WINDOW" envDefault:"60s"`
	VelocityWindow           time.Duration `env:"VELOCITY_WINDOW" envDefault:"60s"`
	DangerZoneFalloffMeters  float64       `env:"DANGER_ZONE_FALLOFF_METERS" envDefault:"1000"`
	SweepInterval            time.Duration `env:"SWEEP_INTERVAL" envDefault:"30s"`
	WorkerPoolSize           int           `env:"WORKER_POOL_SIZE" envDefault:"16"`
}

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Redis Config
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Путь к внешним таблицам ключевых слов (JSON); пусто — встроенные таблицы
	KeywordTablesPath string `env:"KEYWORD_TABLES_PATH"`

	// API Keys for authentication
	APIKeys []string `env:"API_KEYS"`

	Inference InferenceConfig
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		HTTPPort:          getEnv("HTTP_PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:         os.Getenv("REDIS_PASSWORD"),
		RedisDB:           getEnvAsInt("REDIS_DB", 0),
		WebhookURL:        os.Getenv("WEBHOOK_URL"),
		WebhookSecret:     os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:    getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries: getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:  getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		KeywordTablesPath: os.Getenv("KEYWORD_TABLES_PATH"),
		Inference:         loadInferenceConfig(),
	}

	// Загрузка API ключей
	apiKeysStr := os.Getenv("API_KEYS")
	if apiKeysStr != "" {
		cfg.APIKeys = strings.Split(apiKeysStr, ",")
		for i, key := range cfg.APIKeys {
			cfg.APIKeys[i] = strings.TrimSpace(key)
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return cfg, nil
}

// DefaultInferenceConfig возвращает пороги инференса по умолчанию
func DefaultInferenceConfig() InferenceConfig {
	return InferenceConfig{
		IncidentProximityMeters:  50,
		TransportProximityMeters: 20,
		HospitalProximityMeters:  100,
		RoamingVelocityMS:        2,
		TransportVelocityMS:      5,
		StationaryThresholdM:     20,
		StationaryWindow:         120 * time.Second,
		ArrivalStationaryWindow:  60 * time.Second,
		VelocityWindow:           60 * time.Second,
		DangerZoneFalloffMeters:  1000,
		SweepInterval:            30 * time.Second,
		WorkerPoolSize:           16,
	}
}

func loadInferenceConfig() InferenceConfig {
	cfg := DefaultInferenceConfig()
	cfg.IncidentProximityMeters = getEnvAsFloat("INCIDENT_PROXIMITY_METERS", cfg.IncidentProximityMeters)
	cfg.TransportProximityMeters = getEnvAsFloat("TRANSPORT_PROXIMITY_METERS", cfg.TransportProximityMeters)
	cfg.HospitalProximityMeters = getEnvAsFloat("HOSPITAL_PROXIMITY_METERS", cfg.HospitalProximityMeters)
	cfg.RoamingVelocityMS = getEnvAsFloat("ROAMING_VELOCITY_MS", cfg.RoamingVelocityMS)
	cfg.TransportVelocityMS = getEnvAsFloat("TRANSPORT_VELOCITY_MS", cfg.TransportVelocityMS)
	cfg.StationaryThresholdM = getEnvAsFloat("STATIONARY_THRESHOLD_METERS", cfg.StationaryThresholdM)
	cfg.StationaryWindow = getEnvAsDuration("STATIONARY_WINDOW", cfg.StationaryWindow)
	cfg.ArrivalStationaryWindow = getEnvAsDuration("ARRIVAL_STATIONARY_WINDOW", cfg.ArrivalStationaryWindow)
	cfg.VelocityWindow = getEnvAsDuration("VELOCITY_WINDOW", cfg.VelocityWindow)
	cfg.DangerZoneFalloffMeters = getEnvAsFloat("DANGER_ZONE_FALLOFF_METERS", cfg.DangerZoneFalloffMeters)
	cfg.SweepInterval = getEnvAsDuration("SWEEP_INTERVAL", cfg.SweepInterval)
	cfg.WorkerPoolSize = getEnvAsInt("WORKER_POOL_SIZE", cfg.WorkerPoolSize)
	return cfg
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
