// Package config загружает настройки сервиса из переменных окружения и файла .env.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config содержит все настройки сервиса.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration

	DBDSN     string
	DBMigrate bool

	RedisAddrs    []string
	RedisPassword string
	DraftTTL      time.Duration

	JWTSecret string
	JWTTTL    time.Duration

	AllowedOrigins []string

	EventSweepInterval    time.Duration
	NotificationInterval  time.Duration
	NotificationBatchSize int
}

// Load читает конфигурацию. Файл .env необязателен: если его нет, используются переменные окружения.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:       getString("HTTP_ADDR", ":8080"),
		DBDSN:          os.Getenv("DB_DSN"),
		RedisAddrs:     getList("REDIS_ADDRS", []string{"localhost:6379"}),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		AllowedOrigins: getList("ALLOWED_ORIGINS", []string{"http://localhost:4321"}),
	}

	if cfg.DBDSN == "" {
		return cfg, errors.New("DB_DSN environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return cfg, errors.New("JWT_SECRET environment variable is required")
	}

	var err error
	if cfg.DBMigrate, err = getBool("DB_MIGRATE", true); err != nil {
		return cfg, err
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 5*time.Second); err != nil {
		return cfg, err
	}
	if cfg.DraftTTL, err = getDuration("DRAFT_TTL", 48*time.Hour); err != nil {
		return cfg, err
	}
	if cfg.JWTTTL, err = getDuration("JWT_TTL", 24*time.Hour); err != nil {
		return cfg, err
	}
	if cfg.EventSweepInterval, err = getDuration("EVENT_SWEEP_INTERVAL", 10*time.Minute); err != nil {
		return cfg, err
	}
	if cfg.NotificationInterval, err = getDuration("NOTIFICATION_INTERVAL", 30*time.Second); err != nil {
		return cfg, err
	}
	if cfg.NotificationBatchSize, err = getInt("NOTIFICATION_BATCH_SIZE", 100); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getList разбирает список через запятую.
func getList(key string, def []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	res := make([]string, 0)
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			res = append(res, item)
		}
	}
	return res
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format for %s: %w", key, err)
	}
	return d, nil
}

func getInt(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
	}
	return v, nil
}

func getBool(key string, def bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid boolean for %s: %w", key, err)
	}
	return v, nil
}
