package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"giftbox/backend/models"
)

type Config struct {
	ServerPort    string
	JWTSecret     string
	Variant       models.Variant
	FontPath      string
	WrapWidth     int
	SessionTTL    time.Duration
	SweepSchedule string
	CORSOrigins   string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	variant, err := models.ParseVariant(getEnv("VARIANT", string(models.VariantAnnual)))
	if err != nil {
		return nil, err
	}

	wrapWidth, err := getEnvInt("WRAP_WIDTH", 68)
	if err != nil {
		return nil, err
	}

	ttlMinutes, err := getEnvInt("SESSION_TTL_MINUTES", 120)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		Variant:       variant,
		FontPath:      getEnv("FONT_PATH", "assets/fonts/DejaVuSans.ttf"),
		WrapWidth:     wrapWidth,
		SessionTTL:    time.Duration(ttlMinutes) * time.Minute,
		SweepSchedule: getEnv("SWEEP_SCHEDULE", "@every 10m"),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := strings.TrimSpace(getEnv(key, ""))
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return v, nil
}
