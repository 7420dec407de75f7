package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	StorageDriver  string
	RedisURL       string
	RedisNamespace string
	MongoURI       string
	DBName         string
	JWTSecret      string

	AIBackendURL     string
	AIBackendTimeout time.Duration

	DeliveryFee  float64
	PromoCode    string
	PromoRate    float64
	CashbackRate float64

	// PaymentConfirmStatus is where a pending order lands once its payment is
	// confirmed: "delivered" (historical storefront behavior) or "ontheway".
	PaymentConfirmStatus string
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		StorageDriver:  getEnvOrDefault("STORAGE_DRIVER", "memory"),
		RedisURL:       getEnvOrDefault("REDIS_URL", "redis://localhost:6379/0"),
		RedisNamespace: getEnvOrDefault("REDIS_NAMESPACE", "deliveria"),
		MongoURI:       getEnvOrDefault("MONGO_URI", ""),
		DBName:         getEnvOrDefault("DB_NAME", "deliveria"),
		JWTSecret:      getEnvOrDefault("JWT_SECRET", ""),

		AIBackendURL:     getEnvOrDefault("AI_BACKEND_URL", "http://localhost:8000/api"),
		AIBackendTimeout: getDurationEnv("AI_BACKEND_TIMEOUT", 10, time.Second),

		DeliveryFee:  getFloatEnv("DELIVERY_FEE", 5.90),
		PromoCode:    getEnvOrDefault("PROMO_CODE", "deliveria10"),
		PromoRate:    getFloatEnv("PROMO_RATE", 0.10),
		CashbackRate: getFloatEnv("CASHBACK_RATE", 0.10),

		PaymentConfirmStatus: getEnvOrDefault("PAYMENT_CONFIRM_STATUS", "delivered"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil && parsed >= 0 {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
