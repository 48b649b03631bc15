package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	Port        string
	JWTSecret   string
	StoreDriver string // postgres, redis or memory
	DatabaseURL string
	RedisAddr   string
	RedisPass   string
	RedisDB     int
	IsProd      bool

	// The admin console uses a single fixed credential pair; it is
	// configuration, not a registry record.
	AdminEmail    string
	AdminPassword string

	// Manual payment channels. Customers transfer to these and submit
	// the transaction reference at checkout.
	EasyPaisaNumber    string
	BankTransferNumber string
	PaymentAccountName string
}

// Load reads configuration from the environment, with .env support.
func Load() *Config {
	_ = godotenv.Load()
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	return &Config{
		Port:        getenv("PORT", "8080"),
		JWTSecret:   getenv("JWT_SECRET", "luxe3d-dev-secret"),
		StoreDriver: getenv("STORE_DRIVER", "memory"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisAddr:   getenv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   os.Getenv("REDIS_PASS"),
		RedisDB:     redisDB,
		IsProd:      os.Getenv("IS_PROD") == "true",

		AdminEmail:    getenv("ADMIN_EMAIL", "admin@luxe3d.com"),
		AdminPassword: getenv("ADMIN_PASSWORD", "admin123"),

		EasyPaisaNumber:    getenv("EASYPAISA_NUMBER", "03255540480"),
		BankTransferNumber: getenv("BANK_TRANSFER_NUMBER", "03255540480"),
		PaymentAccountName: getenv("PAYMENT_ACCOUNT_NAME", "M. Faisal Admin"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
