package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// fixed origin for every delivery quote
	RestaurantLat float64
	RestaurantLng float64

	TaxRate     float64
	PrepMinutes int

	PayHereMerchantID string
	PayHereSecret     string
	Currency          string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:  getEnv("DB_SOURCE", "realtaste.db"),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    time.Duration(24) * time.Hour,

		RestaurantLat: getEnvFloat("RESTAURANT_LAT", 6.261449),
		RestaurantLng: getEnvFloat("RESTAURANT_LNG", 80.906462),

		TaxRate:     getEnvFloat("TAX_RATE", 0),
		PrepMinutes: getEnvInt("PREP_MINUTES", 20),

		PayHereMerchantID: os.Getenv("PAYHERE_MERCHANT_ID"),
		PayHereSecret:     os.Getenv("PAYHERE_MERCHANT_SECRET"),
		Currency:          getEnv("CURRENCY", "LKR"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("bad float for %s, using default", key)
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("bad int for %s, using default", key)
	}
	return fallback
}
