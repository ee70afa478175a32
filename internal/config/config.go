package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the process reads from the environment, loaded
// once in main and passed down explicitly.
type Config struct {
	Env             string
	Port            string
	MongoURI        string
	MongoDatabase   string
	JWTSecret       string
	StripeSecretKey string
	RedisAddr       string
	KafkaBroker     string
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Env:             getEnv("APP_ENV", "development"),
		Port:            getEnv("PORT", "5000"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:   getEnv("MONGO_DB", "bistroDb"),
		JWTSecret:       getEnv("ACCESS_TOKEN_SECRET", ""),
		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBroker:     getEnv("KAFKA_BROKER", "localhost:9092"),
	}
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
