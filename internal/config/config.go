package config

import (
	"os"
	"strings"
)

type Config struct {
	Port         string
	MongoURL     string
	MongoDB      string
	KafkaBrokers []string
}

// Load reads configuration from the environment. An empty KAFKA_BROKERS
// disables event publishing; everything else has a usable default.
func Load() Config {
	return Config{
		Port:         getEnv("PORT", "8080"),
		MongoURL:     getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "ecommerce"),
		KafkaBrokers: splitCSV(os.Getenv("KAFKA_BROKERS")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
