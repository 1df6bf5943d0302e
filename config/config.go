package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Observ   ObservabilityConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type AuthConfig struct {
	// APIKey is the shared secret agents must present on tool routes.
	// Demo-grade credential scheme: a single static key, provisioned
	// out-of-band to the agent platform's project connection.
	APIKey     string
	HeaderName string
}

type DatabaseConfig struct {
	// URL is optional. When empty the service uses the embedded seed
	// catalog; when set, product rows are loaded once at startup.
	URL string
}

type ObservabilityConfig struct {
	JaegerEndpoint string
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Auth: AuthConfig{
			APIKey:     getEnv("API_KEY", "test-api-key-12345"),
			HeaderName: getEnv("API_KEY_HEADER", "x-api-key"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Observ: ObservabilityConfig{
			JaegerEndpoint: getEnv("JAEGER_ENDPOINT", "http://localhost:14268/api/traces"),
		},
	}

	log.Printf("Config loaded: env=%s, port=%s", cfg.Server.Env, cfg.Server.Port)
	return cfg
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
