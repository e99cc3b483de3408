package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	DBSource   string
	BackendURL string
	JWTSecret  string
	JWTTTL     time.Duration
	// Tope de conexión para impresoras TCP
	TCPPrintTimeout time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("sin archivo .env, se usa el environment")
	}

	return &Config{
		Port:            getEnv("PORT", "4500"),
		DBSource:        getEnv("DB_SOURCE", "pos.db"),
		BackendURL:      getEnv("BACKEND_URL", "http://localhost:4000"),
		JWTSecret:       getEnv("JWT_SECRET", "changeme"),
		JWTTTL:          time.Duration(12) * time.Hour,
		TCPPrintTimeout: time.Duration(getEnvInt("TCP_PRINT_TIMEOUT_MS", 5000)) * time.Millisecond,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
