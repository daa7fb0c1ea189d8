package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr      string
	GinMode      string
	DBDSN        string
	JWTSecret    string
	FxBaseURL    string
	BaseCurrency string
	FontDir      string
	LogLevel     string
}

func LoadEnv() Env {
	// .env is optional; deployments set the variables directly.
	_ = godotenv.Load()

	return Env{
		AppAddr:      getEnv("APP_ADDR", ":8080"),
		GinMode:      strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDSN:        getEnv("DB_DSN", "root:@tcp(127.0.0.1:3306)/sayarti?charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"),
		JWTSecret:    getEnv("JWT_SECRET", "change-this-key"),
		FxBaseURL:    getEnv("FX_BASE_URL", "https://api.exchangerate.host"),
		BaseCurrency: strings.ToUpper(getEnv("BASE_CURRENCY", "SAR")),
		FontDir:      getEnv("FONT_DIR", "static/fonts"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}
