package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string
	DBDSN   string
}

// LoadEnv reads configuration from the environment, with an optional .env
// file for local development. Defaults target a local MySQL instance.
func LoadEnv() Env {
	_ = godotenv.Load()

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	if dsn == "" {
		dsn = buildDSN()
	}

	return Env{
		AppAddr: appAddr,
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDSN:   dsn,
	}
}

func buildDSN() string {
	user := envOr("DB_USER", "root")
	pass := os.Getenv("DB_PASSWORD")
	host := envOr("DB_HOST", "127.0.0.1:3306")
	name := envOr("DB_NAME", "bus_booking")

	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s",
		user, pass, host, name)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
