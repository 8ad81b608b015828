package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/tronwatch/usdt-backend/internal/types/environments"
)

type AppConfig struct {
	Environment   environments.Environment
	ApiServer     ApiServerConfig
	Postgres      DBConnection
	Tron          TronConfig
	MonitorPeriod string
}

type ApiServerConfig struct {
	Port           string
	AllowedOrigins string
}

type TronConfig struct {
	TronGridAPIURL      string
	USDTContractAddress string
}

type DBConnection struct {
	Host string
	Port string
	User string
	Name string
	Pass string

	SSLMode string
}

func New() *AppConfig {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	// this will not override env variables that already exist
	godotenv.Load(".env." + env)

	return &AppConfig{
		Environment: environments.Environment(env),
		ApiServer: ApiServerConfig{
			Port:           envVarWithDefault("API_PORT", "5000"),
			AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		},
		Postgres: DBConnection{
			Host:    os.Getenv("DB_HOST"),
			Port:    os.Getenv("DB_PORT"),
			User:    os.Getenv("DB_USER"),
			Name:    os.Getenv("DB_NAME"),
			Pass:    os.Getenv("DB_PASS"),
			SSLMode: os.Getenv("DB_SSL_MODE"),
		},
		Tron: TronConfig{
			TronGridAPIURL:      envVarWithDefault("TRONGRID_API_URL", "https://api.trongrid.io"),
			USDTContractAddress: envVarWithDefault("USDT_CONTRACT_ADDRESS", "TR7NHqjeKQxGTCi8q8ZY4pL8otSzgjLj6t"),
		},
		MonitorPeriod: os.Getenv("MONITOR_PERIOD"),
	}
}

func envVarWithDefault(envName, fallback string) string {
	if value := os.Getenv(envName); value != "" {
		return value
	}
	return fallback
}
