package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Valuation ValuationConfig
	GigaChat  GigaChatConfig
	Dataset   DatasetConfig
	NLP       NLPConfig
	Logger    LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type ValuationConfig struct {
	BaseURL     string
	Timeout     time.Duration
	MaxRetries  int
	Concurrency int
}

type GigaChatConfig struct {
	APIKey             string
	Scope              string
	InsecureSkipVerify bool
	Timeout            time.Duration
}

type DatasetConfig struct {
	Dir string
}

type NLPConfig struct {
	// LegacyBudgetSuffix restores the historical heuristic where a trailing
	// "m" on a budget ("2m") multiplied by 1,000 instead of 1,000,000.
	LegacyBudgetSuffix bool
}

// Enabled reports whether conversational features are configured. Without an
// API key the service stays up in filter-only mode.
func (c *GigaChatConfig) Enabled() bool {
	return c.APIKey != ""
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine: plain environment variables are used directly,
	// which is what Docker/K8s deployments do.

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	valuationTimeout, _ := strconv.Atoi(getEnv("VALUATION_TIMEOUT", "10"))
	valuationRetries, _ := strconv.Atoi(getEnv("VALUATION_MAX_RETRIES", "2"))
	valuationConcurrency, _ := strconv.Atoi(getEnv("VALUATION_CONCURRENCY", "4"))
	llmTimeout, _ := strconv.Atoi(getEnv("GIGACHAT_TIMEOUT", "30"))
	insecureSkipVerify := getEnv("GIGACHAT_INSECURE_SKIP_VERIFY", "true") == "true"
	legacyBudgetSuffix := getEnv("NLP_LEGACY_BUDGET_SUFFIX", "false") == "true"

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "5000"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "estatescout"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Valuation: ValuationConfig{
			BaseURL:     getEnv("VALUATION_SERVICE_URL", "http://localhost:8000"),
			Timeout:     time.Duration(valuationTimeout) * time.Second,
			MaxRetries:  valuationRetries,
			Concurrency: valuationConcurrency,
		},
		GigaChat: GigaChatConfig{
			APIKey:             getEnv("GIGACHAT_API_KEY", ""),
			Scope:              getEnv("GIGACHAT_SCOPE", "GIGACHAT_API_PERS"),
			InsecureSkipVerify: insecureSkipVerify,
			Timeout:            time.Duration(llmTimeout) * time.Second,
		},
		Dataset: DatasetConfig{
			Dir: getEnv("DATA_DIR", "data"),
		},
		NLP: NLPConfig{
			LegacyBudgetSuffix: legacyBudgetSuffix,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
