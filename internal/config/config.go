package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// StorageConfig flat-file table locations
type StorageConfig struct {
	DataDir        string
	CandidatesFile string
	StoresFile     string
	SeedOnEmpty    bool // reseed the published table at startup when it is empty
}

// CandidatesPath full path of the candidate table file
func (s *StorageConfig) CandidatesPath() string {
	return filepath.Join(s.DataDir, s.CandidatesFile)
}

// StoresPath full path of the published store table file
func (s *StorageConfig) StoresPath() string {
	return filepath.Join(s.DataDir, s.StoresFile)
}

// ConnectorConfig source connector settings
type ConnectorConfig struct {
	Timeout         time.Duration // per search call; expiry is a connector error
	PlaceholderWait time.Duration // simulated latency of the placeholder connectors
	TikTokAPIURL    string        // empty => placeholder connector
	InstagramAPIURL string        // empty => placeholder connector
	APIKey          string
}

// Config application-wide settings
type Config struct {
	// Server
	ServerPort string
	ServerEnv  string
	ServerHost string // Swagger host

	LogLevel string

	Storage   StorageConfig
	Connector ConnectorConfig

	// SigNoz
	SigNozEndpoint string
}

// Load reads configuration from the environment (.env is optional)
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "3000"),
		ServerEnv:  getEnv("SERVER_ENV", "development"),
		ServerHost: getEnv("SERVER_HOST", "localhost:3000"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		Storage: StorageConfig{
			DataDir:        getEnv("DATA_DIR", "data"),
			CandidatesFile: getEnv("CANDIDATES_FILE", "store-candidates.json"),
			StoresFile:     getEnv("STORES_FILE", "stores.json"),
			SeedOnEmpty:    getEnvBool("SEED_ON_EMPTY", false),
		},
		Connector: ConnectorConfig{
			Timeout:         time.Duration(getEnvInt("CONNECTOR_TIMEOUT_SECONDS", 10)) * time.Second,
			PlaceholderWait: time.Duration(getEnvInt("CONNECTOR_DELAY_MS", 300)) * time.Millisecond,
			TikTokAPIURL:    getEnv("TIKTOK_API_URL", ""),
			InstagramAPIURL: getEnv("INSTAGRAM_API_URL", ""),
			APIKey:          getEnv("CONNECTOR_API_KEY", ""),
		},
		SigNozEndpoint: getEnv("SIGNOZ_ENDPOINT", ""),
	}

	return cfg, nil
}

// IsDevelopment reports whether the server runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.ServerEnv == "development"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool accepts true/1/yes
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}
