package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	API      APIConfig
	Auth     AuthConfig
	Realtime RealtimeConfig
	Refresh  RefreshConfig
	MockAPI  MockAPIConfig
}

type APIConfig struct {
	BaseURL  string
	Timeout  time.Duration
	PageSize int
}

type AuthConfig struct {
	Token     string
	JWTSecret string
}

type RealtimeConfig struct {
	WebSocketURL string
	Enabled      bool
}

type RefreshConfig struct {
	Interval time.Duration
	Enabled  bool
}

type MockAPIConfig struct {
	Enabled bool
	Port    string
}

var AppConfig *Config

func Load() {
	AppConfig = &Config{
		API: APIConfig{
			BaseURL:  getEnv("API_BASE_URL", "http://localhost:8080/api/v1"),
			Timeout:  time.Duration(getEnvAsInt("API_TIMEOUT_SECONDS", 15)) * time.Second,
			PageSize: getEnvAsInt("API_PAGE_SIZE", 10),
		},
		Auth: AuthConfig{
			Token:     getEnv("AUTH_TOKEN", ""),
			JWTSecret: getEnv("JWT_SECRET", "your-super-secret-jwt-key-change-this-in-production"),
		},
		Realtime: RealtimeConfig{
			WebSocketURL: getEnv("WS_URL", "ws://localhost:8080/api/v1/ws/orders"),
			Enabled:      getEnvAsBool("WS_ENABLED", false),
		},
		Refresh: RefreshConfig{
			Interval: time.Duration(getEnvAsInt("REFRESH_INTERVAL_SECONDS", 120)) * time.Second,
			Enabled:  getEnvAsBool("REFRESH_ENABLED", false),
		},
		MockAPI: MockAPIConfig{
			Enabled: getEnvAsBool("MOCK_API", false),
			Port:    getEnv("MOCK_API_PORT", "8080"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
