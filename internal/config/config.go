package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// placeholderAPIKey is the literal that ships in .env.example. A key equal to
// it is treated the same as no key at all, so a fresh checkout runs in
// fallback mode instead of sending the placeholder upstream.
const placeholderAPIKey = "your_gemini_api_key_here"

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey          string
	GeminiModel           string
	GeminiMaxOutputTokens int
	GeminiTemperature     float64

	// Redis (optional; sessions fall back to the in-memory store when unset)
	RedisURL string

	// Rate limiting
	RateLimitPerMin int

	// Frontend
	FrontendURL string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	return &Config{
		Port:                  getEnvOrDefault("PORT", "8080"),
		Env:                   getEnvOrDefault("ENV", "development"),
		GeminiAPIKey:          getEnvOrDefault("GEMINI_API_KEY", ""),
		GeminiModel:           getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiMaxOutputTokens: getEnvAsIntOrDefault("GEMINI_MAX_OUTPUT_TOKENS", 4096),
		GeminiTemperature:     getEnvAsFloatOrDefault("GEMINI_TEMPERATURE", 0.7),
		RedisURL:              getEnvOrDefault("REDIS_URL", ""),
		RateLimitPerMin:       getEnvAsIntOrDefault("RATE_LIMIT_PER_MINUTE", 60),
		FrontendURL:           getEnvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}
}

// HasGeminiKey reports whether a usable API key is configured. The placeholder
// literal counts as absent.
func (c *Config) HasGeminiKey() bool {
	return c.GeminiAPIKey != "" && c.GeminiAPIKey != placeholderAPIKey
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsFloatOrDefault(key string, defaultVal float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return defaultVal
	}
	return f
}
