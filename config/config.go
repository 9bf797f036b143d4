package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	Env       string
	DataDir   string
	DBName    string
	JWTKey    string
	SaltRound int

	PublicBaseURL string

	MentorURL    string // local inference server base URL
	OpenAIApiKey string
	GeminiApiKey string
}

// Load initializes configuration from environment variables or defaults.
// The returned Config is built once at startup and handed to every component
// that needs it; nothing reads it as ambient state.
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	cfg := &Config{
		Port:      getEnv("PORT", "3000"),
		Env:       getEnv("APP_ENV", "development"),
		DataDir:   getEnv("DATA_DIR", "./data"),
		DBName:    getEnv("DB_NAME", "vikasini.db"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		PublicBaseURL: getEnv("PUBLIC_BASE_URL", "http://localhost:3000"),

		MentorURL:    getEnv("MENTOR_URL", "http://localhost:11434"),
		OpenAIApiKey: getEnv("OPENAI_API_KEY", ""),
		GeminiApiKey: getEnv("GEMINI_API_KEY", ""),
	}

	// Validate critical configuration
	if cfg.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}

	return cfg
}

// DBPath returns the SQLite file location under the data root.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBName)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
