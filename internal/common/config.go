package common

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	Alma    AlmaConfig    `yaml:"alma"`
	Analyze AnalyzeConfig `yaml:"analyze"`
	Store   StoreConfig   `yaml:"store"`
	Output  OutputConfig  `yaml:"output"`
}

// AlmaConfig holds Alma Analytics API client configuration
type AlmaConfig struct {
	BaseURL        string `yaml:"base_url"`
	PageLimit      int    `yaml:"page_limit"`
	PageDelayMs    int    `yaml:"page_delay_ms"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	KeysFile       string `yaml:"keys_file"`
}

// PageDelay returns the pause between report pages as a duration.
func (c AlmaConfig) PageDelay() time.Duration {
	return time.Duration(c.PageDelayMs) * time.Millisecond
}

// HTTPTimeout returns the HTTP client timeout as a duration.
func (c AlmaConfig) HTTPTimeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// AnalyzeConfig holds classification pipeline configuration
type AnalyzeConfig struct {
	Workers int `yaml:"workers"`
}

// StoreConfig holds the local holdings database configuration
type StoreConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig holds report output configuration
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// DefaultAlmaBaseURL is the North America Alma API gateway.
const DefaultAlmaBaseURL = "https://api-na.hosted.exlibrisgroup.com"

// LoadConfig loads configuration in order of precedence: built-in
// defaults, an optional YAML file (the path argument, else CONFIG_PATH,
// else config.yaml), then environment variables. The configured keys
// file, if present, is loaded into the environment so the institution
// registry can resolve API keys by variable name.
func LoadConfig(path string) (*Config, error) {
	config := &Config{
		Alma: AlmaConfig{
			BaseURL:        DefaultAlmaBaseURL,
			PageLimit:      1000,
			PageDelayMs:    500,
			TimeoutSeconds: 60,
			KeysFile:       "api_keys.env",
		},
		Analyze: AnalyzeConfig{
			Workers: 4,
		},
		Store: StoreConfig{
			Path: "holdings.db",
		},
		Output: OutputConfig{
			Dir: "data",
		},
	}

	if path == "" {
		path = getEnv("CONFIG_PATH", "config.yaml")
	}
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, NewAppError("CONFIG_ERROR", "failed to parse config file "+path, err)
		}
	}

	config.Alma.BaseURL = getEnv("ALMA_API_BASE_URL", config.Alma.BaseURL)
	config.Alma.PageLimit = getEnvAsInt("ALMA_PAGE_LIMIT", config.Alma.PageLimit)
	config.Alma.PageDelayMs = getEnvAsInt("ALMA_PAGE_DELAY_MS", config.Alma.PageDelayMs)
	config.Alma.TimeoutSeconds = getEnvAsInt("ALMA_TIMEOUT_SECONDS", config.Alma.TimeoutSeconds)
	config.Alma.KeysFile = getEnv("ALMA_KEYS_FILE", config.Alma.KeysFile)
	config.Analyze.Workers = getEnvAsInt("ANALYZE_WORKERS", config.Analyze.Workers)
	config.Store.Path = getEnv("STORE_PATH", config.Store.Path)
	config.Output.Dir = getEnv("OUTPUT_DIR", config.Output.Dir)

	if _, err := os.Stat(config.Alma.KeysFile); err == nil {
		if err := godotenv.Load(config.Alma.KeysFile); err != nil {
			return nil, NewAppError("CONFIG_ERROR", "failed to load keys file "+config.Alma.KeysFile, err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Alma.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "alma base URL is required", ErrInvalidInput)
	}
	if c.Alma.PageLimit < 1 || c.Alma.PageLimit > 1000 {
		return NewAppError("CONFIG_ERROR", "alma page limit must be between 1 and 1000", ErrInvalidInput)
	}
	if c.Alma.PageDelayMs < 0 {
		return NewAppError("CONFIG_ERROR", "alma page delay must not be negative", ErrInvalidInput)
	}
	if c.Alma.TimeoutSeconds < 1 {
		return NewAppError("CONFIG_ERROR", "alma timeout must be at least 1 second", ErrInvalidInput)
	}
	if c.Analyze.Workers < 1 {
		return NewAppError("CONFIG_ERROR", "analyze workers must be at least 1", ErrInvalidInput)
	}
	if c.Store.Path == "" {
		return NewAppError("CONFIG_ERROR", "store path is required", ErrInvalidInput)
	}
	return nil
}
