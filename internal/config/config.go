package config

import (
	"os"
	"strconv"
	"time"

	"lotogen/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database  DatabaseConfig `validate:"required"`
	Server    ServerConfig   `validate:"required"`
	Engine    EngineConfig   `validate:"required"`
	Learning  LearningConfig `validate:"required"`
	Paths     PathConfig
	Profiling ProfilingConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	URL      string `validate:"required"`
	User     string
	Password string
	Name     string
	Host     string
	Port     int
	SSLMode  string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string `validate:"required"`
	OpsPort string
	GinMode string
}

// EngineConfig holds generation and scoring settings
type EngineConfig struct {
	HistoryWindow    int     // Draws feeding the frequency table
	PoolMultiplier   int     // Over-production factor before rank-selection
	MaxAttempts      int     // Generation attempts before best-effort return
	QualityFloor     float64 // Minimum normalized fitness
	AnomalyThreshold float64 // Deviation cutoff for anomaly classification
	ScoringWorkers   int     // Parallel scoring goroutines (0 = NumCPU)
}

// LearningConfig holds weight adaptation settings
type LearningConfig struct {
	LearningRate   float64
	DiscountFactor float64
	Epsilon        float64
	EpsilonDecay   float64
	EpsilonFloor   float64
}

// PathConfig holds file system paths
type PathConfig struct {
	HistoryFile string // Excel draw history for imports
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{}

	dbConfig, err := loadDatabaseConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load database configuration")
	}
	config.Database = *dbConfig

	config.Server = *loadServerConfig()
	config.Engine = *loadEngineConfig()
	config.Learning = *loadLearningConfig()
	config.Paths = *loadPathConfig()
	config.Profiling = *loadProfilingConfig()

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadDatabaseConfig() (*DatabaseConfig, error) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	return &DatabaseConfig{
		URL:      url,
		User:     getEnvOrDefault("DB_USER", ""),
		Password: getEnvOrDefault("DB_PASS", ""),
		Name:     getEnvOrDefault("DB_NAME", ""),
		Host:     getEnvOrDefault("DB_HOST", ""),
		Port:     getEnvIntOrDefault("DB_PORT", 5432),
		SSLMode:  getEnvOrDefault("SSL_MODE", "disable"),
	}, nil
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		OpsPort: getEnvOrDefault("OPS_PORT", "8081"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadEngineConfig() *EngineConfig {
	return &EngineConfig{
		HistoryWindow:    getEnvIntOrDefault("HISTORY_WINDOW", 50),
		PoolMultiplier:   getEnvIntOrDefault("POOL_MULTIPLIER", 2),
		MaxAttempts:      getEnvIntOrDefault("MAX_ATTEMPTS", 10000),
		QualityFloor:     getEnvFloatOrDefault("QUALITY_FLOOR", 0.70),
		AnomalyThreshold: getEnvFloatOrDefault("ANOMALY_THRESHOLD", 0.95),
		ScoringWorkers:   getEnvIntOrDefault("SCORING_WORKERS", 0),
	}
}

func loadLearningConfig() *LearningConfig {
	return &LearningConfig{
		LearningRate:   getEnvFloatOrDefault("LEARNING_RATE", 0.1),
		DiscountFactor: getEnvFloatOrDefault("DISCOUNT_FACTOR", 0.95),
		Epsilon:        getEnvFloatOrDefault("EPSILON", 0.15),
		EpsilonDecay:   getEnvFloatOrDefault("EPSILON_DECAY", 0.995),
		EpsilonFloor:   getEnvFloatOrDefault("EPSILON_FLOOR", 0.01),
	}
}

func loadPathConfig() *PathConfig {
	return &PathConfig{
		HistoryFile: getEnvOrDefault("HISTORY_FILE", ""),
	}
}

func loadProfilingConfig() *ProfilingConfig {
	return &ProfilingConfig{
		Port:    getEnvOrDefault("PPROF_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
	}
}

func validateConfig(config *Config) error {
	if config.Database.URL == "" {
		return errors.ConfigInvalid("database URL is required")
	}
	if config.Engine.QualityFloor < 0 || config.Engine.QualityFloor > 1 {
		return errors.ConfigInvalid("QUALITY_FLOOR must be in [0, 1]")
	}
	if config.Engine.PoolMultiplier < 1 {
		return errors.ConfigInvalid("POOL_MULTIPLIER must be at least 1")
	}
	if config.Learning.LearningRate <= 0 || config.Learning.LearningRate > 1 {
		return errors.ConfigInvalid("LEARNING_RATE must be in (0, 1]")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Duration parsing helper (for future use)
func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
