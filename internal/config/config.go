package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	PostgreSQL PostgreSQLConfig
	OpenAI     OpenAIConfig
	Match      MatchConfig
	Generation GenerationConfig
	Logging    LoggingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
}

// PostgreSQLConfig holds the optional pgvector index backend configuration.
// When DSN is empty the in-memory index is used instead.
type PostgreSQLConfig struct {
	DSN                string
	MaxConnections     int
	MaxIdleConnections int
}

// OpenAIConfig holds OpenAI-compatible API configuration
type OpenAIConfig struct {
	APIKey              string
	APIBase             string
	ChatModel           string
	EmbeddingModel      string
	EmbeddingDimensions int
	BatchSize           int
	Timeout             int // seconds
	Enabled             bool
}

// MatchConfig holds matching pipeline tuning: result sizing, the relevance
// threshold, and the attribute scorer weight table.
type MatchConfig struct {
	ResultLimit    int     // matches to personalize and return
	MaxResultLimit int     // hard cap on per-request limit
	RetrievalK     int     // semantic retrieval depth
	ScoreThreshold float64 // minimum attribute score to personalize

	WeightPrice     float64
	WeightBedrooms  float64
	WeightFeatures  float64
	WeightLocation  float64
	WeightMustHaves float64

	RankPrice    int
	RankSqft     int
	RankBedrooms int
	RankLocation int
}

// GenerationConfig holds listing generation configuration
type GenerationConfig struct {
	NumListings    int
	InterCallDelay time.Duration // pause between generator calls, rate-limit courtesy
	Temperature    float64
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvAsInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		PostgreSQL: PostgreSQLConfig{
			DSN:                getEnv("DATABASE_URL", getEnv("PG_DSN", "")),
			MaxConnections:     getEnvAsInt("PG_MAX_CONNECTIONS", 10),
			MaxIdleConnections: getEnvAsInt("PG_MAX_IDLE_CONNECTIONS", 2),
		},
		OpenAI: OpenAIConfig{
			APIKey:              getEnv("OPENAI_API_KEY", ""),
			APIBase:             getEnv("OPENAI_API_BASE", "https://api.openai.com/v1"),
			ChatModel:           getEnv("OPENAI_CHAT_MODEL", "gpt-3.5-turbo"),
			EmbeddingModel:      getEnv("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small"),
			EmbeddingDimensions: getEnvAsInt("OPENAI_EMBEDDING_DIMENSIONS", 1536),
			BatchSize:           getEnvAsInt("OPENAI_BATCH_SIZE", 100),
			Timeout:             getEnvAsInt("OPENAI_TIMEOUT", 30),
			Enabled:             getEnv("OPENAI_API_KEY", "") != "",
		},
		Match: MatchConfig{
			ResultLimit:    getEnvAsInt("MATCH_RESULT_LIMIT", 3),
			MaxResultLimit: getEnvAsInt("MATCH_MAX_RESULT_LIMIT", 20),
			RetrievalK:     getEnvAsInt("MATCH_RETRIEVAL_K", 10),
			ScoreThreshold: getEnvAsFloat("MATCH_SCORE_THRESHOLD", 0.4),

			WeightPrice:     getEnvAsFloat("MATCH_WEIGHT_PRICE", 5),
			WeightBedrooms:  getEnvAsFloat("MATCH_WEIGHT_BEDROOMS", 4),
			WeightFeatures:  getEnvAsFloat("MATCH_WEIGHT_FEATURES", 3),
			WeightLocation:  getEnvAsFloat("MATCH_WEIGHT_LOCATION", 3),
			WeightMustHaves: getEnvAsFloat("MATCH_WEIGHT_MUST_HAVES", 6),

			RankPrice:    getEnvAsInt("RANK_WEIGHT_PRICE", 10),
			RankSqft:     getEnvAsInt("RANK_WEIGHT_SQFT", 5),
			RankBedrooms: getEnvAsInt("RANK_WEIGHT_BEDROOMS", 5),
			RankLocation: getEnvAsInt("RANK_WEIGHT_LOCATION", 8),
		},
		Generation: GenerationConfig{
			NumListings:    getEnvAsInt("GENERATION_NUM_LISTINGS", 10),
			InterCallDelay: getEnvAsDuration("GENERATION_INTER_CALL_DELAY", time.Second),
			Temperature:    getEnvAsFloat("GENERATION_TEMPERATURE", 0.8),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Match.ResultLimit <= 0 {
		return fmt.Errorf("MATCH_RESULT_LIMIT must be positive, got %d", c.Match.ResultLimit)
	}
	if c.Match.MaxResultLimit < c.Match.ResultLimit {
		return fmt.Errorf("MATCH_MAX_RESULT_LIMIT (%d) must be >= MATCH_RESULT_LIMIT (%d)",
			c.Match.MaxResultLimit, c.Match.ResultLimit)
	}
	if c.Match.ScoreThreshold < 0 || c.Match.ScoreThreshold > 1 {
		return fmt.Errorf("MATCH_SCORE_THRESHOLD must be in [0,1], got %.2f", c.Match.ScoreThreshold)
	}
	if c.Generation.NumListings <= 0 {
		return fmt.Errorf("GENERATION_NUM_LISTINGS must be positive, got %d", c.Generation.NumListings)
	}
	return nil
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default %f", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default %s", key, defaultValue)
		return defaultValue
	}
	return value
}
