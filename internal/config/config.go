package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	ProviderHTTP   = "http"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderSample = "sample"
)

type Config struct {
	Server         ServerConfig
	Recommendation RecommendationConfig
	AI             AIConfig
	Database       DatabaseConfig
	Quiz           QuizConfig
}

type ServerConfig struct {
	Port        string   `env:"PORT" envDefault:"8080"`
	Environment string   `env:"APP_ENV" envDefault:"development"`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

type RecommendationConfig struct {
	Provider       string        `env:"RECOMMENDER_PROVIDER" envDefault:"http"`
	Endpoint       string        `env:"RECOMMENDATION_ENDPOINT" envDefault:"http://localhost:5000/pacakes/generatePackges"`
	Timeout        time.Duration `env:"RECOMMENDATION_TIMEOUT" envDefault:"20s"`
	MaxAttempts    uint          `env:"RECOMMENDATION_MAX_ATTEMPTS" envDefault:"3"`
	InitialBackoff time.Duration `env:"RECOMMENDATION_INITIAL_BACKOFF" envDefault:"300ms"`
}

type AIConfig struct {
	OpenAIKey   string `env:"OPENAI_API_KEY"`
	OpenAIModel string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	GeminiKey   string `env:"GEMINI_API_KEY"`
	GeminiModel string `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
}

type DatabaseConfig struct {
	PostgresURL string `env:"POSTGRES_URL"`
}

type QuizConfig struct {
	SessionTTL    time.Duration `env:"QUIZ_SESSION_TTL" envDefault:"30m"`
	SweepInterval time.Duration `env:"QUIZ_SWEEP_INTERVAL" envDefault:"1m"`
}

func (c Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// Load reads an optional .env file and then parses the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Parse()
}

func Parse() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	switch strings.ToLower(c.Recommendation.Provider) {
	case ProviderHTTP:
		if c.Recommendation.Endpoint == "" {
			return errors.New("RECOMMENDATION_ENDPOINT is required for the http provider")
		}
	case ProviderOpenAI:
		if c.AI.OpenAIKey == "" {
			return errors.New("OPENAI_API_KEY is required when using the openai provider")
		}
	case ProviderGemini:
		if c.AI.GeminiKey == "" {
			return errors.New("GEMINI_API_KEY is required when using the gemini provider")
		}
	case ProviderSample:
	default:
		return fmt.Errorf("unsupported recommender provider %q", c.Recommendation.Provider)
	}

	if c.Recommendation.MaxAttempts == 0 {
		return errors.New("RECOMMENDATION_MAX_ATTEMPTS must be at least 1")
	}
	if c.Quiz.SessionTTL <= 0 {
		return errors.New("QUIZ_SESSION_TTL must be positive")
	}
	if c.Quiz.SweepInterval <= 0 {
		return errors.New("QUIZ_SWEEP_INTERVAL must be positive")
	}
	return nil
}
