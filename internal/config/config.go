package config

import "os"

const (
	defaultPort     = "5000"
	defaultProvider = "openai"
)

type Config struct {
	Port        string
	NewsAPIKey  string
	AIProvider  string
	OpenAIKey   string
	FrontendURL string
}

// Load reads configuration from the environment. Call godotenv.Load()
// first if a .env file should be picked up.
func Load() *Config {
	cfg := &Config{
		Port:        os.Getenv("PORT"),
		NewsAPIKey:  os.Getenv("NEWS_API_KEY"),
		AIProvider:  os.Getenv("AI_PROVIDER"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	if cfg.AIProvider == "" {
		cfg.AIProvider = defaultProvider
	}

	return cfg
}
