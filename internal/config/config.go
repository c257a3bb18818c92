package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	// LLM settings
	LLMProvider      string  `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string  `env:"OPENAI_API_KEY"`
	OpenAIBaseURL    string  `env:"OPENAI_BASE_URL"`
	OpenAIModel      string  `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	Temperature      float32 `env:"LLM_TEMPERATURE" envDefault:"0.4"`
	YandexOAuthToken string  `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string  `env:"YANDEX_FOLDER_ID"`

	// Storage
	SubmissionsDir string `env:"SUBMISSIONS_DIR" envDefault:"submissions"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
