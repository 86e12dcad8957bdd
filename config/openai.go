package config

import (
	"fmt"
	"os"
)

type OpenAIConfig struct {
	ApiKey string
	Model  string
}

func GetOpenAIConfig() (*OpenAIConfig, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set")
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		model = "gpt-4o"
	}

	return &OpenAIConfig{
		ApiKey: apiKey,
		Model:  model,
	}, nil
}
