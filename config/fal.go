package config

import (
	"fmt"
	"os"
)

type FalConfig struct {
	ApiUrl string
	ApiKey string
}

func GetFalConfig() (*FalConfig, error) {
	apiUrl := os.Getenv("FAL_API_URL")
	if apiUrl == "" {
		apiUrl = "https://fal.run/fal-ai/fast-animatediff/text-to-video"
	}
	apiKey := os.Getenv("FAL_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("FAL_API_KEY must be set")
	}

	return &FalConfig{
		ApiUrl: apiUrl,
		ApiKey: apiKey,
	}, nil
}
