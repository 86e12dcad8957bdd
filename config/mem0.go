package config

import "os"

type Mem0Config struct {
	ApiUrl string
	ApiKey string
}

// GetMem0Config never fails: the memory service is optional and the pipeline
// degrades to "no extra context" when the key is absent.
func GetMem0Config() *Mem0Config {
	apiUrl := os.Getenv("MEM0_API_URL")
	if apiUrl == "" {
		apiUrl = "https://api.mem0.ai"
	}

	return &Mem0Config{
		ApiUrl: apiUrl,
		ApiKey: os.Getenv("MEM0_API_KEY"),
	}
}
