package config

import (
	"os"
	"strconv"
)

type RenderConfig struct {
	QueueSize  int
	Workers    int
	MaxRetries int
}

func GetRenderConfig() *RenderConfig {
	conf := &RenderConfig{
		QueueSize:  64,
		Workers:    4,
		MaxRetries: 2,
	}
	if v, err := strconv.Atoi(os.Getenv("RENDER_QUEUE_SIZE")); err == nil && v > 0 {
		conf.QueueSize = v
	}
	if v, err := strconv.Atoi(os.Getenv("RENDER_WORKERS")); err == nil && v > 0 {
		conf.Workers = v
	}
	if v, err := strconv.Atoi(os.Getenv("RENDER_MAX_RETRIES")); err == nil && v >= 0 {
		conf.MaxRetries = v
	}

	return conf
}
