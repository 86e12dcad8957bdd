package config

import (
	"fmt"
	"os"
)

type MySQLConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleConns int
}

func GetMySQLConfig() (*MySQLConfig, error) {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("MYSQL_DSN must be set")
	}

	return &MySQLConfig{
		DSN:          dsn,
		MaxOpenConns: 32,
		MaxIdleConns: 16,
	}, nil
}
