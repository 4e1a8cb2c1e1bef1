package config

import (
	"fmt"
	"os"
	"strconv"
)

type ServerConfig struct {
	Port          string
	PoolSize      int
	OutputBaseDir string
}

func GetServerConfig() (*ServerConfig, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	poolSize := 120
	if raw := os.Getenv("WORKER_POOL_SIZE"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("WORKER_POOL_SIZE must be a positive integer")
		}
		poolSize = parsed
	}

	outputBaseDir := os.Getenv("OUTPUT_DIR")
	if outputBaseDir == "" {
		outputBaseDir = "./output"
	}

	return &ServerConfig{
		Port:          port,
		PoolSize:      poolSize,
		OutputBaseDir: outputBaseDir,
	}, nil
}
