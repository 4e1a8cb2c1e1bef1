package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type FetcherConfig struct {
	ProbeTimeout    time.Duration
	DownloadTimeout time.Duration
}

func GetFetcherConfig() (*FetcherConfig, error) {
	probeSeconds, err := secondsFromEnv("FETCH_PROBE_TIMEOUT_SECONDS", 10)
	if err != nil {
		return nil, err
	}
	downloadSeconds, err := secondsFromEnv("FETCH_DOWNLOAD_TIMEOUT_SECONDS", 120)
	if err != nil {
		return nil, err
	}

	return &FetcherConfig{
		ProbeTimeout:    probeSeconds,
		DownloadTimeout: downloadSeconds,
	}, nil
}

func secondsFromEnv(key string, fallback int) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return time.Duration(fallback) * time.Second, nil
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return time.Duration(seconds) * time.Second, nil
}
