package config

import "os"

type EncoderConfig struct {
	Binary string
}

func GetEncoderConfig() (*EncoderConfig, error) {
	binary := os.Getenv("FFMPEG_BIN")
	if binary == "" {
		binary = "ffmpeg"
	}

	return &EncoderConfig{
		Binary: binary,
	}, nil
}
