package config

import (
	"fmt"
	"os"
)

type PublisherConfig struct {
	BucketName string
	Region     string
}

// GetPublisherConfig returns nil config when publication is not configured;
// the pipeline then keeps artifacts local.
func GetPublisherConfig() (*PublisherConfig, error) {
	bucketName := os.Getenv("PUBLISH_BUCKET")
	if bucketName == "" {
		return nil, nil
	}

	region := os.Getenv("REGION")
	if region == "" {
		return nil, fmt.Errorf("REGION must be set when PUBLISH_BUCKET is set")
	}

	return &PublisherConfig{
		BucketName: bucketName,
		Region:     region,
	}, nil
}
