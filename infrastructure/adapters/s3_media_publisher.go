package adapters

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"animate-frames-lambda/application/ports/outbound"
	"animate-frames-lambda/config"
)

type s3MediaPublisher struct {
	logger          outbound.LoggerPort
	s3Svc           *s3.S3
	publisherConfig *config.PublisherConfig
}

func NewS3MediaPublisher(logger outbound.LoggerPort, publisherConfig *config.PublisherConfig) outbound.MediaPublisherPort {
	sess, err := session.NewSession(&aws.Config{Region: aws.String(publisherConfig.Region)})
	if err != nil {
		logger.Error(err, "Failed to create session")
	}
	return &s3MediaPublisher{
		logger:          logger,
		s3Svc:           s3.New(sess),
		publisherConfig: publisherConfig,
	}
}

func (p *s3MediaPublisher) Publish(ctx context.Context, req outbound.PublishMediaRequest) (*outbound.PublishMediaResponse, error) {
	itemPath := p.getS3ItemPath(req)

	file, err := os.Open(req.MediaFileName)
	if err != nil {
		p.logger.Error(err, "Failed to open media file")
		return nil, err
	}

	defer func(file *os.File) {
		if err := file.Close(); err != nil {
			p.logger.Error(err, "Failed to close media file")
		}
	}(file)

	putInput := &s3.PutObjectInput{
		Bucket: aws.String(p.publisherConfig.BucketName),
		Key:    aws.String(itemPath),
		Body:   file,
	}

	_, err = p.s3Svc.PutObjectWithContext(ctx, putInput)
	if err != nil {
		p.logger.Error(err, "Failed to upload object to S3")
		return nil, err
	}

	return &outbound.PublishMediaResponse{
		MediaKey:    itemPath,
		StoreRegion: p.publisherConfig.Region,
	}, nil
}

func (p *s3MediaPublisher) getS3ItemPath(req outbound.PublishMediaRequest) string {
	return fmt.Sprintf("runs/%s/%s", req.RunID, filepath.Base(req.MediaFileName))
}
