package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/sdko-org/website-generator/internal/config"
	"github.com/sirupsen/logrus"
)

const metadataKey = "Generation-Metadata"

type S3Storage struct {
	client   *s3.S3
	uploader *s3manager.Uploader
	cfg      *config.Config
	log      *logrus.Entry
}

func NewS3Storage(logger *logrus.Logger, cfg *config.Config) *S3Storage {
	awsConfig := &aws.Config{
		Region:           aws.String(cfg.S3Region),
		Credentials:      credentials.NewStaticCredentials(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		S3ForcePathStyle: aws.Bool(true),
	}

	if cfg.S3Endpoint != "" {
		awsConfig.Endpoint = aws.String(cfg.S3Endpoint)
	}

	sess := session.Must(session.NewSession(awsConfig))

	return &S3Storage{
		client:   s3.New(sess),
		uploader: s3manager.NewUploader(sess),
		cfg:      cfg,
		log:      logger.WithField("component", "s3_storage"),
	}
}

// Put stores the HTML under key with the generation metadata attached to the
// object. A single upload per key: rewriting the same date overwrites.
func (s *S3Storage) Put(ctx context.Context, key string, html string, metadata Metadata) error {
	metaJSON, err := json.Marshal(metadata)
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}

	_, err = s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.cfg.S3Bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(html),
		ContentType: aws.String("text/html; charset=utf-8"),
		Metadata: map[string]*string{
			metadataKey: aws.String(string(metaJSON)),
		},
	})
	if err != nil {
		return fmt.Errorf("s3 upload failed: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"key":   key,
		"bytes": len(html),
	}).Info("Stored website version")
	return nil
}

func (s *S3Storage) Get(ctx context.Context, key string) (*Entry, error) {
	resp, err := s.client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.cfg.S3Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if aerr, ok := err.(awserr.Error); ok && aerr.Code() == s3.ErrCodeNoSuchKey {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("s3 get failed: %w", err)
	}
	defer resp.Body.Close()

	html, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}

	metaJSON := aws.StringValue(resp.Metadata[metadataKey])
	if metaJSON == "" {
		// An object without generation metadata is not a servable version.
		return nil, ErrNotFound
	}

	var metadata Metadata
	if err := json.Unmarshal([]byte(metaJSON), &metadata); err != nil {
		return nil, fmt.Errorf("failed to decode metadata for %s: %w", key, err)
	}

	return &Entry{HTML: string(html), Metadata: metadata}, nil
}

func (s *S3Storage) List(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := s.client.ListObjectsV2PagesWithContext(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.cfg.S3Bucket),
		Prefix: aws.String(prefix),
	}, func(page *s3.ListObjectsV2Output, lastPage bool) bool {
		for _, obj := range page.Contents {
			keys = append(keys, aws.StringValue(obj.Key))
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("s3 list failed: %w", err)
	}
	return keys, nil
}
