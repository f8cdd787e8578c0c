package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/JaimeStill/load-planner/pkg/lifecycle"
)

// s3Store implements System on an S3-compatible bucket. Keys are stored
// beneath the configured prefix.
type s3Store struct {
	client *s3.Client
	bucket string
	prefix string
	logger *slog.Logger
}

// NewS3 creates an S3 storage system. Static credentials from configuration
// are used when present; otherwise requests are sent anonymously, which
// suits public catalogs and local emulators.
func NewS3(ctx context.Context, cfg *S3Config, logger *slog.Logger) (System, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}

	opts := s3.Options{
		Region:       cfg.Region,
		UsePathStyle: cfg.UsePathStyle,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	if cfg.AccessKeyID != "" {
		creds := aws.Credentials{
			AccessKeyID:     cfg.AccessKeyID,
			SecretAccessKey: cfg.SecretAccessKey,
			Source:          "load-planner configuration",
		}
		opts.Credentials = aws.NewCredentialsCache(aws.CredentialsProviderFunc(
			func(context.Context) (aws.Credentials, error) {
				return creds, nil
			},
		))
	} else {
		opts.Credentials = aws.AnonymousCredentials{}
	}

	return &s3Store{
		client: s3.New(opts),
		bucket: cfg.Bucket,
		prefix: cfg.Prefix,
		logger: logger.With("system", "storage", "backend", BackendS3),
	}, nil
}

func (s *s3Store) Start(lc *lifecycle.Coordinator) error {
	s.logger.Info("starting storage system", "bucket", s.bucket, "prefix", s.prefix)

	lc.OnStartup(func() {
		_, err := s.client.HeadBucket(lc.Context(), &s3.HeadBucketInput{
			Bucket: aws.String(s.bucket),
		})
		if err != nil {
			s.logger.Error("storage bucket unreachable", "error", err)
			return
		}
		s.logger.Info("storage bucket reachable")
	})

	return nil
}

func (s *s3Store) Store(ctx context.Context, key string, data []byte) error {
	k, err := s.objectKey(key)
	if err != nil {
		return err
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(k),
		Body:   bytes.NewReader(data),
	})
	if err != nil {
		return fmt.Errorf("put object: %w", err)
	}
	return nil
}

func (s *s3Store) Retrieve(ctx context.Context, key string) ([]byte, error) {
	k, err := s.objectKey(key)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(k),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get object: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read object: %w", err)
	}
	return data, nil
}

func (s *s3Store) Delete(ctx context.Context, key string) error {
	k, err := s.objectKey(key)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(k),
	})
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

func (s *s3Store) Validate(ctx context.Context, key string) (bool, error) {
	k, err := s.objectKey(key)
	if err != nil {
		return false, err
	}

	_, err = s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(k),
	})
	if err != nil {
		var notFound *types.NotFound
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("head object: %w", err)
	}
	return true, nil
}

func (s *s3Store) objectKey(key string) (string, error) {
	cleaned, err := cleanKey(key)
	if err != nil {
		return "", err
	}
	return s.prefix + cleaned, nil
}
