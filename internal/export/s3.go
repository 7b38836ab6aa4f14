// Package export uploads session transcripts to S3-compatible object storage.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/mockinterview/internal/common"
	appconfig "github.com/dmitrijs2005/mockinterview/internal/config"
	"github.com/dmitrijs2005/mockinterview/internal/logging"
	"github.com/dmitrijs2005/mockinterview/internal/models"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newObjectID = uuid.NewString
)

// Uploader is the subset of *s3.Client used for export.
type Uploader interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Exporter struct {
	client Uploader
	bucket string
	logger logging.Logger
	now    func() time.Time
}

// NewS3Exporter builds an exporter from config. Without a bucket it returns
// common.ErrExportDisabled.
func NewS3Exporter(ctx context.Context, cfg *appconfig.Config, logger logging.Logger) (*S3Exporter, error) {
	if !cfg.ExportEnabled() {
		return nil, common.ErrExportDisabled
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.S3Region)}
	if cfg.S3AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3BaseEndpoint)
			// MinIO and friends
			o.UsePathStyle = true
		}
	})

	return NewExporter(client, cfg.S3Bucket, logger), nil
}

// NewExporter wraps an existing client.
func NewExporter(client Uploader, bucket string, logger logging.Logger) *S3Exporter {
	return &S3Exporter{client: client, bucket: bucket, logger: logger, now: time.Now}
}

// Export writes the transcript of g and returns the object key.
func (e *S3Exporter) Export(ctx context.Context, userName string, g *models.SessionGroup) (string, error) {
	body, err := json.MarshalIndent(NewTranscript(userName, g, e.now().UTC()), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode transcript: %w", err)
	}

	// Usernames may contain '/', keep each user under a single prefix segment.
	key := fmt.Sprintf("transcripts/%s/session-%d-%s.json", url.PathEscape(userName), g.SessionID, newObjectID())

	_, err = e.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		e.logger.Error(ctx, "transcript upload failed", "session_id", g.SessionID, "error", err)
		return "", fmt.Errorf("upload transcript: %w", err)
	}

	e.logger.Info(ctx, "transcript exported", "session_id", g.SessionID, "key", key)
	return key, nil
}
