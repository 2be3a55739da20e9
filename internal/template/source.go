// Package template retrieves the blank scorecard workbook.
package template

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/joseph-ayodele/om-scorecard/internal/common"
)

// Source opens a fresh copy of the template for every build. Callers close
// the returned reader.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
	String() string
}

// FileSource reads the template from local disk.
type FileSource struct {
	Path string
}

func (s FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, common.NotFound("template "+s.Path, err)
		}
		return nil, common.Unavailable("template "+s.Path, err)
	}
	return f, nil
}

func (s FileSource) String() string { return s.Path }

// GetObjectAPI is the slice of the S3 client a template download needs.
type GetObjectAPI interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source downloads the template object from a bucket.
type S3Source struct {
	Client GetObjectAPI
	Bucket string
	Key    string
}

// NewS3Source builds an S3 client from the default AWS credential chain.
func NewS3Source(ctx context.Context, region, bucket, key string) (*S3Source, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, common.Unavailable("load aws config", err)
	}
	return &S3Source{Client: s3.NewFromConfig(cfg), Bucket: bucket, Key: key}, nil
}

func (s *S3Source) Open(ctx context.Context) (io.ReadCloser, error) {
	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		return nil, common.Unavailable(fmt.Sprintf("template s3://%s/%s", s.Bucket, s.Key), err)
	}
	return out.Body, nil
}

func (s *S3Source) String() string { return "s3://" + s.Bucket + "/" + s.Key }

// FromConfig picks the local path when set and S3 otherwise.
func FromConfig(ctx context.Context, cfg common.TemplateConfig, logger *slog.Logger) (Source, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Path != "" {
		logger.Info("template.source", "kind", "file", "path", cfg.Path)
		return FileSource{Path: cfg.Path}, nil
	}
	if cfg.S3Bucket == "" || cfg.S3Key == "" {
		return nil, common.InvalidArgument("no template location configured", common.ErrInvalidInput)
	}
	src, err := NewS3Source(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Key)
	if err != nil {
		return nil, err
	}
	logger.Info("template.source", "kind", "s3", "bucket", cfg.S3Bucket, "key", cfg.S3Key)
	return src, nil
}
