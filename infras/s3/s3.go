// Package s3 stores archived documents in an S3-compatible bucket. Objects are addressed
// by key inside the configured bucket and exposed through the public domain.
package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"hotelpos/config"
	"hotelpos/infras/otel"
	"hotelpos/shared/constant"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrKey    = "key"
	otelAttrBucket = "bucket"
	otelAttrSize   = "size"
	region         = "auto"
)

type S3 interface {
	Put(ctx context.Context, key, contentType string, body []byte) (url string, err error)
	Exists(ctx context.Context, key string) (bool, error)
	URL(key string) string
}

type s3Impl struct {
	client *s3.Client
	bucket string
	domain string
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) S3 {
	settings := cfg.External.S3

	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithRegion(region),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(settings.AccessKeyID, settings.SecretAccessKey, "")),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to load AWS configuration")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if settings.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(settings.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	return &s3Impl{
		client: client,
		bucket: settings.BucketName,
		domain: strings.TrimSuffix(settings.PublicDomain, "/"),
		otel:   otel,
	}
}

func (svc *s3Impl) newScope(ctx context.Context, op, key string) (context.Context, otel.Scope) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+"."+op)
	scope.SetAttributes(map[string]any{
		otelAttrKey:    key,
		otelAttrBucket: svc.bucket,
	})

	return ctx, scope
}

// URL is the public address of key. Without a public domain it is the bare key.
func (svc *s3Impl) URL(key string) string {
	if svc.domain == "" {
		return key
	}

	return svc.domain + "/" + strings.TrimPrefix(key, "/")
}

// Put uploads body under key, replacing any object already stored there.
func (svc *s3Impl) Put(ctx context.Context, key, contentType string, body []byte) (url string, err error) {
	ctx, scope := svc.newScope(ctx, "Put", key)
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrSize, len(body))

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(svc.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload object")

		return constant.Empty, fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return svc.URL(key), nil
}

func (svc *s3Impl) Exists(ctx context.Context, key string) (exists bool, err error) {
	ctx, scope := svc.newScope(ctx, "Exists", key)
	defer scope.End()
	defer scope.TraceIfError(err)

	_, err = svc.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(svc.bucket),
		Key:    aws.String(key),
	})

	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return false, nil
	}

	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to stat object")

		return false, fmt.Errorf("failed to stat %s: %w", key, err)
	}

	return true, nil
}
