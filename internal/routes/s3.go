package routes

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Options configure access to datasets published to S3 or an S3-compatible
// store such as MinIO. Credentials come from the default AWS chain.
type S3Options struct {
	Region    string
	Endpoint  string
	PathStyle bool
}

type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

func openS3(ctx context.Context, u *url.URL, opts Options) (io.ReadCloser, error) {
	bucket := u.Host
	key := strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return nil, fmt.Errorf("s3 source %q needs bucket and key", u.String())
	}

	client := opts.s3
	if client == nil {
		c, err := newS3Client(ctx, opts.S3)
		if err != nil {
			return nil, fmt.Errorf("init s3 client: %w", err)
		}
		client = c
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{Bucket: aws.String(bucket), Key: aws.String(key)})
	if err != nil {
		return nil, fmt.Errorf("get s3://%s/%s: %w", bucket, key, err)
	}
	return out.Body, nil
}

func newS3Client(ctx context.Context, opts S3Options) (*s3.Client, error) {
	region := opts.Region
	if region == "" {
		region = "ap-northeast-1"
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if opts.PathStyle {
			o.UsePathStyle = true
		}
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	}), nil
}
