package utils

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var s3Client *s3.Client

// InitS3 must be called once at startup when S3-backed catalog import is
// wanted. The client is package-level like the DB handle.
func InitS3() {
	s3Region := os.Getenv("S3_REGION")
	if s3Region == "" {
		s3Region = os.Getenv("AWS_REGION") // fallback
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(s3Region))
	if err != nil {
		log.Fatalf("Unable to load AWS config for S3: %v", err)
	}

	s3Client = s3.NewFromConfig(cfg)
}

// S3Fetcher retrieves objects from one bucket. It satisfies the importer's
// ObjectFetcher interface.
type S3Fetcher struct {
	Bucket string
}

func NewS3Fetcher(bucket string) (*S3Fetcher, error) {
	if s3Client == nil {
		return nil, fmt.Errorf("S3 client not initialized")
	}
	if bucket == "" {
		bucket = os.Getenv("S3_BUCKET")
	}
	if bucket == "" {
		return nil, fmt.Errorf("no S3 bucket configured")
	}
	return &S3Fetcher{Bucket: bucket}, nil
}

func (f *S3Fetcher) Fetch(key string) (io.ReadCloser, error) {
	out, err := s3Client.GetObject(context.TODO(), &s3.GetObjectInput{
		Bucket: aws.String(f.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch s3://%s/%s: %w", f.Bucket, key, err)
	}
	return out.Body, nil
}
