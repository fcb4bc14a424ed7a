package config

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// StorageConfig drives the tenant storage router. An empty RemoteEndpoint
// disables the remote backend entirely; the router then serves everything
// from the local root. Missing remote configuration must never crash the
// process.
type StorageConfig struct {
	RemoteEndpoint  string
	ContainerPrefix string
	LocalRoot       string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// DefaultStorageConfig returns storage configuration from environment variables
func DefaultStorageConfig() *StorageConfig {
	return &StorageConfig{
		RemoteEndpoint:  getEnvWithDefault("STORAGE_REMOTE_ENDPOINT", ""),
		ContainerPrefix: getEnvWithDefault("STORAGE_CONTAINER_PREFIX", "complyhub"),
		LocalRoot:       getEnvWithDefault("STORAGE_LOCAL_ROOT", "/var/lib/complyhub/files"),
		Region:          getEnvWithDefault("AWS_REGION", "us-east-1"),
		AccessKeyID:     getEnvWithDefault("AWS_ACCESS_KEY_ID", "dummy"),
		SecretAccessKey: getEnvWithDefault("AWS_SECRET_ACCESS_KEY", "dummy"),
	}
}

// RemoteEnabled reports whether a remote object-storage backend is
// configured at all.
func (c *StorageConfig) RemoteEnabled() bool {
	return c.RemoteEndpoint != ""
}

// GetClient creates an S3 client against the configured endpoint. Only
// called when RemoteEnabled; the endpoint is a LocalStack/MinIO emulator in
// development and a real S3-compatible endpoint in production.
func (c *StorageConfig) GetClient(ctx context.Context) (*s3.Client, error) {
	var options []func(*awsconfig.LoadOptions) error
	options = append(options, awsconfig.WithRegion(c.Region))

	customResolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, opts ...interface{}) (aws.Endpoint, error) {
		if service == s3.ServiceID {
			return aws.Endpoint{
				PartitionID:   "aws",
				URL:           c.RemoteEndpoint,
				SigningRegion: c.Region,
			}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	})
	options = append(options, awsconfig.WithEndpointResolverWithOptions(customResolver))
	options = append(options, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
		c.AccessKeyID,
		c.SecretAccessKey,
		"",
	)))

	cfg, err := awsconfig.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return nil, err
	}

	// Path-style addressing; bucket-per-tenant names are not DNS-safe
	// against emulator endpoints otherwise.
	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	return s3Client, nil
}
