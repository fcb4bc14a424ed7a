package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/complyhub/complyhub-api/internal/config"
	"github.com/complyhub/complyhub-api/internal/tenantctx"
	"github.com/complyhub/complyhub-api/pkg/logger"
)

var (
	// ErrFileNotFound means the file is confirmed absent on every backend
	// that was reachable.
	ErrFileNotFound = errors.New("file not found on any backend")
	// ErrRemoteUnavailable means the remote backend could not be reached.
	ErrRemoteUnavailable = errors.New("remote storage backend unreachable")
	// ErrInvalidPath means the logical path would resolve outside the
	// tenant's container.
	ErrInvalidPath = errors.New("logical path escapes container")
)

const (
	sharedContainerSuffix = "shared"
	remoteProbeTimeout    = 2 * time.Second
)

// Router maps a logical file path plus the active tenant onto a physically
// isolated storage location, one container per tenant. It prefers the
// remote object-storage backend and falls back to a local on-disk tree
// namespaced by the same container name when the remote is unreachable or
// not configured. The two backends are best-effort, not replicated.
type Router struct {
	cfg    *config.StorageConfig
	logger *logger.Logger

	clientOnce sync.Once
	client     *s3.Client
	clientErr  error

	containers sync.Map // container name -> struct{}, provisioned this process
}

func NewRouter(cfg *config.StorageConfig, logger *logger.Logger) *Router {
	return &Router{
		cfg:    cfg,
		logger: logger,
	}
}

// Container derives the storage namespace for the current request. Callers
// outside request scope (batch jobs, administrative commands) get the
// shared container, not an error.
func (r *Router) Container(ctx context.Context) string {
	if tenant, ok := tenantctx.FromContext(ctx); ok {
		return r.cfg.ContainerPrefix + "-" + tenant.Slug
	}
	return r.cfg.ContainerPrefix + "-" + sharedContainerSuffix
}

// cleanLogicalPath canonicalizes a caller-supplied logical path. Paths
// whose cleaned form is absolute, empty, or climbs above the container
// root are rejected with ErrInvalidPath: the container is the isolation
// boundary, and filepath.Join would otherwise collapse the traversal into
// a sibling tenant's tree.
func cleanLogicalPath(logicalPath string) (string, error) {
	cleaned := path.Clean(logicalPath)
	if cleaned == "." || cleaned == ".." ||
		strings.HasPrefix(cleaned, "/") || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, logicalPath)
	}
	return cleaned, nil
}

// Save writes content under the active tenant's container and returns the
// stored path. Remote failure degrades to the local fallback; only a
// failure of the fallback itself surfaces to the caller.
func (r *Router) Save(ctx context.Context, logicalPath string, content []byte) (string, error) {
	logicalPath, err := cleanLogicalPath(logicalPath)
	if err != nil {
		return "", err
	}
	container := r.Container(ctx)

	if client, err := r.remote(ctx); err == nil {
		if err := r.ensureContainer(ctx, client, container); err == nil {
			_, putErr := client.PutObject(ctx, &s3.PutObjectInput{
				Bucket: aws.String(container),
				Key:    aws.String(logicalPath),
				Body:   bytes.NewReader(content),
			})
			if putErr == nil {
				return fmt.Sprintf("s3://%s/%s", container, logicalPath), nil
			}
			r.logger.Warnf("remote write failed for %s/%s, falling back to local: %v", container, logicalPath, putErr)
		} else {
			r.logger.Warnf("container provisioning failed for %s, falling back to local: %v", container, err)
		}
	} else if r.cfg.RemoteEnabled() {
		r.logger.Warnf("remote backend unreachable, falling back to local: %v", err)
	}

	return r.saveLocal(container, logicalPath, content)
}

// Open reads a file, remote first, local fallback. ErrFileNotFound means
// the file is absent everywhere that answered.
func (r *Router) Open(ctx context.Context, logicalPath string) ([]byte, error) {
	logicalPath, err := cleanLogicalPath(logicalPath)
	if err != nil {
		return nil, err
	}
	container := r.Container(ctx)

	if client, err := r.remote(ctx); err == nil {
		out, getErr := client.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(container),
			Key:    aws.String(logicalPath),
		})
		if getErr == nil {
			defer out.Body.Close()
			return io.ReadAll(out.Body)
		}
		if !isRemoteNotFound(getErr) {
			r.logger.Warnf("remote read failed for %s/%s, trying local: %v", container, logicalPath, getErr)
		}
	}

	data, err := os.ReadFile(r.localPath(container, logicalPath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}
	return data, nil
}

// Exists checks both backends, remote first.
func (r *Router) Exists(ctx context.Context, logicalPath string) (bool, error) {
	logicalPath, err := cleanLogicalPath(logicalPath)
	if err != nil {
		return false, err
	}
	container := r.Container(ctx)

	if client, err := r.remote(ctx); err == nil {
		_, headErr := client.HeadObject(ctx, &s3.HeadObjectInput{
			Bucket: aws.String(container),
			Key:    aws.String(logicalPath),
		})
		if headErr == nil {
			return true, nil
		}
		if !isRemoteNotFound(headErr) {
			r.logger.Warnf("remote existence check failed for %s/%s, trying local: %v", container, logicalPath, headErr)
		}
	}

	_, err = os.Stat(r.localPath(container, logicalPath))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Size returns the stored byte size, remote first.
func (r *Router) Size(ctx context.Context, logicalPath string) (int64, error) {
	logicalPath, err := cleanLogicalPath(logicalPath)
	if err != nil {
		return 0, err
	}
	container := r.Container(ctx)

	if client, err := r.remote(ctx); err == nil {
		out, headErr := client.HeadObject(ctx, &s3.HeadObjectInput{
			Bucket: aws.String(container),
			Key:    aws.String(logicalPath),
		})
		if headErr == nil {
			return aws.ToInt64(out.ContentLength), nil
		}
		if !isRemoteNotFound(headErr) {
			r.logger.Warnf("remote size check failed for %s/%s, trying local: %v", container, logicalPath, headErr)
		}
	}

	info, err := os.Stat(r.localPath(container, logicalPath))
	if err != nil {
		if os.IsNotExist(err) {
			return 0, ErrFileNotFound
		}
		return 0, err
	}
	return info.Size(), nil
}

// Delete removes the file from whichever backends hold it. Absence on both
// is ErrFileNotFound.
func (r *Router) Delete(ctx context.Context, logicalPath string) error {
	logicalPath, err := cleanLogicalPath(logicalPath)
	if err != nil {
		return err
	}
	container := r.Container(ctx)
	deleted := false

	if client, err := r.remote(ctx); err == nil {
		_, headErr := client.HeadObject(ctx, &s3.HeadObjectInput{
			Bucket: aws.String(container),
			Key:    aws.String(logicalPath),
		})
		if headErr == nil {
			if _, delErr := client.DeleteObject(ctx, &s3.DeleteObjectInput{
				Bucket: aws.String(container),
				Key:    aws.String(logicalPath),
			}); delErr != nil {
				return delErr
			}
			deleted = true
		}
	}

	err = os.Remove(r.localPath(container, logicalPath))
	if err == nil {
		deleted = true
	} else if !os.IsNotExist(err) {
		return err
	}

	if !deleted {
		return ErrFileNotFound
	}
	return nil
}

// URL derives the public address for a logical path. Pure: no I/O, no
// existence check, only the container name and the configured endpoint.
// The path is re-rooted under the container so the address never names a
// sibling container.
func (r *Router) URL(ctx context.Context, logicalPath string) string {
	logicalPath = strings.TrimPrefix(path.Clean("/"+logicalPath), "/")
	container := r.Container(ctx)

	if r.cfg.RemoteEnabled() {
		// Emulator and S3-compatible endpoints use path-style addressing.
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(r.cfg.RemoteEndpoint, "/"), container, logicalPath)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", container, r.cfg.Region, logicalPath)
}

// remote returns the lazily constructed S3 client after a reachability
// probe. Construction happens at most once per process even under
// concurrent first use.
func (r *Router) remote(ctx context.Context) (*s3.Client, error) {
	if !r.cfg.RemoteEnabled() {
		return nil, ErrRemoteUnavailable
	}

	r.clientOnce.Do(func() {
		r.client, r.clientErr = r.cfg.GetClient(ctx)
	})
	if r.clientErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, r.clientErr)
	}

	probeCtx, cancel := context.WithTimeout(ctx, remoteProbeTimeout)
	defer cancel()
	if _, err := r.client.ListBuckets(probeCtx, &s3.ListBucketsInput{}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteUnavailable, err)
	}

	return r.client, nil
}

// ensureContainer lazily creates the bucket on first write.
func (r *Router) ensureContainer(ctx context.Context, client *s3.Client, container string) error {
	if _, ok := r.containers.Load(container); ok {
		return nil
	}

	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(container)})
	if err != nil {
		var notFound *types.NotFound
		if !errors.As(err, &notFound) {
			return err
		}
		if _, err := client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(container)}); err != nil {
			return err
		}
		r.logger.Infof("provisioned storage container %s", container)
	}

	r.containers.Store(container, struct{}{})
	return nil
}

func (r *Router) saveLocal(container, logicalPath string, content []byte) (string, error) {
	path := r.localPath(container, logicalPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to prepare local fallback dir: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("failed to write local fallback file: %w", err)
	}
	return path, nil
}

func (r *Router) localPath(container, logicalPath string) string {
	return filepath.Join(r.cfg.LocalRoot, container, filepath.FromSlash(logicalPath))
}

func isRemoteNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	var noSuchBucket *types.NoSuchBucket
	var notFound *types.NotFound
	return errors.As(err, &noSuchKey) || errors.As(err, &noSuchBucket) || errors.As(err, &notFound)
}
