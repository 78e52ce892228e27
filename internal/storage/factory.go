package storage

import (
	"context"
	"fmt"
)

// DeploymentMode represents the deployment environment
type DeploymentMode string

const (
	DeploymentLocal DeploymentMode = "local"
	DeploymentGCS   DeploymentMode = "gcs"
)

// NewStorageClient creates a storage client for the given deployment mode.
// localDir is the reports directory for local mode, bucket the GCS bucket
// name for gcs mode.
func NewStorageClient(ctx context.Context, mode DeploymentMode, localDir, bucket string) (StorageClient, error) {
	switch mode {
	case DeploymentLocal:
		if localDir == "" {
			localDir = "reports"
		}

		localClient, err := NewLocalStorageClient(localDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage client: %w", err)
		}
		return localClient, nil

	case DeploymentGCS:
		gcsClient, err := NewGCSClient(ctx, bucket)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize GCS client: %w", err)
		}
		return gcsClient, nil

	default:
		return nil, fmt.Errorf("unsupported deployment mode: %s", mode)
	}
}
