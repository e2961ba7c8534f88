package supabase

import (
	"context"
	"fmt"
	"strings"

	storage "github.com/supabase-community/storage-go"
	"inventory-workflow-backend/internal/models"
)

// StorageClient deletes item images from Supabase Storage. Uploads happen
// in the browser; the backend only ever removes objects.
type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceRoleKey, bucket string) (*StorageClient, error) {
	if supabaseURL == "" || serviceRoleKey == "" {
		return nil, fmt.Errorf("supabase url and key are required for storage")
	}
	baseURL := strings.TrimRight(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

func (s *StorageClient) GetPublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, strings.TrimLeft(storagePath, "/"))
}

// DeleteFile removes one object by its storage path.
func (s *StorageClient) DeleteFile(ctx context.Context, storagePath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.client.RemoveFile(s.bucket, []string{storagePath}); err != nil {
		return fmt.Errorf("failed to delete %s: %w: %v", storagePath, models.ErrStoreUnavailable, err)
	}
	return nil
}
