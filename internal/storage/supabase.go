package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	storagego "github.com/supabase-community/storage-go"
)

// SupabaseStore implements ObjectStore against Supabase Storage.
type SupabaseStore struct {
	client *storagego.Client
}

// NewSupabaseStore creates an ObjectStore talking to the storage endpoint of
// the given Supabase project, authenticated with the service role key.
func NewSupabaseStore(projectURL, serviceKey string) *SupabaseStore {
	endpoint := strings.TrimSuffix(projectURL, "/") + "/storage/v1"
	return &SupabaseStore{
		client: storagego.NewClient(endpoint, serviceKey, nil),
	}
}

// Upload stores the file under bucket/path and returns its public URL. The
// client applies its own request timeout; ctx is accepted to satisfy
// ObjectStore but the underlying SDK does not take one.
func (s *SupabaseStore) Upload(_ context.Context, bucket, path, contentType string, data io.Reader) (string, error) {
	opts := storagego.FileOptions{ContentType: &contentType}
	if _, err := s.client.UploadFile(bucket, path, data, opts); err != nil {
		return "", fmt.Errorf("uploading %s/%s: %w", bucket, path, err)
	}

	return s.client.GetPublicUrl(bucket, path).SignedURL, nil
}
