// Package storage uploads submitted reports and archival PDFs and returns
// their public URLs.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Object prefixes.
const (
	PrefixReports  = "reports"
	PrefixArticles = "articles"
)

// Store uploads bytes and returns a public URL.
type Store interface {
	Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error)
}

// ObjectPath returns a collision-free object name under prefix that keeps the
// original file extension.
func ObjectPath(prefix, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	name := fmt.Sprintf("%s_%d%s", uuid.NewString(), time.Now().UnixMilli(), ext)
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// LocalStore writes objects below a directory and serves them from BaseURL.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore creates dir if needed.
func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Dir returns the root directory, used to serve files over HTTP.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Upload writes data atomically under the store directory.
func (s *LocalStore) Upload(ctx context.Context, objectPath string, data []byte, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	clean := path.Clean("/" + objectPath)[1:]
	if clean == "" {
		return "", fmt.Errorf("invalid object path %q", objectPath)
	}

	target := filepath.Join(s.dir, filepath.FromSlash(clean))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("create object dir: %w", err)
	}
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return "", fmt.Errorf("write object: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("finalize object: %w", err)
	}
	return s.baseURL + "/" + clean, nil
}

// SupabaseConfig configures SupabaseStore.
type SupabaseConfig struct {
	URL     string
	Key     string
	Bucket  string
	Timeout time.Duration
}

// SupabaseStore uploads to a Supabase Storage bucket over its REST API.
type SupabaseStore struct {
	baseURL string
	key     string
	bucket  string
	client  *http.Client
}

// NewSupabaseStore creates a SupabaseStore.
func NewSupabaseStore(cfg SupabaseConfig) (*SupabaseStore, error) {
	if cfg.URL == "" || cfg.Key == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("supabase storage requires url, key and bucket")
	}
	if _, err := url.Parse(cfg.URL); err != nil {
		return nil, fmt.Errorf("parse supabase url: %w", err)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &SupabaseStore{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		key:     cfg.Key,
		bucket:  cfg.Bucket,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// Upload stores the object and returns its public URL.
func (s *SupabaseStore) Upload(ctx context.Context, objectPath string, data []byte, contentType string) (string, error) {
	objectPath = strings.TrimLeft(objectPath, "/")
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, s.bucket, objectPath)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+s.key)
	req.Header.Set("apikey", s.key)
	req.Header.Set("x-upsert", "false")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload object: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("supabase storage error: %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}
	return s.PublicURL(objectPath), nil
}

// PublicURL is the public download URL of objectPath.
func (s *SupabaseStore) PublicURL(objectPath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, strings.TrimLeft(objectPath, "/"))
}
