package services

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/AliEmadEldin/SpaceCourseSystem/config"
)

var (
	ErrInvalidFileType = errors.New("Invalid file type")
	ErrFileTooLarge    = errors.New("File too large")
)

// MaxUploadSize caps course content uploads at 100MB.
const MaxUploadSize = 100 * 1024 * 1024

var allowedContentTypes = []string{
	"application/pdf",
	"video/mp4",
	"video/webm",
	"image/jpeg",
	"image/png",
}

// ValidateUpload checks size and sniffs the actual content type, returning the
// detected MIME type. The client-declared Content-Type is not trusted.
func ValidateUpload(data []byte, size int64) (string, error) {
	if size > MaxUploadSize {
		return "", ErrFileTooLarge
	}
	detected := mimetype.Detect(data)
	for _, allowed := range allowedContentTypes {
		if detected.Is(allowed) {
			return allowed, nil
		}
	}
	return "", ErrInvalidFileType
}

// ObjectKey builds a collision-free storage key for a course upload.
func ObjectKey(courseID uint, filename string) string {
	return fmt.Sprintf("courses/%d/%s%s", courseID, uuid.NewString(), filepath.Ext(filename))
}

// ObjectStorage stores uploaded course content and returns a public URL.
type ObjectStorage interface {
	Upload(key, contentType string, data []byte) (string, error)
}

// NewObjectStorage picks the implementation from STORAGE_DRIVER.
func NewObjectStorage() ObjectStorage {
	if config.AppConfig.StorageDriver == "s3" {
		return NewS3Storage()
	}
	return NewLocalStorage(config.AppConfig.UploadDir)
}

// S3Storage talks to an S3-compatible HTTP gateway.
type S3Storage struct {
	client    *resty.Client
	bucket    string
	publicURL string
}

func NewS3Storage() *S3Storage {
	client := resty.New().
		SetBaseURL(config.AppConfig.StorageEndpoint).
		SetAuthToken(config.AppConfig.StorageAccessKey).
		SetTimeout(30 * time.Second)

	return &S3Storage{
		client:    client,
		bucket:    config.AppConfig.StorageBucket,
		publicURL: config.AppConfig.StoragePublicURL,
	}
}

func (s *S3Storage) Upload(key, contentType string, data []byte) (string, error) {
	resp, err := s.client.R().
		SetHeader("Content-Type", contentType).
		SetBody(data).
		Put(fmt.Sprintf("/%s/%s", s.bucket, key))
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("object storage returned %s", resp.Status())
	}
	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key), nil
}

// LocalStorage writes uploads to disk; files are served from /uploads.
type LocalStorage struct {
	dir string
}

func NewLocalStorage(dir string) *LocalStorage {
	return &LocalStorage{dir: dir}
}

func (s *LocalStorage) Upload(key, contentType string, data []byte) (string, error) {
	path := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return "/uploads/" + key, nil
}
