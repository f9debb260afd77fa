package storage

import (
	"context"
	"fmt"
	"net/http"
	"time"

	gcs "cloud.google.com/go/storage"
)

type BlobStorage interface {
	UploadUserImage(ctx context.Context, userID string, data []byte, contentType string) (string, error)
}

type blobRepository struct {
	bucket *gcs.BucketHandle
	urlTTL time.Duration
}

func NewBlobRepository(bucket *gcs.BucketHandle, urlTTL time.Duration) *blobRepository {
	return &blobRepository{bucket: bucket, urlTTL: urlTTL}
}

// UserImagePath возвращает путь объекта с аватаром пользователя в бакете
func UserImagePath(userID string) string {
	return fmt.Sprintf("user_image/%s.jpg", userID)
}

// UploadUserImage загружает аватар в бакет и возвращает подписанный URL на чтение.
// Подпись делается по схеме V2: V4 ограничена семью днями, а ссылка в записи
// пользователя должна жить год.
func (r *blobRepository) UploadUserImage(ctx context.Context, userID string, data []byte, contentType string) (string, error) {
	obj := r.bucket.Object(UserImagePath(userID))

	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to write user image: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to upload user image: %w", err)
	}

	url, err := r.bucket.SignedURL(obj.ObjectName(), &gcs.SignedURLOptions{
		Scheme:  gcs.SigningSchemeV2,
		Method:  http.MethodGet,
		Expires: time.Now().Add(r.urlTTL),
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign user image url: %w", err)
	}
	return url, nil
}
