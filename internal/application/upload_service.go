package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"crm-lead-tracker/internal/domain/entity"
	"crm-lead-tracker/internal/domain/repository"
	"crm-lead-tracker/pkg/helpers"
)

// Upload limits, matching the original product behavior.
const (
	MaxFileSize  = 10 << 20 // 10 MB
	MaxImageSize = 5 << 20  // 5 MB
)

var (
	ErrFileTooLarge = errors.New("file too large")
	ErrNotAnImage   = errors.New("file must be an image")
)

// UploadService stores attachment bytes in GCS and their metadata rows in
// Postgres. Object paths embed the owner (or owning client), never the
// original filename.
type UploadService struct {
	Files   repository.FileRepository
	Images  repository.ImageRepository
	Clients repository.ClientRepository
	Buyers  repository.BuyerRepository
	GCS     *storage.Client
	Bucket  string
	Logger  *logrus.Logger
}

func NewUploadService(files repository.FileRepository, images repository.ImageRepository, clients repository.ClientRepository, buyers repository.BuyerRepository, gcs *storage.Client, bucket string, logger *logrus.Logger) *UploadService {
	return &UploadService{Files: files, Images: images, Clients: clients, Buyers: buyers, GCS: gcs, Bucket: bucket, Logger: logger}
}

// SaveFile uploads a general attachment owned by userID. Optional client and
// buyer associations are validated against the same owner before the write.
func (s *UploadService) SaveFile(ctx context.Context, userID string, r io.Reader, filename, contentType string, size int64, clientID, buyerID *string) (*entity.File, error) {
	if size > MaxFileSize {
		return nil, ErrFileTooLarge
	}
	if clientID != nil {
		ok, err := s.Clients.Exists(ctx, userID, *clientID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrClientNotFound
		}
	}
	if buyerID != nil {
		ok, err := s.Buyers.Exists(ctx, userID, *buyerID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrBuyerNotFound
		}
	}
	url, err := s.upload(ctx, "files/"+userID, r, filename, contentType)
	if err != nil {
		return nil, err
	}
	f := &entity.File{
		UserID:   userID,
		Filename: filename,
		URL:      url,
		Size:     size,
		MimeType: contentType,
		ClientID: clientID,
		BuyerID:  buyerID,
	}
	if err := s.Files.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *UploadService) ListFiles(ctx context.Context, userID string) ([]entity.File, error) {
	return s.Files.ListByOwner(ctx, userID)
}

// DeleteFile removes the metadata row, then the stored object. Object
// cleanup is best-effort: the row is the source of truth.
func (s *UploadService) DeleteFile(ctx context.Context, userID, id string) error {
	f, err := s.Files.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if s.GCS != nil && s.Bucket != "" {
		if obj, ok := objectPathFromURL(s.Bucket, f.URL); ok {
			if derr := helpers.DeleteObject(ctx, s.GCS, s.Bucket, obj); derr != nil && s.Logger != nil {
				s.Logger.WithError(derr).WithField("file_id", f.ID).Warn("object delete failed")
			}
		}
	}
	return nil
}

// SaveImage uploads a picture for one of the caller's clients. Ownership of
// the client gates the whole operation.
func (s *UploadService) SaveImage(ctx context.Context, userID, clientID string, r io.Reader, filename, contentType string, size int64) (*entity.Image, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrNotAnImage
	}
	if size > MaxImageSize {
		return nil, ErrFileTooLarge
	}
	ok, err := s.Clients.Exists(ctx, userID, clientID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrClientNotFound
	}
	url, err := s.upload(ctx, "images/"+clientID, r, filename, contentType)
	if err != nil {
		return nil, err
	}
	img := &entity.Image{
		ClientID: clientID,
		Filename: filename,
		URL:      url,
		Size:     size,
		MimeType: contentType,
	}
	if err := s.Images.Create(ctx, img); err != nil {
		return nil, err
	}
	return img, nil
}

func (s *UploadService) ListImages(ctx context.Context, userID string) ([]entity.Image, error) {
	return s.Images.ListByOwner(ctx, userID)
}

func (s *UploadService) upload(ctx context.Context, prefix string, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.Bucket == "" {
		return "", errors.New("object storage not configured")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := prefix + "/" + uuid.NewString() + ext
	return helpers.UploadObject(ctx, s.GCS, s.Bucket, objectPath, contentType, r)
}

func objectPathFromURL(bucket, url string) (string, bool) {
	prefix := "https://storage.googleapis.com/" + bucket + "/"
	if strings.HasPrefix(url, prefix) {
		return strings.TrimPrefix(url, prefix), true
	}
	return "", false
}
