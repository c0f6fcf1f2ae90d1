package application

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crm-lead-tracker/internal/domain/entity"
	"crm-lead-tracker/internal/domain/repository"
)

type stubClientRepo struct {
	repository.ClientRepository
	owned map[string]bool
}

func (s *stubClientRepo) Exists(ctx context.Context, userID, id string) (bool, error) {
	return s.owned[userID+"/"+id], nil
}

type stubBuyerRepo struct {
	repository.BuyerRepository
	owned map[string]bool
}

func (s *stubBuyerRepo) Exists(ctx context.Context, userID, id string) (bool, error) {
	return s.owned[userID+"/"+id], nil
}

type stubFileRepo struct {
	created []*entity.File
}

func (s *stubFileRepo) Create(ctx context.Context, f *entity.File) error {
	s.created = append(s.created, f)
	return nil
}

func (s *stubFileRepo) ListByOwner(ctx context.Context, userID string) ([]entity.File, error) {
	return nil, nil
}

func (s *stubFileRepo) Delete(ctx context.Context, userID, id string) (*entity.File, error) {
	return nil, repository.ErrNotFound
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestUploadService(clients *stubClientRepo, buyers *stubBuyerRepo) (*UploadService, *stubFileRepo) {
	files := &stubFileRepo{}
	svc := NewUploadService(files, nil, clients, buyers, nil, "", quietLogger())
	return svc, files
}

func TestSaveFile_TooLarge(t *testing.T) {
	svc, files := newTestUploadService(&stubClientRepo{}, &stubBuyerRepo{})

	_, err := svc.SaveFile(context.Background(), "u1", strings.NewReader("x"),
		"big.pdf", "application/pdf", MaxFileSize+1, nil, nil)
	assert.ErrorIs(t, err, ErrFileTooLarge)
	assert.Empty(t, files.created)
}

func TestSaveFile_ForeignClient(t *testing.T) {
	clients := &stubClientRepo{owned: map[string]bool{"owner/c1": true}}
	svc, files := newTestUploadService(clients, &stubBuyerRepo{})

	clientID := "c1"
	_, err := svc.SaveFile(context.Background(), "intruder", strings.NewReader("x"),
		"doc.pdf", "application/pdf", 64, &clientID, nil)
	assert.ErrorIs(t, err, ErrClientNotFound)
	assert.Empty(t, files.created)
}

func TestSaveFile_ForeignBuyer(t *testing.T) {
	svc, files := newTestUploadService(&stubClientRepo{}, &stubBuyerRepo{})

	buyerID := "b1"
	_, err := svc.SaveFile(context.Background(), "u1", strings.NewReader("x"),
		"doc.pdf", "application/pdf", 64, nil, &buyerID)
	assert.ErrorIs(t, err, ErrBuyerNotFound)
	assert.Empty(t, files.created)
}

func TestSaveImage_RejectsNonImage(t *testing.T) {
	clients := &stubClientRepo{owned: map[string]bool{"u1/c1": true}}
	svc, _ := newTestUploadService(clients, &stubBuyerRepo{})

	_, err := svc.SaveImage(context.Background(), "u1", "c1", strings.NewReader("x"),
		"malware.exe", "application/octet-stream", 64)
	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestSaveImage_TooLarge(t *testing.T) {
	clients := &stubClientRepo{owned: map[string]bool{"u1/c1": true}}
	svc, _ := newTestUploadService(clients, &stubBuyerRepo{})

	_, err := svc.SaveImage(context.Background(), "u1", "c1", strings.NewReader("x"),
		"photo.jpg", "image/jpeg", MaxImageSize+1)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestSaveImage_ForeignClient(t *testing.T) {
	clients := &stubClientRepo{owned: map[string]bool{"owner/c1": true}}
	svc, _ := newTestUploadService(clients, &stubBuyerRepo{})

	_, err := svc.SaveImage(context.Background(), "intruder", "c1", strings.NewReader("x"),
		"photo.jpg", "image/jpeg", 64)
	require.ErrorIs(t, err, ErrClientNotFound)
}
