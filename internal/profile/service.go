// Package profile stores profile pictures in a single flat Drive folder.
// The stored filename is derived from the caller's subject claim, so one
// caller owns at most one canonical name per extension.
package profile

import (
	"context"

	"github.com/inventory/drive-gateway/internal/apperr"
	"github.com/inventory/drive-gateway/internal/asset"
	"github.com/inventory/drive-gateway/internal/storage"
)

// Service contains the business logic for profile images.
type Service struct {
	store       storage.Storage
	folderID    string
	allowedExts []string
}

// NewService creates a profile Service scoped to the configured flat folder.
func NewService(store storage.Storage, folderID string, allowedExts []string) *Service {
	return &Service{store: store, folderID: folderID, allowedExts: allowedExts}
}

// storedName derives the Drive filename from the subject claim and the
// upload's extension. A token without a subject cannot name a file.
func (s *Service) storedName(subject, filename string) (string, error) {
	if subject == "" {
		return "", apperr.BadRequest("token has no subject claim")
	}
	ext, err := asset.ValidateExtension(filename, s.allowedExts)
	if err != nil {
		return "", err
	}
	return subject + ext, nil
}

// Upload stores a new profile image named <subject>.<ext>.
func (s *Service) Upload(ctx context.Context, subject string, up *asset.Upload) (string, error) {
	name, err := s.storedName(subject, up.Filename)
	if err != nil {
		return "", err
	}
	return s.store.Upload(ctx, up.Data, name, up.MimeType, s.folderID)
}

// Replace overwrites an existing profile image in place. The file must be
// parented under the profile folder.
func (s *Service) Replace(ctx context.Context, subject, fileID string, up *asset.Upload) (string, error) {
	name, err := s.storedName(subject, up.Filename)
	if err != nil {
		return "", err
	}

	meta, err := s.store.Metadata(ctx, fileID)
	if err != nil {
		return "", err
	}
	if err := asset.EnsureParent(meta, s.folderID); err != nil {
		return "", err
	}

	return s.store.Replace(ctx, fileID, up.Data, name, up.MimeType)
}

// Metadata returns the stored file's metadata.
func (s *Service) Metadata(ctx context.Context, fileID string) (*storage.FileMetadata, error) {
	return s.store.Metadata(ctx, fileID)
}

// Download returns the image bytes and metadata. The file must be parented
// under the profile folder.
func (s *Service) Download(ctx context.Context, fileID string) ([]byte, *storage.FileMetadata, error) {
	meta, err := s.store.Metadata(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}
	if err := asset.EnsureParent(meta, s.folderID); err != nil {
		return nil, nil, err
	}

	data, err := s.store.Download(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}
	return data, meta, nil
}

// Delete permanently removes the image. The file must be parented under the
// profile folder.
func (s *Service) Delete(ctx context.Context, fileID string) error {
	meta, err := s.store.Metadata(ctx, fileID)
	if err != nil {
		return err
	}
	if err := asset.EnsureParent(meta, s.folderID); err != nil {
		return err
	}
	return s.store.Delete(ctx, fileID)
}
