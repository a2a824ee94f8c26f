// Package product stores product images, one Drive subfolder per product id
// under the global products root.
package product

import (
	"context"

	"github.com/inventory/drive-gateway/internal/apperr"
	"github.com/inventory/drive-gateway/internal/asset"
	"github.com/inventory/drive-gateway/internal/storage"
)

// Service contains the business logic for product images.
type Service struct {
	store       storage.Storage
	rootID      string
	allowedExts []string
}

// NewService creates a product Service under the given products root folder.
func NewService(store storage.Storage, rootID string, allowedExts []string) *Service {
	return &Service{store: store, rootID: rootID, allowedExts: allowedExts}
}

// lookupScope finds the product's subfolder without creating it. By-id
// operations go through here: a product that never stored anything cannot
// own any file id, so a missing folder reads as Forbidden rather than
// minting folders on read paths.
func (s *Service) lookupScope(ctx context.Context, productID string) (string, error) {
	folderID, err := s.store.LookupFolder(ctx, productID, s.rootID)
	if err != nil {
		if apperr.Is(err, apperr.KindNotFound) {
			return "", apperr.Forbidden("file is outside product %s", productID)
		}
		return "", err
	}
	return folderID, nil
}

// checkOwnership verifies the file is parented under the product's folder.
func (s *Service) checkOwnership(ctx context.Context, productID, fileID string) (*storage.FileMetadata, error) {
	folderID, err := s.lookupScope(ctx, productID)
	if err != nil {
		return nil, err
	}
	meta, err := s.store.Metadata(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if err := asset.EnsureParent(meta, folderID); err != nil {
		return nil, err
	}
	return meta, nil
}

// Upload stores a new image in the product's subfolder, creating the
// subfolder on first use.
func (s *Service) Upload(ctx context.Context, productID string, up *asset.Upload) (string, error) {
	if _, err := asset.ValidateExtension(up.Filename, s.allowedExts); err != nil {
		return "", err
	}

	folderID, err := s.store.ResolveFolder(ctx, productID, s.rootID)
	if err != nil {
		return "", err
	}
	return s.store.Upload(ctx, up.Data, up.Filename, up.MimeType, folderID)
}

// List enumerates the images in the product's subfolder.
func (s *Service) List(ctx context.Context, productID string) ([]storage.FileInfo, error) {
	folderID, err := s.store.ResolveFolder(ctx, productID, s.rootID)
	if err != nil {
		return nil, err
	}
	return s.store.List(ctx, folderID)
}

// Replace overwrites an image in place after verifying it belongs to the
// addressed product.
func (s *Service) Replace(ctx context.Context, productID, fileID string, up *asset.Upload) (string, error) {
	if _, err := asset.ValidateExtension(up.Filename, s.allowedExts); err != nil {
		return "", err
	}
	if _, err := s.checkOwnership(ctx, productID, fileID); err != nil {
		return "", err
	}
	return s.store.Replace(ctx, fileID, up.Data, up.Filename, up.MimeType)
}

// Download returns the image bytes and metadata after the ownership check.
func (s *Service) Download(ctx context.Context, productID, fileID string) ([]byte, *storage.FileMetadata, error) {
	meta, err := s.checkOwnership(ctx, productID, fileID)
	if err != nil {
		return nil, nil, err
	}
	data, err := s.store.Download(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}
	return data, meta, nil
}

// Delete permanently removes the image after the ownership check.
func (s *Service) Delete(ctx context.Context, productID, fileID string) error {
	if _, err := s.checkOwnership(ctx, productID, fileID); err != nil {
		return err
	}
	return s.store.Delete(ctx, fileID)
}
