// Package subproduct stores subproduct images in a nested Drive folder
// chain: products root → product id → subproduct id.
package subproduct

import (
	"context"

	"github.com/inventory/drive-gateway/internal/apperr"
	"github.com/inventory/drive-gateway/internal/asset"
	"github.com/inventory/drive-gateway/internal/storage"
)

// Service contains the business logic for subproduct images.
type Service struct {
	store       storage.Storage
	rootID      string
	allowedExts []string
}

// NewService creates a subproduct Service under the given root folder.
func NewService(store storage.Storage, rootID string, allowedExts []string) *Service {
	return &Service{store: store, rootID: rootID, allowedExts: allowedExts}
}

// resolveScope builds the product → subproduct folder chain, creating
// missing folders. Re-resolving the same pair reuses the same two folders.
func (s *Service) resolveScope(ctx context.Context, productID, subproductID string) (string, error) {
	productFolder, err := s.store.ResolveFolder(ctx, productID, s.rootID)
	if err != nil {
		return "", err
	}
	return s.store.ResolveFolder(ctx, subproductID, productFolder)
}

// lookupScope walks the chain without creating anything. A missing link
// means the addressed scope cannot own any file id.
func (s *Service) lookupScope(ctx context.Context, productID, subproductID string) (string, error) {
	productFolder, err := s.store.LookupFolder(ctx, productID, s.rootID)
	if err == nil {
		var folderID string
		if folderID, err = s.store.LookupFolder(ctx, subproductID, productFolder); err == nil {
			return folderID, nil
		}
	}
	if apperr.Is(err, apperr.KindNotFound) {
		return "", apperr.Forbidden("file is outside subproduct %s/%s", productID, subproductID)
	}
	return "", err
}

func (s *Service) checkOwnership(ctx context.Context, productID, subproductID, fileID string) (*storage.FileMetadata, error) {
	folderID, err := s.lookupScope(ctx, productID, subproductID)
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

// Upload stores a new image in the subproduct's nested folder, creating the
// chain on first use.
func (s *Service) Upload(ctx context.Context, productID, subproductID string, up *asset.Upload) (string, error) {
	if _, err := asset.ValidateExtension(up.Filename, s.allowedExts); err != nil {
		return "", err
	}

	folderID, err := s.resolveScope(ctx, productID, subproductID)
	if err != nil {
		return "", err
	}
	return s.store.Upload(ctx, up.Data, up.Filename, up.MimeType, folderID)
}

// List enumerates the images in the subproduct's folder.
func (s *Service) List(ctx context.Context, productID, subproductID string) ([]storage.FileInfo, error) {
	folderID, err := s.resolveScope(ctx, productID, subproductID)
	if err != nil {
		return nil, err
	}
	return s.store.List(ctx, folderID)
}

// Replace overwrites an image in place after verifying it belongs to the
// addressed subproduct.
func (s *Service) Replace(ctx context.Context, productID, subproductID, fileID string, up *asset.Upload) (string, error) {
	if _, err := asset.ValidateExtension(up.Filename, s.allowedExts); err != nil {
		return "", err
	}
	if _, err := s.checkOwnership(ctx, productID, subproductID, fileID); err != nil {
		return "", err
	}
	return s.store.Replace(ctx, fileID, up.Data, up.Filename, up.MimeType)
}

// Download returns the image bytes and metadata after the ownership check.
func (s *Service) Download(ctx context.Context, productID, subproductID, fileID string) ([]byte, *storage.FileMetadata, error) {
	meta, err := s.checkOwnership(ctx, productID, subproductID, fileID)
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
func (s *Service) Delete(ctx context.Context, productID, subproductID, fileID string) error {
	if _, err := s.checkOwnership(ctx, productID, subproductID, fileID); err != nil {
		return err
	}
	return s.store.Delete(ctx, fileID)
}
