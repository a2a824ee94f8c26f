package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"

	"github.com/inventory/drive-gateway/internal/apperr"
)

const folderMimeType = "application/vnd.google-apps.folder"

// Drive implements Storage against the Google Drive v3 API.
type Drive struct {
	svc *drive.Service
}

// ResolveFolder finds the folder by exact name under parentID, creating it
// when absent. The list-then-create sequence is not atomic against itself:
// concurrent first resolutions of the same (name, parent) pair can both
// create a folder. Duplicates are tolerated, not prevented.
func (d *Drive) ResolveFolder(ctx context.Context, name, parentID string) (string, error) {
	id, err := d.findFolder(ctx, name, parentID)
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}

	created, err := d.svc.Files.Create(&drive.File{
		Name:     name,
		MimeType: folderMimeType,
		Parents:  []string{parentID},
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", classify(err, "create folder %q", name)
	}
	return created.Id, nil
}

// LookupFolder finds the folder by exact name under parentID without
// creating it.
func (d *Drive) LookupFolder(ctx context.Context, name, parentID string) (string, error) {
	id, err := d.findFolder(ctx, name, parentID)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", apperr.NotFound("folder %q not found", name)
	}
	return id, nil
}

func (d *Drive) findFolder(ctx context.Context, name, parentID string) (string, error) {
	query := fmt.Sprintf("name='%s' and '%s' in parents and mimeType='%s' and trashed=false",
		escapeQueryTerm(name), escapeQueryTerm(parentID), folderMimeType)

	result, err := d.svc.Files.List().Q(query).Fields("files(id)").Context(ctx).Do()
	if err != nil {
		return "", classify(err, "search folder %q", name)
	}
	if len(result.Files) == 0 {
		return "", nil
	}
	// First match in provider order; duplicates from the resolver race all
	// stay reachable but only the first is treated as canonical.
	return result.Files[0].Id, nil
}

// Upload creates a new file under folderID and returns the provider id.
func (d *Drive) Upload(ctx context.Context, data []byte, filename, mimeType string, folderID string) (string, error) {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	created, err := d.svc.Files.Create(&drive.File{
		Name:    filename,
		Parents: []string{folderID},
	}).Media(bytes.NewReader(data), googleapi.ContentType(mimeType)).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", classify(err, "upload %q", filename)
	}
	return created.Id, nil
}

// Replace overwrites content and name of an existing file in place.
func (d *Drive) Replace(ctx context.Context, fileID string, data []byte, filename, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	updated, err := d.svc.Files.Update(fileID, &drive.File{
		Name: filename,
	}).Media(bytes.NewReader(data), googleapi.ContentType(mimeType)).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", classify(err, "replace file %s", fileID)
	}
	return updated.Id, nil
}

// Download fetches the full file content into memory before returning.
func (d *Drive) Download(ctx context.Context, fileID string) ([]byte, error) {
	resp, err := d.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, classify(err, "download file %s", fileID)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.Upstream(err, "read file %s", fileID)
	}
	return data, nil
}

// Metadata fetches only the fields the gateway exposes.
func (d *Drive) Metadata(ctx context.Context, fileID string) (*FileMetadata, error) {
	f, err := d.svc.Files.Get(fileID).
		Fields("id, name, mimeType, parents, createdTime, modifiedTime").
		Context(ctx).Do()
	if err != nil {
		return nil, classify(err, "get metadata for file %s", fileID)
	}

	return &FileMetadata{
		ID:           f.Id,
		Name:         f.Name,
		MimeType:     f.MimeType,
		Parents:      f.Parents,
		CreatedTime:  f.CreatedTime,
		ModifiedTime: f.ModifiedTime,
	}, nil
}

// Delete permanently removes the file from the provider.
func (d *Drive) Delete(ctx context.Context, fileID string) error {
	if err := d.svc.Files.Delete(fileID).Context(ctx).Do(); err != nil {
		return classify(err, "delete file %s", fileID)
	}
	return nil
}

// List enumerates non-trashed files parented directly under folderID, in
// whatever order the provider returns.
func (d *Drive) List(ctx context.Context, folderID string) ([]FileInfo, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", escapeQueryTerm(folderID))

	result, err := d.svc.Files.List().Q(query).Spaces("drive").
		Fields("files(id,name,mimeType,createdTime,modifiedTime)").
		Context(ctx).Do()
	if err != nil {
		return nil, classify(err, "list folder %s", folderID)
	}

	files := make([]FileInfo, 0, len(result.Files))
	for _, f := range result.Files {
		files = append(files, FileInfo{
			ID:           f.Id,
			Name:         f.Name,
			MimeType:     f.MimeType,
			CreatedTime:  f.CreatedTime,
			ModifiedTime: f.ModifiedTime,
		})
	}
	return files, nil
}

// escapeQueryTerm escapes backslashes and single quotes for use inside a
// single-quoted Drive query term.
func escapeQueryTerm(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}

// classify maps a provider 404 to KindNotFound and everything else to
// KindUpstream with the upstream message preserved.
func classify(err error, format string, args ...any) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) && gerr.Code == http.StatusNotFound {
		return apperr.Wrap(apperr.KindNotFound, err, format, args...)
	}
	return apperr.Upstream(err, format, args...)
}
