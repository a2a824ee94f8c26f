// Package storage defines the interface for remote file-storage operations.
// The concrete type injected at startup talks to Google Drive; tests inject
// the in-memory fake from storagetest. The provider owns the authoritative
// copy of every file — this package holds no cache.
package storage

import "context"

// FileMetadata describes a stored file, including the folders it is
// parented under (normally exactly one).
type FileMetadata struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	MimeType     string   `json:"mime_type"`
	Parents      []string `json:"parents"`
	CreatedTime  string   `json:"created_time,omitempty"`
	ModifiedTime string   `json:"modified_time,omitempty"`
}

// FileInfo is a listing entry for one direct child of a folder.
type FileInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MimeType     string `json:"mime_type"`
	CreatedTime  string `json:"created_time"`
	ModifiedTime string `json:"modified_time"`
}

// Storage is the narrow capability interface the asset services depend on.
type Storage interface {
	// ResolveFolder returns the id of the non-trashed folder named name
	// under parentID, creating it when absent. Two concurrent first
	// resolutions of the same pair may both create a folder; the first
	// query match wins on later calls and duplicates are tolerated.
	ResolveFolder(ctx context.Context, name, parentID string) (string, error)

	// LookupFolder is the read-only variant of ResolveFolder. It reports
	// apperr.KindNotFound instead of creating the folder.
	LookupFolder(ctx context.Context, name, parentID string) (string, error)

	// Upload stores data as a new file under folderID and returns its id.
	// Uploading the same name twice creates two distinct files.
	Upload(ctx context.Context, data []byte, filename, mimeType, folderID string) (string, error)

	// Replace overwrites the content and name of an existing file in place.
	// The returned id is normally unchanged; callers must not assume a new
	// one is issued.
	Replace(ctx context.Context, fileID string, data []byte, filename, mimeType string) (string, error)

	// Download returns the full file content, buffered in memory.
	Download(ctx context.Context, fileID string) ([]byte, error)

	// Metadata fetches id, name, mime type, parents, and timestamps.
	Metadata(ctx context.Context, fileID string) (*FileMetadata, error)

	// Delete permanently removes the file. No trash semantics.
	Delete(ctx context.Context, fileID string) error

	// List enumerates the non-trashed direct children of folderID in
	// provider order, freshly computed per call.
	List(ctx context.Context, folderID string) ([]FileInfo, error)
}
