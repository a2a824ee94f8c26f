// Package storagetest provides an in-memory Storage implementation for
// service and handler tests.
package storagetest

import (
	"context"
	"fmt"
	"sync"

	"github.com/inventory/drive-gateway/internal/apperr"
	"github.com/inventory/drive-gateway/internal/storage"
)

type fakeFile struct {
	name     string
	mimeType string
	parent   string
	data     []byte
}

// Fake is an in-memory Storage. Zero value is not usable; call New.
type Fake struct {
	mu      sync.Mutex
	nextID  int
	folders map[string]string // parentID + "/" + name -> folder id
	files   map[string]*fakeFile

	// ResolveCalls counts ResolveFolder invocations, letting tests assert
	// folder reuse without peeking at internals.
	ResolveCalls int
	// CreatedFolders counts folders actually created by ResolveFolder.
	CreatedFolders int
	// UploadCalls counts Upload invocations, letting tests assert that
	// validation failures never reach the provider.
	UploadCalls int

	// Err, when set, is returned by every operation. Simulates an upstream
	// outage.
	Err error
}

// New creates an empty fake store.
func New() *Fake {
	return &Fake{
		folders: make(map[string]string),
		files:   make(map[string]*fakeFile),
	}
}

func (f *Fake) newID(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func folderKey(name, parentID string) string {
	return parentID + "/" + name
}

// ResolveFolder implements storage.Storage.
func (f *Fake) ResolveFolder(_ context.Context, name, parentID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ResolveCalls++
	if f.Err != nil {
		return "", f.Err
	}
	if id, ok := f.folders[folderKey(name, parentID)]; ok {
		return id, nil
	}
	id := f.newID("folder")
	f.folders[folderKey(name, parentID)] = id
	f.CreatedFolders++
	return id, nil
}

// LookupFolder implements storage.Storage.
func (f *Fake) LookupFolder(_ context.Context, name, parentID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return "", f.Err
	}
	if id, ok := f.folders[folderKey(name, parentID)]; ok {
		return id, nil
	}
	return "", apperr.NotFound("folder %q not found", name)
}

// Upload implements storage.Storage.
func (f *Fake) Upload(_ context.Context, data []byte, filename, mimeType, folderID string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.UploadCalls++
	if f.Err != nil {
		return "", f.Err
	}
	id := f.newID("file")
	f.files[id] = &fakeFile{name: filename, mimeType: mimeType, parent: folderID, data: append([]byte(nil), data...)}
	return id, nil
}

// Replace implements storage.Storage.
func (f *Fake) Replace(_ context.Context, fileID string, data []byte, filename, mimeType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return "", f.Err
	}
	file, ok := f.files[fileID]
	if !ok {
		return "", apperr.NotFound("file %s not found", fileID)
	}
	file.data = append([]byte(nil), data...)
	file.name = filename
	file.mimeType = mimeType
	return fileID, nil
}

// Download implements storage.Storage.
func (f *Fake) Download(_ context.Context, fileID string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	file, ok := f.files[fileID]
	if !ok {
		return nil, apperr.NotFound("file %s not found", fileID)
	}
	return append([]byte(nil), file.data...), nil
}

// Metadata implements storage.Storage.
func (f *Fake) Metadata(_ context.Context, fileID string) (*storage.FileMetadata, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	file, ok := f.files[fileID]
	if !ok {
		return nil, apperr.NotFound("file %s not found", fileID)
	}
	return &storage.FileMetadata{
		ID:       fileID,
		Name:     file.name,
		MimeType: file.mimeType,
		Parents:  []string{file.parent},
	}, nil
}

// Delete implements storage.Storage.
func (f *Fake) Delete(_ context.Context, fileID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return f.Err
	}
	if _, ok := f.files[fileID]; !ok {
		return apperr.NotFound("file %s not found", fileID)
	}
	delete(f.files, fileID)
	return nil
}

// List implements storage.Storage.
func (f *Fake) List(_ context.Context, folderID string) ([]storage.FileInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Err != nil {
		return nil, f.Err
	}
	var out []storage.FileInfo
	for id, file := range f.files {
		if file.parent == folderID {
			out = append(out, storage.FileInfo{ID: id, Name: file.name, MimeType: file.mimeType})
		}
	}
	return out, nil
}

var _ storage.Storage = (*Fake)(nil)
