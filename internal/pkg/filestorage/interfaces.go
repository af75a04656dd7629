package filestorage

import (
	"mime/multipart"
)

// FileStorage defines the interface for file storage operations
type FileStorage interface {
	// SaveFileWithPath saves a file into a subdirectory and returns the
	// accessible path for it
	SaveFileWithPath(fileHeader *multipart.FileHeader, subPath string) (string, error)

	// DeleteFile removes a previously stored file; deleting a missing file
	// is not an error
	DeleteFile(filePath string) error
}
