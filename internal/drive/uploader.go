// Package drive uploads generated PDFs to Google Drive and returns the
// shareable link.
package drive

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const pdfMimeType = "application/pdf"

// FileMetadata describes the file to create
type FileMetadata struct {
	Filename    string
	Description string
	FolderID    string // empty uploads to the Drive root
}

// UploadResult is the outcome of a successful upload
type UploadResult struct {
	FileID      string
	WebViewLink string
	Filename    string
	UploadedAt  time.Time
}

// Uploader stores PDF bytes and returns a file identifier plus link
type Uploader interface {
	Upload(ctx context.Context, pdf []byte, meta FileMetadata) (*UploadResult, error)
}

// StorageError reports a failed Drive operation. Details carries the
// provider response for diagnostics and is never shown verbatim to callers.
type StorageError struct {
	Code    string
	Message string
	Details string
}

func (e *StorageError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func storageError(message string, err error) *StorageError {
	serr := &StorageError{
		Code:    "DRIVE_UPLOAD_ERROR",
		Message: message,
	}
	if err != nil {
		serr.Details = err.Error()
	}
	return serr
}

// DriveUploader implements Uploader on the Drive v3 API using Application
// Default Credentials with the drive.file scope.
type DriveUploader struct {
	service   *drive.Service
	shareLink bool
	logger    *zap.Logger
}

// NewDriveUploader creates a DriveUploader. shareLink controls whether
// uploaded files are opened to anyone-with-the-link readers so the returned
// webViewLink works outside the service account's own Drive.
func NewDriveUploader(ctx context.Context, shareLink bool, logger *zap.Logger) (*DriveUploader, error) {
	service, err := drive.NewService(ctx, option.WithScopes(drive.DriveFileScope))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive client: %w", err)
	}

	return &DriveUploader{
		service:   service,
		shareLink: shareLink,
		logger:    logger,
	}, nil
}

// Upload creates the PDF file, optionally inside the destination folder,
// and grants read access for sharing.
func (u *DriveUploader) Upload(ctx context.Context, pdf []byte, meta FileMetadata) (*UploadResult, error) {
	file := &drive.File{
		Name:        meta.Filename,
		Description: meta.Description,
		MimeType:    pdfMimeType,
	}
	if meta.FolderID != "" {
		file.Parents = []string{meta.FolderID}
	}

	created, err := u.service.Files.Create(file).
		Media(bytes.NewReader(pdf), googleapi.ContentType(pdfMimeType)).
		Fields("id", "webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		u.logger.Error("Drive upload failed",
			zap.String("filename", meta.Filename),
			zap.Error(err))
		return nil, storageError("failed to upload file", err)
	}

	if created.Id == "" || created.WebViewLink == "" {
		return nil, storageError("upload response missing file id or link", nil)
	}

	if u.shareLink {
		permission := &drive.Permission{
			Role: "reader",
			Type: "anyone",
		}
		if _, err := u.service.Permissions.Create(created.Id, permission).Context(ctx).Do(); err != nil {
			u.logger.Error("Drive permission update failed",
				zap.String("file_id", created.Id),
				zap.Error(err))
			return nil, storageError("failed to set file permissions", err)
		}
	}

	u.logger.Info("PDF uploaded to Drive",
		zap.String("file_id", created.Id),
		zap.String("filename", meta.Filename),
		zap.String("folder_id", meta.FolderID),
		zap.Int("size_bytes", len(pdf)))

	return &UploadResult{
		FileID:      created.Id,
		WebViewLink: created.WebViewLink,
		Filename:    meta.Filename,
		UploadedAt:  time.Now().UTC(),
	}, nil
}
