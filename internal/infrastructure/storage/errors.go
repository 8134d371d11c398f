package storage

import "errors"

// Lỗi phía client (400) - message trả verbatim cho caller
var (
	ErrMissingFile     = errors.New("no image file provided")
	ErrInvalidFileType = errors.New("invalid file type, only JPEG, PNG, and WebP images are allowed")
	ErrFileTooLarge    = errors.New("file size too large, maximum size is 5MB")
	ErrTooManyFiles    = errors.New("too many files, only one file is allowed")
	ErrUnexpectedField = errors.New("unexpected field name, use \"image\" as the field name")
)

// Lỗi phía server (500) - message generic cho caller, detail chỉ log
var (
	ErrImageProcessing = errors.New("failed to process image")
	ErrStorageWrite    = errors.New("failed to store image")
	ErrInvalidFolder   = errors.New("invalid storage folder")
)
