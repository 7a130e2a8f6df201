package file

import "errors"

var (
	ErrInvalidPath = errors.New("invalid path") // path escapes the base directory

	ErrFileNotFound = errors.New("file not found")
	ErrIsDirectory  = errors.New("path is a directory")
	ErrFileTooLarge = errors.New("file size exceeds maximum allowed size")

	ErrFailedToReadFile        = errors.New("failed to read file")
	ErrFailedToGetAbsolutePath = errors.New("failed to get absolute path")
	ErrFailedToDecode          = errors.New("failed to decode file contents")

	ErrUnknownEncoding = errors.New("unknown encoding")
	ErrInvalidConfig   = errors.New("invalid configuration")
)
