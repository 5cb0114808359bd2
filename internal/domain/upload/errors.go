package upload

import "errors"

var (
	ErrNoFile       = errors.New("no file provided")
	ErrFileTooLarge = errors.New("file exceeds maximum allowed size")
	ErrBadFileType  = errors.New("file type is not allowed")
)
