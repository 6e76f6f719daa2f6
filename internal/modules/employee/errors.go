package employee

import "errors"

var (
	ErrValidation = errors.New("validation error")

	// ErrAttachmentWrite means the photo/PDF could not be written to the
	// data directory; the employee row is guaranteed untouched.
	ErrAttachmentWrite = errors.New("attachment write failure")

	ErrInvalidFileType = errors.New("file type is not allowed")
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
	ErrNoAttachment    = errors.New("no attachment on record")
)
