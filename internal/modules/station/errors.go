package station

import "errors"

var (
	ErrValidation = errors.New("validation error")

	ErrAttachmentWrite = errors.New("attachment write failure")
	ErrInvalidFileType = errors.New("file type is not allowed")
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
	ErrNoAttachment    = errors.New("no attachment on record")

	ErrBadImportFile = errors.New("unreadable import file")
)
