package maintenance

import "errors"

var (
	ErrValidation  = errors.New("validation error")
	ErrUnknownType = errors.New("unknown maintenance type")
)
