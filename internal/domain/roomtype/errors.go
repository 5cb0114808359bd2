package roomtype

import "errors"

var (
	ErrNotFound      = errors.New("room type not found")
	ErrNameTaken     = errors.New("room type name already exists")
	ErrNameRequired  = errors.New("room type name is required")
	ErrInvalidName   = errors.New("room type name must be between 2 and 50 characters")
	ErrInvalidStatus = errors.New("room type status must be active or inactive")
)
