package registry

import "errors"

var (
	ErrNilValidator   = errors.New("registry: validator is nil")
	ErrEmptyShape     = errors.New("registry: validator has an empty shape name")
	ErrDuplicateShape = errors.New("registry: shape already registered")
	ErrUnknownShape   = errors.New("registry: shape not registered")
	ErrShapeMismatch  = errors.New("registry: shape registered for a different type")
)
