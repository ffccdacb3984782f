package batch

import "errors"

var ErrNilValidator = errors.New("batch: validator is nil")
