package locale

import "errors"

var (
	ErrNilSource       = errors.New("locale: source is nil")
	ErrNoCatalogs      = errors.New("locale: source provided no catalogs")
	ErrInvalidLanguage = errors.New("locale: invalid language code")
	ErrLoadCancelled   = errors.New("locale: catalog loading cancelled")
	ErrParseFailed     = errors.New("locale: failed to parse catalog content")
)
