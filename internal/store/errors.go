package store

import "errors"

var (
	ErrNotFound          = errors.New("store: not found")
	ErrUnknownProvider   = errors.New("store: unknown provider")
	ErrUnknownUserAgent  = errors.New("store: unknown user agent")
	ErrUnknownColumn     = errors.New("store: unknown column")
	ErrFailedToSave      = errors.New("store: failed to save")
	ErrFailedToQuery     = errors.New("store: failed to query")
	ErrEmptyUserAgent    = errors.New("store: user agent string is empty")
	ErrEmptyProviderName = errors.New("store: provider name is empty")
)
