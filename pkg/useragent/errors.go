package useragent

import "errors"

var (
	ErrEmptyUserAgent = errors.New("useragent: blank input")
	// ErrMalformedUserAgent means neither a browser, an OS nor a device was recognized.
	ErrMalformedUserAgent = errors.New("useragent: nothing recognizable in input")
	// ErrUnknownDevice comes with a partial result.
	ErrUnknownDevice = errors.New("useragent: device type not recognized")
)
