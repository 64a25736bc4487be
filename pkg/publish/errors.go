package publish

import "errors"

var (
	// ErrInvalidConfig is returned when required settings are missing.
	ErrInvalidConfig = errors.New("publish: invalid configuration")

	// ErrUnknownDriver is returned for a driver other than local or s3.
	ErrUnknownDriver = errors.New("publish: unknown driver")

	// ErrInvalidKey is returned when a key is empty or escapes the destination.
	ErrInvalidKey = errors.New("publish: invalid key")

	ErrFailedToEncode  = errors.New("publish: failed to encode report")
	ErrFailedToWrite   = errors.New("publish: failed to write object")
	ErrFailedToLoadAWS = errors.New("publish: failed to load AWS config")

	ErrBucketNotFound     = errors.New("publish: bucket not found")
	ErrAccessDenied       = errors.New("publish: access denied")
	ErrRequestTimeout     = errors.New("publish: request timeout")
	ErrServiceUnavailable = errors.New("publish: service unavailable")
)
