package provider

import "errors"

var (
	// ErrNoResult means the parser did not recognize the user agent.
	ErrNoResult      = errors.New("provider: user agent not recognized")
	ErrUnknownColumn = errors.New("provider: unknown column")
	ErrParseFailed   = errors.New("provider: parse failed")
)
