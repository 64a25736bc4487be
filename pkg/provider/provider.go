package provider

import (
	"context"
	"errors"
	"time"
)

// Capabilities tells which result groups a parser can detect at all. A
// column a parser cannot detect is still evaluated; the flags only explain
// empty values in reports.
type Capabilities struct {
	Browser bool `json:"browser" yaml:"browser"`
	Engine  bool `json:"engine" yaml:"engine"`
	OS      bool `json:"os" yaml:"os"`
	Device  bool `json:"device" yaml:"device"`
	Bot     bool `json:"bot" yaml:"bot"`
}

// Info describes a provider. Name is the unique key in storage.
type Info struct {
	Name     string       `json:"name" yaml:"name"`
	Package  string       `json:"package,omitempty" yaml:"package,omitempty"`
	Version  string       `json:"version,omitempty" yaml:"version,omitempty"`
	Homepage string       `json:"homepage,omitempty" yaml:"homepage,omitempty"`
	Detects  Capabilities `json:"detects" yaml:"detects"`
}

// Provider is a user agent parser adapter. Parse must be safe for
// concurrent use and return ErrNoResult when the user agent is not
// recognized.
type Provider interface {
	Info() Info
	Parse(ctx context.Context, ua string) (Result, error)
}

// Measure runs p over ua, records the elapsed time and normalizes versions.
// Errors other than ErrNoResult are wrapped with ErrParseFailed.
func Measure(ctx context.Context, p Provider, ua string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	start := time.Now()
	res, err := p.Parse(ctx, ua)
	elapsed := time.Since(start)

	switch {
	case errors.Is(err, ErrNoResult):
		return Result{ParseTime: elapsed}, ErrNoResult
	case err != nil:
		return Result{}, errors.Join(ErrParseFailed, err)
	}

	res = res.Normalized()
	res.ParseTime = elapsed
	return res, nil
}
