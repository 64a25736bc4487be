package publish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DriverLocal = "local"
	DriverS3    = "s3"

	ContentTypeYAML = "application/yaml"
	ContentTypeJSON = "application/json"
)

// Object describes a published report.
type Object struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
}

// Publisher stores a report under a key, replacing any previous version.
type Publisher interface {
	Publish(ctx context.Context, key string, body []byte, contentType string) (Object, error)
}

// New builds the publisher selected by cfg.Driver.
func New(ctx context.Context, cfg Config) (Publisher, error) {
	switch cfg.Driver {
	case DriverLocal, "":
		return NewLocal(cfg.Dir, WithLocalPrefix(cfg.Prefix), WithLocalBaseURL(cfg.BaseURL))
	case DriverS3:
		return NewS3(ctx, cfg.S3, WithS3Prefix(cfg.Prefix), WithS3BaseURL(cfg.BaseURL))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// YAML encodes v as YAML and publishes it under key.
func YAML(ctx context.Context, p Publisher, key string, v any) (Object, error) {
	body, err := yaml.Marshal(v)
	if err != nil {
		return Object{}, errors.Join(ErrFailedToEncode, err)
	}
	return p.Publish(ctx, key, body, ContentTypeYAML)
}

// JSON encodes v as indented JSON and publishes it under key.
func JSON(ctx context.Context, p Publisher, key string, v any) (Object, error) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return Object{}, errors.Join(ErrFailedToEncode, err)
	}
	return p.Publish(ctx, key, append(body, '\n'), ContentTypeJSON)
}

// cleanKey joins prefix and key into a slash separated relative key.
func cleanKey(prefix, key string) (string, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" || strings.Contains(key, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return strings.TrimPrefix(path.Join(strings.Trim(prefix, "/"), key), "/"), nil
}

func withSlash(s string) string {
	if s != "" && !strings.HasSuffix(s, "/") {
		return s + "/"
	}
	return s
}
