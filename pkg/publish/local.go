package publish

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Local publishes into a directory. It is safe for concurrent use.
type Local struct {
	baseDir string
	baseURL string
	prefix  string
}

type LocalOption func(*Local)

// WithLocalBaseURL sets the URL reported for published objects.
// Without it the URL is a file:// URL.
func WithLocalBaseURL(u string) LocalOption {
	return func(l *Local) {
		l.baseURL = withSlash(u)
	}
}

// WithLocalPrefix publishes every key under prefix.
func WithLocalPrefix(prefix string) LocalOption {
	return func(l *Local) {
		l.prefix = prefix
	}
}

// NewLocal creates dir when missing.
func NewLocal(dir string, opts ...LocalOption) (*Local, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty directory", ErrInvalidConfig)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	l := &Local{baseDir: abs}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Publish writes body to a temporary file and renames it into place, so
// readers never see a partial report.
func (l *Local) Publish(ctx context.Context, key string, body []byte, contentType string) (Object, error) {
	if err := ctx.Err(); err != nil {
		return Object{}, err
	}

	key, err := cleanKey(l.prefix, key)
	if err != nil {
		return Object{}, err
	}
	target, err := l.resolvePath(key)
	if err != nil {
		return Object{}, err
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return Object{}, errors.Join(ErrFailedToWrite, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".publish-*")
	if err != nil {
		return Object{}, errors.Join(ErrFailedToWrite, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(body); err != nil {
		_ = tmp.Close()
		return Object{}, errors.Join(ErrFailedToWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return Object{}, errors.Join(ErrFailedToWrite, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return Object{}, errors.Join(ErrFailedToWrite, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return Object{}, errors.Join(ErrFailedToWrite, err)
	}

	return Object{
		Key:         key,
		URL:         l.url(key, target),
		Size:        int64(len(body)),
		ContentType: contentType,
	}, nil
}

func (l *Local) url(key, target string) string {
	if l.baseURL == "" {
		return "file://" + filepath.ToSlash(target)
	}
	return l.baseURL + key
}

// resolvePath keeps every write inside the base directory.
func (l *Local) resolvePath(key string) (string, error) {
	abs := filepath.Join(l.baseDir, filepath.FromSlash(key))
	if !strings.HasPrefix(abs, l.baseDir+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return abs, nil
}
