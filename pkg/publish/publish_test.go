package publish_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uabench/pkg/publish"
)

type report struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func TestLocalPublish(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	dir := t.TempDir()

	p, err := publish.NewLocal(dir, publish.WithLocalPrefix("runs/"), publish.WithLocalBaseURL("https://reports.example.com"))
	require.NoError(t, err)

	obj, err := publish.YAML(ctx, p, "latest/summary.yaml", report{Name: "native", Count: 3})
	require.NoError(t, err)
	assert.Equal(t, "runs/latest/summary.yaml", obj.Key)
	assert.Equal(t, "https://reports.example.com/runs/latest/summary.yaml", obj.URL)
	assert.Equal(t, publish.ContentTypeYAML, obj.ContentType)

	data, err := os.ReadFile(filepath.Join(dir, "runs", "latest", "summary.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "name: native\ncount: 3\n", string(data))
	assert.Equal(t, int64(len(data)), obj.Size)

	// Publishing again replaces the report and leaves no temp files behind.
	_, err = publish.JSON(ctx, p, "latest/summary.yaml", report{Name: "mssola"})
	require.NoError(t, err)
	data, err = os.ReadFile(filepath.Join(dir, "runs", "latest", "summary.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "mssola"`)

	entries, err := os.ReadDir(filepath.Join(dir, "runs", "latest"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLocalFileURL(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	p, err := publish.NewLocal(dir)
	require.NoError(t, err)
	obj, err := p.Publish(context.Background(), "a.json", []byte("{}"), publish.ContentTypeJSON)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(obj.URL, "file://"))
	assert.True(t, strings.HasSuffix(obj.URL, "/a.json"))
}

func TestLocalRejectsInvalidKeys(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	p, err := publish.NewLocal(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "/", "../escape.yaml", "a/../../b"} {
		_, err := p.Publish(ctx, key, []byte("x"), publish.ContentTypeYAML)
		assert.ErrorIs(t, err, publish.ErrInvalidKey, key)
	}
}

func TestLocalCanceledContext(t *testing.T) {
	t.Parallel()
	p, err := publish.NewLocal(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Publish(ctx, "a.yaml", []byte("x"), publish.ContentTypeYAML)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNew(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	p, err := publish.New(ctx, publish.Config{Driver: publish.DriverLocal, Dir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &publish.Local{}, p)

	_, err = publish.New(ctx, publish.Config{Driver: "ftp"})
	require.ErrorIs(t, err, publish.ErrUnknownDriver)

	_, err = publish.New(ctx, publish.Config{Driver: publish.DriverLocal})
	require.ErrorIs(t, err, publish.ErrInvalidConfig)

	_, err = publish.New(ctx, publish.Config{Driver: publish.DriverS3})
	require.ErrorIs(t, err, publish.ErrInvalidConfig)
}
