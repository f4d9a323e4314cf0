package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
)

func TestBlobImageStore_Save(t *testing.T) {
	dir := t.TempDir()
	bucket, err := fileblob.OpenBucket(dir, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	store := &blobImageStore{bucket: bucket, bucketURL: "file://" + dir}

	ref, err := store.Save(context.Background(), []byte("leaf-bytes"), "image/jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "file://"+dir+"/pest/"))
	assert.True(t, strings.HasSuffix(ref, ".jpg"))

	// The object actually landed on disk.
	var found string
	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.HasSuffix(path, ".jpg") {
			found = path
		}

		return nil
	})
	require.NoError(t, err)
	require.NotEmpty(t, found)

	data, err := os.ReadFile(found)
	require.NoError(t, err)
	assert.Equal(t, "leaf-bytes", string(data))
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, ".png", extensionFor("image/png"))
	assert.Equal(t, ".webp", extensionFor("image/webp"))
	assert.Equal(t, ".jpg", extensionFor("image/jpeg"))
	assert.Equal(t, ".jpg", extensionFor("application/octet-stream"))
}
