package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngDataURI(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestDiskStore_UploadAndDestroy(t *testing.T) {
	store := &DiskStore{baseDir: t.TempDir(), baseURL: "http://cdn.test"}

	asset, err := store.Upload(context.Background(), pngDataURI(t), "products")
	require.NoError(t, err)
	assert.NotEmpty(t, asset.PublicID)
	assert.Contains(t, asset.URL, "http://cdn.test/static/products/")

	base := filepath.Join(store.baseDir, filepath.FromSlash(asset.PublicID))
	_, err = os.Stat(base + ".jpg")
	require.NoError(t, err)
	_, err = os.Stat(base + "_thumb.jpg")
	require.NoError(t, err)

	require.NoError(t, store.Destroy(context.Background(), asset.PublicID))
	_, err = os.Stat(base + ".jpg")
	assert.True(t, os.IsNotExist(err))

	// destroying a missing asset is not an error
	assert.NoError(t, store.Destroy(context.Background(), asset.PublicID))
}

func TestDecodeDataURI(t *testing.T) {
	raw, err := decodeDataURI("data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("hi")))
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), raw)

	// bare base64 without the data: prefix
	raw, err = decodeDataURI(base64.StdEncoding.EncodeToString([]byte("hi")))
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), raw)

	_, err = decodeDataURI("data:image/png;base64")
	assert.Error(t, err)

	_, err = decodeDataURI("data:image/png;base64,!!!not-base64!!!")
	assert.Error(t, err)
}
