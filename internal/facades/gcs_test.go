package facades

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectWriter struct {
	bytes.Buffer
	closeErr error
	closed   bool
}

func (w *fakeObjectWriter) Close() error {
	w.closed = true
	return w.closeErr
}

func newTestGCSUploader(w *fakeObjectWriter, gotObject *string) *GCSUploader {
	return &GCSUploader{
		bucket:     "gallery",
		uploadPath: "images/",
		newWriter: func(_ context.Context, bucket, object string) io.WriteCloser {
			*gotObject = bucket + "/" + object
			return w
		},
	}
}

func TestGCSUploader_Upload(t *testing.T) {
	w := &fakeObjectWriter{}
	var object string
	u := newTestGCSUploader(w, &object)

	url, err := u.Upload(context.Background(), "dir/fox.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(object, "gallery/images/"))
	assert.True(t, strings.HasSuffix(object, "_fox.png"))
	assert.Equal(t, "https://storage.googleapis.com/"+object, url)
	assert.Equal(t, "png-bytes", w.String())
	assert.True(t, w.closed)
}

func TestGCSUploader_CloseError(t *testing.T) {
	w := &fakeObjectWriter{closeErr: errors.New("permission denied")}
	var object string
	u := newTestGCSUploader(w, &object)

	url, err := u.Upload(context.Background(), "fox.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUploadFailed)
	assert.Empty(t, url)
}

func TestObjectName(t *testing.T) {
	assert.True(t, strings.HasSuffix(objectName("images/", `C:\pics\fox.png`), "_fox.png"))
	assert.True(t, strings.HasSuffix(objectName("", ""), "_image"))
}
