package video

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartContext(t *testing.T, field, filename, contentType, payload string) *app.RequestContext {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(payload))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	c := app.NewContext(0)
	c.Request.SetMethod("POST")
	c.Request.Header.SetContentTypeBytes([]byte(w.FormDataContentType()))
	c.Request.SetBody(buf.Bytes())
	return c
}

func TestStagePresentPart(t *testing.T) {
	c := multipartContext(t, "videoFile", "clip.mp4", "video/mp4", "fake video bytes")

	path, mime, err := stage(c, "videoFile")
	require.NoError(t, err)
	require.NotEmpty(t, path)
	defer os.Remove(path)

	assert.Equal(t, "video/mp4", mime)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "fake video bytes", string(data))
}

func TestStageAbsentPart(t *testing.T) {
	c := multipartContext(t, "videoFile", "clip.mp4", "video/mp4", "fake video bytes")

	// A missing part is not a staging failure; the service reports the
	// missing file as a bad request.
	path, mime, err := stage(c, "thumbnail")
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Empty(t, mime)
}

func TestCleanupRemovesStagedFiles(t *testing.T) {
	c := multipartContext(t, "thumbnail", "cover.png", "image/png", "fake image bytes")

	path, _, err := stage(c, "thumbnail")
	require.NoError(t, err)
	require.FileExists(t, path)

	cleanup(path, "")
	assert.NoFileExists(t, path)
}
