package utils

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uploadedFile(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, "/", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["image"][0]
}

func TestSaveUploadedImage(t *testing.T) {
	dir := t.TempDir()
	file := uploadedFile(t, "logo.png", "image/png", []byte("png bytes"))

	url, err := SaveUploadedImage(file, dir)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	stored, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, []byte("png bytes"), stored)
}

func TestSaveUploadedImageNamesDoNotCollide(t *testing.T) {
	dir := t.TempDir()

	first, err := SaveUploadedImage(uploadedFile(t, "a.jpg", "image/jpeg", []byte("a")), dir)
	require.NoError(t, err)
	second, err := SaveUploadedImage(uploadedFile(t, "a.jpg", "image/jpeg", []byte("b")), dir)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSaveUploadedImageRejectsNonImages(t *testing.T) {
	file := uploadedFile(t, "notes.pdf", "application/pdf", []byte("%PDF"))

	_, err := SaveUploadedImage(file, t.TempDir())
	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestSaveUploadedImageRejectsOversizedFiles(t *testing.T) {
	file := uploadedFile(t, "huge.png", "image/png", []byte("tiny"))
	file.Size = MaxImageSize + 1

	_, err := SaveUploadedImage(file, t.TempDir())
	assert.ErrorIs(t, err, ErrImageTooLarge)
}
