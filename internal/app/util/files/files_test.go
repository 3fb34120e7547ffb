package files

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeFileHeader builds a *multipart.FileHeader the same way gin receives one.
func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	return req.MultipartForm.File["file"][0]
}

func TestSaveUpload(t *testing.T) {
	dir := t.TempDir()
	header := makeFileHeader(t, "Interview.MP3", []byte("fake audio bytes"))

	path, err := SaveUpload(header, dir)
	require.NoError(t, err)
	defer os.Remove(path)

	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, ".mp3"), "extension should be lowercased: %s", path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("fake audio bytes"), content)
}

func TestSaveUpload_UniqueNames(t *testing.T) {
	dir := t.TempDir()
	header := makeFileHeader(t, "a.wav", []byte("x"))

	first, err := SaveUpload(header, dir)
	require.NoError(t, err)
	second, err := SaveUpload(header, dir)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSaveUpload_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "scratch")
	header := makeFileHeader(t, "a.m4a", []byte("x"))

	path, err := SaveUpload(header, dir)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestReadOutputFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("  hello world \n"), 0o644))

	text, err := ReadOutputFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
}

func TestReadOutputFile_Missing(t *testing.T) {
	_, err := ReadOutputFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
