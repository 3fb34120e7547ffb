package files

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SaveUpload writes an uploaded file to a uniquely named temp file under dir,
// preserving the original extension so downstream tools can sniff the
// container format. The caller owns the returned path and must remove it.
func SaveUpload(fileHeader *multipart.FileHeader, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating temp directory %s: %w", dir, err)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	tempPath := filepath.Join(dir, uuid.New().String()+ext)

	dst, err := os.Create(tempPath)
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(tempPath)
		return "", fmt.Errorf("writing temp file: %w", err)
	}

	if err := dst.Close(); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	return tempPath, nil
}

// ReadOutputFile reads the specified output file and returns its trimmed text content.
func ReadOutputFile(filePath string) (string, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(content)), nil
}
