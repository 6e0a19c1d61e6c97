package infra

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// LocalStorage writes RFQ attachments to a directory on disk, one
// subdirectory per RFQ. Stored names carry a timestamp prefix so repeated
// uploads of the same file never collide.
type LocalStorage struct {
	root    string
	baseURL string
}

func NewLocalStorage(root, baseURL string) *LocalStorage {
	return &LocalStorage{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *LocalStorage) Save(rfqID, fileName string, src io.Reader) (string, string, string, error) {
	dir := filepath.Join(s.root, rfqID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", "", fmt.Errorf("storage: create dir: %w", err)
	}

	// Keep only the base name; clients may send full paths.
	base := filepath.Base(filepath.Clean(fileName))
	storedName := fmt.Sprintf("%d_%s", time.Now().UnixNano(), base)

	dst, err := os.Create(filepath.Join(dir, storedName))
	if err != nil {
		return "", "", "", fmt.Errorf("storage: create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", "", fmt.Errorf("storage: write file: %w", err)
	}

	fileType := mime.TypeByExtension(filepath.Ext(base))
	if fileType == "" {
		fileType = "application/octet-stream"
	}
	url := fmt.Sprintf("%s/%s/%s", s.baseURL, rfqID, storedName)
	return storedName, fileType, url, nil
}
