package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore keeps files under a local directory that the server exposes as
// static content.
type DiskStore struct {
	Root    string
	BaseURL string
}

func NewDiskStore(root, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (d *DiskStore) Save(src io.Reader, key string) (string, error) {
	dst := filepath.Join(d.Root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return "", err
	}
	return key, nil
}

func (d *DiskStore) Delete(path string) error {
	return os.Remove(filepath.Join(d.Root, filepath.FromSlash(path)))
}

func (d *DiskStore) URL(path string) string {
	return d.BaseURL + "/" + path
}

func (d *DiskStore) ProbePath(path string) string {
	return filepath.Join(d.Root, filepath.FromSlash(path))
}
