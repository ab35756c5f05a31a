package handlers

import (
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"videoshare/pkg/media"
	"videoshare/pkg/storage"
)

// API holds the collaborators handlers need beyond the database singleton.
type API struct {
	Store     storage.Store
	Durations *media.DurationCache
}

func NewAPI(store storage.Store, durations *media.DurationCache) *API {
	return &API{Store: store, Durations: durations}
}

// saveKey builds the stored object key for an upload: bucket prefix plus a
// fresh uuid, keeping the original extension.
func saveKey(bucket, filename string) string {
	return bucket + "/" + uuid.New().String() + strings.ToLower(filepath.Ext(filename))
}

func (a *API) saveUpload(fh *multipart.FileHeader, bucket string) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	return a.Store.Save(src, saveKey(bucket, fh.Filename))
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
