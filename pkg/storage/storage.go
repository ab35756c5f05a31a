package storage

import (
	"io"
)

// Store persists uploaded files under a public, addressable path. Paths are
// relative keys like "videos/3f2a….mp4"; URL turns one into something a
// client can fetch, ProbePath into something ffprobe can open.
type Store interface {
	Save(src io.Reader, key string) (string, error)
	Delete(path string) error
	URL(path string) string
	ProbePath(path string) string
}
