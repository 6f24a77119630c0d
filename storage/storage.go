package storage

import (
	"io"
	"net/http"

	"blogserver/config"
)

type StorageAPI interface {
	Save(path string, reader io.Reader) (int64, error)
	Load(path string, writer io.Writer) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
	GetFreeSpace() uint64
}

var current StorageAPI

// Init selects the media backend: S3 when a bucket is configured, local
// disk otherwise.
func Init() {
	if config.S3_BUCKET != "" {
		current = NewS3Storage()
		return
	}
	current = NewDiskStorage(config.MEDIA_DIR)
}

func Get() StorageAPI {
	if current == nil {
		panic("storage not initialised")
	}
	return current
}
