package media

import (
	"bytes"
	"io"
	"os"
)

// Source - источник исходного изображения.
// Ровно два варианта: байты из multipart-загрузки (UploadedBytes)
// и скачанный во временный файл оригинал (LocalPath).
type Source interface {
	// Open открывает источник на чтение
	Open() (io.ReadCloser, error)

	sealed()
}

// UploadedBytes is an in-memory image uploaded through the web form
type UploadedBytes []byte

// Open открывает источник на чтение
func (b UploadedBytes) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (UploadedBytes) sealed() {}

// LocalPath is an image already written to the local filesystem,
// e.g. downloaded from the bot API into a temp file
type LocalPath string

// Open открывает источник на чтение
func (p LocalPath) Open() (io.ReadCloser, error) {
	return os.Open(string(p))
}

func (LocalPath) sealed() {}
