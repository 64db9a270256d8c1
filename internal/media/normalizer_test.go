package media

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodePNG кодирует тестовое изображение заданного размера.
// withAlpha добавляет полупрозрачные пиксели.
func encodePNG(t *testing.T, width, height int, withAlpha bool) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := range height {
		for x := range width {
			a := uint8(255)
			if withAlpha {
				a = 0
			}
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 50, B: 50, A: a})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeJPEGFile(t *testing.T, path string) image.Image {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func TestNormalize_ResizesLargeImage(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.jpg")

	// 3200x1600 должно сжаться до 1600x800
	src := UploadedBytes(encodePNG(t, 3200, 1600, false))
	require.NoError(t, Normalize(src, target))

	img := decodeJPEGFile(t, target)
	assert.Equal(t, 1600, img.Bounds().Dx())
	assert.Equal(t, 800, img.Bounds().Dy())
}

func TestNormalize_KeepsSmallImageSize(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.jpg")

	src := UploadedBytes(encodePNG(t, 640, 480, false))
	require.NoError(t, Normalize(src, target))

	img := decodeJPEGFile(t, target)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 480, img.Bounds().Dy())
}

func TestNormalize_CompositesAlphaOnWhite(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.jpg")

	// Полностью прозрачный PNG должен стать белым JPEG
	src := UploadedBytes(encodePNG(t, 32, 32, true))
	require.NoError(t, Normalize(src, target))

	img := decodeJPEGFile(t, target)
	r, g, b, _ := img.At(16, 16).RGBA()
	// JPEG с потерями, допускаем небольшое отклонение от чистого белого
	assert.Greater(t, r>>8, uint32(240))
	assert.Greater(t, g>>8, uint32(240))
	assert.Greater(t, b>>8, uint32(240))
}

func TestNormalize_CorruptInput(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.jpg")

	src := UploadedBytes([]byte("definitely not an image"))
	err := Normalize(src, target)
	assert.ErrorIs(t, err, ErrDecode)

	// Ошибка не должна оставлять выходной файл
	_, statErr := os.Stat(target)
	assert.True(t, os.IsNotExist(statErr))
}

func TestNormalize_LocalPathSource(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "src.png")
	target := filepath.Join(dir, "out.jpg")

	require.NoError(t, os.WriteFile(srcPath, encodePNG(t, 100, 50, false), 0o644))
	require.NoError(t, Normalize(LocalPath(srcPath), target))

	img := decodeJPEGFile(t, target)
	assert.Equal(t, 100, img.Bounds().Dx())

	// Источник не удаляется
	_, err := os.Stat(srcPath)
	assert.NoError(t, err)
}

func TestSaveOriginal(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.bin")

	data := []byte("raw bytes, not an image")
	require.NoError(t, SaveOriginal(UploadedBytes(data), target))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}
