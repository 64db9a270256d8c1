// Package media нормализует загруженные изображения: любой поддерживаемый
// формат приводится к JPEG ограниченного размера и качества.
package media

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/disintegration/imaging"
)

// ErrDecode indicates that the source is not a decodable image.
// Caller решает fallback-поведение, например сохраняет оригинал как есть.
var ErrDecode = errors.New("failed to decode image")

const (
	// MaxDimension максимальный размер большей стороны в пикселях
	MaxDimension = 1600
	// JPEGQuality качество итогового JPEG
	JPEGQuality = 80
)

// Normalize декодирует исходное изображение и записывает нормализованный
// JPEG в targetPath: большая сторона не превышает MaxDimension, качество
// JPEGQuality, прозрачность сведена на белый фон.
// При любой ошибке файл по targetPath не создается.
func Normalize(src Source, targetPath string) error {
	r, err := src.Open()
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer r.Close()

	img, err := imaging.Decode(r)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}

	// JPEG не имеет альфа-канала: прозрачные изображения
	// сводим на белый фон того же размера
	if !isOpaque(img) {
		background := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.White)
		img = imaging.Overlay(background, img, image.Pt(0, 0), 1.0)
	}

	// Fit уменьшает только когда какая-то из сторон больше лимита,
	// пропорции сохраняются, маленькие изображения не растягиваются
	img = imaging.Fit(img, MaxDimension, MaxDimension, imaging.Lanczos)

	// Кодируем в память, чтобы ошибка кодирования не оставила
	// недописанный файл
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(JPEGQuality)); err != nil {
		return fmt.Errorf("failed to encode jpeg: %w", err)
	}

	if err := os.WriteFile(targetPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", targetPath, err)
	}

	return nil
}

// SaveOriginal копирует источник в targetPath без обработки.
// Используется как fallback, когда Normalize не смог декодировать файл.
func SaveOriginal(src Source, targetPath string) error {
	r, err := src.Open()
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("failed to read source: %w", err)
	}

	if err := os.WriteFile(targetPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", targetPath, err)
	}

	return nil
}

// isOpaque сообщает, есть ли в изображении прозрачные пиксели
func isOpaque(img image.Image) bool {
	if op, ok := img.(interface{ Opaque() bool }); ok {
		return op.Opaque()
	}
	return false
}
