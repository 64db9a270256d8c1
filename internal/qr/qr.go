// Package qr генерирует QR-коды заметок и разбирает их payload.
package qr

import (
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// NotePrefix канонический префикс payload заметки
const NotePrefix = "qrapp:note:"

// legacyPrefixes принимаются при чтении для обратной совместимости
// со старыми QR-кодами
var legacyPrefixes = []string{
	"qrapp://note:",
	"note:",
}

// moduleSize размер одного модуля QR-кода в пикселях
const moduleSize = 10

// Generate кодирует произвольную UTF-8 строку в PNG.
// Уровень коррекции ошибок Low, фиксированный размер модуля,
// стандартная quiet zone. Результат детерминирован по входной строке.
func Generate(data string) ([]byte, error) {
	// Отрицательный размер - масштаб на модуль, а не размер картинки
	png, err := qrcode.Encode(data, qrcode.Low, -moduleSize)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr: %w", err)
	}
	return png, nil
}

// NotePayload возвращает канонический payload QR-кода заметки
func NotePayload(noteID string) string {
	return NotePrefix + noteID
}

// ParsePayload извлекает id заметки из отсканированного payload.
// Порядок разбора: канонический префикс, устаревшие префиксы,
// иначе весь payload считается id. Первое совпадение выигрывает.
func ParsePayload(payload string) string {
	if id, ok := strings.CutPrefix(payload, NotePrefix); ok {
		return id
	}
	for _, prefix := range legacyPrefixes {
		if id, ok := strings.CutPrefix(payload, prefix); ok {
			return id
		}
	}
	return payload
}
