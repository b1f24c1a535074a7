package pdfread

import (
	"bytes"
	"errors"
	"fmt"
)

// pdfMagic assinatura no início de todo arquivo PDF.
var pdfMagic = []byte("%PDF-")

// Erros de validação do upload, distinguíveis pelo handler HTTP.
var (
	ErrEmptyFile = errors.New("arquivo vazio")
	ErrTooLarge  = errors.New("arquivo acima do limite de tamanho")
	ErrNotPDF    = errors.New("arquivo não é um PDF")
)

// ValidateUpload valida o upload antes de qualquer parse: não vazio,
// dentro do limite de tamanho e com assinatura de PDF. A verificação por
// magic bytes cobre clientes que mandam content-type errado.
func ValidateUpload(data []byte, maxSize int64) error {
	if len(data) == 0 {
		return ErrEmptyFile
	}
	if int64(len(data)) > maxSize {
		return fmt.Errorf("%w: %d bytes (máximo %d)", ErrTooLarge, len(data), maxSize)
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return ErrNotPDF
	}
	return nil
}
