// Package pdfread lê o texto plano de um PDF em memória, usando
// ledongthuc/pdf. É o colaborador de leitura do fluxo de extração: ele
// falha quando o buffer não é um PDF; a ausência de camada de texto é
// decidida a jusante, pelo limiar de tamanho do caso de uso.
package pdfread

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Reader extrai texto de PDFs com limite de tamanho de texto acumulado.
type Reader struct {
	maxTextSize int
}

// NewReader constrói o leitor. maxTextSize limita o texto acumulado em
// bytes (0 usa o padrão de 1 MiB) — propostas comerciais têm poucas
// páginas; o limite protege contra PDFs patológicos.
func NewReader(maxTextSize int) *Reader {
	if maxTextSize <= 0 {
		maxTextSize = 1 << 20
	}
	return &Reader{maxTextSize: maxTextSize}
}

// ExtractText devolve o texto plano de todas as páginas, em ordem.
// Páginas individualmente ilegíveis são puladas; o erro só sobe quando o
// documento inteiro não abre como PDF.
func (r *Reader) ExtractText(ctx context.Context, data []byte) (string, error) {
	pdfReader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("abrir PDF: %w", err)
	}

	var builder strings.Builder
	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := pdfReader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			// Página corrompida não invalida o documento.
			continue
		}
		if builder.Len()+len(content) > r.maxTextSize {
			remaining := r.maxTextSize - builder.Len()
			if remaining > 0 {
				builder.WriteString(content[:remaining])
			}
			break
		}
		builder.WriteString(content)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}
