package usecase

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/livo/contratos-api/internal/domain"
	"github.com/livo/contratos-api/internal/domain/extract"
)

// PDFTextReader porto para o colaborador de leitura de texto de PDF.
// Falha quando o buffer não é um PDF legível.
type PDFTextReader interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// MinTextLength limiar mínimo de texto extraído, em runas. Abaixo disso o
// documento é tratado como digitalização sem camada de texto.
const MinTextLength = 50

// ExtractUseCase orquestra leitura do PDF + heurística de extração.
type ExtractUseCase struct {
	reader PDFTextReader
}

// NewExtractUseCase constrói o caso de uso com o leitor de PDF.
func NewExtractUseCase(reader PDFTextReader) *ExtractUseCase {
	return &ExtractUseCase{reader: reader}
}

// Extract converte o PDF em texto e aplica a heurística de extração.
// Erros possíveis: domain.ErrPDFParse (PDF ilegível) e
// domain.ErrNoTextContent (texto abaixo do limiar). A heurística em si
// nunca falha — degrada para campos vazios.
func (uc *ExtractUseCase) Extract(ctx context.Context, pdfBytes []byte) (extract.Fields, error) {
	text, err := uc.reader.ExtractText(ctx, pdfBytes)
	if err != nil {
		return extract.Fields{}, fmt.Errorf("%w: %v", domain.ErrPDFParse, err)
	}
	if utf8.RuneCountInString(text) < MinTextLength {
		return extract.Fields{}, domain.ErrNoTextContent
	}
	return extract.Extract(text), nil
}
