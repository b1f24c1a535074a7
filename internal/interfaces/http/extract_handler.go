package http

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/livo/contratos-api/internal/application/dto"
	"github.com/livo/contratos-api/internal/application/usecase"
	"github.com/livo/contratos-api/internal/domain"
	"github.com/livo/contratos-api/internal/infrastructure/pdfread"
)

// ExtractHandler recebe a proposta em PDF e devolve os campos extraídos.
type ExtractHandler struct {
	uc      *usecase.ExtractUseCase
	maxSize int64
}

// NewExtractHandler constrói o handler. maxSize limita o upload em bytes.
func NewExtractHandler(uc *usecase.ExtractUseCase, maxSize int64) *ExtractHandler {
	return &ExtractHandler{uc: uc, maxSize: maxSize}
}

// Extract POST /api/contracts/extract (multipart, campo "pdf")
func (h *ExtractHandler) Extract(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("pdf")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FILE", Message: "envie o PDF no campo multipart \"pdf\""})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FILE", Message: "não foi possível ler o arquivo enviado"})
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, h.maxSize+1))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_FILE", Message: "não foi possível ler o arquivo enviado"})
	}

	if err := pdfread.ValidateUpload(data, h.maxSize); err != nil {
		switch {
		case errors.Is(err, pdfread.ErrTooLarge):
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: err.Error()})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE_TYPE", Message: "o arquivo enviado não é um PDF válido"})
		}
	}

	fields, err := h.uc.Extract(c.UserContext(), data)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoTextContent):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NO_TEXT_CONTENT", Message: "o PDF não tem camada de texto legível (digitalização?)"})
		case errors.Is(err, domain.ErrPDFParse):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "PDF_PARSE_ERROR", Message: "não foi possível interpretar o PDF"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(fields)
}
