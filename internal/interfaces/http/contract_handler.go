package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/livo/contratos-api/internal/application/dto"
	"github.com/livo/contratos-api/internal/application/usecase"
	"github.com/livo/contratos-api/internal/domain"
)

// ContractHandler trata as requisições HTTP de contratos.
type ContractHandler struct {
	uc  *usecase.ContractUseCase
	gen *usecase.GenerateUseCase
}

// NewContractHandler constrói o handler.
func NewContractHandler(uc *usecase.ContractUseCase, gen *usecase.GenerateUseCase) *ContractHandler {
	return &ContractHandler{uc: uc, gen: gen}
}

// Generate POST /api/contracts/generate
func (h *ContractHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateContractRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.gen.Generate(c.UserContext(), in)
	if err != nil {
		return contractError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Create POST /api/contracts
func (h *ContractHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateContractRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return contractError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List GET /api/contracts?status=&condominio=&start_date=&end_date=&min_valor=&max_valor=&limit=&offset=
func (h *ContractHandler) List(c *fiber.Ctx) error {
	var filter dto.ContractFilterRequest
	if err := c.QueryParser(&filter); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "filtros inválidos"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginação inválida"})
	}
	out, err := h.uc.List(filter, page)
	if err != nil {
		return contractError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/contracts/:id
func (h *ContractHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return contractError(c, err)
	}
	return c.JSON(out)
}

// Update PATCH /api/contracts/:id
func (h *ContractHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateContractRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return contractError(c, err)
	}
	return c.JSON(out)
}

// Delete DELETE /api/contracts/:id
func (h *ContractHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return contractError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// contractError mapeia erros de caso de uso para o corpo de erro HTTP.
func contractError(c *fiber.Ctx, err error) error {
	var vErr *usecase.ValidationError
	switch {
	case errors.As(err, &vErr):
		details := make([]dto.FieldDetail, 0, len(vErr.Details))
		for _, fe := range vErr.Details {
			details = append(details, dto.FieldDetail{Field: fe.Field, Message: fe.Message})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code:    "VALIDATION_ERROR",
			Message: "há campos inválidos",
			Details: details,
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "contrato não encontrado"})
	case errors.Is(err, domain.ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: "status desconhecido; use pending, generated, signed ou cancelled"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "registro duplicado"})
	case errors.Is(err, usecase.ErrGeneration):
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "GENERATION_ERROR", Message: "falha ao gerar o contrato; tente novamente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
