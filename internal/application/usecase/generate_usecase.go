package usecase

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/livo/contratos-api/internal/application/dto"
	"github.com/livo/contratos-api/internal/domain/contract"
	"github.com/livo/contratos-api/internal/domain/entity"
	"github.com/livo/contratos-api/internal/domain/extract"
	"github.com/livo/contratos-api/internal/domain/repository"
)

// ContractRenderer porto para o colaborador de renderização: recebe os
// campos validados e devolve o PDF do contrato.
type ContractRenderer interface {
	Render(ctx context.Context, fields extract.Fields) ([]byte, error)
}

// FileStorage porto para o armazenamento de objetos: sobe o PDF e devolve
// uma URL pública durável.
type FileStorage interface {
	UploadPDF(ctx context.Context, objectName string, data []byte) (string, error)
}

// GenerateUseCase fluxo gerar-e-salvar: valida, renderiza, armazena e
// persiste o contrato com status "generated".
type GenerateUseCase struct {
	repo     repository.ContractRepository
	renderer ContractRenderer
	storage  FileStorage
	now      func() time.Time
}

// NewGenerateUseCase constrói o caso de uso. now é injetável para testes;
// nil usa time.Now.
func NewGenerateUseCase(
	repo repository.ContractRepository,
	renderer ContractRenderer,
	storage FileStorage,
	now func() time.Time,
) *GenerateUseCase {
	if now == nil {
		now = time.Now
	}
	return &GenerateUseCase{repo: repo, renderer: renderer, storage: storage, now: now}
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// objectName monta o nome do objeto no padrão
// contract-<timestamp>-<condominio-com-hifens>.pdf.
func (uc *GenerateUseCase) objectName(condominio string) string {
	slug := whitespaceRun.ReplaceAllString(condominio, "-")
	return fmt.Sprintf("contract-%d-%s.pdf", uc.now().UnixMilli(), slug)
}

// Generate valida os campos, renderiza o PDF, faz o upload e persiste o
// registro. Erros de campo voltam como *ValidationError; falhas de
// colaborador voltam embrulhadas em ErrGeneration.
func (uc *GenerateUseCase) Generate(ctx context.Context, in dto.GenerateContractRequest) (*dto.GenerateContractResponse, error) {
	fields := extract.Fields{
		Condominio:     in.Condominio,
		CNPJCondominio: in.CNPJCondominio,
		Empresa:        in.Empresa,
		CNPJEmpresa:    in.CNPJEmpresa,
		Valor:          in.Valor,
		DataAssinatura: in.DataAssinatura,
	}
	if errs := contract.Validate(fields); len(errs) > 0 {
		return nil, &ValidationError{Details: errs}
	}

	pdfBytes, err := uc.renderer.Render(ctx, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: renderizar: %v", ErrGeneration, err)
	}

	url, err := uc.storage.UploadPDF(ctx, uc.objectName(in.Condominio), pdfBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: upload: %v", ErrGeneration, err)
	}

	valorNum, err := extract.ParseValor(in.Valor)
	if err != nil {
		return nil, fmt.Errorf("%w: valor: %v", ErrGeneration, err)
	}
	now := uc.now()
	c := &entity.Contract{
		ID:             uuid.New().String(),
		Condominio:     in.Condominio,
		CNPJCondominio: in.CNPJCondominio,
		Empresa:        in.Empresa,
		CNPJEmpresa:    in.CNPJEmpresa,
		Valor:          in.Valor,
		ValorNumerico:  valorNum,
		DataAssinatura: in.DataAssinatura,
		PDFURL:         url,
		Status:         entity.StatusGenerated,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, fmt.Errorf("%w: persistir: %v", ErrGeneration, err)
	}

	return &dto.GenerateContractResponse{
		PDFURL:   url,
		Message:  "Contrato gerado com sucesso",
		Contract: *entityToContractResponse(c),
	}, nil
}
