package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/livo/contratos-api/internal/application/dto"
	"github.com/livo/contratos-api/internal/domain"
	"github.com/livo/contratos-api/internal/domain/contract"
	"github.com/livo/contratos-api/internal/domain/entity"
	"github.com/livo/contratos-api/internal/domain/extract"
	"github.com/livo/contratos-api/internal/domain/repository"
)

// ContractUseCase casos de uso CRUD sobre contratos persistidos.
type ContractUseCase struct {
	repo repository.ContractRepository
}

// NewContractUseCase constrói o caso de uso com o porto de persistência.
func NewContractUseCase(repo repository.ContractRepository) *ContractUseCase {
	return &ContractUseCase{repo: repo}
}

// Create cria um registro de contrato manualmente (sem PDF), com status
// "pending" quando não informado. Valida os campos antes de persistir.
func (uc *ContractUseCase) Create(in dto.CreateContractRequest) (*dto.ContractResponse, error) {
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
	status := in.Status
	if status == "" {
		status = entity.StatusPending
	}
	if !entity.IsValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	valorNum, err := extract.ParseValor(in.Valor)
	if err != nil {
		// Validate já garantiu a forma; se chegou aqui é bug de parser.
		return nil, err
	}
	now := time.Now()
	c := &entity.Contract{
		ID:             uuid.New().String(),
		Condominio:     in.Condominio,
		CNPJCondominio: in.CNPJCondominio,
		Empresa:        in.Empresa,
		CNPJEmpresa:    in.CNPJEmpresa,
		Valor:          in.Valor,
		ValorNumerico:  valorNum,
		DataAssinatura: in.DataAssinatura,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return entityToContractResponse(c), nil
}

// GetByID obtém um contrato por ID. Devolve domain.ErrNotFound se não existir.
func (uc *ContractUseCase) GetByID(id string) (*dto.ContractResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return entityToContractResponse(c), nil
}

// List lista contratos ordenados por criação (desc), com filtros opcionais.
func (uc *ContractUseCase) List(in dto.ContractFilterRequest, page dto.PageRequest) (*dto.ContractListResponse, error) {
	page.DefaultPage()

	var (
		list []*entity.Contract
		err  error
	)
	f := repository.ContractFilter{
		Condominio: in.Condominio,
		Status:     in.Status,
		StartDate:  in.StartDate,
		EndDate:    in.EndDate,
	}
	if in.MinValor != "" {
		if v, perr := extract.ParseValor(in.MinValor); perr == nil {
			f.MinValor = &v
		}
	}
	if in.MaxValor != "" {
		if v, perr := extract.ParseValor(in.MaxValor); perr == nil {
			f.MaxValor = &v
		}
	}
	if f == (repository.ContractFilter{}) {
		list, err = uc.repo.List(page.Limit, page.Offset)
	} else {
		list, err = uc.repo.Filter(f, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	items := make([]dto.ContractResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *entityToContractResponse(c))
	}
	return &dto.ContractListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Update aplica uma atualização parcial. Campos ausentes no request não
// são tocados; o resultado combinado precisa continuar válido.
func (uc *ContractUseCase) Update(id string, in dto.UpdateContractRequest) (*dto.ContractResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}

	if in.Condominio != nil {
		c.Condominio = *in.Condominio
	}
	if in.CNPJCondominio != nil {
		c.CNPJCondominio = *in.CNPJCondominio
	}
	if in.Empresa != nil {
		c.Empresa = *in.Empresa
	}
	if in.CNPJEmpresa != nil {
		c.CNPJEmpresa = *in.CNPJEmpresa
	}
	if in.DataAssinatura != nil {
		c.DataAssinatura = *in.DataAssinatura
	}
	if in.PDFURL != nil {
		c.PDFURL = *in.PDFURL
	}
	if in.Valor != nil {
		c.Valor = *in.Valor
	}
	if in.Status != nil {
		if !entity.IsValidStatus(*in.Status) {
			return nil, domain.ErrInvalidStatus
		}
		c.Status = *in.Status
	}

	fields := extract.Fields{
		Condominio:     c.Condominio,
		CNPJCondominio: c.CNPJCondominio,
		Empresa:        c.Empresa,
		CNPJEmpresa:    c.CNPJEmpresa,
		Valor:          c.Valor,
		DataAssinatura: c.DataAssinatura,
	}
	if errs := contract.Validate(fields); len(errs) > 0 {
		return nil, &ValidationError{Details: errs}
	}
	if in.Valor != nil {
		valorNum, perr := extract.ParseValor(c.Valor)
		if perr != nil {
			return nil, perr
		}
		c.ValorNumerico = valorNum
	}
	c.UpdatedAt = time.Now()

	if err := uc.repo.Update(c); err != nil {
		return nil, err
	}
	return entityToContractResponse(c), nil
}

// Delete remove um contrato definitivamente (sem soft-delete).
func (uc *ContractUseCase) Delete(id string) error {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if c == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func entityToContractResponse(c *entity.Contract) *dto.ContractResponse {
	if c == nil {
		return nil
	}
	return &dto.ContractResponse{
		ID:             c.ID,
		Condominio:     c.Condominio,
		CNPJCondominio: c.CNPJCondominio,
		Empresa:        c.Empresa,
		CNPJEmpresa:    c.CNPJEmpresa,
		Valor:          c.Valor,
		DataAssinatura: c.DataAssinatura,
		PDFURL:         c.PDFURL,
		Status:         c.Status,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
