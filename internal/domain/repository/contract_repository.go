package repository

import (
	"github.com/shopspring/decimal"

	"github.com/livo/contratos-api/internal/domain/entity"
)

// ContractFilter critérios de filtragem para listagem de contratos.
// Campos zero são ignorados.
type ContractFilter struct {
	Condominio string // substring, case-insensitive
	Status     string
	StartDate  string // created_at >= StartDate (ISO)
	EndDate    string // created_at <= EndDate (ISO)
	MinValor   *decimal.Decimal
	MaxValor   *decimal.Decimal
}

// ContractRepository define o porto de persistência para Contract.
type ContractRepository interface {
	Create(contract *entity.Contract) error
	GetByID(id string) (*entity.Contract, error)
	List(limit, offset int) ([]*entity.Contract, error)
	Filter(f ContractFilter, limit, offset int) ([]*entity.Contract, error)
	Update(contract *entity.Contract) error
	Delete(id string) error
}
