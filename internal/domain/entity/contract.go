package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status do ciclo de vida de um contrato.
const (
	StatusPending   = "pending"   // registro criado, PDF ainda não gerado
	StatusGenerated = "generated" // PDF gerado e armazenado
	StatusSigned    = "signed"
	StatusCancelled = "cancelled"
)

// ValidStatuses lista os status aceitos em criação/atualização.
var ValidStatuses = []string{StatusPending, StatusGenerated, StatusSigned, StatusCancelled}

// IsValidStatus verifica se s é um status de contrato conhecido.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Contract representa um contrato de prestação de serviços entre uma
// empresa (contratada) e um condomínio (contratante).
type Contract struct {
	ID             string
	Condominio     string
	CNPJCondominio string // formato canônico NN.NNN.NNN/NNNN-NN
	Empresa        string // opcional
	CNPJEmpresa    string // opcional; canônico quando presente
	Valor          string // literal monetário com vírgula decimal, ex.: "8.500,00"
	// ValorNumerico é derivado de Valor na escrita; usado para ordenar e
	// filtrar por faixa de valor sem reparsear o literal.
	ValorNumerico  decimal.Decimal
	DataAssinatura string // ISO YYYY-MM-DD
	PDFURL         string // vazio até a geração do PDF
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
