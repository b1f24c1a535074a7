// Package contract contém as regras de validação de campos de contrato,
// aplicadas antes de qualquer renderização ou persistência. A validação
// devolve sempre a lista completa de problemas {campo, mensagem}, nunca um
// erro opaco único.
package contract

import (
	"strings"
	"time"

	"github.com/livo/contratos-api/internal/domain/extract"
)

// FieldError um problema de validação em um campo específico.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate aplica as regras sobre um conjunto de campos extraído ou
// editado pelo usuário:
//
//   - condominio obrigatório
//   - cnpj_condominio obrigatório e no formato canônico
//   - valor obrigatório com forma de literal monetário
//   - data_assinatura obrigatória e data de calendário real (31/02 cai aqui)
//   - empresa/cnpj_empresa opcionais; cnpj_empresa canônico quando presente
func Validate(f extract.Fields) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(f.Condominio) == "" {
		errs = append(errs, FieldError{"condominio", "nome do condomínio é obrigatório"})
	}
	switch {
	case strings.TrimSpace(f.CNPJCondominio) == "":
		errs = append(errs, FieldError{"cnpj_condominio", "CNPJ do condomínio é obrigatório"})
	case !extract.IsCanonicalCNPJ(f.CNPJCondominio):
		errs = append(errs, FieldError{"cnpj_condominio", "CNPJ deve estar no formato NN.NNN.NNN/NNNN-NN"})
	}
	if f.CNPJEmpresa != "" && !extract.IsCanonicalCNPJ(f.CNPJEmpresa) {
		errs = append(errs, FieldError{"cnpj_empresa", "CNPJ deve estar no formato NN.NNN.NNN/NNNN-NN"})
	}

	switch {
	case strings.TrimSpace(f.Valor) == "":
		errs = append(errs, FieldError{"valor", "valor é obrigatório"})
	case !extract.IsMonetaryLiteral(f.Valor):
		errs = append(errs, FieldError{"valor", "formato de valor inválido"})
	}

	switch {
	case strings.TrimSpace(f.DataAssinatura) == "":
		errs = append(errs, FieldError{"data_assinatura", "data de assinatura é obrigatória"})
	default:
		if _, err := time.Parse("2006-01-02", f.DataAssinatura); err != nil {
			errs = append(errs, FieldError{"data_assinatura", "data inválida (esperado AAAA-MM-DD de calendário real)"})
		}
	}

	return errs
}
