package usecase

import (
	"errors"
	"fmt"

	"github.com/livo/contratos-api/internal/domain/contract"
)

// ValidationError agrupa os problemas de validação de campos para que o
// handler devolva a lista {field, message} completa, nunca um erro opaco.
type ValidationError struct {
	Details []contract.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validação falhou em %d campo(s)", len(e.Details))
}

// ErrGeneration sinaliza falha de colaborador durante a geração do PDF
// (renderização, upload ou persistência). O detalhe fica no wrap.
var ErrGeneration = errors.New("falha na geração do contrato")
