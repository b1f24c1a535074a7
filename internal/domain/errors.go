package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound      = errors.New("recurso não encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnauthorized  = errors.New("não autorizado")
	ErrInvalidStatus = errors.New("status de contrato inválido")
	ErrNoTextContent = errors.New("o PDF não possui camada de texto extraível")
	ErrPDFParse      = errors.New("não foi possível ler o PDF")
)
