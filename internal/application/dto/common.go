package dto

// PageRequest paginação para listagens.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores padrão se Limit/Offset forem zero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse metadados de página nas respostas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// FieldDetail um problema de validação em um campo, na resposta HTTP.
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse corpo de erro HTTP. Details só é preenchido em erros de
// validação (um item por campo problemático).
type ErrorResponse struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Details []FieldDetail `json:"details,omitempty"`
}
