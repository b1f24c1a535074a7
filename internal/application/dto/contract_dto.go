package dto

import "time"

// CreateContractRequest criação manual de um registro de contrato
// (status inicial "pending" quando omitido).
type CreateContractRequest struct {
	Condominio     string `json:"condominio"`
	CNPJCondominio string `json:"cnpj_condominio"`
	Empresa        string `json:"empresa"`
	CNPJEmpresa    string `json:"cnpj_empresa"`
	Valor          string `json:"valor"`
	DataAssinatura string `json:"data_assinatura"`
	Status         string `json:"status"`
}

// UpdateContractRequest atualização parcial: só os campos presentes no
// JSON são aplicados.
type UpdateContractRequest struct {
	Condominio     *string `json:"condominio"`
	CNPJCondominio *string `json:"cnpj_condominio"`
	Empresa        *string `json:"empresa"`
	CNPJEmpresa    *string `json:"cnpj_empresa"`
	Valor          *string `json:"valor"`
	DataAssinatura *string `json:"data_assinatura"`
	PDFURL         *string `json:"pdf_url"`
	Status         *string `json:"status"`
}

// GenerateContractRequest campos (extraídos e/ou editados) para o fluxo
// de geração do contrato em PDF.
type GenerateContractRequest struct {
	Condominio     string `json:"condominio"`
	CNPJCondominio string `json:"cnpj_condominio"`
	Empresa        string `json:"empresa"`
	CNPJEmpresa    string `json:"cnpj_empresa"`
	Valor          string `json:"valor"`
	DataAssinatura string `json:"data_assinatura"`
}

// ContractResponse representação HTTP de um contrato persistido.
type ContractResponse struct {
	ID             string    `json:"id"`
	Condominio     string    `json:"condominio"`
	CNPJCondominio string    `json:"cnpj_condominio"`
	Empresa        string    `json:"empresa,omitempty"`
	CNPJEmpresa    string    `json:"cnpj_empresa,omitempty"`
	Valor          string    `json:"valor"`
	DataAssinatura string    `json:"data_assinatura"`
	PDFURL         string    `json:"pdf_url,omitempty"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ContractListResponse listagem paginada.
type ContractListResponse struct {
	Items []ContractResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ContractFilterRequest filtros de listagem (query string).
type ContractFilterRequest struct {
	Condominio string `query:"condominio"`
	Status     string `query:"status"`
	StartDate  string `query:"start_date"`
	EndDate    string `query:"end_date"`
	MinValor   string `query:"min_valor"`
	MaxValor   string `query:"max_valor"`
}

// GenerateContractResponse resultado da geração: URL durável do PDF e o
// registro persistido.
type GenerateContractResponse struct {
	PDFURL   string           `json:"pdf_url"`
	Message  string           `json:"message"`
	Contract ContractResponse `json:"contract"`
}
