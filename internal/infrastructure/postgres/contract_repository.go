package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/livo/contratos-api/internal/domain"
	"github.com/livo/contratos-api/internal/domain/entity"
	"github.com/livo/contratos-api/internal/domain/repository"
)

var _ repository.ContractRepository = (*ContractRepo)(nil)

const contractColumns = `id, condominio, cnpj_condominio, empresa, cnpj_empresa,
	valor, valor_numerico, data_assinatura, pdf_url, status, created_at, updated_at`

// ContractRepo implementação de ContractRepository (usável com pool ou tx).
type ContractRepo struct {
	q Querier
}

// NewContractRepository constrói o adaptador. Aceita pool ou tx (Querier).
func NewContractRepository(q Querier) *ContractRepo {
	return &ContractRepo{q: q}
}

// Create persiste um novo contrato.
func (r *ContractRepo) Create(c *entity.Contract) error {
	query := `
		INSERT INTO contracts (` + contractColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.Condominio, c.CNPJCondominio, nullable(c.Empresa), nullable(c.CNPJEmpresa),
		c.Valor, c.ValorNumerico, c.DataAssinatura, nullable(c.PDFURL), c.Status,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert contract: %w", err)
	}
	return nil
}

// GetByID obtém um contrato por ID. Devolve (nil, nil) quando não existe.
func (r *ContractRepo) GetByID(id string) (*entity.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE id = $1`
	c, err := scanContract(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get contract: %w", err)
	}
	return c, nil
}

// List lista contratos por criação decrescente, com paginação.
func (r *ContractRepo) List(limit, offset int) ([]*entity.Contract, error) {
	query := `SELECT ` + contractColumns + `
		FROM contracts ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()
	return collectContracts(rows)
}

// Filter lista contratos aplicando os critérios não vazios do filtro,
// sempre por criação decrescente.
func (r *ContractRepo) Filter(f repository.ContractFilter, limit, offset int) ([]*entity.Contract, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.Condominio != "" {
		conds = append(conds, "condominio ILIKE "+arg("%"+f.Condominio+"%"))
	}
	if f.Status != "" {
		conds = append(conds, "status = "+arg(f.Status))
	}
	if f.StartDate != "" {
		conds = append(conds, "created_at >= "+arg(f.StartDate))
	}
	if f.EndDate != "" {
		conds = append(conds, "created_at <= "+arg(f.EndDate))
	}
	if f.MinValor != nil {
		conds = append(conds, "valor_numerico >= "+arg(*f.MinValor))
	}
	if f.MaxValor != nil {
		conds = append(conds, "valor_numerico <= "+arg(*f.MaxValor))
	}

	query := `SELECT ` + contractColumns + ` FROM contracts`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT %s OFFSET %s", arg(limit), arg(offset))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("filter contracts: %w", err)
	}
	defer rows.Close()
	return collectContracts(rows)
}

// Update sobrescreve os campos mutáveis do contrato.
func (r *ContractRepo) Update(c *entity.Contract) error {
	query := `
		UPDATE contracts SET condominio = $2, cnpj_condominio = $3, empresa = $4,
			cnpj_empresa = $5, valor = $6, valor_numerico = $7, data_assinatura = $8,
			pdf_url = $9, status = $10, updated_at = $11
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		c.ID, c.Condominio, c.CNPJCondominio, nullable(c.Empresa), nullable(c.CNPJEmpresa),
		c.Valor, c.ValorNumerico, c.DataAssinatura, nullable(c.PDFURL), c.Status, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update contract: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete remove um contrato por ID (sem soft-delete).
func (r *ContractRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM contracts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}
	return nil
}

// nullable converte string vazia em NULL (empresa, cnpj_empresa, pdf_url).
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func scanContract(row pgx.Row) (*entity.Contract, error) {
	var (
		c                          entity.Contract
		empresa, cnpjEmp, pdfURL *string
	)
	err := row.Scan(
		&c.ID, &c.Condominio, &c.CNPJCondominio, &empresa, &cnpjEmp,
		&c.Valor, &c.ValorNumerico, &c.DataAssinatura, &pdfURL, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if empresa != nil {
		c.Empresa = *empresa
	}
	if cnpjEmp != nil {
		c.CNPJEmpresa = *cnpjEmp
	}
	if pdfURL != nil {
		c.PDFURL = *pdfURL
	}
	return &c, nil
}

func collectContracts(rows pgx.Rows) ([]*entity.Contract, error) {
	var list []*entity.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
