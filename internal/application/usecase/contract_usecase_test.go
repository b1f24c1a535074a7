package usecase_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livo/contratos-api/internal/application/dto"
	"github.com/livo/contratos-api/internal/application/usecase"
	"github.com/livo/contratos-api/internal/domain"
	"github.com/livo/contratos-api/internal/domain/entity"
	"github.com/livo/contratos-api/internal/domain/repository"
)

// fakeContractRepo implementação em memória de ContractRepository.
type fakeContractRepo struct {
	byID      map[string]*entity.Contract
	createErr error
}

func newFakeRepo() *fakeContractRepo {
	return &fakeContractRepo{byID: map[string]*entity.Contract{}}
}

func (r *fakeContractRepo) Create(c *entity.Contract) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *fakeContractRepo) GetByID(id string) (*entity.Contract, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeContractRepo) List(limit, offset int) ([]*entity.Contract, error) {
	var list []*entity.Contract
	for _, c := range r.byID {
		cp := *c
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	if offset >= len(list) {
		return nil, nil
	}
	list = list[offset:]
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (r *fakeContractRepo) Filter(f repository.ContractFilter, limit, offset int) ([]*entity.Contract, error) {
	all, _ := r.List(limit+offset, 0)
	var out []*entity.Contract
	for _, c := range all {
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *fakeContractRepo) Update(c *entity.Contract) error {
	if _, ok := r.byID[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *fakeContractRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func validCreateRequest() dto.CreateContractRequest {
	return dto.CreateContractRequest{
		Condominio:     "Jardim das Flores",
		CNPJCondominio: "11.222.333/0001-44",
		Empresa:        "ACME Serviços Ltda",
		CNPJEmpresa:    "55.666.777/0001-88",
		Valor:          "8.500,00",
		DataAssinatura: "2024-06-12",
	}
}

// ──────────────────────────────────────────────────────────────────────────────

func TestContractCreate_StatusPadraoPending(t *testing.T) {
	repo := newFakeRepo()
	uc := usecase.NewContractUseCase(repo)

	resp, err := uc.Create(validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPending, resp.Status)
	assert.NotEmpty(t, resp.ID)
	assert.Empty(t, resp.PDFURL, "pdf_url só é preenchido pela geração")

	stored, _ := repo.GetByID(resp.ID)
	require.NotNil(t, stored)
	assert.Equal(t, "8500", stored.ValorNumerico.String(), "valor numérico derivado do literal")
}

func TestContractCreate_ValidacaoDevolveDetalhes(t *testing.T) {
	uc := usecase.NewContractUseCase(newFakeRepo())

	in := validCreateRequest()
	in.Valor = ""
	in.CNPJCondominio = "malformado"

	_, err := uc.Create(in)
	var verr *usecase.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Details, 2)
}

func TestContractCreate_StatusDesconhecidoRejeitado(t *testing.T) {
	uc := usecase.NewContractUseCase(newFakeRepo())
	in := validCreateRequest()
	in.Status = "arquivado"
	_, err := uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestContractGetByID_NaoEncontrado(t *testing.T) {
	uc := usecase.NewContractUseCase(newFakeRepo())
	_, err := uc.GetByID("inexistente")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContractUpdate_Parcial(t *testing.T) {
	repo := newFakeRepo()
	uc := usecase.NewContractUseCase(repo)
	created, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	status := entity.StatusSigned
	updated, err := uc.Update(created.ID, dto.UpdateContractRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSigned, updated.Status)
	assert.Equal(t, created.Condominio, updated.Condominio, "campos ausentes não são tocados")
}

func TestContractUpdate_ValorRecalculaNumerico(t *testing.T) {
	repo := newFakeRepo()
	uc := usecase.NewContractUseCase(repo)
	created, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	novo := "12.000,50"
	_, err = uc.Update(created.ID, dto.UpdateContractRequest{Valor: &novo})
	require.NoError(t, err)

	stored, _ := repo.GetByID(created.ID)
	assert.Equal(t, "12.000,50", stored.Valor)
	assert.Equal(t, "12000.5", stored.ValorNumerico.String())
}

func TestContractUpdate_ResultadoInvalidoRejeitado(t *testing.T) {
	uc := usecase.NewContractUseCase(newFakeRepo())
	created, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	vazio := ""
	_, err = uc.Update(created.ID, dto.UpdateContractRequest{Condominio: &vazio})
	var verr *usecase.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestContractDelete(t *testing.T) {
	repo := newFakeRepo()
	uc := usecase.NewContractUseCase(repo)
	created, err := uc.Create(validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	_, err = uc.GetByID(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrNotFound)
}

func TestContractCreate_ErroDoRepositorioPropagado(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = errors.New("db indisponível")
	uc := usecase.NewContractUseCase(repo)
	_, err := uc.Create(validCreateRequest())
	assert.EqualError(t, err, "db indisponível")
}
