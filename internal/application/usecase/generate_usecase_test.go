package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livo/contratos-api/internal/application/dto"
	"github.com/livo/contratos-api/internal/application/usecase"
	"github.com/livo/contratos-api/internal/domain"
	"github.com/livo/contratos-api/internal/domain/entity"
	"github.com/livo/contratos-api/internal/domain/extract"
)

// stubRenderer devolve bytes fixos ou um erro.
type stubRenderer struct {
	pdf    []byte
	err    error
	called bool
}

func (r *stubRenderer) Render(_ context.Context, _ extract.Fields) ([]byte, error) {
	r.called = true
	return r.pdf, r.err
}

// stubStorage registra o nome do objeto enviado.
type stubStorage struct {
	url        string
	err        error
	objectName string
	uploaded   []byte
}

func (s *stubStorage) UploadPDF(_ context.Context, objectName string, data []byte) (string, error) {
	s.objectName = objectName
	s.uploaded = data
	return s.url, s.err
}

// stubPDFReader devolve texto fixo ou erro (para o fluxo de extração).
type stubPDFReader struct {
	text string
	err  error
}

func (r *stubPDFReader) ExtractText(_ context.Context, _ []byte) (string, error) {
	return r.text, r.err
}

func validGenerateRequest() dto.GenerateContractRequest {
	return dto.GenerateContractRequest{
		Condominio:     "Jardim das Flores",
		CNPJCondominio: "11.222.333/0001-44",
		Empresa:        "ACME Serviços Ltda",
		CNPJEmpresa:    "55.666.777/0001-88",
		Valor:          "8.500,00",
		DataAssinatura: "2024-06-12",
	}
}

func fixedClock() func() time.Time {
	instant := time.Date(2024, 6, 12, 10, 0, 0, 0, time.UTC)
	return func() time.Time { return instant }
}

// ──────────────────────────────────────────────────────────────────────────────

func TestGenerate_FluxoCompleto(t *testing.T) {
	repo := newFakeRepo()
	renderer := &stubRenderer{pdf: []byte("%PDF-1.4 conteudo")}
	storage := &stubStorage{url: "https://storage.livo.app/contracts-pdfs/obj.pdf"}
	uc := usecase.NewGenerateUseCase(repo, renderer, storage, fixedClock())

	resp, err := uc.Generate(context.Background(), validGenerateRequest())
	require.NoError(t, err)

	assert.Equal(t, storage.url, resp.PDFURL)
	assert.Equal(t, "Contrato gerado com sucesso", resp.Message)
	assert.Equal(t, entity.StatusGenerated, resp.Contract.Status)
	assert.Equal(t, []byte("%PDF-1.4 conteudo"), storage.uploaded)

	// Nome do objeto: contract-<timestamp>-<condominio-com-hifens>.pdf
	wantName := fmt.Sprintf("contract-%d-Jardim-das-Flores.pdf", fixedClock()().UnixMilli())
	assert.Equal(t, wantName, storage.objectName)

	stored, _ := repo.GetByID(resp.Contract.ID)
	require.NotNil(t, stored)
	assert.Equal(t, storage.url, stored.PDFURL)
}

func TestGenerate_ValidacaoAntesDeRenderizar(t *testing.T) {
	renderer := &stubRenderer{pdf: []byte("pdf")}
	uc := usecase.NewGenerateUseCase(newFakeRepo(), renderer, &stubStorage{}, fixedClock())

	in := validGenerateRequest()
	in.DataAssinatura = "2024-02-31" // data impossível

	_, err := uc.Generate(context.Background(), in)
	var verr *usecase.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.False(t, renderer.called, "nada deve ser renderizado com campos inválidos")
}

func TestGenerate_FalhaDeRenderizacao(t *testing.T) {
	renderer := &stubRenderer{err: errors.New("chromium não respondeu")}
	storage := &stubStorage{url: "ignorada"}
	uc := usecase.NewGenerateUseCase(newFakeRepo(), renderer, storage, fixedClock())

	_, err := uc.Generate(context.Background(), validGenerateRequest())
	assert.ErrorIs(t, err, usecase.ErrGeneration)
	assert.Empty(t, storage.objectName, "upload não deve acontecer se a renderização falhar")
}

func TestGenerate_FalhaDeUpload_NaoPersiste(t *testing.T) {
	repo := newFakeRepo()
	storage := &stubStorage{err: errors.New("bucket indisponível")}
	uc := usecase.NewGenerateUseCase(repo, &stubRenderer{pdf: []byte("pdf")}, storage, fixedClock())

	_, err := uc.Generate(context.Background(), validGenerateRequest())
	assert.ErrorIs(t, err, usecase.ErrGeneration)
	assert.Empty(t, repo.byID, "nenhum registro deve ser criado se o upload falhar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Extração (PDF → texto → campos)
// ──────────────────────────────────────────────────────────────────────────────

func TestExtractUseCase_PDFIlegivel(t *testing.T) {
	uc := usecase.NewExtractUseCase(&stubPDFReader{err: errors.New("xref corrompido")})
	_, err := uc.Extract(context.Background(), []byte("nao é pdf"))
	assert.ErrorIs(t, err, domain.ErrPDFParse)
}

func TestExtractUseCase_TextoAbaixoDoLimiar(t *testing.T) {
	uc := usecase.NewExtractUseCase(&stubPDFReader{text: "curto demais"})
	_, err := uc.Extract(context.Background(), []byte("%PDF-"))
	assert.ErrorIs(t, err, domain.ErrNoTextContent,
		"digitalização sem camada de texto deve ser rejeitada")
}

func TestExtractUseCase_CamposExtraidos(t *testing.T) {
	text := "Contrato de prestação de serviços. Condomínio Jardim das Flores, " +
		"CNPJ 11.222.333/0001-44, valor global R$ 8.500,00, em 12/06/2024."
	uc := usecase.NewExtractUseCase(&stubPDFReader{text: text})

	fields, err := uc.Extract(context.Background(), []byte("%PDF-"))
	require.NoError(t, err)
	assert.Equal(t, "Jardim das Flores", fields.Condominio)
	assert.Equal(t, "11.222.333/0001-44", fields.CNPJCondominio)
	assert.Equal(t, "8.500,00", fields.Valor)
	assert.Equal(t, "2024-06-12", fields.DataAssinatura)
}
