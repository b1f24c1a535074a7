package render

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/livo/contratos-api/internal/domain/extract"
)

var colorInk = &props.Color{Red: 26, Green: 26, Blue: 26}

// MarotoRenderer renderizador nativo, sem navegador: monta o contrato
// direto em PDF com Maroto. Usado quando não há Chromium no ambiente.
type MarotoRenderer struct{}

// NewMarotoRenderer constrói o renderizador nativo.
func NewMarotoRenderer() *MarotoRenderer { return &MarotoRenderer{} }

// Render produz o contrato em A4 com o mesmo conteúdo do template HTML.
func (g *MarotoRenderer) Render(_ context.Context, f extract.Fields) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(20).WithRightMargin(20).
		WithTopMargin(20).WithBottomMargin(20).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 11}).
		WithTitle("Contrato de Prestação de Serviços", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(14).Add(col.New(12).Add(
		text.New("CONTRATO DE PRESTAÇÃO DE SERVIÇOS", props.Text{
			Style: fontstyle.Bold, Size: 13, Align: align.Center, Color: colorInk, Top: 2,
		}),
	)))
	m.AddRows(line.NewRow(2, props.Line{Color: colorInk, Thickness: 0.3}))

	m.AddRows(paragraph(fmt.Sprintf(
		"CONTRATANTE: Condomínio %s, inscrito no CNPJ sob o nº %s.",
		f.Condominio, f.CNPJCondominio,
	)))
	if f.Empresa != "" {
		p := fmt.Sprintf("CONTRATADA: %s", f.Empresa)
		if f.CNPJEmpresa != "" {
			p += fmt.Sprintf(", inscrita no CNPJ sob o nº %s", f.CNPJEmpresa)
		}
		m.AddRows(paragraph(p + "."))
	}

	m.AddRows(paragraph(
		"CLÁUSULA PRIMEIRA – DO OBJETO. O presente instrumento tem por objeto a " +
			"prestação de serviços pela CONTRATADA ao CONTRATANTE, conforme proposta " +
			"comercial aprovada pelas partes.",
	))
	m.AddRows(paragraph(fmt.Sprintf(
		"CLÁUSULA SEGUNDA – DO VALOR. Pelos serviços prestados, o CONTRATANTE "+
			"pagará à CONTRATADA o valor de %s, na forma e condições pactuadas na "+
			"proposta comercial.", FormatCurrency(f.Valor),
	)))
	m.AddRows(paragraph(fmt.Sprintf(
		"CLÁUSULA TERCEIRA – DA VIGÊNCIA. Este contrato passa a viger na data de "+
			"sua assinatura, em %s.", FormatDateLong(f.DataAssinatura),
	)))

	m.AddRows(row.New(30))
	m.AddRows(signatureRow(f))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("maroto: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func paragraph(s string) core.Row {
	return row.New(18).Add(col.New(12).Add(
		text.New(s, props.Text{Size: 11, Top: 3, Color: colorInk}),
	))
}

// signatureRow duas linhas de assinatura lado a lado.
func signatureRow(f extract.Fields) core.Row {
	contratada := f.Empresa
	if contratada == "" {
		contratada = "CONTRATADA"
	}
	sig := func(label string) core.Col {
		return col.New(6).Add(
			text.New("______________________________", props.Text{
				Size: 10, Align: align.Center, Color: colorInk,
			}),
			text.New(label, props.Text{
				Size: 9, Align: align.Center, Top: 6, Color: colorInk,
			}),
		)
	}
	return row.New(16).Add(
		sig("CONTRATANTE – Condomínio "+f.Condominio),
		sig("CONTRATADA – "+contratada),
	)
}
