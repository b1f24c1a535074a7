package render

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/livo/contratos-api/internal/domain/extract"
)

// htmlEscaper escapa os caracteres perigosos para interpolação em HTML.
// Os valores vêm de documentos enviados pelo usuário e são entrada
// adversarial para um motor que interpreta HTML; o escape acontece ANTES
// da montagem do template.
var htmlEscaper = strings.NewReplacer(
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// EscapeHTML escapa < > " ' / em um valor de campo.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// templateData valores já escapados e formatados para o template.
type templateData struct {
	Condominio     string
	CNPJCondominio string
	Empresa        string
	CNPJEmpresa    string
	ValorDisplay   string
	DataDisplay    string
}

// buildHTML monta o HTML do contrato com os campos escapados.
func buildHTML(f extract.Fields) (string, error) {
	data := templateData{
		Condominio:     EscapeHTML(f.Condominio),
		CNPJCondominio: EscapeHTML(f.CNPJCondominio),
		Empresa:        EscapeHTML(f.Empresa),
		CNPJEmpresa:    EscapeHTML(f.CNPJEmpresa),
		ValorDisplay:   EscapeHTML(FormatCurrency(f.Valor)),
		DataDisplay:    EscapeHTML(FormatDateLong(f.DataAssinatura)),
	}
	var buf bytes.Buffer
	if err := contractTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executar template: %w", err)
	}
	return buf.String(), nil
}

// contractTemplate é o template do contrato. text/template de propósito:
// os valores já chegam escapados e o auto-escape contextual do
// html/template duplicaria as entidades.
var contractTemplate = template.Must(template.New("contract").Parse(`<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<title>Contrato de Prestação de Serviços</title>
<style>
  body { font-family: Georgia, 'Times New Roman', serif; font-size: 12pt; color: #1a1a1a; line-height: 1.6; }
  h1 { text-align: center; font-size: 14pt; text-transform: uppercase; margin-bottom: 28px; }
  .clausula { margin-top: 18px; text-align: justify; }
  .partes { margin: 20px 0; }
  .assinaturas { margin-top: 70px; display: flex; justify-content: space-between; }
  .assinatura { width: 45%; border-top: 1px solid #1a1a1a; text-align: center; padding-top: 6px; font-size: 10pt; }
  .destaque { font-weight: bold; }
</style>
</head>
<body>
<h1>Contrato de Prestação de Serviços</h1>

<div class="partes">
<p><span class="destaque">CONTRATANTE:</span> Condomínio {{.Condominio}},
inscrito no CNPJ sob o nº {{.CNPJCondominio}}, doravante denominado CONTRATANTE.</p>
{{if .Empresa}}
<p><span class="destaque">CONTRATADA:</span> {{.Empresa}}{{if .CNPJEmpresa}},
inscrita no CNPJ sob o nº {{.CNPJEmpresa}}{{end}}, doravante denominada CONTRATADA.</p>
{{end}}
</div>

<div class="clausula">
<p><span class="destaque">CLÁUSULA PRIMEIRA – DO OBJETO.</span>
O presente instrumento tem por objeto a prestação de serviços pela CONTRATADA
ao CONTRATANTE, conforme proposta comercial aprovada pelas partes.</p>
</div>

<div class="clausula">
<p><span class="destaque">CLÁUSULA SEGUNDA – DO VALOR.</span>
Pelos serviços prestados, o CONTRATANTE pagará à CONTRATADA o valor de
<span class="destaque">{{.ValorDisplay}}</span>, na forma e condições
pactuadas na proposta comercial.</p>
</div>

<div class="clausula">
<p><span class="destaque">CLÁUSULA TERCEIRA – DA VIGÊNCIA.</span>
Este contrato passa a viger na data de sua assinatura, em {{.DataDisplay}}.</p>
</div>

<div class="assinaturas">
  <div class="assinatura">CONTRATANTE<br>Condomínio {{.Condominio}}</div>
  <div class="assinatura">CONTRATADA<br>{{if .Empresa}}{{.Empresa}}{{else}}&nbsp;{{end}}</div>
</div>
</body>
</html>
`))
