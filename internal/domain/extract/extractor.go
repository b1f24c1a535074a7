// Package extract implementa a heurística de extração de campos de
// contrato a partir do texto plano de uma proposta comercial em PDF.
//
// A extração é melhor-esforço por definição: o resultado é um pré-
// preenchimento sempre editável pelo usuário antes da geração do contrato.
// Nenhuma função deste pacote propaga pânico ou erro para o chamador — o
// pior caso é um resultado com campos vazios.
package extract

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fields é o resultado transiente da extração. Todos os campos são string
// e nunca nulos, para que o binding de formulário a jusante não quebre.
type Fields struct {
	Empresa        string `json:"empresa"`
	CNPJEmpresa    string `json:"cnpj_empresa"`
	Condominio     string `json:"condominio"`
	CNPJCondominio string `json:"cnpj_condominio"`
	Valor          string `json:"valor"`
	DataAssinatura string `json:"data_assinatura"`
}

// datePattern reconhece datas D[D]/M[M]/AAAA com separador "/", "-" ou ".".
var datePattern = regexp.MustCompile(`\b(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{4})\b`)

// Extract aplica a heurística completa sobre o texto de um documento.
// Qualquer falha inesperada em uma das etapas degrada para o resultado
// parcial acumulado até ali.
func Extract(text string) (out Fields) {
	defer func() {
		// Extração nunca propaga pânico; devolve o que já foi preenchido.
		_ = recover()
	}()

	out.CNPJCondominio, out.CNPJEmpresa = extractCNPJs(text)
	out.Valor = findMaxValor(text)
	out.DataAssinatura = extractDataAssinatura(text)
	out.Condominio = extractName(text, condominioLabels)
	out.Empresa = extractName(text, empresaLabels)
	return out
}

// extractCNPJs varre o texto da esquerda para a direita e atribui cada
// CNPJ encontrado a um dos dois papéis pelo contexto:
//
//  1. palavra-chave de empresa na janela e slot de empresa livre → empresa
//  2. palavra-chave de condomínio na janela e slot livre → condomínio
//  3. sem palavra-chave: condomínio primeiro (balde padrão), depois empresa
//
// A janela anterior ao match tem prioridade sobre a posterior: em contratos
// o nome da parte precede o seu CNPJ ("Condomínio X, CNPJ nº ..."), então a
// menção à outra parte logo depois do número não deve roubar a atribuição.
// Preenchidos os dois slots, matches posteriores são ignorados.
func extractCNPJs(text string) (condominio, empresa string) {
	for _, loc := range cnpjPattern.FindAllStringIndex(text, -1) {
		if condominio != "" && empresa != "" {
			break
		}
		formatted, ok := NormalizeCNPJ(text[loc[0]:loc[1]])
		if !ok {
			continue
		}
		// Mesmo CNPJ citado mais de uma vez não ocupa o segundo slot.
		if formatted == condominio || formatted == empresa {
			continue
		}
		before := foldContext(contextBefore(text, loc[0]))
		after := foldContext(contextAfter(text, loc[1]))

		assigned := false
		for _, window := range []string{before, after} {
			if empresa == "" && containsAny(window, companyKeywords) {
				empresa = formatted
				assigned = true
				break
			}
			if condominio == "" && containsAny(window, entityKeywords) {
				condominio = formatted
				assigned = true
				break
			}
		}
		if assigned {
			continue
		}
		if condominio == "" {
			condominio = formatted
		} else if empresa == "" {
			empresa = formatted
		}
	}
	return condominio, empresa
}

// extractDataAssinatura devolve a primeira data do documento em ISO
// AAAA-MM-DD, com dia e mês zero-padded. Só a forma é verificada aqui; a
// validação de calendário acontece na camada de validação.
func extractDataAssinatura(text string) string {
	m := datePattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	day, month, year := m[1], m[2], m[3]
	if len(day) == 1 {
		day = "0" + day
	}
	if len(month) == 1 {
		month = "0" + month
	}
	return year + "-" + month + "-" + day
}

// extractName tenta os padrões de rótulo em ordem de prioridade e devolve
// o primeiro nome capturado, sem espaços ao redor.
func extractName(text string, labels []*regexp.Regexp) string {
	for _, re := range labels {
		if m := re.FindStringSubmatch(text); m != nil {
			if name := strings.TrimSpace(m[1]); name != "" {
				return name
			}
		}
	}
	return ""
}

// contextBefore devolve até contextRadius bytes antes de pos, ajustado
// para não cortar uma sequência UTF-8 no meio.
func contextBefore(text string, pos int) string {
	start := pos - contextRadius
	if start < 0 {
		start = 0
	}
	for start < pos && !utf8.RuneStart(text[start]) {
		start++
	}
	return text[start:pos]
}

// contextAfter devolve até contextRadius bytes depois de pos.
func contextAfter(text string, pos int) string {
	end := pos + contextRadius
	if end > len(text) {
		end = len(text)
	}
	for end > pos && end < len(text) && !utf8.RuneStart(text[end]) {
		end--
	}
	return text[pos:end]
}

// foldContext minusculiza e remove diacríticos, para que "Condomínio" e
// "CONDOMINIO" casem com a mesma palavra-chave.
func foldContext(s string) string {
	return removeDiacritics(strings.ToLower(s))
}

func removeDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
