package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// moneyPattern reconhece valores monetários com marcador R$ opcional,
// agrupamento de milhar por "." ou "," e fração decimal de dois dígitos.
var moneyPattern = regexp.MustCompile(`(?:R\$\s*)?\d{1,3}(?:[.,]\d{3})*(?:[.,]\d{2})?`)

// fractionSuffix detecta uma fração decimal de exatamente dois dígitos no
// fim do literal (o separador mais à direita seguido de dois dígitos).
var fractionSuffix = regexp.MustCompile(`[.,]\d{2}$`)

// ParseValor converte um literal monetário brasileiro ("8.500,00",
// "R$ 1.200", "15,000.50") em decimal. Quando o separador mais à direita é
// seguido de exatamente dois dígitos ele é tratado como vírgula decimal;
// os demais separadores são agrupamento de milhar.
func ParseValor(literal string) (decimal.Decimal, error) {
	s := stripCurrencyMarker(literal)
	if s == "" {
		return decimal.Zero, fmt.Errorf("literal monetário vazio")
	}
	var intPart, fracPart string
	if loc := fractionSuffix.FindStringIndex(s); loc != nil {
		intPart = s[:loc[0]]
		fracPart = s[loc[0]+1:]
	} else {
		intPart = s
	}
	intPart = strings.NewReplacer(".", "", ",", "").Replace(intPart)
	normalized := intPart
	if fracPart != "" {
		normalized += "." + fracPart
	}
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("literal monetário inválido %q: %w", literal, err)
	}
	return d, nil
}

// literalShape aceita o que um usuário digita num campo de valor: marcador
// opcional, dígitos e separadores. Mais permissivo que moneyPattern de
// propósito; a forma final é garantida pelo parse.
var literalShape = regexp.MustCompile(`^(?:R\$\s*)?[\d.,]+$`)

// IsMonetaryLiteral verifica se s tem forma de literal monetário
// (com ou sem marcador R$) e se o valor é parseável.
func IsMonetaryLiteral(s string) bool {
	s = strings.TrimSpace(s)
	if !literalShape.MatchString(s) {
		return false
	}
	_, err := ParseValor(s)
	return err == nil
}

// findMaxValor localiza todos os candidatos a valor monetário no texto e
// devolve o literal original (sem marcador de moeda) do maior valor
// numérico. Premissa documentada: o total do contrato é a maior cifra do
// documento, o que o distingue de parcelas, descontos e itens de linha.
//
// Candidatos sem marcador R$ e sem fração decimal são descartados: números
// soltos (trechos de CNPJ, numeração de cláusulas) casariam com o padrão
// permissivo e poderiam vencer por valor.
func findMaxValor(text string) string {
	matches := moneyPattern.FindAllString(text, -1)
	var best string
	var bestValue decimal.Decimal
	for _, m := range matches {
		hasMarker := strings.Contains(m, "R$")
		literal := stripCurrencyMarker(m)
		if literal == "" {
			continue
		}
		if !hasMarker && !fractionSuffix.MatchString(literal) {
			continue
		}
		v, err := ParseValor(literal)
		if err != nil {
			continue
		}
		if best == "" || v.GreaterThan(bestValue) {
			best = literal
			bestValue = v
		}
	}
	return best
}

// stripCurrencyMarker remove o marcador "R$" e espaços ao redor,
// preservando a formatação original do número.
func stripCurrencyMarker(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "R$")
	return strings.TrimSpace(s)
}
