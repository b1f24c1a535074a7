package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// cnpjPattern reconhece a forma de um CNPJ com separadores opcionais:
// aceita tanto "11.222.333/0001-44" quanto "11222333000144".
var cnpjPattern = regexp.MustCompile(`\d{2}\.?\d{3}\.?\d{3}/?\d{4}-?\d{2}`)

// canonicalCNPJPattern valida o formato canônico NN.NNN.NNN/NNNN-NN.
var canonicalCNPJPattern = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)

// NormalizeCNPJ reduz um match de CNPJ aos 14 dígitos e o re-renderiza no
// formato canônico. Retorna ok=false quando o match não normaliza em
// exatamente 14 dígitos; nesse caso o campo deve ficar vazio em vez de
// receber dado malformado.
func NormalizeCNPJ(raw string) (string, bool) {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()
	if len(d) != 14 {
		return "", false
	}
	return FormatCNPJ(d), true
}

// FormatCNPJ renderiza 14 dígitos no formato NN.NNN.NNN/NNNN-NN.
// Pré-condição: d contém exatamente 14 dígitos.
func FormatCNPJ(d string) string {
	return fmt.Sprintf("%s.%s.%s/%s-%s", d[0:2], d[2:5], d[5:8], d[8:12], d[12:14])
}

// IsCanonicalCNPJ verifica se s já está no formato canônico.
func IsCanonicalCNPJ(s string) bool {
	return canonicalCNPJPattern.MatchString(s)
}
