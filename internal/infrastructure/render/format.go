package render

import (
	"fmt"
	"strings"
	"time"
)

// mesesPtBR nomes de meses para a data por extenso do contrato.
var mesesPtBR = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// FormatCurrency exibe o literal monetário com o marcador de moeda.
// O literal já vem no formato brasileiro (vírgula decimal); não é
// reformatado aqui para preservar o que o usuário confirmou.
func FormatCurrency(literal string) string {
	v := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(literal), "R$"))
	if v == "" {
		return "R$ 0,00"
	}
	return "R$ " + v
}

// FormatDateLong converte uma data ISO em data por extenso pt-BR:
// "2024-06-12" → "12 de junho de 2024". Datas não parseáveis voltam como
// estão (a validação a montante já deve ter barrado).
func FormatDateLong(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return fmt.Sprintf("%02d de %s de %d", t.Day(), mesesPtBR[t.Month()-1], t.Year())
}
