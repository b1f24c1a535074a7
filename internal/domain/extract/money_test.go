package extract_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livo/contratos-api/internal/domain/extract"
)

func TestParseValor(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"8.500,00", "8500"},
		{"15.000,50", "15000.5"},
		{"R$ 1.200,00", "1200"},
		{"1.200", "1200"},        // separador à direita com 3 dígitos = milhar
		{"15,000.50", "15000.5"}, // convenção invertida, separador decimal à direita
		{"0,99", "0.99"},
		{"999", "999"},
	}
	for _, c := range cases {
		got, err := extract.ParseValor(c.in)
		require.NoError(t, err, "entrada: %q", c.in)
		want, _ := decimal.NewFromString(c.want)
		assert.True(t, got.Equal(want), "entrada: %q, esperado %s, obtido %s", c.in, want, got)
	}
}

func TestParseValor_Invalido(t *testing.T) {
	for _, in := range []string{"", "R$", "abc"} {
		_, err := extract.ParseValor(in)
		assert.Error(t, err, "entrada: %q", in)
	}
}

func TestIsMonetaryLiteral(t *testing.T) {
	assert.True(t, extract.IsMonetaryLiteral("8.500,00"))
	assert.True(t, extract.IsMonetaryLiteral("R$ 8.500,00"))
	assert.True(t, extract.IsMonetaryLiteral("1200"))
	assert.False(t, extract.IsMonetaryLiteral(""))
	assert.False(t, extract.IsMonetaryLiteral("oito mil"))
	assert.False(t, extract.IsMonetaryLiteral("8.500,00 reais"))
}
