package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/livo/contratos-api/internal/domain/extract"
)

func TestNormalizeCNPJ(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"12.345.678/0001-90", "12.345.678/0001-90", true},
		{"12345678000190", "12.345.678/0001-90", true},
		{"12.345.678000190", "12.345.678/0001-90", true},
		{"12.345.678/0001-9", "", false}, // 13 dígitos
		{"123456780001901", "", false},   // 15 dígitos
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := extract.NormalizeCNPJ(c.in)
		assert.Equal(t, c.ok, ok, "entrada: %q", c.in)
		assert.Equal(t, c.want, got, "entrada: %q", c.in)
	}
}

// Round-trip: normalizar um CNPJ canônico devolve o mesmo valor e o
// resultado sempre passa na verificação de formato (idempotente).
func TestNormalizeCNPJ_RoundTripIdempotente(t *testing.T) {
	canonical := "11.222.333/0001-44"
	got, ok := extract.NormalizeCNPJ(canonical)
	assert.True(t, ok)
	assert.Equal(t, canonical, got)
	assert.True(t, extract.IsCanonicalCNPJ(got))
}

func TestIsCanonicalCNPJ(t *testing.T) {
	assert.True(t, extract.IsCanonicalCNPJ("12.345.678/0001-90"))
	assert.False(t, extract.IsCanonicalCNPJ("12345678000190"))
	assert.False(t, extract.IsCanonicalCNPJ("12.345.678/0001-900"))
	assert.False(t, extract.IsCanonicalCNPJ("12.345.678-0001/90"))
	assert.False(t, extract.IsCanonicalCNPJ(""))
}
