package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/livo/contratos-api/internal/domain/extract"
	"github.com/livo/contratos-api/pkg/config"
)

func configRender(engine string) config.RenderConfig {
	return config.RenderConfig{Engine: engine}
}

func TestEscapeHTML(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"sem caracteres especiais", "Condomínio Jardim das Flores", "Condomínio Jardim das Flores"},
		{"tag script", `<script>alert("x")</script>`, "&lt;script&gt;alert(&quot;x&quot;)&lt;&#x2F;script&gt;"},
		{"aspas simples", "O'Brien", "O&#x27;Brien"},
		{"barra", "a/b", "a&#x2F;b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EscapeHTML(tc.in))
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "R$ 8.500,00", FormatCurrency("8.500,00"))
	assert.Equal(t, "R$ 8.500,00", FormatCurrency("R$ 8.500,00"))
	assert.Equal(t, "R$ 0,00", FormatCurrency(""))
}

func TestFormatDateLong(t *testing.T) {
	assert.Equal(t, "12 de junho de 2024", FormatDateLong("2024-06-12"))
	assert.Equal(t, "01 de janeiro de 2025", FormatDateLong("2025-01-01"))
	assert.Equal(t, "12/06/2024", FormatDateLong("12/06/2024"))
}

func TestBuildHTMLEscapaCampos(t *testing.T) {
	html, err := buildHTML(extract.Fields{
		Condominio:     `Residencial <img src=x onerror="alert(1)">`,
		CNPJCondominio: "12.345.678/0001-90",
		Empresa:        "Limpar & Cia",
		Valor:          "8.500,00",
		DataAssinatura: "2024-06-12",
	})
	require.NoError(t, err)

	assert.NotContains(t, html, "<img")
	assert.Contains(t, html, "&lt;img src=x onerror=&quot;alert(1)&quot;&gt;")
	assert.Contains(t, html, "12.345.678&#x2F;0001-90")
	assert.Contains(t, html, "R$ 8.500,00")
	assert.Contains(t, html, "12 de junho de 2024")
}

func TestBuildHTMLEmpresaOpcional(t *testing.T) {
	html, err := buildHTML(extract.Fields{
		Condominio:     "Jardim das Flores",
		CNPJCondominio: "12.345.678/0001-90",
		Valor:          "1.200,00",
		DataAssinatura: "2024-03-05",
	})
	require.NoError(t, err)

	assert.Contains(t, html, "CONTRATANTE")
	assert.NotContains(t, html, "CONTRATADA:")
}

func TestMarotoRendererGeraPDF(t *testing.T) {
	r := NewMarotoRenderer()
	out, err := r.Render(t.Context(), extract.Fields{
		Condominio:     "Jardim das Flores",
		CNPJCondominio: "12.345.678/0001-90",
		Empresa:        "Limpar Serviços Ltda",
		CNPJEmpresa:    "98.765.432/0001-10",
		Valor:          "8.500,00",
		DataAssinatura: "2024-06-12",
	})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(out), "%PDF-"))
}

func TestNewRendererSelecionaMotor(t *testing.T) {
	t.Run("nativo", func(t *testing.T) {
		r, err := NewRenderer(configRender("native"))
		require.NoError(t, err)
		assert.IsType(t, &MarotoRenderer{}, r)
	})
	t.Run("chromium por omissão", func(t *testing.T) {
		r, err := NewRenderer(configRender(""))
		require.NoError(t, err)
		assert.IsType(t, &ChromiumRenderer{}, r)
	})
	t.Run("motor desconhecido", func(t *testing.T) {
		_, err := NewRenderer(configRender("wkhtmltopdf"))
		assert.Error(t, err)
	})
}
